package core

import "time"

// maxDelta caps the delta reported after a stall so movement never jumps.
const maxDelta = 250 * time.Millisecond

// FramePacer measures frame-to-frame delta time and how long a loop should
// sleep to hold a target frame rate.
type FramePacer struct {
	frame time.Duration
	last  time.Time
	now   func() time.Time
}

// NewFramePacer constructs a FramePacer targeting the given FPS.
func NewFramePacer(fps int) *FramePacer {
	p := &FramePacer{now: time.Now}
	p.SetFPS(fps)
	return p
}

// SetFPS changes the target frame rate. It is safe to call from the main loop.
func (p *FramePacer) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	p.frame = time.Second / time.Duration(fps)
}

// Frame returns the target frame duration.
func (p *FramePacer) Frame() time.Duration { return p.frame }

// Delta returns the seconds elapsed since the previous call. The first call
// reports one frame.
func (p *FramePacer) Delta() float64 {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		return p.frame.Seconds()
	}
	d := now.Sub(p.last)
	p.last = now
	if d < 0 {
		d = 0
	}
	if d > maxDelta {
		d = maxDelta
	}
	return d.Seconds()
}

// Remaining reports how long to sleep so the current frame lasts one target
// frame duration, measured from the last Delta call.
func (p *FramePacer) Remaining() time.Duration {
	if p.last.IsZero() {
		return 0
	}
	left := p.frame - p.now().Sub(p.last)
	if left < 0 {
		return 0
	}
	return left
}
