package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"gridcaster/internal/core"
	"gridcaster/internal/game"
)

const (
	statusRows = 1
	keyHold    = 180 * time.Millisecond
)

// Run drives a session on screen until the player quits or ctx ends. Each
// frame sleeps whatever is left of the target frame time after rendering,
// and the frame is resized to follow the terminal.
func Run(ctx context.Context, screen tcell.Screen, s *game.Session, fps int, log logrus.FieldLogger) error {
	log = log.WithField("component", "term")
	pres := NewPresenter(screen)
	pacer := core.NewFramePacer(fps)
	latch := NewKeyLatch(keyHold)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	s.Resize(pres.FrameSize(statusRows))
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch a := ActionFor(ev); a {
				case ActionQuit:
					return nil
				case ActionReset:
					s.Reset()
				default:
					latch.Press(a, ev.When())
				}
			case *tcell.EventResize:
				screen.Sync()
				s.Resize(pres.FrameSize(statusRows))
				log.WithField("frame", fmt.Sprintf("%dx%d", s.Frame().W, s.Frame().H)).Debug("terminal resized")
			}

		case now := <-timer.C:
			dt := pacer.Delta()
			if err := s.Step(latch.Input(now), dt); err != nil {
				log.WithError(err).Warn("player update rejected")
			}
			frame, err := s.Render(ctx)
			if err != nil {
				return err
			}
			pres.Present(frame, status(s, dt))
			pres.Show()
			timer.Reset(pacer.Remaining())
		}
	}
}

func status(s *game.Session, dt float64) string {
	p := s.Player()
	fps := 0.0
	if dt > 0 {
		fps = 1 / dt
	}
	return fmt.Sprintf(" %s  x=%.2f y=%.2f heading=%+.2f  %3.0f fps  arrows/WASD move, r reset, q quit",
		s.Level().Name, p.Pos.X, p.Pos.Y, p.Heading, fps)
}
