package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gridcaster/internal/world"
)

// Action is a player command decoded from a key event.
type Action int

const (
	ActionNone Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionForward
	ActionBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionReset
	ActionQuit
)

// ActionFor decodes a key event: arrows turn and walk, WASD walks and
// strafes, R resets, Q, Esc and Ctrl+C quit.
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionRotateLeft
	case tcell.KeyRight:
		return ActionRotateRight
	case tcell.KeyUp:
		return ActionForward
	case tcell.KeyDown:
		return ActionBackward
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ActionForward
		case 's', 'S':
			return ActionBackward
		case 'a', 'A':
			return ActionStrafeLeft
		case 'd', 'D':
			return ActionStrafeRight
		case 'r', 'R':
			return ActionReset
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// KeyLatch turns key press events into held key states. Terminals report
// presses and auto-repeats but no releases, so a movement key counts as held
// until hold has passed without a repeat.
type KeyLatch struct {
	hold time.Duration
	last [ActionStrafeRight + 1]time.Time
}

// NewKeyLatch creates a latch that holds keys for the given duration.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	return &KeyLatch{hold: hold}
}

// Press records a movement action at now. Other actions are ignored.
func (l *KeyLatch) Press(a Action, now time.Time) {
	if a <= ActionNone || a > ActionStrafeRight {
		return
	}
	l.last[a] = now
	switch a {
	case ActionForward:
		l.last[ActionBackward] = time.Time{}
	case ActionBackward:
		l.last[ActionForward] = time.Time{}
	case ActionStrafeLeft:
		l.last[ActionStrafeRight] = time.Time{}
	case ActionStrafeRight:
		l.last[ActionStrafeLeft] = time.Time{}
	case ActionRotateLeft:
		l.last[ActionRotateRight] = time.Time{}
	case ActionRotateRight:
		l.last[ActionRotateLeft] = time.Time{}
	}
}

// Input reports the keys held at now.
func (l *KeyLatch) Input(now time.Time) world.Input {
	held := func(a Action) bool {
		t := l.last[a]
		return !t.IsZero() && now.Sub(t) < l.hold
	}
	return world.Input{
		RotateLeft:  held(ActionRotateLeft),
		RotateRight: held(ActionRotateRight),
		Forward:     held(ActionForward),
		Backward:    held(ActionBackward),
		StrafeLeft:  held(ActionStrafeLeft),
		StrafeRight: held(ActionStrafeRight),
	}
}
