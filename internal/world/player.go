package world

import (
	"errors"
	"math"

	"gridcaster/internal/core"
	"gridcaster/pkg/geom"
)

// ErrInvalidAngle is returned when a rotation would leave the heading
// non-finite.
var ErrInvalidAngle = errors.New("invalid angle")

// Input carries one frame of key states from the input provider.
type Input struct {
	RotateLeft  bool
	RotateRight bool
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
}

// Motion holds movement rates in grid units and radians per second.
type Motion struct {
	MoveSpeed float64
	TurnSpeed float64
}

// DefaultMotion walks three cells and turns 1.15 radians per second.
func DefaultMotion() Motion {
	return Motion{MoveSpeed: 3.0, TurnSpeed: 1.15}
}

// Player is the camera: a position on the grid, a heading wrapped to
// (-π, π] and a horizontal field of view, all in radians.
type Player struct {
	Pos     geom.Vec2[float64]
	Heading float64
	FOV     float64

	grid *core.Grid
}

// NewPlayer places a player on grid. The heading is wrapped; a non-finite
// heading is replaced by 0.
func NewPlayer(grid *core.Grid, x, y, heading, fov float64) *Player {
	h := geom.WrapAngle(heading)
	if math.IsNaN(h) {
		h = 0
	}
	return &Player{Pos: geom.V(x, y), Heading: h, FOV: fov, grid: grid}
}

// Grid returns the occupancy grid moves are validated against.
func (p *Player) Grid() *core.Grid { return p.grid }

// Cell returns the grid cell containing the player.
func (p *Player) Cell() geom.Vec2[int] { return geom.Floor(p.Pos) }

// ProposeMove moves the player by delta unless the destination cell is
// solid. It reports whether the move was committed.
func (p *Player) ProposeMove(delta geom.Vec2[float64]) bool {
	next := p.Pos.Add(delta)
	if math.IsNaN(next.X) || math.IsNaN(next.Y) {
		return false
	}
	cell := geom.Floor(next)
	if p.grid.Solid(cell.X, cell.Y) {
		return false
	}
	p.Pos = next
	return true
}

// MoveForward walks along the heading; negative distances walk backwards.
func (p *Player) MoveForward(dist float64) bool {
	return p.ProposeMove(geom.Dir(p.Heading).Scale(dist))
}

// Strafe steps sideways; positive distances move to the player's right.
func (p *Player) Strafe(dist float64) bool {
	return p.ProposeMove(geom.Dir(p.Heading + math.Pi/2).Scale(dist))
}

// Rotate turns the player by delta radians.
func (p *Player) Rotate(delta float64) error {
	h := geom.WrapAngle(p.Heading + delta)
	if math.IsNaN(h) {
		return ErrInvalidAngle
	}
	p.Heading = h
	return nil
}

// LeftEdge returns the angle of the left frustum edge.
func (p *Player) LeftEdge() float64 { return geom.WrapAngle(p.Heading - p.FOV/2) }

// RightEdge returns the angle of the right frustum edge.
func (p *Player) RightEdge() float64 { return geom.WrapAngle(p.Heading + p.FOV/2) }

// Update applies one frame of input. Forward/backward and strafing are
// validated independently, so a blocked strafe does not cancel a walk.
func (p *Player) Update(in Input, dt float64, m Motion) error {
	if dt <= 0 {
		return nil
	}
	turn := 0.0
	if in.RotateLeft {
		turn -= m.TurnSpeed * dt
	}
	if in.RotateRight {
		turn += m.TurnSpeed * dt
	}
	if turn != 0 {
		if err := p.Rotate(turn); err != nil {
			return err
		}
	}

	step := m.MoveSpeed * dt
	switch {
	case in.Backward && !in.Forward:
		p.MoveForward(-step)
	case in.Forward && !in.Backward:
		p.MoveForward(step)
	}
	switch {
	case in.StrafeLeft && !in.StrafeRight:
		p.Strafe(-step)
	case in.StrafeRight && !in.StrafeLeft:
		p.Strafe(step)
	}
	return nil
}
