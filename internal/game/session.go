package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"gridcaster/internal/core"
	"gridcaster/internal/raycast"
	"gridcaster/internal/world"
)

// ErrNoLevel is returned when a session is created without a grid.
var ErrNoLevel = errors.New("session has no level")

// Options configures a Session.
type Options struct {
	Level   core.Level
	Texture *core.RGBImage
	Params  raycast.Params
	Motion  world.Motion
	FOV     float64
	Width   int
	Height  int
}

// Session owns one level, the player walking it, and the frame the player's
// view is rendered into. Every front end drives the same Step/Render pair.
type Session struct {
	level    core.Level
	fov      float64
	player   *world.Player
	renderer *raycast.Renderer
	frame    *core.RGBImage
	motion   world.Motion
	log      logrus.FieldLogger
}

// New builds a session with the player at the level's spawn.
func New(opts Options, log logrus.FieldLogger) (*Session, error) {
	if opts.Level.Grid == nil {
		return nil, ErrNoLevel
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", opts.Width, opts.Height)
	}
	s := &Session{
		level:  opts.Level,
		fov:    opts.FOV,
		frame:  core.NewRGBImage(opts.Width, opts.Height),
		motion: opts.Motion,
		log:    log.WithField("component", "session"),
	}
	s.renderer = raycast.NewRenderer(opts.Params, opts.Texture, log)
	s.Reset()

	size := s.level.Grid.Size()
	s.log.WithFields(logrus.Fields{
		"level": s.level.Name,
		"grid":  fmt.Sprintf("%dx%d", size.W, size.H),
		"frame": fmt.Sprintf("%dx%d", opts.Width, opts.Height),
	}).Info("session ready")
	return s, nil
}

// Reset returns the player to the level's spawn.
func (s *Session) Reset() {
	sp := s.level.Spawn
	s.player = world.NewPlayer(s.level.Grid, sp.X, sp.Y, sp.Heading, s.fov)
}

// Level returns the loaded level.
func (s *Session) Level() core.Level { return s.level }

// Player returns the camera.
func (s *Session) Player() *world.Player { return s.player }

// Frame returns the most recently rendered frame.
func (s *Session) Frame() *core.RGBImage { return s.frame }

// Renderer exposes the column renderer.
func (s *Session) Renderer() *raycast.Renderer { return s.renderer }

// Step advances the player by one frame of input.
func (s *Session) Step(in world.Input, dt float64) error {
	return s.player.Update(in, dt, s.motion)
}

// Render draws the player's view into the session frame and returns it.
func (s *Session) Render(ctx context.Context) (*core.RGBImage, error) {
	if err := s.renderer.Render(ctx, s.player, s.frame); err != nil {
		return nil, err
	}
	return s.frame, nil
}

// Resize reallocates the frame. Non-positive sizes are ignored.
func (s *Session) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == s.frame.W && h == s.frame.H) {
		return
	}
	s.frame = core.NewRGBImage(w, h)
}

// Parameters reports the live session values for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	p := s.renderer.Params()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Player",
			Params: []core.Parameter{
				floatParam("x", "X", s.player.Pos.X),
				floatParam("y", "Y", s.player.Pos.Y),
				floatParam("heading", "Heading", s.player.Heading),
				floatParam("fov", "FOV", s.player.FOV),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				stringParam("level", "Level", s.level.Name),
				intParam("width", "Width", s.frame.W),
				intParam("height", "Height", s.frame.H),
				floatParam("max_dist", "Max distance", p.MaxDist),
				floatParam("side_shade", "Side shade", p.SideShade),
				intParam("workers", "Workers", p.Workers),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				floatParam("move_speed", "Move speed", s.motion.MoveSpeed),
				floatParam("turn_speed", "Turn speed", s.motion.TurnSpeed),
			},
		},
	}}
}

var controls = []core.ParameterControl{
	{Key: "fov", Label: "FOV", Step: math.Pi / 36, Min: math.Pi / 12, Max: math.Pi * 5 / 6, HasMin: true, HasMax: true},
	{Key: "max_dist", Label: "Max distance", Step: 1, Min: 1, Max: 128, HasMin: true, HasMax: true},
	{Key: "side_shade", Label: "Side shade", Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "move_speed", Label: "Move speed", Step: 0.25, Min: 0, HasMin: true},
	{Key: "turn_speed", Label: "Turn speed", Step: 0.05, Min: 0, HasMin: true},
}

// ParameterControls lists the values that can be tuned while running.
func (s *Session) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// SetFloatParameter updates a tunable value, clamped to its control's
// bounds. It reports false for unknown keys and non-finite values.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	ctrl, ok := controlFor(key)
	if !ok {
		return false
	}
	value = ctrl.Clamp(value)

	p := s.renderer.Params()
	switch key {
	case "fov":
		s.fov = value
		s.player.FOV = value
	case "max_dist":
		p.MaxDist = value
		s.renderer.SetParams(p)
	case "side_shade":
		p.SideShade = value
		s.renderer.SetParams(p)
	case "move_speed":
		s.motion.MoveSpeed = value
	case "turn_speed":
		s.motion.TurnSpeed = value
	}
	s.log.WithFields(logrus.Fields{"key": key, "value": value}).Debug("parameter updated")
	return true
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 3, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
