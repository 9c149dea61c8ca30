package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"sort"
	"strconv"

	"gridcaster/internal/raycast"
	"gridcaster/internal/world"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the parameters shared by every front end.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int

	Level       string
	Map         string
	Texture     string
	TextureSize int

	// FOV is the horizontal field of view in degrees.
	FOV       float64
	MaxDist   float64
	MoveSpeed float64
	TurnSpeed float64
	SideShade float64
	Workers   int
	Seed      int64

	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	m := world.DefaultMotion()
	p := raycast.DefaultParams()
	return &Config{
		Width:     320,
		Height:    280,
		Scale:     3,
		TPS:       60,
		Level:     "classic",
		FOV:       45,
		MaxDist:   p.MaxDist,
		MoveSpeed: m.MoveSpeed,
		TurnSpeed: m.TurnSpeed,
		SideShade: p.SideShade,
		Workers:   1,
		Seed:      42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "frame width in pixels (one ray per column)")
	fs.IntVar(&c.Height, "height", c.Height, "frame height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Level, "level", c.Level, "built-in level to load")
	fs.StringVar(&c.Map, "map", c.Map, "map file to load instead of a built-in level")
	fs.StringVar(&c.Texture, "texture", c.Texture, "wall texture image (png, jpeg, gif or bmp)")
	fs.IntVar(&c.TextureSize, "texture-size", c.TextureSize, "resample the wall texture to NxN (0 keeps its size)")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "horizontal field of view in degrees")
	fs.Float64Var(&c.MaxDist, "max-dist", c.MaxDist, "view distance in cells")
	fs.Float64Var(&c.MoveSpeed, "move-speed", c.MoveSpeed, "walking speed in cells per second")
	fs.Float64Var(&c.TurnSpeed, "turn-speed", c.TurnSpeed, "turning speed in radians per second")
	fs.Float64Var(&c.SideShade, "side-shade", c.SideShade, "brightness of north/south faces (1 disables)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines rendering columns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random level")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (defaults to LOG_LEVEL or info)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json (defaults to LOG_FORMAT)")
}

// Apply overrides fields from key=value pairs. Values that fail to parse or
// fall outside their range are skipped; the rejected keys are returned in
// sorted order.
func (c *Config) Apply(kv map[string]string) []string {
	var rejected []string
	reject := func(k string) { rejected = append(rejected, k) }

	for k, v := range kv {
		switch k {
		case "width", "height", "scale", "tps", "texture_size", "workers":
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 || (n == 0 && k != "texture_size") {
				reject(k)
				continue
			}
			*c.intField(k) = n
		case "fov", "max_dist", "move_speed", "turn_speed", "side_shade":
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
				reject(k)
				continue
			}
			*c.floatField(k) = f
		case "seed":
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				reject(k)
				continue
			}
			c.Seed = n
		case "level":
			c.Level = v
		case "map":
			c.Map = v
		case "texture":
			c.Texture = v
		case "log_level":
			c.LogLevel = v
		case "log_format":
			c.LogFormat = v
		default:
			reject(k)
		}
	}
	sort.Strings(rejected)
	return rejected
}

func (c *Config) intField(key string) *int {
	switch key {
	case "width":
		return &c.Width
	case "height":
		return &c.Height
	case "scale":
		return &c.Scale
	case "tps":
		return &c.TPS
	case "texture_size":
		return &c.TextureSize
	default:
		return &c.Workers
	}
}

func (c *Config) floatField(key string) *float64 {
	switch key {
	case "fov":
		return &c.FOV
	case "max_dist":
		return &c.MaxDist
	case "move_speed":
		return &c.MoveSpeed
	case "turn_speed":
		return &c.TurnSpeed
	default:
		return &c.SideShade
	}
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case !(c.FOV > 0 && c.FOV < 180):
		return fmt.Errorf("%w: fov %v must be in (0, 180) degrees", ErrInvalidConfig, c.FOV)
	case !(c.MaxDist > 0) || math.IsInf(c.MaxDist, 0):
		return fmt.Errorf("%w: max distance %v", ErrInvalidConfig, c.MaxDist)
	case c.SideShade < 0 || c.SideShade > 1:
		return fmt.Errorf("%w: side shade %v must be in [0, 1]", ErrInvalidConfig, c.SideShade)
	case c.MoveSpeed < 0 || c.TurnSpeed < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalidConfig)
	case c.TextureSize < 0:
		return fmt.Errorf("%w: texture size %d", ErrInvalidConfig, c.TextureSize)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	case c.Level == "" && c.Map == "":
		return fmt.Errorf("%w: no level or map", ErrInvalidConfig)
	}
	return nil
}

// FOVRadians converts the configured field of view.
func (c *Config) FOVRadians() float64 { return c.FOV * math.Pi / 180 }

// RenderParams returns the renderer settings, keeping the default colours.
func (c *Config) RenderParams() raycast.Params {
	p := raycast.DefaultParams()
	p.MaxDist = c.MaxDist
	p.SideShade = c.SideShade
	p.Workers = c.Workers
	return p
}

// Motion returns the walking and turning rates.
func (c *Config) Motion() world.Motion {
	return world.Motion{MoveSpeed: c.MoveSpeed, TurnSpeed: c.TurnSpeed}
}

// LevelConfig is the option map handed to the level factory.
func (c *Config) LevelConfig() map[string]string {
	return map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
}
