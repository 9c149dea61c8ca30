package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"gridcaster/internal/assets"
	"gridcaster/internal/core"
	"gridcaster/internal/game"
	"gridcaster/internal/logger"
	"gridcaster/internal/world"
)

// defaultTextureSize is the edge of the procedural brick texture.
const defaultTextureSize = 64

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string { return strings.Join(*l, ",") }

// Set appends one raw value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the collected values. Entries without '=' are dropped.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// NewLogger builds the logger described by the config, writing to out.
func (c *Config) NewLogger(out io.Writer) *logrus.Logger {
	return logger.New(logger.Options{Level: c.LogLevel, Format: c.LogFormat, Output: out})
}

// LoadLevel reads the configured map file, or builds the named level.
func (c *Config) LoadLevel() (core.Level, error) {
	if c.Map != "" {
		lvl, err := world.LoadMap(c.Map)
		if err != nil {
			return core.Level{}, fmt.Errorf("load map: %w", err)
		}
		return lvl, nil
	}
	return core.BuildLevel(c.Level, c.LevelConfig())
}

// LoadTexture reads the configured texture. Without one a brick texture is
// generated.
func (c *Config) LoadTexture() (*core.RGBImage, error) {
	if c.Texture == "" {
		size := c.TextureSize
		if size <= 0 {
			size = defaultTextureSize
		}
		return assets.Brick(size, size), nil
	}
	return assets.LoadTexture(c.Texture, c.TextureSize)
}

// NewSession validates the config and assembles a ready session.
func NewSession(c *Config, log logrus.FieldLogger) (*game.Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	lvl, err := c.LoadLevel()
	if err != nil {
		return nil, err
	}
	tex, err := c.LoadTexture()
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"level":   lvl.Name,
		"map":     c.Map,
		"texture": fmt.Sprintf("%dx%d", tex.W, tex.H),
	}).Debug("assets loaded")

	return game.New(game.Options{
		Level:   lvl,
		Texture: tex,
		Params:  c.RenderParams(),
		Motion:  c.Motion(),
		FOV:     c.FOVRadians(),
		Width:   c.Width,
		Height:  c.Height,
	}, log)
}
