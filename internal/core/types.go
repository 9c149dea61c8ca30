package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLevel is returned when a level name is not registered.
var ErrUnknownLevel = errors.New("unknown level")

// Size describes grid or image dimensions.
type Size struct {
	W int
	H int
}

// Spawn is the starting pose a level suggests for the player.
type Spawn struct {
	X, Y    float64
	Heading float64
}

// Level is a built occupancy grid plus its spawn point.
type Level struct {
	Name  string
	Grid  *Grid
	Spawn Spawn
}

// LevelFactory builds a level using an optional configuration map.
type LevelFactory func(cfg map[string]string) Level

var levels = map[string]LevelFactory{}

// RegisterLevel adds a level factory under the provided name.
func RegisterLevel(name string, f LevelFactory) {
	if name == "" || f == nil {
		return
	}
	levels[name] = f
}

// LevelNames returns the registered level names in sorted order.
func LevelNames() []string {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildLevel looks up and invokes the named factory.
func BuildLevel(name string, cfg map[string]string) (Level, error) {
	f, ok := levels[name]
	if !ok {
		return Level{}, fmt.Errorf("%w %q (have %v)", ErrUnknownLevel, name, LevelNames())
	}
	lvl := f(cfg)
	lvl.Name = name
	return lvl, nil
}
