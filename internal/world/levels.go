package world

import (
	"math"
	"strconv"
	"strings"

	"gridcaster/internal/core"
	pkgcore "gridcaster/pkg/core"
)

var classicRows = []string{
	"################",
	"#..............#",
	"#..............#",
	"#...#..........#",
	"#..###.........#",
	"#...#..........#",
	"#..............#",
	"#..#...........#",
	"#..#........#..#",
	"#..............#",
	"#..............#",
	"#..#........##.#",
	"#..#........##.#",
	"#..###.........#",
	"#..............#",
	"################",
}

func init() {
	core.RegisterLevel("classic", func(map[string]string) core.Level {
		lvl, err := ParseMap(strings.NewReader(strings.Join(classicRows, "\n")))
		if err != nil {
			panic(err)
		}
		lvl.Spawn = core.Spawn{X: 8.1, Y: 8.1}
		return lvl
	})
	core.RegisterLevel("arena", func(cfg map[string]string) core.Level {
		return Arena(intOr(cfg, "w", 16), intOr(cfg, "h", 16))
	})
	core.RegisterLevel("ring", func(cfg map[string]string) core.Level {
		return Ring(intOr(cfg, "size", 5))
	})
	core.RegisterLevel("random", func(cfg map[string]string) core.Level {
		return Scatter(intOr(cfg, "w", 24), intOr(cfg, "h", 24), seedOr(cfg, 1), floatOr(cfg, "density", 0.12))
	})
}

// Arena is a bordered room with a single solid block at (4, 4).
func Arena(w, h int) core.Level {
	g := core.NewGrid(w, h)
	g.Border()
	g.Set(4, 4, true)
	return core.Level{Grid: g, Spawn: core.Spawn{X: 2, Y: 2}}
}

// Ring is a size×size square ring of solid cells around an empty interior,
// with the spawn at its centre.
func Ring(size int) core.Level {
	if size < 3 {
		size = 3
	}
	g := core.NewGrid(size, size)
	g.Border()
	c := float64(size) / 2
	return core.Level{Grid: g, Spawn: core.Spawn{X: c, Y: c}}
}

// Scatter builds a bordered room with seeded single-cell pillars. The spawn
// cell and its neighbours are always kept free, and the spawn faces one of
// the four axis directions.
func Scatter(w, h int, seed int64, density float64) core.Level {
	g := core.NewGrid(w, h)
	g.Border()
	rng := pkgcore.NewRNG(seed)
	sx, sy := g.W/2, g.H/2
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if abs(x-sx) <= 1 && abs(y-sy) <= 1 {
				continue
			}
			if rng.Chance(density) {
				g.Set(x, y, true)
			}
		}
	}
	heading := float64(rng.IntN(4)) * math.Pi / 2
	return core.Level{Grid: g, Spawn: core.Spawn{X: float64(sx) + 0.5, Y: float64(sy) + 0.5, Heading: heading}}
}

func intOr(cfg map[string]string, key string, def int) int {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

// seedOr accepts any int64, including zero and negative seeds.
func seedOr(cfg map[string]string, def int64) int64 {
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func floatOr(cfg map[string]string, key string, def float64) float64 {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return def
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
