package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gridcaster/internal/core"
)

var (
	// ErrEmptyMap is returned for map text without any rows.
	ErrEmptyMap = errors.New("map has no rows")
	// ErrRaggedMap is returned when rows differ in length.
	ErrRaggedMap = errors.New("map rows differ in length")
	// ErrNoFreeCell is returned for a map without an empty cell to spawn in.
	ErrNoFreeCell = errors.New("map has no free cell")
)

// ParseMap reads a text map: '#' or '1' is solid, '.', '0' or ' ' is empty,
// and '@' is an empty cell holding the spawn point. Blank lines are skipped.
// Without '@' the player spawns in the centre cell, or in the first free
// cell in row order when the centre is solid.
func ParseMap(r io.Reader) (core.Level, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return core.Level{}, fmt.Errorf("read map: %w", err)
	}
	if len(rows) == 0 {
		return core.Level{}, ErrEmptyMap
	}

	w := len(rows[0])
	g := core.NewGrid(w, len(rows))
	lvl := core.Level{Grid: g}
	spawned := false
	for y, row := range rows {
		if len(row) != w {
			return core.Level{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMap, y, len(row), w)
		}
		for x, ch := range []byte(row) {
			switch ch {
			case '#', '1':
				g.Set(x, y, true)
			case '.', '0', ' ':
			case '@':
				lvl.Spawn = core.Spawn{X: float64(x) + 0.5, Y: float64(y) + 0.5}
				spawned = true
			default:
				return core.Level{}, fmt.Errorf("map row %d col %d: unexpected %q", y, x, ch)
			}
		}
	}
	if !spawned {
		x, y, ok := freeCell(g)
		if !ok {
			return core.Level{}, ErrNoFreeCell
		}
		lvl.Spawn = core.Spawn{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	}
	return lvl, nil
}

func freeCell(g *core.Grid) (int, int, bool) {
	if cx, cy := g.W/2, g.H/2; !g.Solid(cx, cy) {
		return cx, cy, true
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !g.Solid(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// LoadMap parses the map file at path.
func LoadMap(path string) (core.Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Level{}, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()
	lvl, err := ParseMap(f)
	if err != nil {
		return core.Level{}, fmt.Errorf("%s: %w", path, err)
	}
	lvl.Name = path
	return lvl, nil
}
