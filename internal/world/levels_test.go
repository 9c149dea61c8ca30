package world

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"gridcaster/internal/core"
)

func TestRegisteredLevelsSpawnInFreeCells(t *testing.T) {
	for _, name := range []string{"classic", "arena", "ring", "random"} {
		lvl, err := core.BuildLevel(name, nil)
		if err != nil {
			t.Fatalf("BuildLevel(%s): %v", name, err)
		}
		if lvl.Grid.Solid(int(lvl.Spawn.X), int(lvl.Spawn.Y)) {
			t.Fatalf("%s spawn %+v is inside a solid cell", name, lvl.Spawn)
		}
	}
}

func TestClassicBoardShape(t *testing.T) {
	lvl, err := core.BuildLevel("classic", nil)
	if err != nil {
		t.Fatal(err)
	}
	g := lvl.Grid
	if g.W != 16 || g.H != 16 {
		t.Fatalf("classic is %dx%d", g.W, g.H)
	}
	for _, c := range [][2]int{{4, 3}, {3, 4}, {4, 4}, {5, 4}, {4, 5}, {13, 11}, {12, 12}} {
		if !g.Solid(c[0], c[1]) {
			t.Fatalf("cell %v should be solid", c)
		}
	}
	if g.Solid(8, 8) {
		t.Fatal("spawn cell must be free")
	}
}

func TestScatterDeterministic(t *testing.T) {
	la, lb := Scatter(20, 20, 42, 0.3), Scatter(20, 20, 42, 0.3)
	if string(la.Grid.Cells(nil)) != string(lb.Grid.Cells(nil)) || la.Spawn != lb.Spawn {
		t.Fatal("same seed must produce the same map")
	}
	q := la.Spawn.Heading / (math.Pi / 2)
	if q < 0 || q > 3 || math.Abs(q-math.Round(q)) > 1e-9 {
		t.Fatalf("spawn heading %v is not an axis direction", la.Spawn.Heading)
	}
}

func TestParseMap(t *testing.T) {
	lvl, err := ParseMap(strings.NewReader("#####\n#.@.#\n\n#0 1#\n#####\n"))
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Grid.W != 5 || lvl.Grid.H != 4 {
		t.Fatalf("size %dx%d", lvl.Grid.W, lvl.Grid.H)
	}
	if lvl.Spawn != (core.Spawn{X: 2.5, Y: 1.5}) {
		t.Fatalf("spawn = %+v", lvl.Spawn)
	}
	if !lvl.Grid.Solid(3, 2) || lvl.Grid.Solid(2, 2) || lvl.Grid.Solid(1, 2) {
		t.Fatal("row 2 parsed incorrectly")
	}
}

func TestParseMapSpawnWithoutMarker(t *testing.T) {
	lvl, err := ParseMap(strings.NewReader("#####\n#...#\n#...#\n#...#\n#####\n"))
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Spawn != (core.Spawn{X: 2.5, Y: 2.5}) {
		t.Fatalf("open centre spawn = %+v", lvl.Spawn)
	}

	lvl, err = ParseMap(strings.NewReader("#####\n###.#\n#####\n"))
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Spawn != (core.Spawn{X: 3.5, Y: 1.5}) {
		t.Fatalf("solid centre spawn = %+v", lvl.Spawn)
	}
	if lvl.Grid.Solid(int(lvl.Spawn.X), int(lvl.Spawn.Y)) {
		t.Fatal("spawn is inside a wall")
	}

	if _, err := ParseMap(strings.NewReader("###\n###\n")); !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("all-solid err = %v", err)
	}
}

func TestRandomLevelKeepsZeroAndNegativeSeeds(t *testing.T) {
	for _, seed := range []int64{0, -7} {
		got, err := core.BuildLevel("random", map[string]string{"seed": strconv.FormatInt(seed, 10)})
		if err != nil {
			t.Fatal(err)
		}
		want := Scatter(24, 24, seed, 0.12)
		if string(got.Grid.Cells(nil)) != string(want.Grid.Cells(nil)) || got.Spawn != want.Spawn {
			t.Fatalf("seed %d built a different level than Scatter", seed)
		}
	}
}

func TestParseMapErrors(t *testing.T) {
	if _, err := ParseMap(strings.NewReader("\n\n")); !errors.Is(err, ErrEmptyMap) {
		t.Fatalf("empty err = %v", err)
	}
	if _, err := ParseMap(strings.NewReader("###\n##\n")); !errors.Is(err, ErrRaggedMap) {
		t.Fatalf("ragged err = %v", err)
	}
	if _, err := ParseMap(strings.NewReader("#x#\n")); err == nil {
		t.Fatal("unknown glyph must fail")
	}
}
