package wrecked

import "github.com/quintinfsmith/wrecked/geom"

// Grid is a read-only view over a composed cell buffer, handed to a
// Renderer by RectManager.Render. It lets the renderer live in a separate
// package (wrecked/render/ansi) without that package needing to know
// about Rect or RectManager — mirroring how the teacher's render/bubbletea
// package only depends on the shared "types" package, never on the root
// microui package, with the UI instead depending on a renderer interface
// it defines itself (ui.go's BaseRenderer).
type Grid interface {
	Width() int
	Height() int
	At(x, y int) Cell
}

// Renderer is the output stage: given the composed grid and the region
// that changed, it emits a minimized escape sequence and tracks the last
// emitted grid internally (spec.md §4.4). Implementations live outside
// this package (wrecked/render/ansi.Renderer); RectManager only depends on
// this interface, set via Config.
type Renderer interface {
	// Sync writes whatever bytes are needed to bring the terminal's
	// region dirty up to date with grid, restricted to dirty.
	Sync(grid Grid, dirty geom.Rect) error
	// Resize is called when the root rect's dimensions change.
	Resize(width, height int) error
	// Kill writes the teardown sequence (cursor show, SGR reset, optional
	// alt-screen exit) and releases any renderer-owned resources.
	Kill() error
}

// sliceGrid is the concrete Grid built by the compositor from a composed
// buffer.
type sliceGrid struct {
	width, height int
	cells         [][]Cell
}

func newSliceGrid(width, height int) *sliceGrid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &sliceGrid{width: width, height: height, cells: cells}
}

func (g *sliceGrid) Width() int  { return g.width }
func (g *sliceGrid) Height() int { return g.height }

func (g *sliceGrid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Cell{Ch: defaultCharacter}
	}
	return g.cells[y][x]
}

func (g *sliceGrid) set(x, y int, c Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = c
}
