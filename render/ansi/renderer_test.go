package ansi

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/quintinfsmith/wrecked"
	"github.com/quintinfsmith/wrecked/geom"
)

// fakeGrid is a fixed-content wrecked.Grid for exercising Renderer without a
// RectManager.
type fakeGrid struct {
	w, h  int
	cells map[[2]int]wrecked.Cell
}

func newFakeGrid(w, h int) *fakeGrid {
	return &fakeGrid{w: w, h: h, cells: map[[2]int]wrecked.Cell{}}
}

func (g *fakeGrid) Width() int  { return g.w }
func (g *fakeGrid) Height() int { return g.h }

func (g *fakeGrid) At(x, y int) wrecked.Cell {
	if c, ok := g.cells[[2]int{x, y}]; ok {
		return c
	}
	return wrecked.Cell{Ch: ' '}
}

func (g *fakeGrid) set(x, y int, c wrecked.Cell) {
	g.cells[[2]int{x, y}] = c
}

func fullRect(w, h int) geom.Rect { return geom.Rect{X: 0, Y: 0, W: w, H: h} }

func TestSyncFirstCallForcesFullRedraw(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)
	grid := newFakeGrid(2, 1)
	grid.set(0, 0, wrecked.Cell{Ch: 'a'})
	grid.set(1, 0, wrecked.Cell{Ch: 'b'})

	// Sync is called with an empty dirty rect, but since this is the first
	// call (r.last is nil), it should still redraw the whole grid.
	if err := r.Sync(grid, geom.Rect{}); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Fatalf("first Sync() should emit both cells, got %q", out)
	}
}

func TestSyncSkipsUnchangedCells(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)
	grid := newFakeGrid(3, 1)
	grid.set(0, 0, wrecked.Cell{Ch: 'x'})

	if err := r.Sync(grid, fullRect(3, 1)); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	buf.Reset()

	// Nothing changed; re-syncing the same dirty region should write nothing.
	if err := r.Sync(grid, fullRect(3, 1)); err != nil {
		t.Fatalf("second Sync() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Sync() with no changes should write nothing, got %q", buf.String())
	}
}

func TestSyncRestrictedToDirtyRegion(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)
	grid := newFakeGrid(3, 1)
	if err := r.Sync(grid, fullRect(3, 1)); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	buf.Reset()

	// Change a cell outside the dirty rect the caller passes; Sync must not
	// notice it, since it trusts the caller's dirty region.
	grid.set(2, 0, wrecked.Cell{Ch: 'z'})
	if err := r.Sync(grid, geom.Rect{X: 0, Y: 0, W: 1, H: 1}); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if strings.Contains(buf.String(), "z") {
		t.Fatalf("Sync() should not touch cells outside the dirty rect, got %q", buf.String())
	}
}

func TestResizeForcesFullRedrawOnNextSync(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)
	grid := newFakeGrid(2, 1)
	grid.set(0, 0, wrecked.Cell{Ch: 'a'})
	if err := r.Sync(grid, fullRect(2, 1)); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	if err := r.Resize(2, 1); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	buf.Reset()

	// Same content, but Resize invalidated r.last, so the next Sync should
	// redraw even though nothing in the grid changed.
	if err := r.Sync(grid, geom.Rect{}); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if !strings.Contains(buf.String(), "a") {
		t.Fatalf("Sync() after Resize() should redraw unconditionally, got %q", buf.String())
	}
}

func TestWriteSGRDiffZeroEffectUsesFullReset(t *testing.T) {
	r := New(&strings.Builder{})
	var sb strings.Builder
	r.curPrimed = true
	r.cur = wrecked.Effect(0).WithBold()

	r.writeSGRDiff(&sb, 0)

	if sb.String() != ansi.ResetStyle {
		t.Fatalf("writeSGRDiff(0) = %q, want full reset %q", sb.String(), ansi.ResetStyle)
	}
}

func TestWriteSGRDiffSkipsWhenUnchanged(t *testing.T) {
	r := New(&strings.Builder{})
	want := wrecked.Effect(0).WithFgColor(wrecked.Red)
	r.curPrimed = true
	r.cur = want

	var sb strings.Builder
	r.writeSGRDiff(&sb, want)
	if sb.Len() != 0 {
		t.Fatalf("writeSGRDiff() with no change should emit nothing, got %q", sb.String())
	}
}

func TestWriteSGRDiffOnlyChangedChannel(t *testing.T) {
	r := New(&strings.Builder{})
	r.curPrimed = true
	r.cur = wrecked.Effect(0).WithFgColor(wrecked.Red).WithBgColor(wrecked.Blue)
	want := wrecked.Effect(0).WithFgColor(wrecked.Green).WithBgColor(wrecked.Blue)

	var sb strings.Builder
	r.writeSGRDiff(&sb, want)
	out := sb.String()
	if !strings.Contains(out, "32") {
		t.Fatalf("writeSGRDiff() should emit the new fg param (32), got %q", out)
	}
	if strings.Contains(out, "44") {
		t.Fatalf("writeSGRDiff() should not re-emit the unchanged bg param, got %q", out)
	}
}

func TestWriteSGRDiffBrightColorUsesHighIntensityParam(t *testing.T) {
	r := New(&strings.Builder{})
	r.curPrimed = true
	r.cur = 0
	want := wrecked.Effect(0).WithFgColor(wrecked.Red | wrecked.Bright)

	var sb strings.Builder
	r.writeSGRDiff(&sb, want)
	if !strings.Contains(sb.String(), "91") {
		t.Fatalf("bright red fg should use param 91, got %q", sb.String())
	}
}

func TestInitEntersAltScreenAndHidesCursor(t *testing.T) {
	r := New(&strings.Builder{})
	out := string(r.Init(true, true))
	if !strings.Contains(out, altScreenEnable) {
		t.Fatalf("Init(true, true) missing alt-screen enable, got %q", out)
	}
	if !strings.Contains(out, ansi.HideCursor) {
		t.Fatalf("Init(true, true) missing cursor hide, got %q", out)
	}
}

func TestInitSkipsAltScreenWhenNotRequested(t *testing.T) {
	r := New(&strings.Builder{})
	out := string(r.Init(false, false))
	if strings.Contains(out, altScreenEnable) {
		t.Fatalf("Init(false, false) should not enter alt screen, got %q", out)
	}
}

func TestKillExitsAltScreenOnlyIfEntered(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)
	r.Init(true, false)
	buf.Reset()

	if err := r.Kill(); err != nil {
		t.Fatalf("Kill() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, ansi.ShowCursor) || !strings.Contains(out, ansi.ResetStyle) {
		t.Fatalf("Kill() should show cursor and reset style, got %q", out)
	}
	if !strings.Contains(out, altScreenDisable) {
		t.Fatalf("Kill() should exit alt screen since Init entered it, got %q", out)
	}
}

func TestKillSkipsAltScreenExitWhenNeverEntered(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)

	if err := r.Kill(); err != nil {
		t.Fatalf("Kill() error = %v", err)
	}
	if strings.Contains(buf.String(), altScreenDisable) {
		t.Fatalf("Kill() should not exit alt screen it never entered, got %q", buf.String())
	}
}
