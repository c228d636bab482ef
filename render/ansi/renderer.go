// Package ansi implements wrecked.Renderer on top of an ANSI terminal: it
// diffs the composed grid against the last-emitted grid and writes a
// minimized stream of cursor moves, SGR changes, and literal characters
// (spec.md §4.4). The cell-diff-and-minimize technique is adapted from the
// teacher's RenderToANSI (render/bubbletea/renderer.go), generalized from a
// per-frame full-buffer dump to an incremental diff against what was
// actually last written, and rebuilt on 4-bit indexed SGR parameters
// (github.com/charmbracelet/x/ansi) instead of 24-bit truecolor.
package ansi

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"

	"github.com/quintinfsmith/wrecked"
	"github.com/quintinfsmith/wrecked/geom"
)

// Renderer writes the minimized ANSI stream of spec.md §4.4 to out. It
// carries its own mutex (unlike wrecked.RectManager's core) because it
// plays the double-buffer role the teacher's render/bubbletea.Renderer
// plays at the one goroutine boundary a bubbletea program crosses: Sync
// runs on the update goroutine while a host program's own render loop may
// read renderer state from a ticker goroutine (SPEC_FULL.md §5).
type Renderer struct {
	mu         sync.RWMutex
	out        io.Writer
	profile    colorprofile.Profile
	width      int
	height     int
	last       [][]wrecked.Cell
	cur        wrecked.Effect
	curPrimed  bool
	enteredAlt bool
}

// New creates a Renderer that writes the 4-bit ANSI profile to out,
// matching the profile the teacher forces in examples/bubbletea-demo.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out, profile: colorprofile.ANSI}
}

// Init returns the bytes to write once at startup: an optional switch to
// the alternate screen buffer and an optional cursor hide (spec.md §6).
// Supplemented from the original's terminal setup path (SPEC_FULL.md §9);
// the raw-mode entry itself stays a binding-layer concern.
func (r *Renderer) Init(enterAlt, hideCursor bool) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	if enterAlt {
		sb.WriteString(altScreenEnable)
		r.enteredAlt = true
	}
	if hideCursor {
		sb.WriteString(ansi.HideCursor)
	}
	return []byte(sb.String())
}

// Sync diffs grid against the last-emitted grid, restricted to dirty, and
// writes whatever bytes are needed to bring the terminal's region up to
// date.
func (r *Renderer) Sync(grid wrecked.Grid, dirty geom.Rect) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, h := grid.Width(), grid.Height()
	if r.last == nil || w != r.width || h != r.height {
		r.allocate(w, h)
		dirty = geom.Rect{X: 0, Y: 0, W: w, H: h}
	}

	box := dirty.Intersect(geom.Rect{X: 0, Y: 0, W: w, H: h})
	if box.Empty() {
		return nil
	}

	var sb strings.Builder
	for y := box.Y; y < box.Y+box.H; y++ {
		inRun := false
		for x := box.X; x < box.X+box.W; x++ {
			cell := grid.At(x, y)
			if r.last[y][x] == cell {
				inRun = false
				continue
			}
			if !inRun {
				sb.WriteString(ansi.SetCursorPosition(x+1, y+1))
				inRun = true
			}
			r.writeSGRDiff(&sb, cell.Fx)
			sb.WriteRune(orDefault(cell.Ch))
			r.last[y][x] = cell
		}
	}

	if sb.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(r.out, sb.String())
	return err
}

// Resize invalidates the last-emitted grid so the next Sync performs a
// full redraw at the new dimensions.
func (r *Renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = nil
	r.curPrimed = false
	return nil
}

// Kill writes the teardown sequence: cursor show, style reset, and an
// alternate-screen exit if Init entered one.
func (r *Renderer) Kill() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(ansi.ShowCursor)
	sb.WriteString(ansi.ResetStyle)
	if r.enteredAlt {
		sb.WriteString(altScreenDisable)
		r.enteredAlt = false
	}
	_, err := io.WriteString(r.out, sb.String())
	return err
}

func (r *Renderer) allocate(w, h int) {
	r.last = make([][]wrecked.Cell, h)
	for y := range r.last {
		r.last[y] = make([]wrecked.Cell, w)
		for x := range r.last[y] {
			r.last[y][x] = wrecked.Cell{Ch: ' '}
		}
	}
	r.width, r.height = w, h
	r.curPrimed = false
}

// writeSGRDiff emits the minimal SGR parameter set needed to move the
// terminal's current attribute state to want, per spec.md §4.4's sequence
// forms. A want that is the pure default (no fg, no bg, no flags) is
// emitted as a single full reset ("0") rather than one clear per channel.
func (r *Renderer) writeSGRDiff(sb *strings.Builder, want wrecked.Effect) {
	if r.curPrimed && r.cur == want {
		return
	}
	if want == 0 {
		sb.WriteString(ansi.ResetStyle)
		r.cur = 0
		r.curPrimed = true
		return
	}

	var params []string

	curFg, curFgSet := r.cur.FgColor()
	wantFg, wantFgSet := want.FgColor()
	if !r.curPrimed || curFgSet != wantFgSet || curFg != wantFg {
		params = append(params, fgParam(wantFg, wantFgSet))
	}

	curBg, curBgSet := r.cur.BgColor()
	wantBg, wantBgSet := want.BgColor()
	if !r.curPrimed || curBgSet != wantBgSet || curBg != wantBg {
		params = append(params, bgParam(wantBg, wantBgSet))
	}

	if !r.curPrimed || r.cur.Bold() != want.Bold() {
		params = append(params, flagParam(want.Bold(), "1", "22"))
	}
	if !r.curPrimed || r.cur.Underline() != want.Underline() {
		params = append(params, flagParam(want.Underline(), "4", "24"))
	}
	if !r.curPrimed || r.cur.Invert() != want.Invert() {
		params = append(params, flagParam(want.Invert(), "7", "27"))
	}

	if len(params) > 0 {
		sb.WriteString("\x1b[")
		sb.WriteString(strings.Join(params, ";"))
		sb.WriteByte('m')
	}
	r.cur = want
	r.curPrimed = true
}

func flagParam(set bool, onCode, offCode string) string {
	if set {
		return onCode
	}
	return offCode
}

func fgParam(c wrecked.Color, set bool) string {
	if !set {
		return "39"
	}
	if c >= wrecked.Bright {
		return "9" + strconv.Itoa(int(c&0x07))
	}
	return "3" + strconv.Itoa(int(c))
}

func bgParam(c wrecked.Color, set bool) string {
	if !set {
		return "49"
	}
	if c >= wrecked.Bright {
		return "10" + strconv.Itoa(int(c&0x07))
	}
	return "4" + strconv.Itoa(int(c))
}

func orDefault(ch rune) rune {
	if ch == 0 {
		return ' '
	}
	return ch
}

// Raw alternate-screen toggle sequences (spec.md §6). Not sourced from
// github.com/charmbracelet/x/ansi: the pack's examples reference an
// AltScreenBufferMode value for comparison but never the literal
// enable/disable sequence, so these are spec.md's own documented bytes
// rather than a guessed library symbol.
const (
	altScreenEnable  = "\x1b[?1049h"
	altScreenDisable = "\x1b[?1049l"
)
