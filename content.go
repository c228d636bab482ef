package wrecked

import (
	"unicode/utf8"

	"github.com/quintinfsmith/wrecked/geom"
)

// SetCharacter decodes ch as exactly one UTF-8 character and stores it at
// local (x,y) in id's grid, marking the cell dirty.
func (m *RectManager) SetCharacter(id ID, x, y int, ch string) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "set_character", id)
	}
	rn, size := utf8.DecodeRuneInString(ch)
	if rn == utf8.RuneError || size != len(ch) {
		return newError(CodeInvalidUTF8, "set_character", id)
	}
	if !r.inBounds(x, y) {
		return newError(CodeOutOfBounds, "set_character", id)
	}
	r.grid[geom.Point{X: x, Y: y}] = rn
	m.markCellDirty(r, x, y)
	return nil
}

// SetString lays out s left-to-right starting at (x,y) without wrapping,
// stopping at the first column that would fall outside id's width and
// failing StringOverflow there. It returns the number of runes actually
// written before any such failure — the original FFI contract returns only
// an error code, but a caller chaining further writes commonly needs to
// know where to resume without re-deriving it from len(s) (SPEC_FULL.md §9).
func (m *RectManager) SetString(id ID, x, y int, s string) (int, error) {
	r, err := m.get(id)
	if err != nil {
		return 0, newError(CodeNotFound, "set_string", id)
	}
	if !utf8.ValidString(s) {
		return 0, newError(CodeInvalidUTF8, "set_string", id)
	}
	if y < 0 || y >= r.height {
		return 0, newError(CodeOutOfBounds, "set_string", id)
	}

	written := 0
	col := x
	for _, rn := range s {
		if col < 0 || col >= r.width {
			return written, newError(CodeStringOverflow, "set_string", id)
		}
		r.grid[geom.Point{X: col, Y: y}] = rn
		m.markCellDirty(r, col, y)
		written++
		col++
	}
	return written, nil
}

// UnsetCharacter reverts local cell (x,y) in id to its default character
// and effect.
func (m *RectManager) UnsetCharacter(id ID, x, y int) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "unset_character", id)
	}
	if !r.inBounds(x, y) {
		return newError(CodeOutOfBounds, "unset_character", id)
	}
	delete(r.grid, geom.Point{X: x, Y: y})
	m.markCellDirty(r, x, y)
	return nil
}

// GetCell returns the effective local cell at (x,y) in id: its explicit
// character if set, otherwise id's default character, always rendered
// with id's own default_effect (not the tree-inherited effective effect
// composeCellAt would use — this is a local, not a composited, query).
// Supplemented from the original bindings' cell-read-back path
// (SPEC_FULL.md §9); not part of the distilled operation list.
func (m *RectManager) GetCell(id ID, x, y int) (Cell, error) {
	r, err := m.get(id)
	if err != nil {
		return Cell{}, newError(CodeNotFound, "get_cell", id)
	}
	if !r.inBounds(x, y) {
		return Cell{}, newError(CodeOutOfBounds, "get_cell", id)
	}
	return r.cellAt(x, y), nil
}

// ShiftContents translates every explicitly-set cell and every direct
// child's offset by (dx, dy); cells that fall outside id's bounds after
// the shift are discarded.
func (m *RectManager) ShiftContents(id ID, dx, dy int) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "shift_contents", id)
	}

	shifted := make(map[geom.Point]rune, len(r.grid))
	for p, ch := range r.grid {
		np := geom.Point{X: p.X + dx, Y: p.Y + dy}
		if r.inBounds(np.X, np.Y) {
			shifted[np] = ch
		}
	}
	r.grid = shifted

	for _, cid := range r.children {
		child := m.rects[cid]
		removeFromChildSpace(r, child)
		child.offsetX += dx
		child.offsetY += dy
		addToChildSpace(r, child)
	}

	m.escalateFullRefresh(r)
	return nil
}
