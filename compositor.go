package wrecked

import "github.com/quintinfsmith/wrecked/geom"

// addToChildSpace registers child's covering footprint in parent's
// occlusion stack. Per the resolution of the open question in spec.md §9,
// only in-parent positions (x >= 0, y >= 0, and within parent bounds) are
// inserted; a child straddling the parent's negative edge only occupies
// the stack at its visible cells.
func addToChildSpace(parent *Rect, child *Rect) {
	for y := 0; y < child.height; y++ {
		py := child.offsetY + y
		if py < 0 || py >= parent.height {
			continue
		}
		for x := 0; x < child.width; x++ {
			px := child.offsetX + x
			if px < 0 || px >= parent.width {
				continue
			}
			p := geom.Point{X: px, Y: py}
			ids := parent.childSpace[p]
			found := false
			for _, id := range ids {
				if id == child.id {
					found = true
					break
				}
			}
			if !found {
				parent.childSpace[p] = append(ids, child.id)
			}
		}
	}
}

// removeFromChildSpace undoes addToChildSpace for child's current
// footprint. Structural ops call this BEFORE changing child's offset or
// dimensions, per spec.md §9's ghost-bookkeeping note: vacate occupancy
// before the new state is recorded. The callers also mark the vacated
// parent cells dirty so the next composite pass can see them.
func removeFromChildSpace(parent *Rect, child *Rect) {
	for y := 0; y < child.height; y++ {
		py := child.offsetY + y
		if py < 0 || py >= parent.height {
			continue
		}
		for x := 0; x < child.width; x++ {
			px := child.offsetX + x
			if px < 0 || px >= parent.width {
				continue
			}
			p := geom.Point{X: px, Y: py}
			ids := parent.childSpace[p]
			for i, id := range ids {
				if id == child.id {
					parent.childSpace[p] = append(ids[:i], ids[i+1:]...)
					break
				}
			}
			if len(parent.childSpace[p]) == 0 {
				delete(parent.childSpace, p)
			}
		}
	}
}

func covers(parent *Rect, childID ID, p geom.Point) bool {
	for _, id := range parent.childSpace[p] {
		if id == childID {
			return true
		}
	}
	return false
}

// composeCellAt resolves the effective cell at local coordinate (x,y)
// within rectID, per the occlusion rule of spec.md §4.3: the topmost
// enabled covering child owns the cell unless it is transparent and has
// no explicit content there, in which case resolution proceeds down the
// stack; if the stack is exhausted, the rect's own grid supplies the cell.
//
// inherited is the effective default effect inherited from rectID's
// ancestors (spec.md §3: an Effect's unset channels mean "inherit from
// parent"). The bool result reports whether the returned cell came from
// explicit content (an explicitly-set character, or a non-transparent or
// explicitly-filled descendant) as opposed to a rect's bare default — the
// distinction transparency resolution needs.
func (m *RectManager) composeCellAt(rectID ID, x, y int, inherited Effect) (Cell, bool) {
	r := m.rects[rectID]
	effective := r.defaultEffect.Merge(inherited)

	p := geom.Point{X: x, Y: y}
	for i := len(r.children) - 1; i >= 0; i-- {
		childID := r.children[i]
		if !covers(r, childID, p) {
			continue
		}
		child := m.rects[childID]
		if !child.enabled {
			continue
		}
		clx, cly := x-child.offsetX, y-child.offsetY
		cell, explicit := m.composeCellAt(childID, clx, cly, effective)
		if child.transparent && !explicit {
			continue
		}
		return cell, true
	}

	if ch, ok := r.grid[p]; ok {
		return Cell{Ch: ch, Fx: effective}, true
	}
	return Cell{Ch: r.defaultCharacter, Fx: effective}, false
}

// inheritedEffect returns the effective default effect id's PARENT chain
// contributes, i.e. the value composeCellAt(id, ..., inherited) should be
// called with. Root (or a detached rect) inherits nothing.
func (m *RectManager) inheritedEffect(id ID) Effect {
	r := m.rects[id]
	if !r.hasParent {
		return 0
	}
	var chain []ID
	cur := r.parent
	for {
		chain = append(chain, cur)
		c := m.rects[cur]
		if !c.hasParent {
			break
		}
		cur = c.parent
	}
	var eff Effect
	for i := len(chain) - 1; i >= 0; i-- {
		eff = m.rects[chain[i]].defaultEffect.Merge(eff)
	}
	return eff
}

// absoluteOrigin returns the position of id's local (0,0) within the
// root's coordinate space.
func (m *RectManager) absoluteOrigin(id ID) (x, y int) {
	r := m.rects[id]
	for r.hasParent {
		x += r.offsetX
		y += r.offsetY
		r = m.rects[r.parent]
	}
	return x, y
}

// recompose performs the composite routine of spec.md §4.3 for id: for
// every locally-dirty cell (or the whole rect, if full_refresh), resolve
// the effective cell via composeCellAt and splice it into the manager's
// persistent composed grid at the corresponding absolute position. Dirty
// state is cleared as it is consumed. Returns the bounding box (in root
// coordinates) of everything touched, for the renderer's dirty hint.
func (m *RectManager) recompose(id ID) geom.Rect {
	r := m.rects[id]
	if !r.enabled {
		return geom.Rect{}
	}

	absX, absY := m.absoluteOrigin(id)
	inherited := m.inheritedEffect(id)

	touched := geom.Rect{}
	update := func(x, y int) {
		cell, _ := m.composeCellAt(id, x, y, inherited)
		m.composed.set(absX+x, absY+y, cell)
		touched = touched.Union(geom.Rect{X: absX + x, Y: absY + y, W: 1, H: 1})
	}

	if r.fullRefresh {
		for y := 0; y < r.height; y++ {
			for x := 0; x < r.width; x++ {
				update(x, y)
			}
		}
	} else {
		for p := range r.dirtyLocal {
			update(p.X, p.Y)
		}
	}

	r.dirtyLocal = make(map[geom.Point]struct{})
	r.fullRefresh = false
	return touched
}
