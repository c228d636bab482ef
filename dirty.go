package wrecked

import "github.com/quintinfsmith/wrecked/geom"

// markCellDirty flags local cell (x,y) in rect r, then propagates the
// equivalent parent-space position upward, per spec.md §4.2: translate
// through r's offset and recurse into the parent, stopping at the root or
// at a disabled ancestor.
func (m *RectManager) markCellDirty(r *Rect, x, y int) {
	if !r.inBounds(x, y) {
		return
	}
	r.dirtyLocal[geom.Point{X: x, Y: y}] = struct{}{}
	m.propagateDirty(r, x, y)
}

// propagateDirty walks from r upward, translating (x,y) into each
// ancestor's coordinate space and marking it dirty there, stopping as soon
// as it reaches a disabled rect (an ancestor that does not itself
// contribute to its parent's view) or the root.
func (m *RectManager) propagateDirty(r *Rect, x, y int) {
	if !r.hasParent || !r.enabled {
		return
	}
	parent := m.rects[r.parent]
	px, py := x+r.offsetX, y+r.offsetY
	if !parent.inBounds(px, py) {
		return
	}
	parent.dirtyLocal[geom.Point{X: px, Y: py}] = struct{}{}
	m.propagateDirty(parent, px, py)
}

// escalateFullRefresh marks r fully dirty and propagates r's whole current
// footprint as dirty up through its ancestors, per spec.md §4.2's coupling
// of full_refresh escalation with parent-footprint dirtying ("structural
// changes... escalate full_refresh on r and flag the full... footprint
// dirty in the parent"). full_refresh is an idempotent escalation (spec.md
// §3's invariant): calling this twice in a row with no intervening render
// leaves the same state as calling it once.
//
// Callers changing a rect's footprint (move, resize, attach, detach,
// enable/disable) must separately mark the PRE-change footprint dirty in
// the parent before mutating offset/dimensions; this only covers the
// footprint as of the time it's called.
func (m *RectManager) escalateFullRefresh(r *Rect) {
	r.fullRefresh = true
	m.markFootprintDirtyInParent(r, r.footprint())
}

// markFootprintDirtyInParent marks footprint (already expressed in r's
// parent's coordinate space, e.g. from Rect.footprint()) dirty in r's
// parent, and propagates further up. Used for structural changes to r that
// affect how much of the parent it covers (move, resize, attach/detach,
// enable/disable): the caller passes r's pre- and post-change footprints
// so both the vacated and newly-covered parent cells recompose.
func (m *RectManager) markFootprintDirtyInParent(r *Rect, footprint geom.Rect) {
	if !r.hasParent {
		return
	}
	parent := m.rects[r.parent]
	clipped := footprint.Intersect(geom.Rect{X: 0, Y: 0, W: parent.width, H: parent.height})
	for y := clipped.Y; y < clipped.Y+clipped.H; y++ {
		for x := clipped.X; x < clipped.X+clipped.W; x++ {
			parent.dirtyLocal[geom.Point{X: x, Y: y}] = struct{}{}
			m.propagateDirty(parent, x, y)
		}
	}
}
