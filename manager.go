package wrecked

import (
	"github.com/quintinfsmith/wrecked/geom"
	"github.com/quintinfsmith/wrecked/term"
)

// Config configures a new RectManager: the root's initial size, the
// renderer it draws through, and (optionally) the size provider
// fit_to_terminal queries. Renderer and SizeProvider may be nil — a
// manager with no renderer composes but never emits, which is useful for
// testing the compositor in isolation.
type Config struct {
	Width, Height int
	Renderer      Renderer
	SizeProvider  term.SizeProvider
}

// RectManager owns the rect tree: it allocates and frees ids, enforces
// the structural invariants of spec.md §3 on every mutating operation,
// maintains a root rect sized to the terminal, and coordinates composition
// and rendering. It carries no mutex — per spec.md §5 the core is
// single-threaded and callers must serialize, the same shape as the
// teacher's own UI struct, which is unsynchronized at its core and only
// takes a lock at the one goroutine boundary its bubbletea renderer
// crosses (see wrecked/render/ansi.Renderer).
type RectManager struct {
	rects  map[ID]*Rect
	nextID ID

	renderer     Renderer
	sizeProvider term.SizeProvider
	composed     *sliceGrid
}

// New creates a manager with a root rect sized cfg.Width x cfg.Height.
func New(cfg Config) *RectManager {
	root := newRect(RootID, cfg.Width, cfg.Height)
	root.enabled = true
	return &RectManager{
		rects:        map[ID]*Rect{RootID: root},
		nextID:       RootID + 1,
		renderer:     cfg.Renderer,
		sizeProvider: cfg.SizeProvider,
		composed:     newSliceGrid(cfg.Width, cfg.Height),
	}
}

// get looks up a live rect by id, translating a missing or destroyed id
// into spec.md §7's NotFound.
func (m *RectManager) get(id ID) (*Rect, error) {
	r, ok := m.rects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Create allocates a new rect at (0,0) sized width x height and appends it
// as the last (topmost) child of parentID.
func (m *RectManager) Create(parentID ID, width, height int) (ID, error) {
	parent, err := m.get(parentID)
	if err != nil {
		return NoID, newError(CodeNotFound, "create", parentID)
	}

	id := m.nextID
	m.nextID++
	r := newRect(id, width, height)
	m.rects[id] = r
	m.attachChild(parent, r, -1)
	return id, nil
}

// Remove recursively destroys id and its whole subtree. Removing the root
// is rejected.
func (m *RectManager) Remove(id ID) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "remove", id)
	}
	if id == RootID {
		return newError(CodeNoParent, "remove", id)
	}
	parent := m.rects[r.parent]
	m.detachChild(parent, r)
	m.destroySubtree(r)
	return nil
}

// Attach detaches id if currently attached, then appends it as the
// topmost child of parentID. Fails if either id is unknown or if doing so
// would form a cycle.
func (m *RectManager) Attach(id, parentID ID) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "attach", id)
	}
	parent, err := m.get(parentID)
	if err != nil {
		return newError(CodeParentNotFound, "attach", parentID)
	}
	if wouldCycle(m, parent, r) {
		return newError(CodeNotFound, "attach", id)
	}

	if r.hasParent {
		oldParent := m.rects[r.parent]
		m.detachChild(oldParent, r)
	}
	m.attachChild(parent, r, -1)
	return nil
}

// Detach removes id from its current parent. Idempotent when id is
// already detached. Fails with NoParent for the root.
func (m *RectManager) Detach(id ID) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "detach", id)
	}
	if id == RootID {
		return newError(CodeNoParent, "detach", id)
	}
	if !r.hasParent {
		return nil
	}
	parent := m.rects[r.parent]
	m.detachChild(parent, r)
	return nil
}

// ReplaceWith detaches newID from its current location (if any), then
// swaps it into oldID's slot: same parent, same child-list index, same
// offset. oldID becomes detached.
func (m *RectManager) ReplaceWith(oldID, newID ID) error {
	oldR, err := m.get(oldID)
	if err != nil {
		return newError(CodeNotFound, "replace_with", oldID)
	}
	newR, err := m.get(newID)
	if err != nil {
		return newError(CodeNotFound, "replace_with", newID)
	}
	if !oldR.hasParent {
		return newError(CodeNoParent, "replace_with", oldID)
	}
	if wouldCycle(m, oldR, newR) {
		return newError(CodeNotFound, "replace_with", newID)
	}

	parent := m.rects[oldR.parent]
	idx := parent.indexOfChild(oldID)
	offX, offY := oldR.offsetX, oldR.offsetY

	if newR.hasParent {
		newParent := m.rects[newR.parent]
		m.detachChild(newParent, newR)
	}
	m.detachChild(parent, oldR)

	newR.offsetX, newR.offsetY = offX, offY
	m.attachChild(parent, newR, idx)
	return nil
}

// ClearChildren detaches and destroys every child of id.
func (m *RectManager) ClearChildren(id ID) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "clear_children", id)
	}
	children := append([]ID(nil), r.children...)
	for _, cid := range children {
		child := m.rects[cid]
		m.detachChild(r, child)
		m.destroySubtree(child)
	}
	return nil
}

// ClearCharacters empties id's grid, leaving its defaults, and flags
// full_refresh.
func (m *RectManager) ClearCharacters(id ID) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "clear_characters", id)
	}
	r.grid = make(map[geom.Point]rune)
	m.escalateFullRefresh(r)
	return nil
}

// SetPosition updates id's offset within its parent, flagging the union
// of the old and new footprints dirty in the parent.
func (m *RectManager) SetPosition(id ID, x, y int) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "set_position", id)
	}

	if r.hasParent {
		parent := m.rects[r.parent]
		oldFootprint := r.footprint()
		removeFromChildSpace(parent, r)
		m.markFootprintDirtyInParent(r, oldFootprint)
		r.offsetX, r.offsetY = x, y
		addToChildSpace(parent, r)
	} else {
		r.offsetX, r.offsetY = x, y
	}
	m.escalateFullRefresh(r)
	return nil
}

// Resize updates id's dimensions, clipping any grid entries and dirty
// marks now out of range, and re-registering id's occlusion footprint
// both in its own children (which may now extend beyond its shrunk
// bounds) and in its parent.
func (m *RectManager) Resize(id ID, w, h int) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "resize", id)
	}
	if w < 0 || h < 0 {
		return newError(CodeOutOfBounds, "resize", id)
	}

	var parent *Rect
	var oldFootprint geom.Rect
	if r.hasParent {
		parent = m.rects[r.parent]
		oldFootprint = r.footprint()
		removeFromChildSpace(parent, r)
	}

	for _, cid := range r.children {
		removeFromChildSpace(r, m.rects[cid])
	}

	r.width, r.height = w, h
	for p := range r.grid {
		if p.X >= w || p.Y >= h {
			delete(r.grid, p)
		}
	}
	for p := range r.dirtyLocal {
		if p.X >= w || p.Y >= h {
			delete(r.dirtyLocal, p)
		}
	}
	for _, cid := range r.children {
		addToChildSpace(r, m.rects[cid])
	}

	if parent != nil {
		addToChildSpace(parent, r)
	}
	m.escalateFullRefresh(r)
	if parent != nil {
		m.markFootprintDirtyInParent(r, oldFootprint)
	}
	return nil
}

// GetWidth returns id's width in cells.
func (m *RectManager) GetWidth(id ID) (int, error) {
	r, err := m.get(id)
	if err != nil {
		return 0, newError(CodeNotFound, "get_width", id)
	}
	return r.width, nil
}

// GetHeight returns id's height in cells.
func (m *RectManager) GetHeight(id ID) (int, error) {
	r, err := m.get(id)
	if err != nil {
		return 0, newError(CodeNotFound, "get_height", id)
	}
	return r.height, nil
}

// attachChild links child under parent at the given child-list index (-1
// appends as the topmost/last entry), registers its occlusion footprint,
// and escalates full_refresh so the new coverage is composed on next
// render. child.enabled is reset to true: spec.md §4.5 defines attach as
// a transition from Detached straight to Attached-Enabled.
func (m *RectManager) attachChild(parent, child *Rect, index int) {
	child.parent = parent.id
	child.hasParent = true
	child.enabled = true

	if index < 0 || index > len(parent.children) {
		parent.children = append(parent.children, child.id)
	} else {
		parent.children = append(parent.children, NoID)
		copy(parent.children[index+1:], parent.children[index:])
		parent.children[index] = child.id
	}

	addToChildSpace(parent, child)
	m.escalateFullRefresh(child)
}

// detachChild unlinks child from parent's child list and occlusion stack,
// marking the vacated footprint dirty in parent BEFORE the link is
// severed (spec.md §9's ghost-bookkeeping ordering).
func (m *RectManager) detachChild(parent, child *Rect) {
	removeFromChildSpace(parent, child)
	m.markFootprintDirtyInParent(child, child.footprint())

	if idx := parent.indexOfChild(child.id); idx >= 0 {
		parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
	}
	child.hasParent = false
}

// destroySubtree marks root and every descendant Destroyed and frees their
// table entries, walking iteratively (growStack) rather than recursing so
// traversal depth isn't bounded by the call stack.
func (m *RectManager) destroySubtree(root *Rect) {
	stack := newGrowStack[*Rect](8)
	stack.Push(root)
	for stack.Len() > 0 {
		r, _ := stack.Pop()
		for _, cid := range r.children {
			if c, ok := m.rects[cid]; ok {
				stack.Push(c)
			}
		}
		delete(m.rects, r.id)
	}
}

// wouldCycle reports whether attaching child under parent would make
// child transitively its own ancestor: true when child appears anywhere
// in parent's own ancestor chain, parent included.
func wouldCycle(m *RectManager, parent, child *Rect) bool {
	cur := parent
	for {
		if cur.id == child.id {
			return true
		}
		if !cur.hasParent {
			return false
		}
		cur = m.rects[cur.parent]
	}
}
