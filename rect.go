package wrecked

import "github.com/quintinfsmith/wrecked/geom"

// defaultCharacter is the character a cell resolves to when neither the
// cell itself nor the rect's default_character has been set otherwise.
const defaultCharacter = ' '

// Rect is a node in the composition tree: position within its parent,
// dimensions, an owned sparse character grid, default attributes, and the
// child list that defines z-order (later entries render on top). Field
// layout and the small getter methods below follow the teacher's
// Container type (container.go): a plain struct with id/rect/zindex-style
// accessors, adapted from an immediate-mode window record to a retained
// tree node.
type Rect struct {
	id     ID
	parent ID
	hasParent bool

	children []ID // z-order: index in the slice is the z-order

	offsetX, offsetY int
	width, height    int

	grid map[geom.Point]rune

	defaultCharacter rune
	defaultEffect    Effect

	enabled     bool
	transparent bool

	dirtyLocal  map[geom.Point]struct{}
	fullRefresh bool

	// childSpace is the occlusion stack (spec.md §4.3): for each local
	// position, the z-ordered ids of children covering it. Maintained
	// incrementally on attach/detach/move/resize/shift, never recomputed
	// wholesale on render. Enable/disable leave it unchanged; composition
	// skips disabled children when it scans the stack.
	childSpace map[geom.Point][]ID
}

func newRect(id ID, width, height int) *Rect {
	return &Rect{
		id:               id,
		width:            width,
		height:           height,
		grid:             make(map[geom.Point]rune),
		defaultCharacter: defaultCharacter,
		enabled:          true,
		dirtyLocal:       make(map[geom.Point]struct{}),
		fullRefresh:      true,
		childSpace:       make(map[geom.Point][]ID),
	}
}

// ID returns the rect's id.
func (r *Rect) ID() ID { return r.id }

// Parent returns the parent id and whether the rect is currently attached.
func (r *Rect) Parent() (ID, bool) { return r.parent, r.hasParent }

// Children returns the rect's children in z-order (later = on top). The
// returned slice is a copy; mutating it does not affect the tree.
func (r *Rect) Children() []ID {
	out := make([]ID, len(r.children))
	copy(out, r.children)
	return out
}

// Width returns the rect's width in cells.
func (r *Rect) Width() int { return r.width }

// Height returns the rect's height in cells.
func (r *Rect) Height() int { return r.height }

// Offset returns the rect's position within its parent's coordinate space.
func (r *Rect) Offset() (x, y int) { return r.offsetX, r.offsetY }

// Enabled reports whether the rect (and its subtree) participates in
// composition.
func (r *Rect) Enabled() bool { return r.enabled }

// Transparent reports whether the rect's own unset cells are see-through.
func (r *Rect) Transparent() bool { return r.transparent }

// State derives the rect's per-rect lifecycle state (spec.md §4.5) from its
// current hasParent/enabled fields. A removed rect has no Rect to call this
// on at all — RectManager deletes it from its table, so "Destroyed" is
// represented by absence rather than by a stored state here.
func (r *Rect) State() State {
	switch {
	case !r.hasParent:
		return Detached
	case r.enabled:
		return AttachedEnabled
	default:
		return AttachedDisabled
	}
}

// footprint returns the rect's bounding box within its parent's coordinate
// space: (offsetX, offsetY, width, height), pre-clip.
func (r *Rect) footprint() geom.Rect {
	return geom.Rect{X: r.offsetX, Y: r.offsetY, W: r.width, H: r.height}
}

// inBounds reports whether (x,y) is a valid local coordinate.
func (r *Rect) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// indexOfChild returns the index of childID in r.children, or -1.
func (r *Rect) indexOfChild(childID ID) int {
	for i, c := range r.children {
		if c == childID {
			return i
		}
	}
	return -1
}

// cellAt returns the effective local cell at (x,y): the explicit grid
// entry if present, otherwise the rect's default character/effect.
func (r *Rect) cellAt(x, y int) Cell {
	p := geom.Point{X: x, Y: y}
	if ch, ok := r.grid[p]; ok {
		return Cell{Ch: ch, Fx: r.defaultEffect}
	}
	return Cell{Ch: r.defaultCharacter, Fx: r.defaultEffect}
}

// hasExplicitCell reports whether (x,y) has been explicitly set, as
// opposed to resolving to the rect's defaults. composeCellAt's transparency
// resolution makes the same check by reading r.grid directly and does not
// call this.
func (r *Rect) hasExplicitCell(x, y int) bool {
	_, ok := r.grid[geom.Point{X: x, Y: y}]
	return ok
}
