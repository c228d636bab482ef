package wrecked

import "testing"

func newTestManager(w, h int) *RectManager {
	return New(Config{Width: w, Height: h})
}

func TestCreateAppendsAsTopmostChild(t *testing.T) {
	m := newTestManager(10, 10)
	a, err := m.Create(RootID, 3, 3)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b, err := m.Create(RootID, 3, 3)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	root := m.rects[RootID]
	children := root.Children()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Fatalf("Children() = %v, want [%v %v]", children, a, b)
	}
}

func TestCreateUnknownParentFails(t *testing.T) {
	m := newTestManager(10, 10)
	if _, err := m.Create(ID(999), 1, 1); CodeOf(err) != CodeNotFound {
		t.Fatalf("Create() with bad parent: got %v, want NotFound", err)
	}
}

func TestRemoveRootRejected(t *testing.T) {
	m := newTestManager(10, 10)
	if err := m.Remove(RootID); CodeOf(err) != CodeNoParent {
		t.Fatalf("Remove(root) = %v, want NoParent", err)
	}
}

func TestRemoveDestroysSubtree(t *testing.T) {
	m := newTestManager(10, 10)
	a, _ := m.Create(RootID, 5, 5)
	b, _ := m.Create(a, 2, 2)
	if err := m.Remove(a); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok := m.rects[a]; ok {
		t.Fatalf("a should be destroyed")
	}
	if _, ok := m.rects[b]; ok {
		t.Fatalf("descendant b should be destroyed along with a")
	}
	if _, err := m.get(b); CodeOf(err) != CodeNotFound {
		t.Fatalf("operating on destroyed b should be NotFound, got %v", err)
	}
}

func TestAttachRejectsCycle(t *testing.T) {
	m := newTestManager(10, 10)
	a, _ := m.Create(RootID, 5, 5)
	b, _ := m.Create(a, 2, 2)
	if err := m.Attach(a, b); err == nil {
		t.Fatalf("Attach() forming a cycle should fail")
	}
}

func TestAttachMovesBetweenParents(t *testing.T) {
	m := newTestManager(10, 10)
	a, _ := m.Create(RootID, 5, 5)
	b, _ := m.Create(RootID, 5, 5)
	child, _ := m.Create(a, 2, 2)

	if err := m.Attach(child, b); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if len(m.rects[a].Children()) != 0 {
		t.Fatalf("child should no longer be under a")
	}
	if len(m.rects[b].Children()) != 1 {
		t.Fatalf("child should now be under b")
	}
}

func TestDetachRootFails(t *testing.T) {
	m := newTestManager(10, 10)
	if err := m.Detach(RootID); CodeOf(err) != CodeNoParent {
		t.Fatalf("Detach(root) = %v, want NoParent", err)
	}
}

func TestDetachIsIdempotent(t *testing.T) {
	m := newTestManager(10, 10)
	a, _ := m.Create(RootID, 5, 5)
	if err := m.Detach(a); err != nil {
		t.Fatalf("first Detach() error = %v", err)
	}
	if err := m.Detach(a); err != nil {
		t.Fatalf("second Detach() on already-detached rect should be a no-op, got %v", err)
	}
	if m.rects[a].State() != Detached {
		t.Fatalf("a should be Detached")
	}
}

func TestReplaceWithPreservesSlotAndOffset(t *testing.T) {
	m := newTestManager(10, 10)
	a, _ := m.Create(RootID, 3, 3)
	m.SetPosition(a, 4, 5)
	b, _ := m.Create(RootID, 3, 3)

	if err := m.ReplaceWith(a, b); err != nil {
		t.Fatalf("ReplaceWith() error = %v", err)
	}
	if m.rects[a].State() != Detached {
		t.Fatalf("a should be detached after being replaced")
	}
	bx, by := m.rects[b].Offset()
	if bx != 4 || by != 5 {
		t.Fatalf("b should inherit a's offset, got (%d,%d)", bx, by)
	}
	children := m.rects[RootID].Children()
	if len(children) != 1 || children[0] != b {
		t.Fatalf("root should have exactly b as its child, got %v", children)
	}
}

func TestClearChildrenDestroysAll(t *testing.T) {
	m := newTestManager(10, 10)
	a, _ := m.Create(RootID, 3, 3)
	b, _ := m.Create(RootID, 3, 3)
	if err := m.ClearChildren(RootID); err != nil {
		t.Fatalf("ClearChildren() error = %v", err)
	}
	if len(m.rects[RootID].Children()) != 0 {
		t.Fatalf("root should have no children left")
	}
	if _, ok := m.rects[a]; ok {
		t.Fatalf("a should be destroyed")
	}
	if _, ok := m.rects[b]; ok {
		t.Fatalf("b should be destroyed")
	}
}

func TestResizeShrinkDiscardsOutOfRangeContent(t *testing.T) {
	m := newTestManager(10, 10)
	a, _ := m.Create(RootID, 5, 5)
	m.SetCharacter(a, 4, 4, "x")

	if err := m.Resize(a, 2, 2); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if _, err := m.GetCell(a, 4, 4); CodeOf(err) != CodeOutOfBounds {
		t.Fatalf("GetCell() out of new bounds should be OutOfBounds, got %v", err)
	}
	cell, err := m.GetCell(a, 0, 0)
	if err != nil {
		t.Fatalf("GetCell() error = %v", err)
	}
	if cell.Ch != ' ' {
		t.Fatalf("shrunk rect's remaining cell should be the default, got %q", cell.Ch)
	}
}

func TestSetFgColorBadColorRejected(t *testing.T) {
	m := newTestManager(10, 10)
	a, _ := m.Create(RootID, 3, 3)
	if err := m.SetFgColor(a, Color(16)); CodeOf(err) != CodeBadColor {
		t.Fatalf("SetFgColor(16) = %v, want BadColor", err)
	}
}

func TestDisableRectMatchesDetachOnNextRender(t *testing.T) {
	m := newTestManager(4, 1)
	a, _ := m.Create(RootID, 2, 1)
	m.SetCharacter(a, 0, 0, "x")
	m.Render(RootID)

	if err := m.DisableRect(a); err != nil {
		t.Fatalf("DisableRect() error = %v", err)
	}
	m.Render(RootID)
	cell := m.Grid().At(0, 0)
	if cell.Ch == 'x' {
		t.Fatalf("disabled rect's content should not be composed")
	}
}
