package wrecked

// Render composes and emits the subtree rooted at id: a render on any rect
// behaves like a render on the root but restricted to that subtree's
// current absolute footprint (spec.md §4.1). If no renderer is configured,
// composition still runs (useful for tests that only assert on Grid())
// but nothing is emitted.
func (m *RectManager) Render(id ID) error {
	if _, err := m.get(id); err != nil {
		return newError(CodeNotFound, "render", id)
	}

	touched := m.recompose(id)
	if m.renderer == nil {
		return nil
	}
	if touched.Empty() {
		return nil
	}
	return m.renderer.Sync(m.composed, touched)
}

// Grid exposes the current composed buffer for callers that drive their
// own output stage instead of (or in addition to) the configured Renderer
// — e.g. cmd/wreckeddemo's bubbletea Layer, which copies cells into a
// uv.Screen rather than an ANSI byte stream.
func (m *RectManager) Grid() Grid {
	return m.composed
}

// FitToTerminal re-queries the terminal size from the configured
// SizeProvider; if it changed, resizes the root and reports true. With no
// SizeProvider configured this is a no-op.
func (m *RectManager) FitToTerminal() (bool, error) {
	if m.sizeProvider == nil {
		return false, nil
	}
	w, h, err := m.sizeProvider.TerminalSize()
	if err != nil {
		return false, err
	}

	root := m.rects[RootID]
	if w == root.width && h == root.height {
		return false, nil
	}
	if err := m.Resize(RootID, w, h); err != nil {
		return false, err
	}
	m.composed = newSliceGrid(w, h)
	if m.renderer != nil {
		if err := m.renderer.Resize(w, h); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Kill detaches and destroys all of the root's children, writes a
// terminal-reset sequence through the renderer, and releases its
// resources.
func (m *RectManager) Kill() error {
	root := m.rects[RootID]
	children := append([]ID(nil), root.children...)
	for _, cid := range children {
		child := m.rects[cid]
		m.detachChild(root, child)
		m.destroySubtree(child)
	}
	if m.renderer == nil {
		return nil
	}
	return m.renderer.Kill()
}
