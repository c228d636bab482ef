package wrecked

// DisableRect toggles id's enabled flag off, treating it and its subtree
// as absent from composition. Per spec.md §8, this produces the same
// next-render output as detaching id.
func (m *RectManager) DisableRect(id ID) error {
	return m.setEnabled(id, "disable_rect", false)
}

// EnableRect toggles id's enabled flag on.
func (m *RectManager) EnableRect(id ID) error {
	return m.setEnabled(id, "enable_rect", true)
}

func (m *RectManager) setEnabled(id ID, op string, enabled bool) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, op, id)
	}
	if r.enabled == enabled {
		return nil
	}
	r.enabled = enabled
	m.escalateFullRefresh(r)
	return nil
}

// SetTransparency sets id's transparent flag. When true, id's own unset
// cells do not occlude whatever is beneath at the same screen cell; only
// id's explicitly-set cells (or a descendant's explicit content) do.
func (m *RectManager) SetTransparency(id ID, transparent bool) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, "set_transparency", id)
	}
	if r.transparent == transparent {
		return nil
	}
	r.transparent = transparent
	m.escalateFullRefresh(r)
	return nil
}
