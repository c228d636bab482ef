package wrecked

// withEffect applies transform to id's default_effect, and if the result
// differs from the previous value, escalates full_refresh (spec.md §4.1:
// "if the actual effect value changes, flags full_refresh").
func (m *RectManager) withEffect(id ID, op string, transform func(Effect) Effect) error {
	r, err := m.get(id)
	if err != nil {
		return newError(CodeNotFound, op, id)
	}
	before := r.defaultEffect
	r.defaultEffect = transform(before)
	if r.defaultEffect != before {
		m.escalateFullRefresh(r)
	}
	return nil
}

// SetFgColor sets id's default foreground color; c must be in 0..15.
func (m *RectManager) SetFgColor(id ID, c Color) error {
	if c > MaxColor {
		return newError(CodeBadColor, "set_fg_color", id)
	}
	return m.withEffect(id, "set_fg_color", func(e Effect) Effect { return e.WithFgColor(c) })
}

// SetBgColor sets id's default background color; c must be in 0..15.
func (m *RectManager) SetBgColor(id ID, c Color) error {
	if c > MaxColor {
		return newError(CodeBadColor, "set_bg_color", id)
	}
	return m.withEffect(id, "set_bg_color", func(e Effect) Effect { return e.WithBgColor(c) })
}

// UnsetFgColor reverts id's default foreground color to "inherit".
func (m *RectManager) UnsetFgColor(id ID) error {
	return m.withEffect(id, "unset_fg_color", Effect.WithoutFgColor)
}

// UnsetBgColor reverts id's default background color to "inherit".
func (m *RectManager) UnsetBgColor(id ID) error {
	return m.withEffect(id, "unset_bg_color", Effect.WithoutBgColor)
}

// UnsetColor clears id's default foreground and background only; the flag
// operations below are independent (spec.md §9's resolution of the
// historical unset_color ambiguity).
func (m *RectManager) UnsetColor(id ID) error {
	return m.withEffect(id, "unset_color", Effect.WithoutColor)
}

// SetBoldFlag / UnsetBoldFlag toggle id's default bold attribute.
func (m *RectManager) SetBoldFlag(id ID) error   { return m.withEffect(id, "set_bold_flag", Effect.WithBold) }
func (m *RectManager) UnsetBoldFlag(id ID) error { return m.withEffect(id, "unset_bold_flag", Effect.WithoutBold) }

// SetUnderlineFlag / UnsetUnderlineFlag toggle id's default underline
// attribute.
func (m *RectManager) SetUnderlineFlag(id ID) error {
	return m.withEffect(id, "set_underline_flag", Effect.WithUnderline)
}
func (m *RectManager) UnsetUnderlineFlag(id ID) error {
	return m.withEffect(id, "unset_underline_flag", Effect.WithoutUnderline)
}

// SetInvertFlag / UnsetInvertFlag toggle id's default invert attribute.
func (m *RectManager) SetInvertFlag(id ID) error {
	return m.withEffect(id, "set_invert_flag", Effect.WithInvert)
}
func (m *RectManager) UnsetInvertFlag(id ID) error {
	return m.withEffect(id, "unset_invert_flag", Effect.WithoutInvert)
}
