package wrecked

import "testing"

func TestEffectFgColorRoundTrip(t *testing.T) {
	var e Effect
	if _, ok := e.FgColor(); ok {
		t.Fatalf("zero-value Effect should have unset fg")
	}
	e = e.WithFgColor(Red)
	c, ok := e.FgColor()
	if !ok || c != Red {
		t.Fatalf("FgColor() = (%v, %v), want (Red, true)", c, ok)
	}
	e = e.WithoutFgColor()
	if _, ok := e.FgColor(); ok {
		t.Fatalf("WithoutFgColor() should clear the set bit")
	}
}

func TestEffectBgColorRoundTrip(t *testing.T) {
	var e Effect
	e = e.WithBgColor(Cyan | Bright)
	c, ok := e.BgColor()
	if !ok || c != Cyan|Bright {
		t.Fatalf("BgColor() = (%v, %v), want (Cyan|Bright, true)", c, ok)
	}
}

func TestEffectWithoutColorPreservesFlags(t *testing.T) {
	e := Effect(0).WithFgColor(Red).WithBgColor(Blue).WithBold().WithUnderline()
	e = e.WithoutColor()
	if _, ok := e.FgColor(); ok {
		t.Fatalf("WithoutColor() left fg set")
	}
	if _, ok := e.BgColor(); ok {
		t.Fatalf("WithoutColor() left bg set")
	}
	if !e.Bold() || !e.Underline() {
		t.Fatalf("WithoutColor() must not clear bold/underline (spec.md §9)")
	}
}

func TestEffectFlags(t *testing.T) {
	var e Effect
	e = e.WithBold().WithUnderline().WithInvert()
	if !e.Bold() || !e.Underline() || !e.Invert() {
		t.Fatalf("expected all three flags set")
	}
	e = e.WithoutBold()
	if e.Bold() {
		t.Fatalf("WithoutBold() did not clear bold")
	}
	if !e.Underline() || !e.Invert() {
		t.Fatalf("WithoutBold() must not disturb other flags")
	}
}

func TestEffectMergeInheritsOnlyUnsetChannels(t *testing.T) {
	parent := Effect(0).WithFgColor(Green).WithBgColor(Yellow)
	child := Effect(0).WithFgColor(Red) // bg left unset

	merged := child.Merge(parent)

	fg, ok := merged.FgColor()
	if !ok || fg != Red {
		t.Fatalf("Merge() should keep child's explicit fg, got (%v, %v)", fg, ok)
	}
	bg, ok := merged.BgColor()
	if !ok || bg != Yellow {
		t.Fatalf("Merge() should inherit parent's bg, got (%v, %v)", bg, ok)
	}
}

func TestEffectMergeBothUnsetStaysUnset(t *testing.T) {
	var parent, child Effect
	merged := child.Merge(parent)
	if _, ok := merged.FgColor(); ok {
		t.Fatalf("merging two unset effects should stay unset")
	}
}
