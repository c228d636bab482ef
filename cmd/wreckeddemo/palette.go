package main

import "image/color"

// ansiPalette maps wrecked's 4-bit indexed Color (0-15) to the RGBA values
// a terminal emulator typically renders them as. Bubble Tea's Layer draws
// through ultraviolet with image/color.Color, which has no notion of an
// indexed palette, so the demo resolves the index itself before handing
// cells to uv.Screen. Values match the standard ANSI dark/bright pairs the
// teacher's own color-palette demo window draws (examples/bubbletea-demo
// /model.go's buildColorPalette).
var ansiPalette = [16]color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 170, G: 0, B: 0, A: 255},
	{R: 0, G: 170, B: 0, A: 255},
	{R: 170, G: 170, B: 0, A: 255},
	{R: 0, G: 0, B: 170, A: 255},
	{R: 170, G: 0, B: 170, A: 255},
	{R: 0, G: 170, B: 170, A: 255},
	{R: 170, G: 170, B: 170, A: 255},
	{R: 85, G: 85, B: 85, A: 255},
	{R: 255, G: 85, B: 85, A: 255},
	{R: 85, G: 255, B: 85, A: 255},
	{R: 255, G: 255, B: 85, A: 255},
	{R: 85, G: 85, B: 255, A: 255},
	{R: 255, G: 85, B: 255, A: 255},
	{R: 85, G: 255, B: 255, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}
