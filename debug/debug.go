/*
Package debug provides tools for debugging bubble layout code.
*/
package debug

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Outline traces a thin black outline around the provided widget,
// making bubble and gutter boundaries visible.
func Outline(gtx C, w layout.Widget) D {
	return widget.Border{
		Color: color.NRGBA{A: 255},
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}
