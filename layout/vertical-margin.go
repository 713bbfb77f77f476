package layout

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

// VerticalMarginStyle insets a widget on its top and bottom edges.
// Wrapping every conversation row in one as its outermost layout type
// keeps rows evenly spaced without crowding their neighbors.
type VerticalMarginStyle struct {
	Top    unit.Dp
	Bottom unit.Dp
}

// VerticalMargin configures a symmetric margin with a sensible default.
func VerticalMargin() VerticalMarginStyle {
	return VerticalMarginStyle{
		Top:    unit.Dp(4),
		Bottom: unit.Dp(4),
	}
}

// RowMargin configures the default margin beneath a message row.
func RowMargin() VerticalMarginStyle {
	return VerticalMarginStyle{
		Bottom: unit.Dp(4),
	}
}

// Layout the provided widget within the margin and return their combined
// dimensions.
func (v VerticalMarginStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return layout.Inset{
		Top:    v.Top,
		Bottom: v.Bottom,
	}.Layout(gtx, w)
}
