package layout

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
)

// Rounded lays out a widget with uniformly rounded corners.
type Rounded unit.Dp

func (r Rounded) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return Corners{
		NW: unit.Dp(r),
		NE: unit.Dp(r),
		SE: unit.Dp(r),
		SW: unit.Dp(r),
	}.Layout(gtx, w)
}

// Corners lays out a widget clipped to four independently rounded
// corners. A zero radius squares the corner.
type Corners struct {
	NW, NE, SE, SW unit.Dp
}

func (c Corners) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	defer clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NW:   gtx.Dp(c.NW),
		NE:   gtx.Dp(c.NE),
		SE:   gtx.Dp(c.SE),
		SW:   gtx.Dp(c.SW),
	}.Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return dims
}
