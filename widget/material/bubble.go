package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	chatlayout "git.sr.ht/~converse/bubble/layout"
)

// BubbleStyle defines a colored surface with independently rounded
// corners.
type BubbleStyle struct {
	Corners chatlayout.Corners
	Color   color.NRGBA
}

// Bubble creates a BubbleStyle with the theme's secondary surface color
// and uniformly rounded corners.
func Bubble(th *Theme) BubbleStyle {
	return BubbleStyle{
		Corners: chatlayout.Corners{
			NW: th.BubbleRadius,
			NE: th.BubbleRadius,
			SE: th.BubbleRadius,
			SW: th.BubbleRadius,
		},
		Color: th.Palette.Secondary,
	}
}

// Layout renders the BubbleStyle beneath the provided widget, clipping
// the widget to the same corners.
func (c BubbleStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			surface := clip.RRect{
				Rect: image.Rectangle{Max: gtx.Constraints.Min},
				NW:   gtx.Dp(c.Corners.NW),
				NE:   gtx.Dp(c.Corners.NE),
				SE:   gtx.Dp(c.Corners.SE),
				SW:   gtx.Dp(c.Corners.SW),
			}
			paint.FillShape(gtx.Ops, c.Color, surface.Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return c.Corners.Layout(gtx, w)
		}),
	)
}
