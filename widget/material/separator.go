package material

import (
	"image"
	"time"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// SeparatorStyle configures a labeled horizontal rule between
// conversation rows.
type SeparatorStyle struct {
	Message    material.LabelStyle
	TextMargin layout.Inset
	LineMargin layout.Inset
	LineWidth  unit.Dp
}

// UnreadSeparator fills in a SeparatorStyle marking the boundary between
// read and unread messages.
func UnreadSeparator(th *Theme) SeparatorStyle {
	us := SeparatorStyle{
		Message:    material.Body1(th.Theme, "New Messages"),
		TextMargin: layout.UniformInset(unit.Dp(8)),
		LineMargin: layout.UniformInset(unit.Dp(8)),
		LineWidth:  unit.Dp(2),
	}
	us.Message.Color = th.Palette.Primary
	return us
}

// DateSeparator makes a SeparatorStyle indicating the transition to the
// provided date.
func DateSeparator(th *Theme, date time.Time) SeparatorStyle {
	ds := SeparatorStyle{
		Message:    material.Body1(th.Theme, date.Format("Mon Jan 2, 2006")),
		TextMargin: layout.UniformInset(unit.Dp(8)),
		LineMargin: layout.UniformInset(unit.Dp(8)),
		LineWidth:  unit.Dp(2),
	}
	ds.Message.Color = th.Palette.Secondary
	return ds
}

// Layout the separator.
func (u SeparatorStyle) Layout(gtx layout.Context) layout.Dimensions {
	layoutLine := func(gtx layout.Context) layout.Dimensions {
		return u.LineMargin.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			size := image.Point{
				X: gtx.Constraints.Max.X,
				Y: gtx.Dp(u.LineWidth),
			}
			paint.FillShape(gtx.Ops, u.Message.Color, clip.Rect(image.Rectangle{Max: size}).Op())
			return layout.Dimensions{Size: size}
		})
	}
	return layout.Flex{
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Flexed(.5, layoutLine),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return u.TextMargin.Layout(gtx, u.Message.Layout)
		}),
		layout.Flexed(.5, layoutLine),
	)
}
