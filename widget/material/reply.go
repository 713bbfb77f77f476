package material

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"

	"git.sr.ht/~converse/bubble"
	chatwidget "git.sr.ht/~converse/bubble/widget"
)

// ReplyStyle presents the message a bubble quotes: the nested bubble at
// reduced scale and opacity beside a colored indicator bar, beneath an
// optional label. The nested bubble is always a preview, so quoting
// never recurses past one level.
type ReplyStyle struct {
	// Nested is the quoted message's bubble, already faded.
	Nested MessageStyle
	// Label lays out the optional line above the block. Nil when the
	// caller supplied no label builder.
	Label layout.Widget
	// LabelGap separates the label from the preview block.
	LabelGap unit.Dp

	// Scale shrinks the nested bubble. Padding is applied before
	// scaling; reordering would change the effective inset.
	Scale float32
	// Inset offsets the nested bubble on the side opposite the
	// indicator.
	Inset unit.Dp

	// IndicatorOnLeft pins the bar to the left edge of the block; it
	// sits on the right when the viewing user authored the quoted
	// message.
	IndicatorOnLeft bool
	IndicatorWidth  unit.Dp
	IndicatorColor  color.NRGBA

	// Click tracks taps on the whole block.
	Click *widget.Clickable
}

// Reply constructs the style for a bubble's quoted message. replied must
// be msg.RepliedTo; its own RepliedTo field, if any, is ignored.
func Reply(th *Theme, interact *chatwidget.Row, replied *bubble.Message, cfg *Config) ReplyStyle {
	r := ReplyStyle{
		Nested:          NewMessage(th, &interact.Reply, replied, cfg, true).Faded(th.Reply.Alpha),
		LabelGap:        th.Reply.LabelGap,
		Scale:           th.Reply.Scale,
		Inset:           th.Reply.Inset,
		IndicatorOnLeft: !replied.LocalTo(cfg.LocalUserID),
		IndicatorWidth:  th.Reply.IndicatorWidth,
		IndicatorColor:  th.Palette.ReplyIndicator,
		Click:           &interact.ReplyClick,
	}
	if build := cfg.Overrides.ReplyLabel; build != nil {
		localIsAuthor := replied.LocalTo(cfg.LocalUserID)
		r.Label = func(gtx C) D {
			return build(gtx, replied, localIsAuthor)
		}
	}
	return r
}

// Layout the reply block.
func (r ReplyStyle) Layout(gtx C) D {
	if r.Label == nil {
		return r.layoutBlock(gtx)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(r.Label),
		layout.Rigid(layout.Spacer{Height: r.LabelGap}.Layout),
		layout.Rigid(r.layoutBlock),
	)
}

// layoutBlock stacks the scaled bubble, the indicator bar and the tap
// area.
func (r ReplyStyle) layoutBlock(gtx C) D {
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(r.layoutScaled),
		layout.Expanded(r.layoutIndicator),
		layout.Expanded(func(gtx C) D {
			if r.Click == nil {
				return D{}
			}
			return r.Click.Layout(gtx, func(gtx C) D {
				return D{Size: gtx.Constraints.Min}
			})
		}),
	)
}

// layoutScaled records the padded nested bubble and replays it under a
// scale transform.
func (r ReplyStyle) layoutScaled(gtx C) D {
	scale := r.Scale
	if scale <= 0 || scale > 1 {
		scale = 1
	}
	pad := layout.Inset{Right: r.Inset}
	if !r.IndicatorOnLeft {
		pad = layout.Inset{Left: r.Inset}
	}
	inner := gtx
	inner.Constraints.Min = image.Point{}
	inner.Constraints.Max.X = int(float32(gtx.Constraints.Max.X) / scale)
	macro := op.Record(gtx.Ops)
	dims := pad.Layout(inner, r.Nested.Layout)
	call := macro.Stop()
	defer op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(scale, scale))).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return D{Size: image.Point{
		X: int(float32(dims.Size.X)*scale + 0.5),
		Y: int(float32(dims.Size.Y)*scale + 0.5),
	}}
}

// layoutIndicator pins the colored bar to the full height of the block.
func (r ReplyStyle) layoutIndicator(gtx C) D {
	width := gtx.Dp(r.IndicatorWidth)
	x := 0
	if !r.IndicatorOnLeft {
		x = gtx.Constraints.Min.X - width
	}
	bar := image.Rect(x, 0, x+width, gtx.Constraints.Min.Y)
	paint.FillShape(gtx.Ops, r.IndicatorColor, clip.Rect(bar).Op())
	return D{Size: gtx.Constraints.Min}
}
