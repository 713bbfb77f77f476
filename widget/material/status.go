package material

import (
	"image/color"

	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"git.sr.ht/~converse/bubble"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// Built-in status glyphs.
var (
	SendingIcon *widget.Icon = mustIcon(icons.ActionSchedule)
	SentIcon    *widget.Icon = mustIcon(icons.NavigationCheck)
	SeenIcon    *widget.Icon = mustIcon(icons.ActionDoneAll)
	ErrorIcon   *widget.Icon = mustIcon(icons.AlertErrorOutline)
)

func mustIcon(data []byte) *widget.Icon {
	icon, _ := widget.NewIcon(data)
	return icon
}

// StatusIconStyle presents the delivery state of a message as a small
// tappable glyph beside the bubble column.
type StatusIconStyle struct {
	Message *bubble.Message
	// Icon is the built-in glyph for the message's status.
	Icon *widget.Icon
	// Color tints the glyph.
	Color color.NRGBA
	// Size is the glyph's side length.
	Size unit.Dp
	// Click tracks taps on the glyph.
	Click *widget.Clickable
	// Override replaces the built-in glyph entirely.
	Override func(gtx C, msg *bubble.Message) D
}

// StatusIcon selects the glyph and tint for a message's status.
func StatusIcon(th *Theme, click *widget.Clickable, msg *bubble.Message, cfg *Config) StatusIconStyle {
	s := StatusIconStyle{
		Message:  msg,
		Size:     unit.Dp(16),
		Click:    click,
		Color:    th.Palette.TextFor(false).Body,
		Override: cfg.Overrides.Status,
	}
	switch msg.Status {
	case bubble.Sending:
		s.Icon = SendingIcon
	case bubble.Sent:
		s.Icon = SentIcon
	case bubble.Delivered:
		s.Icon = SeenIcon
	case bubble.Seen:
		s.Icon = SeenIcon
		s.Color = th.Palette.Primary
	case bubble.Error:
		s.Icon = ErrorIcon
		s.Color = th.Palette.Danger
	}
	return s
}

// Layout the status glyph inside its tap area.
func (s StatusIconStyle) Layout(gtx C) D {
	return material.Clickable(gtx, s.Click, func(gtx C) D {
		if s.Override != nil {
			return s.Override(gtx, s.Message)
		}
		sideLength := gtx.Dp(s.Size)
		gtx.Constraints.Max.X = sideLength
		gtx.Constraints.Max.Y = sideLength
		gtx.Constraints.Min = gtx.Constraints.Constrain(gtx.Constraints.Min)
		if s.Icon == nil {
			return D{Size: gtx.Constraints.Max}
		}
		return s.Icon.Layout(gtx, s.Color)
	})
}
