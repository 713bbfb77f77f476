package material

import (
	"fmt"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"

	"git.sr.ht/~converse/bubble"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// FileIcon is the material design attachment glyph used by the built-in
// file renderer.
var FileIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.EditorAttachFile)
	return icon
}()

// layoutBody dispatches the message kind to its renderer. A caller
// override for the kind wins and its output is used verbatim. Text,
// Image and File have built-in defaults. Audio, Video, Custom and
// unrecognized kinds without an override degrade to an empty zero-size
// node; a missing renderer is a fallback, not an error.
func (m MessageStyle) layoutBody(gtx C) D {
	if m.body != nil {
		return m.body(gtx, m.Message, m.Preview)
	}
	switch m.Message.Kind {
	case bubble.Text:
		return m.layoutText(gtx)
	case bubble.Image:
		return m.layoutImage(gtx)
	case bubble.File:
		return m.layoutFile(gtx)
	}
	return D{}
}

// layoutText lays out the styled text, optionally beneath the sender
// label.
func (m MessageStyle) layoutText(gtx C) D {
	return m.ContentPadding.Layout(gtx, func(gtx C) D {
		if !m.ShowSender {
			return m.Content.Layout(gtx)
		}
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(m.Sender.Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(2)}.Layout),
			layout.Rigid(m.Content.Layout),
		)
	})
}

// layoutImage lays out the cached image, scaled down to fit and clipped
// to the bubble corners.
func (m MessageStyle) layoutImage(gtx C) D {
	if m.Interact == nil || m.Interact.Image.Empty() {
		return D{}
	}
	gtx.Constraints.Max.Y = gtx.Dp(m.MaxImageHeight)
	return m.Bubble.Corners.Layout(gtx, m.Img.Layout)
}

// layoutFile lays out the attachment glyph beside the file name and
// size.
func (m MessageStyle) layoutFile(gtx C) D {
	return m.ContentPadding.Layout(gtx, func(gtx C) D {
		return layout.Flex{
			Axis:      layout.Horizontal,
			Alignment: layout.Middle,
		}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				sideLength := gtx.Dp(unit.Dp(32))
				gtx.Constraints.Max.X = sideLength
				gtx.Constraints.Max.Y = sideLength
				gtx.Constraints.Min = gtx.Constraints.Constrain(gtx.Constraints.Min)
				if m.FileIcon == nil {
					return D{Size: gtx.Constraints.Max}
				}
				return m.FileIcon.Layout(gtx, m.FileName.Color)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(m.FileName.Layout),
					layout.Rigid(m.FileDetail.Layout),
				)
			}),
		)
	})
}

// formatSize renders a byte count in a compact human-readable form.
func formatSize(n int64) string {
	const kb = 1024
	if n < kb {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(kb), 0
	for m := n / kb; m >= kb; m /= kb {
		div *= kb
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}
