package material

import (
	"image"

	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"gioui.org/x/richtext"

	"git.sr.ht/~converse/bubble"
	"git.sr.ht/~converse/bubble/emoji"
	chatwidget "git.sr.ht/~converse/bubble/widget"
)

// MessageStyle composes one message bubble: the dispatched body content
// wrapped in a shell with grouping-aware corners. It is the unit reused
// by both the main bubble and the scaled-down reply preview.
type MessageStyle struct {
	// Message is the immutable data being presented.
	Message *bubble.Message
	// Interact holds the stateful parts of this bubble.
	Interact *chatwidget.Message

	// Local indicates the viewing user authored the message.
	Local bool
	// Preview indicates the bubble is rendered inside a reply preview.
	Preview bool
	// Grouped mirrors Config.Grouped, forwarded to bubble overrides.
	Grouped bool
	// EmojiOnly marks text that qualified under the emoji policy.
	EmojiOnly bool
	// NoBackground drops the shell entirely (emoji-transparent case).
	NoBackground bool

	// Bubble is the resolved shell: fill color and corner radii.
	Bubble BubbleStyle
	// Override, when set, replaces the shell wholesale.
	Override BubbleRenderer
	// body is the caller's renderer for this kind, if any.
	body BodyRenderer

	// Content is the styled text of a Text message.
	Content richtext.TextStyle
	// Sender labels the author above other authors' text.
	Sender     material.LabelStyle
	ShowSender bool

	// Img presents the content of an Image message.
	Img widget.Image

	// FileIcon, FileName and FileDetail present a File message.
	FileIcon   *widget.Icon
	FileName   material.LabelStyle
	FileDetail material.LabelStyle

	ContentPadding  layout.Inset
	MaxMessageWidth unit.Dp
	MaxImageHeight  unit.Dp
}

// NewMessage constructs the style for one bubble. preview selects the
// reply-preview variant, which never shows a sender label and never
// renders its own quoted message.
func NewMessage(th *Theme, interact *chatwidget.Message, msg *bubble.Message, cfg *Config, preview bool) MessageStyle {
	local := msg.LocalTo(cfg.LocalUserID)
	emojiOnly := msg.Kind == bubble.Text && emoji.Only(cfg.EmojiPolicy, msg.Content)
	maxWidth := cfg.MessageWidth
	if maxWidth == 0 {
		maxWidth = th.MaxMessageWidth
	}
	m := MessageStyle{
		Message:      msg,
		Interact:     interact,
		Local:        local,
		Preview:      preview,
		Grouped:      cfg.Grouped,
		EmojiOnly:    emojiOnly,
		NoBackground: emojiOnly && cfg.HideEmojiBackground,
		Bubble: BubbleStyle{
			Corners: BubbleCorners(th.BubbleRadius, local, cfg.Grouped, cfg.RTL),
			Color:   th.BubbleColor(msg.Kind, local),
		},
		Override:        cfg.Overrides.Bubble,
		body:            cfg.Overrides.body(msg.Kind),
		ContentPadding:  layout.UniformInset(unit.Dp(8)),
		MaxMessageWidth: maxWidth,
		MaxImageHeight:  th.MaxImageHeight,
	}
	switch msg.Kind {
	case bubble.Text:
		l := material.Body1(th.Theme, "")
		size := l.TextSize
		if emojiOnly {
			size = unit.Sp(float32(size) * th.EmojiScale)
		}
		m.Content = richtext.Text(&interact.InteractiveText, th.Shaper, richtext.SpanStyle{
			Font:    l.Font,
			Size:    size,
			Color:   th.Palette.TextFor(local).Body,
			Content: msg.Content,
		})
		// Reply previews never label the author, to save vertical
		// space.
		if cfg.ShowName && !local && !preview {
			m.ShowSender = true
			m.Sender = material.Body2(th.Theme, msg.Author.Name)
			m.Sender.Color = th.UserColor(msg.Author.ID).NRGBA
			m.Sender.Font.Weight = text.SemiBold
		}
	case bubble.Image:
		interact.Image.Cache(msg.Picture)
		m.Img = widget.Image{
			Src:      interact.Image.Op(),
			Fit:      widget.ScaleDown,
			Position: layout.Center,
		}
		m.ContentPadding = layout.Inset{}
	case bubble.File:
		m.FileIcon = FileIcon
		m.FileName = material.Body1(th.Theme, msg.File.Name)
		m.FileName.Color = th.Palette.TextFor(local).Body
		m.FileDetail = material.Body2(th.Theme, formatSize(msg.File.Size))
		m.FileDetail.Color = component.WithAlpha(th.Palette.TextFor(local).Body, 200)
	}
	return m
}

// Faded returns a copy of the style with every resolved color reduced to
// the given alpha, used by reply previews.
func (m MessageStyle) Faded(alpha uint8) MessageStyle {
	m.Bubble.Color = component.WithAlpha(m.Bubble.Color, alpha)
	for i := range m.Content.Styles {
		m.Content.Styles[i].Color = component.WithAlpha(m.Content.Styles[i].Color, alpha)
	}
	m.Sender.Color = component.WithAlpha(m.Sender.Color, alpha)
	m.FileName.Color = component.WithAlpha(m.FileName.Color, alpha)
	m.FileDetail.Color = component.WithAlpha(m.FileDetail.Color, alpha)
	return m
}

// Layout the bubble. Exactly one of the caller's bubble override, the
// default shell, or the bare body (emoji-transparent case) is produced.
func (m MessageStyle) Layout(gtx C) D {
	if max := gtx.Dp(m.MaxMessageWidth); gtx.Constraints.Max.X > max {
		gtx.Constraints.Max.X = max
	}
	gtx.Constraints.Min = image.Point{}
	if m.Override != nil {
		return m.Override(gtx, m.layoutBody, m.Message, m.Grouped)
	}
	if m.NoBackground {
		return m.layoutBody(gtx)
	}
	return m.Bubble.Layout(gtx, m.layoutBody)
}
