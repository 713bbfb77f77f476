package material

import (
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/unit"

	"git.sr.ht/~converse/bubble"
	"git.sr.ht/~converse/bubble/emoji"
)

// BodyRenderer renders the body content of one message kind. preview is
// true when the message is being drawn inside a reply preview.
type BodyRenderer func(gtx C, msg *bubble.Message, preview bool) D

// BubbleRenderer replaces the whole bubble shell for a message. It
// receives the already-dispatched body widget and takes full ownership
// of backgrounds and clipping.
type BubbleRenderer func(gtx C, body layout.Widget, msg *bubble.Message, grouped bool) D

// Overrides enumerates the caller-supplied renderers. Every field is
// optional; a nil field selects the built-in behavior documented on
// the corresponding style type.
type Overrides struct {
	// Per-kind body renderers. When set, the renderer's output is used
	// verbatim: no default styling is applied in that branch.
	Text   BodyRenderer
	Image  BodyRenderer
	File   BodyRenderer
	Audio  BodyRenderer
	Video  BodyRenderer
	Custom BodyRenderer

	// Bubble replaces the bubble shell, winning over every default
	// including the transparent emoji case.
	Bubble BubbleRenderer
	// Status replaces the built-in status glyph.
	Status func(gtx C, msg *bubble.Message) D
	// Avatar replaces the built-in avatar widget.
	Avatar func(gtx C, author bubble.UserRef) D
	// ReplyLabel builds the optional label above a reply preview.
	// localIsAuthor reports whether the viewing user authored the
	// quoted message.
	ReplyLabel func(gtx C, replied *bubble.Message, localIsAuthor bool) D
}

// body returns the override renderer for a kind, or nil.
func (o Overrides) body(k bubble.Kind) BodyRenderer {
	switch k {
	case bubble.Text:
		return o.Text
	case bubble.Image:
		return o.Image
	case bubble.File:
		return o.File
	case bubble.Audio:
		return o.Audio
	case bubble.Video:
		return o.Video
	case bubble.Custom:
		return o.Custom
	}
	return nil
}

// Handlers enumerates the caller's gesture and visibility callbacks.
// Every field is optional.
type Handlers struct {
	OnTap       func(msg *bubble.Message)
	OnDoubleTap func(msg *bubble.Message)
	OnLongPress func(msg *bubble.Message)
	// OnReplyTap receives the quoted message, not the outer one.
	OnReplyTap  func(replied *bubble.Message)
	OnStatusTap func(msg *bubble.Message)
	// OnVisible receives visibility-threshold crossings observed by
	// the host's tracker; see widget.Observer.
	OnVisible func(visible bool)
}

// Config carries the per-render context for one message row. It is
// constructed by the caller per render pass and never retained.
type Config struct {
	// LocalUserID identifies the viewing user. Authorship is resolved
	// by comparing it against Message.Author.ID.
	LocalUserID string

	// EmojiPolicy selects when text messages render enlarged.
	EmojiPolicy emoji.Policy
	// HideEmojiBackground drops the bubble shell entirely for
	// emoji-only text messages.
	HideEmojiBackground bool

	// ShowName displays the author name above other authors' text.
	ShowName bool
	// ShowStatus displays a status icon beside the local user's rows.
	ShowStatus bool
	// LeftStatus places the status icon before the bubble column
	// instead of after it.
	LeftStatus bool
	// ShowUserAvatars reserves an avatar slot on other authors' rows.
	ShowUserAvatars bool
	// ShowAvatar draws this row's avatar. When false with
	// ShowUserAvatars set, a fixed-width spacer keeps grouped rows
	// aligned.
	ShowAvatar bool

	// Grouped marks this message as continuing a run of messages from
	// the same author, rounding the corner that would otherwise square
	// against its neighbor.
	Grouped bool
	// RTL selects direction-relative placement.
	RTL RTLAlignment
	// MessageWidth constrains the bubble column. Zero selects the
	// theme default.
	MessageWidth unit.Dp
	// Insets is the platform safe area, added to the outward gutter.
	Insets system.Insets

	Overrides Overrides
	Handlers  Handlers
}
