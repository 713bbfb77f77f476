package widget

import (
	"gioui.org/widget"
	"gioui.org/x/component"
)

// Row holds persistent state for a single message row of a chat.
type Row struct {
	// ContextArea tracks long-press and right-click on the bubble.
	component.ContextArea
	// LongPressed records whether the context area was active during
	// the previous frame, to edge-trigger long-press callbacks.
	LongPressed bool

	// Message state for the primary bubble.
	Message
	// Reply state for the nested reply-preview bubble, if the message
	// quotes another.
	Reply Message
	// ReplyClick tracks taps on the reply-preview block.
	ReplyClick widget.Clickable
	// StatusClick tracks taps on the status icon.
	StatusClick widget.Clickable
	// Avatar caches the author's avatar image op.
	Avatar CachedImage
	// Visibility delivers visible-fraction events for this row.
	Visibility Observer
}
