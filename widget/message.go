package widget

import (
	"gioui.org/widget"
	"gioui.org/x/richtext"
)

// Message holds the state necessary to facilitate user interactions with
// one message bubble across frames.
type Message struct {
	richtext.InteractiveText
	// Clickable tracks taps and double-taps on the bubble.
	widget.Clickable
	// Image contains the cached image op for image message content.
	Image CachedImage
}
