/*
Package bubble provides a message data model and composition widgets for
chat interfaces built with Gio.

The model types in this package are owned by the caller and treated as
immutable by every widget in the module: a render pass is a pure function
of a Message and the configuration supplied alongside it.
*/
package bubble

import (
	"image"
	"time"
)

// Kind is the closed set of message content variants.
type Kind uint8

const (
	Text Kind = iota
	Image
	File
	Audio
	Video
	Custom
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Image:
		return "image"
	case File:
		return "file"
	case Audio:
		return "audio"
	case Video:
		return "video"
	case Custom:
		return "custom"
	}
	return "unknown"
}

// Status describes the delivery state of a message.
type Status uint8

const (
	Sending Status = iota
	Sent
	Delivered
	Seen
	Error
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	case Delivered:
		return "delivered"
	case Seen:
		return "seen"
	case Error:
		return "error"
	}
	return "unknown"
}

// UserRef identifies a chat participant. Authorship is decided by
// comparing IDs, never by comparing struct values or pointers.
type UserRef struct {
	ID string
	// Name is an optional display name used by name labels and
	// avatar fallbacks.
	Name string
}

// FileInfo describes the payload of a File message.
type FileInfo struct {
	Name string
	Size int64
}

// Message is one chat message. Messages are immutable: widgets read them
// during layout and never write to them. The zero value is a valid empty
// text message.
//
// RepliedTo points at the message this one quotes, if any. Widgets render
// at most one level of quoting; a replied message's own RepliedTo field
// is ignored.
type Message struct {
	// Serial uniquely identifies the message within its conversation.
	Serial string
	Kind   Kind
	Author UserRef
	Status Status
	SentAt time.Time

	RepliedTo *Message

	// Content holds the text of a Text message.
	Content string
	// Picture holds the decoded content of an Image message.
	Picture image.Image
	// File holds the metadata of a File message.
	File FileInfo
	// Payload carries the caller-defined content of Audio, Video and
	// Custom messages. The module never inspects it; it is handed to
	// the caller's renderer for the kind.
	Payload interface{}
}

// ID returns the unique identifier for this message.
func (m *Message) ID() RowID {
	return RowID(m.Serial)
}

// LocalTo reports whether the message was authored by the user with the
// given ID.
func (m *Message) LocalTo(userID string) bool {
	return m.Author.ID == userID
}
