package material

import (
	"image"
	"testing"

	"gioui.org/font/gofont"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"git.sr.ht/~converse/bubble"
	"git.sr.ht/~converse/bubble/emoji"
	chatwidget "git.sr.ht/~converse/bubble/widget"
)

func testTheme(t *testing.T) *Theme {
	t.Helper()
	return NewTheme(gofont.Collection())
}

// testGtx builds a throwaway layout context that can run widget code
// without a GPU.
func testGtx(sz image.Point) layout.Context {
	return layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: 1,
			PxPerSp: 1,
		},
		Constraints: layout.Constraints{Max: sz},
		Queue:       new(router.Router),
	}
}

func textMessage(author, content string) *bubble.Message {
	return &bubble.Message{
		Serial:  "msg-" + author,
		Kind:    bubble.Text,
		Author:  bubble.UserRef{ID: author, Name: author},
		Content: content,
	}
}

func TestEmojiOnlyBubble(t *testing.T) {
	th := testTheme(t)
	base := material.Body1(th.Theme, "").TextSize
	enlarged := unit.Sp(float32(base) * th.EmojiScale)
	for _, tc := range []struct {
		name         string
		content      string
		policy       emoji.Policy
		hide         bool
		emojiOnly    bool
		noBackground bool
	}{
		{
			name:         "qualifying text drops the shell",
			content:      "\U0001F600\U0001F600",
			policy:       emoji.Multi,
			hide:         true,
			emojiOnly:    true,
			noBackground: true,
		},
		{
			name:      "shell kept when hiding is off",
			content:   "\U0001F600",
			policy:    emoji.Multi,
			emojiOnly: true,
		},
		{
			name:    "policy Never ignores emoji",
			content: "\U0001F600",
			policy:  emoji.Never,
			hide:    true,
		},
		{
			name:    "mixed text never qualifies",
			content: "hi \U0001F600",
			policy:  emoji.Multi,
			hide:    true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var interact chatwidget.Message
			cfg := Config{
				EmojiPolicy:         tc.policy,
				HideEmojiBackground: tc.hide,
			}
			m := NewMessage(th, &interact, textMessage("ada", tc.content), &cfg, false)
			if m.EmojiOnly != tc.emojiOnly {
				t.Errorf("EmojiOnly = %v, want %v", m.EmojiOnly, tc.emojiOnly)
			}
			if m.NoBackground != tc.noBackground {
				t.Errorf("NoBackground = %v, want %v", m.NoBackground, tc.noBackground)
			}
			want := base
			if tc.emojiOnly {
				want = enlarged
			}
			if got := m.Content.Styles[0].Size; got != want {
				t.Errorf("text size = %v, want %v", got, want)
			}
		})
	}
}

func TestBubbleOverrideWins(t *testing.T) {
	th := testTheme(t)
	want := image.Pt(77, 33)
	cfg := Config{
		EmojiPolicy:         emoji.Multi,
		HideEmojiBackground: true,
		Overrides: Overrides{
			Bubble: func(gtx C, body layout.Widget, msg *bubble.Message, grouped bool) D {
				return D{Size: want}
			},
		},
	}
	var interact chatwidget.Message
	// Even the transparent emoji case yields to a bubble override.
	m := NewMessage(th, &interact, textMessage("ada", "\U0001F600"), &cfg, false)
	if !m.NoBackground {
		t.Fatal("expected the emoji-transparent variant")
	}
	dims := m.Layout(testGtx(image.Pt(500, 500)))
	if dims.Size != want {
		t.Errorf("dims = %v, want %v", dims.Size, want)
	}
}

func TestKindDispatch(t *testing.T) {
	th := testTheme(t)
	gtxSize := image.Pt(500, 500)
	t.Run("kind without renderer collapses to nothing", func(t *testing.T) {
		for _, kind := range []bubble.Kind{bubble.Audio, bubble.Video, bubble.Custom} {
			var interact chatwidget.Message
			msg := &bubble.Message{Serial: "a", Kind: kind, Author: bubble.UserRef{ID: "ada"}}
			m := NewMessage(th, &interact, msg, &Config{}, false)
			dims := m.Layout(testGtx(gtxSize))
			if dims.Size != (image.Point{}) {
				t.Errorf("kind %v: dims = %v, want zero", kind, dims.Size)
			}
		}
	})
	t.Run("override renderer output is used verbatim", func(t *testing.T) {
		want := image.Pt(120, 48)
		var called bool
		cfg := Config{
			Overrides: Overrides{
				Audio: func(gtx C, msg *bubble.Message, preview bool) D {
					called = true
					return D{Size: want}
				},
			},
		}
		var interact chatwidget.Message
		msg := &bubble.Message{Serial: "a", Kind: bubble.Audio, Author: bubble.UserRef{ID: "ada"}}
		m := NewMessage(th, &interact, msg, &cfg, false)
		dims := m.Layout(testGtx(gtxSize))
		if !called {
			t.Fatal("override renderer never invoked")
		}
		if dims.Size != want {
			t.Errorf("dims = %v, want %v", dims.Size, want)
		}
	})
	t.Run("text renders nonzero", func(t *testing.T) {
		var interact chatwidget.Message
		m := NewMessage(th, &interact, textMessage("ada", "hello there"), &Config{}, false)
		dims := m.Layout(testGtx(gtxSize))
		if dims.Size.X == 0 || dims.Size.Y == 0 {
			t.Errorf("text bubble dims = %v, want nonzero", dims.Size)
		}
	})
}

func TestSenderLabel(t *testing.T) {
	th := testTheme(t)
	cfg := Config{LocalUserID: "me", ShowName: true}
	for _, tc := range []struct {
		name    string
		author  string
		preview bool
		want    bool
	}{
		{name: "other author labeled", author: "ada", want: true},
		{name: "own messages unlabeled", author: "me"},
		{name: "previews unlabeled", author: "ada", preview: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var interact chatwidget.Message
			m := NewMessage(th, &interact, textMessage(tc.author, "hi"), &cfg, tc.preview)
			if m.ShowSender != tc.want {
				t.Errorf("ShowSender = %v, want %v", m.ShowSender, tc.want)
			}
		})
	}
}

func TestFaded(t *testing.T) {
	th := testTheme(t)
	var interact chatwidget.Message
	m := NewMessage(th, &interact, textMessage("ada", "hi"), &Config{}, true)
	const alpha = 176
	faded := m.Faded(alpha)
	if faded.Bubble.Color.A != alpha {
		t.Errorf("bubble alpha = %d, want %d", faded.Bubble.Color.A, alpha)
	}
	for i, span := range faded.Content.Styles {
		if span.Color.A != alpha {
			t.Errorf("span %d alpha = %d, want %d", i, span.Color.A, alpha)
		}
	}
	if m.Bubble.Color.A != 255 {
		t.Errorf("Faded mutated the receiver: alpha %d", m.Bubble.Color.A)
	}
}

func TestMessageWidthClamp(t *testing.T) {
	th := testTheme(t)
	var interact chatwidget.Message
	long := "a very long message that should wrap rather than span the whole window " +
		"because bubbles clamp their width to the configured maximum"
	m := NewMessage(th, &interact, textMessage("ada", long), &Config{}, false)
	dims := m.Layout(testGtx(image.Pt(2000, 500)))
	if max := int(th.MaxMessageWidth); dims.Size.X > max {
		t.Errorf("bubble width %d exceeds maximum %d", dims.Size.X, max)
	}
}
