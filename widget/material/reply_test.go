package material

import (
	"image"
	"testing"

	chatwidget "git.sr.ht/~converse/bubble/widget"
)

func TestReplyNestsOneLevel(t *testing.T) {
	th := testTheme(t)
	// ada -> bob -> carol: composing ada's row must quote bob's message
	// as a preview without following bob's own quote of carol.
	carol := textMessage("carol", "root")
	bobMsg := textMessage("bob", "middle")
	bobMsg.RepliedTo = carol
	adaMsg := textMessage("ada", "top")
	adaMsg.RepliedTo = bobMsg

	var interact chatwidget.Row
	row := NewRow(th, &interact, nil, adaMsg, Config{LocalUserID: "me"})
	if row.Reply == nil {
		t.Fatal("row for a quoting message has no reply preview")
	}
	if row.Reply.Nested.Message != bobMsg {
		t.Errorf("preview quotes %q, want %q", row.Reply.Nested.Message.Serial, bobMsg.Serial)
	}
	if !row.Reply.Nested.Preview {
		t.Error("nested bubble not marked as a preview")
	}

	plain := textMessage("ada", "no quote")
	row = NewRow(th, &interact, nil, plain, Config{LocalUserID: "me"})
	if row.Reply != nil {
		t.Error("row without a quoted message grew a reply preview")
	}
}

func TestReplyIndicatorSide(t *testing.T) {
	th := testTheme(t)
	for _, tc := range []struct {
		name   string
		author string
		left   bool
	}{
		{name: "other author's quote bars on the left", author: "ada", left: true},
		{name: "own quote bars on the right", author: "me"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var interact chatwidget.Row
			cfg := Config{LocalUserID: "me"}
			r := Reply(th, &interact, textMessage(tc.author, "hi"), &cfg)
			if r.IndicatorOnLeft != tc.left {
				t.Errorf("IndicatorOnLeft = %v, want %v", r.IndicatorOnLeft, tc.left)
			}
		})
	}
}

func TestReplyFadesNestedBubble(t *testing.T) {
	th := testTheme(t)
	var interact chatwidget.Row
	cfg := Config{LocalUserID: "me"}
	r := Reply(th, &interact, textMessage("ada", "hi"), &cfg)
	if got := r.Nested.Bubble.Color.A; got != th.Reply.Alpha {
		t.Errorf("nested bubble alpha = %d, want %d", got, th.Reply.Alpha)
	}
	if r.Scale != th.Reply.Scale {
		t.Errorf("scale = %v, want %v", r.Scale, th.Reply.Scale)
	}
}

func TestReplyScaledDimensions(t *testing.T) {
	th := testTheme(t)
	var interact chatwidget.Row
	cfg := Config{LocalUserID: "me"}
	r := Reply(th, &interact, textMessage("ada", "hello"), &cfg)

	full := r.Nested.Layout(testGtx(image.Pt(400, 400)))
	block := r.layoutScaled(testGtx(image.Pt(400, 400)))
	if block.Size.Y >= full.Size.Y {
		t.Errorf("scaled preview height %d not smaller than full height %d",
			block.Size.Y, full.Size.Y)
	}
}

func TestReplyLayout(t *testing.T) {
	th := testTheme(t)
	var interact chatwidget.Row
	cfg := Config{LocalUserID: "me"}
	// The tap overlay spans the whole block.
	r := Reply(th, &interact, textMessage("ada", "hello"), &cfg)
	dims := r.Layout(testGtx(image.Pt(400, 400)))
	if dims.Size.X == 0 || dims.Size.Y == 0 {
		t.Errorf("reply block dims = %v, want nonzero", dims.Size)
	}
	r.Click = nil
	if dims = r.Layout(testGtx(image.Pt(400, 400))); dims.Size.Y == 0 {
		t.Error("reply block without a click tracker failed to lay out")
	}
}

func TestNewRowNilInteract(t *testing.T) {
	th := testTheme(t)
	row := NewRow(th, nil, nil, textMessage("ada", "hi"), Config{LocalUserID: "me"})
	if row.Interaction == nil {
		t.Fatal("nil interaction state not allocated")
	}
	dims := row.Layout(testGtx(image.Pt(600, 800)))
	if dims.Size.X == 0 || dims.Size.Y == 0 {
		t.Errorf("row dims = %v, want nonzero", dims.Size)
	}
}

func TestRowWiresVisibility(t *testing.T) {
	th := testTheme(t)
	var interact chatwidget.Row
	var seen []bool
	cfg := Config{
		LocalUserID: "me",
		Handlers: Handlers{
			OnVisible: func(visible bool) { seen = append(seen, visible) },
		},
	}
	NewRow(th, &interact, nil, textMessage("ada", "hi"), cfg)
	interact.Visibility.Notify(0.5)
	interact.Visibility.Notify(0.05)
	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Errorf("visibility callbacks = %v, want [true false]", seen)
	}
}

func TestRowLayout(t *testing.T) {
	th := testTheme(t)
	var interact chatwidget.Row
	msg := textMessage("ada", "hello")
	msg.RepliedTo = textMessage("me", "earlier")
	row := NewRow(th, &interact, nil, msg, Config{
		LocalUserID:     "me",
		ShowUserAvatars: true,
		ShowAvatar:      true,
	})
	dims := row.Layout(testGtx(image.Pt(600, 800)))
	if dims.Size.X == 0 || dims.Size.Y == 0 {
		t.Errorf("row dims = %v, want nonzero", dims.Size)
	}
}
