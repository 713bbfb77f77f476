package material

import (
	"testing"

	"gioui.org/widget"

	"git.sr.ht/~converse/bubble"
)

func TestStatusIcon(t *testing.T) {
	th := testTheme(t)
	var click widget.Clickable
	for _, tc := range []struct {
		status bubble.Status
		icon   *widget.Icon
		tinted bool
	}{
		{status: bubble.Sending, icon: SendingIcon},
		{status: bubble.Sent, icon: SentIcon},
		{status: bubble.Delivered, icon: SeenIcon},
		{status: bubble.Seen, icon: SeenIcon, tinted: true},
		{status: bubble.Error, icon: ErrorIcon, tinted: true},
	} {
		t.Run(tc.status.String(), func(t *testing.T) {
			msg := textMessage("me", "hi")
			msg.Status = tc.status
			s := StatusIcon(th, &click, msg, &Config{LocalUserID: "me"})
			if s.Icon != tc.icon {
				t.Errorf("wrong glyph for %v", tc.status)
			}
			switch tc.status {
			case bubble.Seen:
				if s.Color != th.Palette.Primary {
					t.Errorf("seen tint = %v, want %v", s.Color, th.Palette.Primary)
				}
			case bubble.Error:
				if s.Color != th.Palette.Danger {
					t.Errorf("error tint = %v, want %v", s.Color, th.Palette.Danger)
				}
			default:
				if tc.tinted {
					t.Fatalf("case %v marked tinted without expectation", tc.status)
				}
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	for _, tc := range []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0 B"},
		{n: 512, want: "512 B"},
		{n: 1024, want: "1.0 KB"},
		{n: 1536, want: "1.5 KB"},
		{n: 5 << 20, want: "5.0 MB"},
		{n: 3 << 30, want: "3.0 GB"},
	} {
		if got := formatSize(tc.n); got != tc.want {
			t.Errorf("formatSize(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
