package material

import (
	"testing"

	"git.sr.ht/~converse/bubble"
	chatwidget "git.sr.ht/~converse/bubble/widget"
)

func TestAvatarInitial(t *testing.T) {
	for _, tc := range []struct {
		name   string
		author bubble.UserRef
		want   string
	}{
		{name: "first letter uppercased", author: bubble.UserRef{ID: "1", Name: "ada"}, want: "A"},
		{name: "leading spaces trimmed", author: bubble.UserRef{ID: "1", Name: "  bob"}, want: "B"},
		{name: "falls back to the ID", author: bubble.UserRef{ID: "zed"}, want: "Z"},
		{name: "nothing to show", author: bubble.UserRef{}, want: "?"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := initial(tc.author); got != tc.want {
				t.Errorf("initial(%+v) = %q, want %q", tc.author, got, tc.want)
			}
		})
	}
}

func TestAvatarFallback(t *testing.T) {
	th := testTheme(t)
	var cache chatwidget.CachedImage
	author := bubble.UserRef{ID: "u1", Name: "Ada"}
	a := Avatar(th, &cache, author, nil, &Config{})
	if a.Initial.Text != "A" {
		t.Errorf("fallback letter = %q, want A", a.Initial.Text)
	}
	if a.Badge != th.UserColor("u1") {
		t.Error("badge color not drawn from the user color table")
	}
	// The same user keeps the same color across avatars.
	b := Avatar(th, &cache, author, nil, &Config{})
	if a.Badge != b.Badge {
		t.Error("user color changed between renders")
	}
	want := th.Palette.OnPrimary
	if a.Badge.Luminance > 0.5 {
		want = th.Palette.OnSecondary
	}
	if a.Initial.Color != want {
		t.Error("fallback letter color ignores badge luminance")
	}
}
