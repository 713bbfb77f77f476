package emoji

import "testing"

func TestOnlyNever(t *testing.T) {
	for _, text := range []string{"", "😀", "😀😀", "hi", "😀 hi"} {
		if Only(Never, text) {
			t.Errorf("Only(Never, %q) = true, want false", text)
		}
	}
}

func TestOnlySingle(t *testing.T) {
	for _, tc := range []struct {
		text string
		want bool
	}{
		{"😀", true},
		{"👍🏽", true},                 // skin tone modifier
		{"👨‍👩‍👧‍👦", true},        // ZWJ family sequence
		{"🇳🇴", true},                // regional indicator flag
		{"1️⃣", true},                // keycap sequence
		{"❤️", true},                 // heart with variation selector
		{"😀😀", false},
		{"😀 ", false},
		{"a", false},
		{"😀a", false},
		{"", false},
		{"1", false},
	} {
		if got := Only(Single, tc.text); got != tc.want {
			t.Errorf("Only(Single, %q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestOnlyMulti(t *testing.T) {
	for _, tc := range []struct {
		text string
		want bool
	}{
		{"😀", true},
		{"😀😀", true},
		{"😀 😀", true},
		{"🚀 ✨ 🌖", true},
		{"👩‍🚀👨‍🚀", true},
		{"😀 hi", false},
		{"hi", false},
		{" ", false},
		{"", false},
		{"😀.", false},
	} {
		if got := Only(Multi, tc.text); got != tc.want {
			t.Errorf("Only(Multi, %q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
