/*
Package emoji classifies message text for emoji-only enlargement.

Classification works on extended grapheme clusters (UAX #29) so that
multi-codepoint sequences such as ZWJ families, skin-tone modified
emoji and regional-indicator flags count as a single emoji.
*/
package emoji

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Policy selects when message text qualifies for emoji enlargement.
type Policy uint8

const (
	// Never disables classification entirely.
	Never Policy = iota
	// Single matches text that is exactly one emoji.
	Single
	// Multi matches text that is one or more emoji, optionally
	// separated by whitespace, and nothing else.
	Multi
)

// Only reports whether text qualifies as emoji-only under the policy.
// It is a pure function of its inputs.
func Only(policy Policy, text string) bool {
	if policy == Never || text == "" {
		return false
	}
	var emojis, others int
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Runes()
		switch {
		case isSpace(cluster):
			if policy == Single {
				return false
			}
		case isEmoji(cluster):
			emojis++
		default:
			others++
		}
	}
	if others > 0 || emojis == 0 {
		return false
	}
	if policy == Single {
		return emojis == 1
	}
	return true
}

// isSpace reports whether the cluster consists solely of whitespace.
func isSpace(cluster []rune) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// isEmoji reports whether a single grapheme cluster renders as emoji.
// At least one rune must be an emoji base; the rest must be joiners,
// variation selectors, modifiers or further bases.
func isEmoji(cluster []rune) bool {
	base := false
	for _, r := range cluster {
		switch {
		case emojiBase(r):
			base = true
		case joiner(r):
		case keycapBase(r):
			// Digits, '#' and '*' only count as part of a keycap
			// sequence, which ends in U+20E3.
			if cluster[len(cluster)-1] != 0x20E3 {
				return false
			}
			base = true
		default:
			return false
		}
	}
	return base
}

// joiner matches the glue codepoints of emoji sequences.
func joiner(r rune) bool {
	switch {
	case r == 0x200D: // zero width joiner
		return true
	case r == 0xFE0F || r == 0xFE0E: // variation selectors
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tone modifiers
		return true
	case r == 0x20E3: // combining enclosing keycap
		return true
	}
	return false
}

func keycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// emojiBase matches codepoints that render as emoji on their own or as
// the base of a modifier/ZWJ sequence.
func emojiBase(r rune) bool {
	switch {
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r >= 0x1F300 && r <= 0x1F5FF: // misc symbols and pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport and map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // symbols extended-A
		return true
	case r >= 0x2600 && r <= 0x26FF: // misc symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // arrows, stars, squares
		return true
	case r >= 0x2190 && r <= 0x21FF: // arrows with emoji presentation
		return true
	case r >= 0x2300 && r <= 0x23FF: // technical, clocks
		return true
	case r == 0x203C || r == 0x2049: // double and interrobang exclamation
		return true
	case r == 0x2122 || r == 0x2139: // trademark, information
		return true
	case r >= 0x25A0 && r <= 0x25FF: // geometric shapes
		return true
	case r >= 0x2900 && r <= 0x297F: // supplemental arrows
		return true
	case r >= 0x3297 && r <= 0x3299: // circled ideographs
		return true
	case r == 0x3030 || r == 0x303D:
		return true
	case r == 0x00A9 || r == 0x00AE: // copyright, registered
		return true
	}
	return false
}
