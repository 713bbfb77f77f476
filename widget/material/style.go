package material

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"

	bubble "git.sr.ht/~converse/bubble"
	chatlayout "git.sr.ht/~converse/bubble/layout"
)

// RTLAlignment selects between absolute and direction-relative placement
// of bubbles within a row.
type RTLAlignment uint8

const (
	// RTLNone places bubbles with absolute left/right alignment.
	RTLNone RTLAlignment = iota
	// RTLLeftBiased mirrors placement for right-to-left locales:
	// start/end resolve against an RTL reading direction.
	RTLLeftBiased
)

// BubbleCorners resolves the four corner radii for a bubble.
//
// Both top corners always round fully. The bottom corner on the author's
// side rounds only for the local user's messages; the opposite bottom
// corner rounds only for other authors. Grouped messages round both
// bottom corners so consecutive same-author bubbles read as one
// continuous shape with a single squared corner at the group edge.
func BubbleCorners(radius unit.Dp, local, grouped bool, rtl RTLAlignment) chatlayout.Corners {
	var bottomStart, bottomEnd unit.Dp
	if local || grouped {
		bottomStart = radius
	}
	if !local || grouped {
		bottomEnd = radius
	}
	c := chatlayout.Corners{
		NW: radius,
		NE: radius,
		SW: bottomStart,
		SE: bottomEnd,
	}
	if rtl == RTLLeftBiased {
		c.SW, c.SE = c.SE, c.SW
	}
	return c
}

// BubbleAlignment returns the row direction for a message: end-aligned
// for the local user's messages, start-aligned otherwise, where start
// and end follow the RTL mode.
func BubbleAlignment(local bool, rtl RTLAlignment) layout.Direction {
	start, end := layout.W, layout.E
	if rtl == RTLLeftBiased {
		start, end = layout.E, layout.W
	}
	if local {
		return end
	}
	return start
}

// BubbleColor resolves the fill for a bubble. Image bubbles and bubbles
// from other authors use the secondary surface; the local user's other
// bubbles use the primary color.
func (t *Theme) BubbleColor(kind bubble.Kind, local bool) color.NRGBA {
	if kind == bubble.Image || !local {
		return t.Palette.Secondary
	}
	return t.Palette.Primary
}
