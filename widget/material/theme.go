/*
Package material implements themed styles for composing chat message
bubbles: per-kind body dispatch, bubble shells with grouping-aware
corners, reply previews, status icons and avatars.

Styles are recomputed every frame from an immutable bubble.Message and a
Config; only the widget package's interaction types persist across
frames.
*/
package material

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Note: the values chosen are a best-guess heuristic, open to change.
var (
	DefaultMaxMessageWidth = unit.Dp(440)
	DefaultMaxImageHeight  = unit.Dp(400)
	DefaultAvatarSize      = unit.Dp(32)
	DefaultAvatarSlot      = unit.Dp(40)
	DefaultBubbleRadius    = unit.Dp(12)
	DefaultEmojiScale      = float32(2.5)
)

// TextPalette holds the text color variants for one authorship side.
type TextPalette struct {
	Body color.NRGBA
	Link color.NRGBA
	Bold color.NRGBA
	Code color.NRGBA
}

// Palette defines the semantic colors of the bubble widgets.
type Palette struct {
	// Primary fills bubbles authored by the local user.
	Primary   color.NRGBA
	OnPrimary color.NRGBA
	// Secondary fills bubbles from other authors and image bubbles.
	Secondary   color.NRGBA
	OnSecondary color.NRGBA
	// Danger indicates failed delivery.
	Danger color.NRGBA
	// ReplyIndicator colors the bar alongside reply previews.
	ReplyIndicator color.NRGBA

	// OwnText styles text inside the local user's bubbles, OtherText
	// everyone else's.
	OwnText   TextPalette
	OtherText TextPalette
}

// TextFor returns the text palette for the given authorship.
func (p Palette) TextFor(local bool) TextPalette {
	if local {
		return p.OwnText
	}
	return p.OtherText
}

var (
	Light = Palette{
		Primary:        rgb(0x3F85E8),
		OnPrimary:      rgb(0xFFFFFF),
		Secondary:      rgb(0xEBEBEB),
		OnSecondary:    rgb(0x1A1A1A),
		Danger:         rgb(0xB00020),
		ReplyIndicator: rgb(0x3F85E8),
		OwnText: TextPalette{
			Body: rgb(0xFFFFFF),
			Link: rgb(0xD4E4FB),
			Bold: rgb(0xFFFFFF),
			Code: rgb(0xE8F0FD),
		},
		OtherText: TextPalette{
			Body: rgb(0x1A1A1A),
			Link: rgb(0x1A64C8),
			Bold: rgb(0x000000),
			Code: rgb(0x333333),
		},
	}
	Dark = Palette{
		Primary:        rgb(0x2B5FA8),
		OnPrimary:      rgb(0xFFFFFF),
		Secondary:      rgb(0x333333),
		OnSecondary:    rgb(0xEEEEEE),
		Danger:         rgb(0xCF6679),
		ReplyIndicator: rgb(0x6FA8F5),
		OwnText: TextPalette{
			Body: rgb(0xFFFFFF),
			Link: rgb(0xB8D2F8),
			Bold: rgb(0xFFFFFF),
			Code: rgb(0xD6E4FA),
		},
		OtherText: TextPalette{
			Body: rgb(0xEEEEEE),
			Link: rgb(0x6FA8F5),
			Bold: rgb(0xFFFFFF),
			Code: rgb(0xCCCCCC),
		},
	}
)

// ReplyTheme holds the visual constants of the reply preview block.
type ReplyTheme struct {
	// Scale shrinks the nested bubble.
	Scale float32
	// Alpha fades the nested bubble.
	Alpha uint8
	// IndicatorWidth is the width of the colored bar.
	IndicatorWidth unit.Dp
	// Inset offsets the nested bubble away from the side opposite the
	// indicator.
	Inset unit.Dp
	// LabelGap separates the optional label from the preview block.
	LabelGap unit.Dp
	// Gap separates the preview block from the main bubble.
	Gap unit.Dp
}

// UserColorData tracks both a color and its luminance.
type UserColorData struct {
	color.NRGBA
	Luminance float64
}

// Theme wraps the material theme with the bubble-specific values.
type Theme struct {
	*material.Theme
	Palette Palette
	Reply   ReplyTheme

	BubbleRadius    unit.Dp
	MaxMessageWidth unit.Dp
	MaxImageHeight  unit.Dp
	AvatarSize      unit.Dp
	// AvatarSlot is the width reserved in place of a hidden avatar so
	// grouped rows stay aligned.
	AvatarSlot unit.Dp
	// EmojiScale multiplies the text size of emoji-only messages.
	EmojiScale float32

	// UserColors tracks a mapping from user ID to the color chosen to
	// represent that user.
	UserColors map[string]UserColorData
}

// NewTheme instantiates a theme using the provided fonts.
func NewTheme(fonts []text.FontFace) *Theme {
	th := &Theme{
		Theme: material.NewTheme(fonts),
		Reply: ReplyTheme{
			Scale:          0.8,
			Alpha:          176,
			IndicatorWidth: unit.Dp(4),
			Inset:          unit.Dp(12),
			LabelGap:       unit.Dp(8),
			Gap:            unit.Dp(6),
		},
		BubbleRadius:    DefaultBubbleRadius,
		MaxMessageWidth: DefaultMaxMessageWidth,
		MaxImageHeight:  DefaultMaxImageHeight,
		AvatarSize:      DefaultAvatarSize,
		AvatarSlot:      DefaultAvatarSlot,
		EmojiScale:      DefaultEmojiScale,
		UserColors:      make(map[string]UserColorData),
	}
	th.UsePalette(Light)
	return th
}

// UsePalette changes to the specified palette.
func (t *Theme) UsePalette(p Palette) {
	t.Palette = p
	t.Theme.Fg = p.OtherText.Body
}

// UserColor returns a color for the provided user ID, choosing a new one
// for IDs it has not seen before.
func (t *Theme) UserColor(id string) UserColorData {
	if c, ok := t.UserColors[id]; ok {
		return c
	}
	uc := UserColorData{NRGBA: ToNRGBA(colorful.FastHappyColor().Clamped())}
	uc.Luminance = Luminance(uc.NRGBA)
	t.UserColors[id] = uc
	return uc
}

// ToNRGBA converts a colorful.Color to the nearest representable
// color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Luminance computes the relative brightness of a color, normalized
// between [0,1]. Ignores alpha.
func Luminance(c color.NRGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
