package material

import (
	"image"
	"strings"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"git.sr.ht/~converse/bubble"
	chatlayout "git.sr.ht/~converse/bubble/layout"
	chatwidget "git.sr.ht/~converse/bubble/widget"
)

// AvatarStyle presents a chat participant as a circular avatar image,
// falling back to an initial-letter badge colored per user.
type AvatarStyle struct {
	Author bubble.UserRef
	// Image is the cached avatar, if one was supplied.
	Image widget.Image
	// Badge fills the fallback circle.
	Badge UserColorData
	// Initial is the fallback letter.
	Initial material.LabelStyle
	Size    unit.Dp
	// Override replaces the built-in widget entirely.
	Override func(gtx C, author bubble.UserRef) D
}

// Avatar constructs an AvatarStyle for the message author. img may be
// nil, selecting the initial-letter fallback.
func Avatar(th *Theme, cache *chatwidget.CachedImage, author bubble.UserRef, img image.Image, cfg *Config) AvatarStyle {
	cache.Cache(img)
	a := AvatarStyle{
		Author: author,
		Badge:  th.UserColor(author.ID),
		Size:   th.AvatarSize,
		Image: widget.Image{
			Src:      cache.Op(),
			Fit:      widget.Cover,
			Position: layout.Center,
		},
		Override: cfg.Overrides.Avatar,
	}
	a.Initial = material.Body1(th.Theme, initial(author))
	a.Initial.Color = th.Palette.OnPrimary
	if a.Badge.Luminance > 0.5 {
		a.Initial.Color = th.Palette.OnSecondary
	}
	return a
}

// initial returns the display letter for an author.
func initial(author bubble.UserRef) string {
	name := strings.TrimSpace(author.Name)
	if name == "" {
		name = author.ID
	}
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Layout the avatar.
func (a AvatarStyle) Layout(gtx C) D {
	if a.Override != nil {
		return a.Override(gtx, a.Author)
	}
	sideLength := gtx.Dp(a.Size)
	gtx.Constraints.Min = image.Pt(sideLength, sideLength)
	gtx.Constraints.Max = gtx.Constraints.Min
	// Half-size radius makes for a circle.
	return chatlayout.Rounded(a.Size / 2).Layout(gtx, func(gtx C) D {
		if a.Image.Src != (paint.ImageOp{}) {
			return a.Image.Layout(gtx)
		}
		return chatlayout.Background(a.Badge.NRGBA).Layout(gtx, func(gtx C) D {
			return layout.Center.Layout(gtx, a.Initial.Layout)
		})
	})
}
