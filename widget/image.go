package widget

import (
	"image"

	"gioui.org/op/paint"
)

// CachedImage is a cacheable image operation.
type CachedImage paint.ImageOp

// Changer can report that it has changed since the last call.
type Changer interface {
	Changed() bool
}

// ToNRGBA can render an image.NRGBA image.
type ToNRGBA interface {
	ToNRGBA() *image.NRGBA
}

// Cache the image if it is not already.
//
// The first call computes the image operation, subsequent calls no-op.
// If src implements Changer and reports a change, the operation is
// recomputed. If src implements ToNRGBA, the *image.NRGBA is used, since
// Gio has a fast path for NRGBA uploads.
func (img *CachedImage) Cache(src image.Image) {
	if img == nil || src == nil {
		return
	}
	var im image.Image = src
	if nrgba, ok := src.(ToNRGBA); ok {
		im = nrgba.ToNRGBA()
	}
	changed := false
	if changer, ok := src.(Changer); ok {
		changed = changer.Changed()
	}
	if changed || paint.ImageOp(*img) == (paint.ImageOp{}) {
		*img = CachedImage(paint.NewImageOp(im))
	}
}

// Op returns the concrete image operation.
func (img CachedImage) Op() paint.ImageOp {
	return paint.ImageOp(img)
}

// Empty reports whether no image has been cached yet.
func (img CachedImage) Empty() bool {
	return paint.ImageOp(img) == (paint.ImageOp{})
}
