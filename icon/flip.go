package icon

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/tsawler/rtlkit/direction"
)

// Flip returns a horizontally mirrored copy of img. It is the bitmap
// counterpart of the scaleX:-1 runtime transform, for asset pipelines
// that pre-mirror directional icons instead of flipping at render time.
//
// The result has the same dimensions as img with bounds translated to
// the origin. Flipping twice restores the original pixel values.
func Flip(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	// Mirror across the vertical axis: x' = MaxX - x, y' = y - MinY.
	m := f64.Aff3{
		-1, 0, float64(b.Max.X),
		0, 1, -float64(b.Min.Y),
	}
	draw.NearestNeighbor.Transform(dst, m, img, b, draw.Src, nil)

	return dst
}

// FlipIf mirrors img only when an icon of kind k flips under d per
// [ShouldFlip]; otherwise img is returned unmodified.
func FlipIf(k Kind, img image.Image, d direction.Direction) image.Image {
	if ShouldFlip(k, d) {
		return Flip(img)
	}
	return img
}
