package render

import (
	"image"

	"golang.org/x/image/draw"
)

// separate file because we want to import x/image/draw
// instead of image/draw.

// Thumbnail scales the given image down so its width is at most maxW,
// keeping the aspect ratio. Images that already fit are returned
// unchanged.
func Thumbnail(i image.Image, maxW int) image.Image {
	b := i.Bounds()
	if b.Dx() <= maxW {
		return i
	}

	h := b.Dy() * maxW / b.Dx()
	r := image.Rect(0, 0, maxW, h)
	dst := image.NewRGBA(r)
	s := draw.BiLinear
	s.Scale(dst, r, i, b, draw.Over, nil)
	return dst
}
