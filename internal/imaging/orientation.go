package imaging

import (
	"bytes"
	"image"

	"github.com/rwcarlsen/goexif/exif"
)

// Orientation reads the EXIF orientation tag, 1 when absent or unreadable.
func Orientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil || v < 1 || v > 8 {
		return 1
	}
	return v
}

// ApplyOrientation returns img turned upright for the given EXIF orientation.
func ApplyOrientation(img image.Image, orientation int) image.Image {
	if orientation <= 1 || orientation > 8 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// src maps a destination pixel to its source pixel.
	var src func(x, y int) (int, int)
	dw, dh := w, h
	switch orientation {
	case 2:
		src = func(x, y int) (int, int) { return w - 1 - x, y }
	case 3:
		src = func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case 4:
		src = func(x, y int) (int, int) { return x, h - 1 - y }
	case 5:
		dw, dh = h, w
		src = func(x, y int) (int, int) { return y, x }
	case 6:
		dw, dh = h, w
		src = func(x, y int) (int, int) { return y, h - 1 - x }
	case 7:
		dw, dh = h, w
		src = func(x, y int) (int, int) { return w - 1 - y, h - 1 - x }
	case 8:
		dw, dh = h, w
		src = func(x, y int) (int, int) { return w - 1 - y, x }
	}

	out := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			sx, sy := src(x, y)
			out.Set(x, y, img.At(b.Min.X+sx, b.Min.Y+sy))
		}
	}
	return out
}
