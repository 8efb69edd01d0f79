// Package imaging produces the renditions stored for incident photos.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const renditionContentType = "image/jpeg"

type Options struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
}

var (
	FullSize  = Options{MaxWidth: 1024, MaxHeight: 1024, Quality: 80}
	Thumbnail = Options{MaxWidth: 128, MaxHeight: 128, Quality: 80}
)

type Result struct {
	Data        []byte
	ContentType string
	// Optimized is false when the input was passed through untouched.
	Optimized bool
}

// Extension is the file extension used in the storage key for this rendition.
func (r Result) Extension(filename string) string {
	if r.Optimized {
		return ".jpg"
	}
	return strings.ToLower(filepath.Ext(filename))
}

type Normalizer struct {
	logger *slog.Logger
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize never fails: anything that cannot be decoded or encoded is
// returned as it came in.
func (n *Normalizer) Normalize(data []byte, contentType string, opts Options) Result {
	original := Result{Data: data, ContentType: contentType}
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return original
	}

	out, err := render(data, opts)
	if err != nil {
		n.logger.Warn("image normalization failed, keeping original",
			slog.String("content_type", contentType),
			slog.Int("size", len(data)),
			slog.Any("error", err),
		)
		return original
	}

	n.logger.Debug("image normalized",
		slog.Int("before", len(data)),
		slog.Int("after", len(out)),
		slog.Int("max_width", opts.MaxWidth),
		slog.Int("max_height", opts.MaxHeight),
	)
	return Result{Data: out, ContentType: renditionContentType, Optimized: true}
}

func render(data []byte, opts Options) ([]byte, error) {
	orientation := Orientation(data)

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	img = ApplyOrientation(img, orientation)

	b := img.Bounds()
	w, h := FitWithin(b.Dx(), b.Dy(), opts.MaxWidth, opts.MaxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// FitWithin scales w×h down to fit maxW×maxH keeping the aspect ratio.
// It never scales up.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := clamp(int(math.Round(float64(w)*scale)), 1, maxW)
	nh := clamp(int(math.Round(float64(h)*scale)), 1, maxH)
	return nw, nh
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
