// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package texture loads images into named 2D textures.
package texture

import (
	"errors"
	"image"
	"io"
	"log/slog"

	// Decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gviegas/craft/internal/logging"
)

const prefix = "texture: "

func newTexErr(reason string) error { return errors.New(prefix + reason) }

func logger() *slog.Logger { return logging.For("texture") }

// Decode decodes an image in any of the supported formats
// (PNG, JPEG, GIF, BMP, TIFF and WebP) and converts it to
// non-premultiplied RGBA. Rows are flipped so that row 0
// of the result is the bottom row of the picture, which
// is what texture coordinates expect.
// It returns the name of the format as well.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, format, newTexErr("empty image")
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	FlipV(dst)
	return dst, format, nil
}

// FlipV flips img vertically in place.
func FlipV(img *image.NRGBA) {
	h := img.Rect.Dy()
	n := img.Rect.Dx() * 4
	tmp := make([]byte, n)
	for y := range h / 2 {
		top := img.Pix[y*img.Stride : y*img.Stride+n]
		bot := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+n]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}
