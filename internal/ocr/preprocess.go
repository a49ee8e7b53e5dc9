package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	contrastBoost  = 80
	binarizeCutoff = 180
	minDimension   = 1500
	upscaleFactor  = 1.5
)

// Preprocess applies the fixed transform that makes menu photographs
// legible to Tesseract: grayscale, contrast boost, sharpen, hard
// binarization, and an upscale for small images.
func Preprocess(imageBytes []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("could not process image: %w", err)
	}

	img = imaging.Grayscale(img)
	img = imaging.AdjustContrast(img, contrastBoost)
	img = imaging.Sharpen(img, 1.0)

	img = imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		v := uint8(0)
		if c.R >= binarizeCutoff {
			v = 255
		}
		return color.NRGBA{R: v, G: v, B: v, A: c.A}
	})

	bounds := img.Bounds()
	if bounds.Dx() < minDimension || bounds.Dy() < minDimension {
		img = imaging.Resize(
			img,
			int(float64(bounds.Dx())*upscaleFactor),
			int(float64(bounds.Dy())*upscaleFactor),
			imaging.Lanczos,
		)
	}

	return img, nil
}
