package ocr

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// TextExtractor turns a preprocessed image into raw text.
// Tests substitute a fake so they do not need a Tesseract install.
type TextExtractor interface {
	ExtractText(img image.Image) (string, error)
}

// TesseractExtractor drives the system Tesseract engine through
// gosseract with fixed configuration: English, automatic page
// segmentation, default OCR engine mode.
type TesseractExtractor struct{}

func NewTesseractExtractor() *TesseractExtractor {
	return &TesseractExtractor{}
}

func (e *TesseractExtractor) ExtractText(img image.Image) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("ocr configuration failed: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return "", fmt.Errorf("ocr configuration failed: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image for ocr: %w", err)
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("ocr rejected image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr processing failed: %w", err)
	}

	return text, nil
}
