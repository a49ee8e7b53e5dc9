package ocr

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/amoslue/what-the-food/internal/menu"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	extractor  TextExtractor
	structurer menu.Structurer
}

func NewHandler(extractor TextExtractor, structurer menu.Structurer) *Handler {
	return &Handler{extractor: extractor, structurer: structurer}
}

// ExtractMenuData receives a menu image, runs preprocessing and OCR,
// and returns the raw text along with a first-pass structuring.
func (h *Handler) ExtractMenuData(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	if !strings.HasPrefix(http.DetectContentType(imageBytes), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded file is not an image"})
		return
	}

	img, err := Preprocess(imageBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rawText, err := h.extractor.ExtractText(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("OCR_DONE text_length=%d", len(rawText))

	dishes, err := h.structurer.Structure(c.Request.Context(), rawText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"raw_ocr_output":       rawText,
		"structured_menu_data": dishes,
	})
}
