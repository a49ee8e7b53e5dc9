package imagegen

import (
	"encoding/base64"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	generator Generator
}

func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

type generateRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
}

// GenerateImage runs one synchronous inference call for the prompt
// and returns the result as base64-encoded PNG. Nothing is stored.
func (h *Handler) GenerateImage(c *gin.Context) {
	var req generateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	requestID := uuid.New().String()
	log.Printf("IMAGE_GEN_START id=%s prompt_length=%d", requestID, len(req.Prompt))

	pngBytes, err := h.generator.Generate(c.Request.Context(), req.Prompt, req.NegativePrompt)
	if err != nil {
		log.Printf("IMAGE_GEN_FAILED id=%s err=%v", requestID, err)
		switch {
		case errors.Is(err, ErrNotReady):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, ErrOutOfMemory):
			c.JSON(http.StatusInsufficientStorage, gin.H{"error": "accelerator out of memory, try a smaller image or model"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log.Printf("IMAGE_GEN_DONE id=%s bytes=%d", requestID, len(pngBytes))

	c.JSON(http.StatusOK, gin.H{
		"image_base64": base64.StdEncoding.EncodeToString(pngBytes),
	})
}

// Health reports whether the pipeline behind the backend is loaded.
func (h *Handler) Health(c *gin.Context) {
	if h.generator.Loaded() {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "model_loaded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "loading", "model_loaded": false})
}
