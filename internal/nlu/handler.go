package nlu

import (
	"errors"
	"net/http"

	"github.com/amoslue/what-the-food/internal/llm"
	"github.com/amoslue/what-the-food/internal/menu"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Heuristic path: pre-structured dishes in, prompts out
// --------------------------------------------------
func (h *Handler) ProcessDishes(c *gin.Context) {
	var dishes []menu.DishRecord
	if err := c.BindJSON(&dishes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	for _, dish := range dishes {
		if dish.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dish name is required"})
			return
		}
	}

	prompts, err := h.service.ProcessDishes(c.Request.Context(), dishes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"processed_dishes": prompts})
}

// --------------------------------------------------
// Raw OCR text in, structured dishes plus prompts out
// --------------------------------------------------
func (h *Handler) ProcessMenuText(c *gin.Context) {
	var req struct {
		MenuText string `json:"menu_text"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.MenuText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_text is required"})
		return
	}

	dishes, prompts, err := h.service.ProcessMenuText(c.Request.Context(), req.MenuText)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"structured_menu_data": dishes,
		"processed_dishes":     prompts,
	})
}

func respondError(c *gin.Context, err error) {
	var shapeErr *llm.ShapeError

	switch {
	case errors.Is(err, ErrNoDishes):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &shapeErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  shapeErr.Reason,
			"record": shapeErr.Record,
		})
	case errors.Is(err, llm.ErrAPIFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
