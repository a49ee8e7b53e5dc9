package router

import (
	"time"

	"github.com/amoslue/what-the-food/internal/imagegen"
	"github.com/amoslue/what-the-food/internal/middleware"
	"github.com/amoslue/what-the-food/internal/nlu"
	"github.com/amoslue/what-the-food/internal/ocr"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// newEngine is the shared base: CORS allow-list for the local client
// app, request-id logging, and a liveness route.
func newEngine() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID())

	return r
}

// NewOCRRouter serves the menu-image extraction endpoint.
func NewOCRRouter(handler *ocr.Handler) *gin.Engine {
	r := newEngine()

	r.POST("/extract_menu_data/", handler.ExtractMenuData)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

// NewNLURouter serves both structuring paths of the NLU service.
func NewNLURouter(handler *nlu.Handler) *gin.Engine {
	r := newEngine()

	r.POST("/process_dishes_for_prompts/", handler.ProcessDishes)
	r.POST("/process_menu_text/", handler.ProcessMenuText)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

// NewImageRouter serves image generation plus the model-aware health
// check.
func NewImageRouter(handler *imagegen.Handler) *gin.Engine {
	r := newEngine()

	r.POST("/generate_image/", handler.GenerateImage)
	r.GET("/health", handler.Health)

	return r
}
