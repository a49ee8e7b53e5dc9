package main

import (
	"context"
	"log"
	"time"

	"github.com/amoslue/what-the-food/internal/config"
	"github.com/amoslue/what-the-food/internal/imagegen"
	"github.com/amoslue/what-the-food/internal/router"
)

func main() {
	config.Load()
	config.MustHave("DIFFUSION_BASE_URL")

	modelID := config.Get("DIFFUSION_MODEL_ID", "segmind/SSD-1B")

	backend := imagegen.NewDiffusionBackend(
		config.Get("DIFFUSION_BASE_URL", ""),
		modelID,
	)

	// The pipeline loads once at startup; requests are refused with
	// 503 until the backend reports it ready.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := backend.Warmup(ctx); err != nil {
		log.Fatalf("failed to load model %s: %v", modelID, err)
	}

	handler := imagegen.NewHandler(backend)

	r := router.NewImageRouter(handler)

	port := config.Get("IMAGE_PORT", "8002")
	log.Printf("Image generation service running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
