package main

import (
	"log"
	"os/exec"

	"github.com/amoslue/what-the-food/internal/config"
	"github.com/amoslue/what-the-food/internal/menu"
	"github.com/amoslue/what-the-food/internal/ocr"
	"github.com/amoslue/what-the-food/internal/router"
)

func main() {
	config.Load()

	if _, err := exec.LookPath("tesseract"); err != nil {
		log.Fatal("required binary missing: tesseract")
	}

	handler := ocr.NewHandler(
		ocr.NewTesseractExtractor(),
		menu.NewRuleBasedStructurer(),
	)

	r := router.NewOCRRouter(handler)

	port := config.Get("OCR_PORT", "8000")
	log.Printf("OCR service running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
