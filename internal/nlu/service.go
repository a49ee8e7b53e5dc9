package nlu

import (
	"context"
	"errors"
	"fmt"

	"github.com/amoslue/what-the-food/internal/menu"
)

var ErrNoDishes = errors.New("no dishes provided for processing")

// PromptGenerator authors one image prompt per dish. The LLM-backed
// implementation lives in internal/llm; when no generator is
// configured the service falls back to the rule-based synthesizer.
type PromptGenerator interface {
	GeneratePrompts(ctx context.Context, dishes []menu.DishRecord) ([]menu.PromptRecord, error)
}

type Service struct {
	structurer menu.Structurer
	prompts    PromptGenerator
}

func NewService(structurer menu.Structurer, prompts PromptGenerator) *Service {
	return &Service{structurer: structurer, prompts: prompts}
}

// ProcessDishes runs the heuristic path: keyword extraction plus
// deterministic prompt assembly for every dish.
func (s *Service) ProcessDishes(_ context.Context, dishes []menu.DishRecord) ([]menu.PromptRecord, error) {
	if len(dishes) == 0 {
		return nil, ErrNoDishes
	}

	results := make([]menu.PromptRecord, 0, len(dishes))

	for _, dish := range dishes {
		cleanName := NormalizeText(dish.Name)
		cleanDesc := NormalizeText(dish.Description)

		keywords, err := ExtractKeywords(cleanName + " " + cleanDesc)
		if err != nil {
			return nil, fmt.Errorf("keyword extraction failed for %q: %w", dish.Name, err)
		}

		results = append(results, menu.PromptRecord{
			DishName:    dish.Name,
			ImagePrompt: BuildImagePrompt(cleanName, cleanDesc, keywords),
		})
	}

	return results, nil
}

// ProcessMenuText structures raw OCR text into dishes and authors a
// prompt per dish. The structurer is chosen by configuration; when an
// LLM prompt generator is wired it writes the prompts, otherwise the
// heuristic path does.
func (s *Service) ProcessMenuText(ctx context.Context, rawText string) ([]menu.DishRecord, []menu.PromptRecord, error) {
	dishes, err := s.structurer.Structure(ctx, rawText)
	if err != nil {
		return nil, nil, err
	}
	if len(dishes) == 0 {
		return nil, nil, ErrNoDishes
	}

	var prompts []menu.PromptRecord
	if s.prompts != nil {
		prompts, err = s.prompts.GeneratePrompts(ctx, dishes)
	} else {
		prompts, err = s.ProcessDishes(ctx, dishes)
	}
	if err != nil {
		return nil, nil, err
	}

	return dishes, prompts, nil
}
