package llm

import (
	"context"
	"encoding/json"

	"github.com/amoslue/what-the-food/internal/menu"
)

// Structurer is the remote-model implementation of menu.Structurer.
// The model does the structuring and the prompt authorship; this side
// only repairs and validates the response shape.
type Structurer struct {
	client Client
}

func NewStructurer(client Client) *Structurer {
	return &Structurer{client: client}
}

func (s *Structurer) Structure(ctx context.Context, rawText string) ([]menu.DishRecord, error) {
	response, err := s.client.Complete(ctx, structureSystemPrompt, rawText)
	if err != nil {
		return nil, err
	}

	elements, err := decodeRecords(response, []string{"name"})
	if err != nil {
		return nil, err
	}

	dishes := make([]menu.DishRecord, 0, len(elements))
	for _, element := range elements {
		var dish menu.DishRecord
		if err := json.Unmarshal(element, &dish); err != nil {
			return nil, &ShapeError{Reason: "record fields have wrong types", Record: element}
		}
		dishes = append(dishes, dish)
	}

	return dishes, nil
}

// GeneratePrompts asks the model for one image prompt per dish.
func (s *Structurer) GeneratePrompts(ctx context.Context, dishes []menu.DishRecord) ([]menu.PromptRecord, error) {
	input, err := json.Marshal(dishes)
	if err != nil {
		return nil, err
	}

	response, err := s.client.Complete(ctx, promptSystemPrompt, string(input))
	if err != nil {
		return nil, err
	}

	elements, err := decodeRecords(response, []string{"dish_name", "image_prompt"})
	if err != nil {
		return nil, err
	}

	prompts := make([]menu.PromptRecord, 0, len(elements))
	for _, element := range elements {
		var prompt menu.PromptRecord
		if err := json.Unmarshal(element, &prompt); err != nil {
			return nil, &ShapeError{Reason: "record fields have wrong types", Record: element}
		}
		prompts = append(prompts, prompt)
	}

	return prompts, nil
}
