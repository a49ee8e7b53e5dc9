package nlu

import (
	"context"
	"strings"
	"testing"

	"github.com/amoslue/what-the-food/internal/menu"
)

func TestBuildImagePrompt_UsesNameForShortDescriptions(t *testing.T) {
	prompt := BuildImagePrompt("spicy tacos", "very good", nil)

	if !strings.Contains(prompt, "spicy tacos") {
		t.Errorf("expected prompt to contain the dish name, got %q", prompt)
	}
}

func TestBuildImagePrompt_PrefersLongDescriptions(t *testing.T) {
	desc := "grilled chicken with fresh salsa and lime"
	prompt := BuildImagePrompt("spicy tacos", desc, nil)

	if !strings.Contains(prompt, desc) {
		t.Errorf("expected prompt to contain the description, got %q", prompt)
	}
}

func TestBuildImagePrompt_InfersCuisine(t *testing.T) {
	cases := []struct {
		name    string
		desc    string
		cuisine string
	}{
		{"Spicy Tacos", "", "Mexican"},
		{"TACO PLATTER", "", "Mexican"},
		{"Margherita", "classic pizza with fresh basil", "Italian"},
		{"Chicken Curry", "", "Indian"},
		{"Tonkotsu Ramen", "", "Japanese"},
	}

	for _, tc := range cases {
		prompt := BuildImagePrompt(NormalizeText(tc.name), NormalizeText(tc.desc), nil)
		if !strings.Contains(prompt, tc.cuisine) {
			t.Errorf("%s: expected cuisine %q in prompt %q", tc.name, tc.cuisine, prompt)
		}
	}
}

func TestBuildImagePrompt_AppendsKeywords(t *testing.T) {
	prompt := BuildImagePrompt("burger", "", []string{"beef", "cheese"})

	if !strings.Contains(prompt, "featuring beef, cheese") {
		t.Errorf("expected featuring clause, got %q", prompt)
	}
}

func TestBuildImagePrompt_StyleTail(t *testing.T) {
	prompt := BuildImagePrompt("burger", "", nil)

	for _, style := range []string{"studio lighting", "8k", "natural light"} {
		if !strings.Contains(prompt, style) {
			t.Errorf("expected style element %q in prompt %q", style, prompt)
		}
	}
}

func TestBuildImagePrompt_NoDoubleSpacesOrCommas(t *testing.T) {
	prompt := BuildImagePrompt("  burger  ", "", nil)

	if strings.Contains(prompt, "  ") {
		t.Errorf("prompt contains double spaces: %q", prompt)
	}
	if strings.Contains(prompt, ",,") || strings.Contains(prompt, ", ,") {
		t.Errorf("prompt contains duplicate commas: %q", prompt)
	}
}

func TestProcessDishes_Deterministic(t *testing.T) {
	service := NewService(menu.NewRuleBasedStructurer(), nil)

	dishes := []menu.DishRecord{
		{Name: "Spicy Tacos", Description: "grilled chicken, fresh salsa, lime"},
		{Name: "Burger", Description: "beef patty"},
	}

	first, err := service.ProcessDishes(context.Background(), dishes)
	if err != nil {
		t.Fatal(err)
	}
	second, err := service.ProcessDishes(context.Background(), dishes)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("runs disagree on length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d differs between runs:\n%+v\n%+v", i, first[i], second[i])
		}
	}
}

func TestProcessDishes_EmptyInput(t *testing.T) {
	service := NewService(menu.NewRuleBasedStructurer(), nil)

	_, err := service.ProcessDishes(context.Background(), nil)
	if err != ErrNoDishes {
		t.Fatalf("expected ErrNoDishes, got %v", err)
	}
}

func TestProcessDishes_TacoYieldsMexicanPrompt(t *testing.T) {
	service := NewService(menu.NewRuleBasedStructurer(), nil)

	prompts, err := service.ProcessDishes(context.Background(), []menu.DishRecord{
		{Name: "Spicy Tacos", Description: "grilled chicken, salsa"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(prompts))
	}
	if prompts[0].DishName != "Spicy Tacos" {
		t.Errorf("dish name should be preserved verbatim, got %q", prompts[0].DishName)
	}
	if !strings.Contains(prompts[0].ImagePrompt, "Mexican") {
		t.Errorf("expected Mexican in prompt %q", prompts[0].ImagePrompt)
	}
}
