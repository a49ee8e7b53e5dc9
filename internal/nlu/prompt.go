package nlu

import (
	"regexp"
	"strings"
)

const basePrompt = "A highly detailed, photorealistic, gourmet presentation of"

var styleElements = []string{
	"restaurant quality",
	"studio lighting",
	"top-down view",
	"beautiful food photography",
	"ultra realistic",
	"8k",
	"natural light",
}

// cuisineHints maps a dish keyword to a cuisine qualifier. First
// substring match against name/description wins.
var cuisineHints = []struct {
	keyword string
	cuisine string
}{
	{"taco", "Mexican"},
	{"burrito", "Mexican"},
	{"nacho", "Mexican"},
	{"pasta", "Italian"},
	{"pizza", "Italian"},
	{"lasagna", "Italian"},
	{"curry", "Indian"},
	{"naan", "Indian"},
	{"sushi", "Japanese"},
	{"ramen", "Japanese"},
	{"pho", "Vietnamese"},
	{"dumpling", "Chinese"},
}

var (
	doubleComma = regexp.MustCompile(`,(\s*,)+`)
	multiSpace  = regexp.MustCompile(` +`)
)

// NormalizeText lowercases and collapses whitespace before keyword
// extraction and prompt assembly.
func NormalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return multiSpace.ReplaceAllString(text, " ")
}

// BuildImagePrompt assembles the text-to-image prompt for one dish.
// Deterministic: identical (name, description, keywords) always
// yields an identical string.
func BuildImagePrompt(name, description string, keywords []string) string {
	opening := basePrompt

	if cuisine := inferCuisine(name, description); cuisine != "" {
		opening = "A highly detailed, photorealistic, " + cuisine + " gourmet presentation of"
	}

	// A description of more than three words carries more visual
	// information than the name alone.
	subject := name
	if len(strings.Fields(description)) > 3 {
		subject = description
	}

	if len(keywords) > 0 {
		subject += ", featuring " + strings.Join(keywords, ", ")
	}

	prompt := opening + " " + strings.TrimSpace(subject) + ". " + strings.Join(styleElements, ", ") + "."

	prompt = doubleComma.ReplaceAllString(prompt, ",")
	prompt = strings.TrimSpace(multiSpace.ReplaceAllString(prompt, " "))

	return prompt
}

func inferCuisine(name, description string) string {
	name = strings.ToLower(name)
	description = strings.ToLower(description)

	for _, hint := range cuisineHints {
		if strings.Contains(name, hint.keyword) || strings.Contains(description, hint.keyword) {
			return hint.cuisine
		}
	}
	return ""
}
