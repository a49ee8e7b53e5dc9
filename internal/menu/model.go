package menu

// DishRecord is one dish extracted from raw menu text.
// Name is the only required field; Description may be empty.
// Records live for a single request, nothing is persisted.
type DishRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PromptRecord pairs a dish with the image-generation prompt
// authored for it, either by the rule-based synthesizer or by the LLM.
type PromptRecord struct {
	DishName    string `json:"dish_name"`
	ImagePrompt string `json:"image_prompt"`
}
