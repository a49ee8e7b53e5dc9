package imagegen

import "strings"

// ModelParams are the fixed inference hyperparameters for one model.
// Turbo/Lightning variants are distilled models: very few steps and
// zero guidance, anything else degrades their output.
type ModelParams struct {
	Steps    int
	Guidance float64
	Width    int
	Height   int
}

const (
	defaultWidth  = 1024
	defaultHeight = 1024
)

// ParamsForModel maps a model identifier to its hyperparameters.
// Unknown models fall back to a safe general-purpose setting.
func ParamsForModel(modelID string) ModelParams {
	p := ModelParams{Width: defaultWidth, Height: defaultHeight}

	switch {
	case modelID == "segmind/SSD-1B":
		p.Steps = 20
		p.Guidance = 7.0
	case strings.Contains(modelID, "sdxl-lightning-4step"):
		p.Steps = 4
		p.Guidance = 0.0
	case strings.Contains(modelID, "sdxl-lightning-8step"):
		p.Steps = 8
		p.Guidance = 0.0
	case strings.Contains(modelID, "sdxl-turbo"):
		p.Steps = 1
		p.Guidance = 0.0
	case strings.Contains(modelID, "stable-diffusion-xl-base-1.0"):
		p.Steps = 30
		p.Guidance = 7.5
	default:
		p.Steps = 25
		p.Guidance = 7.5
	}

	return p
}
