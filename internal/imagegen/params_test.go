package imagegen

import "testing"

func TestParamsForModel(t *testing.T) {
	cases := []struct {
		modelID  string
		steps    int
		guidance float64
	}{
		{"segmind/SSD-1B", 20, 7.0},
		{"ByteDance/sdxl-lightning-4step", 4, 0.0},
		{"ByteDance/sdxl-lightning-8step", 8, 0.0},
		{"stabilityai/sdxl-turbo", 1, 0.0},
		{"stabilityai/stable-diffusion-xl-base-1.0", 30, 7.5},
	}

	for _, tc := range cases {
		p := ParamsForModel(tc.modelID)
		if p.Steps != tc.steps || p.Guidance != tc.guidance {
			t.Errorf("%s: got steps=%d guidance=%.1f, want steps=%d guidance=%.1f",
				tc.modelID, p.Steps, p.Guidance, tc.steps, tc.guidance)
		}
	}
}

func TestParamsForModel_UnknownFallsBack(t *testing.T) {
	p := ParamsForModel("some/experimental-model")

	if p.Steps != 25 {
		t.Errorf("expected fallback steps 25, got %d", p.Steps)
	}
	if p.Guidance != 7.5 {
		t.Errorf("expected fallback guidance 7.5, got %.1f", p.Guidance)
	}
	if p.Width != 1024 || p.Height != 1024 {
		t.Errorf("expected 1024x1024, got %dx%d", p.Width, p.Height)
	}
}
