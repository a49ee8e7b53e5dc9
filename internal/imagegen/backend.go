package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrOutOfMemory means the accelerator behind the inference
	// server ran out of memory for this request.
	ErrOutOfMemory = errors.New("accelerator out of memory")

	// ErrNotReady means the model has not finished loading.
	ErrNotReady = errors.New("image generation model not loaded yet")
)

// Generator produces one PNG image for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt, negativePrompt string) ([]byte, error)
	Loaded() bool
}

// DiffusionBackend drives a text-to-image inference server holding a
// single loaded diffusion pipeline. The handle is created once during
// startup and injected into the handler; it is read-only afterwards.
type DiffusionBackend struct {
	baseURL string
	modelID string
	params  ModelParams
	client  *http.Client
	loaded  bool
}

func NewDiffusionBackend(baseURL, modelID string) *DiffusionBackend {
	return &DiffusionBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		modelID: modelID,
		params:  ParamsForModel(modelID),
		client: &http.Client{
			Timeout: 180 * time.Second,
		},
	}
}

// Warmup checks that the inference server is up with its pipeline
// loaded. Called once from main; a failure is fatal there, matching
// the load-at-startup behavior of the pipeline itself.
func (b *DiffusionBackend) Warmup(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("inference server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference server not ready: status %d", resp.StatusCode)
	}

	b.loaded = true
	log.Printf("MODEL_LOADED model=%s steps=%d guidance=%.1f", b.modelID, b.params.Steps, b.params.Guidance)
	return nil
}

func (b *DiffusionBackend) Loaded() bool {
	return b.loaded
}

type txt2imgRequest struct {
	Prompt            string  `json:"prompt"`
	NegativePrompt    string  `json:"negative_prompt"`
	Model             string  `json:"model"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
}

type txt2imgResponse struct {
	Image string `json:"image"`
	Error string `json:"error"`
}

// Generate runs one synchronous inference call and returns PNG bytes.
// No batching, no queueing: concurrent requests serialize on the
// single loaded pipeline server-side.
func (b *DiffusionBackend) Generate(ctx context.Context, prompt, negativePrompt string) ([]byte, error) {
	if !b.loaded {
		return nil, ErrNotReady
	}

	payload, err := json.Marshal(txt2imgRequest{
		Prompt:            prompt,
		NegativePrompt:    negativePrompt,
		Model:             b.modelID,
		NumInferenceSteps: b.params.Steps,
		GuidanceScale:     b.params.Guidance,
		Width:             b.params.Width,
		Height:            b.params.Height,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/txt2img", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read inference response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if isOutOfMemory(resp.StatusCode, body) {
			return nil, ErrOutOfMemory
		}
		return nil, fmt.Errorf("inference server returned status %d: %s", resp.StatusCode, string(body))
	}

	var result txt2imgResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse inference response: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("inference failed: %s", result.Error)
	}

	pngBytes, err := base64.StdEncoding.DecodeString(result.Image)
	if err != nil {
		return nil, fmt.Errorf("inference server returned invalid image data: %w", err)
	}

	return pngBytes, nil
}

func isOutOfMemory(status int, body []byte) bool {
	if status == http.StatusInsufficientStorage {
		return true
	}
	text := strings.ToLower(string(body))
	return strings.Contains(text, "out of memory") || strings.Contains(text, "cuda oom")
}
