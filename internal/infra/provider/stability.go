package provider

import (
	"context"
	"fmt"
	"net/http"

	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
)

const stabilityTextToImageURL = "https://api.stability.ai/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"

// StabilityClient generates concept image variations in a single request.
type StabilityClient struct {
	http   *httpClient
	apiKey string
}

func NewStabilityClient(cfg config.ProvidersConfig) *StabilityClient {
	return &StabilityClient{
		http:   newHTTPClient(cfg),
		apiKey: cfg.StabilityKey,
	}
}

type stabilityRequest struct {
	TextPrompts []struct {
		Text string `json:"text"`
	} `json:"text_prompts"`
	CfgScale int `json:"cfg_scale"`
	Height   int `json:"height"`
	Width    int `json:"width"`
	Steps    int `json:"steps"`
	Samples  int `json:"samples"`
}

type stabilityResponse struct {
	Artifacts []struct {
		Base64 string `json:"base64"`
		Seed   int64  `json:"seed"`
	} `json:"artifacts"`
}

func (s *StabilityClient) Generator() string { return "stability" }

func (s *StabilityClient) GenerateImages(ctx context.Context, prompt string, count int) ([]string, error) {
	req := stabilityRequest{
		CfgScale: 7,
		Height:   1024,
		Width:    1024,
		Steps:    30,
		Samples:  count,
	}
	req.TextPrompts = []struct {
		Text string `json:"text"`
	}{{Text: prompt}}

	var resp stabilityResponse
	if err := s.http.doJSON(ctx, http.MethodPost, stabilityTextToImageURL, bearer(s.apiKey), req, &resp); err != nil {
		return nil, errs.Wrap(err, "stability image generation failed")
	}
	if len(resp.Artifacts) == 0 {
		return nil, errs.New("stability returned no artifacts")
	}

	urls := make([]string, 0, len(resp.Artifacts))
	for _, artifact := range resp.Artifacts {
		urls = append(urls, fmt.Sprintf("data:image/png;base64,%s", artifact.Base64))
	}
	return urls, nil
}
