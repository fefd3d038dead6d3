package provider

import (
	"context"
	"net/http"

	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
)

const enhancementSystemPrompt = "You are a 3D modeling expert. Generate detailed technical descriptions for 3D models optimized for printing."

// OpenAIClient covers prompt enhancement (chat completions) and concept
// image generation (dall-e-3).
type OpenAIClient struct {
	http    *httpClient
	baseURL string
	apiKey  string
}

func NewOpenAIClient(cfg config.ProvidersConfig) *OpenAIClient {
	return &OpenAIClient{
		http:    newHTTPClient(cfg),
		baseURL: cfg.OpenAIBaseURL,
		apiKey:  cfg.OpenAIKey,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *OpenAIClient) Enhance(ctx context.Context, prompt string) (string, error) {
	req := chatCompletionRequest{
		Model: "gpt-4.1-nano",
		Messages: []chatMessage{
			{Role: "system", Content: enhancementSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}
	var resp chatCompletionResponse
	if err := c.http.doJSON(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bearer(c.apiKey), req, &resp); err != nil {
		return "", errs.Wrap(err, "openai chat completion failed")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errs.New("openai returned no completion")
	}
	return resp.Choices[0].Message.Content, nil
}

type imageGenerationRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageGenerationResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (c *OpenAIClient) Generator() string { return "openai" }

// GenerateImages issues one dall-e-3 request per variation; the model only
// supports n=1.
func (c *OpenAIClient) GenerateImages(ctx context.Context, prompt string, count int) ([]string, error) {
	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		req := imageGenerationRequest{
			Model:  "dall-e-3",
			Prompt: prompt,
			N:      1,
			Size:   "1024x1024",
		}
		var resp imageGenerationResponse
		if err := c.http.doJSON(ctx, http.MethodPost, c.baseURL+"/v1/images/generations", bearer(c.apiKey), req, &resp); err != nil {
			return nil, errs.Wrap(err, "openai image generation failed")
		}
		if len(resp.Data) == 0 {
			return nil, errs.New("openai returned no image")
		}
		urls = append(urls, resp.Data[0].URL)
	}
	return urls, nil
}
