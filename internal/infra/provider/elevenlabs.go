package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
)

const (
	elevenLabsBaseURL = "https://api.elevenlabs.io"
	defaultVoiceID    = "21m00Tcm4TlvDq8ikWAM"
)

// ElevenLabsClient synthesizes the call audio. Actual telephony delivery is
// out of scope; a successful synthesis marks the call placed.
type ElevenLabsClient struct {
	client *http.Client
	apiKey string
}

func NewElevenLabsClient(cfg config.ProvidersConfig) *ElevenLabsClient {
	return &ElevenLabsClient{
		client: &http.Client{Timeout: cfg.RequestTimeout},
		apiKey: cfg.ElevenLabsKey,
	}
}

type speechRequest struct {
	Text          string `json:"text"`
	ModelID       string `json:"model_id"`
	VoiceSettings struct {
		Stability       float64 `json:"stability"`
		SimilarityBoost float64 `json:"similarity_boost"`
	} `json:"voice_settings"`
}

func (e *ElevenLabsClient) PlaceCall(ctx context.Context, phoneNumber, script string) error {
	req := speechRequest{
		Text:    script,
		ModelID: "eleven_monolingual_v1",
	}
	req.VoiceSettings.Stability = 0.5
	req.VoiceSettings.SimilarityBoost = 0.5

	payload, err := json.Marshal(req)
	if err != nil {
		return errs.Wrap(err, "failed to encode speech request")
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		elevenLabsBaseURL+"/v1/text-to-speech/"+defaultVoiceID,
		bytes.NewReader(payload),
	)
	if err != nil {
		return errs.Wrap(err, "failed to build speech request")
	}
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return errs.Wrap(err, "elevenlabs request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errs.New(fmt.Sprintf("elevenlabs returned %s: %s", resp.Status, detail))
	}

	// The synthesized audio would be handed to a telephony bridge here.
	slog.Info("ai call audio synthesized", "phone_number", phoneNumber)
	return nil
}
