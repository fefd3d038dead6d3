package provider

import (
	"context"
	"net/http"

	"droidforge/internal/domain/model"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/commands"
)

const meshyBaseURL = "https://api.meshy.ai"

type MeshyClient struct {
	http *httpClient
}

func NewMeshyClient(cfg config.ProvidersConfig) *MeshyClient {
	return &MeshyClient{http: newHTTPClient(cfg)}
}

func (m *MeshyClient) Generator() model.Generator {
	return model.GeneratorMeshy
}

type meshySubmitRequest struct {
	Mode           string `json:"mode"`
	Prompt         string `json:"prompt"`
	ArtStyle       string `json:"art_style"`
	NegativePrompt string `json:"negative_prompt"`
}

type meshySubmitResponse struct {
	Result string `json:"result"`
}

func (m *MeshyClient) Submit(ctx context.Context, job commands.GenerationJob) (string, error) {
	req := meshySubmitRequest{
		Mode:           "preview",
		Prompt:         job.Prompt,
		ArtStyle:       job.Settings.Style,
		NegativePrompt: "low quality, blurry, distorted",
	}
	var resp meshySubmitResponse
	if err := m.http.doJSON(ctx, http.MethodPost, meshyBaseURL+"/v1/text-to-3d", bearer(job.Credential), req, &resp); err != nil {
		return "", errs.Wrap(err, "meshy submit failed")
	}
	if resp.Result == "" {
		return "", errs.New("meshy returned no task id")
	}
	return resp.Result, nil
}

type meshyTaskResponse struct {
	Status    string `json:"status"`
	TaskError struct {
		Message string `json:"message"`
	} `json:"task_error"`
	PolygonCount int `json:"polygon_count"`
}

func (m *MeshyClient) Poll(ctx context.Context, jobHandle, credential string) (*commands.PollResult, error) {
	var resp meshyTaskResponse
	if err := m.http.doJSON(ctx, http.MethodGet, meshyBaseURL+"/v1/text-to-3d/"+jobHandle, bearer(credential), nil, &resp); err != nil {
		return nil, errs.Wrap(err, "meshy poll failed")
	}

	switch resp.Status {
	case "SUCCEEDED":
		stats := estimateStats(resp.PolygonCount)
		return &commands.PollResult{Done: true, Stats: &stats}, nil
	case "FAILED", "CANCELED":
		return &commands.PollResult{Failed: true, Detail: resp.TaskError.Message}, nil
	default:
		return &commands.PollResult{}, nil
	}
}
