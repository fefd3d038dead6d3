package provider

import (
	"context"
	"net/http"

	"droidforge/internal/domain/model"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/commands"
)

const tripoBaseURL = "https://api.tripo3d.ai"

type TripoClient struct {
	http *httpClient
}

func NewTripoClient(cfg config.ProvidersConfig) *TripoClient {
	return &TripoClient{http: newHTTPClient(cfg)}
}

func (t *TripoClient) Generator() model.Generator {
	return model.GeneratorTripo
}

type tripoSubmitRequest struct {
	Type         string `json:"type"`
	Prompt       string `json:"prompt"`
	ModelVersion string `json:"model_version"`
	FaceLimit    int    `json:"face_limit"`
}

type tripoSubmitResponse struct {
	Data struct {
		TaskID string `json:"task_id"`
	} `json:"data"`
}

func tripoFaceLimit(complexity string) int {
	switch complexity {
	case "simple":
		return 2000
	case "medium":
		return 5000
	default:
		return 10000
	}
}

func (t *TripoClient) Submit(ctx context.Context, job commands.GenerationJob) (string, error) {
	req := tripoSubmitRequest{
		Type:         "text_to_model",
		Prompt:       job.Prompt,
		ModelVersion: "v2.0-20240919",
		FaceLimit:    tripoFaceLimit(job.Settings.Complexity),
	}
	var resp tripoSubmitResponse
	if err := t.http.doJSON(ctx, http.MethodPost, tripoBaseURL+"/v2/openapi/task", bearer(job.Credential), req, &resp); err != nil {
		return "", errs.Wrap(err, "tripo submit failed")
	}
	if resp.Data.TaskID == "" {
		return "", errs.New("tripo returned no task id")
	}
	return resp.Data.TaskID, nil
}

type tripoTaskResponse struct {
	Data struct {
		Status string `json:"status"`
		Output struct {
			FaceCount int `json:"face_count"`
		} `json:"output"`
	} `json:"data"`
}

func (t *TripoClient) Poll(ctx context.Context, jobHandle, credential string) (*commands.PollResult, error) {
	var resp tripoTaskResponse
	if err := t.http.doJSON(ctx, http.MethodGet, tripoBaseURL+"/v2/openapi/task/"+jobHandle, bearer(credential), nil, &resp); err != nil {
		return nil, errs.Wrap(err, "tripo poll failed")
	}

	switch resp.Data.Status {
	case "success":
		stats := estimateStats(resp.Data.Output.FaceCount)
		return &commands.PollResult{Done: true, Stats: &stats}, nil
	case "failed", "cancelled", "banned", "expired":
		return &commands.PollResult{Failed: true, Detail: "tripo task " + resp.Data.Status}, nil
	default:
		return &commands.PollResult{}, nil
	}
}
