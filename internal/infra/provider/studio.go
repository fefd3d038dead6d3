package provider

import (
	"context"
	"net/http"

	"droidforge/internal/domain/model"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/commands"
)

// The studio-style services share one task shape: POST a prompt with
// service-specific tuning, poll a job resource for queued/processing/
// completed/failed. Only the submit payload differs.

type studioJobResponse struct {
	ID        string `json:"id"`
	JobID     string `json:"job_id"`
	Status    string `json:"status"`
	Error     string `json:"error"`
	FaceCount int    `json:"face_count"`
}

func (r studioJobResponse) handle() string {
	if r.ID != "" {
		return r.ID
	}
	return r.JobID
}

type studioClient struct {
	http      *httpClient
	generator model.Generator
	submitURL string
	jobURL    string
	payload   func(job commands.GenerationJob) map[string]any
}

func (s *studioClient) Generator() model.Generator {
	return s.generator
}

func (s *studioClient) Submit(ctx context.Context, job commands.GenerationJob) (string, error) {
	var resp studioJobResponse
	if err := s.http.doJSON(ctx, http.MethodPost, s.submitURL, bearer(job.Credential), s.payload(job), &resp); err != nil {
		return "", errs.Wrap(err, string(s.generator)+" submit failed")
	}
	if resp.handle() == "" {
		return "", errs.New(string(s.generator) + " returned no job id")
	}
	return resp.handle(), nil
}

func (s *studioClient) Poll(ctx context.Context, jobHandle, credential string) (*commands.PollResult, error) {
	var resp studioJobResponse
	if err := s.http.doJSON(ctx, http.MethodGet, s.jobURL+"/"+jobHandle, bearer(credential), nil, &resp); err != nil {
		return nil, errs.Wrap(err, string(s.generator)+" poll failed")
	}

	switch resp.Status {
	case "completed", "succeeded":
		stats := estimateStats(resp.FaceCount)
		return &commands.PollResult{Done: true, Stats: &stats}, nil
	case "failed", "cancelled":
		return &commands.PollResult{Failed: true, Detail: resp.Error}, nil
	default:
		return &commands.PollResult{}, nil
	}
}

func NewAI3DStudioClient(cfg config.ProvidersConfig) commands.ModelProvider {
	return &studioClient{
		http:      newHTTPClient(cfg),
		generator: model.GeneratorAI3DStudio,
		submitURL: "https://api.3daistudio.com/v1/generate",
		jobURL:    "https://api.3daistudio.com/v1/jobs",
		payload: func(job commands.GenerationJob) map[string]any {
			return map[string]any{
				"prompt":  job.Prompt,
				"style":   job.Settings.Style,
				"quality": job.Settings.Complexity,
				"format":  "obj",
			}
		},
	}
}

func NewAlpha3DClient(cfg config.ProvidersConfig) commands.ModelProvider {
	return &studioClient{
		http:      newHTTPClient(cfg),
		generator: model.GeneratorAlpha3D,
		submitURL: "https://api.alpha3d.io/v1/text-to-3d",
		jobURL:    "https://api.alpha3d.io/v1/jobs",
		payload: func(job commands.GenerationJob) map[string]any {
			topology := "tri"
			if job.Settings.Printability == "optimized" {
				topology = "quad"
			}
			return map[string]any{
				"prompt":     job.Prompt,
				"style":      job.Settings.Style,
				"topology":   topology,
				"resolution": job.Settings.Complexity,
			}
		},
	}
}

func sloydLOD(complexity string) int {
	switch complexity {
	case "simple":
		return 0
	case "medium":
		return 1
	default:
		return 2
	}
}

func NewSloydClient(cfg config.ProvidersConfig) commands.ModelProvider {
	return &studioClient{
		http:      newHTTPClient(cfg),
		generator: model.GeneratorSloyd,
		submitURL: "https://api.sloyd.ai/v1/generate",
		jobURL:    "https://api.sloyd.ai/v1/jobs",
		payload: func(job commands.GenerationJob) map[string]any {
			return map[string]any{
				"prompt": job.Prompt,
				"style":  job.Settings.Style,
				"lod":    sloydLOD(job.Settings.Complexity),
				"format": "fbx",
			}
		},
	}
}
