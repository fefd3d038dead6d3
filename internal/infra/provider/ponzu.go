package provider

import (
	"context"
	"net/http"
	"strings"

	"droidforge/internal/domain/model"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/commands"
)

// PonzuClient talks to a self-hosted instance. The credential carries the
// endpoint URL instead of a bearer token.
type PonzuClient struct {
	http            *httpClient
	defaultEndpoint string
}

func NewPonzuClient(cfg config.ProvidersConfig) *PonzuClient {
	return &PonzuClient{
		http:            newHTTPClient(cfg),
		defaultEndpoint: cfg.PonzuEndpoint,
	}
}

func (p *PonzuClient) Generator() model.Generator {
	return model.GeneratorPonzu
}

func (p *PonzuClient) endpoint(credential string) string {
	if strings.HasPrefix(credential, "http://") || strings.HasPrefix(credential, "https://") {
		return strings.TrimSuffix(credential, "/")
	}
	return strings.TrimSuffix(p.defaultEndpoint, "/")
}

type ponzuSubmitResponse struct {
	JobID string `json:"job_id"`
}

func (p *PonzuClient) Submit(ctx context.Context, job commands.GenerationJob) (string, error) {
	body := map[string]any{
		"prompt": job.Prompt,
		"settings": map[string]any{
			"style":        job.Settings.Style,
			"complexity":   job.Settings.Complexity,
			"size":         job.Settings.Size,
			"material":     job.Settings.Material,
			"printability": job.Settings.Printability,
			"supports":     job.Settings.Supports,
			"hollow_fill":  job.Settings.HollowFill,
		},
	}
	var resp ponzuSubmitResponse
	if err := p.http.doJSON(ctx, http.MethodPost, p.endpoint(job.Credential)+"/api/generate", nil, body, &resp); err != nil {
		return "", errs.Wrap(err, "ponzu submit failed")
	}
	if resp.JobID == "" {
		return "", errs.New("ponzu returned no job id")
	}
	return resp.JobID, nil
}

type ponzuJobResponse struct {
	Status    string `json:"status"`
	Error     string `json:"error"`
	FaceCount int    `json:"face_count"`
}

func (p *PonzuClient) Poll(ctx context.Context, jobHandle, credential string) (*commands.PollResult, error) {
	var resp ponzuJobResponse
	if err := p.http.doJSON(ctx, http.MethodGet, p.endpoint(credential)+"/api/jobs/"+jobHandle, nil, nil, &resp); err != nil {
		return nil, errs.Wrap(err, "ponzu poll failed")
	}

	switch resp.Status {
	case "done":
		stats := estimateStats(resp.FaceCount)
		return &commands.PollResult{Done: true, Stats: &stats}, nil
	case "error":
		return &commands.PollResult{Failed: true, Detail: resp.Error}, nil
	default:
		return &commands.PollResult{}, nil
	}
}
