package provider

import (
	"fmt"

	"droidforge/internal/domain/model"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/commands"
)

// Registry maps generator enums to their clients. Dispatch is typed; an
// unregistered generator is a provider failure, not a silent fallthrough.
type Registry struct {
	providers map[model.Generator]commands.ModelProvider
}

func NewRegistry(cfg config.ProvidersConfig) *Registry {
	r := &Registry{providers: make(map[model.Generator]commands.ModelProvider)}
	r.register(NewMeshyClient(cfg))
	r.register(NewTripoClient(cfg))
	r.register(NewAI3DStudioClient(cfg))
	r.register(NewAlpha3DClient(cfg))
	r.register(NewSloydClient(cfg))
	r.register(NewPonzuClient(cfg))
	return r
}

func (r *Registry) register(p commands.ModelProvider) {
	r.providers[p.Generator()] = p
}

func (r *Registry) For(g model.Generator) (commands.ModelProvider, error) {
	p, ok := r.providers[g]
	if !ok {
		return nil, errs.Mark(fmt.Errorf("no 3d provider registered for %q", g), errs.ErrProviderFailure)
	}
	return p, nil
}

// NewConceptImageProvider prefers Stability for concept art and falls back
// to dall-e when no Stability key is configured.
func NewConceptImageProvider(cfg config.ProvidersConfig) commands.ImageProvider {
	if cfg.StabilityKey != "" {
		return NewStabilityClient(cfg)
	}
	return NewOpenAIClient(cfg)
}
