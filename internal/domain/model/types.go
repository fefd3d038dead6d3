package model

// Status is a forward-only progression for a generation job.
type Status string

const (
	StatusGenerating       Status = "generating"
	StatusAwaitingApproval Status = "awaiting_approval"
	StatusCompleted        Status = "completed"
	StatusFailed           Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusGenerating, StatusAwaitingApproval, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Generator identifies a 3D generation provider. Providers are registered
// explicitly under these keys; there is no fallthrough for unknown values.
type Generator string

const (
	GeneratorMeshy      Generator = "meshy"
	GeneratorTripo      Generator = "tripo"
	GeneratorAI3DStudio Generator = "ai3dstudio"
	GeneratorAlpha3D    Generator = "alpha3d"
	GeneratorSloyd      Generator = "sloyd"
	GeneratorPonzu      Generator = "ponzu"
	GeneratorStability  Generator = "stability"
	GeneratorOpenAI     Generator = "openai"
)

func (g Generator) String() string {
	return string(g)
}

func (g Generator) IsValid() bool {
	switch g {
	case GeneratorMeshy, GeneratorTripo, GeneratorAI3DStudio, GeneratorAlpha3D,
		GeneratorSloyd, GeneratorPonzu, GeneratorStability, GeneratorOpenAI:
		return true
	default:
		return false
	}
}

func NewGenerator(s string) (Generator, error) {
	g := Generator(s)
	if !g.IsValid() {
		return "", ErrUnknownGenerator
	}
	return g, nil
}
