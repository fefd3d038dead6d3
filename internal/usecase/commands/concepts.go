package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"droidforge/internal/domain/concept"
	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/queries"
)

type ConceptCommands interface {
	Generate(ctx context.Context, userID uuid.UUID, req reqdto.GenerateConceptsRequest) ([]*queries.ConceptImageView, error)
	Upload(ctx context.Context, userID uuid.UUID, req reqdto.UploadConceptRequest) (*queries.ConceptImageView, error)
	Select(ctx context.Context, userID, imageID uuid.UUID) error
	Delete(ctx context.Context, userID, imageID uuid.UUID) error
}

type conceptCommandsImpl struct {
	conceptRepo    ConceptRepository
	userRepo       UserRepository
	imageProvider  ImageProvider
	conceptQueries queries.ConceptQueries
	generation     config.GenerationConfig
	db             db.DBTX
}

func NewConceptCommands(
	conceptRepo ConceptRepository,
	userRepo UserRepository,
	imageProvider ImageProvider,
	conceptQueries queries.ConceptQueries,
	cfg config.Config,
	db *pgxpool.Pool,
) ConceptCommands {
	return &conceptCommandsImpl{
		conceptRepo:    conceptRepo,
		userRepo:       userRepo,
		imageProvider:  imageProvider,
		conceptQueries: conceptQueries,
		generation:     cfg.Generation,
		db:             db,
	}
}

func (c *conceptCommandsImpl) Generate(
	ctx context.Context,
	userID uuid.UUID,
	req reqdto.GenerateConceptsRequest,
) ([]*queries.ConceptImageView, error) {
	profile, err := c.userRepo.FindProfile(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	_, hasKey := profile.APIKeys["openai"]
	platformCredential := !hasKey
	if platformCredential && profile.FreeGenerationsUsed >= c.generation.FreeQuota {
		return nil, errs.ErrQuotaExhausted
	}

	urls, err := c.imageProvider.GenerateImages(ctx, req.Prompt, req.ImageCount())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProviderFailure)
	}

	// Quota is burned only once per batch and only after the provider
	// actually delivered; failed generations stay free.
	if platformCredential {
		if _, err := c.userRepo.ConsumeFreeGeneration(ctx, c.db, userID, c.generation.FreeQuota); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	views := make([]*queries.ConceptImageView, 0, len(urls))
	for _, url := range urls {
		img, err := concept.NewImage(userID, req.Prompt, url, c.imageProvider.Generator())
		if err != nil {
			return nil, err
		}
		if err := c.conceptRepo.Create(ctx, c.db, img); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		view, err := c.conceptQueries.GetByID(ctx, userID, img.ID())
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (c *conceptCommandsImpl) Upload(
	ctx context.Context,
	userID uuid.UUID,
	req reqdto.UploadConceptRequest,
) (*queries.ConceptImageView, error) {
	prompt := req.Prompt
	if prompt == "" {
		prompt = "uploaded reference image"
	}
	img, err := concept.NewImage(userID, prompt, req.ImageURL, concept.GeneratorUpload)
	if err != nil {
		return nil, err
	}
	if err := c.conceptRepo.Create(ctx, c.db, img); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.conceptQueries.GetByID(ctx, userID, img.ID())
}

// Select enforces the one-selected-per-user invariant inside the repository:
// a single statement flips every other image off.
func (c *conceptCommandsImpl) Select(ctx context.Context, userID, imageID uuid.UUID) error {
	selected, err := c.conceptRepo.Select(ctx, c.db, userID, imageID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !selected {
		return errs.ErrConceptNotFound
	}
	return nil
}

func (c *conceptCommandsImpl) Delete(ctx context.Context, userID, imageID uuid.UUID) error {
	deleted, err := c.conceptRepo.Delete(ctx, c.db, userID, imageID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !deleted {
		return errs.ErrConceptNotFound
	}
	return nil
}
