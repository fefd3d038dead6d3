package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"droidforge/internal/domain/model"
	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/infra"
	"droidforge/internal/pkg/errs"
)

type UserCommands interface {
	UpdateAPIKeys(ctx context.Context, userID uuid.UUID, req reqdto.UpdateAPIKeysRequest) error
}

type userCommandsImpl struct {
	userRepo UserRepository
	db       *pgxpool.Pool
}

func NewUserCommands(userRepo UserRepository, db *pgxpool.Pool) UserCommands {
	return &userCommandsImpl{userRepo: userRepo, db: db}
}

func (u *userCommandsImpl) UpdateAPIKeys(ctx context.Context, userID uuid.UUID, req reqdto.UpdateAPIKeysRequest) error {
	keys := make(map[string]string, len(req.Keys))
	for provider, key := range req.Keys {
		if _, err := model.NewGenerator(provider); err != nil {
			return err
		}
		if key == "" {
			continue
		}
		keys[provider] = key
	}

	if err := u.userRepo.UpdateAPIKeys(ctx, u.db, userID, keys); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
