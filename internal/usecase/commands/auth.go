package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"droidforge/internal/domain/user"
	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/infra"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/pkg/jwt"
	"droidforge/internal/pkg/password"
)

type AuthResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	db         *pgxpool.Pool
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, db *pgxpool.Pool) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		db:         db,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	email, pass, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredential)
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewUser(email, hash, user.RoleCustomer)
	profile := user.NewProfile(newUser.ID())

	tx, err := a.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	userID, err := a.userRepo.Create(ctx, tx, newUser)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := a.userRepo.CreateProfile(ctx, tx, profile); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	token, err := a.jwtService.GenerateToken(userID, user.RoleCustomer)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthResult{UserID: userID, Token: token}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	email, pass, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredential)
	}

	snapshot, err := a.userRepo.FindByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredential
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !snapshot.IsActive {
		return nil, errs.ErrInvalidCredential
	}
	if err := password.ComparePassword(snapshot.PasswordHash, pass.Value()); err != nil {
		return nil, errs.ErrInvalidCredential
	}

	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := a.jwtService.GenerateToken(snapshot.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	if err := a.userRepo.UpdateLastLogin(ctx, a.db, snapshot.ID); err != nil {
		slog.Warn("failed to update last login", "user_id", snapshot.ID, "error", err.Error())
	}

	return &AuthResult{UserID: snapshot.ID, Token: token}, nil
}
