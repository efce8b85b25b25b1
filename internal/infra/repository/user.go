package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hotel-loyalty-core/internal/domain/user"
	"hotel-loyalty-core/internal/infra"
	"hotel-loyalty-core/internal/infra/db"
	"hotel-loyalty-core/internal/usecase/shared"
)

type UserRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewUserRepository(dbtx db.DBTX) shared.UserRepository {
	return &UserRepository{dbtx: dbtx, logger: slog.Default()}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User, hashedPassword string) error {
	_, err := r.dbtx.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID(), u.Email().String(), hashedPassword, string(u.Role()), u.IsActive(), u.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "insert user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.dbtx.Exec(ctx,
		`UPDATE users SET last_login_at = $2 WHERE id = $1`,
		userID, time.Now().UTC(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "update last login", err)
	}
	return nil
}
