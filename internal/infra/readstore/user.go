package readstore

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hotel-loyalty-core/internal/infra"
	"hotel-loyalty-core/internal/infra/db"
	"hotel-loyalty-core/internal/usecase/queries"
)

type UserReadStore struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewUserReadStore(dbtx db.DBTX) queries.UserReadStore {
	return &UserReadStore{dbtx: dbtx, logger: slog.Default()}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view := &queries.AuthorizedUserView{}
	err := r.dbtx.QueryRow(ctx,
		`SELECT id, email, role, is_active FROM users WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var hashedPassword string
	view := &queries.AuthorizedUserView{}
	err := r.dbtx.QueryRow(ctx,
		`SELECT id, email, role, is_active, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &hashedPassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, "", infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find user by email", err)
	}
	return view, hashedPassword, nil
}
