package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/internal/infra"
	"hotel-loyalty-core/internal/infra/db"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/shared"
)

type AccountRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewAccountRepository(dbtx db.DBTX) shared.AccountRepository {
	return &AccountRepository{dbtx: dbtx, logger: slog.Default()}
}

func (r *AccountRepository) Create(ctx context.Context, a *loyalty.Account) error {
	_, err := r.dbtx.Exec(ctx,
		`INSERT INTO loyalty_accounts (customer_id, current_points, lifetime_points, tier, is_disabled, enrolled_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.CustomerID(), a.CurrentPoints(), a.LifetimePoints(), string(a.Tier()), a.IsDisabled(), a.EnrolledAt(), a.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "insert loyalty account", err)
	}
	return nil
}

func (r *AccountRepository) GetForUpdate(ctx context.Context, customerID uuid.UUID) (*loyalty.Account, error) {
	var (
		id                    uuid.UUID
		current, lifetime     int64
		tier                  string
		disabled              bool
		enrolledAt, updatedAt time.Time
	)
	err := r.dbtx.QueryRow(ctx,
		`SELECT customer_id, current_points, lifetime_points, tier, is_disabled, enrolled_at, updated_at
		 FROM loyalty_accounts WHERE customer_id = $1 FOR UPDATE`,
		customerID,
	).Scan(&id, &current, &lifetime, &tier, &disabled, &enrolledAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(err, errs.ErrAccountNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "select account for update", err)
	}

	return loyalty.ReconstructAccount(id, current, lifetime, loyalty.Tier(tier), disabled, enrolledAt, updatedAt), nil
}

func (r *AccountRepository) Update(ctx context.Context, a *loyalty.Account) error {
	tag, err := r.dbtx.Exec(ctx,
		`UPDATE loyalty_accounts SET current_points = $2, lifetime_points = $3, tier = $4, is_disabled = $5, updated_at = $6
		 WHERE customer_id = $1`,
		a.CustomerID(), a.CurrentPoints(), a.LifetimePoints(), string(a.Tier()), a.IsDisabled(), a.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "update loyalty account", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(errs.New("account row missing on update"), errs.ErrAccountNotFound)
	}
	return nil
}
