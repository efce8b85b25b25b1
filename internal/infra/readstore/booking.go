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

type BookingReadStore struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewBookingReadStore(dbtx db.DBTX) queries.BookingReadStore {
	return &BookingReadStore{dbtx: dbtx, logger: slog.Default()}
}

const findBookingByIDSQL = `
SELECT id, customer_id, hotel_id, check_in, check_out,
	base_price_cents, final_price_cents, status,
	points_used, discount_cents, redemption_tx_id,
	points_earned, earn_tx_id,
	completion_bonus, completion_tx_id,
	points_refunded, refund_tx_id, points_shortfall,
	created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view := &queries.BookingView{}
	err := r.dbtx.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&view.ID, &view.CustomerID, &view.HotelID, &view.CheckIn, &view.CheckOut,
		&view.BasePriceCents, &view.FinalPriceCents, &view.Status,
		&view.Loyalty.PointsUsed, &view.Loyalty.DiscountCents, &view.Loyalty.RedemptionTxID,
		&view.Loyalty.PointsEarned, &view.Loyalty.EarnTxID,
		&view.Loyalty.CompletionBonus, &view.Loyalty.CompletionTxID,
		&view.Loyalty.PointsRefunded, &view.Loyalty.RefundTxID, &view.Loyalty.PointsShortfall,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find booking by ID", err)
	}

	if view.Rooms, err = r.findRooms(ctx, id); err != nil {
		return nil, err
	}
	if view.History, err = r.findHistory(ctx, id); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *BookingReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.dbtx.Query(ctx,
		`SELECT id, hotel_id, check_in, check_out, status, final_price_cents, created_at
		 FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2`,
		customerID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	items := []*queries.BookingListItem{}
	for rows.Next() {
		item := &queries.BookingListItem{}
		if err := rows.Scan(&item.ID, &item.HotelID, &item.CheckIn, &item.CheckOut, &item.Status, &item.FinalPriceCents, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booking list item", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *BookingReadStore) findRooms(ctx context.Context, bookingID uuid.UUID) ([]queries.RoomLineView, error) {
	rows, err := r.dbtx.Query(ctx,
		`SELECT room_type, quantity, nightly_rate_cents FROM booking_rooms WHERE booking_id = $1 ORDER BY id`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find booking rooms", err)
	}
	defer rows.Close()

	var lines []queries.RoomLineView
	for rows.Next() {
		var line queries.RoomLineView
		if err := rows.Scan(&line.RoomType, &line.Quantity, &line.NightlyRateCents); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan room line", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *BookingReadStore) findHistory(ctx context.Context, bookingID uuid.UUID) ([]queries.StatusChangeView, error) {
	rows, err := r.dbtx.Query(ctx,
		`SELECT previous_status, next_status, actor_id, actor_role, reason, changed_at
		 FROM booking_status_history WHERE booking_id = $1 ORDER BY id`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find status history", err)
	}
	defer rows.Close()

	var history []queries.StatusChangeView
	for rows.Next() {
		var change queries.StatusChangeView
		if err := rows.Scan(&change.Previous, &change.Next, &change.ActorID, &change.ActorRole, &change.Reason, &change.At); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan status change", err)
		}
		history = append(history, change)
	}
	return history, rows.Err()
}
