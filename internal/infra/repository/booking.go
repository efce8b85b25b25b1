package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hotel-loyalty-core/internal/domain/booking"
	"hotel-loyalty-core/internal/domain/user"
	"hotel-loyalty-core/internal/infra"
	"hotel-loyalty-core/internal/infra/db"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/shared"
)

type BookingRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewBookingRepository(dbtx db.DBTX) shared.BookingRepository {
	return &BookingRepository{dbtx: dbtx, logger: slog.Default()}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, customer_id, hotel_id, check_in, check_out,
	base_price_cents, final_price_cents, status,
	points_used, discount_cents, redemption_tx_id,
	points_earned, earn_tx_id,
	completion_bonus, completion_tx_id,
	points_refunded, refund_tx_id, points_shortfall,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	effect := b.Effect()
	_, err := r.dbtx.Exec(ctx, insertBookingSQL,
		b.ID(), b.CustomerID(), b.HotelID(), b.Stay().CheckIn(), b.Stay().CheckOut(),
		b.BasePrice().Cents(), b.FinalPrice().Cents(), string(b.Status()),
		effect.PointsUsed(), effect.DiscountCents(), effect.RedemptionTxID(),
		effect.PointsEarned(), effect.EarnTxID(),
		effect.CompletionBonus(), effect.CompletionTxID(),
		effect.PointsRefunded(), effect.RefundTxID(), effect.PointsShortfall(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "insert booking", err)
	}

	for _, room := range b.Rooms() {
		_, err := r.dbtx.Exec(ctx,
			`INSERT INTO booking_rooms (booking_id, room_type, quantity, nightly_rate_cents) VALUES ($1, $2, $3, $4)`,
			b.ID(), room.RoomType(), room.Quantity(), room.NightlyRateCents(),
		)
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "insert booking room", err)
		}
	}

	for _, change := range b.History() {
		if err := r.AppendStatusHistory(ctx, b.ID(), change); err != nil {
			return err
		}
	}
	return nil
}

const selectBookingForUpdateSQL = `
SELECT id, customer_id, hotel_id, check_in, check_out,
	base_price_cents, final_price_cents, status,
	points_used, discount_cents, redemption_tx_id,
	points_earned, earn_tx_id,
	completion_bonus, completion_tx_id,
	points_refunded, refund_tx_id, points_shortfall,
	created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE`

func (r *BookingRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID, customerID, hotelID                       uuid.UUID
		row                                                  bookingRow
		redemptionTxID, earnTxID, completionTxID, refundTxID *uuid.UUID
	)
	err := r.dbtx.QueryRow(ctx, selectBookingForUpdateSQL, id).Scan(
		&bookingID, &customerID, &hotelID, &row.checkIn, &row.checkOut,
		&row.basePriceCents, &row.finalPriceCents, &row.status,
		&row.pointsUsed, &row.discountCents, &redemptionTxID,
		&row.pointsEarned, &earnTxID,
		&row.completionBonus, &completionTxID,
		&row.pointsRefunded, &refundTxID, &row.pointsShortfall,
		&row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "select booking for update", err)
	}

	rooms, err := r.loadRooms(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	history, err := r.loadHistory(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	basePrice, err := booking.NewMoney(row.basePriceCents)
	if err != nil {
		return nil, errs.Wrap(err, "rehydrate base price")
	}
	finalPrice, err := booking.NewMoney(row.finalPriceCents)
	if err != nil {
		return nil, errs.Wrap(err, "rehydrate final price")
	}

	effect := booking.ReconstructLoyaltyEffect(
		row.pointsUsed, row.discountCents, redemptionTxID,
		row.pointsEarned, earnTxID,
		row.completionBonus, completionTxID,
		row.pointsRefunded, refundTxID, row.pointsShortfall,
	)

	return booking.ReconstructBooking(
		bookingID, customerID, hotelID,
		booking.ReconstructStayPeriod(row.checkIn, row.checkOut),
		rooms,
		basePrice, finalPrice,
		booking.Status(row.status),
		history,
		effect,
		row.createdAt, row.updatedAt,
	), nil
}

const updateBookingSQL = `
UPDATE bookings SET
	status = $2, final_price_cents = $3,
	points_used = $4, discount_cents = $5, redemption_tx_id = $6,
	points_earned = $7, earn_tx_id = $8,
	completion_bonus = $9, completion_tx_id = $10,
	points_refunded = $11, refund_tx_id = $12, points_shortfall = $13,
	updated_at = $14
WHERE id = $1`

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	effect := b.Effect()
	tag, err := r.dbtx.Exec(ctx, updateBookingSQL,
		b.ID(), string(b.Status()), b.FinalPrice().Cents(),
		effect.PointsUsed(), effect.DiscountCents(), effect.RedemptionTxID(),
		effect.PointsEarned(), effect.EarnTxID(),
		effect.CompletionBonus(), effect.CompletionTxID(),
		effect.PointsRefunded(), effect.RefundTxID(), effect.PointsShortfall(),
		b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(errs.New("booking row missing on update"), errs.ErrBookingNotFound)
	}
	return nil
}

func (r *BookingRepository) AppendStatusHistory(ctx context.Context, bookingID uuid.UUID, change booking.StatusChange) error {
	_, err := r.dbtx.Exec(ctx,
		`INSERT INTO booking_status_history (booking_id, previous_status, next_status, actor_id, actor_role, reason, changed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		bookingID, string(change.Previous), string(change.Next),
		change.ActorID, string(change.ActorRole), change.Reason, change.At,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "insert status history", err)
	}
	return nil
}

type bookingRow struct {
	checkIn, checkOut               time.Time
	basePriceCents, finalPriceCents int64
	status                          string
	pointsUsed, discountCents       int64
	pointsEarned, completionBonus   int64
	pointsRefunded, pointsShortfall int64
	createdAt, updatedAt            time.Time
}

func (r *BookingRepository) loadRooms(ctx context.Context, bookingID uuid.UUID) ([]booking.RoomLine, error) {
	rows, err := r.dbtx.Query(ctx,
		`SELECT room_type, quantity, nightly_rate_cents FROM booking_rooms WHERE booking_id = $1 ORDER BY id`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "select booking rooms", err)
	}
	defer rows.Close()

	var lines []booking.RoomLine
	for rows.Next() {
		var (
			roomType string
			quantity int
			rate     int64
		)
		if err := rows.Scan(&roomType, &quantity, &rate); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "scan booking room", err)
		}
		line, err := booking.NewRoomLine(roomType, quantity, rate)
		if err != nil {
			return nil, errs.Wrap(err, "rehydrate room line")
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *BookingRepository) loadHistory(ctx context.Context, bookingID uuid.UUID) ([]booking.StatusChange, error) {
	rows, err := r.dbtx.Query(ctx,
		`SELECT previous_status, next_status, actor_id, actor_role, reason, changed_at
		 FROM booking_status_history WHERE booking_id = $1 ORDER BY id`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "select status history", err)
	}
	defer rows.Close()

	var history []booking.StatusChange
	for rows.Next() {
		var (
			change               booking.StatusChange
			previous, next, role string
		)
		if err := rows.Scan(&previous, &next, &change.ActorID, &role, &change.Reason, &change.At); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "scan status history", err)
		}
		change.Previous = booking.Status(previous)
		change.Next = booking.Status(next)
		change.ActorRole = user.Role(role)
		history = append(history, change)
	}
	return history, rows.Err()
}
