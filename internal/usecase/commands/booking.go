package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hotel-loyalty-core/internal/domain/booking"
	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/internal/domain/user"
	"hotel-loyalty-core/internal/pkg/clock"
	"hotel-loyalty-core/internal/pkg/config"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/queries"
	"hotel-loyalty-core/internal/usecase/shared"
)

const bookingStatusTopic = "booking.status_changed"

type RoomLineInput struct {
	RoomType         string
	Quantity         int
	NightlyRateCents int64
}

type CreateBookingParams struct {
	CustomerID   uuid.UUID
	HotelID      uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
	Rooms        []RoomLineInput
	RedeemPoints int64
	Actor        booking.Actor
}

type TransitionParams struct {
	BookingID uuid.UUID
	Target    booking.Status
	Reason    string
	Actor     booking.Actor
	Options   booking.TransitionOptions
}

type BookingCommands interface {
	Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error)
	Transition(ctx context.Context, p TransitionParams) (*queries.BookingView, error)
}

// bookingCommandsImpl is the transaction coordinator: every status change and
// its loyalty side effects commit in one unit of work, so a booking can never
// land in a new status with its points half-applied.
type bookingCommandsImpl struct {
	uow         shared.UnitOfWork
	ledger      *LedgerService
	factory     *booking.Factory
	policy      *loyalty.TierPolicy
	pricing     PricingPort
	eligibility EligibilityPort
	inventory   InventoryPort
	reader      queries.BookingQueries
	loyaltyCfg  config.LoyaltyConfig
	clock       clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	ledger *LedgerService,
	factory *booking.Factory,
	policy *loyalty.TierPolicy,
	pricing PricingPort,
	eligibility EligibilityPort,
	inventory InventoryPort,
	reader queries.BookingQueries,
	loyaltyCfg config.LoyaltyConfig,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:         uow,
		ledger:      ledger,
		factory:     factory,
		policy:      policy,
		pricing:     pricing,
		eligibility: eligibility,
		inventory:   inventory,
		reader:      reader,
		loyaltyCfg:  loyaltyCfg,
		clock:       clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error) {
	draft, err := c.buildDraft(p)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	selections := make([]RoomSelection, 0, len(p.Rooms))
	for _, r := range p.Rooms {
		selections = append(selections, RoomSelection{RoomType: r.RoomType, Quantity: r.Quantity})
	}
	quote, err := c.pricing.Quote(ctx, p.HotelID, selections, p.CheckIn, p.CheckOut)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "pricing quote failed"), errs.ErrCollaboratorUnavailable)
	}

	redemption, err := c.validateRedemption(ctx, p, quote)
	if err != nil {
		return nil, err
	}

	// The aggregate is rebuilt on every scope attempt: a serialization retry
	// rolls the database writes back, and the effect's set-once redemption
	// tx-id has to roll back with them.
	var created *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.factory.CreateBooking(draft, booking.Quote{
			BasePriceCents:  quote.BasePriceCents,
			FinalPriceCents: quote.FinalPriceCents,
		}, redemption, p.Actor)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if redemption != nil {
			bookingID := b.ID()
			entry, _, err := c.ledger.Append(ctx, tx, AppendParams{
				CustomerID: p.CustomerID,
				Kind:       loyalty.KindRedeem,
				Points:     -redemption.Points,
				BookingID:  &bookingID,
				ActorID:    p.Actor.ID,
				Reason:     fmt.Sprintf("redeemed %d points at booking creation", redemption.Points),
			})
			if err != nil {
				return err
			}
			if err := b.RecordRedemption(redemption.Points, redemption.DiscountCents, entry.ID(), c.clock.Now()); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.Bookings().Update(ctx, b); err != nil {
				return err
			}
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reader.GetByID(ctx, created.ID())
}

func (c *bookingCommandsImpl) buildDraft(p CreateBookingParams) (booking.Draft, error) {
	stay, err := booking.NewStayPeriod(p.CheckIn, p.CheckOut, c.clock.Now())
	if err != nil {
		return booking.Draft{}, err
	}
	rooms := make([]booking.RoomLine, 0, len(p.Rooms))
	for _, r := range p.Rooms {
		line, err := booking.NewRoomLine(r.RoomType, r.Quantity, r.NightlyRateCents)
		if err != nil {
			return booking.Draft{}, err
		}
		rooms = append(rooms, line)
	}
	return booking.Draft{
		CustomerID: p.CustomerID,
		HotelID:    p.HotelID,
		Stay:       stay,
		Rooms:      rooms,
	}, nil
}

// validateRedemption asks the eligibility collaborator before any points are
// committed. Eligibility is a required input here: if the collaborator is
// down, creation with redemption fails rather than guessing.
func (c *bookingCommandsImpl) validateRedemption(ctx context.Context, p CreateBookingParams, quote *QuoteSnapshot) (*booking.Redemption, error) {
	if p.RedeemPoints <= 0 {
		return nil, nil
	}

	discount := booking.RedemptionDiscountCents(p.RedeemPoints, c.loyaltyCfg.PointsPerDollar)
	if discount > quote.FinalPriceCents {
		return nil, errs.Mark(booking.ErrDiscountExceedsPrice, errs.ErrRedemptionNotEligible)
	}

	result, err := c.eligibility.CheckRedemptionEligible(ctx, p.CustomerID, discount)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "eligibility check failed"), errs.ErrCollaboratorUnavailable)
	}
	if !result.Eligible {
		return nil, errs.Mark(errs.New("eligibility rejected: "+result.Reason), errs.ErrRedemptionNotEligible)
	}

	return &booking.Redemption{Points: p.RedeemPoints, DiscountCents: discount}, nil
}

func (c *bookingCommandsImpl) Transition(ctx context.Context, p TransitionParams) (*queries.BookingView, error) {
	if !p.Target.IsValid() {
		return nil, errs.Mark(errs.New("unknown target status "+string(p.Target)), errs.ErrInvalidTransition)
	}

	// The inventory read is an external precondition of CONFIRMED; a lost hold
	// fails the transition, an unreachable collaborator degrades to a warning
	// because the hold was validated when the booking was created.
	if p.Target == booking.StatusConfirmed {
		valid, err := c.inventory.HoldStillValid(ctx, p.BookingID)
		if err != nil {
			slog.Warn("inventory collaborator unreachable, proceeding on creation-time hold",
				"booking_id", p.BookingID, "error", err)
		} else if !valid {
			return nil, errs.Mark(errs.New("hold expired before confirmation"), errs.ErrInventoryHoldLost)
		}
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().GetForUpdate(ctx, p.BookingID)
		if err != nil {
			return err
		}
		if p.Actor.Role == user.RoleGuest && b.CustomerID() != p.Actor.ID {
			return errs.Mark(errs.New("booking belongs to another customer"), errs.ErrPermissionDenied)
		}

		// Replay of an already-applied transition is a no-op, not an error.
		if b.Status() == p.Target {
			return nil
		}

		change, err := b.TransitionTo(p.Target, p.Actor, p.Reason, p.Options, c.clock.Now())
		if err != nil {
			return mapTransitionError(err)
		}

		if err := c.applyTransitionEffects(ctx, tx, b, p); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if err := tx.Bookings().AppendStatusHistory(ctx, b.ID(), change); err != nil {
			return err
		}
		return c.enqueueStatusChanged(ctx, tx, b, change)
	})
	if err != nil {
		return nil, err
	}

	return c.reader.GetByID(ctx, p.BookingID)
}

func (c *bookingCommandsImpl) applyTransitionEffects(ctx context.Context, tx shared.Tx, b *booking.Booking, p TransitionParams) error {
	switch p.Target {
	case booking.StatusConfirmed:
		return c.applyConfirmEarn(ctx, tx, b, p.Actor)
	case booking.StatusRejected:
		return c.applyRefund(ctx, tx, b, p.Actor, loyalty.KindRefundRejection, "booking rejected, redemption refunded")
	case booking.StatusCancelled:
		if err := c.applyRefund(ctx, tx, b, p.Actor, loyalty.KindRefundCancellation, "booking cancelled, redemption refunded"); err != nil {
			return err
		}
		return c.applyCancellationPenalty(ctx, tx, b, p.Actor)
	case booking.StatusCompleted:
		return c.applyCompletionBonus(ctx, tx, b, p.Actor)
	default:
		// CHECKED_IN and NO_SHOW move status only.
		return nil
	}
}

func (c *bookingCommandsImpl) applyConfirmEarn(ctx context.Context, tx shared.Tx, b *booking.Booking, actor booking.Actor) error {
	if b.Effect().HasConfirmEarn() {
		return nil
	}

	account, err := tx.Accounts().GetForUpdate(ctx, b.CustomerID())
	if err != nil {
		return err
	}
	points := booking.ConfirmEarnPoints(b.FinalPrice(), c.policy.MultiplierFor(account.Tier()))
	if points == 0 {
		return nil
	}

	bookingID := b.ID()
	entry, _, err := c.ledger.Append(ctx, tx, AppendParams{
		CustomerID: b.CustomerID(),
		Kind:       loyalty.KindEarnConfirm,
		Points:     points,
		BookingID:  &bookingID,
		ActorID:    actor.ID,
		Reason:     fmt.Sprintf("confirmation earn at %s tier", account.Tier()),
	})
	if err != nil {
		return err
	}
	return b.RecordConfirmEarn(points, entry.ID(), c.clock.Now())
}

// applyRefund returns redeemed points on rejection or cancellation. The
// refund tx-id makes it single-shot: a second terminal attempt finds it set
// and refunds nothing.
func (c *bookingCommandsImpl) applyRefund(ctx context.Context, tx shared.Tx, b *booking.Booking, actor booking.Actor, kind loyalty.Kind, reason string) error {
	if !b.Effect().HasRedemption() || b.Effect().HasRefund() {
		return nil
	}

	bookingID := b.ID()
	entry, _, err := c.ledger.Append(ctx, tx, AppendParams{
		CustomerID: b.CustomerID(),
		Kind:       kind,
		Points:     b.Effect().PointsUsed(),
		BookingID:  &bookingID,
		ActorID:    actor.ID,
		Reason:     reason,
	})
	if err != nil {
		return err
	}
	return b.RecordRefund(b.Effect().PointsUsed(), entry.ID(), c.clock.Now())
}

// applyCancellationPenalty claws back confirmation-earned points by notice
// window. A balance lower than the penalty is clamped to zero, never driven
// negative; the uncollected remainder is recorded on the booking.
func (c *bookingCommandsImpl) applyCancellationPenalty(ctx context.Context, tx shared.Tx, b *booking.Booking, actor booking.Actor) error {
	if !b.Effect().HasConfirmEarn() {
		return nil
	}

	percent := booking.CancellationPenaltyPercent(
		c.clock.Now(),
		b.Stay().CheckIn(),
		time.Duration(c.loyaltyCfg.FreeCancellationHours)*time.Hour,
		time.Duration(c.loyaltyCfg.LateCancellationHours)*time.Hour,
	)
	penalty := b.Effect().PointsEarned() * int64(percent) / 100
	if penalty == 0 {
		return nil
	}

	account, err := tx.Accounts().GetForUpdate(ctx, b.CustomerID())
	if err != nil {
		return err
	}
	applied := penalty
	if account.CurrentPoints() < applied {
		applied = account.CurrentPoints()
	}
	shortfall := penalty - applied

	if applied > 0 {
		bookingID := b.ID()
		_, _, err := c.ledger.Append(ctx, tx, AppendParams{
			CustomerID: b.CustomerID(),
			Kind:       loyalty.KindPenaltyCancellation,
			Points:     -applied,
			BookingID:  &bookingID,
			ActorID:    actor.ID,
			Reason:     fmt.Sprintf("cancellation penalty %d%% of confirmation earn", percent),
		})
		if err != nil {
			return err
		}
	}
	if shortfall > 0 {
		b.RecordPenaltyShortfall(shortfall, c.clock.Now())
	}
	return nil
}

func (c *bookingCommandsImpl) applyCompletionBonus(ctx context.Context, tx shared.Tx, b *booking.Booking, actor booking.Actor) error {
	if b.Effect().HasCompletionBonus() {
		return nil
	}

	points := booking.CompletionBonusPoints(b.Stay().Nights(), b.FinalPrice(), c.loyaltyCfg.CompletionBonusCap)
	if points == 0 {
		return nil
	}

	bookingID := b.ID()
	entry, _, err := c.ledger.Append(ctx, tx, AppendParams{
		CustomerID: b.CustomerID(),
		Kind:       loyalty.KindEarnCompletion,
		Points:     points,
		BookingID:  &bookingID,
		ActorID:    actor.ID,
		Reason:     fmt.Sprintf("completion bonus for %d nights", b.Stay().Nights()),
	})
	if err != nil {
		return err
	}
	return b.RecordCompletionBonus(points, entry.ID(), c.clock.Now())
}

func (c *bookingCommandsImpl) enqueueStatusChanged(ctx context.Context, tx shared.Tx, b *booking.Booking, change booking.StatusChange) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":  b.ID().String(),
		"customer_id": b.CustomerID().String(),
		"previous":    string(change.Previous),
		"next":        string(change.Next),
		"actor_id":    change.ActorID.String(),
		"changed_at":  change.At,
	})
	if err != nil {
		return errs.Wrap(err, "marshal status changed payload")
	}
	return tx.Outbox().CreateJob(ctx, "notification", bookingStatusTopic, payload, change.At)
}

func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, booking.ErrActorNotPermitted):
		return errs.Mark(err, errs.ErrPermissionDenied)
	case errors.Is(err, booking.ErrCheckInTooEarly):
		return errs.Mark(err, errs.ErrInvalidTransition)
	default:
		return err
	}
}
