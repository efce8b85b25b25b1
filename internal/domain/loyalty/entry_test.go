//go:build unit

package loyalty_test

import (
	"testing"

	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entryCase struct {
	name   string
	mutate func(*builder.EntryBuilder)
	errIs  error
}

func runEntryCases(t *testing.T, cases []entryCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewEntryBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestNewEntry(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewEntryBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, loyalty.KindEarnConfirm, actual.Kind())
		assert.Equal(t, int64(100), actual.Points())
		assert.Equal(t, int64(0), actual.PreviousBalance())
		assert.Equal(t, int64(100), actual.NewBalance())
		assert.Equal(t, loyalty.EntryStatusCompleted, actual.Status())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("balance chain", func(t *testing.T) {
		actual, err := builder.NewEntryBuilder().
			WithKind(loyalty.KindRedeem).
			WithPoints(-300).
			WithPreviousBalance(1000).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(1000), actual.PreviousBalance())
		assert.Equal(t, int64(700), actual.NewBalance())
	})

	t.Run("kind validation", func(t *testing.T) {
		runEntryCases(t, []entryCase{
			{
				name:   "unknown kind",
				mutate: func(b *builder.EntryBuilder) { b.Kind = "POINTS_MAGIC" },
				errIs:  loyalty.ErrInvalidKind,
			},
			{
				name:   "empty kind",
				mutate: func(b *builder.EntryBuilder) { b.Kind = "" },
				errIs:  loyalty.ErrInvalidKind,
			},
			{
				name: "admin adjustment accepting either sign",
				mutate: func(b *builder.EntryBuilder) {
					b.WithKind(loyalty.KindAdjustmentAdmin).WithPoints(-50).WithPreviousBalance(200)
				},
			},
		})
	})

	t.Run("amount sign rules", func(t *testing.T) {
		runEntryCases(t, []entryCase{
			{
				name:   "zero amount",
				mutate: func(b *builder.EntryBuilder) { b.WithPoints(0) },
				errIs:  loyalty.ErrZeroAmount,
			},
			{
				name:   "negative earn",
				mutate: func(b *builder.EntryBuilder) { b.WithKind(loyalty.KindEarnConfirm).WithPoints(-100) },
				errIs:  loyalty.ErrAmountSignMismatch,
			},
			{
				name:   "negative completion bonus",
				mutate: func(b *builder.EntryBuilder) { b.WithKind(loyalty.KindEarnCompletion).WithPoints(-10) },
				errIs:  loyalty.ErrAmountSignMismatch,
			},
			{
				name: "positive redeem",
				mutate: func(b *builder.EntryBuilder) {
					b.WithKind(loyalty.KindRedeem).WithPoints(100).WithPreviousBalance(500)
				},
				errIs: loyalty.ErrAmountSignMismatch,
			},
			{
				name: "positive penalty",
				mutate: func(b *builder.EntryBuilder) {
					b.WithKind(loyalty.KindPenaltyCancellation).WithPoints(50).WithPreviousBalance(500)
				},
				errIs: loyalty.ErrAmountSignMismatch,
			},
			{
				name: "negative refund",
				mutate: func(b *builder.EntryBuilder) {
					b.WithKind(loyalty.KindRefundCancellation).WithPoints(-70).WithPreviousBalance(500)
				},
				errIs: loyalty.ErrAmountSignMismatch,
			},
			{
				name: "valid redeem debit",
				mutate: func(b *builder.EntryBuilder) {
					b.WithKind(loyalty.KindRedeem).WithPoints(-100).WithPreviousBalance(500)
				},
			},
			{
				name: "valid rejection refund credit",
				mutate: func(b *builder.EntryBuilder) {
					b.WithKind(loyalty.KindRefundRejection).WithPoints(250)
				},
			},
		})
	})

	t.Run("insufficient balance", func(t *testing.T) {
		runEntryCases(t, []entryCase{
			{
				name: "debit below zero",
				mutate: func(b *builder.EntryBuilder) {
					b.WithKind(loyalty.KindRedeem).WithPoints(-501).WithPreviousBalance(500)
				},
				errIs: loyalty.ErrInsufficientBalance,
			},
			{
				name: "debit to exactly zero",
				mutate: func(b *builder.EntryBuilder) {
					b.WithKind(loyalty.KindRedeem).WithPoints(-500).WithPreviousBalance(500)
				},
			},
			{
				name: "admin adjustment below zero",
				mutate: func(b *builder.EntryBuilder) {
					b.WithKind(loyalty.KindAdjustmentAdmin).WithPoints(-201).WithPreviousBalance(200)
				},
				errIs: loyalty.ErrInsufficientBalance,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		first, err1 := builder.NewEntryBuilder().BuildDomain()
		second, err2 := builder.NewEntryBuilder().BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ID(), second.ID())
	})
}
