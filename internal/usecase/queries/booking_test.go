//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-loyalty-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	lastLimit int32
}

func (s *fakeBookingStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return &queries.BookingView{ID: id}, nil
}

func (s *fakeBookingStore) FindByCustomerID(_ context.Context, _ uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	s.lastLimit = limit
	return nil, nil
}

func TestListByCustomerLimit(t *testing.T) {
	store := &fakeBookingStore{}
	q := queries.NewBookingQueries(store)
	ctx := context.Background()

	cases := []struct {
		name  string
		limit int
		want  int32
	}{
		{name: "explicit limit passes through", limit: 10, want: 10},
		{name: "zero falls back to default", limit: 0, want: 50},
		{name: "negative falls back to default", limit: -5, want: 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := q.ListByCustomer(ctx, uuid.New(), c.limit)
			require.NoError(t, err)
			assert.Equal(t, c.want, store.lastLimit)
		})
	}
}
