//go:build unit

package booking_test

import (
	"testing"

	"hotel-loyalty-core/internal/domain/booking"
	"hotel-loyalty-core/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:   {booking.StatusConfirmed, booking.StatusRejected, booking.StatusCancelled},
		booking.StatusConfirmed: {booking.StatusCheckedIn, booking.StatusCancelled, booking.StatusNoShow},
		booking.StatusCheckedIn: {booking.StatusCompleted},
	}

	all := []booking.Status{
		booking.StatusPending, booking.StatusConfirmed, booking.StatusCheckedIn,
		booking.StatusCompleted, booking.StatusRejected, booking.StatusCancelled,
		booking.StatusNoShow,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.False(t, booking.StatusCheckedIn.IsTerminal())
	assert.True(t, booking.StatusCompleted.IsTerminal())
	assert.True(t, booking.StatusRejected.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.True(t, booking.StatusNoShow.IsTerminal())
}

func TestIsValid(t *testing.T) {
	assert.True(t, booking.StatusPending.IsValid())
	assert.True(t, booking.StatusNoShow.IsValid())
	assert.False(t, booking.Status("ARCHIVED").IsValid())
	assert.False(t, booking.Status("").IsValid())
}

func TestRoleMayTransitionTo(t *testing.T) {
	cases := []struct {
		name   string
		role   user.Role
		target booking.Status
		want   bool
	}{
		{name: "admin confirms", role: user.RoleAdmin, target: booking.StatusConfirmed, want: true},
		{name: "receptionist cannot confirm", role: user.RoleReceptionist, target: booking.StatusConfirmed, want: false},
		{name: "guest cannot confirm", role: user.RoleGuest, target: booking.StatusConfirmed, want: false},
		{name: "admin rejects", role: user.RoleAdmin, target: booking.StatusRejected, want: true},
		{name: "guest cannot reject", role: user.RoleGuest, target: booking.StatusRejected, want: false},
		{name: "guest cancels", role: user.RoleGuest, target: booking.StatusCancelled, want: true},
		{name: "receptionist cancels", role: user.RoleReceptionist, target: booking.StatusCancelled, want: true},
		{name: "receptionist checks in", role: user.RoleReceptionist, target: booking.StatusCheckedIn, want: true},
		{name: "guest cannot check in", role: user.RoleGuest, target: booking.StatusCheckedIn, want: false},
		{name: "receptionist completes", role: user.RoleReceptionist, target: booking.StatusCompleted, want: true},
		{name: "guest cannot complete", role: user.RoleGuest, target: booking.StatusCompleted, want: false},
		{name: "receptionist marks no-show", role: user.RoleReceptionist, target: booking.StatusNoShow, want: true},
		{name: "guest cannot mark no-show", role: user.RoleGuest, target: booking.StatusNoShow, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.RoleMayTransitionTo(c.role, c.target))
		})
	}
}
