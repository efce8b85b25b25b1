package booking

import "hotel-loyalty-core/internal/domain/user"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCheckedIn Status = "CHECKED_IN"
	StatusCompleted Status = "COMPLETED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCompleted,
		StatusRejected, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// transitions is the lifecycle table. The main line runs
// PENDING → CONFIRMED → CHECKED_IN → COMPLETED; side branches terminate.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCompleted},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// transitionRoles restricts who may drive each target status. Guests may only
// cancel (and only their own booking, enforced at the usecase layer).
var transitionRoles = map[Status][]user.Role{
	StatusConfirmed: {user.RoleAdmin},
	StatusRejected:  {user.RoleAdmin},
	StatusCancelled: {user.RoleGuest, user.RoleReceptionist, user.RoleAdmin},
	StatusCheckedIn: {user.RoleReceptionist, user.RoleAdmin},
	StatusCompleted: {user.RoleReceptionist, user.RoleAdmin},
	StatusNoShow:    {user.RoleReceptionist, user.RoleAdmin},
}

func RoleMayTransitionTo(role user.Role, target Status) bool {
	for _, r := range transitionRoles[target] {
		if r == role {
			return true
		}
	}
	return false
}
