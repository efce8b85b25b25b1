package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrEmptyEmail   = errors.New("email cannot be empty")
)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return Email{}, ErrEmptyEmail
	}
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

type User struct {
	id        uuid.UUID
	email     Email
	role      Role
	isActive  bool
	createdAt time.Time
}

func NewUser(email Email, role Role, now time.Time) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:        uuid.New(),
		email:     email,
		role:      role,
		isActive:  true,
		createdAt: now,
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, role Role, isActive bool, createdAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		role:      role,
		isActive:  isActive,
		createdAt: createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
