package commands

import (
	"context"
	"errors"

	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/internal/domain/user"
	"hotel-loyalty-core/internal/pkg/clock"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/pkg/jwt"
	"hotel-loyalty-core/internal/pkg/password"
	"hotel-loyalty-core/internal/usecase/queries"
	"hotel-loyalty-core/internal/usecase/shared"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailTaken         = errors.New("email already registered")
	ErrTokenGeneration    = errors.New("token generation failed")
)

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type RegisterParams struct {
	Email    string
	Password string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	// Register creates a guest user and enrolls a loyalty account in the same
	// scope; a half-registered customer cannot exist.
	Register(ctx context.Context, p RegisterParams) (*queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	users      queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, users queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		users:      users,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, hashedPassword, err := a.users.FindByEmail(ctx, email)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(hashedPassword, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: view}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, p RegisterParams) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(p.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	hashed, err := password.HashPassword(p.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if existing, _, err := a.users.FindByEmail(ctx, email.String()); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	now := a.clock.Now()
	u, err := user.NewUser(email, user.RoleGuest, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	account := loyalty.NewAccount(u.ID(), now)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u, hashed); err != nil {
			return err
		}
		return tx.Accounts().Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	return &queries.AuthorizedUserView{
		ID:       u.ID(),
		Email:    u.Email().String(),
		Role:     string(u.Role()),
		IsActive: u.IsActive(),
	}, nil
}
