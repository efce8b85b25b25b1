//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-loyalty-core/internal/pkg/clock"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/pkg/jwt"
	"hotel-loyalty-core/internal/usecase/commands"
	"hotel-loyalty-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserReadStore serves FindByEmail from the users written by the fake
// user repository, so Register followed by Login exercises the real flow.
type fakeUserReadStore struct {
	store *fakeStore
}

func (r *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	rec, ok := r.store.users[id]
	if !ok {
		return nil, errs.New("no user")
	}
	return userRecordToView(rec), nil
}

func (r *fakeUserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	for _, rec := range r.store.users {
		if rec.user.Email().String() == email {
			return userRecordToView(rec), rec.hashedPassword, nil
		}
	}
	return nil, "", errs.New("no user")
}

func userRecordToView(rec *fakeUserRecord) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       rec.user.ID(),
		Email:    rec.user.Email().String(),
		Role:     rec.user.Role().String(),
		IsActive: rec.user.IsActive(),
	}
}

func newAuthEnv() (*fakeStore, commands.AuthCommands, *jwt.Service) {
	store := newFakeStore()
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	jwtService := jwt.NewService("test-secret", time.Hour)
	cmds := commands.NewAuthCommands(&fakeUoW{store: store}, &fakeUserReadStore{store: store}, jwtService, clk)
	return store, cmds, jwtService
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates guest and loyalty account together", func(t *testing.T) {
		store, cmds, _ := newAuthEnv()

		view, err := cmds.Register(ctx, commands.RegisterParams{
			Email:    "Guest@Example.com",
			Password: "s3cure-pass",
		})
		require.NoError(t, err)

		assert.Equal(t, "guest@example.com", view.Email)
		assert.Equal(t, "guest", view.Role)
		assert.True(t, view.IsActive)

		require.Contains(t, store.users, view.ID)
		account, ok := store.accounts[view.ID]
		require.True(t, ok)
		assert.Equal(t, int64(0), account.CurrentPoints())
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, cmds, _ := newAuthEnv()
		p := commands.RegisterParams{Email: "guest@example.com", Password: "s3cure-pass"}

		_, err := cmds.Register(ctx, p)
		require.NoError(t, err)

		_, err = cmds.Register(ctx, p)
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, cmds, _ := newAuthEnv()
		_, err := cmds.Register(ctx, commands.RegisterParams{Email: "not-an-email", Password: "s3cure-pass"})
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("empty password", func(t *testing.T) {
		_, cmds, _ := newAuthEnv()
		_, err := cmds.Register(ctx, commands.RegisterParams{Email: "guest@example.com", Password: ""})
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		store, cmds, jwtService := newAuthEnv()
		registered, err := cmds.Register(ctx, commands.RegisterParams{
			Email:    "guest@example.com",
			Password: "s3cure-pass",
		})
		require.NoError(t, err)

		result, err := cmds.Login(ctx, "guest@example.com", "s3cure-pass")
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.Equal(t, "guest", claims.Role)
		assert.NotNil(t, store.users[registered.ID].lastLoginAt)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, cmds, _ := newAuthEnv()
		_, err := cmds.Login(ctx, "nobody@example.com", "whatever")
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, cmds, _ := newAuthEnv()
		_, err := cmds.Register(ctx, commands.RegisterParams{
			Email:    "guest@example.com",
			Password: "s3cure-pass",
		})
		require.NoError(t, err)

		_, err = cmds.Login(ctx, "guest@example.com", "wrong-pass")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
