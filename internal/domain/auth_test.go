package domain

import (
	"testing"

	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newAuthDomain() *authDomain {
	return NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
	)
}

func Test_authDomain_Register_and_Login(t *testing.T) {
	ctx := testutil.MockContext()
	d := newAuthDomain()

	registered, err := d.Register(ctx, &model.RegisterRequest{
		Email:    "shiva@temple.example",
		Password: "super-secret",
		Name:     "Shiva Temple",
		Role:     "TEMPLE",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.ID)

	// The same email cannot register twice.
	_, err = d.Register(ctx, &model.RegisterRequest{
		Email:    "shiva@temple.example",
		Password: "another-secret",
	})
	require.Error(t, err)
	require.Equal(t, errorx.AlreadyExists, err.(errorx.Error).Code)

	login, err := d.Login(ctx, &model.LoginRequest{
		Email:    "shiva@temple.example",
		Password: "super-secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)
	require.NotEmpty(t, login.RefreshToken)
	require.Equal(t, registered.ID, login.User.ID)
	require.Equal(t, "TEMPLE", login.User.Role)

	_, err = d.Login(ctx, &model.LoginRequest{
		Email:    "shiva@temple.example",
		Password: "wrong",
	})
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)
}

func Test_authDomain_Register_validation(t *testing.T) {
	ctx := testutil.MockContext()
	d := newAuthDomain()

	_, err := d.Register(ctx, &model.RegisterRequest{Email: "nobody@example.com"})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)

	_, err = d.Register(ctx, &model.RegisterRequest{
		Email:    "boss@example.com",
		Password: "secret",
		Role:     "ADMIN",
	})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)

	// An unknown role falls back to a regular user account.
	registered, err := d.Register(ctx, &model.RegisterRequest{
		Email:    "someone@example.com",
		Password: "secret",
		Role:     "WIZARD",
	})
	require.NoError(t, err)

	login, err := d.Login(ctx, &model.LoginRequest{
		Email:    "someone@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, registered.ID, login.User.ID)
	require.Equal(t, "USER", login.User.Role)
}

func Test_authDomain_Refresh_rotation(t *testing.T) {
	ctx := testutil.MockContext()
	d := newAuthDomain()

	_, err := d.Register(ctx, &model.RegisterRequest{
		Email:    "volunteer@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	login, err := d.Login(ctx, &model.LoginRequest{
		Email:    "volunteer@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	refreshed, err := d.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)
	require.NotEmpty(t, refreshed.RefreshToken)

	// Replaying the first refresh token reveals a stolen family and revokes it.
	_, err = d.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.Error(t, err)
	require.Equal(t, errorx.StolenDetected, err.(errorx.Error).Code)
}
