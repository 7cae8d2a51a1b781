package domain

import (
	"testing"

	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/testutil"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_userDomain_GetMe_recreates_missing_profile(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewUserDomain(repository.NewUserRepository())

	// A token whose profile row no longer exists gets a fresh default profile
	// instead of an error.
	ghostCtx := xcontext.WithRequestUserID(ctx, "ghost-user")
	me, err := d.GetMe(ghostCtx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, "ghost-user", me.User.ID)
	require.Equal(t, "USER", me.User.Role)
	require.Equal(t, uint64(0), me.User.GreenCoins)

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	me, err = d.GetMe(userCtx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Name, me.User.Name)
}

func Test_userDomain_GetUser_hides_contact_details(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewUserDomain(repository.NewUserRepository())

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	resp, err := d.GetUser(userCtx, &model.GetUserRequest{ID: testutil.User1.ID})
	require.NoError(t, err)
	require.Empty(t, resp.User.Email)
	require.Empty(t, resp.User.Address)

	resp, err = d.GetUser(userCtx, &model.GetUserRequest{ID: testutil.User2.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.Email, resp.User.Email)
}

func Test_userDomain_GetDryingUnits(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewUserDomain(repository.NewUserRepository())

	resp, err := d.GetDryingUnits(ctx, &model.GetDryingUnitsRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.DryingUnits, 2)
	require.Empty(t, resp.DryingUnits[0].Email)
}
