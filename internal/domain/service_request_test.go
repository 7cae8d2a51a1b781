package domain

import (
	"testing"

	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/testutil"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newServiceRequestDomain() *serviceRequestDomain {
	return NewServiceRequestDomain(
		repository.NewServiceRequestRepository(),
		repository.NewUserRepository(),
	)
}

func Test_serviceRequestDomain_Create_and_Resolve(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newServiceRequestDomain()

	templeCtx := xcontext.WithRequestUserID(ctx, testutil.Temple1.ID)
	created, err := d.Create(templeCtx, &model.CreateServiceRequestRequest{
		Type:        "SERVICE",
		Title:       "Broken collection bin",
		Description: "The bin at the east gate lost its lid",
	})
	require.NoError(t, err)

	// Only admins resolve.
	_, err = d.Resolve(templeCtx, &model.ResolveServiceRequestRequest{ID: created.ID})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)

	adminCtx := xcontext.WithRequestUserID(ctx, testutil.Admin.ID)
	_, err = d.Resolve(adminCtx, &model.ResolveServiceRequestRequest{ID: created.ID})
	require.NoError(t, err)

	_, err = d.Resolve(adminCtx, &model.ResolveServiceRequestRequest{ID: created.ID})
	require.Error(t, err)
	require.Equal(t, errorx.InvalidTransition, err.(errorx.Error).Code)

	_, err = d.Resolve(adminCtx, &model.ResolveServiceRequestRequest{ID: "no-such-id"})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
}

func Test_serviceRequestDomain_Create_validation(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newServiceRequestDomain()

	templeCtx := xcontext.WithRequestUserID(ctx, testutil.Temple1.ID)
	_, err := d.Create(templeCtx, &model.CreateServiceRequestRequest{Type: "SERVICE"})
	require.Error(t, err)
	require.Equal(t, errorx.MissingRequiredField, err.(errorx.Error).Code)

	_, err = d.Create(templeCtx, &model.CreateServiceRequestRequest{
		Type:  "NOT_A_TYPE",
		Title: "Something",
	})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = d.Create(userCtx, &model.CreateServiceRequestRequest{
		Type:  "SERVICE",
		Title: "Something",
	})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)
}

func Test_serviceRequestDomain_GetList_scopes_by_role(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newServiceRequestDomain()

	templeCtx := xcontext.WithRequestUserID(ctx, testutil.Temple1.ID)
	_, err := d.Create(templeCtx, &model.CreateServiceRequestRequest{
		Type:  "SERVICE",
		Title: "Broken collection bin",
	})
	require.NoError(t, err)

	list, err := d.GetList(templeCtx, &model.GetListServiceRequestRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list.ServiceRequests, 1)
	require.Equal(t, testutil.Temple1.ID, list.ServiceRequests[0].TempleID)

	adminCtx := xcontext.WithRequestUserID(ctx, testutil.Admin.ID)
	list, err = d.GetList(adminCtx, &model.GetListServiceRequestRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list.ServiceRequests, 1)

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = d.GetList(userCtx, &model.GetListServiceRequestRequest{Limit: 10})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)
}
