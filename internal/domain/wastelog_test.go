package domain

import (
	"testing"

	"github.com/templetoayurveda/backend/internal/domain/reward"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/testutil"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newWasteLogDomain() *wasteLogDomain {
	userRepo := repository.NewUserRepository()
	return NewWasteLogDomain(
		repository.NewWasteLogRepository(),
		userRepo,
		reward.NewLedger(userRepo),
		&testutil.MockRedisClient{},
	)
}

func Test_wasteLogDomain_Create_credits_coins(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newWasteLogDomain()

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	resp, err := d.Create(unitCtx, &model.CreateWasteLogRequest{
		AmountKg:  7.5,
		WasteType: "FLOWERS",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.Len(t, resp.TraceToken, 2*traceTokenBytes)
	require.Equal(t, uint64(75), resp.CoinsAwarded)

	userRepo := repository.NewUserRepository()
	unit, err := userRepo.GetByID(ctx, testutil.DryingUnit1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(75), unit.GreenCoins)
	require.Equal(t, 7.5, unit.WasteDonatedKg)
}

func Test_wasteLogDomain_Create_rejects_bad_input(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newWasteLogDomain()

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	_, err := d.Create(unitCtx, &model.CreateWasteLogRequest{AmountKg: -1, WasteType: "FLOWERS"})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)

	_, err = d.Create(unitCtx, &model.CreateWasteLogRequest{AmountKg: 3})
	require.Error(t, err)
	require.Equal(t, errorx.MissingRequiredField, err.(errorx.Error).Code)

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = d.Create(userCtx, &model.CreateWasteLogRequest{AmountKg: 3, WasteType: "FLOWERS"})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)
}

func Test_wasteLogDomain_Advance_walks_every_stage(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newWasteLogDomain()

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	created, err := d.Create(unitCtx, &model.CreateWasteLogRequest{
		AmountKg:  2,
		WasteType: "GARLANDS",
	})
	require.NoError(t, err)

	for _, want := range []string{"SEGREGATED", "PROCESSED", "PRODUCT"} {
		advanced, err := d.Advance(unitCtx, &model.AdvanceWasteLogRequest{ID: created.ID})
		require.NoError(t, err)
		require.Equal(t, want, advanced.Status)
	}

	// PRODUCT is the end of the journey.
	_, err = d.Advance(unitCtx, &model.AdvanceWasteLogRequest{ID: created.ID})
	require.Error(t, err)
	require.Equal(t, errorx.InvalidTransition, err.(errorx.Error).Code)
}

func Test_wasteLogDomain_GetTrace(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newWasteLogDomain()

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	created, err := d.Create(unitCtx, &model.CreateWasteLogRequest{
		AmountKg:  4,
		WasteType: "FLOWERS",
	})
	require.NoError(t, err)

	_, err = d.Advance(unitCtx, &model.AdvanceWasteLogRequest{ID: created.ID})
	require.NoError(t, err)

	// The trace is public, no user in the context.
	trace, err := d.GetTrace(ctx, &model.GetWasteTraceRequest{TraceToken: created.TraceToken})
	require.NoError(t, err)
	require.Equal(t, created.ID, trace.WasteLog.ID)
	require.Len(t, trace.Stages, 4)

	require.Equal(t, "COLLECTED", trace.Stages[0].Name)
	require.True(t, trace.Stages[0].Done)
	require.False(t, trace.Stages[0].Current)

	require.Equal(t, "SEGREGATED", trace.Stages[1].Name)
	require.True(t, trace.Stages[1].Done)
	require.True(t, trace.Stages[1].Current)

	require.False(t, trace.Stages[2].Done)
	require.False(t, trace.Stages[3].Done)

	_, err = d.GetTrace(ctx, &model.GetWasteTraceRequest{TraceToken: "no-such-token"})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)

	_, err = d.GetTrace(ctx, &model.GetWasteTraceRequest{})
	require.Error(t, err)
	require.Equal(t, errorx.MissingRequiredField, err.(errorx.Error).Code)
}
