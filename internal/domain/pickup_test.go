package domain

import (
	"testing"
	"time"

	"github.com/templetoayurveda/backend/internal/domain/reward"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/testutil"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newPickupDomain() *pickupDomain {
	userRepo := repository.NewUserRepository()
	return NewPickupDomain(
		repository.NewPickupRequestRepository(),
		userRepo,
		reward.NewLedger(userRepo),
		&testutil.MockRedisClient{},
	)
}

func Test_pickupDomain_full_workflow(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newPickupDomain()

	templeCtx := xcontext.WithRequestUserID(ctx, testutil.Temple1.ID)
	created, err := d.Create(templeCtx, &model.CreatePickupRequest{
		WasteType:         "flowers",
		EstimatedWeightKg: 12.5,
		ScheduledDate:     time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		TimeSlot:          "morning",
	})
	require.NoError(t, err)
	require.Equal(t, "PENDING", created.Status)

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	_, err = d.Accept(unitCtx, &model.AcceptPickupRequest{
		ID:         created.ID,
		DriverName: "Ravi",
	})
	require.NoError(t, err)

	_, err = d.Load(unitCtx, &model.LoadPickupRequest{ID: created.ID})
	require.NoError(t, err)

	_, err = d.Complete(unitCtx, &model.CompletePickupRequest{
		ID:            created.ID,
		ProofImageURL: "https://storage.example.com/proof.png",
	})
	require.NoError(t, err)

	got, err := d.Get(templeCtx, &model.GetPickupRequest{ID: created.ID})
	require.NoError(t, err)
	require.Equal(t, "COMPLETED", got.Status)
	require.Equal(t, "Ravi", got.DriverName)
	require.Equal(t, testutil.DryingUnit1.ID, got.DryingUnitID)

	// 12.5 kg is worth 125 coins and one star.
	userRepo := repository.NewUserRepository()
	temple, err := userRepo.GetByID(ctx, testutil.Temple1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(125), temple.GreenCoins)
	require.Equal(t, 12.5, temple.WasteDonatedKg)
	require.Equal(t, 1, temple.GreenStars)
}

func Test_pickupDomain_Accept_requires_driver(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newPickupDomain()

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	created, err := d.Create(userCtx, &model.CreatePickupRequest{
		WasteType:         "garlands",
		EstimatedWeightKg: 3,
		ScheduledDate:     time.Now().Format(time.RFC3339),
		TimeSlot:          "evening",
	})
	require.NoError(t, err)

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	_, err = d.Accept(unitCtx, &model.AcceptPickupRequest{ID: created.ID})
	require.Error(t, err)
	require.Equal(t, errorx.MissingRequiredField, err.(errorx.Error).Code)

	// The request stays pending after the failed accept.
	got, err := d.Get(userCtx, &model.GetPickupRequest{ID: created.ID})
	require.NoError(t, err)
	require.Equal(t, "PENDING", got.Status)
}

func Test_pickupDomain_cannot_skip_states(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newPickupDomain()

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	created, err := d.Create(userCtx, &model.CreatePickupRequest{
		WasteType:         "flowers",
		EstimatedWeightKg: 5,
		ScheduledDate:     time.Now().Format(time.RFC3339),
		TimeSlot:          "morning",
	})
	require.NoError(t, err)

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)

	// A pending request cannot be loaded or completed.
	_, err = d.Load(unitCtx, &model.LoadPickupRequest{ID: created.ID})
	require.Error(t, err)
	require.Equal(t, errorx.InvalidTransition, err.(errorx.Error).Code)

	_, err = d.Complete(unitCtx, &model.CompletePickupRequest{
		ID:            created.ID,
		ProofImageURL: "https://storage.example.com/proof.png",
	})
	require.Error(t, err)
	require.Equal(t, errorx.InvalidTransition, err.(errorx.Error).Code)

	// Once accepted, it cannot be rejected anymore.
	_, err = d.Accept(unitCtx, &model.AcceptPickupRequest{ID: created.ID, DriverName: "Ravi"})
	require.NoError(t, err)

	_, err = d.Reject(unitCtx, &model.RejectPickupRequest{ID: created.ID})
	require.Error(t, err)
	require.Equal(t, errorx.InvalidTransition, err.(errorx.Error).Code)
}

func Test_pickupDomain_Complete_rewards_exactly_once(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newPickupDomain()

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	created, err := d.Create(userCtx, &model.CreatePickupRequest{
		WasteType:         "flowers",
		EstimatedWeightKg: 8,
		ScheduledDate:     time.Now().Format(time.RFC3339),
		TimeSlot:          "morning",
	})
	require.NoError(t, err)

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	_, err = d.Accept(unitCtx, &model.AcceptPickupRequest{ID: created.ID, DriverName: "Ravi"})
	require.NoError(t, err)
	_, err = d.Load(unitCtx, &model.LoadPickupRequest{ID: created.ID})
	require.NoError(t, err)
	_, err = d.Complete(unitCtx, &model.CompletePickupRequest{
		ID:            created.ID,
		ProofImageURL: "https://storage.example.com/proof.png",
	})
	require.NoError(t, err)

	// A second complete must fail and must not credit again.
	_, err = d.Complete(unitCtx, &model.CompletePickupRequest{
		ID:            created.ID,
		ProofImageURL: "https://storage.example.com/proof.png",
	})
	require.Error(t, err)
	require.Equal(t, errorx.ConcurrentModification, err.(errorx.Error).Code)

	userRepo := repository.NewUserRepository()
	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(80), user.GreenCoins)
	require.Equal(t, float64(8), user.WasteDonatedKg)
}

func Test_pickupDomain_requester_cannot_accept(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newPickupDomain()

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	created, err := d.Create(userCtx, &model.CreatePickupRequest{
		WasteType:         "flowers",
		EstimatedWeightKg: 2,
		ScheduledDate:     time.Now().Format(time.RFC3339),
		TimeSlot:          "morning",
	})
	require.NoError(t, err)

	_, err = d.Accept(userCtx, &model.AcceptPickupRequest{ID: created.ID, DriverName: "Ravi"})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)
}

func Test_pickupDomain_only_assigned_unit_can_load(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newPickupDomain()

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	created, err := d.Create(userCtx, &model.CreatePickupRequest{
		WasteType:         "flowers",
		EstimatedWeightKg: 2,
		ScheduledDate:     time.Now().Format(time.RFC3339),
		TimeSlot:          "morning",
	})
	require.NoError(t, err)

	unit1Ctx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	_, err = d.Accept(unit1Ctx, &model.AcceptPickupRequest{ID: created.ID, DriverName: "Ravi"})
	require.NoError(t, err)

	unit2Ctx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit2.ID)
	_, err = d.Load(unit2Ctx, &model.LoadPickupRequest{ID: created.ID})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)
}
