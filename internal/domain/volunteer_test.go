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

func newVolunteerDomain() *volunteerDomain {
	userRepo := repository.NewUserRepository()
	return NewVolunteerDomain(
		repository.NewVolunteerRequestRepository(),
		repository.NewVolunteerDutyRepository(),
		userRepo,
		reward.NewLedger(userRepo),
		&testutil.MockRedisClient{},
	)
}

func Test_volunteerDomain_Apply_and_Review(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newVolunteerDomain()

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	applied, err := d.Apply(userCtx, &model.ApplyVolunteerRequest{
		DryingUnitID: testutil.DryingUnit1.ID,
	})
	require.NoError(t, err)

	// Applying twice to the same unit is rejected while the first request is
	// still pending.
	_, err = d.Apply(userCtx, &model.ApplyVolunteerRequest{
		DryingUnitID: testutil.DryingUnit1.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.AlreadyExists, err.(errorx.Error).Code)

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	_, err = d.ReviewRequest(unitCtx, &model.ReviewVolunteerRequest{
		ID:     applied.ID,
		Action: "approve",
	})
	require.NoError(t, err)

	// The decision is final.
	_, err = d.ReviewRequest(unitCtx, &model.ReviewVolunteerRequest{
		ID:     applied.ID,
		Action: "approve",
	})
	require.Error(t, err)
	require.Equal(t, errorx.InvalidTransition, err.(errorx.Error).Code)
}

func Test_volunteerDomain_Reject_requires_reason(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newVolunteerDomain()

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	applied, err := d.Apply(userCtx, &model.ApplyVolunteerRequest{
		DryingUnitID: testutil.DryingUnit1.ID,
	})
	require.NoError(t, err)

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	_, err = d.ReviewRequest(unitCtx, &model.ReviewVolunteerRequest{
		ID:     applied.ID,
		Action: "reject",
	})
	require.Error(t, err)
	require.Equal(t, errorx.MissingRequiredField, err.(errorx.Error).Code)

	_, err = d.ReviewRequest(unitCtx, &model.ReviewVolunteerRequest{
		ID:              applied.ID,
		Action:          "reject",
		RejectionReason: "No capacity this season",
	})
	require.NoError(t, err)

	requests, err := d.GetRequests(unitCtx, &model.GetVolunteerRequestsRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, requests.Requests, 1)
	require.Equal(t, "REJECTED_BY_DU", requests.Requests[0].AssignmentStatus)
	require.Equal(t, "No capacity this season", requests.Requests[0].RejectionReason)
}

func Test_volunteerDomain_duty_rewards_exactly_once(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newVolunteerDomain()

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	applied, err := d.Apply(userCtx, &model.ApplyVolunteerRequest{
		DryingUnitID: testutil.DryingUnit1.ID,
	})
	require.NoError(t, err)

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	_, err = d.ReviewRequest(unitCtx, &model.ReviewVolunteerRequest{
		ID:     applied.ID,
		Action: "approve",
	})
	require.NoError(t, err)

	duty, err := d.AssignDuty(unitCtx, &model.AssignDutyRequest{
		VolunteerID: testutil.User1.ID,
		Title:       "Sort the morning batch",
	})
	require.NoError(t, err)

	// Approving before the volunteer asks for completion is not allowed.
	_, err = d.ReviewDuty(unitCtx, &model.ReviewDutyRequest{ID: duty.ID, Action: "approve"})
	require.Error(t, err)
	require.Equal(t, errorx.InvalidTransition, err.(errorx.Error).Code)

	_, err = d.RequestDutyCompletion(userCtx, &model.RequestDutyCompletionRequest{ID: duty.ID})
	require.NoError(t, err)

	_, err = d.ReviewDuty(unitCtx, &model.ReviewDutyRequest{ID: duty.ID, Action: "approve"})
	require.NoError(t, err)

	// A second approval fails and the balance stays at ten coins.
	_, err = d.ReviewDuty(unitCtx, &model.ReviewDutyRequest{ID: duty.ID, Action: "approve"})
	require.Error(t, err)

	userRepo := repository.NewUserRepository()
	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(10), user.GreenCoins)
}

func Test_volunteerDomain_rejected_duty_gives_no_coins(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newVolunteerDomain()

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	applied, err := d.Apply(userCtx, &model.ApplyVolunteerRequest{
		DryingUnitID: testutil.DryingUnit1.ID,
	})
	require.NoError(t, err)

	unitCtx := xcontext.WithRequestUserID(ctx, testutil.DryingUnit1.ID)
	_, err = d.ReviewRequest(unitCtx, &model.ReviewVolunteerRequest{
		ID:     applied.ID,
		Action: "approve",
	})
	require.NoError(t, err)

	duty, err := d.AssignDuty(unitCtx, &model.AssignDutyRequest{
		VolunteerID: testutil.User1.ID,
		Title:       "Evening collection round",
	})
	require.NoError(t, err)

	_, err = d.RequestDutyCompletion(userCtx, &model.RequestDutyCompletionRequest{ID: duty.ID})
	require.NoError(t, err)

	_, err = d.ReviewDuty(unitCtx, &model.ReviewDutyRequest{
		ID:      duty.ID,
		Action:  "reject",
		Comment: "The batch was left unsorted",
	})
	require.NoError(t, err)

	userRepo := repository.NewUserRepository()
	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), user.GreenCoins)

	duties, err := d.GetMyDuties(userCtx, &model.GetMyDutiesRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, duties.Duties, 1)
	require.Equal(t, "REJECTED", duties.Duties[0].Status)
	require.Equal(t, "The batch was left unsorted", duties.Duties[0].Comment)
}
