package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/templetoayurveda/backend/internal/common"
	"github.com/templetoayurveda/backend/internal/domain/reward"
	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/templetoayurveda/backend/pkg/xredis"
	"gorm.io/gorm"
)

const (
	reviewActionApprove = "approve"
	reviewActionReject  = "reject"
)

type VolunteerDomain interface {
	Apply(context.Context, *model.ApplyVolunteerRequest) (*model.ApplyVolunteerResponse, error)
	ReviewRequest(context.Context, *model.ReviewVolunteerRequest) (*model.ReviewVolunteerResponse, error)
	GetRequests(context.Context, *model.GetVolunteerRequestsRequest) (*model.GetVolunteerRequestsResponse, error)
	AssignDuty(context.Context, *model.AssignDutyRequest) (*model.AssignDutyResponse, error)
	RequestDutyCompletion(context.Context, *model.RequestDutyCompletionRequest) (*model.RequestDutyCompletionResponse, error)
	ReviewDuty(context.Context, *model.ReviewDutyRequest) (*model.ReviewDutyResponse, error)
	GetMyDuties(context.Context, *model.GetMyDutiesRequest) (*model.GetMyDutiesResponse, error)
	GetAssignedDuties(context.Context, *model.GetAssignedDutiesRequest) (*model.GetAssignedDutiesResponse, error)
}

type volunteerDomain struct {
	volunteerRequestRepo repository.VolunteerRequestRepository
	volunteerDutyRepo    repository.VolunteerDutyRepository
	userRepo             repository.UserRepository
	ledger               *reward.Ledger
	redisClient          xredis.Client
	globalRoleVerifier   *common.GlobalRoleVerifier
}

func NewVolunteerDomain(
	volunteerRequestRepo repository.VolunteerRequestRepository,
	volunteerDutyRepo repository.VolunteerDutyRepository,
	userRepo repository.UserRepository,
	ledger *reward.Ledger,
	redisClient xredis.Client,
) *volunteerDomain {
	return &volunteerDomain{
		volunteerRequestRepo: volunteerRequestRepo,
		volunteerDutyRepo:    volunteerDutyRepo,
		userRepo:             userRepo,
		ledger:               ledger,
		redisClient:          redisClient,
		globalRoleVerifier:   common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *volunteerDomain) Apply(
	ctx context.Context, req *model.ApplyVolunteerRequest,
) (*model.ApplyVolunteerResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.RoleUser); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when applying volunteer: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.DryingUnitID == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a drying unit id")
	}

	dryingUnit, err := d.userRepo.GetByID(ctx, req.DryingUnitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found drying unit")
		}

		xcontext.Logger(ctx).Errorf("Cannot get drying unit: %v", err)
		return nil, errorx.Unknown
	}

	if dryingUnit.Role != entity.RoleDryingUnit {
		return nil, errorx.New(errorx.BadRequest, "The target is not a drying unit")
	}

	userID := xcontext.RequestUserID(ctx)
	_, err = d.volunteerRequestRepo.GetPending(ctx, userID, req.DryingUnitID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You have already applied to this drying unit")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get pending volunteer request: %v", err)
		return nil, errorx.Unknown
	}

	request := &entity.VolunteerRequest{
		Base:             entity.Base{ID: uuid.NewString()},
		UserID:           userID,
		DryingUnitID:     req.DryingUnitID,
		AssignmentStatus: entity.VolunteerRequestPending,
	}

	if err := d.volunteerRequestRepo.Create(ctx, request); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create volunteer request: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ApplyVolunteerResponse{ID: request.ID}, nil
}

func (d *volunteerDomain) ReviewRequest(
	ctx context.Context, req *model.ReviewVolunteerRequest,
) (*model.ReviewVolunteerResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when reviewing volunteer: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	request, err := d.volunteerRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found volunteer request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get volunteer request: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if request.DryingUnitID != userID {
		if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Only the applied drying unit can review")
		}
	}

	var to entity.VolunteerRequestStatus
	data := map[string]any{}
	switch req.Action {
	case reviewActionApprove:
		to = entity.VolunteerRequestAccepted
	case reviewActionReject:
		if req.RejectionReason == "" {
			return nil, errorx.New(errorx.MissingRequiredField, "Require a rejection reason")
		}

		to = entity.VolunteerRequestRejected
		data["rejection_reason"] = req.RejectionReason
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid action %s", req.Action)
	}

	err = d.volunteerRequestRepo.UpdateStatusFrom(ctx, req.ID, entity.VolunteerRequestPending, to, data)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.InvalidTransition,
				"Volunteer request has already been reviewed")
		}

		xcontext.Logger(ctx).Errorf("Cannot update volunteer request: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ReviewVolunteerResponse{}, nil
}

func (d *volunteerDomain) GetRequests(
	ctx context.Context, req *model.GetVolunteerRequestsRequest,
) (*model.GetVolunteerRequestsResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when listing volunteer requests: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	requests, err := d.volunteerRequestRepo.GetList(ctx, &repository.VolunteerRequestFilter{
		DryingUnitID: xcontext.RequestUserID(ctx),
		Status:       entity.VolunteerRequestStatus(req.Status),
		Offset:       req.Offset,
		Limit:        limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get volunteer requests: %v", err)
		return nil, errorx.Unknown
	}

	clientRequests := []model.VolunteerRequest{}
	for i := range requests {
		clientRequests = append(clientRequests, convertVolunteerRequest(&requests[i]))
	}

	return &model.GetVolunteerRequestsResponse{Requests: clientRequests}, nil
}

func (d *volunteerDomain) AssignDuty(
	ctx context.Context, req *model.AssignDutyRequest,
) (*model.AssignDutyResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when assigning duty: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a title")
	}

	userID := xcontext.RequestUserID(ctx)

	// A duty can only go to someone on the roster of the assigner.
	roster, err := d.volunteerRequestRepo.GetList(ctx, &repository.VolunteerRequestFilter{
		UserID:       req.VolunteerID,
		DryingUnitID: userID,
		Status:       entity.VolunteerRequestAccepted,
		Limit:        1,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get volunteer roster: %v", err)
		return nil, errorx.Unknown
	}

	if len(roster) == 0 {
		return nil, errorx.New(errorx.PermissionDenied, "This user is not on your volunteer roster")
	}

	duty := &entity.VolunteerDuty{
		Base:        entity.Base{ID: uuid.NewString()},
		VolunteerID: req.VolunteerID,
		AssignedBy:  userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.DutyPending,
	}

	if err := d.volunteerDutyRepo.Create(ctx, duty); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create volunteer duty: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AssignDutyResponse{ID: duty.ID}, nil
}

func (d *volunteerDomain) RequestDutyCompletion(
	ctx context.Context, req *model.RequestDutyCompletionRequest,
) (*model.RequestDutyCompletionResponse, error) {
	duty, err := d.volunteerDutyRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found volunteer duty")
		}

		xcontext.Logger(ctx).Errorf("Cannot get volunteer duty: %v", err)
		return nil, errorx.Unknown
	}

	if duty.VolunteerID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the assigned volunteer can do this")
	}

	err = d.volunteerDutyRepo.UpdateStatusFrom(
		ctx, req.ID, entity.DutyPending, entity.DutyCompletionRequested, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.InvalidTransition,
				"Cannot request completion of a duty in status %s", duty.Status)
		}

		xcontext.Logger(ctx).Errorf("Cannot update volunteer duty: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RequestDutyCompletionResponse{}, nil
}

func (d *volunteerDomain) ReviewDuty(
	ctx context.Context, req *model.ReviewDutyRequest,
) (*model.ReviewDutyResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when reviewing duty: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	duty, err := d.volunteerDutyRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found volunteer duty")
		}

		xcontext.Logger(ctx).Errorf("Cannot get volunteer duty: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if duty.AssignedBy != userID {
		if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Only the assigner can review this duty")
		}
	}

	var to entity.DutyStatus
	switch req.Action {
	case reviewActionApprove:
		to = entity.DutyCompleted
	case reviewActionReject:
		to = entity.DutyRejected
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid action %s", req.Action)
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.volunteerDutyRepo.ReviewByID(ctx, req.ID, to, map[string]any{
		"reviewer_id": userID,
		"reviewed_at": time.Now(),
		"comment":     req.Comment,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.InvalidTransition,
				"Cannot review a duty in status %s", duty.Status)
		}

		xcontext.Logger(ctx).Errorf("Cannot review volunteer duty: %v", err)
		return nil, errorx.Unknown
	}

	var coins uint64
	if to == entity.DutyCompleted {
		coins, err = d.ledger.CreditVolunteerDuty(ctx, duty.VolunteerID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot credit volunteer reward: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	if coins > 0 {
		d.ledger.UpdateLeaderboard(ctx, d.redisClient, duty.VolunteerID, coins, 0)
	}

	return &model.ReviewDutyResponse{}, nil
}

func (d *volunteerDomain) GetMyDuties(
	ctx context.Context, req *model.GetMyDutiesRequest,
) (*model.GetMyDutiesResponse, error) {
	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	duties, err := d.volunteerDutyRepo.GetList(ctx, &repository.VolunteerDutyFilter{
		VolunteerID: xcontext.RequestUserID(ctx),
		Offset:      req.Offset,
		Limit:       limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get volunteer duties: %v", err)
		return nil, errorx.Unknown
	}

	clientDuties := []model.VolunteerDuty{}
	for i := range duties {
		clientDuties = append(clientDuties, convertVolunteerDuty(&duties[i]))
	}

	return &model.GetMyDutiesResponse{Duties: clientDuties}, nil
}

func (d *volunteerDomain) GetAssignedDuties(
	ctx context.Context, req *model.GetAssignedDutiesRequest,
) (*model.GetAssignedDutiesResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when listing assigned duties: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	duties, err := d.volunteerDutyRepo.GetList(ctx, &repository.VolunteerDutyFilter{
		AssignedBy: xcontext.RequestUserID(ctx),
		Status:     entity.DutyStatus(req.Status),
		Offset:     req.Offset,
		Limit:      limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get volunteer duties: %v", err)
		return nil, errorx.Unknown
	}

	clientDuties := []model.VolunteerDuty{}
	for i := range duties {
		clientDuties = append(clientDuties, convertVolunteerDuty(&duties[i]))
	}

	return &model.GetAssignedDutiesResponse{Duties: clientDuties}, nil
}
