package domain

import (
	"context"
	"database/sql"
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

type PickupDomain interface {
	Create(context.Context, *model.CreatePickupRequest) (*model.CreatePickupResponse, error)
	Accept(context.Context, *model.AcceptPickupRequest) (*model.AcceptPickupResponse, error)
	Reject(context.Context, *model.RejectPickupRequest) (*model.RejectPickupResponse, error)
	Load(context.Context, *model.LoadPickupRequest) (*model.LoadPickupResponse, error)
	Complete(context.Context, *model.CompletePickupRequest) (*model.CompletePickupResponse, error)
	Get(context.Context, *model.GetPickupRequest) (*model.GetPickupResponse, error)
	GetList(context.Context, *model.GetListPickupRequest) (*model.GetListPickupResponse, error)
	GetMyPickups(context.Context, *model.GetMyPickupsRequest) (*model.GetMyPickupsResponse, error)
}

type pickupDomain struct {
	pickupRepo         repository.PickupRequestRepository
	userRepo           repository.UserRepository
	ledger             *reward.Ledger
	redisClient        xredis.Client
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewPickupDomain(
	pickupRepo repository.PickupRequestRepository,
	userRepo repository.UserRepository,
	ledger *reward.Ledger,
	redisClient xredis.Client,
) *pickupDomain {
	return &pickupDomain{
		pickupRepo:         pickupRepo,
		userRepo:           userRepo,
		ledger:             ledger,
		redisClient:        redisClient,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *pickupDomain) Create(
	ctx context.Context, req *model.CreatePickupRequest,
) (*model.CreatePickupResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.RequesterRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when creating pickup: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.WasteType == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a waste type")
	}

	if req.EstimatedWeightKg <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Require a positive estimated weight")
	}

	if req.TimeSlot == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a time slot")
	}

	scheduledDate, err := time.Parse(time.RFC3339, req.ScheduledDate)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid scheduled date: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid scheduled date")
	}

	requester, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get requester: %v", err)
		return nil, errorx.Unknown
	}

	requesterType := entity.RequesterUser
	if requester.Role == entity.RoleTemple {
		requesterType = entity.RequesterTemple
	}

	pickup := &entity.PickupRequest{
		Base:              entity.Base{ID: uuid.NewString()},
		RequesterType:     requesterType,
		RequesterID:       requester.ID,
		WasteType:         req.WasteType,
		EstimatedWeightKg: req.EstimatedWeightKg,
		ScheduledDate:     scheduledDate,
		TimeSlot:          req.TimeSlot,
		Address:           req.Address,
		Status:            entity.PickupPending,
	}

	if pickup.Address == "" {
		pickup.Address = requester.Address
	}

	if err := d.pickupRepo.Create(ctx, pickup); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create pickup request: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePickupResponse{
		ID:     pickup.ID,
		Status: string(pickup.Status),
	}, nil
}

func (d *pickupDomain) Accept(
	ctx context.Context, req *model.AcceptPickupRequest,
) (*model.AcceptPickupResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when accepting pickup: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.DriverName == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a driver name")
	}

	err := d.pickupRepo.UpdateStatusFrom(ctx, req.ID, entity.PickupPending, entity.PickupAccepted,
		map[string]any{
			"drying_unit_id": sql.NullString{Valid: true, String: xcontext.RequestUserID(ctx)},
			"driver_name":    req.DriverName,
		})
	if err != nil {
		return nil, d.classifyTransitionError(ctx, req.ID, entity.PickupPending, entity.PickupAccepted, err)
	}

	return &model.AcceptPickupResponse{}, nil
}

func (d *pickupDomain) Reject(
	ctx context.Context, req *model.RejectPickupRequest,
) (*model.RejectPickupResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when rejecting pickup: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	err := d.pickupRepo.UpdateStatusFrom(ctx, req.ID, entity.PickupPending, entity.PickupRejected,
		map[string]any{
			"drying_unit_id": sql.NullString{Valid: true, String: xcontext.RequestUserID(ctx)},
		})
	if err != nil {
		return nil, d.classifyTransitionError(ctx, req.ID, entity.PickupPending, entity.PickupRejected, err)
	}

	return &model.RejectPickupResponse{}, nil
}

func (d *pickupDomain) Load(
	ctx context.Context, req *model.LoadPickupRequest,
) (*model.LoadPickupResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when loading pickup: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	pickup, err := d.pickupRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found pickup request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get pickup request: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.verifyAssignedUnit(ctx, pickup); err != nil {
		return nil, err
	}

	err = d.pickupRepo.UpdateStatusFrom(ctx, req.ID, entity.PickupAccepted, entity.PickupLoaded, nil)
	if err != nil {
		return nil, d.classifyTransitionError(ctx, req.ID, entity.PickupAccepted, entity.PickupLoaded, err)
	}

	return &model.LoadPickupResponse{}, nil
}

func (d *pickupDomain) Complete(
	ctx context.Context, req *model.CompletePickupRequest,
) (*model.CompletePickupResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when completing pickup: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	pickup, err := d.pickupRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found pickup request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get pickup request: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.verifyAssignedUnit(ctx, pickup); err != nil {
		return nil, err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.pickupRepo.CompleteByID(ctx, req.ID, req.ProofImageURL); err != nil {
		return nil, d.classifyTransitionError(ctx, req.ID, entity.PickupLoaded, entity.PickupCompleted, err)
	}

	coins, err := d.ledger.CreditDonation(ctx, pickup.RequesterID, pickup.EstimatedWeightKg)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot credit donation reward: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	d.ledger.UpdateLeaderboard(ctx, d.redisClient, pickup.RequesterID, coins, pickup.EstimatedWeightKg)

	return &model.CompletePickupResponse{}, nil
}

func (d *pickupDomain) Get(
	ctx context.Context, req *model.GetPickupRequest,
) (*model.GetPickupResponse, error) {
	pickup, err := d.pickupRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found pickup request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get pickup request: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if pickup.RequesterID != userID && pickup.DryingUnitID.String != userID {
		if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}
	}

	resp := model.GetPickupResponse(convertPickupRequest(pickup))
	return &resp, nil
}

func (d *pickupDomain) GetList(
	ctx context.Context, req *model.GetListPickupRequest,
) (*model.GetListPickupResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when listing pickups: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := &repository.PickupRequestFilter{
		Status: entity.PickupStatus(req.Status),
		Offset: req.Offset,
		Limit:  limit,
	}

	pickups, err := d.pickupRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pickup list: %v", err)
		return nil, errorx.Unknown
	}

	clientPickups := []model.PickupRequest{}
	for i := range pickups {
		clientPickups = append(clientPickups, convertPickupRequest(&pickups[i]))
	}

	return &model.GetListPickupResponse{PickupRequests: clientPickups}, nil
}

func (d *pickupDomain) GetMyPickups(
	ctx context.Context, req *model.GetMyPickupsRequest,
) (*model.GetMyPickupsResponse, error) {
	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	pickups, err := d.pickupRepo.GetList(ctx, &repository.PickupRequestFilter{
		RequesterID: xcontext.RequestUserID(ctx),
		Offset:      req.Offset,
		Limit:       limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pickup list: %v", err)
		return nil, errorx.Unknown
	}

	clientPickups := []model.PickupRequest{}
	for i := range pickups {
		clientPickups = append(clientPickups, convertPickupRequest(&pickups[i]))
	}

	return &model.GetMyPickupsResponse{PickupRequests: clientPickups}, nil
}

// verifyAssignedUnit ensures the caller is the drying unit which accepted the
// pickup. Admins pass unconditionally.
func (d *pickupDomain) verifyAssignedUnit(ctx context.Context, pickup *entity.PickupRequest) error {
	// An unassigned pickup has no owner yet, the status check rejects the
	// transition on its own.
	if !pickup.DryingUnitID.Valid {
		return nil
	}

	if pickup.DryingUnitID.String == xcontext.RequestUserID(ctx) {
		return nil
	}

	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		return errorx.New(errorx.PermissionDenied, "Only the assigned drying unit can do this")
	}

	return nil
}

// classifyTransitionError turns a failed conditional status update into a
// client error. A record already sitting at the target status lost a race, any
// other status is a wrong predecessor.
func (d *pickupDomain) classifyTransitionError(
	ctx context.Context, id string, from, to entity.PickupStatus, err error,
) error {
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot update pickup status: %v", err)
		return errorx.Unknown
	}

	pickup, getErr := d.pickupRepo.GetByID(ctx, id)
	if getErr != nil {
		if errors.Is(getErr, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.NotFound, "Not found pickup request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get pickup request: %v", getErr)
		return errorx.Unknown
	}

	if pickup.Status == to {
		return errorx.New(errorx.ConcurrentModification,
			"Pickup request was already moved to %s by someone else", to)
	}

	return errorx.New(errorx.InvalidTransition,
		"Cannot move pickup request from %s to %s", pickup.Status, to)
}
