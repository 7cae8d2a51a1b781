package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/templetoayurveda/backend/internal/common"
	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/enum"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ServiceRequestDomain interface {
	Create(context.Context, *model.CreateServiceRequestRequest) (*model.CreateServiceRequestResponse, error)
	Resolve(context.Context, *model.ResolveServiceRequestRequest) (*model.ResolveServiceRequestResponse, error)
	GetList(context.Context, *model.GetListServiceRequestRequest) (*model.GetListServiceRequestResponse, error)
}

type serviceRequestDomain struct {
	serviceRequestRepo repository.ServiceRequestRepository
	userRepo           repository.UserRepository
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewServiceRequestDomain(
	serviceRequestRepo repository.ServiceRequestRepository,
	userRepo repository.UserRepository,
) *serviceRequestDomain {
	return &serviceRequestDomain{
		serviceRequestRepo: serviceRequestRepo,
		userRepo:           userRepo,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *serviceRequestDomain) Create(
	ctx context.Context, req *model.CreateServiceRequestRequest,
) (*model.CreateServiceRequestResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.RoleTemple); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when creating service request: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a title")
	}

	requestType, err := enum.ToEnum[entity.ServiceRequestType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid type %s", req.Type)
	}

	request := &entity.ServiceRequest{
		Base:        entity.Base{ID: uuid.NewString()},
		TempleID:    xcontext.RequestUserID(ctx),
		Type:        requestType,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      entity.ServiceRequestPending,
	}

	if err := d.serviceRequestRepo.Create(ctx, request); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create service request: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateServiceRequestResponse{ID: request.ID}, nil
}

func (d *serviceRequestDomain) Resolve(
	ctx context.Context, req *model.ResolveServiceRequestRequest,
) (*model.ResolveServiceRequestResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when resolving service request: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	err := d.serviceRequestRepo.ResolveByID(ctx, req.ID, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			request, getErr := d.serviceRequestRepo.GetByID(ctx, req.ID)
			if getErr != nil {
				if errors.Is(getErr, gorm.ErrRecordNotFound) {
					return nil, errorx.New(errorx.NotFound, "Not found service request")
				}

				xcontext.Logger(ctx).Errorf("Cannot get service request: %v", getErr)
				return nil, errorx.Unknown
			}

			return nil, errorx.New(errorx.InvalidTransition,
				"Service request is already %s", request.Status)
		}

		xcontext.Logger(ctx).Errorf("Cannot resolve service request: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ResolveServiceRequestResponse{}, nil
}

func (d *serviceRequestDomain) GetList(
	ctx context.Context, req *model.GetListServiceRequestRequest,
) (*model.GetListServiceRequestResponse, error) {
	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := &repository.ServiceRequestFilter{
		Status: entity.ServiceRequestStatus(req.Status),
		Offset: req.Offset,
		Limit:  limit,
	}

	// Temples only see their own requests, admins see everything.
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		if err := d.globalRoleVerifier.Verify(ctx, entity.RoleTemple); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		filter.TempleID = xcontext.RequestUserID(ctx)
	}

	requests, err := d.serviceRequestRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get service requests: %v", err)
		return nil, errorx.Unknown
	}

	clientRequests := []model.ServiceRequest{}
	for i := range requests {
		clientRequests = append(clientRequests, convertServiceRequest(&requests[i]))
	}

	return &model.GetListServiceRequestResponse{ServiceRequests: clientRequests}, nil
}
