package domain

import (
	"context"
	"errors"

	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	GetDryingUnits(context.Context, *model.GetDryingUnitsRequest) (*model.GetDryingUnitsResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
}

func NewUserDomain(userRepo repository.UserRepository) *userDomain {
	return &userDomain{userRepo: userRepo}
}

func (d *userDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		// A valid token without a profile row means the profile was lost.
		// Recreate a default one instead of locking the account out.
		user = &entity.User{
			Base: entity.Base{ID: userID},
			Role: entity.RoleUser,
		}
		if err := d.userRepo.Create(ctx, user); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot recreate user profile: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.GetMeResponse{User: convertUser(user)}, nil
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertUser(user)

	// Contact details stay private unless the caller asks about themselves.
	if user.ID != xcontext.RequestUserID(ctx) {
		resp.Email = ""
		resp.Address = ""
	}

	return &model.GetUserResponse{User: resp}, nil
}

// GetDryingUnits lists drying unit accounts so volunteers and temples can find
// one to work with.
func (d *userDomain) GetDryingUnits(
	ctx context.Context, req *model.GetDryingUnitsRequest,
) (*model.GetDryingUnitsResponse, error) {
	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	units, err := d.userRepo.GetListByRole(ctx, entity.RoleDryingUnit, req.Offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get drying units: %v", err)
		return nil, errorx.Unknown
	}

	clientUnits := []model.User{}
	for i := range units {
		unit := convertUser(&units[i])
		unit.Email = ""
		clientUnits = append(clientUnits, unit)
	}

	return &model.GetDryingUnitsResponse{DryingUnits: clientUnits}, nil
}
