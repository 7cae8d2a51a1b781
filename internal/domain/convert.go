package domain

import (
	"context"
	"time"

	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/xcontext"
)

func checkLimit(ctx context.Context, limit int) (int, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if limit == 0 {
		limit = apiCfg.DefaultLimit
	}

	if limit < 0 {
		return 0, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if limit > apiCfg.MaxLimit {
		return 0, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	return limit, nil
}

func convertUser(user *entity.User) model.User {
	return model.User{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           string(user.Role),
		Address:        user.Address,
		GreenCoins:     user.GreenCoins,
		WasteDonatedKg: user.WasteDonatedKg,
		GreenStars:     user.GreenStars,
	}
}

func convertPickupRequest(pickup *entity.PickupRequest) model.PickupRequest {
	return model.PickupRequest{
		ID:                pickup.ID,
		RequesterType:     string(pickup.RequesterType),
		RequesterID:       pickup.RequesterID,
		DryingUnitID:      pickup.DryingUnitID.String,
		WasteType:         pickup.WasteType,
		EstimatedWeightKg: pickup.EstimatedWeightKg,
		ScheduledDate:     pickup.ScheduledDate.Format(time.RFC3339),
		TimeSlot:          pickup.TimeSlot,
		Address:           pickup.Address,
		DriverName:        pickup.DriverName,
		ProofImageURL:     pickup.ProofImageURL,
		Status:            string(pickup.Status),
		CreatedAt:         pickup.CreatedAt.Format(time.RFC3339),
	}
}

func convertVolunteerRequest(request *entity.VolunteerRequest) model.VolunteerRequest {
	return model.VolunteerRequest{
		ID:               request.ID,
		UserID:           request.UserID,
		DryingUnitID:     request.DryingUnitID,
		AssignmentStatus: string(request.AssignmentStatus),
		RejectionReason:  request.RejectionReason,
		CreatedAt:        request.CreatedAt.Format(time.RFC3339),
	}
}

func convertVolunteerDuty(duty *entity.VolunteerDuty) model.VolunteerDuty {
	return model.VolunteerDuty{
		ID:          duty.ID,
		VolunteerID: duty.VolunteerID,
		AssignedBy:  duty.AssignedBy,
		Title:       duty.Title,
		Description: duty.Description,
		Status:      string(duty.Status),
		Comment:     duty.Comment,
		CreatedAt:   duty.CreatedAt.Format(time.RFC3339),
	}
}

func convertWasteLog(log *entity.WasteLog) model.WasteLog {
	return model.WasteLog{
		ID:         log.ID,
		UserID:     log.UserID,
		AmountKg:   log.AmountKg,
		WasteType:  log.WasteType,
		Status:     string(log.Status),
		TraceToken: log.TraceToken,
		CreatedAt:  log.CreatedAt.Format(time.RFC3339),
	}
}

func convertServiceRequest(request *entity.ServiceRequest) model.ServiceRequest {
	return model.ServiceRequest{
		ID:          request.ID,
		TempleID:    request.TempleID,
		Type:        string(request.Type),
		Title:       request.Title,
		Description: request.Description,
		ImageURL:    request.ImageURL,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt.Format(time.RFC3339),
	}
}

func convertProduct(product *entity.Product) model.Product {
	return model.Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		PriceCoins:  product.PriceCoins,
		ImageURL:    product.ImageURL,
	}
}
