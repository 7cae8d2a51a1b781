package repository

import (
	"context"
	"errors"

	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type VolunteerRequestFilter struct {
	UserID       string
	DryingUnitID string
	Status       entity.VolunteerRequestStatus
	Offset       int
	Limit        int
}

type VolunteerRequestRepository interface {
	Create(ctx context.Context, data *entity.VolunteerRequest) error
	GetByID(ctx context.Context, id string) (*entity.VolunteerRequest, error)
	GetPending(ctx context.Context, userID, dryingUnitID string) (*entity.VolunteerRequest, error)
	GetList(ctx context.Context, filter *VolunteerRequestFilter) ([]entity.VolunteerRequest, error)
	UpdateStatusFrom(
		ctx context.Context,
		id string,
		from, to entity.VolunteerRequestStatus,
		data map[string]any,
	) error
}

type volunteerRequestRepository struct{}

func NewVolunteerRequestRepository() *volunteerRequestRepository {
	return &volunteerRequestRepository{}
}

func (r *volunteerRequestRepository) Create(ctx context.Context, data *entity.VolunteerRequest) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *volunteerRequestRepository) GetByID(ctx context.Context, id string) (*entity.VolunteerRequest, error) {
	var record entity.VolunteerRequest
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *volunteerRequestRepository) GetPending(
	ctx context.Context, userID, dryingUnitID string,
) (*entity.VolunteerRequest, error) {
	var record entity.VolunteerRequest
	err := xcontext.DB(ctx).
		Where("user_id=? AND drying_unit_id=? AND assignment_status=?",
			userID, dryingUnitID, entity.VolunteerRequestPending).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *volunteerRequestRepository) GetList(
	ctx context.Context, filter *VolunteerRequestFilter,
) ([]entity.VolunteerRequest, error) {
	tx := xcontext.DB(ctx).Model(&entity.VolunteerRequest{})
	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if filter.DryingUnitID != "" {
		tx = tx.Where("drying_unit_id=?", filter.DryingUnitID)
	}

	if filter.Status != "" {
		tx = tx.Where("assignment_status=?", filter.Status)
	}

	var records []entity.VolunteerRequest
	err := tx.Offset(filter.Offset).Limit(filter.Limit).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *volunteerRequestRepository) UpdateStatusFrom(
	ctx context.Context,
	id string,
	from, to entity.VolunteerRequestStatus,
	data map[string]any,
) error {
	updateMap := map[string]any{"assignment_status": to}
	for k, v := range data {
		updateMap[k] = v
	}

	tx := xcontext.DB(ctx).
		Model(&entity.VolunteerRequest{}).
		Where("id=? AND assignment_status=?", id, from).
		Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
