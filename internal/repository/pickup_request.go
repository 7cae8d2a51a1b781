package repository

import (
	"context"
	"errors"

	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PickupRequestFilter struct {
	RequesterID  string
	DryingUnitID string
	Status       entity.PickupStatus
	Offset       int
	Limit        int
}

type PickupRequestRepository interface {
	Create(ctx context.Context, data *entity.PickupRequest) error
	GetByID(ctx context.Context, id string) (*entity.PickupRequest, error)
	GetList(ctx context.Context, filter *PickupRequestFilter) ([]entity.PickupRequest, error)
	UpdateStatusFrom(
		ctx context.Context,
		id string,
		from, to entity.PickupStatus,
		data map[string]any,
	) error
	CompleteByID(ctx context.Context, id, proofImageURL string) error
}

type pickupRequestRepository struct{}

func NewPickupRequestRepository() *pickupRequestRepository {
	return &pickupRequestRepository{}
}

func (r *pickupRequestRepository) Create(ctx context.Context, data *entity.PickupRequest) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *pickupRequestRepository) GetByID(ctx context.Context, id string) (*entity.PickupRequest, error) {
	var record entity.PickupRequest
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *pickupRequestRepository) GetList(
	ctx context.Context, filter *PickupRequestFilter,
) ([]entity.PickupRequest, error) {
	tx := xcontext.DB(ctx).Model(&entity.PickupRequest{})
	if filter.RequesterID != "" {
		tx = tx.Where("requester_id=?", filter.RequesterID)
	}

	if filter.DryingUnitID != "" {
		tx = tx.Where("drying_unit_id=?", filter.DryingUnitID)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	var records []entity.PickupRequest
	err := tx.Offset(filter.Offset).Limit(filter.Limit).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateStatusFrom moves a pickup request to another status only when it is
// still in the expected predecessor status. The caller distinguishes a wrong
// predecessor from a lost race by refetching after gorm.ErrRecordNotFound.
func (r *pickupRequestRepository) UpdateStatusFrom(
	ctx context.Context,
	id string,
	from, to entity.PickupStatus,
	data map[string]any,
) error {
	updateMap := map[string]any{"status": to}
	for k, v := range data {
		updateMap[k] = v
	}

	tx := xcontext.DB(ctx).
		Model(&entity.PickupRequest{}).
		Where("id=? AND status=?", id, from).
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

// CompleteByID is the terminal move. The reward_applied flag flips in the same
// conditional update as the status change, so the reward cannot be credited
// twice even under concurrent completions.
func (r *pickupRequestRepository) CompleteByID(ctx context.Context, id, proofImageURL string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.PickupRequest{}).
		Where("id=? AND status=? AND reward_applied=false", id, entity.PickupLoaded).
		Updates(map[string]any{
			"status":          entity.PickupCompleted,
			"proof_image_url": proofImageURL,
			"reward_applied":  true,
		})
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
