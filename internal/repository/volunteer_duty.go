package repository

import (
	"context"
	"errors"

	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type VolunteerDutyFilter struct {
	VolunteerID string
	AssignedBy  string
	Status      entity.DutyStatus
	Offset      int
	Limit       int
}

type VolunteerDutyRepository interface {
	Create(ctx context.Context, data *entity.VolunteerDuty) error
	GetByID(ctx context.Context, id string) (*entity.VolunteerDuty, error)
	GetList(ctx context.Context, filter *VolunteerDutyFilter) ([]entity.VolunteerDuty, error)
	UpdateStatusFrom(
		ctx context.Context,
		id string,
		from, to entity.DutyStatus,
		data map[string]any,
	) error
	ReviewByID(ctx context.Context, id string, to entity.DutyStatus, data map[string]any) error
}

type volunteerDutyRepository struct{}

func NewVolunteerDutyRepository() *volunteerDutyRepository {
	return &volunteerDutyRepository{}
}

func (r *volunteerDutyRepository) Create(ctx context.Context, data *entity.VolunteerDuty) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *volunteerDutyRepository) GetByID(ctx context.Context, id string) (*entity.VolunteerDuty, error) {
	var record entity.VolunteerDuty
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *volunteerDutyRepository) GetList(
	ctx context.Context, filter *VolunteerDutyFilter,
) ([]entity.VolunteerDuty, error) {
	tx := xcontext.DB(ctx).Model(&entity.VolunteerDuty{})
	if filter.VolunteerID != "" {
		tx = tx.Where("volunteer_id=?", filter.VolunteerID)
	}

	if filter.AssignedBy != "" {
		tx = tx.Where("assigned_by=?", filter.AssignedBy)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	var records []entity.VolunteerDuty
	err := tx.Offset(filter.Offset).Limit(filter.Limit).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *volunteerDutyRepository) UpdateStatusFrom(
	ctx context.Context,
	id string,
	from, to entity.DutyStatus,
	data map[string]any,
) error {
	updateMap := map[string]any{"status": to}
	for k, v := range data {
		updateMap[k] = v
	}

	tx := xcontext.DB(ctx).
		Model(&entity.VolunteerDuty{}).
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

// ReviewByID settles a completion request. The reward_applied flag flips
// together with the status so approving twice can never double-credit the
// volunteer.
func (r *volunteerDutyRepository) ReviewByID(
	ctx context.Context, id string, to entity.DutyStatus, data map[string]any,
) error {
	updateMap := map[string]any{
		"status":         to,
		"reward_applied": true,
	}
	for k, v := range data {
		updateMap[k] = v
	}

	tx := xcontext.DB(ctx).
		Model(&entity.VolunteerDuty{}).
		Where("id=? AND status=? AND reward_applied=false", id, entity.DutyCompletionRequested).
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
