package repository

import (
	"context"
	"errors"

	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type WasteLogRepository interface {
	Create(ctx context.Context, data *entity.WasteLog) error
	GetByID(ctx context.Context, id string) (*entity.WasteLog, error)
	GetByTraceToken(ctx context.Context, token string) (*entity.WasteLog, error)
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.WasteLog, error)
	AdvanceStatus(ctx context.Context, id string, from, to entity.WasteLogStatus) error
}

type wasteLogRepository struct{}

func NewWasteLogRepository() *wasteLogRepository {
	return &wasteLogRepository{}
}

func (r *wasteLogRepository) Create(ctx context.Context, data *entity.WasteLog) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *wasteLogRepository) GetByID(ctx context.Context, id string) (*entity.WasteLog, error) {
	var record entity.WasteLog
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *wasteLogRepository) GetByTraceToken(ctx context.Context, token string) (*entity.WasteLog, error) {
	var record entity.WasteLog
	if err := xcontext.DB(ctx).Where("trace_token=?", token).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *wasteLogRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.WasteLog, error) {
	var records []entity.WasteLog
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *wasteLogRepository) AdvanceStatus(
	ctx context.Context, id string, from, to entity.WasteLogStatus,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.WasteLog{}).
		Where("id=? AND status=?", id, from).
		Update("status", to)
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
