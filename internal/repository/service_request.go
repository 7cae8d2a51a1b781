package repository

import (
	"context"
	"errors"
	"time"

	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ServiceRequestFilter struct {
	TempleID string
	Type     entity.ServiceRequestType
	Status   entity.ServiceRequestStatus
	Offset   int
	Limit    int
}

type ServiceRequestRepository interface {
	Create(ctx context.Context, data *entity.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*entity.ServiceRequest, error)
	GetList(ctx context.Context, filter *ServiceRequestFilter) ([]entity.ServiceRequest, error)
	ResolveByID(ctx context.Context, id, resolverID string) error
}

type serviceRequestRepository struct{}

func NewServiceRequestRepository() *serviceRequestRepository {
	return &serviceRequestRepository{}
}

func (r *serviceRequestRepository) Create(ctx context.Context, data *entity.ServiceRequest) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	var record entity.ServiceRequest
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *serviceRequestRepository) GetList(
	ctx context.Context, filter *ServiceRequestFilter,
) ([]entity.ServiceRequest, error) {
	tx := xcontext.DB(ctx).Model(&entity.ServiceRequest{})
	if filter.TempleID != "" {
		tx = tx.Where("temple_id=?", filter.TempleID)
	}

	if filter.Type != "" {
		tx = tx.Where("type=?", filter.Type)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	var records []entity.ServiceRequest
	err := tx.Offset(filter.Offset).Limit(filter.Limit).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *serviceRequestRepository) ResolveByID(ctx context.Context, id, resolverID string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.ServiceRequest{}).
		Where("id=? AND status=?", id, entity.ServiceRequestPending).
		Updates(map[string]any{
			"status":      entity.ServiceRequestResolved,
			"resolver_id": resolverID,
			"resolved_at": time.Now(),
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
