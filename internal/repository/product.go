package repository

import (
	"context"

	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/pkg/xcontext"
)

type ProductRepository interface {
	Create(ctx context.Context, data *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Product, error)
	UpdateByID(ctx context.Context, id string, data map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type productRepository struct{}

func NewProductRepository() *productRepository {
	return &productRepository{}
}

func (r *productRepository) Create(ctx context.Context, data *entity.Product) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var record entity.Product
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *productRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Product, error) {
	var records []entity.Product
	err := xcontext.DB(ctx).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *productRepository) UpdateByID(ctx context.Context, id string, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Model(&entity.Product{}).Where("id=?", id).Updates(data).Error
}

func (r *productRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Product{}).Error
}
