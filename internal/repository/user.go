package repository

import (
	"context"
	"errors"

	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.User, error)
	GetListByRole(ctx context.Context, role entity.GlobalRole, offset, limit int) ([]entity.User, error)
	GetRewardHolders(ctx context.Context) ([]entity.User, error)
	UpdateByID(ctx context.Context, id string, data *entity.User) error
	IncreaseReward(ctx context.Context, id string, coins uint64, wasteKg float64) error
	UpdateStars(ctx context.Context, id string, stars int) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("email=?", email).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var records []entity.User
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *userRepository) GetListByRole(
	ctx context.Context, role entity.GlobalRole, offset, limit int,
) ([]entity.User, error) {
	var records []entity.User
	err := xcontext.DB(ctx).
		Where("role=?", role).
		Offset(offset).Limit(limit).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// GetRewardHolders returns every user with a non-zero reward balance. It is
// the source of truth when the leaderboard cache needs rebuilding.
func (r *userRepository) GetRewardHolders(ctx context.Context) ([]entity.User, error) {
	var records []entity.User
	err := xcontext.DB(ctx).
		Where("green_coins > 0 OR waste_donated_kg > 0").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, data *entity.User) error {
	updateMap := map[string]any{}
	if data.Name != "" {
		updateMap["name"] = data.Name
	}

	if data.Address != "" {
		updateMap["address"] = data.Address
	}

	if len(updateMap) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *userRepository) IncreaseReward(
	ctx context.Context, id string, coins uint64, wasteKg float64,
) error {
	updateMap := map[string]any{}
	if coins > 0 {
		updateMap["green_coins"] = gorm.Expr("green_coins+?", coins)
	}

	if wasteKg > 0 {
		updateMap["waste_donated_kg"] = gorm.Expr("waste_donated_kg+?", wasteKg)
	}

	if len(updateMap) == 0 {
		return nil
	}

	tx := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap)
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

func (r *userRepository) UpdateStars(ctx context.Context, id string, stars int) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Update("green_stars", stars)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
