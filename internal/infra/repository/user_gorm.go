package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/gymstack/gym-manager/internal/domain/user"
	"github.com/gymstack/gym-manager/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) GetUserByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) CountAdmins(
	ctx context.Context,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserGormRepository) DeleteUser(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
