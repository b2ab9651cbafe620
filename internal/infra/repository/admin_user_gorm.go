package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"

	"gorm.io/gorm"
)

type AdminUserGormRepository struct {
	db *gorm.DB
}

func NewAdminUserGormRepository(db *gorm.DB) *AdminUserGormRepository {
	return &AdminUserGormRepository{db: db}
}

func (r *AdminUserGormRepository) FindByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	var u model.AdminUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.AdminUser{}, repo.ErrNotFound
	}
	if err != nil {
		return model.AdminUser{}, err
	}
	return u, nil
}
