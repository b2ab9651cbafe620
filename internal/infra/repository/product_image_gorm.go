package repository

import (
	"context"

	"boutique/internal/domain/model"

	"gorm.io/gorm"
)

type ProductImageGormRepository struct {
	db *gorm.DB
}

func NewProductImageGormRepository(db *gorm.DB) *ProductImageGormRepository {
	return &ProductImageGormRepository{db: db}
}

// ギャラリー順（display_order ASC）で返す。先頭はメイン画像。
func (r *ProductImageGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.ProductImage, error) {
	var images []model.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("display_order asc").
		Find(&images).Error
	if err != nil {
		return []model.ProductImage{}, err
	}
	return images, nil
}

func (r *ProductImageGormRepository) CreateBulk(ctx context.Context, images []model.ProductImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *ProductImageGormRepository) DeleteByProductID(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductImage{}).Error
}
