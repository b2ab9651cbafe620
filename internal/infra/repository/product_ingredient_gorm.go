package repository

import (
	"context"

	"boutique/internal/domain/model"

	"gorm.io/gorm"
)

type ProductIngredientGormRepository struct {
	db *gorm.DB
}

func NewProductIngredientGormRepository(db *gorm.DB) *ProductIngredientGormRepository {
	return &ProductIngredientGormRepository{db: db}
}

func (r *ProductIngredientGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.ProductIngredient, error) {
	var ingredients []model.ProductIngredient
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("display_order asc").
		Find(&ingredients).Error
	if err != nil {
		return []model.ProductIngredient{}, err
	}
	return ingredients, nil
}

func (r *ProductIngredientGormRepository) CreateBulk(ctx context.Context, ingredients []model.ProductIngredient) error {
	if len(ingredients) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ingredients).Error
}

func (r *ProductIngredientGormRepository) DeleteByProductID(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductIngredient{}).Error
}
