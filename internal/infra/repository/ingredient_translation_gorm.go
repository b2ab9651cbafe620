package repository

import (
	"context"

	"boutique/internal/domain/model"

	"gorm.io/gorm"
)

type IngredientTranslationGormRepository struct {
	db *gorm.DB
}

func NewIngredientTranslationGormRepository(db *gorm.DB) *IngredientTranslationGormRepository {
	return &IngredientTranslationGormRepository{db: db}
}

func (r *IngredientTranslationGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.IngredientTranslation, error) {
	var rows []model.IngredientTranslation
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("display_order asc").
		Find(&rows).Error
	if err != nil {
		return []model.IngredientTranslation{}, err
	}
	return rows, nil
}

func (r *IngredientTranslationGormRepository) CreateBulk(ctx context.Context, rows []model.IngredientTranslation) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *IngredientTranslationGormRepository) DeleteByProductID(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.IngredientTranslation{}).Error
}

// 言語単位のfull-replace用
func (r *IngredientTranslationGormRepository) DeleteByProductIDAndLang(ctx context.Context, productID string, lang string) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND lang = ?", productID, lang).
		Delete(&model.IngredientTranslation{}).Error
}
