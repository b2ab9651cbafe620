package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"

	"gorm.io/gorm"
)

type ProductTranslationGormRepository struct {
	db *gorm.DB
}

func NewProductTranslationGormRepository(db *gorm.DB) *ProductTranslationGormRepository {
	return &ProductTranslationGormRepository{db: db}
}

func (r *ProductTranslationGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.ProductTranslation, error) {
	var translations []model.ProductTranslation
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&translations).Error
	if err != nil {
		return []model.ProductTranslation{}, err
	}
	return translations, nil
}

func (r *ProductTranslationGormRepository) FindByProductIDAndLang(ctx context.Context, productID string, lang string) (model.ProductTranslation, error) {
	var t model.ProductTranslation
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND lang = ?", productID, lang).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductTranslation{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductTranslation{}, err
	}
	return t, nil
}

func (r *ProductTranslationGormRepository) Create(ctx context.Context, t model.ProductTranslation) error {
	return r.db.WithContext(ctx).Create(&t).Error
}

func (r *ProductTranslationGormRepository) UpdateFields(ctx context.Context, id string, patch repo.TranslationPatch) error {
	if patch.Empty() {
		return nil
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.FullDescription != nil {
		fields["full_description"] = *patch.FullDescription
	}

	res := r.db.WithContext(ctx).Model(&model.ProductTranslation{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductTranslationGormRepository) DeleteByProductID(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductTranslation{}).Error
}
