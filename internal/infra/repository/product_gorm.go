package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全件を作成日の新しい順で返す（カタログは小さい前提、ページングなし）。
func (r *ProductGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 関連商品候補：自分以外からランダムにlimit件
func (r *ProductGormRepository) PickRandom(ctx context.Context, excludeID string, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Order("RANDOM()").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// slug重複数。excludeIDは「自分のslugを変えない更新」のための除外。
func (r *ProductGormRepository) CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) error {
	err := r.db.WithContext(ctx).Create(&p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrDuplicateSlug
	}
	return err
}

// nil以外のフィールドだけUPDATEする（updated_atは常に更新）。
func (r *ProductGormRepository) UpdateFields(ctx context.Context, id string, patch repo.ProductPatch) error {
	if patch.Empty() {
		return nil
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Slug != nil {
		fields["slug"] = *patch.Slug
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.Image != nil {
		fields["image"] = *patch.Image
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.FullDescription != nil {
		fields["full_description"] = *patch.FullDescription
	}

	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(fields)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return repo.ErrDuplicateSlug
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
