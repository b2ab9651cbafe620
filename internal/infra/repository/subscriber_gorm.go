package repository

import (
	"context"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"

	"gorm.io/gorm"
)

type SubscriberGormRepository struct {
	db *gorm.DB
}

func NewSubscriberGormRepository(db *gorm.DB) *SubscriberGormRepository {
	return &SubscriberGormRepository{db: db}
}

func (r *SubscriberGormRepository) ListAll(ctx context.Context) ([]model.Subscriber, error) {
	var subscribers []model.Subscriber
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&subscribers).Error
	if err != nil {
		return []model.Subscriber{}, err
	}
	return subscribers, nil
}

func (r *SubscriberGormRepository) ListRecent(ctx context.Context, limit int) ([]model.Subscriber, error) {
	var subscribers []model.Subscriber
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&subscribers).Error
	if err != nil {
		return []model.Subscriber{}, err
	}
	return subscribers, nil
}

func (r *SubscriberGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscriber{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SubscriberGormRepository) Create(ctx context.Context, s model.Subscriber) error {
	return r.db.WithContext(ctx).Create(&s).Error
}

func (r *SubscriberGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Subscriber{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
