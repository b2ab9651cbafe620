package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/model"

	"gorm.io/gorm"
)

type ViewCounterGormRepository struct {
	db *gorm.DB
}

func NewViewCounterGormRepository(db *gorm.DB) *ViewCounterGormRepository {
	return &ViewCounterGormRepository{db: db}
}

// count = count + 1 してから現在値を読む。行がなければ作る。
func (r *ViewCounterGormRepository) Increment(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.ViewCounter{}).
		Where("id = ?", 1).
		UpdateColumn("count", gorm.Expr("count + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).Create(&model.ViewCounter{ID: 1, Count: 1}).Error; err != nil {
			return 0, err
		}
		return 1, nil
	}
	return r.Get(ctx)
}

func (r *ViewCounterGormRepository) Get(ctx context.Context) (int64, error) {
	var vc model.ViewCounter
	err := r.db.WithContext(ctx).Where("id = ?", 1).First(&vc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return vc.Count, nil
}
