package repository

import (
	"context"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

// 注文詳細の表示用に商品名と画像をJOINで付ける
func (r *OrderItemGormRepository) ListDetailedByOrderID(ctx context.Context, orderID string) ([]repo.OrderItemDetail, error) {
	var details []repo.OrderItemDetail
	err := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Select("order_items.*, products.name AS product_name, products.image AS product_image").
		Joins("JOIN products ON order_items.product_id = products.id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id asc").
		Scan(&details).Error
	if err != nil {
		return []repo.OrderItemDetail{}, err
	}
	return details, nil
}
