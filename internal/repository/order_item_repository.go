package repository

import (
	"context"

	"boutique/internal/domain/model"
)

// 管理画面の注文詳細用にproductsをJOINした形
type OrderItemDetail struct {
	model.OrderItem
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error)
	ListDetailedByOrderID(ctx context.Context, orderID string) ([]OrderItemDetail, error)
}
