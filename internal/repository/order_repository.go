package repository

import (
	"context"

	"boutique/internal/domain/model"
)

type OrderRepository interface {
	ListAll(ctx context.Context) ([]model.Order, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, order model.Order) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}
