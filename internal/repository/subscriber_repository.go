package repository

import (
	"context"

	"boutique/internal/domain/model"
)

type SubscriberRepository interface {
	ListAll(ctx context.Context) ([]model.Subscriber, error)
	ListRecent(ctx context.Context, limit int) ([]model.Subscriber, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, s model.Subscriber) error
	Delete(ctx context.Context, id string) error
}
