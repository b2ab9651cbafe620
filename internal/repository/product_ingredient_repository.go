package repository

import (
	"context"

	"boutique/internal/domain/model"
)

type ProductIngredientRepository interface {
	ListByProductID(ctx context.Context, productID string) ([]model.ProductIngredient, error)
	CreateBulk(ctx context.Context, ingredients []model.ProductIngredient) error
	DeleteByProductID(ctx context.Context, productID string) error
}
