package repository

import (
	"context"

	"boutique/internal/domain/model"
)

type IngredientTranslationRepository interface {
	// display_order ASCで返す
	ListByProductID(ctx context.Context, productID string) ([]model.IngredientTranslation, error)
	CreateBulk(ctx context.Context, rows []model.IngredientTranslation) error
	DeleteByProductID(ctx context.Context, productID string) error
	DeleteByProductIDAndLang(ctx context.Context, productID string, lang string) error
}
