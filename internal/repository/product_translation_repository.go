package repository

import (
	"context"

	"boutique/internal/domain/model"
)

// 翻訳行の部分更新：nil以外のカラムだけ触る
type TranslationPatch struct {
	Name            *string
	Description     *string
	FullDescription *string
}

func (p TranslationPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.FullDescription == nil
}

type ProductTranslationRepository interface {
	ListByProductID(ctx context.Context, productID string) ([]model.ProductTranslation, error)
	FindByProductIDAndLang(ctx context.Context, productID string, lang string) (model.ProductTranslation, error)
	Create(ctx context.Context, t model.ProductTranslation) error
	UpdateFields(ctx context.Context, id string, patch TranslationPatch) error
	DeleteByProductID(ctx context.Context, productID string) error
}
