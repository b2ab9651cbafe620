package repository

import (
	"context"

	"boutique/internal/domain/model"
)

// 画像はfull-replace（全削除→一括挿入）で更新する。
type ProductImageRepository interface {
	ListByProductID(ctx context.Context, productID string) ([]model.ProductImage, error)
	CreateBulk(ctx context.Context, images []model.ProductImage) error
	DeleteByProductID(ctx context.Context, productID string) error
}
