package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// slugのunique index違反
var ErrDuplicateSlug = errors.New("slug already in use")

// 部分更新：nil以外のフィールドだけUPDATEする
type ProductPatch struct {
	Name            *string
	Slug            *string
	Price           *decimal.Decimal
	Image           *string
	Description     *string
	FullDescription *string
}

func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Slug == nil && p.Price == nil &&
		p.Image == nil && p.Description == nil && p.FullDescription == nil
}

// 商品親行の永続化だけを約束。子テーブルは各Repositoryが持つ。
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)
	PickRandom(ctx context.Context, excludeID string, limit int) ([]model.Product, error)
	CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, p model.Product) error
	UpdateFields(ctx context.Context, id string, patch ProductPatch) error
	Delete(ctx context.Context, id string) error
}
