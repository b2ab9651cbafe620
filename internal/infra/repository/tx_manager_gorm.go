package repository

import (
	"context"

	repo "boutique/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products               repo.ProductRepository
	images                 repo.ProductImageRepository
	ingredients            repo.ProductIngredientRepository
	translations           repo.ProductTranslationRepository
	ingredientTranslations repo.IngredientTranslationRepository
	orders                 repo.OrderRepository
	orderItems             repo.OrderItemRepository
}

func (r *txReposGorm) Products() repo.ProductRepository                 { return r.products }
func (r *txReposGorm) Images() repo.ProductImageRepository              { return r.images }
func (r *txReposGorm) Ingredients() repo.ProductIngredientRepository    { return r.ingredients }
func (r *txReposGorm) Translations() repo.ProductTranslationRepository  { return r.translations }
func (r *txReposGorm) Orders() repo.OrderRepository                     { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository             { return r.orderItems }
func (r *txReposGorm) IngredientTranslations() repo.IngredientTranslationRepository {
	return r.ingredientTranslations
}

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:               NewProductGormRepository(tx),
			images:                 NewProductImageGormRepository(tx),
			ingredients:            NewProductIngredientGormRepository(tx),
			translations:           NewProductTranslationGormRepository(tx),
			ingredientTranslations: NewIngredientTranslationGormRepository(tx),
			orders:                 NewOrderGormRepository(tx),
			orderItems:             NewOrderItemGormRepository(tx),
		}
		return fn(r)
	})
}
