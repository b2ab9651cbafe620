package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 1言語分の翻訳。nilのフィールドはベース言語へのフォールバック。
// Ingredientsはその言語の行が1件以上あるときだけ付く。
type Translation struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	FullDescription *string  `json:"fullDescription,omitempty"`
	Ingredients     []string `json:"ingredients,omitempty"`
}

// 親行と子テーブル4つを1つにまとめた表示用の形
type ProductAggregate struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Slug            string                 `json:"slug"`
	Price           decimal.Decimal        `json:"price"`
	Image           string                 `json:"image"`
	Images          []string               `json:"images"`
	Description     string                 `json:"description"`
	FullDescription string                 `json:"fullDescription"`
	Ingredients     []string               `json:"ingredients"`
	Translations    map[string]Translation `json:"translations"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

type CatalogUsecase struct {
	products               repo.ProductRepository
	images                 repo.ProductImageRepository
	ingredients            repo.ProductIngredientRepository
	translations           repo.ProductTranslationRepository
	ingredientTranslations repo.IngredientTranslationRepository
	tx                     repo.TransactionManager
	idGen                  IDGenerator
}

// DI
func NewCatalogUsecase(
	products repo.ProductRepository,
	images repo.ProductImageRepository,
	ingredients repo.ProductIngredientRepository,
	translations repo.ProductTranslationRepository,
	ingredientTranslations repo.IngredientTranslationRepository,
	tx repo.TransactionManager,
	idGen IDGenerator,
) *CatalogUsecase {
	return &CatalogUsecase{
		products:               products,
		images:                 images,
		ingredients:            ingredients,
		translations:           translations,
		ingredientTranslations: ingredientTranslations,
		tx:                     tx,
		idGen:                  idGen,
	}
}

// ListProductsは全商品を新しい順で組み立てて返す。
// 商品をまたぐ組み立ては並列、1商品内の子クエリは順次。
func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]ProductAggregate, error) {
	parents, err := u.products.ListAll(ctx)
	if err != nil {
		slog.Error("list products failed", "error", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	aggregates := make([]ProductAggregate, len(parents))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range parents {
		g.Go(func() error {
			agg, err := u.assemble(gctx, p)
			if err != nil {
				return err
			}
			aggregates[i] = agg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("assemble products failed", "error", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return aggregates, nil
}

func (u *CatalogUsecase) GetProductBySlug(ctx context.Context, slug string) (ProductAggregate, error) {
	if slug == "" {
		return ProductAggregate{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	p, err := u.products.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return ProductAggregate{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		slog.Error("find product by slug failed", "slug", slug, "error", err)
		return ProductAggregate{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	agg, err := u.assemble(ctx, p)
	if err != nil {
		slog.Error("assemble product failed", "product_id", p.ID, "error", err)
		return ProductAggregate{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return agg, nil
}

// 管理画面の編集フロー用
func (u *CatalogUsecase) GetProductByID(ctx context.Context, id string) (ProductAggregate, error) {
	if id == "" {
		return ProductAggregate{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductAggregate{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		slog.Error("find product by id failed", "product_id", id, "error", err)
		return ProductAggregate{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	agg, err := u.assemble(ctx, p)
	if err != nil {
		slog.Error("assemble product failed", "product_id", p.ID, "error", err)
		return ProductAggregate{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return agg, nil
}

// GetRelatedProductsは自分以外からランダムにlimit件、カード表示に必要な
// フィールドだけの軽い組み立てで返す。
func (u *CatalogUsecase) GetRelatedProducts(ctx context.Context, excludeID string, limit int) ([]ProductAggregate, error) {
	if excludeID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if limit < 1 || limit > 12 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	parents, err := u.products.PickRandom(ctx, excludeID, limit)
	if err != nil {
		slog.Error("pick related products failed", "error", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cards := make([]ProductAggregate, 0, len(parents))
	for _, p := range parents {
		rows, err := u.translations.ListByProductID(ctx, p.ID)
		if err != nil {
			slog.Error("load translations failed", "product_id", p.ID, "error", err)
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		translations := make(map[string]Translation, len(rows))
		for _, row := range rows {
			translations[row.Lang] = Translation{
				Name:        row.Name,
				Description: row.Description,
			}
		}

		cards = append(cards, ProductAggregate{
			ID:           p.ID,
			Name:         p.Name,
			Slug:         p.Slug,
			Price:        p.Price,
			Image:        p.Image,
			Description:  p.Description,
			Translations: translations,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
	}

	return cards, nil
}

// assembleは親行に子テーブル4つを順に読み足して集約を作る。
// 読み取りはトランザクションで包まない（更新中の商品は混ざった状態が
// 見えることがある）。
func (u *CatalogUsecase) assemble(ctx context.Context, p model.Product) (ProductAggregate, error) {
	imageRows, err := u.images.ListByProductID(ctx, p.ID)
	if err != nil {
		return ProductAggregate{}, err
	}
	images := make([]string, 0, len(imageRows))
	for _, row := range imageRows {
		images = append(images, row.ImageURL)
	}

	ingredientRows, err := u.ingredients.ListByProductID(ctx, p.ID)
	if err != nil {
		return ProductAggregate{}, err
	}
	ingredients := make([]string, 0, len(ingredientRows))
	for _, row := range ingredientRows {
		ingredients = append(ingredients, row.Ingredient)
	}

	translationRows, err := u.translations.ListByProductID(ctx, p.ID)
	if err != nil {
		return ProductAggregate{}, err
	}
	translations := make(map[string]Translation, len(translationRows))
	for _, row := range translationRows {
		translations[row.Lang] = Translation{
			Name:            row.Name,
			Description:     row.Description,
			FullDescription: row.FullDescription,
		}
	}

	// 言語ごとにまとめ、1件以上あるときだけingredientsを付ける
	ingredientTranslationRows, err := u.ingredientTranslations.ListByProductID(ctx, p.ID)
	if err != nil {
		return ProductAggregate{}, err
	}
	for lang, t := range translations {
		var langIngredients []string
		for _, row := range ingredientTranslationRows {
			if row.Lang == lang {
				langIngredients = append(langIngredients, row.Ingredient)
			}
		}
		if len(langIngredients) > 0 {
			t.Ingredients = langIngredients
			translations[lang] = t
		}
	}

	return ProductAggregate{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Price:           p.Price,
		Image:           p.Image,
		Images:          images,
		Description:     p.Description,
		FullDescription: p.FullDescription,
		Ingredients:     ingredients,
		Translations:    translations,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}
