package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"
	"boutique/internal/validator"

	"github.com/shopspring/decimal"
)

// 1言語分の翻訳入力。nilは「触らない」。
// Ingredientsはnilで「触らない」、空スライスで「全部消す」（full-replace）。
type TranslationInput struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	FullDescription *string   `json:"fullDescription"`
	Ingredients     *[]string `json:"ingredients"`
}

func (t TranslationInput) hasText() bool {
	return (t.Name != nil && *t.Name != "") ||
		(t.Description != nil && *t.Description != "") ||
		(t.FullDescription != nil && *t.FullDescription != "")
}

type CreateProductInput struct {
	Name             string
	Slug             string
	Price            decimal.Decimal
	Image            string
	Description      string
	FullDescription  string
	AdditionalImages []string
	Ingredients      []string
	Translations     map[string]TranslationInput
}

type UpdateProductInput struct {
	Name             *string
	Slug             *string
	Price            *decimal.Decimal
	Image            *string
	Description      *string
	FullDescription  *string
	AdditionalImages *[]string
	Ingredients      *[]string
	Translations     map[string]TranslationInput
}

// CreateProductは親行と子テーブル4つを1トランザクションで挿入する。
// slugのfast-path checkはUX用で、本当の保証はunique index。
func (u *CatalogUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	slug := strings.TrimSpace(in.Slug)

	if name == "" {
		return "", NewHTTPError(http.StatusBadRequest, "name required")
	}
	if slug == "" || !validator.IsSlugLike(slug) {
		return "", NewHTTPError(http.StatusBadRequest, "invalid slug")
	}
	if in.Image == "" {
		return "", NewHTTPError(http.StatusBadRequest, "image required")
	}
	if in.Price.IsNegative() {
		return "", NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	count, err := u.products.CountBySlug(ctx, slug, "")
	if err != nil {
		slog.Error("slug check failed", "slug", slug, "error", err)
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count > 0 {
		return "", NewHTTPError(http.StatusConflict, "slug already in use")
	}

	productID := u.idGen.NewID()

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Products().Create(ctx, model.Product{
			ID:              productID,
			Name:            name,
			Slug:            slug,
			Price:           in.Price,
			Image:           in.Image,
			Description:     in.Description,
			FullDescription: in.FullDescription,
		}); err != nil {
			return err
		}

		// メイン画像をindex 0、追加画像をi+1で入れる
		images := make([]model.ProductImage, 0, len(in.AdditionalImages)+1)
		images = append(images, model.ProductImage{
			ID:           u.idGen.NewID(),
			ProductID:    productID,
			ImageURL:     in.Image,
			DisplayOrder: 0,
		})
		for i, url := range in.AdditionalImages {
			images = append(images, model.ProductImage{
				ID:           u.idGen.NewID(),
				ProductID:    productID,
				ImageURL:     url,
				DisplayOrder: i + 1,
			})
		}
		if err := r.Images().CreateBulk(ctx, images); err != nil {
			return err
		}

		if err := r.Ingredients().CreateBulk(ctx, u.ingredientRows(productID, in.Ingredients)); err != nil {
			return err
		}

		for _, lang := range sortedLangs(in.Translations) {
			t := in.Translations[lang]
			if t.hasText() {
				if err := r.Translations().Create(ctx, model.ProductTranslation{
					ID:              u.idGen.NewID(),
					ProductID:       productID,
					Lang:            lang,
					Name:            nonEmpty(t.Name),
					Description:     nonEmpty(t.Description),
					FullDescription: nonEmpty(t.FullDescription),
				}); err != nil {
					return err
				}
			}
			if t.Ingredients != nil {
				if err := r.IngredientTranslations().CreateBulk(ctx, u.ingredientTranslationRows(productID, lang, *t.Ingredients)); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err == repo.ErrDuplicateSlug {
		return "", NewHTTPError(http.StatusConflict, "slug already in use")
	}
	if err != nil {
		slog.Error("create product failed", "slug", slug, "error", err)
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return productID, nil
}

// UpdateProductは指定されたフィールドだけ更新する。画像・成分・成分翻訳は
// 指定があればfull-replace（全削除→再挿入）、翻訳本文はカラム単位のpatch。
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, productID string, in UpdateProductInput) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	var slug string
	if in.Slug != nil {
		slug = strings.TrimSpace(*in.Slug)
		if slug == "" || !validator.IsSlugLike(slug) {
			return NewHTTPError(http.StatusBadRequest, "invalid slug")
		}
		count, err := u.products.CountBySlug(ctx, slug, productID)
		if err != nil {
			slog.Error("slug check failed", "slug", slug, "error", err)
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if count > 0 {
			return NewHTTPError(http.StatusConflict, "slug already in use")
		}
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		current, err := r.Products().FindByID(ctx, productID)
		if err != nil {
			return err
		}

		patch := repo.ProductPatch{
			Name:            in.Name,
			Price:           in.Price,
			Image:           in.Image,
			Description:     in.Description,
			FullDescription: in.FullDescription,
		}
		if in.Slug != nil {
			patch.Slug = &slug
		}
		if !patch.Empty() {
			if err := r.Products().UpdateFields(ctx, productID, patch); err != nil {
				return err
			}
		}

		if in.Image != nil || in.AdditionalImages != nil {
			if err := r.Images().DeleteByProductID(ctx, productID); err != nil {
				return err
			}

			// index 0は常にメイン画像（今回指定がなければ既存の値）
			primary := current.Image
			if in.Image != nil {
				primary = *in.Image
			}
			images := []model.ProductImage{{
				ID:           u.idGen.NewID(),
				ProductID:    productID,
				ImageURL:     primary,
				DisplayOrder: 0,
			}}
			if in.AdditionalImages != nil {
				for i, url := range *in.AdditionalImages {
					images = append(images, model.ProductImage{
						ID:           u.idGen.NewID(),
						ProductID:    productID,
						ImageURL:     url,
						DisplayOrder: i + 1,
					})
				}
			}
			if err := r.Images().CreateBulk(ctx, images); err != nil {
				return err
			}
		}

		if in.Ingredients != nil {
			if err := r.Ingredients().DeleteByProductID(ctx, productID); err != nil {
				return err
			}
			if err := r.Ingredients().CreateBulk(ctx, u.ingredientRows(productID, *in.Ingredients)); err != nil {
				return err
			}
		}

		for _, lang := range sortedLangs(in.Translations) {
			t := in.Translations[lang]

			existing, err := r.Translations().FindByProductIDAndLang(ctx, productID, lang)
			switch {
			case err == nil:
				if err := r.Translations().UpdateFields(ctx, existing.ID, repo.TranslationPatch{
					Name:            t.Name,
					Description:     t.Description,
					FullDescription: t.FullDescription,
				}); err != nil {
					return err
				}
			case err == repo.ErrNotFound:
				if t.hasText() {
					if err := r.Translations().Create(ctx, model.ProductTranslation{
						ID:              u.idGen.NewID(),
						ProductID:       productID,
						Lang:            lang,
						Name:            nonEmpty(t.Name),
						Description:     nonEmpty(t.Description),
						FullDescription: nonEmpty(t.FullDescription),
					}); err != nil {
						return err
					}
				}
			default:
				return err
			}

			if t.Ingredients != nil {
				if err := r.IngredientTranslations().DeleteByProductIDAndLang(ctx, productID, lang); err != nil {
					return err
				}
				if err := r.IngredientTranslations().CreateBulk(ctx, u.ingredientTranslationRows(productID, lang, *t.Ingredients)); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err == repo.ErrDuplicateSlug {
		return NewHTTPError(http.StatusConflict, "slug already in use")
	}
	if err != nil {
		slog.Error("update product failed", "product_id", productID, "error", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// DeleteProductは子テーブル4つと親行を1トランザクションで消す。
func (u *CatalogUsecase) DeleteProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Translations().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		if err := r.Ingredients().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		if err := r.IngredientTranslations().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		if err := r.Images().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		return r.Products().Delete(ctx, productID)
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		slog.Error("delete product failed", "product_id", productID, "error", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// IsSlugAvailableはslugが未使用ならtrue。excludeIDは編集中の自分を除外する。
func (u *CatalogUsecase) IsSlugAvailable(ctx context.Context, slug string, excludeID string) (bool, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return false, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	count, err := u.products.CountBySlug(ctx, slug, excludeID)
	if err != nil {
		slog.Error("slug check failed", "slug", slug, "error", err)
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return count == 0, nil
}

func (u *CatalogUsecase) ingredientRows(productID string, ingredients []string) []model.ProductIngredient {
	rows := make([]model.ProductIngredient, 0, len(ingredients))
	for i, ing := range ingredients {
		rows = append(rows, model.ProductIngredient{
			ID:           u.idGen.NewID(),
			ProductID:    productID,
			Ingredient:   ing,
			DisplayOrder: i,
		})
	}
	return rows
}

func (u *CatalogUsecase) ingredientTranslationRows(productID string, lang string, ingredients []string) []model.IngredientTranslation {
	rows := make([]model.IngredientTranslation, 0, len(ingredients))
	for i, ing := range ingredients {
		rows = append(rows, model.IngredientTranslation{
			ID:           u.idGen.NewID(),
			ProductID:    productID,
			Lang:         lang,
			Ingredient:   ing,
			DisplayOrder: i,
		})
	}
	return rows
}

// map走査を安定させる（挿入順を決定的にする）
func sortedLangs(m map[string]TranslationInput) []string {
	langs := make([]string, 0, len(m))
	for lang := range m {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
