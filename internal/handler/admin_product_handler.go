package handler

import (
	"net/http"

	"boutique/internal/config"
	"boutique/internal/middleware"
	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// POST /admin/products のリクエストボディ
type ProductCreateRequest struct {
	Name             string                              `json:"name"`
	Slug             string                              `json:"slug"`
	Price            decimal.Decimal                     `json:"price"`
	Image            string                              `json:"image"`
	Description      string                              `json:"description"`
	FullDescription  string                              `json:"fullDescription"`
	AdditionalImages []string                            `json:"additionalImages"`
	Ingredients      []string                            `json:"ingredients"`
	Translations     map[string]usecase.TranslationInput `json:"translations"`
}

// PUT /admin/products/:id のリクエストボディ。nilのフィールドは触らない。
type ProductUpdateRequest struct {
	Name             *string                             `json:"name"`
	Slug             *string                             `json:"slug"`
	Price            *decimal.Decimal                    `json:"price"`
	Image            *string                             `json:"image"`
	Description      *string                             `json:"description"`
	FullDescription  *string                             `json:"fullDescription"`
	AdditionalImages *[]string                           `json:"additionalImages"`
	Ingredients      *[]string                           `json:"ingredients"`
	Translations     map[string]usecase.TranslationInput `json:"translations"`
}

type ProductCreateResponse struct {
	ID string `json:"id"`
}

type SlugCheckResponse struct {
	Available bool `json:"available"`
}

// /admin/products の管理API
type AdminProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.CatalogUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// adminを登録
func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg))

	admin.GET("/products", h.list)
	admin.GET("/products/check-slug", h.checkSlug)
	admin.GET("/products/:id", h.detail)
	admin.POST("/products", h.create)
	admin.PUT("/products/:id", h.update)
	admin.DELETE("/products/:id", h.delete)
}

func (h *AdminProductHandler) list(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *AdminProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:             req.Name,
		Slug:             req.Slug,
		Price:            req.Price,
		Image:            req.Image,
		Description:      req.Description,
		FullDescription:  req.FullDescription,
		AdditionalImages: req.AdditionalImages,
		Ingredients:      req.Ingredients,
		Translations:     req.Translations,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, ProductCreateResponse{ID: id})
}

func (h *AdminProductHandler) update(c echo.Context) error {
	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), usecase.UpdateProductInput{
		Name:             req.Name,
		Slug:             req.Slug,
		Price:            req.Price,
		Image:            req.Image,
		Description:      req.Description,
		FullDescription:  req.FullDescription,
		AdditionalImages: req.AdditionalImages,
		Ingredients:      req.Ingredients,
		Translations:     req.Translations,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func (h *AdminProductHandler) checkSlug(c echo.Context) error {
	slug := c.QueryParam("slug")
	excludeID := c.QueryParam("exclude")

	available, err := h.uc.IsSlugAvailable(c.Request().Context(), slug, excludeID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SlugCheckResponse{Available: available})
}
