package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"
	"boutique/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) PickRandom(ctx context.Context, excludeID string, limit int) ([]model.Product, error) {
	args := m.Called(ctx, excludeID, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) UpdateFields(ctx context.Context, id string, patch repo.ProductPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ImageRepoMock struct{ mock.Mock }

func (m *ImageRepoMock) ListByProductID(ctx context.Context, productID string) ([]model.ProductImage, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.ProductImage)
	return items, args.Error(1)
}

func (m *ImageRepoMock) CreateBulk(ctx context.Context, images []model.ProductImage) error {
	args := m.Called(ctx, images)
	return args.Error(0)
}

func (m *ImageRepoMock) DeleteByProductID(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type IngredientRepoMock struct{ mock.Mock }

func (m *IngredientRepoMock) ListByProductID(ctx context.Context, productID string) ([]model.ProductIngredient, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.ProductIngredient)
	return items, args.Error(1)
}

func (m *IngredientRepoMock) CreateBulk(ctx context.Context, ingredients []model.ProductIngredient) error {
	args := m.Called(ctx, ingredients)
	return args.Error(0)
}

func (m *IngredientRepoMock) DeleteByProductID(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type TranslationRepoMock struct{ mock.Mock }

func (m *TranslationRepoMock) ListByProductID(ctx context.Context, productID string) ([]model.ProductTranslation, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.ProductTranslation)
	return items, args.Error(1)
}

func (m *TranslationRepoMock) FindByProductIDAndLang(ctx context.Context, productID string, lang string) (model.ProductTranslation, error) {
	args := m.Called(ctx, productID, lang)
	t, _ := args.Get(0).(model.ProductTranslation)
	return t, args.Error(1)
}

func (m *TranslationRepoMock) Create(ctx context.Context, t model.ProductTranslation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TranslationRepoMock) UpdateFields(ctx context.Context, id string, patch repo.TranslationPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *TranslationRepoMock) DeleteByProductID(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type IngredientTranslationRepoMock struct{ mock.Mock }

func (m *IngredientTranslationRepoMock) ListByProductID(ctx context.Context, productID string) ([]model.IngredientTranslation, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.IngredientTranslation)
	return items, args.Error(1)
}

func (m *IngredientTranslationRepoMock) CreateBulk(ctx context.Context, rows []model.IngredientTranslation) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *IngredientTranslationRepoMock) DeleteByProductID(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *IngredientTranslationRepoMock) DeleteByProductIDAndLang(ctx context.Context, productID string, lang string) error {
	args := m.Called(ctx, productID, lang)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) ListDetailedByOrderID(ctx context.Context, orderID string) ([]repo.OrderItemDetail, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]repo.OrderItemDetail)
	return items, args.Error(1)
}

type SubscriberRepoMock struct{ mock.Mock }

func (m *SubscriberRepoMock) ListAll(ctx context.Context) ([]model.Subscriber, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Subscriber)
	return items, args.Error(1)
}

func (m *SubscriberRepoMock) ListRecent(ctx context.Context, limit int) ([]model.Subscriber, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Subscriber)
	return items, args.Error(1)
}

func (m *SubscriberRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SubscriberRepoMock) Create(ctx context.Context, s model.Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SubscriberRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ViewCounterRepoMock struct{ mock.Mock }

func (m *ViewCounterRepoMock) Increment(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ViewCounterRepoMock) Get(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Txスタブ（即時実行）
// =====================

type txReposStub struct {
	products               repo.ProductRepository
	images                 repo.ProductImageRepository
	ingredients            repo.ProductIngredientRepository
	translations           repo.ProductTranslationRepository
	ingredientTranslations repo.IngredientTranslationRepository
	orders                 repo.OrderRepository
	orderItems             repo.OrderItemRepository
}

func (s *txReposStub) Products() repo.ProductRepository { return s.products }
func (s *txReposStub) Images() repo.ProductImageRepository {
	return s.images
}
func (s *txReposStub) Ingredients() repo.ProductIngredientRepository { return s.ingredients }
func (s *txReposStub) Translations() repo.ProductTranslationRepository {
	return s.translations
}
func (s *txReposStub) IngredientTranslations() repo.IngredientTranslationRepository {
	return s.ingredientTranslations
}
func (s *txReposStub) Orders() repo.OrderRepository         { return s.orders }
func (s *txReposStub) OrderItems() repo.OrderItemRepository { return s.orderItems }

// 関数をそのまま実行するだけのTransactionManager
type txManagerStub struct {
	repos txReposStub
}

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(&m.repos)
}

// =====================
// helpers
// =====================

// 連番ID（id-1, id-2, ...）
type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()

	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, status, he.Status)
}

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
