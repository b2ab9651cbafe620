package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"
	"boutique/internal/validator"

	"github.com/shopspring/decimal"
)

// 注文確定メールを送る約束（失敗しても注文は成立）
type OrderMailer interface {
	SendOrderNotification(n OrderNotification) error
}

type OrderNotification struct {
	OrderID      string
	CustomerName string
	Email        string
	Phone        string
	City         string
	Address      string
	Total        decimal.Decimal
	Items        []OrderNotificationItem
}

type OrderNotificationItem struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

type OrderUsecase struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	tx         repo.TransactionManager
	idGen      IDGenerator
	mailer     OrderMailer
}

// DI（mailerはnil可、nilなら通知なし）
func NewOrderUsecase(
	orders repo.OrderRepository,
	orderItems repo.OrderItemRepository,
	products repo.ProductRepository,
	tx repo.TransactionManager,
	idGen IDGenerator,
	mailer OrderMailer,
) *OrderUsecase {
	return &OrderUsecase{
		orders:     orders,
		orderItems: orderItems,
		products:   products,
		tx:         tx,
		idGen:      idGen,
		mailer:     mailer,
	}
}

type PlaceOrderItemInput struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type PlaceOrderInput struct {
	CustomerName string
	Email        string
	Phone        string
	City         string
	Address      string
	Total        decimal.Decimal
	Items        []PlaceOrderItemInput
}

// PlaceOrderは注文親行とN件の明細を1トランザクションで書く。
// 単価とtotalは送信された値をそのまま記録する（カタログから再計算しない）。
// commit後の通知メールはbest-effort、失敗してもリトライしない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (string, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return "", NewHTTPError(http.StatusBadRequest, "customer name required")
	}
	if !validator.IsEmailLike(in.Email) {
		return "", NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return "", NewHTTPError(http.StatusBadRequest, "phone required")
	}
	if strings.TrimSpace(in.City) == "" {
		return "", NewHTTPError(http.StatusBadRequest, "city required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return "", NewHTTPError(http.StatusBadRequest, "address required")
	}
	if len(in.Items) == 0 {
		return "", NewHTTPError(http.StatusBadRequest, "order has no items")
	}
	if in.Total.IsNegative() {
		return "", NewHTTPError(http.StatusBadRequest, "total must be >= 0")
	}
	for _, item := range in.Items {
		if item.ProductID == "" {
			return "", NewHTTPError(http.StatusBadRequest, "invalid product id")
		}
		if item.Quantity < 1 {
			return "", NewHTTPError(http.StatusBadRequest, "quantity must be >= 1")
		}
		if item.Price.IsNegative() {
			return "", NewHTTPError(http.StatusBadRequest, "price must be >= 0")
		}
	}

	orderID, err := newOrderID()
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, model.OrderItem{
			ID:        u.idGen.NewID(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().Create(ctx, model.Order{
			ID:           orderID,
			CustomerName: in.CustomerName,
			Email:        in.Email,
			Phone:        in.Phone,
			City:         in.City,
			Address:      in.Address,
			Status:       model.OrderStatusProcessing,
			Total:        in.Total,
		}); err != nil {
			return err
		}
		return r.OrderItems().CreateBulk(ctx, orderID, items)
	})
	if err != nil {
		slog.Error("create order failed", "order_id", orderID, "error", err)
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// commitの外。注文は既に確定している。
	if u.mailer != nil {
		go u.notify(orderID, in)
	}

	return orderID, nil
}

func (u *OrderUsecase) notify(orderID string, in PlaceOrderInput) {
	items := make([]OrderNotificationItem, 0, len(in.Items))
	for _, item := range in.Items {
		name := item.ProductID
		if p, err := u.products.FindByID(context.Background(), item.ProductID); err == nil {
			name = p.Name
		}
		items = append(items, OrderNotificationItem{
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	err := u.mailer.SendOrderNotification(OrderNotification{
		OrderID:      orderID,
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		City:         in.City,
		Address:      in.Address,
		Total:        in.Total,
		Items:        items,
	})
	if err != nil {
		slog.Error("order notification failed", "order_id", orderID, "error", err)
	}
}

type OrderDetails struct {
	model.Order
	Items []repo.OrderItemDetail `json:"items"`
}

func (u *OrderUsecase) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		slog.Error("list orders failed", "error", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

func (u *OrderUsecase) GetOrderDetails(ctx context.Context, orderID string) (OrderDetails, error) {
	if orderID == "" {
		return OrderDetails{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderDetails{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		slog.Error("find order failed", "order_id", orderID, "error", err)
		return OrderDetails{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.orderItems.ListDetailedByOrderID(ctx, orderID)
	if err != nil {
		slog.Error("list order items failed", "order_id", orderID, "error", err)
		return OrderDetails{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderDetails{Order: o, Items: items}, nil
}

// processing ⇄ completed だけ許可（管理画面から両方向）。
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if orderID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if !status.Valid() {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orders.UpdateStatus(ctx, orderID, status)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		slog.Error("update order status failed", "order_id", orderID, "error", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// ORD- + 10桁hex（40bitのランダム空間、3桁連番の衝突対策）
func newOrderID() (string, error) {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "ORD-" + strings.ToUpper(hex.EncodeToString(b)), nil
}
