package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

type placeOrderRequest struct {
	CustomerName string           `json:"customerName"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	City         string           `json:"city"`
	Address      string           `json:"address"`
	Total        float64          `json:"total"`
	Items        []orderItemInput `json:"items"`
}

type orderItemInput struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ストアフロントから注文してorderIdを返す（認証なし）
func placeOrder(t *testing.T, c *TestClient, ctx context.Context, productID string) string {
	t.Helper()

	req := placeOrderRequest{
		CustomerName: "Amina K",
		Email:        "amina@example.com",
		Phone:        "0600000000",
		City:         "Casablanca",
		Address:      "12 Rue des Fleurs",
		// 明細合計(99.98)とは一致しない値。再計算されないことの確認に使う
		Total:        123.45,
		Items: []orderItemInput{
			{ProductID: productID, Quantity: 2, Price: 49.99},
		},
	}
	reqJSON, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal(placeOrderRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/orders", reqJSON)
	requireStatus(t, resp, http.StatusCreated, body)

	var out struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("json.Unmarshal(order resp) failed: %v body=%s", err, string(body))
	}
	if !strings.HasPrefix(out.OrderID, "ORD-") {
		t.Fatalf("unexpected order id: %s", out.OrderID)
	}
	return out.OrderID
}

func Test_Orders_PlaceAndAdminFlow(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()
	adminLogin(t, c, ctx)

	slug := "e2e-order-product-" + uniqueSuffix()
	productID := createProduct(t, c, ctx, slug)
	defer deleteProduct(t, c, ctx, productID)

	orderID := placeOrder(t, c, ctx, productID)

	// 管理一覧に出ること
	resp, body := c.doJSON(ctx, t, http.MethodGet, "/admin/orders", nil)
	requireStatus(t, resp, http.StatusOK, body)
	orders := mustDecode[[]Order](t, body)
	found := false
	for _, o := range orders {
		if o.ID == orderID {
			found = true
			// 送信したtotalがそのまま記録されること（明細合計99.98に再計算されない）
			if o.Total != "123.45" {
				t.Fatalf("total mismatch: %s", o.Total)
			}
			if o.Status != "processing" {
				t.Fatalf("initial status should be processing: %s", o.Status)
			}
			break
		}
	}
	if !found {
		t.Fatalf("order not in admin list: %s", orderID)
	}

	// 詳細は明細つき、product名がJOINされていること
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/admin/orders/"+orderID, nil)
	requireStatus(t, resp, http.StatusOK, body)
	detail := mustDecode[Order](t, body)
	if len(detail.Items) != 1 || detail.Items[0].Quantity != 2 {
		t.Fatalf("items mismatch: %+v", detail.Items)
	}
	if detail.Items[0].ProductName == "" {
		t.Fatalf("productName should be joined")
	}

	// processing → completed → processing
	for _, status := range []string{"completed", "processing"} {
		reqJSON, _ := json.Marshal(map[string]string{"status": status})
		resp, body = c.doJSON(ctx, t, http.MethodPut, "/admin/orders/"+orderID+"/status", reqJSON)
		requireStatus(t, resp, http.StatusOK, body)

		resp, body = c.doJSON(ctx, t, http.MethodGet, "/admin/orders/"+orderID, nil)
		requireStatus(t, resp, http.StatusOK, body)
		detail = mustDecode[Order](t, body)
		if detail.Status != status {
			t.Fatalf("status should be %s, got %s", status, detail.Status)
		}
	}

	// 不正なstatusは400
	reqJSON, _ := json.Marshal(map[string]string{"status": "shipped"})
	resp, body = c.doJSON(ctx, t, http.MethodPut, "/admin/orders/"+orderID+"/status", reqJSON)
	requireStatus(t, resp, http.StatusBadRequest, body)
}

func Test_Orders_Validation(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	// itemsなし
	req := placeOrderRequest{
		CustomerName: "Amina K",
		Email:        "amina@example.com",
		Phone:        "0600000000",
		City:         "Casablanca",
		Address:      "12 Rue des Fleurs",
	}
	reqJSON, _ := json.Marshal(req)
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/orders", reqJSON)
	requireStatus(t, resp, http.StatusBadRequest, body)

	// 不正なメール
	req.Items = []orderItemInput{{ProductID: "p1", Quantity: 1, Price: 10}}
	req.Email = "not-an-email"
	reqJSON, _ = json.Marshal(req)
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/orders", reqJSON)
	requireStatus(t, resp, http.StatusBadRequest, body)
}
