package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"testing"
	"time"
)

// 管理セッションcookieをjarで持ち回すクライアント
type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New failed: %v", err)
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// 公開・管理共通の商品集約
type Product struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Slug            string                 `json:"slug"`
	Price           string                 `json:"price"`
	Image           string                 `json:"image"`
	Images          []string               `json:"images"`
	Description     string                 `json:"description"`
	FullDescription string                 `json:"fullDescription"`
	Ingredients     []string               `json:"ingredients"`
	Translations    map[string]Translation `json:"translations"`
}

type Translation struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	FullDescription *string  `json:"fullDescription"`
	Ingredients     []string `json:"ingredients"`
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	Status       string      `json:"status"`
	Total        string      `json:"total"`
	Items        []OrderItem `json:"items"`
}

type OrderItem struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	ProductName string `json:"productName"`
}

type Subscriber struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type DashboardStats struct {
	TotalProducts     int64        `json:"totalProducts"`
	TotalOrders       int64        `json:"totalOrders"`
	TotalSubscribers  int64        `json:"totalSubscribers"`
	PageViews         int64        `json:"pageViews"`
	RecentOrders      []Order      `json:"recentOrders"`
	RecentSubscribers []Subscriber `json:"recentSubscribers"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal failed: %v body=%s", err, string(body))
	}
	return v
}

// 管理者でログイン。セッションcookieはjarに入る。
func adminLogin(t *testing.T, c *TestClient, ctx context.Context) {
	t.Helper()

	username := os.Getenv("TEST_ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("TEST_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	reqJSON, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		t.Fatalf("json.Marshal(login) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/admin/login", reqJSON)
	requireStatus(t, resp, http.StatusOK, body)
	_ = mustDecode[SuccessResponse](t, body)
}

// ユニークslug用のサフィックス
func uniqueSuffix() string {
	return time.Now().Format("20060102-150405.000000000")
}
