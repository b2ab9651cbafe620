package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func Test_Newsletter_SubscribeAndAdminDelete(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()
	adminLogin(t, c, ctx)

	email := "e2e-" + uniqueSuffix() + "@example.com"

	reqJSON, _ := json.Marshal(map[string]string{"email": email})
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/newsletter/subscribe", reqJSON)
	requireStatus(t, resp, http.StatusOK, body)

	// 管理一覧に出ること
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/admin/subscribers", nil)
	requireStatus(t, resp, http.StatusOK, body)
	subscribers := mustDecode[[]Subscriber](t, body)

	var subscriberID string
	for _, s := range subscribers {
		if s.Email == email {
			subscriberID = s.ID
			break
		}
	}
	if subscriberID == "" {
		t.Fatalf("subscriber not found: %s", email)
	}

	// 削除して消えること
	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/admin/subscribers/"+subscriberID, nil)
	requireStatus(t, resp, http.StatusOK, body)

	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/admin/subscribers/"+subscriberID, nil)
	requireStatus(t, resp, http.StatusNotFound, body)
}

func Test_Newsletter_InvalidEmail(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	reqJSON, _ := json.Marshal(map[string]string{"email": "not-an-email"})
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/newsletter/subscribe", reqJSON)
	requireStatus(t, resp, http.StatusBadRequest, body)
}
