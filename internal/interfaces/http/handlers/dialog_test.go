// internal/interfaces/http/handlers/dialog_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/dialog"
	"github.com/gin-gonic/gin"
)

func newDialogRouter(sessionID string) (*gin.Engine, *DialogHandler) {
	gin.SetMode(gin.TestMode)

	handler := NewDialogHandler(dialog.NewBroker(), &config.Config{})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", sessionID)
		c.Next()
	})
	r.GET("/dialog", handler.GetActive)
	r.POST("/dialog/alerts", handler.ShowAlert)
	r.POST("/dialog/confirms", handler.ShowConfirm)
	r.POST("/dialog/resolve", handler.Resolve)
	r.DELETE("/dialog", handler.Dismiss)

	return r, handler
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAlertLifecycle(t *testing.T) {
	r, _ := newDialogRouter("session-a")

	w := doJSON(t, r, http.MethodPost, "/dialog/alerts", `{"message":"saved","variant":"success"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("open alert: got status %d, want %d", w.Code, http.StatusCreated)
	}

	var created struct {
		Data dialog.Request `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode alert response: %v", err)
	}
	if created.Data.ID == "" {
		t.Fatal("open alert: missing request id")
	}
	if created.Data.Kind != dialog.KindAlert {
		t.Fatalf("open alert: got kind %q, want %q", created.Data.Kind, dialog.KindAlert)
	}

	// A second request while the alert is open is rejected.
	w = doJSON(t, r, http.MethodPost, "/dialog/alerts", `{"message":"again"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("second alert: got status %d, want %d", w.Code, http.StatusConflict)
	}

	// Resolving with a stale id is rejected.
	w = doJSON(t, r, http.MethodPost, "/dialog/resolve", `{"request_id":"bogus","decision":true}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("stale resolve: got status %d, want %d", w.Code, http.StatusConflict)
	}

	// Acknowledge with the real id.
	w = doJSON(t, r, http.MethodPost, "/dialog/resolve", `{"request_id":"`+created.Data.ID+`","decision":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("resolve: got status %d, want %d", w.Code, http.StatusOK)
	}

	// The slot is now free.
	w = doJSON(t, r, http.MethodGet, "/dialog", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get active: got status %d, want %d", w.Code, http.StatusOK)
	}
	var active struct {
		Data *dialog.Request `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &active); err != nil {
		t.Fatalf("decode active response: %v", err)
	}
	if active.Data != nil {
		t.Fatalf("get active after resolve: got %+v, want nil", active.Data)
	}
}

func TestResolveWithoutActiveDialog(t *testing.T) {
	r, _ := newDialogRouter("session-b")

	w := doJSON(t, r, http.MethodPost, "/dialog/resolve", `{"request_id":"anything"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestConfirmLongPoll(t *testing.T) {
	r, handler := newDialogRouter("session-c")

	type pollResult struct {
		code int
		body []byte
	}
	results := make(chan pollResult, 1)

	go func() {
		w := doJSON(t, r, http.MethodPost, "/dialog/confirms", `{"message":"remove item?","confirm_text":"Remove","variant":"danger"}`)
		results <- pollResult{code: w.Code, body: w.Body.Bytes()}
	}()

	// Wait for the confirm to become the active request.
	var req *dialog.Request
	deadline := time.Now().Add(2 * time.Second)
	for req == nil {
		if time.Now().After(deadline) {
			t.Fatal("confirm never became active")
		}
		req = handler.broker.Active("session-c")
		if req == nil {
			time.Sleep(5 * time.Millisecond)
		}
	}

	w := doJSON(t, r, http.MethodPost, "/dialog/resolve", `{"request_id":"`+req.ID+`","decision":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("resolve confirm: got status %d, want %d", w.Code, http.StatusOK)
	}

	res := <-results
	if res.code != http.StatusOK {
		t.Fatalf("confirm poll: got status %d, want %d", res.code, http.StatusOK)
	}

	var decoded struct {
		Data struct {
			Confirmed bool `json:"confirmed"`
		} `json:"data"`
	}
	if err := json.Unmarshal(res.body, &decoded); err != nil {
		t.Fatalf("decode confirm response: %v", err)
	}
	if !decoded.Data.Confirmed {
		t.Fatal("confirm poll: got confirmed=false, want true")
	}
}

func TestDismissResolvesConfirmToFalse(t *testing.T) {
	r, handler := newDialogRouter("session-d")

	type pollResult struct {
		code int
		body []byte
	}
	results := make(chan pollResult, 1)

	go func() {
		w := doJSON(t, r, http.MethodPost, "/dialog/confirms", `{"message":"clear cart?"}`)
		results <- pollResult{code: w.Code, body: w.Body.Bytes()}
	}()

	deadline := time.Now().Add(2 * time.Second)
	for handler.broker.Active("session-d") == nil {
		if time.Now().After(deadline) {
			t.Fatal("confirm never became active")
		}
		time.Sleep(5 * time.Millisecond)
	}

	w := doJSON(t, r, http.MethodDelete, "/dialog", "")
	if w.Code != http.StatusOK {
		t.Fatalf("dismiss: got status %d, want %d", w.Code, http.StatusOK)
	}

	res := <-results
	if res.code != http.StatusOK {
		t.Fatalf("confirm poll after dismiss: got status %d, want %d", res.code, http.StatusOK)
	}

	var decoded struct {
		Data struct {
			Confirmed bool `json:"confirmed"`
		} `json:"data"`
	}
	if err := json.Unmarshal(res.body, &decoded); err != nil {
		t.Fatalf("decode confirm response: %v", err)
	}
	if decoded.Data.Confirmed {
		t.Fatal("confirm poll after dismiss: got confirmed=true, want false")
	}
}
