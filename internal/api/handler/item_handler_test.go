package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/drakeshop/inventory-api/internal/api/metrics"
	"github.com/drakeshop/inventory-api/internal/core/domain"
)

const validItem = `{"name":"Drake","description":"En förödande varelse!","price":14.9,"imageUrl":"No url","amount":100}`

func TestItemHandler_List(t *testing.T) {
	stub := &stubItemService{
		listFn: func(ctx context.Context) ([]domain.Item, error) {
			return []domain.Item{{ID: 1, Name: "Drake", ImageURL: "No url", Amount: 100}}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/items", "", "")

	if err := NewItemHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 1 || items[0]["imageUrl"] != "No url" || items[0]["amount"] != float64(100) {
		t.Fatalf("unexpected payload: %+v", items)
	}
}

func TestItemHandler_Get_NotFound(t *testing.T) {
	stub := &stubItemService{
		getFn: func(ctx context.Context, id int64) (*domain.Item, error) {
			if id != 42 {
				t.Fatalf("unexpected id %d", id)
			}
			return nil, domain.ErrItemNotFound
		},
	}
	c, _ := newContext(http.MethodGet, "/api/items/42", "", "42")

	err := NewItemHandler(stub).Get(c)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemHandler_Get_InvalidID(t *testing.T) {
	stub := &stubItemService{
		getFn: func(ctx context.Context, id int64) (*domain.Item, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		c, _ := newContext(http.MethodGet, "/api/items/"+id, "", id)
		assertHTTPError(t, NewItemHandler(stub).Get(c), http.StatusBadRequest)
	}
}

func TestItemHandler_Create_Success(t *testing.T) {
	stub := &stubItemService{
		createFn: func(ctx context.Context, p domain.ItemPayload) (int64, error) {
			want := domain.ItemPayload{
				Name:        "Drake",
				Description: "En förödande varelse!",
				Price:       14.9,
				ImageURL:    "No url",
				Amount:      100,
			}
			if p != want {
				t.Fatalf("unexpected payload: %+v", p)
			}
			return 7, nil
		},
	}
	before := testutil.ToFloat64(metrics.ItemsCreatedTotal)
	c, rec := newContext(http.MethodPost, "/api/items", validItem, "")

	if err := NewItemHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/api/items/7" {
		t.Fatalf("unexpected Location %q", loc)
	}
	if got := testutil.ToFloat64(metrics.ItemsCreatedTotal) - before; got != 1 {
		t.Fatalf("expected items_created_total to grow by 1, got %v", got)
	}
}

func TestItemHandler_Create_ZeroPriceAndAmount(t *testing.T) {
	stub := &stubItemService{
		createFn: func(ctx context.Context, p domain.ItemPayload) (int64, error) {
			if p.Price != 0 || p.Amount != 0 {
				t.Fatalf("unexpected payload: %+v", p)
			}
			return 1, nil
		},
	}
	body := `{"name":"Free","description":"d","price":0,"imageUrl":"u","amount":0}`
	c, rec := newContext(http.MethodPost, "/api/items", body, "")

	if err := NewItemHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestItemHandler_Create_Validation(t *testing.T) {
	stub := &stubItemService{
		createFn: func(ctx context.Context, p domain.ItemPayload) (int64, error) {
			t.Fatalf("should not be called")
			return 0, nil
		},
	}

	cases := map[string]struct {
		body string
		want string
	}{
		"not json":         {body: "not-json", want: "invalid payload"},
		"missing price":    {body: `{"name":"a","description":"d","imageUrl":"u","amount":1}`, want: "price is required"},
		"negative amount":  {body: `{"name":"a","description":"d","price":1,"imageUrl":"u","amount":-1}`, want: "amount must be greater than or equal to 0"},
		"negative price":   {body: `{"name":"a","description":"d","price":-0.5,"imageUrl":"u","amount":1}`, want: "price must be greater than or equal to 0"},
		"fractional stock": {body: `{"name":"a","description":"d","price":1,"imageUrl":"u","amount":1.5}`, want: "invalid payload"},
		"name too long": {
			body: fmt.Sprintf(`{"name":%q,"description":"d","price":1,"imageUrl":"u","amount":1}`, strings.Repeat("x", 101)),
			want: "name must be at most 100 characters",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, "/api/items", tc.body, "")
			he := assertHTTPError(t, NewItemHandler(stub).Create(c), http.StatusBadRequest)
			if msg, _ := he.Message.(string); !strings.Contains(msg, tc.want) {
				t.Fatalf("expected message containing %q, got %q", tc.want, msg)
			}
		})
	}
}

func TestItemHandler_Replace(t *testing.T) {
	called := false
	stub := &stubItemService{
		replaceFn: func(ctx context.Context, id int64, p domain.ItemPayload) error {
			called = true
			if id != 3 || p.Name != "Drake" {
				t.Fatalf("unexpected args: %d %+v", id, p)
			}
			return nil
		},
	}
	c, rec := newContext(http.MethodPut, "/api/items/3", validItem, "3")

	if err := NewItemHandler(stub).Replace(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 after replace, got %d (called=%v)", rec.Code, called)
	}
}

func TestItemHandler_Remove_NotFound(t *testing.T) {
	stub := &stubItemService{
		removeFn: func(ctx context.Context, id int64) error {
			return domain.ErrItemNotFound
		},
	}
	c, _ := newContext(http.MethodDelete, "/api/items/9", "", "9")

	if err := NewItemHandler(stub).Remove(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestItemHandler_AdjustAmount(t *testing.T) {
	var gotDelta int64
	stub := &stubItemService{
		adjustFn: func(ctx context.Context, id int64, delta int64) error {
			gotDelta = delta
			return nil
		},
	}
	before := testutil.ToFloat64(metrics.StockAdjustmentsTotal.WithLabelValues("applied"))
	c, rec := newContext(http.MethodPatch, "/api/items/1", `{"amount":-3}`, "1")

	if err := NewItemHandler(stub).AdjustAmount(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotDelta != -3 {
		t.Fatalf("expected delta -3, got %d", gotDelta)
	}
	if got := testutil.ToFloat64(metrics.StockAdjustmentsTotal.WithLabelValues("applied")) - before; got != 1 {
		t.Fatalf("expected applied counter to grow by 1, got %v", got)
	}
}

func TestItemHandler_AdjustAmount_Insufficient(t *testing.T) {
	stub := &stubItemService{
		adjustFn: func(ctx context.Context, id int64, delta int64) error {
			return &domain.InsufficientStockError{Current: 100, Requested: delta}
		},
	}
	before := testutil.ToFloat64(metrics.StockAdjustmentsTotal.WithLabelValues("insufficient"))
	c, _ := newContext(http.MethodPatch, "/api/items/1", `{"amount":-150}`, "1")

	err := NewItemHandler(stub).AdjustAmount(c)
	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) || stockErr.Requested != -150 {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
	if got := testutil.ToFloat64(metrics.StockAdjustmentsTotal.WithLabelValues("insufficient")) - before; got != 1 {
		t.Fatalf("expected insufficient counter to grow by 1, got %v", got)
	}
}

func TestItemHandler_AdjustAmount_MissingAmount(t *testing.T) {
	stub := &stubItemService{
		adjustFn: func(ctx context.Context, id int64, delta int64) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	c, _ := newContext(http.MethodPatch, "/api/items/1", `{}`, "1")

	assertHTTPError(t, NewItemHandler(stub).AdjustAmount(c), http.StatusBadRequest)
}

func TestAdjustResult(t *testing.T) {
	cases := map[string]error{
		"applied":      nil,
		"insufficient": &domain.InsufficientStockError{Current: 1, Requested: -2},
		"not_found":    domain.ErrItemNotFound,
		"out_of_range": fmt.Errorf("%w. current: 5", domain.ErrAmountOutOfRange),
		"error":        errors.New("disk full"),
	}
	for want, err := range cases {
		if got := adjustResult(err); got != want {
			t.Fatalf("adjustResult(%v) = %q, want %q", err, got, want)
		}
	}
}
