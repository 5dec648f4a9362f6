package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/drakeshop/inventory-api/internal/core/domain"
)

type stubItemService struct {
	listFn    func(ctx context.Context) ([]domain.Item, error)
	getFn     func(ctx context.Context, id int64) (*domain.Item, error)
	createFn  func(ctx context.Context, p domain.ItemPayload) (int64, error)
	replaceFn func(ctx context.Context, id int64, p domain.ItemPayload) error
	removeFn  func(ctx context.Context, id int64) error
	adjustFn  func(ctx context.Context, id int64, delta int64) error
}

func (s *stubItemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.listFn(ctx)
}

func (s *stubItemService) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	return s.getFn(ctx, id)
}

func (s *stubItemService) CreateItem(ctx context.Context, p domain.ItemPayload) (int64, error) {
	return s.createFn(ctx, p)
}

func (s *stubItemService) ReplaceItem(ctx context.Context, id int64, p domain.ItemPayload) error {
	return s.replaceFn(ctx, id, p)
}

func (s *stubItemService) RemoveItem(ctx context.Context, id int64) error {
	return s.removeFn(ctx, id)
}

func (s *stubItemService) AdjustAmount(ctx context.Context, id int64, delta int64) error {
	return s.adjustFn(ctx, id, delta)
}

type stubUserService struct {
	listFn    func(ctx context.Context) ([]domain.User, error)
	getFn     func(ctx context.Context, id int64) (*domain.User, error)
	createFn  func(ctx context.Context, username, password string) (int64, error)
	replaceFn func(ctx context.Context, id int64, username, password string) error
	removeFn  func(ctx context.Context, id int64) error
	loginFn   func(ctx context.Context, username, password string) (string, error)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) CreateUser(ctx context.Context, username, password string) (int64, error) {
	return s.createFn(ctx, username, password)
}

func (s *stubUserService) ReplaceUser(ctx context.Context, id int64, username, password string) error {
	return s.replaceFn(ctx, id, username, password)
}

func (s *stubUserService) RemoveUser(ctx context.Context, id int64) error {
	return s.removeFn(ctx, id)
}

func (s *stubUserService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

// newContext builds an echo context with the validator installed. id, when
// non-empty, is set as the :id path parameter.
func newContext(method, target, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

// assertHTTPError fails unless err is an *echo.HTTPError with the given code.
func assertHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d (%v)", code, he.Code, he.Message)
	}
	return he
}
