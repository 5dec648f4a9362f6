package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drakeshop/inventory-api/internal/api/metrics"
	"github.com/drakeshop/inventory-api/internal/core/domain"
	"github.com/drakeshop/inventory-api/internal/core/ports"
)

// ItemHandler handles HTTP requests for catalog items.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// List handles GET /api/items.
//
// @Summary      List items
// @Tags         items
// @Produce      json
// @Success      200  {array}   domain.Item
// @Failure      500  {object}  errorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/items/:id.
//
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item id"
// @Success      200  {object}  domain.Item
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.service.GetItem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/items.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  itemRequest  true  "Item"
// @Success      201
// @Header       201  {string}  Location  "/api/items/{id}"
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.CreateItem(c.Request().Context(), req.toPayload())
	if err != nil {
		return err
	}
	metrics.ItemsCreatedTotal.Inc()

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/items/%d", id))
	return c.NoContent(http.StatusCreated)
}

// Replace handles PUT /api/items/:id.
//
// @Summary      Replace an item
// @Tags         items
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int          true  "Item id"
// @Param        body  body  itemRequest  true  "Item"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Replace(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.ReplaceItem(c.Request().Context(), id, req.toPayload()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Remove handles DELETE /api/items/:id.
//
// @Summary      Delete an item
// @Tags         items
// @Security     BearerAuth
// @Param        id  path  int  true  "Item id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveItem(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AdjustAmount handles PATCH /api/items/:id. The body amount is added to the
// current stock; negative values remove stock.
//
// @Summary      Adjust item stock
// @Tags         items
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                  true  "Item id"
// @Param        body  body  adjustAmountRequest  true  "Signed delta"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/items/{id} [patch]
func (h *ItemHandler) AdjustAmount(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req adjustAmountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.service.AdjustAmount(c.Request().Context(), id, *req.Amount)
	metrics.StockAdjustmentsTotal.WithLabelValues(adjustResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func adjustResult(err error) string {
	switch {
	case err == nil:
		return "applied"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAmountOutOfRange):
		return "out_of_range"
	default:
		return "error"
	}
}
