package ports

import (
	"context"

	"github.com/drakeshop/inventory-api/internal/core/domain"
)

// ItemService defines use-case operations for catalog items.
type ItemService interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	CreateItem(ctx context.Context, p domain.ItemPayload) (int64, error)
	ReplaceItem(ctx context.Context, id int64, p domain.ItemPayload) error
	RemoveItem(ctx context.Context, id int64) error
	AdjustAmount(ctx context.Context, id int64, delta int64) error
}
