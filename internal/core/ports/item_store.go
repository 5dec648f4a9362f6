package ports

import (
	"context"

	"github.com/drakeshop/inventory-api/internal/core/domain"
)

// ItemStore defines persistence operations for catalog items.
type ItemStore interface {
	// FindAll returns every item ordered by id ascending.
	FindAll(ctx context.Context) ([]domain.Item, error)
	// FindByID returns nil and no error when the item does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Item, error)
	// FindForUpdate reads the row from the system of record, skipping any
	// cache in front of it. Same nil semantics as FindByID.
	FindForUpdate(ctx context.Context, id int64) (*domain.Item, error)
	Insert(ctx context.Context, p domain.ItemPayload) (int64, error)
	// Update replaces every field and reports the number of affected rows.
	Update(ctx context.Context, id int64, p domain.ItemPayload) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	// AdjustAmount applies delta relative to the stored amount in a single
	// atomic write.
	AdjustAmount(ctx context.Context, id int64, delta int64) error
}
