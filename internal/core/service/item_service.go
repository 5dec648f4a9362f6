package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/drakeshop/inventory-api/internal/core/domain"
	"github.com/drakeshop/inventory-api/internal/core/ports"
)

// ItemService enforces existence and stock-level rules on top of an ItemStore.
type ItemService struct {
	store  ports.ItemStore
	logger zerolog.Logger
}

func NewItemService(store ports.ItemStore, logger zerolog.Logger) *ItemService {
	return &ItemService{store: store, logger: logger}
}

func (s *ItemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.store.FindAll(ctx)
}

func (s *ItemService) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (s *ItemService) CreateItem(ctx context.Context, p domain.ItemPayload) (int64, error) {
	id, err := s.store.Insert(ctx, p)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int64("item_id", id).Str("name", p.Name).Msg("item created")
	return id, nil
}

func (s *ItemService) ReplaceItem(ctx context.Context, id int64, p domain.ItemPayload) error {
	n, err := s.store.Update(ctx, id, p)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *ItemService) RemoveItem(ctx context.Context, id int64) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	s.logger.Info().Int64("item_id", id).Msg("item removed")
	return nil
}

// AdjustAmount changes the stock level by delta. The non-negative check runs
// against a snapshot read from the store itself, never a cached copy; the
// write is relative to whatever the store holds at commit time, so a
// concurrent decrement between the two can still go through.
func (s *ItemService) AdjustAmount(ctx context.Context, id int64, delta int64) error {
	item, err := s.store.FindForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}

	if delta > 0 && item.Amount > math.MaxInt64-delta {
		return fmt.Errorf("%w. current: %d, requested: %d", domain.ErrAmountOutOfRange, item.Amount, delta)
	}
	if item.Amount+delta < 0 {
		return &domain.InsufficientStockError{Current: item.Amount, Requested: delta}
	}

	if err := s.store.AdjustAmount(ctx, id, delta); err != nil {
		return fmt.Errorf("adjust amount: %w", err)
	}

	s.logger.Debug().
		Int64("item_id", id).
		Int64("delta", delta).
		Int64("snapshot_amount", item.Amount).
		Msg("stock adjusted")
	return nil
}
