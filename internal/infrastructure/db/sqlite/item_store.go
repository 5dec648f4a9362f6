package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/drakeshop/inventory-api/internal/core/domain"
)

const itemColumns = `id, name, description, price, image_url, amount`

// ItemStore implements ports.ItemStore on SQLite.
type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

func (s *ItemStore) FindAll(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM item ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.ImageURL, &it.Amount); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *ItemStore) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	it := &domain.Item{}
	err := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM item WHERE id = ?`, id,
	).Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.ImageURL, &it.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return it, nil
}

// FindForUpdate is FindByID; nothing sits between this store and the database.
func (s *ItemStore) FindForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	return s.FindByID(ctx, id)
}

func (s *ItemStore) Insert(ctx context.Context, p domain.ItemPayload) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO item (name, description, price, image_url, amount) VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.Price, p.ImageURL, p.Amount,
	)
	if err != nil {
		return 0, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting item id: %w", err)
	}
	return id, nil
}

func (s *ItemStore) Update(ctx context.Context, id int64, p domain.ItemPayload) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE item
		    SET name = ?, description = ?, price = ?, image_url = ?, amount = ?
		  WHERE id = ?`,
		p.Name, p.Description, p.Price, p.ImageURL, p.Amount, id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating item: %w", err)
	}
	return rowsAffected(result, "updating item")
}

func (s *ItemStore) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM item WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting item: %w", err)
	}
	return rowsAffected(result, "deleting item")
}

func (s *ItemStore) AdjustAmount(ctx context.Context, id int64, delta int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE item SET amount = amount + ? WHERE id = ?`,
		delta, id,
	)
	if err != nil {
		return fmt.Errorf("adjusting item amount: %w", err)
	}
	return nil
}

func rowsAffected(result sql.Result, op string) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: rows affected: %w", op, err)
	}
	return n, nil
}
