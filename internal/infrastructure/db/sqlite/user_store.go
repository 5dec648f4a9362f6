package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/drakeshop/inventory-api/internal/core/domain"
)

// UserStore implements ports.UserStore on SQLite.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findOne(ctx, `SELECT id, username, password_hash FROM "user" WHERE username = ?`, username)
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.findOne(ctx, `SELECT id, username, password_hash FROM "user" WHERE id = ?`, id)
}

func (s *UserStore) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	u := &domain.User{}
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

func (s *UserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, password_hash FROM "user" ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *UserStore) Insert(ctx context.Context, rec domain.UserRecord) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO "user" (username, password_hash) VALUES (?, ?)`,
		rec.Username, rec.PasswordHash,
	)
	if err != nil {
		return 0, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting user id: %w", err)
	}
	return id, nil
}

func (s *UserStore) Update(ctx context.Context, id int64, rec domain.UserRecord) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE "user" SET username = ?, password_hash = ? WHERE id = ?`,
		rec.Username, rec.PasswordHash, id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating user: %w", err)
	}
	return rowsAffected(result, "updating user")
}

func (s *UserStore) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM "user" WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting user: %w", err)
	}
	return rowsAffected(result, "deleting user")
}
