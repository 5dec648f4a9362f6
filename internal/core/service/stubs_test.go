package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/drakeshop/inventory-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Item store stub
// ---------------------------------------------------------------------------

type stubItemStore struct {
	items     map[int64]domain.Item
	nextID    int64
	err       error
	cached    map[int64]domain.Item // served by FindByID in place of items
	lockReads int                   // FindForUpdate calls
	adjusted  []int64               // deltas passed to AdjustAmount
	beforeAdj func()                // runs between the service's read and its write
}

func newStubItemStore() *stubItemStore {
	return &stubItemStore{items: make(map[int64]domain.Item)}
}

func (s *stubItemStore) FindAll(_ context.Context) ([]domain.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubItemStore) FindByID(_ context.Context, id int64) (*domain.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	if it, ok := s.cached[id]; ok {
		return &it, nil
	}
	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (s *stubItemStore) FindForUpdate(_ context.Context, id int64) (*domain.Item, error) {
	s.lockReads++
	if s.err != nil {
		return nil, s.err
	}
	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (s *stubItemStore) Insert(_ context.Context, p domain.ItemPayload) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.nextID++
	s.items[s.nextID] = itemFromPayload(s.nextID, p)
	return s.nextID, nil
}

func (s *stubItemStore) Update(_ context.Context, id int64, p domain.ItemPayload) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.items[id]; !ok {
		return 0, nil
	}
	s.items[id] = itemFromPayload(id, p)
	return 1, nil
}

func (s *stubItemStore) Delete(_ context.Context, id int64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.items[id]; !ok {
		return 0, nil
	}
	delete(s.items, id)
	return 1, nil
}

func (s *stubItemStore) AdjustAmount(_ context.Context, id int64, delta int64) error {
	if s.beforeAdj != nil {
		s.beforeAdj()
	}
	if s.err != nil {
		return s.err
	}
	it := s.items[id]
	it.Amount += delta
	s.items[id] = it
	s.adjusted = append(s.adjusted, delta)
	return nil
}

func itemFromPayload(id int64, p domain.ItemPayload) domain.Item {
	return domain.Item{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Amount:      p.Amount,
	}
}

// ---------------------------------------------------------------------------
// User store stub
// ---------------------------------------------------------------------------

type stubUserStore struct {
	users  map[int64]domain.User
	nextID int64
	err    error
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[int64]domain.User)}
}

func (s *stubUserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Username == username {
			clone := u
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *stubUserStore) FindAll(_ context.Context) ([]domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubUserStore) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *stubUserStore) Insert(_ context.Context, rec domain.UserRecord) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.nextID++
	s.users[s.nextID] = domain.User{ID: s.nextID, Username: rec.Username, PasswordHash: rec.PasswordHash}
	return s.nextID, nil
}

func (s *stubUserStore) Update(_ context.Context, id int64, rec domain.UserRecord) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	s.users[id] = domain.User{ID: id, Username: rec.Username, PasswordHash: rec.PasswordHash}
	return 1, nil
}

func (s *stubUserStore) Delete(_ context.Context, id int64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	return 1, nil
}

// ---------------------------------------------------------------------------
// Issuer stub
// ---------------------------------------------------------------------------

type stubIssuer struct {
	issued []time.Duration
	err    error
}

func (i *stubIssuer) Issue(ttl time.Duration) (string, error) {
	if i.err != nil {
		return "", i.err
	}
	i.issued = append(i.issued, ttl)
	return "token-" + ttl.String(), nil
}

func (i *stubIssuer) Verify(string) error { return errors.New("not implemented") }
