package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drakeshop/inventory-api/internal/core/domain"
)

// ItemStore implements ports.ItemStore using MongoDB.
type ItemStore struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewItemStore(db *mongo.Database) *ItemStore {
	return &ItemStore{
		col:      db.Collection(itemsCollection),
		counters: db.Collection(countersCollection),
	}
}

func (s *ItemStore) FindAll(ctx context.Context) ([]domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}

	items := []domain.Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

func (s *ItemStore) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var it domain.Item
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&it)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return &it, nil
}

func (s *ItemStore) FindForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	return s.FindByID(ctx, id)
}

func (s *ItemStore) Insert(ctx context.Context, p domain.ItemPayload) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, s.counters, itemsCollection)
	if err != nil {
		return 0, err
	}

	doc := domain.Item{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Amount:      p.Amount,
	}
	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return 0, fmt.Errorf("insert item: %w", err)
	}
	return id, nil
}

func (s *ItemStore) Update(ctx context.Context, id int64, p domain.ItemPayload) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image_url":   p.ImageURL,
		"amount":      p.Amount,
	}}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, fmt.Errorf("update item: %w", err)
	}
	return res.MatchedCount, nil
}

func (s *ItemStore) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	return res.DeletedCount, nil
}

// AdjustAmount applies delta with $inc so concurrent adjustments compose.
func (s *ItemStore) AdjustAmount(ctx context.Context, id int64, delta int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"amount": delta}})
	if err != nil {
		return fmt.Errorf("adjust item amount: %w", err)
	}
	return nil
}
