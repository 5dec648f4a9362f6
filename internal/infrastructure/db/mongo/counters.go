package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type sequence struct {
	Seq int64 `bson:"seq"`
}

// nextID returns the next value of the named sequence. Sequences start at 1
// and are created on first use.
func nextID(ctx context.Context, counters *mongo.Collection, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var s sequence
	err := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&s)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return s.Seq, nil
}
