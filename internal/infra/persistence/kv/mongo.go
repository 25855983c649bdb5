package kv

import (
	"context"
	"regexp"

	"recyclemart/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoEntry struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// Mongo stores each key as one document of a collection.
type Mongo struct {
	coll *mongo.Collection
}

// NewMongo wraps a collection.
func NewMongo(coll *mongo.Collection) *Mongo {
	return &Mongo{coll: coll}
}

func (m *Mongo) Get(ctx context.Context, key string) (string, bool, error) {
	var entry mongoEntry
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "mongo find %s", key)
	}

	return entry.Value, true, nil
}

func (m *Mongo) Set(ctx context.Context, key, value string) error {
	_, err := m.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		mongoEntry{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrapf(err, "mongo upsert %s", key)
	}

	return nil
}

func (m *Mongo) Remove(ctx context.Context, key string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return errors.Wrapf(err, "mongo delete %s", key)
	}

	return nil
}

// Apply sends the batch as one ordered bulk write.
func (m *Mongo) Apply(ctx context.Context, mutations []Mutation) error {
	mutations = compact(mutations)
	if len(mutations) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(mutations))
	for _, mu := range mutations {
		if mu.Delete {
			models = append(models, mongo.NewDeleteOneModel().SetFilter(bson.M{"_id": mu.Key}))

			continue
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": mu.Key}).
			SetReplacement(mongoEntry{Key: mu.Key, Value: mu.Value}).
			SetUpsert(true))
	}

	if _, err := m.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return errors.Wrap(err, "mongo bulk write")
	}

	return nil
}

func (m *Mongo) Keys(ctx context.Context, prefix string) ([]string, error) {
	filter := bson.M{"_id": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}
	opts := options.Find().SetProjection(bson.M{"_id": 1}).SetSort(bson.M{"_id": 1})

	cur, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "mongo list keys")
	}
	defer cur.Close(ctx)

	var entries []mongoEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, errors.Wrap(err, "mongo decode keys")
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}

	return sortedWithPrefix(keys, prefix), nil
}
