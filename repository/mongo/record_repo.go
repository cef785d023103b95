package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/repository"
)

// DefaultCollection stores one document per record key.
const DefaultCollection = "dashboard_records"

type recordDocument struct {
	Key       string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type recordRepository struct {
	collection *mongodriver.Collection
}

// NewRecordRepository returns a MongoDB-backed RecordStore.
func NewRecordRepository(database *mongodriver.Database, collection string) repository.RecordStore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &recordRepository{collection: database.Collection(collection)}
}

func (r *recordRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var doc recordDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "mongo get "+key, err)
	}
	return []byte(doc.Payload), nil
}

func (r *recordRepository) Put(ctx context.Context, key string, value []byte) error {
	doc := recordDocument{
		Key:       key,
		Payload:   string(value),
		UpdatedAt: time.Now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "mongo put "+key, err)
	}
	return nil
}

func (r *recordRepository) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, nil)
}
