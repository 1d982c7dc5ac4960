package visits

import (
	"context"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/contracts"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TokenCounterMongoRepository struct {
	Collection *mongo.Collection
}

func NewTokenCounterMongoRepository(db *mongo.Database) contracts.TokenCounterRepository {
	return &TokenCounterMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionTokenCounters),
	}
}

type tokenCounter struct {
	Seq int64 `bson:"seq"`
}

// Next increments the counter document keyed (locationId, yyyymmdd) in one
// upsert, so concurrent creators at the same location never read the same
// sequence value.
func (r *TokenCounterMongoRepository) Next(ctx context.Context, locationID string, day time.Time) (int64, error) {
	filter := bson.M{
		"locationId": locationID,
		"dateKey":    day.Format(constvars.DateKeyFormat),
	}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter tokenCounter
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, exceptions.ErrMongoDBIncrementCounter(err)
	}
	return counter.Seq, nil
}
