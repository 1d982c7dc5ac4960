package isolations

import (
	"context"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/contracts"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IsolationMongoRepository struct {
	Collection *mongo.Collection
}

func NewIsolationMongoRepository(db *mongo.Database) contracts.IsolationRepository {
	return &IsolationMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionIsolations),
	}
}

func (r *IsolationMongoRepository) Insert(ctx context.Context, isolation *models.Isolation) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, isolation)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *IsolationMongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Isolation, error) {
	var isolation models.Isolation
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&isolation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &isolation, nil
}

func (r *IsolationMongoRepository) Find(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Isolation, int64, error) {
	if filter == nil {
		filter = bson.M{}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	isolations := make([]models.Isolation, 0)
	if err := cursor.All(ctx, &isolations); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return isolations, total, nil
}

func (r *IsolationMongoRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Isolation, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var isolation models.Isolation
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&isolation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &isolation, nil
}

func (r *IsolationMongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Isolation, error) {
	var isolation models.Isolation
	err := r.Collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&isolation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return &isolation, nil
}

func (r *IsolationMongoRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}
