package hospitals

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

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Database) contracts.HospitalRepository {
	return &HospitalMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionHospitals),
	}
}

func (r *HospitalMongoRepository) Insert(ctx context.Context, hospital *models.Hospital) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, hospital)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *HospitalMongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &hospital, nil
}

func (r *HospitalMongoRepository) Find(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Hospital, int64, error) {
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

	hospitals := make([]models.Hospital, 0)
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return hospitals, total, nil
}

func (r *HospitalMongoRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Hospital, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var hospital models.Hospital
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &hospital, nil
}

func (r *HospitalMongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.Collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return &hospital, nil
}

func (r *HospitalMongoRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}
