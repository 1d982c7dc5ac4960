package visits

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

type VisitMongoRepository struct {
	Collection *mongo.Collection
}

func NewVisitMongoRepository(db *mongo.Database) contracts.VisitRepository {
	return &VisitMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionVisits),
	}
}

func (r *VisitMongoRepository) Insert(ctx context.Context, visit *models.Visit) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, visit)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *VisitMongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Visit, error) {
	var visit models.Visit
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&visit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &visit, nil
}

func (r *VisitMongoRepository) Find(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Visit, int64, error) {
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

	visits := make([]models.Visit, 0)
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return visits, total, nil
}

// FindAll returns the whole collection in storage order, for export.
func (r *VisitMongoRepository) FindAll(ctx context.Context) ([]models.Visit, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	visits := make([]models.Visit, 0)
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return visits, nil
}

func (r *VisitMongoRepository) FindByEmpNo(ctx context.Context, empNo string) ([]models.Visit, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"empNo": empNo})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	visits := make([]models.Visit, 0)
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return visits, nil
}

func (r *VisitMongoRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Visit, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var visit models.Visit
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&visit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &visit, nil
}

func (r *VisitMongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Visit, error) {
	var visit models.Visit
	err := r.Collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&visit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return &visit, nil
}

func (r *VisitMongoRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}

func (r *VisitMongoRepository) AddHospitalization(ctx context.Context, visitID, hospitalID primitive.ObjectID) (bool, error) {
	return r.updateBackReference(ctx, visitID, bson.M{"$addToSet": bson.M{"hospitalizations": hospitalID}})
}

func (r *VisitMongoRepository) RemoveHospitalization(ctx context.Context, visitID, hospitalID primitive.ObjectID) (bool, error) {
	return r.updateBackReference(ctx, visitID, bson.M{"$pull": bson.M{"hospitalizations": hospitalID}})
}

func (r *VisitMongoRepository) AddIsolation(ctx context.Context, visitID, isolationID primitive.ObjectID) (bool, error) {
	return r.updateBackReference(ctx, visitID, bson.M{"$addToSet": bson.M{"isolations": isolationID}})
}

func (r *VisitMongoRepository) RemoveIsolation(ctx context.Context, visitID, isolationID primitive.ObjectID) (bool, error) {
	return r.updateBackReference(ctx, visitID, bson.M{"$pull": bson.M{"isolations": isolationID}})
}

func (r *VisitMongoRepository) updateBackReference(ctx context.Context, visitID primitive.ObjectID, update bson.M) (bool, error) {
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": visitID}, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *VisitMongoRepository) PushAttachment(ctx context.Context, visitID primitive.ObjectID, attachment *models.Attachment) (bool, error) {
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": visitID}, bson.M{"$push": bson.M{"attachments": attachment}})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}
