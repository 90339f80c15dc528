package wards

import (
	"context"

	"wardlab-service/internal/app/contracts"
	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WardMongoRepository struct {
	Collection *mongo.Collection
}

func NewWardMongoRepository(db *mongo.Client, dbName string) contracts.WardRepository {
	return &WardMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWards),
	}
}

func (r *WardMongoRepository) CreateWard(ctx context.Context, ward *models.Ward) (string, error) {
	if ward.ID == "" {
		ward.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, ward)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return ward.ID, nil
}

func (r *WardMongoRepository) FindByID(ctx context.Context, wardID string) (*models.Ward, error) {
	var ward models.Ward
	err := r.Collection.FindOne(ctx, bson.M{"_id": wardID}).Decode(&ward)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &ward, nil
}

func (r *WardMongoRepository) FindAll(ctx context.Context) ([]models.Ward, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	wards := make([]models.Ward, 0)
	if err := cursor.All(ctx, &wards); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return wards, nil
}
