package addons

import (
	"context"
	"fmt"

	"wardlab-service/internal/app/contracts"
	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddonLogMongoRepository holds the audit ledger. It also keeps a handle on
// the requests collection so an append can refuse entries that point at a
// request that was never created.
type AddonLogMongoRepository struct {
	Collection         *mongo.Collection
	RequestsCollection *mongo.Collection
	Clock              contracts.Clock
}

func NewAddonLogMongoRepository(db *mongo.Client, dbName string, clock contracts.Clock) contracts.AddonLogRepository {
	database := db.Database(dbName)
	return &AddonLogMongoRepository{
		Collection:         database.Collection(constvars.MongoCollectionAddonLogs),
		RequestsCollection: database.Collection(constvars.MongoCollectionAddonRequests),
		Clock:              clock,
	}
}

func (r *AddonLogMongoRepository) Append(ctx context.Context, entry *models.AddOnLogEntry) (string, error) {
	count, err := r.RequestsCollection.CountDocuments(ctx, bson.M{"_id": entry.RequestID})
	if err != nil {
		return "", exceptions.ErrMongoDBFindDocument(err)
	}
	if count == 0 {
		return "", exceptions.ErrAuditLogUnknownRequest(fmt.Errorf("no add-on request with id %s", entry.RequestID))
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.Clock.Now()
	}
	if _, err := r.Collection.InsertOne(ctx, entry); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return entry.ID, nil
}

func (r *AddonLogMongoRepository) EntriesForRequest(ctx context.Context, requestID string) ([]models.AddOnLogEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"requestId": requestID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.AddOnLogEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}
