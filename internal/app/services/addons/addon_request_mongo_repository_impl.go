package addons

import (
	"context"
	"time"

	"wardlab-service/internal/app/contracts"
	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AddonRequestMongoRepository struct {
	Collection *mongo.Collection
}

func NewAddonRequestMongoRepository(db *mongo.Client, dbName string) contracts.AddonRequestRepository {
	return &AddonRequestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAddonRequests),
	}
}

func (r *AddonRequestMongoRepository) CreateAddonRequest(ctx context.Context, request *models.AddOnRequest) (string, error) {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, request)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return request.ID, nil
}

func (r *AddonRequestMongoRepository) FindByID(ctx context.Context, requestID string) (*models.AddOnRequest, error) {
	var request models.AddOnRequest
	err := r.Collection.FindOne(ctx, bson.M{"_id": requestID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &request, nil
}

func (r *AddonRequestMongoRepository) FindAll(ctx context.Context, filter *requests.ListAddonRequests) ([]models.AddOnRequest, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.WardID != "" {
			query["wardId"] = filter.WardID
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.AddOnRequest, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}

func (r *AddonRequestMongoRepository) FindCreatedBetween(ctx context.Context, start, end *time.Time) ([]models.AddOnRequest, error) {
	query := bson.M{}
	createdAt := bson.M{}
	if start != nil {
		createdAt["$gte"] = *start
	}
	if end != nil {
		createdAt["$lte"] = *end
	}
	if len(createdAt) > 0 {
		query["createdAt"] = createdAt
	}

	cursor, err := r.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.AddOnRequest, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}

// MarkApproved flips pending to approved. The status value in the filter
// makes the update conditional, so a request already decided by a
// concurrent reviewer matches nothing and the caller sees matched=false.
func (r *AddonRequestMongoRepository) MarkApproved(ctx context.Context, requestID, action, reviewerID string, reviewedAt time.Time) (bool, error) {
	filter := bson.M{"_id": requestID, "status": constvars.AddonStatusPending}
	update := bson.M{"$set": bson.M{
		"status":         constvars.AddonStatusApproved,
		"approvalAction": action,
		"reviewedBy":     reviewerID,
		"reviewedAt":     reviewedAt,
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *AddonRequestMongoRepository) MarkRejected(ctx context.Context, requestID, reason, reviewerID string, reviewedAt time.Time) (bool, error) {
	filter := bson.M{"_id": requestID, "status": constvars.AddonStatusPending}
	update := bson.M{"$set": bson.M{
		"status":          constvars.AddonStatusRejected,
		"rejectionReason": reason,
		"reviewedBy":      reviewerID,
		"reviewedAt":      reviewedAt,
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *AddonRequestMongoRepository) MarkCompleted(ctx context.Context, requestID string, completedAt time.Time) (bool, error) {
	filter := bson.M{"_id": requestID, "status": constvars.AddonStatusApproved}
	update := bson.M{"$set": bson.M{
		"status":      constvars.AddonStatusCompleted,
		"completedAt": completedAt,
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *AddonRequestMongoRepository) Delete(ctx context.Context, requestID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": requestID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *AddonRequestMongoRepository) RestoreLifecycle(ctx context.Context, prior *models.AddOnRequest) error {
	filter := bson.M{"_id": prior.ID}
	update := bson.M{"$set": bson.M{
		"status":          prior.Status,
		"approvalAction":  prior.ApprovalAction,
		"rejectionReason": prior.RejectionReason,
		"reviewedBy":      prior.ReviewedBy,
		"reviewedAt":      prior.ReviewedAt,
		"completedAt":     prior.CompletedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
