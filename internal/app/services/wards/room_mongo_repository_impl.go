package wards

import (
	"context"
	"regexp"

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

type RoomMongoRepository struct {
	Collection *mongo.Collection
}

func NewRoomMongoRepository(db *mongo.Client, dbName string) contracts.RoomRepository {
	return &RoomMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRooms),
	}
}

func (r *RoomMongoRepository) CreateRoom(ctx context.Context, room *models.Room) (string, error) {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, room)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return room.ID, nil
}

func (r *RoomMongoRepository) UpdateRoom(ctx context.Context, room *models.Room) error {
	filter := bson.M{"_id": room.ID}
	update := bson.M{"$set": bson.M{
		"roomNumber":            room.RoomNumber,
		"patientName":           room.PatientName,
		"patientId":             room.PatientID,
		"primaryNurseName":      room.PrimaryNurseName,
		"primaryNurseExtension": room.PrimaryNurseExtension,
		"backupNurseName":       room.BackupNurseName,
		"backupNurseExtension":  room.BackupNurseExtension,
		"chargeNurseName":       room.ChargeNurseName,
		"notes":                 room.Notes,
		"shiftType":             room.ShiftType,
		"updatedBy":             room.UpdatedBy,
		"updatedAt":             room.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *RoomMongoRepository) FindByWardAndNumber(ctx context.Context, wardID, roomNumber string) (*models.Room, error) {
	var room models.Room
	err := r.Collection.FindOne(ctx, bson.M{"wardId": wardID, "roomNumber": roomNumber}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &room, nil
}

func (r *RoomMongoRepository) FindAllByWard(ctx context.Context, wardID string) ([]models.Room, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "roomNumber", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"wardId": wardID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	rooms := make([]models.Room, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rooms, nil
}

// Search matches the critical-call lookup fields with a case-insensitive
// substring regex, optionally narrowed by ward and field group.
// searchPattern treats the query as a literal, never a pattern.
func searchPattern(query string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
}

func (r *RoomMongoRepository) Search(ctx context.Context, query *requests.SearchContacts) ([]models.Room, error) {
	pattern := searchPattern(query.Query)

	var fieldFilters []bson.M
	switch query.SearchType {
	case constvars.SearchTypeRoom:
		fieldFilters = []bson.M{{"roomNumber": pattern}}
	case constvars.SearchTypePatient:
		fieldFilters = []bson.M{{"patientName": pattern}, {"patientId": pattern}}
	case constvars.SearchTypeNurse:
		fieldFilters = []bson.M{
			{"primaryNurseName": pattern},
			{"backupNurseName": pattern},
			{"chargeNurseName": pattern},
		}
	default:
		fieldFilters = []bson.M{
			{"roomNumber": pattern},
			{"patientName": pattern},
			{"patientId": pattern},
			{"primaryNurseName": pattern},
			{"backupNurseName": pattern},
			{"chargeNurseName": pattern},
		}
	}

	filter := bson.M{"$or": fieldFilters}
	if query.WardID != "" {
		filter = bson.M{"wardId": query.WardID, "$or": fieldFilters}
	}

	findOptions := options.Find().SetLimit(int64(constvars.CriticalCallSearchLimit))
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	rooms := make([]models.Room, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rooms, nil
}
