package constvars

const (
	MongoCollectionUsers         = "users"
	MongoCollectionWards         = "wards"
	MongoCollectionRooms         = "rooms"
	MongoCollectionAddonRequests = "addon_requests"
	MongoCollectionAddonLogs     = "addon_logs"
)
