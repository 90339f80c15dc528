package constvars

const (
	HealthSuccessMessage = "service is healthy"

	RegisterSuccessMessage = "user registered successfully"
	LoginSuccessMessage    = "successfully login"
	ProfileGetSuccess      = "get profile successfully"

	WardListSuccessMessage   = "wards fetched successfully"
	WardCreateSuccessMessage = "ward created successfully"
	RoomListSuccessMessage   = "rooms fetched successfully"
	RoomBulkSuccessMessage   = "Rooms updated successfully"
	SearchSuccessMessage     = "search completed successfully"

	AddonCreateSuccessMessage   = "Add-on request created successfully"
	AddonListSuccessMessage     = "add-on requests fetched successfully"
	AddonApproveSuccessMessage  = "Request approved successfully"
	AddonRejectSuccessMessage   = "Request rejected successfully"
	AddonCompleteSuccessMessage = "Request marked as completed"
	AddonLogsSuccessMessage     = "audit trail fetched successfully"

	AnalyticsStatsSuccessMessage  = "add-on statistics computed successfully"
	AnalyticsTrendsSuccessMessage = "add-on trends computed successfully"
)
