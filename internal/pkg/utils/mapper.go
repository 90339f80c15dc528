package utils

import (
	"time"

	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/dto/responses"
)

func MapAddonRequestToResponse(request *models.AddOnRequest, wardName, requesterName, reviewerName string) *responses.AddonRequest {
	response := &responses.AddonRequest{
		ID:                request.ID,
		WardID:            request.WardID,
		WardName:          wardName,
		RoomID:            request.RoomID,
		RoomNumber:        request.RoomNumber,
		PatientID:         request.PatientID,
		RequestedTest:     request.RequestedTest,
		Reason:            request.Reason,
		IsUrgent:          request.IsUrgent,
		HasPreviousSample: request.HasPreviousSample,
		PreviousSampleID:  request.PreviousSampleID,
		AdditionalComment: request.AdditionalComment,
		Status:            request.Status,
		RejectionReason:   request.RejectionReason,
		ApprovalAction:    request.ApprovalAction,
		RequestedBy:       request.RequestedBy,
		RequesterName:     requesterName,
		ReviewedBy:        request.ReviewedBy,
		ReviewerName:      reviewerName,
		CreatedAt:         request.CreatedAt.Format(time.RFC3339),
	}
	if request.ReviewedAt != nil {
		response.ReviewedAt = request.ReviewedAt.Format(time.RFC3339)
	}
	if request.CompletedAt != nil {
		response.CompletedAt = request.CompletedAt.Format(time.RFC3339)
	}
	return response
}

func MapAddonLogToResponse(entry *models.AddOnLogEntry) *responses.AddonLogEntry {
	return &responses.AddonLogEntry{
		ID:          entry.ID,
		RequestID:   entry.RequestID,
		Action:      entry.Action,
		PerformedBy: entry.PerformedBy,
		Timestamp:   entry.Timestamp.Format(time.RFC3339),
		Notes:       entry.Notes,
	}
}

func MapRoomToResponse(room *models.Room, wardName string) *responses.Room {
	response := &responses.Room{
		ID:                    room.ID,
		WardID:                room.WardID,
		WardName:              wardName,
		RoomNumber:            room.RoomNumber,
		PatientName:           room.PatientName,
		PatientID:             room.PatientID,
		PrimaryNurseName:      room.PrimaryNurseName,
		PrimaryNurseExtension: room.PrimaryNurseExtension,
		BackupNurseName:       room.BackupNurseName,
		BackupNurseExtension:  room.BackupNurseExtension,
		ChargeNurseName:       room.ChargeNurseName,
		Notes:                 room.Notes,
		ShiftType:             room.ShiftType,
	}
	if !room.UpdatedAt.IsZero() {
		response.UpdatedAt = room.UpdatedAt.Format(time.RFC3339)
	}
	return response
}

func MapUserToProfileResponse(user *models.User) *responses.UserProfile {
	return &responses.UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Name:     user.Name,
	}
}
