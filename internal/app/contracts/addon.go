package contracts

import (
	"context"
	"time"

	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/dto/responses"
)

type AddonUsecase interface {
	CreateAddonRequest(ctx context.Context, actorID string, request *requests.CreateAddonRequest) (*responses.AddonRequest, error)
	ApproveAddonRequest(ctx context.Context, requestID, actorID string, request *requests.ApproveAddonRequest) (*responses.AddonRequest, error)
	RejectAddonRequest(ctx context.Context, requestID, actorID string, request *requests.RejectAddonRequest) (*responses.AddonRequest, error)
	CompleteAddonRequest(ctx context.Context, requestID, actorID string) (*responses.AddonRequest, error)
	ListAddonRequests(ctx context.Context, filter *requests.ListAddonRequests) ([]responses.AddonRequest, error)
	AuditTrail(ctx context.Context, requestID string) ([]responses.AddonLogEntry, error)
}

// AddonRequestRepository owns the requests collection. The Mark* methods
// are conditional updates: they only apply when the stored status equals
// the transition's precondition and report whether a document matched, so
// two concurrent writers cannot both pass the same precondition.
type AddonRequestRepository interface {
	CreateAddonRequest(ctx context.Context, request *models.AddOnRequest) (string, error)
	FindByID(ctx context.Context, requestID string) (*models.AddOnRequest, error)
	FindAll(ctx context.Context, filter *requests.ListAddonRequests) ([]models.AddOnRequest, error)
	FindCreatedBetween(ctx context.Context, start, end *time.Time) ([]models.AddOnRequest, error)

	MarkApproved(ctx context.Context, requestID, action, reviewerID string, reviewedAt time.Time) (bool, error)
	MarkRejected(ctx context.Context, requestID, reason, reviewerID string, reviewedAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, requestID string, completedAt time.Time) (bool, error)

	// RestoreLifecycle rewrites the lifecycle fields from a prior snapshot.
	// Used only to compensate a transition whose audit append failed.
	RestoreLifecycle(ctx context.Context, prior *models.AddOnRequest) error

	// Delete removes a request outright. Used only to compensate a creation
	// whose audit append failed; the lifecycle never deletes otherwise.
	Delete(ctx context.Context, requestID string) error
}

// AddonLogRepository is the append-only audit ledger. There is deliberately
// no update or delete operation.
type AddonLogRepository interface {
	Append(ctx context.Context, entry *models.AddOnLogEntry) (string, error)
	EntriesForRequest(ctx context.Context, requestID string) ([]models.AddOnLogEntry, error)
}
