package addons

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"wardlab-service/internal/app/config"
	"wardlab-service/internal/app/contracts"
	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/dto/requests"
	"wardlab-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memAddonRequestRepository struct {
	mu   sync.Mutex
	byID map[string]*models.AddOnRequest
}

func newMemAddonRequestRepository() *memAddonRequestRepository {
	return &memAddonRequestRepository{byID: make(map[string]*models.AddOnRequest)}
}

func (r *memAddonRequestRepository) CreateAddonRequest(ctx context.Context, request *models.AddOnRequest) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	stored := *request
	r.byID[request.ID] = &stored
	return request.ID, nil
}

func (r *memAddonRequestRepository) FindByID(ctx context.Context, requestID string) (*models.AddOnRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[requestID]
	if !ok {
		return nil, nil
	}
	clone := *stored
	return &clone, nil
}

func (r *memAddonRequestRepository) FindAll(ctx context.Context, filter *requests.ListAddonRequests) ([]models.AddOnRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.AddOnRequest, 0)
	for _, stored := range r.byID {
		if filter != nil && filter.Status != "" && stored.Status != filter.Status {
			continue
		}
		if filter != nil && filter.WardID != "" && stored.WardID != filter.WardID {
			continue
		}
		result = append(result, *stored)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *memAddonRequestRepository) FindCreatedBetween(ctx context.Context, start, end *time.Time) ([]models.AddOnRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.AddOnRequest, 0)
	for _, stored := range r.byID {
		if start != nil && stored.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && stored.CreatedAt.After(*end) {
			continue
		}
		result = append(result, *stored)
	}
	return result, nil
}

func (r *memAddonRequestRepository) MarkApproved(ctx context.Context, requestID, action, reviewerID string, reviewedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[requestID]
	if !ok || stored.Status != constvars.AddonStatusPending {
		return false, nil
	}
	stored.Status = constvars.AddonStatusApproved
	stored.ApprovalAction = action
	stored.ReviewedBy = reviewerID
	stored.ReviewedAt = &reviewedAt
	return true, nil
}

func (r *memAddonRequestRepository) MarkRejected(ctx context.Context, requestID, reason, reviewerID string, reviewedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[requestID]
	if !ok || stored.Status != constvars.AddonStatusPending {
		return false, nil
	}
	stored.Status = constvars.AddonStatusRejected
	stored.RejectionReason = reason
	stored.ReviewedBy = reviewerID
	stored.ReviewedAt = &reviewedAt
	return true, nil
}

func (r *memAddonRequestRepository) MarkCompleted(ctx context.Context, requestID string, completedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[requestID]
	if !ok || stored.Status != constvars.AddonStatusApproved {
		return false, nil
	}
	stored.Status = constvars.AddonStatusCompleted
	stored.CompletedAt = &completedAt
	return true, nil
}

func (r *memAddonRequestRepository) RestoreLifecycle(ctx context.Context, prior *models.AddOnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[prior.ID]
	if !ok {
		return nil
	}
	stored.Status = prior.Status
	stored.ApprovalAction = prior.ApprovalAction
	stored.RejectionReason = prior.RejectionReason
	stored.ReviewedBy = prior.ReviewedBy
	stored.ReviewedAt = prior.ReviewedAt
	stored.CompletedAt = prior.CompletedAt
	return nil
}

func (r *memAddonRequestRepository) Delete(ctx context.Context, requestID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, requestID)
	return nil
}

type memAddonLogRepository struct {
	mu       sync.Mutex
	entries  []models.AddOnLogEntry
	requests *memAddonRequestRepository
	failNext bool
}

func newMemAddonLogRepository(requests *memAddonRequestRepository) *memAddonLogRepository {
	return &memAddonLogRepository{requests: requests}
}

func (r *memAddonLogRepository) Append(ctx context.Context, entry *models.AddOnLogEntry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return "", errors.New("ledger unavailable")
	}
	if known, _ := r.requests.FindByID(ctx, entry.RequestID); known == nil {
		return "", exceptions.ErrAuditLogUnknownRequest(fmt.Errorf("no add-on request with id %s", entry.RequestID))
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	r.entries = append(r.entries, *entry)
	return entry.ID, nil
}

func (r *memAddonLogRepository) EntriesForRequest(ctx context.Context, requestID string) ([]models.AddOnLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.AddOnLogEntry, 0)
	for _, entry := range r.entries {
		if entry.RequestID == requestID {
			result = append(result, entry)
		}
	}
	return result, nil
}

type memWardRepository struct {
	byID map[string]models.Ward
}

func (r *memWardRepository) CreateWard(ctx context.Context, ward *models.Ward) (string, error) {
	r.byID[ward.ID] = *ward
	return ward.ID, nil
}

func (r *memWardRepository) FindByID(ctx context.Context, wardID string) (*models.Ward, error) {
	ward, ok := r.byID[wardID]
	if !ok {
		return nil, nil
	}
	return &ward, nil
}

func (r *memWardRepository) FindAll(ctx context.Context) ([]models.Ward, error) {
	result := make([]models.Ward, 0, len(r.byID))
	for _, ward := range r.byID {
		result = append(result, ward)
	}
	return result, nil
}

type memUserRepository struct {
	byID map[string]models.User
}

func (r *memUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	r.byID[user.ID] = *user
	return user.ID, nil
}

func (r *memUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	user, ok := r.byID[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.byID {
		if user.Username == username {
			clone := user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.byID {
		if user.Email == email {
			clone := user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepository) FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	result := make([]models.User, 0)
	for _, id := range userIDs {
		if user, ok := r.byID[id]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

type memLocker struct {
	mu   sync.Mutex
	held map[string]string
}

func newMemLocker() *memLocker {
	return &memLocker{held: make(map[string]string)}
}

func (l *memLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, taken := l.held[key]; taken {
		return false, "", nil
	}
	value := uuid.NewString()
	l.held[key] = value
	return true, value, nil
}

func (l *memLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == lockValue {
		delete(l.held, key)
	}
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type addonFixture struct {
	usecase     contracts.AddonUsecase
	requestRepo *memAddonRequestRepository
	logRepo     *memAddonLogRepository
	clock       *fixedClock
}

func newAddonFixture(t *testing.T) *addonFixture {
	t.Helper()

	requestRepo := newMemAddonRequestRepository()
	logRepo := newMemAddonLogRepository(requestRepo)
	wardRepo := &memWardRepository{byID: map[string]models.Ward{
		"ward-icu": {ID: "ward-icu", Name: "ICU"},
	}}
	userRepo := &memUserRepository{byID: map[string]models.User{
		"nurse-1": {ID: "nurse-1", Username: "nurse1", Name: "Dewi", Role: constvars.RoleChargeNurse},
		"lab-1":   {ID: "lab-1", Username: "lab1", Name: "Budi", Role: constvars.RoleLabStaff},
	}}
	clock := &fixedClock{now: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)}

	internalConfig := &config.InternalConfig{}
	internalConfig.App.AddonLockTTLInSeconds = 5

	usecase := &addonUsecase{
		AddonRequestRepository: requestRepo,
		AddonLogRepository:     logRepo,
		WardRepository:         wardRepo,
		UserRepository:         userRepo,
		LockerService:          newMemLocker(),
		Clock:                  clock,
		InternalConfig:         internalConfig,
		Log:                    zap.NewNop(),
	}

	return &addonFixture{
		usecase:     usecase,
		requestRepo: requestRepo,
		logRepo:     logRepo,
		clock:       clock,
	}
}

func createRequest(t *testing.T, fixture *addonFixture) string {
	t.Helper()
	response, err := fixture.usecase.CreateAddonRequest(context.Background(), "nurse-1", &requests.CreateAddonRequest{
		WardID:        "ward-icu",
		RoomNumber:    "12A",
		PatientID:     "MRN-100",
		RequestedTest: "Potassium",
		Reason:        "Physician missing order on initial draw",
	})
	require.NoError(t, err)
	return response.ID
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func TestCreateAddonRequest(t *testing.T) {
	fixture := newAddonFixture(t)

	response, err := fixture.usecase.CreateAddonRequest(context.Background(), "nurse-1", &requests.CreateAddonRequest{
		WardID:        "ward-icu",
		RoomNumber:    "12A",
		PatientID:     "MRN-100",
		RequestedTest: "Potassium",
		IsUrgent:      true,
		Reason:        "forgot to include on initial order",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, response.ID)
	assert.Equal(t, constvars.AddonStatusPending, response.Status)
	assert.Equal(t, "ICU", response.WardName)
	assert.Equal(t, "Dewi", response.RequesterName)
	assert.Empty(t, response.ReviewedBy)

	entries, err := fixture.logRepo.EntriesForRequest(context.Background(), response.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, constvars.AddonLogActionCreated, entries[0].Action)
	assert.Equal(t, "Add-on request created", entries[0].Notes)
	assert.Equal(t, "nurse-1", entries[0].PerformedBy)
}

func TestCreateAddonRequestUnknownWard(t *testing.T) {
	fixture := newAddonFixture(t)

	// Ward ids are opaque foreign references; creation goes through and the
	// response simply carries no resolved ward name.
	response, err := fixture.usecase.CreateAddonRequest(context.Background(), "nurse-1", &requests.CreateAddonRequest{
		WardID:        "ward-missing",
		RoomNumber:    "1",
		PatientID:     "MRN-1",
		RequestedTest: "CBC",
		Reason:        "extra",
	})
	require.NoError(t, err)
	assert.Equal(t, constvars.AddonStatusPending, response.Status)
	assert.Equal(t, "ward-missing", response.WardID)
	assert.Empty(t, response.WardName)

	entries, err := fixture.usecase.AuditTrail(context.Background(), response.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestCreateAddonRequestRollsBackWhenAppendFails(t *testing.T) {
	fixture := newAddonFixture(t)
	fixture.logRepo.failNext = true

	_, err := fixture.usecase.CreateAddonRequest(context.Background(), "nurse-1", &requests.CreateAddonRequest{
		WardID:        "ward-icu",
		RoomNumber:    "12A",
		PatientID:     "MRN-100",
		RequestedTest: "Potassium",
		Reason:        "extra test",
	})
	require.Error(t, err)

	all, err := fixture.requestRepo.FindAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, all, "request must not survive a failed creation record")
}

func TestApproveAddonRequest(t *testing.T) {
	fixture := newAddonFixture(t)
	requestID := createRequest(t, fixture)

	fixture.clock.now = fixture.clock.now.Add(45 * time.Minute)
	response, err := fixture.usecase.ApproveAddonRequest(context.Background(), requestID, "lab-1", &requests.ApproveAddonRequest{
		Action: constvars.AddonActionAddToSameSample,
	})
	require.NoError(t, err)

	assert.Equal(t, constvars.AddonStatusApproved, response.Status)
	assert.Equal(t, constvars.AddonActionAddToSameSample, response.ApprovalAction)
	assert.Equal(t, "lab-1", response.ReviewedBy)
	assert.Equal(t, "Budi", response.ReviewerName)
	assert.NotEmpty(t, response.ReviewedAt)

	entries, err := fixture.logRepo.EntriesForRequest(context.Background(), requestID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, constvars.AddonLogActionApproved, entries[1].Action)
	assert.Equal(t, "Approved with action: add_to_same_sample", entries[1].Notes)
}

func TestApproveAddonRequestInvalidAction(t *testing.T) {
	fixture := newAddonFixture(t)
	requestID := createRequest(t, fixture)

	_, err := fixture.usecase.ApproveAddonRequest(context.Background(), requestID, "lab-1", &requests.ApproveAddonRequest{
		Action: "burn_sample",
	})
	require.Error(t, err)
	assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
}

func TestRejectAddonRequest(t *testing.T) {
	fixture := newAddonFixture(t)
	requestID := createRequest(t, fixture)

	response, err := fixture.usecase.RejectAddonRequest(context.Background(), requestID, "lab-1", &requests.RejectAddonRequest{
		Reason: "Insufficient sample volume",
	})
	require.NoError(t, err)

	assert.Equal(t, constvars.AddonStatusRejected, response.Status)
	assert.Equal(t, "Insufficient sample volume", response.RejectionReason)

	entries, err := fixture.logRepo.EntriesForRequest(context.Background(), requestID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Rejected: Insufficient sample volume", entries[1].Notes)
}

func TestRejectAddonRequestRequiresReason(t *testing.T) {
	fixture := newAddonFixture(t)
	requestID := createRequest(t, fixture)

	_, err := fixture.usecase.RejectAddonRequest(context.Background(), requestID, "lab-1", &requests.RejectAddonRequest{})
	require.Error(t, err)
	assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))

	current, findErr := fixture.requestRepo.FindByID(context.Background(), requestID)
	require.NoError(t, findErr)
	assert.Equal(t, constvars.AddonStatusPending, current.Status)
}

func TestCompleteAddonRequest(t *testing.T) {
	fixture := newAddonFixture(t)
	requestID := createRequest(t, fixture)

	_, err := fixture.usecase.ApproveAddonRequest(context.Background(), requestID, "lab-1", &requests.ApproveAddonRequest{
		Action: constvars.AddonActionNeedNewSample,
	})
	require.NoError(t, err)

	fixture.clock.now = fixture.clock.now.Add(2 * time.Hour)
	response, err := fixture.usecase.CompleteAddonRequest(context.Background(), requestID, "lab-1")
	require.NoError(t, err)

	assert.Equal(t, constvars.AddonStatusCompleted, response.Status)
	assert.NotEmpty(t, response.CompletedAt)
	// Completion records who ran the test in the ledger, not on the
	// review fields, which keep the approval decision.
	assert.Equal(t, "lab-1", response.ReviewedBy)
	assert.Equal(t, constvars.AddonActionNeedNewSample, response.ApprovalAction)

	entries, err := fixture.logRepo.EntriesForRequest(context.Background(), requestID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Add-on test completed", entries[2].Notes)
}

func TestLifecycleRejectsInvalidTransitions(t *testing.T) {
	fixture := newAddonFixture(t)

	t.Run("complete a pending request", func(t *testing.T) {
		requestID := createRequest(t, fixture)
		_, err := fixture.usecase.CompleteAddonRequest(context.Background(), requestID, "lab-1")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
	})

	t.Run("approve a rejected request", func(t *testing.T) {
		requestID := createRequest(t, fixture)
		_, err := fixture.usecase.RejectAddonRequest(context.Background(), requestID, "lab-1", &requests.RejectAddonRequest{Reason: "duplicate"})
		require.NoError(t, err)

		_, err = fixture.usecase.ApproveAddonRequest(context.Background(), requestID, "lab-1", &requests.ApproveAddonRequest{Action: constvars.AddonActionAddToSameSample})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
	})

	t.Run("reject a completed request", func(t *testing.T) {
		requestID := createRequest(t, fixture)
		_, err := fixture.usecase.ApproveAddonRequest(context.Background(), requestID, "lab-1", &requests.ApproveAddonRequest{Action: constvars.AddonActionAddToSameSample})
		require.NoError(t, err)
		_, err = fixture.usecase.CompleteAddonRequest(context.Background(), requestID, "lab-1")
		require.NoError(t, err)

		_, err = fixture.usecase.RejectAddonRequest(context.Background(), requestID, "lab-1", &requests.RejectAddonRequest{Reason: "too late"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
	})

	t.Run("approve an unknown request", func(t *testing.T) {
		_, err := fixture.usecase.ApproveAddonRequest(context.Background(), "no-such-id", "lab-1", &requests.ApproveAddonRequest{Action: constvars.AddonActionAddToSameSample})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestConcurrentDecisionsOnlyOneWins(t *testing.T) {
	fixture := newAddonFixture(t)
	requestID := createRequest(t, fixture)

	var wg sync.WaitGroup
	outcomes := make(chan error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := fixture.usecase.ApproveAddonRequest(context.Background(), requestID, "lab-1", &requests.ApproveAddonRequest{
			Action: constvars.AddonActionAddToSameSample,
		})
		outcomes <- err
	}()
	go func() {
		defer wg.Done()
		_, err := fixture.usecase.RejectAddonRequest(context.Background(), requestID, "lab-1", &requests.RejectAddonRequest{
			Reason: "not clinically indicated",
		})
		outcomes <- err
	}()
	wg.Wait()
	close(outcomes)

	succeeded := 0
	for err := range outcomes {
		if err == nil {
			succeeded++
		} else {
			code := statusCodeOf(t, err)
			assert.Equal(t, constvars.StatusConflict, code)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one decision may land")

	current, err := fixture.requestRepo.FindByID(context.Background(), requestID)
	require.NoError(t, err)
	assert.True(t, current.IsTerminal() || current.Status == constvars.AddonStatusApproved)

	entries, err := fixture.logRepo.EntriesForRequest(context.Background(), requestID)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "creation plus the single winning decision")
}

func TestTransitionRollsBackWhenAppendFails(t *testing.T) {
	fixture := newAddonFixture(t)
	requestID := createRequest(t, fixture)

	fixture.logRepo.failNext = true
	_, err := fixture.usecase.ApproveAddonRequest(context.Background(), requestID, "lab-1", &requests.ApproveAddonRequest{
		Action: constvars.AddonActionAddToSameSample,
	})
	require.Error(t, err)

	current, findErr := fixture.requestRepo.FindByID(context.Background(), requestID)
	require.NoError(t, findErr)
	assert.Equal(t, constvars.AddonStatusPending, current.Status)
	assert.Empty(t, current.ApprovalAction)
	assert.Nil(t, current.ReviewedAt)

	entries, logErr := fixture.logRepo.EntriesForRequest(context.Background(), requestID)
	require.NoError(t, logErr)
	assert.Len(t, entries, 1, "only the creation record may remain")

	// The request is still decidable afterwards.
	_, err = fixture.usecase.ApproveAddonRequest(context.Background(), requestID, "lab-1", &requests.ApproveAddonRequest{
		Action: constvars.AddonActionAddToSameSample,
	})
	assert.NoError(t, err)
}

func TestListAddonRequests(t *testing.T) {
	fixture := newAddonFixture(t)

	first := createRequest(t, fixture)
	fixture.clock.now = fixture.clock.now.Add(time.Hour)
	second := createRequest(t, fixture)
	fixture.clock.now = fixture.clock.now.Add(time.Hour)
	third := createRequest(t, fixture)

	_, err := fixture.usecase.ApproveAddonRequest(context.Background(), second, "lab-1", &requests.ApproveAddonRequest{
		Action: constvars.AddonActionAddToSameSample,
	})
	require.NoError(t, err)

	all, err := fixture.usecase.ListAddonRequests(context.Background(), &requests.ListAddonRequests{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third, all[0].ID, "newest first")
	assert.Equal(t, first, all[2].ID)
	assert.Equal(t, "ICU", all[0].WardName)

	pendingOnly, err := fixture.usecase.ListAddonRequests(context.Background(), &requests.ListAddonRequests{Status: constvars.AddonStatusPending})
	require.NoError(t, err)
	assert.Len(t, pendingOnly, 2)
}

func TestAuditTrail(t *testing.T) {
	fixture := newAddonFixture(t)
	requestID := createRequest(t, fixture)

	_, err := fixture.usecase.ApproveAddonRequest(context.Background(), requestID, "lab-1", &requests.ApproveAddonRequest{
		Action: constvars.AddonActionNeedNewSample,
	})
	require.NoError(t, err)
	_, err = fixture.usecase.CompleteAddonRequest(context.Background(), requestID, "lab-1")
	require.NoError(t, err)

	trail, err := fixture.usecase.AuditTrail(context.Background(), requestID)
	require.NoError(t, err)
	require.Len(t, trail, 3)
	assert.Equal(t, constvars.AddonLogActionCreated, trail[0].Action)
	assert.Equal(t, constvars.AddonLogActionApproved, trail[1].Action)
	assert.Equal(t, constvars.AddonLogActionCompleted, trail[2].Action)

	_, err = fixture.usecase.AuditTrail(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
}
