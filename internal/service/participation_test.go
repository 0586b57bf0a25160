package service

import (
	"context"
	"testing"
	"time"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
	"github.com/GlebShishkov/explore-with-me/internal/guard"
	"github.com/GlebShishkov/explore-with-me/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type participationMocks struct {
	requestRepo *mocks.MockParticipationRepo
	eventRepo   *mocks.MockEventRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockRequestNotifier
}

func newParticipationService(t *testing.T) (*ParticipationService, participationMocks) {
	t.Helper()

	m := participationMocks{
		requestRepo: mocks.NewMockParticipationRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockRequestNotifier(t),
	}
	svc := NewParticipationService(m.requestRepo, m.eventRepo, m.userRepo, guard.New(), m.notifier, newTestLogger(t))
	return svc, m
}

func publishedEvent(id string, limit int, moderation bool) *domain.Event {
	return &domain.Event{
		ID:                id,
		Title:             "Go Meetup",
		InitiatorID:       "owner",
		State:             domain.EventStatePublished,
		EventDate:         time.Now().Add(24 * time.Hour),
		ParticipantLimit:  limit,
		RequestModeration: moderation,
	}
}

func TestParticipationService_Create_AutoConfirm(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 5, false)
	user := &domain.User{ID: "u1", Name: "alice"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.requestRepo.EXPECT().FindBlocking(mock.Anything, "e1", "u1").Return(nil, domain.ErrRequestNotFound)
	m.requestRepo.EXPECT().CountConfirmed(mock.Anything, "e1").Return(0, nil)
	m.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyRequestConfirmed(mock.Anything, user, event).Return()

	request, err := svc.Create(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusConfirmed, request.Status)
	assert.Equal(t, "e1", request.EventID)
	assert.Equal(t, "u1", request.RequesterID)
	assert.NotEmpty(t, request.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestParticipationService_Create_Moderated(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 5, true)
	user := &domain.User{ID: "u1", Name: "alice"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.requestRepo.EXPECT().FindBlocking(mock.Anything, "e1", "u1").Return(nil, domain.ErrRequestNotFound)
	m.requestRepo.EXPECT().CountConfirmed(mock.Anything, "e1").Return(0, nil)
	m.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyRequestQueued(mock.Anything, user, event).Return()

	request, err := svc.Create(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, request.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestParticipationService_Create_EventNotFound(t *testing.T) {
	svc, m := newParticipationService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestParticipationService_Create_UserNotFound(t *testing.T) {
	svc, m := newParticipationService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent("e1", 5, true), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), "missing", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestParticipationService_Create_Duplicate(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 5, true)
	existing := &domain.Participation{ID: "r1", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusPending}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.requestRepo.EXPECT().FindBlocking(mock.Anything, "e1", "u1").Return(existing, nil)

	_, err := svc.Create(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestExists)
}

// A rejection is final for the pair: the requester cannot apply again, only
// a canceled request frees the way.
func TestParticipationService_Create_RejectedBlocksReapply(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 5, true)
	rejected := &domain.Participation{ID: "r1", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusRejected}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.requestRepo.EXPECT().FindBlocking(mock.Anything, "e1", "u1").Return(rejected, nil)

	_, err := svc.Create(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestExists)
}

func TestParticipationService_Create_SelfRequest(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 5, true)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "owner").Return(&domain.User{ID: "owner"}, nil)
	m.requestRepo.EXPECT().FindBlocking(mock.Anything, "e1", "owner").Return(nil, domain.ErrRequestNotFound)

	_, err := svc.Create(context.Background(), "owner", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSelfRequest)
}

func TestParticipationService_Create_NotPublished(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 5, true)
	event.State = domain.EventStatePending

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.requestRepo.EXPECT().FindBlocking(mock.Anything, "e1", "u1").Return(nil, domain.ErrRequestNotFound)

	_, err := svc.Create(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotPublished)
}

func TestParticipationService_Create_LimitReached(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 2, true)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.requestRepo.EXPECT().FindBlocking(mock.Anything, "e1", "u1").Return(nil, domain.ErrRequestNotFound)
	m.requestRepo.EXPECT().CountConfirmed(mock.Anything, "e1").Return(2, nil)

	_, err := svc.Create(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLimitReached)
}

func TestParticipationService_Create_ZeroLimitIsUnlimited(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 0, false)
	user := &domain.User{ID: "u1"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.requestRepo.EXPECT().FindBlocking(mock.Anything, "e1", "u1").Return(nil, domain.ErrRequestNotFound)
	m.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyRequestConfirmed(mock.Anything, user, event).Return()

	request, err := svc.Create(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusConfirmed, request.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestParticipationService_Review_ConfirmsPending(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 10, true)
	reqA := &domain.Participation{ID: "ra", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusPending}
	reqB := &domain.Participation{ID: "rb", EventID: "e1", RequesterID: "u2", Status: domain.RequestStatusPending}

	m.eventRepo.EXPECT().GetByInitiator(mock.Anything, "e1", "owner").Return(event, nil)
	m.requestRepo.EXPECT().ListByIDs(mock.Anything, "e1", []string{"ra", "rb"}).Return([]*domain.Participation{reqA, reqB}, nil)
	m.requestRepo.EXPECT().CountConfirmed(mock.Anything, "e1").Return(0, nil).Once()
	m.requestRepo.EXPECT().CountConfirmed(mock.Anything, "e1").Return(1, nil).Once()
	m.requestRepo.EXPECT().UpdateStatus(mock.Anything, reqA, domain.RequestStatusPending).Return(nil)
	m.requestRepo.EXPECT().UpdateStatus(mock.Anything, reqB, domain.RequestStatusPending).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyRequestConfirmed(mock.Anything, mock.Anything, event).Return()

	result, err := svc.Review(context.Background(), "owner", "e1", []string{"ra", "rb"}, domain.RequestStatusConfirmed)

	require.NoError(t, err)
	assert.Len(t, result.Confirmed, 2)
	assert.Empty(t, result.Rejected)
	assert.Equal(t, domain.RequestStatusConfirmed, reqA.Status)
	assert.Equal(t, domain.RequestStatusConfirmed, reqB.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestParticipationService_Review_LimitExhaustedMidBatch(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 1, true)
	reqA := &domain.Participation{ID: "ra", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusPending}
	reqB := &domain.Participation{ID: "rb", EventID: "e1", RequesterID: "u2", Status: domain.RequestStatusPending}

	m.eventRepo.EXPECT().GetByInitiator(mock.Anything, "e1", "owner").Return(event, nil)
	m.requestRepo.EXPECT().ListByIDs(mock.Anything, "e1", []string{"ra", "rb"}).Return([]*domain.Participation{reqA, reqB}, nil)
	m.requestRepo.EXPECT().CountConfirmed(mock.Anything, "e1").Return(0, nil).Once()
	m.requestRepo.EXPECT().CountConfirmed(mock.Anything, "e1").Return(1, nil).Once()
	m.requestRepo.EXPECT().UpdateStatus(mock.Anything, reqA, domain.RequestStatusPending).Return(nil)
	m.requestRepo.EXPECT().UpdateStatus(mock.Anything, reqB, domain.RequestStatusPending).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyRequestConfirmed(mock.Anything, mock.Anything, event).Return()
	m.notifier.EXPECT().NotifyRequestRejected(mock.Anything, mock.Anything, event).Return()

	result, err := svc.Review(context.Background(), "owner", "e1", []string{"ra", "rb"}, domain.RequestStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLimitReached)
	// The first confirmation is already durable, the second is forced to
	// REJECTED; the partial result reports both.
	assert.Len(t, result.Confirmed, 1)
	assert.Len(t, result.Rejected, 1)
	assert.Equal(t, domain.RequestStatusConfirmed, reqA.Status)
	assert.Equal(t, domain.RequestStatusRejected, reqB.Status)

	time.Sleep(50 * time.Millisecond)
}

// The stale sweep runs outside the guard, so a request loaded as PENDING may
// already be REJECTED by the time the batch writes. The compare-and-set write
// refuses to resurrect it.
func TestParticipationService_Review_SweptRequestStaysRejected(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 5, true)
	reqA := &domain.Participation{ID: "ra", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusPending}

	m.eventRepo.EXPECT().GetByInitiator(mock.Anything, "e1", "owner").Return(event, nil)
	m.requestRepo.EXPECT().ListByIDs(mock.Anything, "e1", []string{"ra"}).Return([]*domain.Participation{reqA}, nil)
	m.requestRepo.EXPECT().CountConfirmed(mock.Anything, "e1").Return(0, nil)
	m.requestRepo.EXPECT().UpdateStatus(mock.Anything, reqA, domain.RequestStatusPending).Return(domain.ErrRequestFinalized)

	result, err := svc.Review(context.Background(), "owner", "e1", []string{"ra"}, domain.RequestStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestFinalized)
	assert.Empty(t, result.Confirmed)
}

func TestParticipationService_Review_AlreadyConfirmedFailsBatch(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 5, true)
	confirmed := &domain.Participation{ID: "ra", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusConfirmed}

	m.eventRepo.EXPECT().GetByInitiator(mock.Anything, "e1", "owner").Return(event, nil)
	m.requestRepo.EXPECT().ListByIDs(mock.Anything, "e1", []string{"ra"}).Return([]*domain.Participation{confirmed}, nil)

	result, err := svc.Review(context.Background(), "owner", "e1", []string{"ra"}, domain.RequestStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
	assert.Empty(t, result.Confirmed)
	// Already-confirmed request stays CONFIRMED.
	assert.Equal(t, domain.RequestStatusConfirmed, confirmed.Status)
}

func TestParticipationService_Review_RejectedPassesThrough(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 5, true)
	rejected := &domain.Participation{ID: "ra", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusRejected}

	m.eventRepo.EXPECT().GetByInitiator(mock.Anything, "e1", "owner").Return(event, nil)
	m.requestRepo.EXPECT().ListByIDs(mock.Anything, "e1", []string{"ra"}).Return([]*domain.Participation{rejected}, nil)

	result, err := svc.Review(context.Background(), "owner", "e1", []string{"ra"}, domain.RequestStatusRejected)

	require.NoError(t, err)
	assert.Empty(t, result.Confirmed)
	assert.Len(t, result.Rejected, 1)
}

func TestParticipationService_Review_NotOwner(t *testing.T) {
	svc, m := newParticipationService(t)

	m.eventRepo.EXPECT().GetByInitiator(mock.Anything, "e1", "intruder").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Review(context.Background(), "intruder", "e1", []string{"ra"}, domain.RequestStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestParticipationService_Review_InvalidTargetStatus(t *testing.T) {
	svc, _ := newParticipationService(t)

	_, err := svc.Review(context.Background(), "owner", "e1", []string{"ra"}, domain.RequestStatusPending)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParticipationService_Cancel_Pending(t *testing.T) {
	svc, m := newParticipationService(t)

	request := &domain.Participation{ID: "r1", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusPending}

	m.requestRepo.EXPECT().GetByIDAndRequester(mock.Anything, "r1", "u1").Return(request, nil)
	m.requestRepo.EXPECT().UpdateStatus(mock.Anything, request, domain.RequestStatusPending).Return(nil)

	canceled, err := svc.Cancel(context.Background(), "u1", "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCanceled, canceled.Status)
}

func TestParticipationService_Cancel_Confirmed(t *testing.T) {
	svc, m := newParticipationService(t)

	request := &domain.Participation{ID: "r1", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusConfirmed}

	m.requestRepo.EXPECT().GetByIDAndRequester(mock.Anything, "r1", "u1").Return(request, nil)
	m.requestRepo.EXPECT().UpdateStatus(mock.Anything, request, domain.RequestStatusConfirmed).Return(nil)

	canceled, err := svc.Cancel(context.Background(), "u1", "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCanceled, canceled.Status)
}

func TestParticipationService_Cancel_NotFound(t *testing.T) {
	svc, m := newParticipationService(t)

	m.requestRepo.EXPECT().GetByIDAndRequester(mock.Anything, "r1", "u1").Return(nil, domain.ErrRequestNotFound)

	_, err := svc.Cancel(context.Background(), "u1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestParticipationService_Cancel_TerminalStatusesStick(t *testing.T) {
	for _, status := range []domain.RequestStatus{domain.RequestStatusRejected, domain.RequestStatusCanceled} {
		t.Run(string(status), func(t *testing.T) {
			svc, m := newParticipationService(t)

			request := &domain.Participation{ID: "r1", EventID: "e1", RequesterID: "u1", Status: status}
			m.requestRepo.EXPECT().GetByIDAndRequester(mock.Anything, "r1", "u1").Return(request, nil)

			_, err := svc.Cancel(context.Background(), "u1", "r1")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrRequestFinalized)
			assert.Equal(t, status, request.Status)
		})
	}
}

func TestParticipationService_ListMine(t *testing.T) {
	svc, m := newParticipationService(t)

	requests := []*domain.Participation{
		{ID: "r1", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusPending},
	}
	m.requestRepo.EXPECT().ListByRequester(mock.Anything, "u1").Return(requests, nil)

	result, err := svc.ListMine(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestParticipationService_ListForEvent_Success(t *testing.T) {
	svc, m := newParticipationService(t)

	event := publishedEvent("e1", 5, true)
	requests := []*domain.Participation{
		{ID: "r1", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusPending},
		{ID: "r2", EventID: "e1", RequesterID: "u2", Status: domain.RequestStatusConfirmed},
	}

	m.eventRepo.EXPECT().GetByInitiator(mock.Anything, "e1", "owner").Return(event, nil)
	m.requestRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(requests, nil)

	result, err := svc.ListForEvent(context.Background(), "e1", "owner")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestParticipationService_ListForEvent_NotOwner(t *testing.T) {
	svc, m := newParticipationService(t)

	m.eventRepo.EXPECT().GetByInitiator(mock.Anything, "e1", "intruder").Return(nil, domain.ErrEventNotFound)

	_, err := svc.ListForEvent(context.Background(), "e1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestParticipationService_DeclineStale(t *testing.T) {
	svc, m := newParticipationService(t)

	declined := []*domain.Participation{
		{ID: "r1", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusRejected},
	}
	event := publishedEvent("e1", 5, true)

	m.requestRepo.EXPECT().DeclineStale(mock.Anything).Return(declined, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyRequestRejected(mock.Anything, mock.Anything, event).Return()

	result, err := svc.DeclineStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestParticipationService_DeclineStale_Empty(t *testing.T) {
	svc, m := newParticipationService(t)

	m.requestRepo.EXPECT().DeclineStale(mock.Anything).Return(nil, nil)

	result, err := svc.DeclineStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}
