package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
	"github.com/GlebShishkov/explore-with-me/internal/handler/dto"
	hmocks "github.com/GlebShishkov/explore-with-me/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockParticipationSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	requestSvc := hmocks.NewMockParticipationSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(eventSvc, requestSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.POST("/users/:id/events", h.CreateEvent)
		api.GET("/users/:id/events", h.ListMyEvents)
		api.PATCH("/users/:id/events/:eventId", h.UpdateEvent)
		api.GET("/users/:id/events/:eventId/requests", h.ListEventRequests)
		api.PATCH("/users/:id/events/:eventId/requests", h.ReviewRequests)
		api.POST("/users/:id/requests", h.CreateRequest)
		api.GET("/users/:id/requests", h.ListMyRequests)
		api.PATCH("/users/:id/requests/:reqId/cancel", h.CancelRequest)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PATCH("/admin/events/:id/publish", h.PublishEvent)
		api.PATCH("/admin/events/:id/reject", h.RejectEvent)
	}

	return eventSvc, requestSvc, userSvc, r
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "alice", Email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Name)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "bob", Email: "taken@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	initiatorID := uuid.New().String()
	eventDate := time.Now().Add(48 * time.Hour)
	event := &domain.Event{
		ID:               uuid.New().String(),
		Title:            "Go Meetup",
		InitiatorID:      initiatorID,
		State:            domain.EventStatePending,
		EventDate:        eventDate,
		ParticipantLimit: 50,
		CreatedAt:        time.Now(),
	}

	eventSvc.EXPECT().Create(mock.Anything, initiatorID, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:            "Go Meetup",
		EventDate:        eventDate.Format(time.RFC3339),
		ParticipantLimit: 50,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+initiatorID+"/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Go Meetup", resp.Title)
	assert.Equal(t, "PENDING", resp.State)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","event_date":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+uuid.New().String()+"/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetByID(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Title: "Event 1", EventDate: time.Now(), CreatedAt: time.Now()},
		{ID: "e2", Title: "Event 2", EventDate: time.Now(), CreatedAt: time.Now()},
	}
	eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_PublishEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	event := &domain.Event{ID: eventID, State: domain.EventStatePublished, EventDate: time.Now(), CreatedAt: time.Now()}
	eventSvc.EXPECT().Publish(mock.Anything, eventID).Return(event, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/events/"+eventID+"/publish", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PUBLISHED", resp.State)
}

func TestHandler_PublishEvent_NotPending(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().Publish(mock.Anything, eventID).Return(nil, domain.ErrEventNotPending)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/events/"+eventID+"/publish", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateEvent_Published(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	initiatorID := uuid.New().String()
	eventID := uuid.New().String()
	eventSvc.EXPECT().Update(mock.Anything, initiatorID, eventID, mock.Anything).Return(nil, domain.ErrEventPublished)

	body := []byte(`{"title":"new"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/users/"+initiatorID+"/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Participation requests ---

func TestHandler_CreateRequest_Success(t *testing.T) {
	_, requestSvc, _, r := setupRouter(t)

	requesterID := uuid.New().String()
	eventID := uuid.New().String()
	request := &domain.Participation{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RequesterID: requesterID,
		Status:      domain.RequestStatusPending,
		CreatedAt:   time.Now(),
	}

	requestSvc.EXPECT().Create(mock.Anything, requesterID, eventID).Return(request, nil)

	body, _ := json.Marshal(dto.CreateParticipationRequest{EventID: eventID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+requesterID+"/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ParticipationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
}

func TestHandler_CreateRequest_LimitReached(t *testing.T) {
	_, requestSvc, _, r := setupRouter(t)

	requesterID := uuid.New().String()
	eventID := uuid.New().String()

	requestSvc.EXPECT().Create(mock.Anything, requesterID, eventID).Return(nil, domain.ErrLimitReached)

	body, _ := json.Marshal(dto.CreateParticipationRequest{EventID: eventID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+requesterID+"/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateRequest_Duplicate(t *testing.T) {
	_, requestSvc, _, r := setupRouter(t)

	requesterID := uuid.New().String()
	eventID := uuid.New().String()

	requestSvc.EXPECT().Create(mock.Anything, requesterID, eventID).Return(nil, domain.ErrRequestExists)

	body, _ := json.Marshal(dto.CreateParticipationRequest{EventID: eventID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+requesterID+"/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateRequest_InvalidEventID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"event_id":"not-a-uuid"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+uuid.New().String()+"/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelRequest_Success(t *testing.T) {
	_, requestSvc, _, r := setupRouter(t)

	requesterID := uuid.New().String()
	requestID := uuid.New().String()
	request := &domain.Participation{
		ID:          requestID,
		EventID:     uuid.New().String(),
		RequesterID: requesterID,
		Status:      domain.RequestStatusCanceled,
		CreatedAt:   time.Now(),
	}

	requestSvc.EXPECT().Cancel(mock.Anything, requesterID, requestID).Return(request, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/users/"+requesterID+"/requests/"+requestID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ParticipationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CANCELED", resp.Status)
}

func TestHandler_CancelRequest_Finalized(t *testing.T) {
	_, requestSvc, _, r := setupRouter(t)

	requesterID := uuid.New().String()
	requestID := uuid.New().String()

	requestSvc.EXPECT().Cancel(mock.Anything, requesterID, requestID).Return(nil, domain.ErrRequestFinalized)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/users/"+requesterID+"/requests/"+requestID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListMyRequests_Success(t *testing.T) {
	_, requestSvc, _, r := setupRouter(t)

	requesterID := uuid.New().String()
	requests := []*domain.Participation{
		{ID: "r1", EventID: "e1", RequesterID: requesterID, Status: domain.RequestStatusPending, CreatedAt: time.Now()},
	}
	requestSvc.EXPECT().ListMine(mock.Anything, requesterID).Return(requests, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+requesterID+"/requests", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ParticipationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ReviewRequests_Success(t *testing.T) {
	_, requestSvc, _, r := setupRouter(t)

	initiatorID := uuid.New().String()
	eventID := uuid.New().String()
	requestID := uuid.New().String()
	result := &domain.ReviewResult{
		Confirmed: []*domain.Participation{
			{ID: requestID, EventID: eventID, Status: domain.RequestStatusConfirmed, CreatedAt: time.Now()},
		},
	}

	requestSvc.EXPECT().
		Review(mock.Anything, initiatorID, eventID, []string{requestID}, domain.RequestStatusConfirmed).
		Return(result, nil)

	body, _ := json.Marshal(dto.ReviewRequest{RequestIDs: []string{requestID}, Status: "CONFIRMED"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/users/"+initiatorID+"/events/"+eventID+"/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.ConfirmedRequests, 1)
}

func TestHandler_ReviewRequests_UnknownStatus(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.ReviewRequest{RequestIDs: []string{uuid.New().String()}, Status: "approved"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch,
		"/api/users/"+uuid.New().String()+"/events/"+uuid.New().String()+"/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReviewRequests_PartialConflict(t *testing.T) {
	_, requestSvc, _, r := setupRouter(t)

	initiatorID := uuid.New().String()
	eventID := uuid.New().String()
	confirmedID := uuid.New().String()
	rejectedID := uuid.New().String()
	result := &domain.ReviewResult{
		Confirmed: []*domain.Participation{
			{ID: confirmedID, EventID: eventID, Status: domain.RequestStatusConfirmed, CreatedAt: time.Now()},
		},
		Rejected: []*domain.Participation{
			{ID: rejectedID, EventID: eventID, Status: domain.RequestStatusRejected, CreatedAt: time.Now()},
		},
	}

	requestSvc.EXPECT().
		Review(mock.Anything, initiatorID, eventID, []string{confirmedID, rejectedID}, domain.RequestStatusConfirmed).
		Return(result, domain.ErrLimitReached)

	body, _ := json.Marshal(dto.ReviewRequest{RequestIDs: []string{confirmedID, rejectedID}, Status: "CONFIRMED"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/users/"+initiatorID+"/events/"+eventID+"/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ReviewConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Len(t, resp.Result.ConfirmedRequests, 1)
	assert.Len(t, resp.Result.RejectedRequests, 1)
}

func TestHandler_ListEventRequests_NotOwner(t *testing.T) {
	_, requestSvc, _, r := setupRouter(t)

	initiatorID := uuid.New().String()
	eventID := uuid.New().String()
	requestSvc.EXPECT().ListForEvent(mock.Anything, eventID, initiatorID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+initiatorID+"/events/"+eventID+"/requests", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetByID(mock.Anything, eventID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
