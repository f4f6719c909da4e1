package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusservice/internal/delivery/http/helpers"
	"campusservice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServiceRequestService implements domain.ServiceRequestService for handler tests.
type fakeServiceRequestService struct {
	createErr        error
	updateErr        error
	updateResult     *domain.ServiceRequest
	listErr          error
	listResult       []*domain.ServiceRequest
	lastCreated      *domain.ServiceRequest
	lastUpdateID     string
	lastUpdateStatus string
}

func (f *fakeServiceRequestService) CreateRequest(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	f.lastCreated = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	req.Status = domain.RequestOpen
	return req, nil
}

func (f *fakeServiceRequestService) UpdateStatus(ctx context.Context, requestID, newStatus string) (*domain.ServiceRequest, error) {
	f.lastUpdateID = requestID
	f.lastUpdateStatus = newStatus
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeServiceRequestService) ListRequests(ctx context.Context) ([]*domain.ServiceRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func TestRequestController_CreateServiceRequest(t *testing.T) {
	svc := &fakeServiceRequestService{}
	ctrl := NewRequestController(testLogger, svc)

	body, _ := json.Marshal(CreateServiceRequestRequest{
		RequestID: "R001",
		StudentID: "S1",
		Category:  "electrical",
		Location:  "Dorm 4",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/requests", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.CreateServiceRequest(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastCreated)
	assert.Equal(t, "R001", svc.lastCreated.ID)
	assert.Equal(t, "S1", svc.lastCreated.StudentID)
}

func TestRequestController_CreateServiceRequest_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCode   int
		wantErr    string
	}{
		{"unknown student", domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"duplicate id", domain.ErrDuplicateID, http.StatusConflict, helpers.ErrCodeConflict},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, helpers.ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeServiceRequestService{createErr: tt.serviceErr}
			ctrl := NewRequestController(testLogger, svc)

			body, _ := json.Marshal(CreateServiceRequestRequest{
				RequestID: "R001", StudentID: "S1", Category: "wifi",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/requests", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			ctrl.CreateServiceRequest(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			resp := decodeEnvelope(t, rec.Body)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantErr, resp.Error.Code)
		})
	}
}

func TestRequestController_CreateServiceRequest_MissingFields(t *testing.T) {
	svc := &fakeServiceRequestService{}
	ctrl := NewRequestController(testLogger, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/requests", bytes.NewBufferString(`{"request_id":"R001"}`))
	rec := httptest.NewRecorder()
	ctrl.CreateServiceRequest(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastCreated)
}

func TestRequestController_UpdateRequestStatus(t *testing.T) {
	svc := &fakeServiceRequestService{
		updateResult: &domain.ServiceRequest{ID: "R001", Status: domain.RequestInProgress},
	}
	ctrl := NewRequestController(testLogger, svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/requests/R001", bytes.NewBufferString(`{"status":"In-Progress"}`))
	req.SetPathValue("requestID", "R001")
	rec := httptest.NewRecorder()
	ctrl.UpdateRequestStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "R001", svc.lastUpdateID)
	assert.Equal(t, domain.RequestInProgress, svc.lastUpdateStatus)
}

func TestRequestController_UpdateRequestStatus_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCode   int
		wantErr    string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusConflict, helpers.ErrCodeConflict},
		{"unknown status", domain.ErrInvalidInput, http.StatusBadRequest, helpers.ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeServiceRequestService{updateErr: tt.serviceErr}
			ctrl := NewRequestController(testLogger, svc)

			req := httptest.NewRequest(http.MethodPatch, "/api/requests/R001", bytes.NewBufferString(`{"status":"Resolved"}`))
			req.SetPathValue("requestID", "R001")
			rec := httptest.NewRecorder()
			ctrl.UpdateRequestStatus(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			resp := decodeEnvelope(t, rec.Body)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantErr, resp.Error.Code)
		})
	}
}

func TestRequestController_ListServiceRequests(t *testing.T) {
	svc := &fakeServiceRequestService{listResult: []*domain.ServiceRequest{
		{ID: "R001", StudentID: "S1", Category: "wifi", Status: domain.RequestOpen},
		{ID: "R002", StudentID: "S2", Category: "plumbing", Status: domain.RequestResolved},
	}}
	ctrl := NewRequestController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	rec := httptest.NewRecorder()
	ctrl.ListServiceRequests(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec.Body)
	assert.Nil(t, resp.Error)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var requests []map[string]any
	require.NoError(t, json.Unmarshal(raw, &requests))
	require.Len(t, requests, 2)
	assert.Equal(t, "R001", requests[0]["request_id"])
}
