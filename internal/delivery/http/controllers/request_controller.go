package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campusservice/internal/delivery/http/helpers"
	"campusservice/internal/domain"
)

type RequestController struct {
	Logger  *slog.Logger
	Service domain.ServiceRequestService
}

func NewRequestController(logger *slog.Logger, svc domain.ServiceRequestService) *RequestController {
	return &RequestController{Logger: logger, Service: svc}
}

// CreateServiceRequestRequest is the request body for POST /api/requests.
type CreateServiceRequestRequest struct {
	RequestID   string `json:"request_id"`
	StudentID   string `json:"student_id"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Validate implements helpers.Validator.
func (r *CreateServiceRequestRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.RequestID) == "" {
		errs = append(errs, "request_id is required")
	}
	if strings.TrimSpace(r.StudentID) == "" {
		errs = append(errs, "student_id is required")
	}
	if strings.TrimSpace(r.Category) == "" {
		errs = append(errs, "category is required")
	}
	return errs
}

// CreateServiceRequest godoc
// @Summary Create a service request
// @Description Stores a new service request with status Open.
// @Tags requests
// @Accept json
// @Produce json
// @Param body body controllers.CreateServiceRequestRequest true "Service request"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/requests [post]
func (c *RequestController) CreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	sr := &domain.ServiceRequest{
		ID:          req.RequestID,
		StudentID:   req.StudentID,
		Category:    req.Category,
		Location:    req.Location,
		Description: req.Description,
	}
	created, err := c.Service.CreateRequest(r.Context(), sr)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "student not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateID) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "request id already exists")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListServiceRequests godoc
// @Summary List service requests
// @Tags requests
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/requests [get]
func (c *RequestController) ListServiceRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := c.Service.ListRequests(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reqs)
}

// UpdateRequestStatusRequest is the request body for PATCH /api/requests/{requestID}.
type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements helpers.Validator.
func (r *UpdateRequestStatusRequest) Validate() []string {
	if strings.TrimSpace(r.Status) == "" {
		return []string{"status is required"}
	}
	return nil
}

// UpdateRequestStatus godoc
// @Summary Update a service request's status
// @Description Moves the request along the Open -> In-Progress -> Resolved lifecycle. Re-affirming the current status bumps updated_at; any other move is rejected.
// @Tags requests
// @Accept json
// @Produce json
// @Param requestID path string true "Request ID"
// @Param body body controllers.UpdateRequestStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/requests/{requestID} [patch]
func (c *RequestController) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("requestID")
	if requestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing requestID")
		return
	}
	var req UpdateRequestStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	updated, err := c.Service.UpdateStatus(r.Context(), requestID, req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "service request not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidTransition) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}
