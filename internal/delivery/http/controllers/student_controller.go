package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"campusservice/internal/delivery/http/helpers"
	"campusservice/internal/domain"
)

type StudentController struct {
	Logger  *slog.Logger
	Service domain.StudentService
}

func NewStudentController(logger *slog.Logger, svc domain.StudentService) *StudentController {
	return &StudentController{Logger: logger, Service: svc}
}

// CreateStudentRequest is the request body for POST /api/students.
type CreateStudentRequest struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Dept      string `json:"dept"`
	Year      int    `json:"year"`
	Contact   string `json:"contact"`
}

// Validate implements helpers.Validator.
func (r *CreateStudentRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.StudentID) == "" {
		errs = append(errs, "student_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.Year < 0 {
		errs = append(errs, "year must not be negative")
	}
	return errs
}

// CreateStudent godoc
// @Summary Create a student
// @Description Stores a new student with a caller-supplied id.
// @Tags students
// @Accept json
// @Produce json
// @Param body body controllers.CreateStudentRequest true "Student"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/students [post]
func (c *StudentController) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req CreateStudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	student := domain.NewStudent(req.StudentID, req.Name, req.Dept, req.Year, req.Contact, time.Time{})
	if err := c.Service.AddStudent(r.Context(), student); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "student id already exists")
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
	helpers.WriteJSONSuccess(w, http.StatusCreated, student)
}

// ListStudents godoc
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/students [get]
func (c *StudentController) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := c.Service.ListStudents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, students)
}
