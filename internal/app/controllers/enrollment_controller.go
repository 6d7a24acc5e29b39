package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/services"
	"github.com/yigit/coachdesk/internal/middleware"
)

// EnrollmentController handles enrollment-related operations.
// Enrollments are created and deleted, never edited.
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// CreateEnrollment enrolls a student in a batch
// @Summary Create an enrollment
// @Description studentId and batchId are not checked against existing records
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body models.NewEnrollment true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var in models.NewEnrollment
	if !bindJSON(ctx, &in) {
		return
	}
	enrollment, err := c.enrollmentService.CreateEnrollment(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, enrollment)
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment details
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, enrollment)
}

// GetAllEnrollments lists enrollments, optionally by student and/or batch
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Param studentId query int false "Only enrollments of this student"
// @Param batchId query int false "Only enrollments in this batch"
// @Param page query int false "Page number (1-based); enables pagination"
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	studentID, byStudent, ok := queryID(ctx, "studentId")
	if !ok {
		return
	}
	batchID, byBatch, ok := queryID(ctx, "batchId")
	if !ok {
		return
	}

	rctx := ctx.Request.Context()
	var enrollments []models.Enrollment
	switch {
	case byStudent:
		enrollments = c.enrollmentService.GetEnrollmentsByStudent(rctx, studentID)
		if byBatch {
			enrollments = filter(enrollments, func(e models.Enrollment) bool { return e.BatchID == batchID })
		}
	case byBatch:
		enrollments = c.enrollmentService.GetEnrollmentsByBatch(rctx, batchID)
	default:
		enrollments = c.enrollmentService.GetAllEnrollments(rctx)
	}
	respondList(ctx, enrollments)
}

// DeleteEnrollment removes an enrollment
// @Summary Delete an enrollment
// @Tags enrollments
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 204 "Enrollment deleted"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.enrollmentService.DeleteEnrollment(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}
