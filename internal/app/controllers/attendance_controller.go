package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/services"
	"github.com/yigit/coachdesk/internal/middleware"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/helpers"
)

// AttendanceController handles attendance operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance records a student's attendance
// @Summary Mark attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body models.NewAttendance true "Attendance information"
// @Success 201 {object} dto.APIResponse{data=models.Attendance}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var in models.NewAttendance
	if !bindJSON(ctx, &in) {
		return
	}
	record, err := c.attendanceService.MarkAttendance(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, record)
}

// GetAttendanceByID retrieves an attendance record by ID
// @Summary Get attendance record
// @Tags attendance
// @Produce json
// @Param id path int true "Attendance ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Attendance}
// @Failure 404 {object} dto.ErrorResponse "Attendance not found"
// @Router /attendance/{id} [get]
func (c *AttendanceController) GetAttendanceByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	record, err := c.attendanceService.GetAttendanceByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, record)
}

// GetAllAttendance lists attendance, optionally by student, batch and day
// @Summary List attendance
// @Description date matches on the calendar day; records without a date never match
// @Tags attendance
// @Produce json
// @Param studentId query int false "Only records of this student"
// @Param batchId query int false "Only records of this batch"
// @Param date query string false "Calendar day, YYYY-MM-DD or RFC 3339"
// @Param page query int false "Page number (1-based); enables pagination"
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /attendance [get]
func (c *AttendanceController) GetAllAttendance(ctx *gin.Context) {
	studentID, byStudent, ok := queryID(ctx, "studentId")
	if !ok {
		return
	}
	batchID, byBatch, ok := queryID(ctx, "batchId")
	if !ok {
		return
	}
	var day time.Time
	raw, byDate := ctx.GetQuery("date")
	if byDate {
		d, err := helpers.ParseDate(raw)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(err.Error()))
			return
		}
		day = d
	}

	rctx := ctx.Request.Context()
	var records []models.Attendance
	switch {
	case byBatch && byDate:
		records = c.attendanceService.GetAttendanceByBatchAndDate(rctx, batchID, day)
	case byDate:
		records = c.attendanceService.GetAttendanceByDate(rctx, day)
	case byBatch:
		records = c.attendanceService.GetAttendanceByBatch(rctx, batchID)
	case byStudent:
		records = c.attendanceService.GetAttendanceByStudent(rctx, studentID)
	default:
		records = c.attendanceService.GetAllAttendance(rctx)
	}
	if byStudent && (byBatch || byDate) {
		records = filter(records, func(a models.Attendance) bool { return a.StudentID == studentID })
	}
	respondList(ctx, records)
}

// UpdateAttendance partially updates an attendance record
// @Summary Update attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Attendance ID" Format(int64) minimum(1)
// @Param request body models.AttendancePatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Attendance}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Attendance not found"
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var p models.AttendancePatch
	if !bindJSON(ctx, &p) {
		return
	}
	record, err := c.attendanceService.UpdateAttendance(ctx.Request.Context(), id, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, record)
}

// DeleteAttendance removes an attendance record
// @Summary Delete attendance
// @Tags attendance
// @Param id path int true "Attendance ID" Format(int64) minimum(1)
// @Success 204 "Attendance deleted"
// @Router /attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.attendanceService.DeleteAttendance(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}
