package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/services"
	"github.com/yigit/coachdesk/internal/middleware"
)

// ExamResultController handles exam result operations
type ExamResultController struct {
	examResultService services.ExamResultService
}

func NewExamResultController(examResultService services.ExamResultService) *ExamResultController {
	return &ExamResultController{examResultService: examResultService}
}

// CreateExamResult records a student's marks
// @Summary Create an exam result
// @Tags exam-results
// @Accept json
// @Produce json
// @Param request body models.NewExamResult true "Result information"
// @Success 201 {object} dto.APIResponse{data=models.ExamResult}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /exam-results [post]
func (c *ExamResultController) CreateExamResult(ctx *gin.Context) {
	var in models.NewExamResult
	if !bindJSON(ctx, &in) {
		return
	}
	result, err := c.examResultService.CreateExamResult(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, result)
}

// GetExamResultByID retrieves an exam result by ID
// @Summary Get exam result details
// @Tags exam-results
// @Produce json
// @Param id path int true "Exam result ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.ExamResult}
// @Failure 404 {object} dto.ErrorResponse "Exam result not found"
// @Router /exam-results/{id} [get]
func (c *ExamResultController) GetExamResultByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	result, err := c.examResultService.GetExamResultByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, result)
}

// GetAllExamResults lists results, optionally by exam and/or student
// @Summary List exam results
// @Tags exam-results
// @Produce json
// @Param examId query int false "Only results of this exam"
// @Param studentId query int false "Only results of this student"
// @Param page query int false "Page number (1-based); enables pagination"
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.ExamResult}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /exam-results [get]
func (c *ExamResultController) GetAllExamResults(ctx *gin.Context) {
	examID, byExam, ok := queryID(ctx, "examId")
	if !ok {
		return
	}
	studentID, byStudent, ok := queryID(ctx, "studentId")
	if !ok {
		return
	}

	rctx := ctx.Request.Context()
	var results []models.ExamResult
	switch {
	case byExam:
		results = c.examResultService.GetExamResultsByExam(rctx, examID)
		if byStudent {
			results = filter(results, func(r models.ExamResult) bool { return r.StudentID == studentID })
		}
	case byStudent:
		results = c.examResultService.GetExamResultsByStudent(rctx, studentID)
	default:
		results = c.examResultService.GetAllExamResults(rctx)
	}
	respondList(ctx, results)
}

// UpdateExamResult partially updates an exam result
// @Summary Update an exam result
// @Tags exam-results
// @Accept json
// @Produce json
// @Param id path int true "Exam result ID" Format(int64) minimum(1)
// @Param request body models.ExamResultPatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.ExamResult}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Exam result not found"
// @Router /exam-results/{id} [put]
func (c *ExamResultController) UpdateExamResult(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var p models.ExamResultPatch
	if !bindJSON(ctx, &p) {
		return
	}
	result, err := c.examResultService.UpdateExamResult(ctx.Request.Context(), id, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, result)
}

// DeleteExamResult removes an exam result
// @Summary Delete an exam result
// @Tags exam-results
// @Param id path int true "Exam result ID" Format(int64) minimum(1)
// @Success 204 "Exam result deleted"
// @Router /exam-results/{id} [delete]
func (c *ExamResultController) DeleteExamResult(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.examResultService.DeleteExamResult(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}
