package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/services"
	"github.com/yigit/coachdesk/internal/middleware"
)

// ExamController handles exam-related operations
type ExamController struct {
	examService services.ExamService
}

func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// CreateExam handles exam creation
// @Summary Create a new exam
// @Tags exams
// @Accept json
// @Produce json
// @Param request body models.NewExam true "Exam information"
// @Success 201 {object} dto.APIResponse{data=models.Exam}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var in models.NewExam
	if !bindJSON(ctx, &in) {
		return
	}
	exam, err := c.examService.CreateExam(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, exam)
}

// GetExamByID retrieves an exam by ID
// @Summary Get exam details
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Exam}
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [get]
func (c *ExamController) GetExamByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	exam, err := c.examService.GetExamByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, exam)
}

// GetAllExams lists exams, optionally for one batch
// @Summary List exams
// @Tags exams
// @Produce json
// @Param batchId query int false "Only exams of this batch"
// @Param page query int false "Page number (1-based); enables pagination"
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Exam}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /exams [get]
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	batchID, byBatch, ok := queryID(ctx, "batchId")
	if !ok {
		return
	}
	if byBatch {
		respondList(ctx, c.examService.GetExamsByBatch(ctx.Request.Context(), batchID))
		return
	}
	respondList(ctx, c.examService.GetAllExams(ctx.Request.Context()))
}

// UpdateExam partially updates an exam
// @Summary Update an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Param request body models.ExamPatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Exam}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var p models.ExamPatch
	if !bindJSON(ctx, &p) {
		return
	}
	exam, err := c.examService.UpdateExam(ctx.Request.Context(), id, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, exam)
}

// DeleteExam removes an exam
// @Summary Delete an exam
// @Tags exams
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Success 204 "Exam deleted"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.examService.DeleteExam(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}
