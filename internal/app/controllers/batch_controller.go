package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/services"
	"github.com/yigit/coachdesk/internal/middleware"
)

// BatchController handles batch-related operations
type BatchController struct {
	batchService services.BatchService
}

func NewBatchController(batchService services.BatchService) *BatchController {
	return &BatchController{batchService: batchService}
}

// CreateBatch handles batch creation
// @Summary Create a new batch
// @Description capacity defaults to 30; currentEnrollment always starts at 0
// @Tags batches
// @Accept json
// @Produce json
// @Param request body models.NewBatch true "Batch information"
// @Success 201 {object} dto.APIResponse{data=models.Batch}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /batches [post]
func (c *BatchController) CreateBatch(ctx *gin.Context) {
	var in models.NewBatch
	if !bindJSON(ctx, &in) {
		return
	}
	batch, err := c.batchService.CreateBatch(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, batch)
}

// GetBatchByID retrieves a batch by ID
// @Summary Get batch details
// @Tags batches
// @Produce json
// @Param id path int true "Batch ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Batch}
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /batches/{id} [get]
func (c *BatchController) GetBatchByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	batch, err := c.batchService.GetBatchByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, batch)
}

// GetAllBatches lists batches, optionally by course and/or teacher
// @Summary List batches
// @Tags batches
// @Produce json
// @Param courseId query int false "Only batches of this course"
// @Param teacherId query int false "Only batches taught by this teacher"
// @Param page query int false "Page number (1-based); enables pagination"
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Batch}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /batches [get]
func (c *BatchController) GetAllBatches(ctx *gin.Context) {
	courseID, byCourse, ok := queryID(ctx, "courseId")
	if !ok {
		return
	}
	teacherID, byTeacher, ok := queryID(ctx, "teacherId")
	if !ok {
		return
	}

	rctx := ctx.Request.Context()
	var batches []models.Batch
	switch {
	case byCourse:
		batches = c.batchService.GetBatchesByCourse(rctx, courseID)
		if byTeacher {
			batches = filter(batches, func(b models.Batch) bool { return b.TeacherID == teacherID })
		}
	case byTeacher:
		batches = c.batchService.GetBatchesByTeacher(rctx, teacherID)
	default:
		batches = c.batchService.GetAllBatches(rctx)
	}
	respondList(ctx, batches)
}

// UpdateBatch partially updates a batch
// @Summary Update a batch
// @Description currentEnrollment is server managed and cannot be set
// @Tags batches
// @Accept json
// @Produce json
// @Param id path int true "Batch ID" Format(int64) minimum(1)
// @Param request body models.BatchPatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Batch}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /batches/{id} [put]
func (c *BatchController) UpdateBatch(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var p models.BatchPatch
	if !bindJSON(ctx, &p) {
		return
	}
	batch, err := c.batchService.UpdateBatch(ctx.Request.Context(), id, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, batch)
}

// DeleteBatch removes a batch
// @Summary Delete a batch
// @Tags batches
// @Param id path int true "Batch ID" Format(int64) minimum(1)
// @Success 204 "Batch deleted"
// @Router /batches/{id} [delete]
func (c *BatchController) DeleteBatch(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.batchService.DeleteBatch(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}
