package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/services"
	"github.com/yigit/coachdesk/internal/middleware"
)

// FeeController handles fee operations
type FeeController struct {
	feeService services.FeeService
}

func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// CreateFee records a fee
// @Summary Create a fee
// @Description status defaults to pending
// @Tags fees
// @Accept json
// @Produce json
// @Param request body models.NewFee true "Fee information"
// @Success 201 {object} dto.APIResponse{data=models.Fee}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /fees [post]
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var in models.NewFee
	if !bindJSON(ctx, &in) {
		return
	}
	fee, err := c.feeService.CreateFee(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, fee)
}

// GetFeeByID retrieves a fee by ID
// @Summary Get fee details
// @Tags fees
// @Produce json
// @Param id path int true "Fee ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Fee}
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{id} [get]
func (c *FeeController) GetFeeByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	fee, err := c.feeService.GetFeeByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, fee)
}

// GetAllFees lists fees, optionally by student and/or batch
// @Summary List fees
// @Tags fees
// @Produce json
// @Param studentId query int false "Only fees of this student"
// @Param batchId query int false "Only fees of this batch"
// @Param page query int false "Page number (1-based); enables pagination"
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Fee}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /fees [get]
func (c *FeeController) GetAllFees(ctx *gin.Context) {
	studentID, byStudent, ok := queryID(ctx, "studentId")
	if !ok {
		return
	}
	batchID, byBatch, ok := queryID(ctx, "batchId")
	if !ok {
		return
	}

	rctx := ctx.Request.Context()
	var fees []models.Fee
	switch {
	case byStudent:
		fees = c.feeService.GetFeesByStudent(rctx, studentID)
		if byBatch {
			fees = filter(fees, func(f models.Fee) bool { return f.BatchID != nil && *f.BatchID == batchID })
		}
	case byBatch:
		fees = c.feeService.GetFeesByBatch(rctx, batchID)
	default:
		fees = c.feeService.GetAllFees(rctx)
	}
	respondList(ctx, fees)
}

// UpdateFee partially updates a fee
// @Summary Update a fee
// @Tags fees
// @Accept json
// @Produce json
// @Param id path int true "Fee ID" Format(int64) minimum(1)
// @Param request body models.FeePatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Fee}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{id} [put]
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var p models.FeePatch
	if !bindJSON(ctx, &p) {
		return
	}
	fee, err := c.feeService.UpdateFee(ctx.Request.Context(), id, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, fee)
}

// DeleteFee removes a fee
// @Summary Delete a fee
// @Tags fees
// @Param id path int true "Fee ID" Format(int64) minimum(1)
// @Success 204 "Fee deleted"
// @Router /fees/{id} [delete]
func (c *FeeController) DeleteFee(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.feeService.DeleteFee(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}
