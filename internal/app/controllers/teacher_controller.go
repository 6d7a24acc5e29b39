package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/services"
	"github.com/yigit/coachdesk/internal/middleware"
)

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body models.NewTeacher true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher} "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var in models.NewTeacher
	if !bindJSON(ctx, &in) {
		return
	}
	teacher, err := c.teacherService.CreateTeacher(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, teacher)
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher details
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, teacher)
}

// GetAllTeachers lists teachers
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Param page query int false "Page number (1-based); enables pagination"
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher}
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	respondList(ctx, c.teacherService.GetAllTeachers(ctx.Request.Context()))
}

// UpdateTeacher partially updates a teacher
// @Summary Update a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Param request body models.TeacherPatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var p models.TeacherPatch
	if !bindJSON(ctx, &p) {
		return
	}
	teacher, err := c.teacherService.UpdateTeacher(ctx.Request.Context(), id, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, teacher)
}

// DeleteTeacher removes a teacher
// @Summary Delete a teacher
// @Tags teachers
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 204 "Teacher deleted"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.teacherService.DeleteTeacher(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}
