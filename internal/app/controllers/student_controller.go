package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/models/dto"
	"github.com/yigit/coachdesk/internal/app/services"
	"github.com/yigit/coachdesk/internal/middleware"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a student; enrollmentDate and isActive are filled in by the server
// @Tags students
// @Accept json
// @Produce json
// @Param request body models.NewStudent true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var in models.NewStudent
	if !bindJSON(ctx, &in) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, student)
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, student)
}

// GetAllStudents lists students in creation order
// @Summary List students
// @Tags students
// @Produce json
// @Param page query int false "Page number (1-based); enables pagination"
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	respondList(ctx, c.studentService.GetAllStudents(ctx.Request.Context()))
}

// UpdateStudent partially updates a student
// @Summary Update a student
// @Description Only the supplied fields change; null clears an optional field
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body models.StudentPatch true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var p models.StudentPatch
	if !bindJSON(ctx, &p) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, student)
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Description Deleting an unknown id succeeds. Related records are kept.
// @Tags students
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 204 "Student deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.studentService.DeleteStudent(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}

// UploadPhoto stores a student's photo
// @Summary Upload a student photo
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param photo formData file true "jpg, png or webp image"
// @Success 200 {object} dto.APIResponse{data=dto.PhotoUploadResponse} "Photo stored"
// @Failure 400 {object} dto.ErrorResponse "Missing or unsupported file"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/photo [post]
func (c *StudentController) UploadPhoto(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("photo")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("validation failed", map[string]string{"photo": "photo is required"}))
		return
	}

	student, err := c.studentService.UploadPhoto(ctx.Request.Context(), id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.PhotoUploadResponse{StudentID: student.ID, Photo: *student.Photo})
}
