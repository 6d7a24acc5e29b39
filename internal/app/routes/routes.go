package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coachdesk/internal/app/controllers"
	"github.com/yigit/coachdesk/internal/app/models/dto"
)

// Controllers groups every HTTP handler set mounted by SetupRouter.
type Controllers struct {
	Student    *controllers.StudentController
	Teacher    *controllers.TeacherController
	Course     *controllers.CourseController
	Batch      *controllers.BatchController
	Enrollment *controllers.EnrollmentController
	Exam       *controllers.ExamController
	ExamResult *controllers.ExamResultController
	Attendance *controllers.AttendanceController
	Fee        *controllers.FeeController
	Message    *controllers.MessageController
	Dashboard  *controllers.DashboardController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	api := router.Group("/api")

	students := api.Group("/students")
	{
		students.GET("", c.Student.GetAllStudents)
		students.POST("", c.Student.CreateStudent)
		students.GET("/:id", c.Student.GetStudentByID)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
		students.POST("/:id/photo", c.Student.UploadPhoto)
	}

	teachers := api.Group("/teachers")
	{
		teachers.GET("", c.Teacher.GetAllTeachers)
		teachers.POST("", c.Teacher.CreateTeacher)
		teachers.GET("/:id", c.Teacher.GetTeacherByID)
		teachers.PUT("/:id", c.Teacher.UpdateTeacher)
		teachers.DELETE("/:id", c.Teacher.DeleteTeacher)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", c.Course.GetAllCourses)
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:id", c.Course.GetCourseByID)
		courses.PUT("/:id", c.Course.UpdateCourse)
		courses.DELETE("/:id", c.Course.DeleteCourse)
	}

	batches := api.Group("/batches")
	{
		batches.GET("", c.Batch.GetAllBatches) // ?courseId= &teacherId=
		batches.POST("", c.Batch.CreateBatch)
		batches.GET("/:id", c.Batch.GetBatchByID)
		batches.PUT("/:id", c.Batch.UpdateBatch)
		batches.DELETE("/:id", c.Batch.DeleteBatch)
	}

	// Enrollments have no update
	enrollments := api.Group("/enrollments")
	{
		enrollments.GET("", c.Enrollment.GetAllEnrollments)
		enrollments.POST("", c.Enrollment.CreateEnrollment)
		enrollments.GET("/:id", c.Enrollment.GetEnrollmentByID)
		enrollments.DELETE("/:id", c.Enrollment.DeleteEnrollment)
	}

	exams := api.Group("/exams")
	{
		exams.GET("", c.Exam.GetAllExams)
		exams.POST("", c.Exam.CreateExam)
		exams.GET("/:id", c.Exam.GetExamByID)
		exams.PUT("/:id", c.Exam.UpdateExam)
		exams.DELETE("/:id", c.Exam.DeleteExam)
	}

	results := api.Group("/exam-results")
	{
		results.GET("", c.ExamResult.GetAllExamResults)
		results.POST("", c.ExamResult.CreateExamResult)
		results.GET("/:id", c.ExamResult.GetExamResultByID)
		results.PUT("/:id", c.ExamResult.UpdateExamResult)
		results.DELETE("/:id", c.ExamResult.DeleteExamResult)
	}

	attendance := api.Group("/attendance")
	{
		attendance.GET("", c.Attendance.GetAllAttendance)
		attendance.POST("", c.Attendance.MarkAttendance)
		attendance.GET("/:id", c.Attendance.GetAttendanceByID)
		attendance.PUT("/:id", c.Attendance.UpdateAttendance)
		attendance.DELETE("/:id", c.Attendance.DeleteAttendance)
	}

	fees := api.Group("/fees")
	{
		fees.GET("", c.Fee.GetAllFees)
		fees.POST("", c.Fee.CreateFee)
		fees.GET("/:id", c.Fee.GetFeeByID)
		fees.PUT("/:id", c.Fee.UpdateFee)
		fees.DELETE("/:id", c.Fee.DeleteFee)
	}

	// Messages have no update. /ws is registered before /:id so the
	// static segment wins.
	messages := api.Group("/messages")
	{
		messages.GET("", c.Message.GetAllMessages)
		messages.POST("", c.Message.SendMessage)
		messages.GET("/ws", c.Message.Subscribe)
		messages.GET("/:id", c.Message.GetMessageByID)
		messages.DELETE("/:id", c.Message.DeleteMessage)
	}

	api.GET("/dashboard/metrics", c.Dashboard.GetMetrics)

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
