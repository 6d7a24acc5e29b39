package services

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/filestorage"
	"github.com/yigit/coachdesk/internal/pkg/websocket"
)

// Notifier pushes real-time events to subscribers.
type Notifier interface {
	Publish(n *websocket.Notification)
}

// Services bundles every service built over one record store.
type Services struct {
	StudentService    StudentService
	TeacherService    TeacherService
	CourseService     CourseService
	BatchService      BatchService
	EnrollmentService EnrollmentService
	ExamService       ExamService
	ExamResultService ExamResultService
	AttendanceService AttendanceService
	FeeService        FeeService
	MessageService    MessageService
	DashboardService  DashboardService
}

// Options carries the optional collaborators of NewServices.
type Options struct {
	// Storage backs student photo uploads; uploads fail without it
	Storage filestorage.FileStorage
	// Notifier receives message.created events when set
	Notifier Notifier
	// Clock defines "now" for dashboard windows; defaults to time.Now
	Clock func() time.Time
}

// NewServices wires every service to repos.
func NewServices(repos *repositories.Repositories, opts Options, logger zerolog.Logger) *Services {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Services{
		StudentService:    NewStudentService(repos.StudentRepository, opts.Storage, logger),
		TeacherService:    NewTeacherService(repos.TeacherRepository, logger),
		CourseService:     NewCourseService(repos.CourseRepository, logger),
		BatchService:      NewBatchService(repos.BatchRepository, logger),
		EnrollmentService: NewEnrollmentService(repos.EnrollmentRepository, logger),
		ExamService:       NewExamService(repos.ExamRepository, logger),
		ExamResultService: NewExamResultService(repos.ExamResultRepository, logger),
		AttendanceService: NewAttendanceService(repos.AttendanceRepository, logger),
		FeeService:        NewFeeService(repos.FeeRepository, logger),
		MessageService:    NewMessageService(repos.MessageRepository, opts.Notifier, logger),
		DashboardService:  NewDashboardService(repos, clock),
	}
}
