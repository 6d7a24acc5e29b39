package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/validation"
)

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	MarkAttendance(ctx context.Context, in models.NewAttendance) (models.Attendance, error)
	GetAttendanceByID(ctx context.Context, id int64) (models.Attendance, error)
	GetAllAttendance(ctx context.Context) []models.Attendance
	GetAttendanceByStudent(ctx context.Context, studentID int64) []models.Attendance
	GetAttendanceByBatch(ctx context.Context, batchID int64) []models.Attendance
	GetAttendanceByDate(ctx context.Context, date time.Time) []models.Attendance
	GetAttendanceByBatchAndDate(ctx context.Context, batchID int64, date time.Time) []models.Attendance
	UpdateAttendance(ctx context.Context, id int64, p models.AttendancePatch) (models.Attendance, error)
	DeleteAttendance(ctx context.Context, id int64)
}

type attendanceServiceImpl struct {
	attendanceRepo *repositories.AttendanceRepository
	logger         zerolog.Logger
}

func NewAttendanceService(attendanceRepo *repositories.AttendanceRepository, logger zerolog.Logger) AttendanceService {
	return &attendanceServiceImpl{attendanceRepo: attendanceRepo, logger: logger}
}

func (s *attendanceServiceImpl) MarkAttendance(ctx context.Context, in models.NewAttendance) (models.Attendance, error) {
	if err := validation.Struct(in); err != nil {
		return models.Attendance{}, err
	}
	record := s.attendanceRepo.Create(in)
	s.logger.Debug().
		Int64("attendanceID", record.ID).
		Int64("studentID", record.StudentID).
		Int64("batchID", record.BatchID).
		Msg("Attendance marked")
	return record, nil
}

func (s *attendanceServiceImpl) GetAttendanceByID(ctx context.Context, id int64) (models.Attendance, error) {
	record, ok := s.attendanceRepo.GetByID(id)
	if !ok {
		return models.Attendance{}, apperrors.ErrAttendanceNotFound
	}
	return record, nil
}

func (s *attendanceServiceImpl) GetAllAttendance(ctx context.Context) []models.Attendance {
	return s.attendanceRepo.GetAll()
}

func (s *attendanceServiceImpl) GetAttendanceByStudent(ctx context.Context, studentID int64) []models.Attendance {
	return s.attendanceRepo.GetByStudent(studentID)
}

func (s *attendanceServiceImpl) GetAttendanceByBatch(ctx context.Context, batchID int64) []models.Attendance {
	return s.attendanceRepo.GetByBatch(batchID)
}

func (s *attendanceServiceImpl) GetAttendanceByDate(ctx context.Context, date time.Time) []models.Attendance {
	return s.attendanceRepo.GetByDate(date)
}

func (s *attendanceServiceImpl) GetAttendanceByBatchAndDate(ctx context.Context, batchID int64, date time.Time) []models.Attendance {
	return s.attendanceRepo.GetByBatchAndDate(batchID, date)
}

func (s *attendanceServiceImpl) UpdateAttendance(ctx context.Context, id int64, p models.AttendancePatch) (models.Attendance, error) {
	e := validation.Errors{}
	validation.Required(e, "studentId", p.StudentID)
	validation.Positive(e, "studentId", p.StudentID)
	validation.Required(e, "batchId", p.BatchID)
	validation.Positive(e, "batchId", p.BatchID)
	e.OneOf("status", p.Status, false, validation.AttendanceStatuses...)
	if err := e.Err(); err != nil {
		return models.Attendance{}, err
	}
	return s.attendanceRepo.Update(id, p)
}

func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) {
	s.attendanceRepo.Delete(id)
}
