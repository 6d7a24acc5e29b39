package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/validation"
)

// EnrollmentService defines the interface for enrollment operations.
// Enrollments are created and deleted, never updated.
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, in models.NewEnrollment) (models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (models.Enrollment, error)
	GetAllEnrollments(ctx context.Context) []models.Enrollment
	GetEnrollmentsByStudent(ctx context.Context, studentID int64) []models.Enrollment
	GetEnrollmentsByBatch(ctx context.Context, batchID int64) []models.Enrollment
	DeleteEnrollment(ctx context.Context, id int64)
}

type enrollmentServiceImpl struct {
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository, logger zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{enrollmentRepo: enrollmentRepo, logger: logger}
}

func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, in models.NewEnrollment) (models.Enrollment, error) {
	if err := validation.Struct(in); err != nil {
		return models.Enrollment{}, err
	}
	enrollment := s.enrollmentRepo.Create(in)
	s.logger.Info().
		Int64("enrollmentID", enrollment.ID).
		Int64("studentID", enrollment.StudentID).
		Int64("batchID", enrollment.BatchID).
		Msg("Enrollment created")
	return enrollment, nil
}

func (s *enrollmentServiceImpl) GetEnrollmentByID(ctx context.Context, id int64) (models.Enrollment, error) {
	enrollment, ok := s.enrollmentRepo.GetByID(id)
	if !ok {
		return models.Enrollment{}, apperrors.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (s *enrollmentServiceImpl) GetAllEnrollments(ctx context.Context) []models.Enrollment {
	return s.enrollmentRepo.GetAll()
}

func (s *enrollmentServiceImpl) GetEnrollmentsByStudent(ctx context.Context, studentID int64) []models.Enrollment {
	return s.enrollmentRepo.GetByStudent(studentID)
}

func (s *enrollmentServiceImpl) GetEnrollmentsByBatch(ctx context.Context, batchID int64) []models.Enrollment {
	return s.enrollmentRepo.GetByBatch(batchID)
}

func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id int64) {
	s.enrollmentRepo.Delete(id)
	s.logger.Info().Int64("enrollmentID", id).Msg("Enrollment deleted")
}
