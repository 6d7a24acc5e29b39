package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/validation"
)

// ExamService defines the interface for exam operations
type ExamService interface {
	CreateExam(ctx context.Context, in models.NewExam) (models.Exam, error)
	GetExamByID(ctx context.Context, id int64) (models.Exam, error)
	GetAllExams(ctx context.Context) []models.Exam
	GetExamsByBatch(ctx context.Context, batchID int64) []models.Exam
	UpdateExam(ctx context.Context, id int64, p models.ExamPatch) (models.Exam, error)
	DeleteExam(ctx context.Context, id int64)
}

type examServiceImpl struct {
	examRepo *repositories.ExamRepository
	logger   zerolog.Logger
}

func NewExamService(examRepo *repositories.ExamRepository, logger zerolog.Logger) ExamService {
	return &examServiceImpl{examRepo: examRepo, logger: logger}
}

func (s *examServiceImpl) CreateExam(ctx context.Context, in models.NewExam) (models.Exam, error) {
	if err := validation.Struct(in); err != nil {
		return models.Exam{}, err
	}
	exam := s.examRepo.Create(in)
	s.logger.Info().Int64("examID", exam.ID).Int64("batchID", exam.BatchID).Msg("Exam created")
	return exam, nil
}

func (s *examServiceImpl) GetExamByID(ctx context.Context, id int64) (models.Exam, error) {
	exam, ok := s.examRepo.GetByID(id)
	if !ok {
		return models.Exam{}, apperrors.ErrExamNotFound
	}
	return exam, nil
}

func (s *examServiceImpl) GetAllExams(ctx context.Context) []models.Exam {
	return s.examRepo.GetAll()
}

func (s *examServiceImpl) GetExamsByBatch(ctx context.Context, batchID int64) []models.Exam {
	return s.examRepo.GetByBatch(batchID)
}

func (s *examServiceImpl) UpdateExam(ctx context.Context, id int64, p models.ExamPatch) (models.Exam, error) {
	e := validation.Errors{}
	e.RequiredText("title", p.Title)
	validation.Required(e, "batchId", p.BatchID)
	validation.Positive(e, "batchId", p.BatchID)
	validation.Positive(e, "totalMarks", p.TotalMarks)
	validation.Positive(e, "duration", p.Duration)
	if err := e.Err(); err != nil {
		return models.Exam{}, err
	}
	return s.examRepo.Update(id, p)
}

func (s *examServiceImpl) DeleteExam(ctx context.Context, id int64) {
	s.examRepo.Delete(id)
	s.logger.Info().Int64("examID", id).Msg("Exam deleted")
}
