package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/validation"
)

// ExamResultService defines the interface for exam result operations
type ExamResultService interface {
	CreateExamResult(ctx context.Context, in models.NewExamResult) (models.ExamResult, error)
	GetExamResultByID(ctx context.Context, id int64) (models.ExamResult, error)
	GetAllExamResults(ctx context.Context) []models.ExamResult
	GetExamResultsByExam(ctx context.Context, examID int64) []models.ExamResult
	GetExamResultsByStudent(ctx context.Context, studentID int64) []models.ExamResult
	UpdateExamResult(ctx context.Context, id int64, p models.ExamResultPatch) (models.ExamResult, error)
	DeleteExamResult(ctx context.Context, id int64)
}

type examResultServiceImpl struct {
	resultRepo *repositories.ExamResultRepository
	logger     zerolog.Logger
}

func NewExamResultService(resultRepo *repositories.ExamResultRepository, logger zerolog.Logger) ExamResultService {
	return &examResultServiceImpl{resultRepo: resultRepo, logger: logger}
}

func (s *examResultServiceImpl) CreateExamResult(ctx context.Context, in models.NewExamResult) (models.ExamResult, error) {
	extra := validation.Errors{}
	extra.NonNegative("marksObtained", in.MarksObtained)
	if err := validation.StructWith(in, extra); err != nil {
		return models.ExamResult{}, err
	}
	result := s.resultRepo.Create(in)
	s.logger.Info().
		Int64("resultID", result.ID).
		Int64("examID", result.ExamID).
		Int64("studentID", result.StudentID).
		Msg("Exam result recorded")
	return result, nil
}

func (s *examResultServiceImpl) GetExamResultByID(ctx context.Context, id int64) (models.ExamResult, error) {
	result, ok := s.resultRepo.GetByID(id)
	if !ok {
		return models.ExamResult{}, apperrors.ErrExamResultNotFound
	}
	return result, nil
}

func (s *examResultServiceImpl) GetAllExamResults(ctx context.Context) []models.ExamResult {
	return s.resultRepo.GetAll()
}

func (s *examResultServiceImpl) GetExamResultsByExam(ctx context.Context, examID int64) []models.ExamResult {
	return s.resultRepo.GetByExam(examID)
}

func (s *examResultServiceImpl) GetExamResultsByStudent(ctx context.Context, studentID int64) []models.ExamResult {
	return s.resultRepo.GetByStudent(studentID)
}

func (s *examResultServiceImpl) UpdateExamResult(ctx context.Context, id int64, p models.ExamResultPatch) (models.ExamResult, error) {
	e := validation.Errors{}
	validation.Required(e, "examId", p.ExamID)
	validation.Positive(e, "examId", p.ExamID)
	validation.Required(e, "studentId", p.StudentID)
	validation.Positive(e, "studentId", p.StudentID)
	e.NonNegative("marksObtained", p.MarksObtained.Value)
	if err := e.Err(); err != nil {
		return models.ExamResult{}, err
	}
	return s.resultRepo.Update(id, p)
}

func (s *examResultServiceImpl) DeleteExamResult(ctx context.Context, id int64) {
	s.resultRepo.Delete(id)
	s.logger.Info().Int64("resultID", id).Msg("Exam result deleted")
}
