package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/validation"
)

// BatchService defines the interface for batch operations
type BatchService interface {
	CreateBatch(ctx context.Context, in models.NewBatch) (models.Batch, error)
	GetBatchByID(ctx context.Context, id int64) (models.Batch, error)
	GetAllBatches(ctx context.Context) []models.Batch
	GetBatchesByCourse(ctx context.Context, courseID int64) []models.Batch
	GetBatchesByTeacher(ctx context.Context, teacherID int64) []models.Batch
	UpdateBatch(ctx context.Context, id int64, p models.BatchPatch) (models.Batch, error)
	DeleteBatch(ctx context.Context, id int64)
}

type batchServiceImpl struct {
	batchRepo *repositories.BatchRepository
	logger    zerolog.Logger
}

func NewBatchService(batchRepo *repositories.BatchRepository, logger zerolog.Logger) BatchService {
	return &batchServiceImpl{batchRepo: batchRepo, logger: logger}
}

// CreateBatch stores a batch. courseId and teacherId are not checked
// against the course and teacher collections.
func (s *batchServiceImpl) CreateBatch(ctx context.Context, in models.NewBatch) (models.Batch, error) {
	if err := validation.Struct(in); err != nil {
		return models.Batch{}, err
	}
	batch := s.batchRepo.Create(in)
	s.logger.Info().Int64("batchID", batch.ID).Int64("courseID", batch.CourseID).Msg("Batch created")
	return batch, nil
}

func (s *batchServiceImpl) GetBatchByID(ctx context.Context, id int64) (models.Batch, error) {
	batch, ok := s.batchRepo.GetByID(id)
	if !ok {
		return models.Batch{}, apperrors.ErrBatchNotFound
	}
	return batch, nil
}

func (s *batchServiceImpl) GetAllBatches(ctx context.Context) []models.Batch {
	return s.batchRepo.GetAll()
}

func (s *batchServiceImpl) GetBatchesByCourse(ctx context.Context, courseID int64) []models.Batch {
	return s.batchRepo.GetByCourse(courseID)
}

func (s *batchServiceImpl) GetBatchesByTeacher(ctx context.Context, teacherID int64) []models.Batch {
	return s.batchRepo.GetByTeacher(teacherID)
}

func (s *batchServiceImpl) UpdateBatch(ctx context.Context, id int64, p models.BatchPatch) (models.Batch, error) {
	e := validation.Errors{}
	e.RequiredText("name", p.Name)
	validation.Required(e, "courseId", p.CourseID)
	validation.Positive(e, "courseId", p.CourseID)
	validation.Required(e, "teacherId", p.TeacherID)
	validation.Positive(e, "teacherId", p.TeacherID)
	validation.Required(e, "capacity", p.Capacity)
	validation.Positive(e, "capacity", p.Capacity)
	validation.Required(e, "isActive", p.IsActive)
	if err := e.Err(); err != nil {
		return models.Batch{}, err
	}
	return s.batchRepo.Update(id, p)
}

func (s *batchServiceImpl) DeleteBatch(ctx context.Context, id int64) {
	s.batchRepo.Delete(id)
	s.logger.Info().Int64("batchID", id).Msg("Batch deleted")
}
