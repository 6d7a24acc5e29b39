package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/validation"
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, in models.NewCourse) (models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (models.Course, error)
	GetAllCourses(ctx context.Context) []models.Course
	UpdateCourse(ctx context.Context, id int64, p models.CoursePatch) (models.Course, error)
	DeleteCourse(ctx context.Context, id int64)
}

type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

func NewCourseService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo, logger: logger}
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, in models.NewCourse) (models.Course, error) {
	extra := validation.Errors{}
	extra.NonNegative("fee", in.Fee)
	if err := validation.StructWith(in, extra); err != nil {
		return models.Course{}, err
	}
	course := s.courseRepo.Create(in)
	s.logger.Info().Int64("courseID", course.ID).Msg("Course created")
	return course, nil
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (models.Course, error) {
	course, ok := s.courseRepo.GetByID(id)
	if !ok {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (s *courseServiceImpl) GetAllCourses(ctx context.Context) []models.Course {
	return s.courseRepo.GetAll()
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, p models.CoursePatch) (models.Course, error) {
	e := validation.Errors{}
	e.RequiredText("name", p.Name)
	e.NonNegative("fee", p.Fee.Value)
	validation.Required(e, "isActive", p.IsActive)
	if err := e.Err(); err != nil {
		return models.Course{}, err
	}
	return s.courseRepo.Update(id, p)
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) {
	s.courseRepo.Delete(id)
	s.logger.Info().Int64("courseID", id).Msg("Course deleted")
}
