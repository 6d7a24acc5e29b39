package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/validation"
)

// TeacherService defines the interface for teacher operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, in models.NewTeacher) (models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (models.Teacher, error)
	GetAllTeachers(ctx context.Context) []models.Teacher
	UpdateTeacher(ctx context.Context, id int64, p models.TeacherPatch) (models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64)
}

type teacherServiceImpl struct {
	teacherRepo *repositories.TeacherRepository
	logger      zerolog.Logger
	emailMu     sync.Mutex
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo *repositories.TeacherRepository, logger zerolog.Logger) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, in models.NewTeacher) (models.Teacher, error) {
	extra := validation.Errors{}
	extra.NonNegative("salary", in.Salary)
	if err := validation.StructWith(in, extra); err != nil {
		return models.Teacher{}, err
	}

	s.emailMu.Lock()
	defer s.emailMu.Unlock()

	if _, taken := s.teacherRepo.FindByEmail(in.Email); taken {
		return models.Teacher{}, apperrors.ErrEmailAlreadyExists
	}

	teacher := s.teacherRepo.Create(in)
	s.logger.Info().Int64("teacherID", teacher.ID).Msg("Teacher created")
	return teacher, nil
}

func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (models.Teacher, error) {
	teacher, ok := s.teacherRepo.GetByID(id)
	if !ok {
		return models.Teacher{}, apperrors.ErrTeacherNotFound
	}
	return teacher, nil
}

func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) []models.Teacher {
	return s.teacherRepo.GetAll()
}

func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, p models.TeacherPatch) (models.Teacher, error) {
	e := validation.Errors{}
	e.RequiredText("firstName", p.FirstName)
	e.RequiredText("lastName", p.LastName)
	e.Email("email", p.Email)
	e.Phone("phone", p.Phone, true)
	e.NonNegativeInt("experience", p.Experience)
	e.NonNegative("salary", p.Salary.Value)
	validation.Required(e, "isActive", p.IsActive)
	if err := e.Err(); err != nil {
		return models.Teacher{}, err
	}

	s.emailMu.Lock()
	defer s.emailMu.Unlock()

	if _, ok := s.teacherRepo.GetByID(id); !ok {
		return models.Teacher{}, apperrors.ErrTeacherNotFound
	}
	if p.Email.Value != nil {
		if other, taken := s.teacherRepo.FindByEmail(*p.Email.Value); taken && other.ID != id {
			return models.Teacher{}, apperrors.ErrEmailAlreadyExists
		}
	}

	teacher, err := s.teacherRepo.Update(id, p)
	if err != nil {
		return models.Teacher{}, err
	}
	s.logger.Info().Int64("teacherID", id).Msg("Teacher updated")
	return teacher, nil
}

func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) {
	s.teacherRepo.Delete(id)
	s.logger.Info().Int64("teacherID", id).Msg("Teacher deleted")
}
