package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/filestorage"
	"github.com/yigit/coachdesk/internal/pkg/patch"
	"github.com/yigit/coachdesk/internal/pkg/validation"
)

// Accepted student photo extensions
var photoExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

const studentPhotoDir = "students"

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, in models.NewStudent) (models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (models.Student, error)
	GetAllStudents(ctx context.Context) []models.Student
	UpdateStudent(ctx context.Context, id int64, p models.StudentPatch) (models.Student, error)
	DeleteStudent(ctx context.Context, id int64)
	UploadPhoto(ctx context.Context, id int64, file *multipart.FileHeader) (models.Student, error)
}

type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	storage     filestorage.FileStorage
	logger      zerolog.Logger

	// serializes the email uniqueness check with the write that follows it
	emailMu sync.Mutex
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, storage filestorage.FileStorage, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		storage:     storage,
		logger:      logger,
	}
}

func (s *studentServiceImpl) validatePatch(p models.StudentPatch) error {
	e := validation.Errors{}
	e.RequiredText("firstName", p.FirstName)
	e.RequiredText("lastName", p.LastName)
	e.Email("email", p.Email)
	e.Phone("phone", p.Phone, true)
	e.Phone("parentPhone", p.ParentPhone, false)
	validation.Required(e, "isActive", p.IsActive)
	return e.Err()
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, in models.NewStudent) (models.Student, error) {
	if err := validation.Struct(in); err != nil {
		return models.Student{}, err
	}

	s.emailMu.Lock()
	defer s.emailMu.Unlock()

	if _, taken := s.studentRepo.FindByEmail(in.Email); taken {
		return models.Student{}, apperrors.ErrEmailAlreadyExists
	}

	student := s.studentRepo.Create(in)
	s.logger.Info().Int64("studentID", student.ID).Msg("Student created")
	return student, nil
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (models.Student, error) {
	student, ok := s.studentRepo.GetByID(id)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *studentServiceImpl) GetAllStudents(ctx context.Context) []models.Student {
	return s.studentRepo.GetAll()
}

// UpdateStudent merges p onto the stored student. Changing the email to one
// held by another student is a conflict.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, p models.StudentPatch) (models.Student, error) {
	if err := s.validatePatch(p); err != nil {
		return models.Student{}, err
	}

	s.emailMu.Lock()
	defer s.emailMu.Unlock()

	if _, ok := s.studentRepo.GetByID(id); !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	if p.Email.Value != nil {
		if other, taken := s.studentRepo.FindByEmail(*p.Email.Value); taken && other.ID != id {
			return models.Student{}, apperrors.ErrEmailAlreadyExists
		}
	}

	student, err := s.studentRepo.Update(id, p)
	if err != nil {
		return models.Student{}, err
	}
	s.logger.Info().Int64("studentID", id).Msg("Student updated")
	return student, nil
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) {
	s.studentRepo.Delete(id)
	s.logger.Info().Int64("studentID", id).Msg("Student deleted")
}

// UploadPhoto stores an image and points the student's photo at it. The
// previous photo file is removed on a best-effort basis.
func (s *studentServiceImpl) UploadPhoto(ctx context.Context, id int64, file *multipart.FileHeader) (models.Student, error) {
	if s.storage == nil {
		return models.Student{}, apperrors.NewBadRequestError("photo uploads are not configured")
	}
	if file == nil {
		return models.Student{}, apperrors.NewValidationError("validation failed", map[string]string{"photo": "photo is required"})
	}
	if !photoExtensions[strings.ToLower(filepath.Ext(file.Filename))] {
		return models.Student{}, apperrors.NewValidationError("validation failed", map[string]string{"photo": "photo must be a jpg, png or webp image"})
	}

	previous, ok := s.studentRepo.GetByID(id)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}

	url, err := s.storage.SaveFileWithPath(file, studentPhotoDir)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentID", id).Msg("Failed to save student photo")
		return models.Student{}, err
	}

	student, err := s.studentRepo.Update(id, models.StudentPatch{Photo: patch.Of(url)})
	if err != nil {
		// deleted while uploading
		_ = s.storage.DeleteFile(url)
		return models.Student{}, err
	}

	if previous.Photo != nil && *previous.Photo != url {
		if err := s.storage.DeleteFile(*previous.Photo); err != nil {
			s.logger.Warn().Err(err).Int64("studentID", id).Msg("Could not remove previous photo")
		}
	}
	return student, nil
}
