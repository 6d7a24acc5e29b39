package repositories

import (
	"strings"

	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
)

// StudentRepository stores students in memory.
type StudentRepository struct {
	records *collection[models.Student]
	clock   Clock
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(clock Clock) *StudentRepository {
	return &StudentRepository{
		records: newCollection(func(s models.Student) int64 { return s.ID }),
		clock:   clock,
	}
}

// Create stores a new student, stamping enrollmentDate and defaulting isActive.
func (r *StudentRepository) Create(in models.NewStudent) models.Student {
	return r.records.insert(func(id int64) models.Student {
		return in.Build(id, r.clock())
	})
}

// GetByID returns the student and whether it exists.
func (r *StudentRepository) GetByID(id int64) (models.Student, bool) {
	return r.records.get(id)
}

// GetAll returns every student in insertion order.
func (r *StudentRepository) GetAll() []models.Student {
	return r.records.list()
}

// FindByEmail looks a student up by email, case-insensitively.
func (r *StudentRepository) FindByEmail(email string) (models.Student, bool) {
	return r.records.find(func(s models.Student) bool {
		return strings.EqualFold(s.Email, email)
	})
}

// Update merges the patch onto the stored student.
func (r *StudentRepository) Update(id int64, p models.StudentPatch) (models.Student, error) {
	s, ok := r.records.update(id, p.ApplyTo)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return s, nil
}

// Delete removes the student. Related enrollments, fees, attendance and
// results are left in place.
func (r *StudentRepository) Delete(id int64) {
	r.records.remove(id)
}

// Count returns the number of stored students.
func (r *StudentRepository) Count() int {
	return r.records.count()
}
