package repositories

import (
	"strings"

	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
)

// TeacherRepository stores teachers in memory.
type TeacherRepository struct {
	records *collection[models.Teacher]
	clock   Clock
}

func NewTeacherRepository(clock Clock) *TeacherRepository {
	return &TeacherRepository{
		records: newCollection(func(t models.Teacher) int64 { return t.ID }),
		clock:   clock,
	}
}

// Create stores a new teacher, stamping joinDate.
func (r *TeacherRepository) Create(in models.NewTeacher) models.Teacher {
	return r.records.insert(func(id int64) models.Teacher {
		return in.Build(id, r.clock())
	})
}

func (r *TeacherRepository) GetByID(id int64) (models.Teacher, bool) {
	return r.records.get(id)
}

func (r *TeacherRepository) GetAll() []models.Teacher {
	return r.records.list()
}

func (r *TeacherRepository) FindByEmail(email string) (models.Teacher, bool) {
	return r.records.find(func(t models.Teacher) bool {
		return strings.EqualFold(t.Email, email)
	})
}

func (r *TeacherRepository) Update(id int64, p models.TeacherPatch) (models.Teacher, error) {
	t, ok := r.records.update(id, p.ApplyTo)
	if !ok {
		return models.Teacher{}, apperrors.ErrTeacherNotFound
	}
	return t, nil
}

func (r *TeacherRepository) Delete(id int64) {
	r.records.remove(id)
}

func (r *TeacherRepository) Count() int {
	return r.records.count()
}
