package repositories

import (
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
)

// BatchRepository stores batches in memory. courseId and teacherId are kept
// as given; nothing checks that they exist.
type BatchRepository struct {
	records *collection[models.Batch]
}

func NewBatchRepository() *BatchRepository {
	return &BatchRepository{
		records: newCollection(func(b models.Batch) int64 { return b.ID }),
	}
}

// Create stores a new batch with capacity defaulted to 30 and
// currentEnrollment at zero.
func (r *BatchRepository) Create(in models.NewBatch) models.Batch {
	return r.records.insert(in.Build)
}

func (r *BatchRepository) GetByID(id int64) (models.Batch, bool) {
	return r.records.get(id)
}

func (r *BatchRepository) GetAll() []models.Batch {
	return r.records.list()
}

func (r *BatchRepository) GetByCourse(courseID int64) []models.Batch {
	return r.records.filter(func(b models.Batch) bool { return b.CourseID == courseID })
}

func (r *BatchRepository) GetByTeacher(teacherID int64) []models.Batch {
	return r.records.filter(func(b models.Batch) bool { return b.TeacherID == teacherID })
}

func (r *BatchRepository) Update(id int64, p models.BatchPatch) (models.Batch, error) {
	b, ok := r.records.update(id, p.ApplyTo)
	if !ok {
		return models.Batch{}, apperrors.ErrBatchNotFound
	}
	return b, nil
}

func (r *BatchRepository) Delete(id int64) {
	r.records.remove(id)
}
