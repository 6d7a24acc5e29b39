package repositories

import (
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
)

// CourseRepository stores courses in memory.
type CourseRepository struct {
	records *collection[models.Course]
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		records: newCollection(func(c models.Course) int64 { return c.ID }),
	}
}

func (r *CourseRepository) Create(in models.NewCourse) models.Course {
	return r.records.insert(in.Build)
}

func (r *CourseRepository) GetByID(id int64) (models.Course, bool) {
	return r.records.get(id)
}

func (r *CourseRepository) GetAll() []models.Course {
	return r.records.list()
}

func (r *CourseRepository) Update(id int64, p models.CoursePatch) (models.Course, error) {
	c, ok := r.records.update(id, p.ApplyTo)
	if !ok {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (r *CourseRepository) Delete(id int64) {
	r.records.remove(id)
}
