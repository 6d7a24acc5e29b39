package repositories

import (
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
)

// ExamResultRepository stores exam results in memory.
type ExamResultRepository struct {
	records *collection[models.ExamResult]
}

func NewExamResultRepository() *ExamResultRepository {
	return &ExamResultRepository{
		records: newCollection(func(r models.ExamResult) int64 { return r.ID }),
	}
}

func (r *ExamResultRepository) Create(in models.NewExamResult) models.ExamResult {
	return r.records.insert(in.Build)
}

func (r *ExamResultRepository) GetByID(id int64) (models.ExamResult, bool) {
	return r.records.get(id)
}

func (r *ExamResultRepository) GetAll() []models.ExamResult {
	return r.records.list()
}

func (r *ExamResultRepository) GetByExam(examID int64) []models.ExamResult {
	return r.records.filter(func(res models.ExamResult) bool { return res.ExamID == examID })
}

func (r *ExamResultRepository) GetByStudent(studentID int64) []models.ExamResult {
	return r.records.filter(func(res models.ExamResult) bool { return res.StudentID == studentID })
}

func (r *ExamResultRepository) Update(id int64, p models.ExamResultPatch) (models.ExamResult, error) {
	res, ok := r.records.update(id, p.ApplyTo)
	if !ok {
		return models.ExamResult{}, apperrors.ErrExamResultNotFound
	}
	return res, nil
}

func (r *ExamResultRepository) Delete(id int64) {
	r.records.remove(id)
}
