package repositories

import (
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
)

// ExamRepository stores exams in memory.
type ExamRepository struct {
	records *collection[models.Exam]
}

func NewExamRepository() *ExamRepository {
	return &ExamRepository{
		records: newCollection(func(e models.Exam) int64 { return e.ID }),
	}
}

func (r *ExamRepository) Create(in models.NewExam) models.Exam {
	return r.records.insert(in.Build)
}

func (r *ExamRepository) GetByID(id int64) (models.Exam, bool) {
	return r.records.get(id)
}

func (r *ExamRepository) GetAll() []models.Exam {
	return r.records.list()
}

func (r *ExamRepository) GetByBatch(batchID int64) []models.Exam {
	return r.records.filter(func(e models.Exam) bool { return e.BatchID == batchID })
}

func (r *ExamRepository) Update(id int64, p models.ExamPatch) (models.Exam, error) {
	e, ok := r.records.update(id, p.ApplyTo)
	if !ok {
		return models.Exam{}, apperrors.ErrExamNotFound
	}
	return e, nil
}

func (r *ExamRepository) Delete(id int64) {
	r.records.remove(id)
}
