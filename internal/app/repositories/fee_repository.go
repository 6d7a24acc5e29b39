package repositories

import (
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
)

// FeeRepository stores fees in memory.
type FeeRepository struct {
	records *collection[models.Fee]
}

func NewFeeRepository() *FeeRepository {
	return &FeeRepository{
		records: newCollection(func(f models.Fee) int64 { return f.ID }),
	}
}

// Create stores a new fee with status defaulted to "pending".
func (r *FeeRepository) Create(in models.NewFee) models.Fee {
	return r.records.insert(in.Build)
}

func (r *FeeRepository) GetByID(id int64) (models.Fee, bool) {
	return r.records.get(id)
}

func (r *FeeRepository) GetAll() []models.Fee {
	return r.records.list()
}

func (r *FeeRepository) GetByStudent(studentID int64) []models.Fee {
	return r.records.filter(func(f models.Fee) bool { return f.StudentID == studentID })
}

func (r *FeeRepository) GetByBatch(batchID int64) []models.Fee {
	return r.records.filter(func(f models.Fee) bool { return f.BatchID != nil && *f.BatchID == batchID })
}

func (r *FeeRepository) Update(id int64, p models.FeePatch) (models.Fee, error) {
	f, ok := r.records.update(id, p.ApplyTo)
	if !ok {
		return models.Fee{}, apperrors.ErrFeeNotFound
	}
	return f, nil
}

func (r *FeeRepository) Delete(id int64) {
	r.records.remove(id)
}
