package repositories

import (
	"time"

	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/helpers"
)

// AttendanceRepository stores attendance marks in memory.
type AttendanceRepository struct {
	records *collection[models.Attendance]
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: newCollection(func(a models.Attendance) int64 { return a.ID }),
	}
}

func (r *AttendanceRepository) Create(in models.NewAttendance) models.Attendance {
	return r.records.insert(in.Build)
}

func (r *AttendanceRepository) GetByID(id int64) (models.Attendance, bool) {
	return r.records.get(id)
}

func (r *AttendanceRepository) GetAll() []models.Attendance {
	return r.records.list()
}

func (r *AttendanceRepository) GetByStudent(studentID int64) []models.Attendance {
	return r.records.filter(func(a models.Attendance) bool { return a.StudentID == studentID })
}

func (r *AttendanceRepository) GetByBatch(batchID int64) []models.Attendance {
	return r.records.filter(func(a models.Attendance) bool { return a.BatchID == batchID })
}

// GetByDate returns marks recorded on the same calendar day as date.
// Records without a date never match.
func (r *AttendanceRepository) GetByDate(date time.Time) []models.Attendance {
	return r.records.filter(func(a models.Attendance) bool {
		return a.Date != nil && helpers.SameDay(*a.Date, date)
	})
}

// GetByBatchAndDate narrows GetByDate to one batch.
func (r *AttendanceRepository) GetByBatchAndDate(batchID int64, date time.Time) []models.Attendance {
	return r.records.filter(func(a models.Attendance) bool {
		return a.BatchID == batchID && a.Date != nil && helpers.SameDay(*a.Date, date)
	})
}

func (r *AttendanceRepository) Update(id int64, p models.AttendancePatch) (models.Attendance, error) {
	a, ok := r.records.update(id, p.ApplyTo)
	if !ok {
		return models.Attendance{}, apperrors.ErrAttendanceNotFound
	}
	return a, nil
}

func (r *AttendanceRepository) Delete(id int64) {
	r.records.remove(id)
}
