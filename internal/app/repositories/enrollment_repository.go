package repositories

import (
	"github.com/yigit/coachdesk/internal/app/models"
)

// EnrollmentRepository stores enrollments in memory. Enrollments cannot be
// updated, and creating or deleting one leaves the batch's
// currentEnrollment untouched.
type EnrollmentRepository struct {
	records *collection[models.Enrollment]
	clock   Clock
}

func NewEnrollmentRepository(clock Clock) *EnrollmentRepository {
	return &EnrollmentRepository{
		records: newCollection(func(e models.Enrollment) int64 { return e.ID }),
		clock:   clock,
	}
}

// Create stores a new enrollment, stamping enrollmentDate and defaulting
// status to "active".
func (r *EnrollmentRepository) Create(in models.NewEnrollment) models.Enrollment {
	return r.records.insert(func(id int64) models.Enrollment {
		return in.Build(id, r.clock())
	})
}

func (r *EnrollmentRepository) GetByID(id int64) (models.Enrollment, bool) {
	return r.records.get(id)
}

func (r *EnrollmentRepository) GetAll() []models.Enrollment {
	return r.records.list()
}

func (r *EnrollmentRepository) GetByStudent(studentID int64) []models.Enrollment {
	return r.records.filter(func(e models.Enrollment) bool { return e.StudentID == studentID })
}

func (r *EnrollmentRepository) GetByBatch(batchID int64) []models.Enrollment {
	return r.records.filter(func(e models.Enrollment) bool { return e.BatchID == batchID })
}

func (r *EnrollmentRepository) Delete(id int64) {
	r.records.remove(id)
}
