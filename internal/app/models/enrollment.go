package models

import "time"

// Enrollment places a Student in a Batch. Enrollments are never updated.
type Enrollment struct {
	ID             int64     `json:"id" example:"1"`
	StudentID      int64     `json:"studentId" example:"1"`
	BatchID        int64     `json:"batchId" example:"1"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
	Status         string    `json:"status" example:"active"`
}

func (e Enrollment) Clone() Enrollment { return e }

type NewEnrollment struct {
	StudentID int64   `json:"studentId" validate:"required,gt=0"`
	BatchID   int64   `json:"batchId" validate:"required,gt=0"`
	Status    *string `json:"status"`
}

func (n NewEnrollment) Build(id int64, now time.Time) Enrollment {
	return Enrollment{
		ID:             id,
		StudentID:      n.StudentID,
		BatchID:        n.BatchID,
		EnrollmentDate: now,
		Status:         stringOr(n.Status, EnrollmentStatusActive),
	}
}
