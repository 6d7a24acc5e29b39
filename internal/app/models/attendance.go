package models

import (
	"time"

	"github.com/yigit/coachdesk/internal/pkg/patch"
)

// Attendance marks a Student's presence in a Batch on a date.
type Attendance struct {
	ID        int64      `json:"id" example:"1"`
	StudentID int64      `json:"studentId" example:"1"`
	BatchID   int64      `json:"batchId" example:"1"`
	Date      *time.Time `json:"date"`
	Status    *string    `json:"status" example:"present" enums:"present,absent,late"`
	Remarks   *string    `json:"remarks"`
}

func (a Attendance) Clone() Attendance {
	a.Date = clonePtr(a.Date)
	a.Status = clonePtr(a.Status)
	a.Remarks = clonePtr(a.Remarks)
	return a
}

type NewAttendance struct {
	StudentID int64      `json:"studentId" validate:"required,gt=0"`
	BatchID   int64      `json:"batchId" validate:"required,gt=0"`
	Date      *time.Time `json:"date"`
	Status    *string    `json:"status" validate:"omitempty,oneof=present absent late"`
	Remarks   *string    `json:"remarks"`
}

func (n NewAttendance) Build(id int64) Attendance {
	return Attendance{
		ID:        id,
		StudentID: n.StudentID,
		BatchID:   n.BatchID,
		Date:      n.Date,
		Status:    n.Status,
		Remarks:   n.Remarks,
	}
}

type AttendancePatch struct {
	StudentID patch.Field[int64]     `json:"studentId"`
	BatchID   patch.Field[int64]     `json:"batchId"`
	Date      patch.Field[time.Time] `json:"date"`
	Status    patch.Field[string]    `json:"status"`
	Remarks   patch.Field[string]    `json:"remarks"`
}

func (p AttendancePatch) ApplyTo(a *Attendance) {
	p.StudentID.Apply(&a.StudentID)
	p.BatchID.Apply(&a.BatchID)
	p.Date.ApplyOptional(&a.Date)
	p.Status.ApplyOptional(&a.Status)
	p.Remarks.ApplyOptional(&a.Remarks)
}
