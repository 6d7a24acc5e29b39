package models

import (
	"time"

	"github.com/yigit/coachdesk/internal/pkg/patch"
)

// Batch is a scheduled cohort of a Course taught by a Teacher.
//
// CurrentEnrollment is server managed: it starts at zero and no operation
// moves it, enrollments included.
type Batch struct {
	ID                int64      `json:"id" example:"1"`
	Name              string     `json:"name" example:"Morning A"`
	CourseID          int64      `json:"courseId" example:"7"`
	TeacherID         int64      `json:"teacherId" example:"2"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
	Capacity          int        `json:"capacity" example:"30"`
	CurrentEnrollment int        `json:"currentEnrollment" example:"0"`
	Schedule          *string    `json:"schedule" example:"Mon/Wed/Fri 07:00-09:00"`
	IsActive          bool       `json:"isActive" example:"true"`
}

func (b Batch) Clone() Batch {
	b.StartDate = clonePtr(b.StartDate)
	b.EndDate = clonePtr(b.EndDate)
	b.Schedule = clonePtr(b.Schedule)
	return b
}

type NewBatch struct {
	Name      string     `json:"name" validate:"required,max=200"`
	CourseID  int64      `json:"courseId" validate:"required,gt=0"`
	TeacherID int64      `json:"teacherId" validate:"required,gt=0"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Capacity  *int       `json:"capacity" validate:"omitempty,gt=0"`
	Schedule  *string    `json:"schedule"`
	IsActive  *bool      `json:"isActive"`
}

func (n NewBatch) Build(id int64) Batch {
	capacity := DefaultBatchCapacity
	if n.Capacity != nil {
		capacity = *n.Capacity
	}
	return Batch{
		ID:                id,
		Name:              n.Name,
		CourseID:          n.CourseID,
		TeacherID:         n.TeacherID,
		StartDate:         n.StartDate,
		EndDate:           n.EndDate,
		Capacity:          capacity,
		CurrentEnrollment: 0,
		Schedule:          n.Schedule,
		IsActive:          boolOr(n.IsActive, true),
	}
}

type BatchPatch struct {
	Name      patch.Field[string]    `json:"name"`
	CourseID  patch.Field[int64]     `json:"courseId"`
	TeacherID patch.Field[int64]     `json:"teacherId"`
	StartDate patch.Field[time.Time] `json:"startDate"`
	EndDate   patch.Field[time.Time] `json:"endDate"`
	Capacity  patch.Field[int]       `json:"capacity"`
	Schedule  patch.Field[string]    `json:"schedule"`
	IsActive  patch.Field[bool]      `json:"isActive"`
}

func (p BatchPatch) ApplyTo(b *Batch) {
	p.Name.Apply(&b.Name)
	p.CourseID.Apply(&b.CourseID)
	p.TeacherID.Apply(&b.TeacherID)
	p.StartDate.ApplyOptional(&b.StartDate)
	p.EndDate.ApplyOptional(&b.EndDate)
	p.Capacity.Apply(&b.Capacity)
	p.Schedule.ApplyOptional(&b.Schedule)
	p.IsActive.Apply(&b.IsActive)
}
