package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yigit/coachdesk/internal/pkg/patch"
)

// Teacher is a member of the teaching staff.
type Teacher struct {
	ID             int64            `json:"id" example:"1"`
	FirstName      string           `json:"firstName" example:"Vikram"`
	LastName       string           `json:"lastName" example:"Iyer"`
	Email          string           `json:"email" example:"vikram@x.com"`
	Phone          string           `json:"phone" example:"9990002222"`
	Qualification  *string          `json:"qualification" example:"M.Sc Physics"`
	Experience     *int             `json:"experience" example:"8"`
	Specialization *string          `json:"specialization" example:"Mechanics"`
	Salary         *decimal.Decimal `json:"salary" swaggertype:"string" example:"45000.00"`
	JoinDate       time.Time        `json:"joinDate"`
	IsActive       bool             `json:"isActive" example:"true"`
}

func (t Teacher) Clone() Teacher {
	t.Qualification = clonePtr(t.Qualification)
	t.Experience = clonePtr(t.Experience)
	t.Specialization = clonePtr(t.Specialization)
	t.Salary = clonePtr(t.Salary)
	return t
}

// NewTeacher is the create payload for a Teacher.
type NewTeacher struct {
	FirstName      string           `json:"firstName" validate:"required,max=100"`
	LastName       string           `json:"lastName" validate:"required,max=100"`
	Email          string           `json:"email" validate:"required,email"`
	Phone          string           `json:"phone" validate:"required,phone"`
	Qualification  *string          `json:"qualification"`
	Experience     *int             `json:"experience" validate:"omitempty,min=0"`
	Specialization *string          `json:"specialization"`
	Salary         *decimal.Decimal `json:"salary" swaggertype:"string"`
	IsActive       *bool            `json:"isActive"`
}

func (n NewTeacher) Build(id int64, now time.Time) Teacher {
	return Teacher{
		ID:             id,
		FirstName:      n.FirstName,
		LastName:       n.LastName,
		Email:          n.Email,
		Phone:          n.Phone,
		Qualification:  n.Qualification,
		Experience:     n.Experience,
		Specialization: n.Specialization,
		Salary:         n.Salary,
		JoinDate:       now,
		IsActive:       boolOr(n.IsActive, true),
	}
}

// TeacherPatch is a partial update for a Teacher.
type TeacherPatch struct {
	FirstName      patch.Field[string]          `json:"firstName"`
	LastName       patch.Field[string]          `json:"lastName"`
	Email          patch.Field[string]          `json:"email"`
	Phone          patch.Field[string]          `json:"phone"`
	Qualification  patch.Field[string]          `json:"qualification"`
	Experience     patch.Field[int]             `json:"experience"`
	Specialization patch.Field[string]          `json:"specialization"`
	Salary         patch.Field[decimal.Decimal] `json:"salary"`
	IsActive       patch.Field[bool]            `json:"isActive"`
}

func (p TeacherPatch) ApplyTo(t *Teacher) {
	p.FirstName.Apply(&t.FirstName)
	p.LastName.Apply(&t.LastName)
	p.Email.Apply(&t.Email)
	p.Phone.Apply(&t.Phone)
	p.Qualification.ApplyOptional(&t.Qualification)
	p.Experience.ApplyOptional(&t.Experience)
	p.Specialization.ApplyOptional(&t.Specialization)
	p.Salary.ApplyOptional(&t.Salary)
	p.IsActive.Apply(&t.IsActive)
}
