package models

import (
	"time"

	"github.com/yigit/coachdesk/internal/pkg/patch"
)

// Student is a learner enrolled at the institute.
type Student struct {
	ID             int64      `json:"id" example:"1"`
	FirstName      string     `json:"firstName" example:"Asha"`
	LastName       string     `json:"lastName" example:"Rao"`
	Email          string     `json:"email" example:"asha@x.com"`
	Phone          string     `json:"phone" example:"9990001111"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	Address        *string    `json:"address"`
	ParentName     *string    `json:"parentName"`
	ParentPhone    *string    `json:"parentPhone"`
	Photo          *string    `json:"photo"`
	EnrollmentDate time.Time  `json:"enrollmentDate"`
	IsActive       bool       `json:"isActive" example:"true"`
}

// Clone returns a copy of s that shares no pointers with it.
func (s Student) Clone() Student {
	s.DateOfBirth = clonePtr(s.DateOfBirth)
	s.Address = clonePtr(s.Address)
	s.ParentName = clonePtr(s.ParentName)
	s.ParentPhone = clonePtr(s.ParentPhone)
	s.Photo = clonePtr(s.Photo)
	return s
}

// NewStudent is the create payload for a Student.
type NewStudent struct {
	FirstName   string     `json:"firstName" validate:"required,max=100"`
	LastName    string     `json:"lastName" validate:"required,max=100"`
	Email       string     `json:"email" validate:"required,email"`
	Phone       string     `json:"phone" validate:"required,phone"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     *string    `json:"address"`
	ParentName  *string    `json:"parentName"`
	ParentPhone *string    `json:"parentPhone" validate:"omitempty,phone"`
	Photo       *string    `json:"photo"`
	IsActive    *bool      `json:"isActive"`
}

// Build materializes the stored record, synthesizing server-managed fields.
func (n NewStudent) Build(id int64, now time.Time) Student {
	return Student{
		ID:             id,
		FirstName:      n.FirstName,
		LastName:       n.LastName,
		Email:          n.Email,
		Phone:          n.Phone,
		DateOfBirth:    n.DateOfBirth,
		Address:        n.Address,
		ParentName:     n.ParentName,
		ParentPhone:    n.ParentPhone,
		Photo:          n.Photo,
		EnrollmentDate: now,
		IsActive:       boolOr(n.IsActive, true),
	}
}

// StudentPatch is a partial update for a Student.
type StudentPatch struct {
	FirstName   patch.Field[string]    `json:"firstName"`
	LastName    patch.Field[string]    `json:"lastName"`
	Email       patch.Field[string]    `json:"email"`
	Phone       patch.Field[string]    `json:"phone"`
	DateOfBirth patch.Field[time.Time] `json:"dateOfBirth"`
	Address     patch.Field[string]    `json:"address"`
	ParentName  patch.Field[string]    `json:"parentName"`
	ParentPhone patch.Field[string]    `json:"parentPhone"`
	Photo       patch.Field[string]    `json:"photo"`
	IsActive    patch.Field[bool]      `json:"isActive"`
}

// ApplyTo merges the supplied fields onto s.
func (p StudentPatch) ApplyTo(s *Student) {
	p.FirstName.Apply(&s.FirstName)
	p.LastName.Apply(&s.LastName)
	p.Email.Apply(&s.Email)
	p.Phone.Apply(&s.Phone)
	p.DateOfBirth.ApplyOptional(&s.DateOfBirth)
	p.Address.ApplyOptional(&s.Address)
	p.ParentName.ApplyOptional(&s.ParentName)
	p.ParentPhone.ApplyOptional(&s.ParentPhone)
	p.Photo.ApplyOptional(&s.Photo)
	p.IsActive.Apply(&s.IsActive)
}
