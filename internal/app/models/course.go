package models

import (
	"github.com/shopspring/decimal"
	"github.com/yigit/coachdesk/internal/pkg/patch"
)

// Course is a programme of study offered by the institute.
type Course struct {
	ID          int64            `json:"id" example:"1"`
	Name        string           `json:"name" example:"JEE Physics"`
	Description *string          `json:"description"`
	Duration    *string          `json:"duration" example:"6 months"`
	Fee         *decimal.Decimal `json:"fee" swaggertype:"string" example:"25000.00"`
	IsActive    bool             `json:"isActive" example:"true"`
}

func (c Course) Clone() Course {
	c.Description = clonePtr(c.Description)
	c.Duration = clonePtr(c.Duration)
	c.Fee = clonePtr(c.Fee)
	return c
}

type NewCourse struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description *string          `json:"description"`
	Duration    *string          `json:"duration"`
	Fee         *decimal.Decimal `json:"fee" swaggertype:"string"`
	IsActive    *bool            `json:"isActive"`
}

func (n NewCourse) Build(id int64) Course {
	return Course{
		ID:          id,
		Name:        n.Name,
		Description: n.Description,
		Duration:    n.Duration,
		Fee:         n.Fee,
		IsActive:    boolOr(n.IsActive, true),
	}
}

type CoursePatch struct {
	Name        patch.Field[string]          `json:"name"`
	Description patch.Field[string]          `json:"description"`
	Duration    patch.Field[string]          `json:"duration"`
	Fee         patch.Field[decimal.Decimal] `json:"fee"`
	IsActive    patch.Field[bool]            `json:"isActive"`
}

func (p CoursePatch) ApplyTo(c *Course) {
	p.Name.Apply(&c.Name)
	p.Description.ApplyOptional(&c.Description)
	p.Duration.ApplyOptional(&c.Duration)
	p.Fee.ApplyOptional(&c.Fee)
	p.IsActive.Apply(&c.IsActive)
}
