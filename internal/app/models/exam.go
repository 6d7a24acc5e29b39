package models

import (
	"time"

	"github.com/yigit/coachdesk/internal/pkg/patch"
)

// Exam is an assessment scheduled for a Batch.
type Exam struct {
	ID           int64      `json:"id" example:"1"`
	Title        string     `json:"title" example:"Unit Test 1"`
	BatchID      int64      `json:"batchId" example:"1"`
	ExamDate     *time.Time `json:"examDate"`
	TotalMarks   *int       `json:"totalMarks" example:"100"`
	Duration     *int       `json:"duration" example:"90"` // minutes
	Type         *string    `json:"type" example:"written"`
	Instructions *string    `json:"instructions"`
}

func (e Exam) Clone() Exam {
	e.ExamDate = clonePtr(e.ExamDate)
	e.TotalMarks = clonePtr(e.TotalMarks)
	e.Duration = clonePtr(e.Duration)
	e.Type = clonePtr(e.Type)
	e.Instructions = clonePtr(e.Instructions)
	return e
}

type NewExam struct {
	Title        string     `json:"title" validate:"required,max=200"`
	BatchID      int64      `json:"batchId" validate:"required,gt=0"`
	ExamDate     *time.Time `json:"examDate"`
	TotalMarks   *int       `json:"totalMarks" validate:"omitempty,gt=0"`
	Duration     *int       `json:"duration" validate:"omitempty,gt=0"`
	Type         *string    `json:"type"`
	Instructions *string    `json:"instructions"`
}

func (n NewExam) Build(id int64) Exam {
	return Exam{
		ID:           id,
		Title:        n.Title,
		BatchID:      n.BatchID,
		ExamDate:     n.ExamDate,
		TotalMarks:   n.TotalMarks,
		Duration:     n.Duration,
		Type:         n.Type,
		Instructions: n.Instructions,
	}
}

type ExamPatch struct {
	Title        patch.Field[string]    `json:"title"`
	BatchID      patch.Field[int64]     `json:"batchId"`
	ExamDate     patch.Field[time.Time] `json:"examDate"`
	TotalMarks   patch.Field[int]       `json:"totalMarks"`
	Duration     patch.Field[int]       `json:"duration"`
	Type         patch.Field[string]    `json:"type"`
	Instructions patch.Field[string]    `json:"instructions"`
}

func (p ExamPatch) ApplyTo(e *Exam) {
	p.Title.Apply(&e.Title)
	p.BatchID.Apply(&e.BatchID)
	p.ExamDate.ApplyOptional(&e.ExamDate)
	p.TotalMarks.ApplyOptional(&e.TotalMarks)
	p.Duration.ApplyOptional(&e.Duration)
	p.Type.ApplyOptional(&e.Type)
	p.Instructions.ApplyOptional(&e.Instructions)
}
