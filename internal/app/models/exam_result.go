package models

import (
	"github.com/shopspring/decimal"
	"github.com/yigit/coachdesk/internal/pkg/patch"
)

// ExamResult records one Student's outcome in one Exam.
type ExamResult struct {
	ID            int64            `json:"id" example:"1"`
	ExamID        int64            `json:"examId" example:"1"`
	StudentID     int64            `json:"studentId" example:"1"`
	MarksObtained *decimal.Decimal `json:"marksObtained" swaggertype:"string" example:"87.5"`
	Grade         *string          `json:"grade" example:"A"`
	Remarks       *string          `json:"remarks"`
}

func (r ExamResult) Clone() ExamResult {
	r.MarksObtained = clonePtr(r.MarksObtained)
	r.Grade = clonePtr(r.Grade)
	r.Remarks = clonePtr(r.Remarks)
	return r
}

type NewExamResult struct {
	ExamID        int64            `json:"examId" validate:"required,gt=0"`
	StudentID     int64            `json:"studentId" validate:"required,gt=0"`
	MarksObtained *decimal.Decimal `json:"marksObtained" swaggertype:"string"`
	Grade         *string          `json:"grade"`
	Remarks       *string          `json:"remarks"`
}

func (n NewExamResult) Build(id int64) ExamResult {
	return ExamResult{
		ID:            id,
		ExamID:        n.ExamID,
		StudentID:     n.StudentID,
		MarksObtained: n.MarksObtained,
		Grade:         n.Grade,
		Remarks:       n.Remarks,
	}
}

type ExamResultPatch struct {
	ExamID        patch.Field[int64]           `json:"examId"`
	StudentID     patch.Field[int64]           `json:"studentId"`
	MarksObtained patch.Field[decimal.Decimal] `json:"marksObtained"`
	Grade         patch.Field[string]          `json:"grade"`
	Remarks       patch.Field[string]          `json:"remarks"`
}

func (p ExamResultPatch) ApplyTo(r *ExamResult) {
	p.ExamID.Apply(&r.ExamID)
	p.StudentID.Apply(&r.StudentID)
	p.MarksObtained.ApplyOptional(&r.MarksObtained)
	p.Grade.ApplyOptional(&r.Grade)
	p.Remarks.ApplyOptional(&r.Remarks)
}
