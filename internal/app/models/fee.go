package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yigit/coachdesk/internal/pkg/helpers"
	"github.com/yigit/coachdesk/internal/pkg/patch"
)

// Fee is an amount a Student owes, optionally for a specific Batch.
type Fee struct {
	ID            int64            `json:"id" example:"1"`
	StudentID     int64            `json:"studentId" example:"1"`
	BatchID       *int64           `json:"batchId" example:"1"`
	Amount        *decimal.Decimal `json:"amount" swaggertype:"string" example:"5000"`
	DueDate       *time.Time       `json:"dueDate"`
	PaidDate      *time.Time       `json:"paidDate"`
	Status        string           `json:"status" example:"pending" enums:"pending,paid,overdue"`
	PaymentMethod *string          `json:"paymentMethod" example:"upi"`
	ReceiptNumber *string          `json:"receiptNumber" example:"RCPT-0001"`
}

func (f Fee) Clone() Fee {
	f.BatchID = clonePtr(f.BatchID)
	f.Amount = clonePtr(f.Amount)
	f.DueDate = clonePtr(f.DueDate)
	f.PaidDate = clonePtr(f.PaidDate)
	f.PaymentMethod = clonePtr(f.PaymentMethod)
	f.ReceiptNumber = clonePtr(f.ReceiptNumber)
	return f
}

type NewFee struct {
	StudentID     int64            `json:"studentId" validate:"required,gt=0"`
	BatchID       *int64           `json:"batchId" validate:"omitempty,gt=0"`
	Amount        *decimal.Decimal `json:"amount" swaggertype:"string"`
	DueDate       *time.Time       `json:"dueDate"`
	PaidDate      *time.Time       `json:"paidDate"`
	Status        *string          `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	PaymentMethod *string          `json:"paymentMethod"`
	ReceiptNumber *string          `json:"receiptNumber"`
}

func (n NewFee) Build(id int64) Fee {
	return Fee{
		ID:            id,
		StudentID:     n.StudentID,
		BatchID:       n.BatchID,
		Amount:        n.Amount,
		DueDate:       n.DueDate,
		PaidDate:      n.PaidDate,
		Status:        stringOr(n.Status, FeeStatusPending),
		PaymentMethod: n.PaymentMethod,
		ReceiptNumber: n.ReceiptNumber,
	}
}

type FeePatch struct {
	StudentID     patch.Field[int64]           `json:"studentId"`
	BatchID       patch.Field[int64]           `json:"batchId"`
	Amount        patch.Field[decimal.Decimal] `json:"amount"`
	DueDate       patch.Field[time.Time]       `json:"dueDate"`
	PaidDate      patch.Field[time.Time]       `json:"paidDate"`
	Status        patch.Field[string]          `json:"status"`
	PaymentMethod patch.Field[string]          `json:"paymentMethod"`
	ReceiptNumber patch.Field[string]          `json:"receiptNumber"`
}

func (p FeePatch) ApplyTo(f *Fee) {
	p.StudentID.Apply(&f.StudentID)
	p.BatchID.ApplyOptional(&f.BatchID)
	p.Amount.ApplyOptional(&f.Amount)
	p.DueDate.ApplyOptional(&f.DueDate)
	p.PaidDate.ApplyOptional(&f.PaidDate)
	p.Status.Apply(&f.Status)
	p.PaymentMethod.ApplyOptional(&f.PaymentMethod)
	p.ReceiptNumber.ApplyOptional(&f.ReceiptNumber)
}

// IsPaidInMonthOf reports whether the fee counts toward revenue for the
// calendar month containing ref.
func (f Fee) IsPaidInMonthOf(ref time.Time) bool {
	if f.Status != FeeStatusPaid || f.PaidDate == nil {
		return false
	}
	return helpers.InMonthOf(*f.PaidDate, ref)
}
