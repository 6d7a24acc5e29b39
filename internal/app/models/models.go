package models

// Server-managed defaults synthesized on create.
const (
	DefaultBatchCapacity    = 30
	EnrollmentStatusActive  = "active"
	FeeStatusPending        = "pending"
	FeeStatusPaid           = "paid"
	MessageStatusSent       = "sent"
	AttendanceStatusPresent = "present"
)

// RecipientType names what a Message's recipientId points at.
type RecipientType string

const (
	RecipientStudent RecipientType = "student"
	RecipientParent  RecipientType = "parent"
	RecipientBatch   RecipientType = "batch"
	RecipientTeacher RecipientType = "teacher"
)

// boolOr returns *b, or def when b is absent.
func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// stringOr returns *s, or def when s is absent or empty.
func stringOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

// clonePtr returns a pointer to a fresh copy of *p, or nil.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
