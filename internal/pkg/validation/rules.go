package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Phone numbers: optional leading +, digits with optional spaces or dashes
	PhonePattern = `^\+?[0-9][0-9 \-]{6,18}[0-9]$`

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Phone *regexp.Regexp
}{
	Phone: regexp.MustCompile(PhonePattern),
}

// Enumerations accepted by the record store.
var (
	AttendanceStatuses = []string{"present", "absent", "late"}
	FeeStatuses        = []string{"pending", "paid", "overdue"}
	RecipientTypes     = []string{"student", "parent", "batch", "teacher"}
)
