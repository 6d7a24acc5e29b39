package dto

import "github.com/shopspring/decimal"

// DashboardMetrics is the institute-wide summary served at
// /api/dashboard/metrics.
type DashboardMetrics struct {
	TotalStudents  int             `json:"totalStudents" example:"120"`
	TotalTeachers  int             `json:"totalTeachers" example:"9"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue" swaggertype:"string" example:"125000.00"`
	// AttendanceRate is a percentage between 0 and 100, two decimals.
	AttendanceRate float64 `json:"attendanceRate" example:"92.5"`
}
