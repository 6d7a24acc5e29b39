package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/models/dto"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/helpers"
)

// DashboardService derives institute-wide metrics from the record store.
// Nothing is cached; every call reads the collections afresh.
type DashboardService interface {
	GetMetrics(ctx context.Context) dto.DashboardMetrics
}

type dashboardServiceImpl struct {
	repos *repositories.Repositories
	now   func() time.Time
}

func NewDashboardService(repos *repositories.Repositories, now func() time.Time) DashboardService {
	return &dashboardServiceImpl{repos: repos, now: now}
}

// GetMetrics counts students and teachers and aggregates fees and
// attendance over the calendar month containing now. Each collection is read
// separately, so the four figures are not one atomic view.
func (s *dashboardServiceImpl) GetMetrics(ctx context.Context) dto.DashboardMetrics {
	now := s.now()
	return dto.DashboardMetrics{
		TotalStudents:  s.repos.StudentRepository.Count(),
		TotalTeachers:  s.repos.TeacherRepository.Count(),
		MonthlyRevenue: MonthlyRevenue(s.repos.FeeRepository.GetAll(), now),
		AttendanceRate: AttendanceRate(s.repos.AttendanceRepository.GetAll(), now),
	}
}

// MonthlyRevenue sums the amounts of fees paid in now's month.
func MonthlyRevenue(fees []models.Fee, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fees {
		if f.Amount != nil && f.IsPaidInMonthOf(now) {
			total = total.Add(*f.Amount)
		}
	}
	return total
}

// AttendanceRate is the percentage of now's-month marks that are "present",
// rounded to two decimals. No marks yields 0.
func AttendanceRate(records []models.Attendance, now time.Time) float64 {
	var total, present int64
	for _, a := range records {
		if a.Date == nil || !helpers.InMonthOf(*a.Date, now) {
			continue
		}
		total++
		if a.Status != nil && *a.Status == models.AttendanceStatusPresent {
			present++
		}
	}
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(present*100).
		DivRound(decimal.NewFromInt(total), 2).
		InexactFloat64()
}
