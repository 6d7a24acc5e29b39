package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yigit/coachdesk/internal/app/models"
)

func TestMetricsOnEmptyStore(t *testing.T) {
	t.Parallel()

	svc, _ := newTestServices(Options{})
	m := svc.DashboardService.GetMetrics(context.Background())
	if m.TotalStudents != 0 || m.TotalTeachers != 0 {
		t.Fatalf("counts = %d/%d, want 0/0", m.TotalStudents, m.TotalTeachers)
	}
	if !m.MonthlyRevenue.IsZero() {
		t.Fatalf("revenue = %s, want 0", m.MonthlyRevenue)
	}
	if m.AttendanceRate != 0 {
		t.Fatalf("rate = %v, want 0", m.AttendanceRate)
	}
}

func TestMonthlyRevenue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	inMonth := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.February, 28, 23, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	amount := func(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }

	fees := []models.Fee{
		{Status: "paid", PaidDate: &inMonth, Amount: amount("0.10")},
		{Status: "paid", PaidDate: &inMonth, Amount: amount("0.20")},
		{Status: "paid", PaidDate: &lastMonth, Amount: amount("100")},
		{Status: "paid", PaidDate: &lastYear, Amount: amount("100")},
		{Status: "paid", Amount: amount("100")},
		{Status: "pending", PaidDate: &inMonth, Amount: amount("100")},
		{Status: "paid", PaidDate: &inMonth},
	}

	got := MonthlyRevenue(fees, now)
	if !got.Equal(decimal.RequireFromString("0.30")) {
		t.Fatalf("MonthlyRevenue = %s, want 0.30", got)
	}
}

func TestAttendanceRate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	old := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	status := func(s string) *string { return &s }

	tests := []struct {
		name    string
		records []models.Attendance
		want    float64
	}{
		{name: "none", want: 0},
		{name: "only other months", records: []models.Attendance{{Date: &old, Status: status("present")}}, want: 0},
		{
			name: "two of three present",
			records: []models.Attendance{
				{Date: &day, Status: status("present")},
				{Date: &day, Status: status("present")},
				{Date: &day, Status: status("late")},
				{Date: &old, Status: status("absent")},
				{Status: status("absent")},
			},
			want: 66.67,
		},
		{
			name: "missing status counts as not present",
			records: []models.Attendance{
				{Date: &day, Status: status("present")},
				{Date: &day},
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendanceRate(tt.records, now); got != tt.want {
				t.Fatalf("AttendanceRate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMetricsCountAllRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestServices(Options{})
	inactive := false

	for i, email := range []string{"a@x.com", "b@x.com"} {
		in := asha()
		in.Email = email
		if i == 1 {
			in.IsActive = &inactive
		}
		if _, err := svc.StudentService.CreateStudent(ctx, in); err != nil {
			t.Fatalf("CreateStudent: %v", err)
		}
	}
	if _, err := svc.TeacherService.CreateTeacher(ctx, models.NewTeacher{
		FirstName: "Vikram", LastName: "Iyer", Email: "v@x.com", Phone: "9990002222",
	}); err != nil {
		t.Fatalf("CreateTeacher: %v", err)
	}

	present := "present"
	if _, err := svc.AttendanceService.MarkAttendance(ctx, models.NewAttendance{StudentID: 1, BatchID: 1, Date: &testNow, Status: &present}); err != nil {
		t.Fatalf("MarkAttendance: %v", err)
	}

	m := svc.DashboardService.GetMetrics(ctx)
	if m.TotalStudents != 2 || m.TotalTeachers != 1 {
		t.Fatalf("counts = %d/%d, want 2/1", m.TotalStudents, m.TotalTeachers)
	}
	if m.AttendanceRate != 100 {
		t.Fatalf("rate = %v, want 100", m.AttendanceRate)
	}
}
