package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/services"
)

func ptr[T any](v T) *T { return &v }

// CreateDefaultData fills an empty record store with a small demo institute:
// one course, a teacher, a batch, two enrolled students, a paid fee and
// today's attendance. A store that already holds students is left alone.
func CreateDefaultData(ctx context.Context, svcs *services.Services, now time.Time, lgr zerolog.Logger) error {
	if len(svcs.StudentService.GetAllStudents(ctx)) > 0 {
		lgr.Info().Msg("Record store not empty, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Creating demo data...")

	course, err := svcs.CourseService.CreateCourse(ctx, models.NewCourse{
		Name:        "JEE Foundation",
		Description: ptr("Physics, chemistry and mathematics for grades 9 and 10"),
		Duration:    ptr("12 months"),
		Fee:         ptr(decimal.RequireFromString("45000")),
	})
	if err != nil {
		return err
	}

	teacher, err := svcs.TeacherService.CreateTeacher(ctx, models.NewTeacher{
		FirstName:      "Meera",
		LastName:       "Iyer",
		Email:          "meera.iyer@coachdesk.local",
		Phone:          "9876501234",
		Qualification:  ptr("M.Sc. Physics"),
		Experience:     ptr(8),
		Specialization: ptr("Physics"),
		Salary:         ptr(decimal.RequireFromString("60000")),
	})
	if err != nil {
		return err
	}

	batch, err := svcs.BatchService.CreateBatch(ctx, models.NewBatch{
		Name:      "JEE-F Morning",
		CourseID:  course.ID,
		TeacherID: teacher.ID,
		StartDate: ptr(now.AddDate(0, -1, 0)),
		Schedule:  ptr("Mon-Fri 07:00-09:00"),
	})
	if err != nil {
		return err
	}

	students := []models.NewStudent{
		{FirstName: "Asha", LastName: "Rao", Email: "asha.rao@coachdesk.local", Phone: "9990001111", ParentName: ptr("Ravi Rao"), ParentPhone: ptr("9990002222")},
		{FirstName: "Kabir", LastName: "Shah", Email: "kabir.shah@coachdesk.local", Phone: "9990003333"},
	}

	// Collect per-record errors and keep going, so one bad row does not
	// hide the rest of the demo data
	var finalErr error
	for i, in := range students {
		student, err := svcs.StudentService.CreateStudent(ctx, in)
		if err != nil {
			lgr.Error().Err(err).Str("email", in.Email).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		if _, err := svcs.EnrollmentService.CreateEnrollment(ctx, models.NewEnrollment{StudentID: student.ID, BatchID: batch.ID}); err != nil {
			finalErr = errors.Join(finalErr, err)
		}

		fee := models.NewFee{
			StudentID: student.ID,
			BatchID:   ptr(batch.ID),
			Amount:    course.Fee,
			DueDate:   ptr(now.AddDate(0, 0, 7)),
		}
		if i == 0 {
			fee.Status = ptr(models.FeeStatusPaid)
			fee.PaidDate = ptr(now)
			fee.PaymentMethod = ptr("upi")
			fee.ReceiptNumber = ptr("RCPT-0001")
		}
		if _, err := svcs.FeeService.CreateFee(ctx, fee); err != nil {
			finalErr = errors.Join(finalErr, err)
		}

		status := models.AttendanceStatusPresent
		if i == 1 {
			status = "late"
		}
		if _, err := svcs.AttendanceService.MarkAttendance(ctx, models.NewAttendance{
			StudentID: student.ID,
			BatchID:   batch.ID,
			Date:      ptr(now),
			Status:    ptr(status),
		}); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	if _, err := svcs.MessageService.SendMessage(ctx, models.NewMessage{
		Subject:       ptr("Welcome"),
		Content:       ptr("Classes for JEE-F Morning start at 07:00 sharp."),
		RecipientType: models.RecipientBatch,
		RecipientID:   ptr(batch.ID),
		SentBy:        ptr("admin"),
		Type:          ptr("announcement"),
	}); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Int64("batchID", batch.ID).Msg("Demo data created")
	}
	return finalErr
}
