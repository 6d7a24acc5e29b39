package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/patch"
	"github.com/yigit/coachdesk/internal/pkg/websocket"
)

var testNow = time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []*websocket.Notification
}

func (r *recordingNotifier) Publish(n *websocket.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveFileWithPath(fh *multipart.FileHeader, subPath string) (string, error) {
	url := "uploads/" + subPath + "/" + fh.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) DeleteFile(url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func newTestServices(opts Options) (*Services, *repositories.Repositories) {
	repos := repositories.NewRepositoriesWithClock(func() time.Time { return testNow })
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return testNow }
	}
	return NewServices(repos, opts, zerolog.Nop()), repos
}

func ptr[T any](v T) *T { return &v }

func asha() models.NewStudent {
	return models.NewStudent{FirstName: "Asha", LastName: "Rao", Email: "asha@x.com", Phone: "9990001111"}
}

func TestCreateStudentScenario(t *testing.T) {
	t.Parallel()

	svc, _ := newTestServices(Options{})
	s, err := svc.StudentService.CreateStudent(context.Background(), asha())
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if s.ID != 1 || !s.IsActive || !s.EnrollmentDate.Equal(testNow) {
		t.Fatalf("student = %+v", s)
	}
}

func TestCreateStudentRejectsMissingFields(t *testing.T) {
	t.Parallel()

	svc, repos := newTestServices(Options{})
	_, err := svc.StudentService.CreateStudent(context.Background(), models.NewStudent{FirstName: "Asha"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatal("validation error must not look like not found")
	}
	if repos.StudentRepository.Count() != 0 {
		t.Fatal("invalid student was stored")
	}
}

func TestStudentEmailIsUnique(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestServices(Options{})
	first, _ := svc.StudentService.CreateStudent(ctx, asha())

	dup := asha()
	dup.Email = "ASHA@x.com"
	if _, err := svc.StudentService.CreateStudent(ctx, dup); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("duplicate create err = %v, want ErrEmailAlreadyExists", err)
	}

	other := asha()
	other.Email = "meera@x.com"
	second, err := svc.StudentService.CreateStudent(ctx, other)
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	_, err = svc.StudentService.UpdateStudent(ctx, second.ID, models.StudentPatch{Email: patch.Of("asha@x.com")})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("update err = %v, want conflict", err)
	}

	// keeping your own email is fine
	if _, err := svc.StudentService.UpdateStudent(ctx, first.ID, models.StudentPatch{Email: patch.Of("asha@x.com")}); err != nil {
		t.Fatalf("self update: %v", err)
	}
}

func TestUpdateMissingWithTakenEmailIsNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestServices(Options{})
	if _, err := svc.StudentService.CreateStudent(ctx, asha()); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	teacher, err := svc.TeacherService.CreateTeacher(ctx, models.NewTeacher{
		FirstName: "Ravi", LastName: "Iyer", Email: "ravi@x.com", Phone: "9990002222",
	})
	if err != nil {
		t.Fatalf("CreateTeacher: %v", err)
	}

	_, err = svc.StudentService.UpdateStudent(ctx, 999, models.StudentPatch{Email: patch.Of("asha@x.com")})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("student update err = %v, want ErrStudentNotFound", err)
	}
	_, err = svc.TeacherService.UpdateTeacher(ctx, teacher.ID+1, models.TeacherPatch{Email: patch.Of(teacher.Email)})
	if !errors.Is(err, apperrors.ErrTeacherNotFound) {
		t.Fatalf("teacher update err = %v, want ErrTeacherNotFound", err)
	}
}

func TestUpdateStudentRejectsNullRequired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestServices(Options{})
	s, _ := svc.StudentService.CreateStudent(ctx, asha())

	_, err := svc.StudentService.UpdateStudent(ctx, s.ID, models.StudentPatch{FirstName: patch.Null[string]()})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	if d := apperrors.DetailsOf(err); d["firstName"] == "" {
		t.Fatalf("details = %v, want firstName", d)
	}
}

func TestTeacherMissingUpdateVersusDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestServices(Options{})
	_, err := svc.TeacherService.UpdateTeacher(ctx, 999, models.TeacherPatch{Qualification: patch.Of("PhD")})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	svc.TeacherService.DeleteTeacher(ctx, 999)

	if _, err := svc.TeacherService.GetTeacherByID(ctx, 999); !errors.Is(err, apperrors.ErrTeacherNotFound) {
		t.Fatalf("get err = %v, want ErrTeacherNotFound", err)
	}
}

func TestFeePaymentRaisesMonthlyRevenue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestServices(Options{})

	before := svc.DashboardService.GetMetrics(ctx)
	if !before.MonthlyRevenue.IsZero() {
		t.Fatalf("initial revenue = %s, want 0", before.MonthlyRevenue)
	}

	fee, err := svc.FeeService.CreateFee(ctx, models.NewFee{StudentID: 1, Amount: ptr(decimal.RequireFromString("5000"))})
	if err != nil {
		t.Fatalf("CreateFee: %v", err)
	}
	if fee.Status != "pending" {
		t.Fatalf("status = %q, want pending", fee.Status)
	}

	if _, err := svc.FeeService.UpdateFee(ctx, fee.ID, models.FeePatch{
		Status:   patch.Of("paid"),
		PaidDate: patch.Of(testNow),
	}); err != nil {
		t.Fatalf("UpdateFee: %v", err)
	}

	after := svc.DashboardService.GetMetrics(ctx)
	if diff := after.MonthlyRevenue.Sub(before.MonthlyRevenue); !diff.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("revenue increased by %s, want 5000", diff)
	}
}

func TestUpdateFeeRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestServices(Options{})
	fee, _ := svc.FeeService.CreateFee(ctx, models.NewFee{StudentID: 1})

	for _, p := range []models.FeePatch{
		{Status: patch.Of("refunded")},
		{Status: patch.Null[string]()},
		{Amount: patch.Of(decimal.NewFromInt(-1))},
	} {
		if _, err := svc.FeeService.UpdateFee(ctx, fee.ID, p); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("UpdateFee(%+v) err = %v, want validation failure", p, err)
		}
	}
}

func TestSendMessageNotifiesRecipient(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc, _ := newTestServices(Options{Notifier: notifier})

	msg, err := svc.MessageService.SendMessage(ctx, models.NewMessage{
		RecipientType: models.RecipientBatch,
		RecipientID:   ptr(int64(3)),
		Subject:       ptr("Holiday notice"),
	})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.Status != "sent" || !msg.SentAt.Equal(testNow) {
		t.Fatalf("message = %+v", msg)
	}

	if _, err := svc.MessageService.SendMessage(ctx, models.NewMessage{RecipientType: models.RecipientBatch}); err != nil {
		t.Fatalf("SendMessage without recipient: %v", err)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("published %d notifications, want 1", len(notifier.sent))
	}
	n := notifier.sent[0]
	if n.Topic != "batch:3" || n.Type != NotificationMessageCreated {
		t.Fatalf("notification = %+v", n)
	}
}

func TestSendMessageRejectsUnknownRecipientType(t *testing.T) {
	t.Parallel()

	svc, _ := newTestServices(Options{})
	_, err := svc.MessageService.SendMessage(context.Background(), models.NewMessage{RecipientType: "alumni"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestUploadPhotoReplacesPrevious(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := &fakeStorage{}
	svc, _ := newTestServices(Options{Storage: storage})
	s, _ := svc.StudentService.CreateStudent(ctx, asha())

	first, err := svc.StudentService.UploadPhoto(ctx, s.ID, &multipart.FileHeader{Filename: "a.jpg"})
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}
	if first.Photo == nil || *first.Photo != "uploads/students/a.jpg" {
		t.Fatalf("photo = %v", first.Photo)
	}

	if _, err := svc.StudentService.UploadPhoto(ctx, s.ID, &multipart.FileHeader{Filename: "b.png"}); err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "uploads/students/a.jpg" {
		t.Fatalf("deleted = %v, want the first photo", storage.deleted)
	}

	if _, err := svc.StudentService.UploadPhoto(ctx, s.ID, &multipart.FileHeader{Filename: "c.exe"}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.StudentService.UploadPhoto(ctx, 42, &multipart.FileHeader{Filename: "d.jpg"}); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestBatchCreateAppliesDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestServices(Options{})
	b, err := svc.BatchService.CreateBatch(ctx, models.NewBatch{Name: "Morning", CourseID: 7, TeacherID: 999})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if b.Capacity != 30 || b.CurrentEnrollment != 0 || !b.IsActive {
		t.Fatalf("batch = %+v", b)
	}

	if _, err := svc.BatchService.UpdateBatch(ctx, b.ID, models.BatchPatch{Capacity: patch.Of(0)}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}
