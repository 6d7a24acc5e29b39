package repositories

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/patch"
)

var fixedNow = time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

func newTestStore() *Repositories {
	return NewRepositoriesWithClock(func() time.Time { return fixedNow })
}

func ptr[T any](v T) *T { return &v }

func TestCreateStudentSynthesizesDefaults(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	s := store.StudentRepository.Create(models.NewStudent{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@x.com",
		Phone:     "9990001111",
	})

	if s.ID != 1 {
		t.Fatalf("id = %d, want 1", s.ID)
	}
	if !s.IsActive {
		t.Fatal("isActive = false, want true")
	}
	if !s.EnrollmentDate.Equal(fixedNow) {
		t.Fatalf("enrollmentDate = %v, want %v", s.EnrollmentDate, fixedNow)
	}
	if s.Address != nil || s.DateOfBirth != nil || s.Photo != nil {
		t.Fatalf("optional fields = %+v, want all nil", s)
	}

	got, ok := store.StudentRepository.GetByID(s.ID)
	if !ok {
		t.Fatal("student not found after create")
	}
	if !reflect.DeepEqual(got, s) {
		t.Fatalf("get = %+v, want %+v", got, s)
	}
}

func TestCreateThenGetReturnsStoredRecord(t *testing.T) {
	t.Parallel()

	store := newTestStore()

	batch := store.BatchRepository.Create(models.NewBatch{Name: "Morning A", CourseID: 7, TeacherID: 2})
	if got, _ := store.BatchRepository.GetByID(batch.ID); !reflect.DeepEqual(got, batch) {
		t.Fatalf("batch get = %+v, want %+v", got, batch)
	}
	if batch.Capacity != models.DefaultBatchCapacity || batch.CurrentEnrollment != 0 || !batch.IsActive {
		t.Fatalf("batch defaults = %+v", batch)
	}

	enr := store.EnrollmentRepository.Create(models.NewEnrollment{StudentID: 1, BatchID: batch.ID})
	if got, _ := store.EnrollmentRepository.GetByID(enr.ID); !reflect.DeepEqual(got, enr) {
		t.Fatalf("enrollment get = %+v, want %+v", got, enr)
	}
	if enr.Status != models.EnrollmentStatusActive || !enr.EnrollmentDate.Equal(fixedNow) {
		t.Fatalf("enrollment defaults = %+v", enr)
	}

	msg := store.MessageRepository.Create(models.NewMessage{RecipientType: models.RecipientBatch, RecipientID: ptr(batch.ID)})
	if got, _ := store.MessageRepository.GetByID(msg.ID); !reflect.DeepEqual(got, msg) {
		t.Fatalf("message get = %+v, want %+v", got, msg)
	}
	if msg.Status != models.MessageStatusSent || !msg.SentAt.Equal(fixedNow) {
		t.Fatalf("message defaults = %+v", msg)
	}

	course := store.CourseRepository.Create(models.NewCourse{Name: "JEE Physics"})
	if got, _ := store.CourseRepository.GetByID(course.ID); !reflect.DeepEqual(got, course) {
		t.Fatalf("course get = %+v, want %+v", got, course)
	}
}

func TestEnrollmentLeavesBatchCounterAlone(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	batch := store.BatchRepository.Create(models.NewBatch{Name: "Evening", CourseID: 1, TeacherID: 1})
	e := store.EnrollmentRepository.Create(models.NewEnrollment{StudentID: 1, BatchID: batch.ID})
	store.EnrollmentRepository.Delete(e.ID)

	got, _ := store.BatchRepository.GetByID(batch.ID)
	if got.CurrentEnrollment != 0 {
		t.Fatalf("currentEnrollment = %d, want 0", got.CurrentEnrollment)
	}
}

func TestIDsIncreaseAcrossDeletes(t *testing.T) {
	t.Parallel()

	repo := newTestStore().ExamRepository
	var last int64
	for i := 0; i < 5; i++ {
		e := repo.Create(models.NewExam{Title: "Quiz", BatchID: 1})
		if e.ID <= last {
			t.Fatalf("id %d not greater than %d", e.ID, last)
		}
		last = e.ID
		if i%2 == 0 {
			repo.Delete(e.ID)
		}
	}
}

func TestEmptyPatchIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := newTestStore().TeacherRepository
	created := repo.Create(models.NewTeacher{
		FirstName: "Vikram",
		LastName:  "Iyer",
		Email:     "vikram@x.com",
		Phone:     "9990002222",
		Salary:    ptr(decimal.RequireFromString("45000.00")),
	})

	updated, err := repo.Update(created.ID, models.TeacherPatch{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !reflect.DeepEqual(updated, created) {
		t.Fatalf("update({}) = %+v, want %+v", updated, created)
	}
}

func TestPartialMergeKeepsAbsentFields(t *testing.T) {
	t.Parallel()

	repo := newTestStore().StudentRepository
	s := repo.Create(models.NewStudent{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@x.com",
		Phone:     "9990001111",
		Address:   ptr("Main road"),
	})

	updated, err := repo.Update(s.ID, models.StudentPatch{
		LastName:   patch.Of("Menon"),
		ParentName: patch.Of("Ravi"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LastName != "Menon" || updated.FirstName != "Asha" {
		t.Fatalf("names = %q %q", updated.FirstName, updated.LastName)
	}
	if updated.Address == nil || *updated.Address != "Main road" {
		t.Fatalf("address = %v, want Main road", updated.Address)
	}
	if updated.ParentName == nil || *updated.ParentName != "Ravi" {
		t.Fatalf("parentName = %v, want Ravi", updated.ParentName)
	}

	cleared, err := repo.Update(s.ID, models.StudentPatch{Address: patch.Null[string]()})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cleared.Address != nil {
		t.Fatalf("address = %q, want nil", *cleared.Address)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := newTestStore().CourseRepository
	keep := repo.Create(models.NewCourse{Name: "Chemistry"})
	gone := repo.Create(models.NewCourse{Name: "Biology"})

	repo.Delete(gone.ID)
	once := repo.GetAll()
	repo.Delete(gone.ID)
	twice := repo.GetAll()

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second delete changed state: %+v vs %+v", once, twice)
	}
	if len(twice) != 1 || twice[0].ID != keep.ID {
		t.Fatalf("list = %+v, want only course %d", twice, keep.ID)
	}
}

func TestTeacherUpdateMissingVersusDelete(t *testing.T) {
	t.Parallel()

	repo := newTestStore().TeacherRepository
	_, err := repo.Update(999, models.TeacherPatch{FirstName: patch.Of("X")})
	if !errors.Is(err, apperrors.ErrTeacherNotFound) {
		t.Fatalf("err = %v, want ErrTeacherNotFound", err)
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("err = %v, want not-found class", err)
	}
	repo.Delete(999)
}

func TestBatchesByCourse(t *testing.T) {
	t.Parallel()

	repo := newTestStore().BatchRepository
	first := repo.Create(models.NewBatch{Name: "A", CourseID: 7, TeacherID: 1})
	repo.Create(models.NewBatch{Name: "B", CourseID: 8, TeacherID: 1})

	got := repo.GetByCourse(7)
	if len(got) != 1 || got[0].ID != first.ID {
		t.Fatalf("GetByCourse(7) = %+v, want only batch %d", got, first.ID)
	}
}

func TestForeignKeyListsAreOrderedSubsets(t *testing.T) {
	t.Parallel()

	repo := newTestStore().FeeRepository
	for _, sid := range []int64{1, 2, 1, 3, 1} {
		repo.Create(models.NewFee{StudentID: sid})
	}

	var want []models.Fee
	for _, f := range repo.GetAll() {
		if f.StudentID == 1 {
			want = append(want, f)
		}
	}
	got := repo.GetByStudent(1)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GetByStudent(1) = %+v, want %+v", got, want)
	}
	if got[0].Status != models.FeeStatusPending {
		t.Fatalf("status = %q, want pending", got[0].Status)
	}
}

func TestAttendanceByDateIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	repo := newTestStore().AttendanceRepository
	morning := time.Date(2026, time.March, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 14, 19, 45, 0, 0, time.UTC)
	nextDay := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)

	a := repo.Create(models.NewAttendance{StudentID: 1, BatchID: 1, Date: &morning, Status: ptr("present")})
	b := repo.Create(models.NewAttendance{StudentID: 2, BatchID: 2, Date: &evening, Status: ptr("absent")})
	repo.Create(models.NewAttendance{StudentID: 1, BatchID: 1, Date: &nextDay})
	repo.Create(models.NewAttendance{StudentID: 1, BatchID: 1})

	got := repo.GetByDate(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC))
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatalf("GetByDate = %+v, want ids %d and %d", got, a.ID, b.ID)
	}

	byBatch := repo.GetByBatchAndDate(2, morning)
	if len(byBatch) != 1 || byBatch[0].ID != b.ID {
		t.Fatalf("GetByBatchAndDate = %+v, want id %d", byBatch, b.ID)
	}
}

func TestMessagesByRecipient(t *testing.T) {
	t.Parallel()

	repo := newTestStore().MessageRepository
	hit := repo.Create(models.NewMessage{RecipientType: models.RecipientBatch, RecipientID: ptr(int64(3))})
	repo.Create(models.NewMessage{RecipientType: models.RecipientStudent, RecipientID: ptr(int64(3))})
	repo.Create(models.NewMessage{RecipientType: models.RecipientBatch})

	got := repo.GetByRecipient(models.RecipientBatch, 3)
	if len(got) != 1 || got[0].ID != hit.ID {
		t.Fatalf("GetByRecipient = %+v, want id %d", got, hit.ID)
	}
}

func TestFindByEmailIgnoresCase(t *testing.T) {
	t.Parallel()

	repo := newTestStore().StudentRepository
	s := repo.Create(models.NewStudent{FirstName: "A", LastName: "R", Email: "Asha@X.com", Phone: "9990001111"})

	got, ok := repo.FindByEmail("asha@x.com")
	if !ok || got.ID != s.ID {
		t.Fatalf("FindByEmail = %+v, %v", got, ok)
	}
	if _, ok := repo.FindByEmail("nobody@x.com"); ok {
		t.Fatal("FindByEmail matched unknown address")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	src := newTestStore()
	src.StudentRepository.Create(models.NewStudent{FirstName: "A", LastName: "R", Email: "a@x.com", Phone: "9990001111"})
	gone := src.StudentRepository.Create(models.NewStudent{FirstName: "B", LastName: "S", Email: "b@x.com", Phone: "9990001112"})
	src.StudentRepository.Delete(gone.ID)
	src.FeeRepository.Create(models.NewFee{StudentID: 1, Amount: ptr(decimal.RequireFromString("5000"))})

	snaps, err := src.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snaps) != len(EntityNames) {
		t.Fatalf("snapshot has %d entities, want %d", len(snaps), len(EntityNames))
	}

	dst := newTestStore()
	if err := dst.Restore(snaps); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !reflect.DeepEqual(dst.StudentRepository.GetAll(), src.StudentRepository.GetAll()) {
		t.Fatal("students differ after restore")
	}
	next := dst.StudentRepository.Create(models.NewStudent{FirstName: "C", LastName: "T", Email: "c@x.com", Phone: "9990001113"})
	if next.ID != 3 {
		t.Fatalf("next id = %d, want 3", next.ID)
	}

	fees := dst.FeeRepository.GetAll()
	if len(fees) != 1 || fees[0].Amount == nil || !fees[0].Amount.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("fees = %+v", fees)
	}
}

func TestRestoreRejectsUnknownEntity(t *testing.T) {
	t.Parallel()

	err := newTestStore().Restore([]EntitySnapshot{{Entity: "invoices"}})
	if err == nil {
		t.Fatal("expected error for unknown entity")
	}
}

func TestStoredRecordsDoNotAliasCallers(t *testing.T) {
	t.Parallel()

	store := newTestStore()

	addr := "12 MG Road"
	s := store.StudentRepository.Create(models.NewStudent{FirstName: "Asha", Email: "asha@x.com", Address: &addr})
	addr = "changed by caller"

	got, _ := store.StudentRepository.GetByID(s.ID)
	if got.Address == nil || *got.Address != "12 MG Road" {
		t.Fatalf("address after caller write = %v, want 12 MG Road", got.Address)
	}

	*got.Address = "changed through get"
	*store.StudentRepository.GetAll()[0].Address = "changed through list"
	if updated, _ := store.StudentRepository.Update(s.ID, models.StudentPatch{}); *updated.Address != "12 MG Road" {
		t.Fatalf("address after reader writes = %q, want 12 MG Road", *updated.Address)
	} else {
		*updated.Address = "changed through update"
	}

	if again, _ := store.StudentRepository.GetByID(s.ID); *again.Address != "12 MG Road" {
		t.Fatalf("stored address = %q, want 12 MG Road", *again.Address)
	}
}
