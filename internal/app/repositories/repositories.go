package repositories

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entity names used as snapshot keys.
const (
	EntityStudents    = "students"
	EntityTeachers    = "teachers"
	EntityCourses     = "courses"
	EntityBatches     = "batches"
	EntityEnrollments = "enrollments"
	EntityExams       = "exams"
	EntityExamResults = "exam_results"
	EntityAttendance  = "attendance"
	EntityFees        = "fees"
	EntityMessages    = "messages"
)

// EntityNames lists every collection in a stable order.
var EntityNames = []string{
	EntityStudents, EntityTeachers, EntityCourses, EntityBatches, EntityEnrollments,
	EntityExams, EntityExamResults, EntityAttendance, EntityFees, EntityMessages,
}

// Clock returns the current time; records use it for creation timestamps.
type Clock func() time.Time

// Repositories is the record store: one independent collection per entity.
// Construct one per process (or per test) and share it by reference.
type Repositories struct {
	StudentRepository    *StudentRepository
	TeacherRepository    *TeacherRepository
	CourseRepository     *CourseRepository
	BatchRepository      *BatchRepository
	EnrollmentRepository *EnrollmentRepository
	ExamRepository       *ExamRepository
	ExamResultRepository *ExamResultRepository
	AttendanceRepository *AttendanceRepository
	FeeRepository        *FeeRepository
	MessageRepository    *MessageRepository
}

// NewRepositories initializes an empty store using the wall clock.
func NewRepositories() *Repositories {
	return NewRepositoriesWithClock(time.Now)
}

// NewRepositoriesWithClock initializes an empty store with a custom clock.
func NewRepositoriesWithClock(clock Clock) *Repositories {
	if clock == nil {
		clock = time.Now
	}
	return &Repositories{
		StudentRepository:    NewStudentRepository(clock),
		TeacherRepository:    NewTeacherRepository(clock),
		CourseRepository:     NewCourseRepository(),
		BatchRepository:      NewBatchRepository(),
		EnrollmentRepository: NewEnrollmentRepository(clock),
		ExamRepository:       NewExamRepository(),
		ExamResultRepository: NewExamResultRepository(),
		AttendanceRepository: NewAttendanceRepository(),
		FeeRepository:        NewFeeRepository(),
		MessageRepository:    NewMessageRepository(clock),
	}
}

// EntitySnapshot is the serialized form of one collection.
type EntitySnapshot struct {
	Entity  string
	LastID  int64
	Records []json.RawMessage
}

type snapshotter interface {
	dump(entity string) (EntitySnapshot, error)
	load(snap EntitySnapshot) error
}

func (r *Repositories) snapshotters() map[string]snapshotter {
	return map[string]snapshotter{
		EntityStudents:    r.StudentRepository.records,
		EntityTeachers:    r.TeacherRepository.records,
		EntityCourses:     r.CourseRepository.records,
		EntityBatches:     r.BatchRepository.records,
		EntityEnrollments: r.EnrollmentRepository.records,
		EntityExams:       r.ExamRepository.records,
		EntityExamResults: r.ExamResultRepository.records,
		EntityAttendance:  r.AttendanceRepository.records,
		EntityFees:        r.FeeRepository.records,
		EntityMessages:    r.MessageRepository.records,
	}
}

// Snapshot serializes every collection. Each collection is read under its
// own lock; the result is not a cross-collection atomic view.
func (r *Repositories) Snapshot() ([]EntitySnapshot, error) {
	sources := r.snapshotters()
	out := make([]EntitySnapshot, 0, len(sources))
	for _, name := range EntityNames {
		snap, err := sources[name].dump(name)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// Restore loads snapshots into the matching collections. Collections with no
// snapshot are left untouched.
func (r *Repositories) Restore(snaps []EntitySnapshot) error {
	targets := r.snapshotters()
	for _, snap := range snaps {
		s, ok := targets[snap.Entity]
		if !ok {
			return fmt.Errorf("unknown entity %q in snapshot", snap.Entity)
		}
		if err := s.load(snap); err != nil {
			return fmt.Errorf("failed to restore %s: %w", snap.Entity, err)
		}
	}
	return nil
}
