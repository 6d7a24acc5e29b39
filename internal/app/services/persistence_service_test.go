package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/repositories"
)

type memorySnapshotStore struct {
	mu      sync.Mutex
	snaps   []repositories.EntitySnapshot
	saves   int
	saveErr error
}

func (m *memorySnapshotStore) Save(_ context.Context, snaps []repositories.EntitySnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snaps = snaps
	m.saves++
	return nil
}

func (m *memorySnapshotStore) Load(context.Context) ([]repositories.EntitySnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snaps, nil
}

func (m *memorySnapshotStore) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func TestFlushThenRestoreKeepsRecordsAndCounters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := &memorySnapshotStore{}

	svcs, repos := newTestServices(Options{})
	first, err := svcs.StudentService.CreateStudent(ctx, asha())
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if err := NewPersistenceService(repos, store, zerolog.Nop()).Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	restored, restoredRepos := newTestServices(Options{})
	if err := NewPersistenceService(restoredRepos, store, zerolog.Nop()).Restore(ctx); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, err := restored.StudentService.GetStudentByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetStudentByID after restore: %v", err)
	}
	if got.Email != first.Email {
		t.Fatalf("restored email = %q, want %q", got.Email, first.Email)
	}

	in := asha()
	in.Email = "second@example.com"
	second, err := restored.StudentService.CreateStudent(ctx, in)
	if err != nil {
		t.Fatalf("CreateStudent after restore: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("id after restore = %d, want > %d", second.ID, first.ID)
	}
}

func TestFlushReportsStoreFailure(t *testing.T) {
	t.Parallel()

	_, repos := newTestServices(Options{})
	store := &memorySnapshotStore{saveErr: errors.New("connection refused")}
	if err := NewPersistenceService(repos, store, zerolog.Nop()).Flush(context.Background()); err == nil {
		t.Fatal("Flush succeeded, want error")
	}
}

func TestRunFlushesUntilCancelled(t *testing.T) {
	t.Parallel()

	_, repos := newTestServices(Options{})
	store := &memorySnapshotStore{}
	svc := NewPersistenceService(repos, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for store.saveCount() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if store.saveCount() < 2 {
		t.Fatalf("saves = %d, want at least 2", store.saveCount())
	}
}
