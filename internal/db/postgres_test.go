package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/coachdesk/internal/config"
	"github.com/yigit/coachdesk/internal/pkg/dberrors"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "coach"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "coachdesk"
	cfg.Database.MaxOpenConns = 8
	cfg.Database.MaxIdleConns = 2
	cfg.Database.ConnMaxLifetime = "45m"
	return cfg
}

func TestNewPoolConfig(t *testing.T) {
	t.Parallel()

	pc, err := newPoolConfig(testConfig())
	if err != nil {
		t.Fatalf("newPoolConfig: %v", err)
	}
	if pc.MaxConns != 8 || pc.MinConns != 2 {
		t.Fatalf("conns = %d/%d, want 8/2", pc.MaxConns, pc.MinConns)
	}
	if pc.MaxConnLifetime != 45*time.Minute {
		t.Fatalf("MaxConnLifetime = %v, want 45m", pc.MaxConnLifetime)
	}
	if pc.ConnConfig.Database != "coachdesk" || pc.ConnConfig.User != "coach" {
		t.Fatalf("conn config = %s@%s, want coach@coachdesk", pc.ConnConfig.User, pc.ConnConfig.Database)
	}
}

func TestNewPoolConfigRejectsBadLifetime(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Database.ConnMaxLifetime = "forever"
	if _, err := newPoolConfig(cfg); err == nil {
		t.Fatal("newPoolConfig succeeded, want error")
	}
}

// fakeTx implements the two pgx.Tx methods finishTx calls.
type fakeTx struct {
	pgx.Tx
	rollbackErr error
	commitErr   error
	rolledBack  bool
	committed   bool
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return f.rollbackErr
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return f.commitErr
}

func TestFinishTxKeepsCauseWhenRollbackFails(t *testing.T) {
	t.Parallel()

	cause := &pgconn.PgError{Code: "42P01", Message: `relation "institute_records" does not exist`}
	rbErr := errors.New("conn closed")
	tx := &fakeTx{rollbackErr: rbErr}

	err := finishTx(context.Background(), tx, cause)
	if !tx.rolledBack || tx.committed {
		t.Fatalf("rolledBack = %v, committed = %v, want rollback only", tx.rolledBack, tx.committed)
	}
	if !dberrors.IsUndefinedTable(err) {
		t.Fatalf("IsUndefinedTable(%v) = false, want true", err)
	}
	if !errors.Is(err, rbErr) {
		t.Fatalf("err = %v, want it to wrap the rollback error", err)
	}
}

func TestFinishTx(t *testing.T) {
	t.Parallel()

	cause := errors.New("insert failed")
	tx := &fakeTx{}
	if err := finishTx(context.Background(), tx, cause); err != cause || !tx.rolledBack {
		t.Fatalf("err = %v, rolledBack = %v, want cause and rollback", err, tx.rolledBack)
	}

	tx = &fakeTx{}
	if err := finishTx(context.Background(), tx, nil); err != nil || !tx.committed {
		t.Fatalf("err = %v, committed = %v, want commit", err, tx.committed)
	}

	commitErr := errors.New("serialization failure")
	tx = &fakeTx{commitErr: commitErr}
	if err := finishTx(context.Background(), tx, nil); !errors.Is(err, commitErr) {
		t.Fatalf("err = %v, want commit error", err)
	}
}
