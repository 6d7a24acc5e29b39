package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coachdesk/internal/db"
	"github.com/yigit/coachdesk/internal/pkg/dberrors"
	"github.com/yigit/coachdesk/internal/pkg/logger"
)

const (
	recordsTable  = "institute_records"
	countersTable = "institute_counters"

	// rows per INSERT statement when writing records
	insertChunkSize = 500
)

// SnapshotRepository persists whole-store snapshots to PostgreSQL.
// Each Save replaces the previous snapshot inside one transaction.
type SnapshotRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(pg *db.PostgresDB) *SnapshotRepository {
	return &SnapshotRepository{
		db: pg,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

type statement struct {
	sql  string
	args []interface{}
}

// buildSave returns every statement needed to replace the stored snapshot.
func (r *SnapshotRepository) buildSave(snaps []EntitySnapshot) ([]statement, error) {
	var stmts []statement

	for _, table := range []string{recordsTable, countersTable} {
		sql, args, err := r.sb.Delete(table).ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build clear %s query: %w", table, err)
		}
		stmts = append(stmts, statement{sql, args})
	}

	if len(snaps) == 0 {
		return stmts, nil
	}

	counters := r.sb.Insert(countersTable).Columns("entity", "last_id")
	for _, snap := range snaps {
		counters = counters.Values(snap.Entity, snap.LastID)
	}
	sql, args, err := counters.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build counters insert: %w", err)
	}
	stmts = append(stmts, statement{sql, args})

	for _, snap := range snaps {
		for start := 0; start < len(snap.Records); start += insertChunkSize {
			end := start + insertChunkSize
			if end > len(snap.Records) {
				end = len(snap.Records)
			}
			q := r.sb.Insert(recordsTable).Columns("entity", "position", "payload")
			for i := start; i < end; i++ {
				q = q.Values(snap.Entity, i, string(snap.Records[i]))
			}
			sql, args, err := q.ToSql()
			if err != nil {
				return nil, fmt.Errorf("failed to build %s records insert: %w", snap.Entity, err)
			}
			stmts = append(stmts, statement{sql, args})
		}
	}
	return stmts, nil
}

// Save replaces the stored snapshot with snaps.
func (r *SnapshotRepository) Save(ctx context.Context, snaps []EntitySnapshot) error {
	stmts, err := r.buildSave(snaps)
	if err != nil {
		logger.Error().Err(err).Msg("Error building snapshot SQL")
		return err
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, s := range stmts {
			if _, err := tx.Exec(ctx, s.sql, s.args...); err != nil {
				logger.Error().Err(err).Msg("Error executing snapshot statement")
				return fmt.Errorf("error saving snapshot: %w", err)
			}
		}
		return nil
	})
}

// Load reads the stored snapshot. An empty database yields no snapshots.
func (r *SnapshotRepository) Load(ctx context.Context) ([]EntitySnapshot, error) {
	sql, args, err := r.sb.Select("entity", "last_id").
		From(countersTable).
		OrderBy("entity ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build load counters query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUndefinedTable(err) {
			return nil, fmt.Errorf("snapshot tables are missing, apply migrations first: %w", err)
		}
		logger.Error().Err(err).Msg("Error executing load counters query")
		return nil, fmt.Errorf("error querying counters: %w", err)
	}

	byEntity := map[string]*EntitySnapshot{}
	var snaps []*EntitySnapshot
	for rows.Next() {
		snap := &EntitySnapshot{}
		if err := rows.Scan(&snap.Entity, &snap.LastID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("error scanning counter row: %w", err)
		}
		byEntity[snap.Entity] = snap
		snaps = append(snaps, snap)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counter rows: %w", err)
	}

	sql, args, err = r.sb.Select("entity", "payload").
		From(recordsTable).
		OrderBy("entity ASC", "position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build load records query: %w", err)
	}

	rows, err = r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing load records query")
		return nil, fmt.Errorf("error querying records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entity string
		var payload []byte
		if err := rows.Scan(&entity, &payload); err != nil {
			return nil, fmt.Errorf("error scanning record row: %w", err)
		}
		snap, ok := byEntity[entity]
		if !ok {
			// records without a counter row still restore; load raises the counter
			snap = &EntitySnapshot{Entity: entity}
			byEntity[entity] = snap
			snaps = append(snaps, snap)
		}
		snap.Records = append(snap.Records, json.RawMessage(payload))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}

	out := make([]EntitySnapshot, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, *s)
	}
	return out, nil
}
