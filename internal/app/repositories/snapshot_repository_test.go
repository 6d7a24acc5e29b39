package repositories

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildSaveClearsThenInserts(t *testing.T) {
	t.Parallel()

	r := NewSnapshotRepository(nil)
	stmts, err := r.buildSave([]EntitySnapshot{
		{Entity: EntityStudents, LastID: 4, Records: []json.RawMessage{[]byte(`{"id":1}`), []byte(`{"id":4}`)}},
		{Entity: EntityFees, LastID: 0},
	})
	if err != nil {
		t.Fatalf("buildSave: %v", err)
	}

	if len(stmts) != 4 {
		t.Fatalf("got %d statements, want 4", len(stmts))
	}
	if stmts[0].sql != "DELETE FROM institute_records" || stmts[1].sql != "DELETE FROM institute_counters" {
		t.Fatalf("clear statements = %q, %q", stmts[0].sql, stmts[1].sql)
	}

	counters := stmts[2]
	if !strings.HasPrefix(counters.sql, "INSERT INTO institute_counters (entity,last_id) VALUES ($1,$2),($3,$4)") {
		t.Fatalf("counters sql = %q", counters.sql)
	}
	if len(counters.args) != 4 || counters.args[0] != EntityStudents || counters.args[1] != int64(4) {
		t.Fatalf("counters args = %v", counters.args)
	}

	records := stmts[3]
	if !strings.Contains(records.sql, "INSERT INTO institute_records (entity,position,payload)") {
		t.Fatalf("records sql = %q", records.sql)
	}
	if len(records.args) != 6 || records.args[5] != `{"id":4}` {
		t.Fatalf("records args = %v", records.args)
	}
}

func TestBuildSaveChunksLargeCollections(t *testing.T) {
	t.Parallel()

	recs := make([]json.RawMessage, insertChunkSize+1)
	for i := range recs {
		recs[i] = []byte(`{}`)
	}

	stmts, err := NewSnapshotRepository(nil).buildSave([]EntitySnapshot{{Entity: EntityMessages, Records: recs}})
	if err != nil {
		t.Fatalf("buildSave: %v", err)
	}
	// two clears, one counters insert, two record chunks
	if len(stmts) != 5 {
		t.Fatalf("got %d statements, want 5", len(stmts))
	}
	if got := len(stmts[4].args); got != 3 {
		t.Fatalf("last chunk args = %d, want 3", got)
	}
	if stmts[4].args[1] != insertChunkSize {
		t.Fatalf("last chunk position = %v, want %d", stmts[4].args[1], insertChunkSize)
	}
}

func TestBuildSaveEmpty(t *testing.T) {
	t.Parallel()

	stmts, err := NewSnapshotRepository(nil).buildSave(nil)
	if err != nil {
		t.Fatalf("buildSave: %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want only the two clears", len(stmts))
	}
}
