package repositories

import (
	"sync"
	"testing"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (i item) Clone() item { return i }

func newItems() *collection[item] {
	return newCollection(func(i item) int64 { return i.ID })
}

func addItem(c *collection[item], name string) item {
	return c.insert(func(id int64) item { return item{ID: id, Name: name} })
}

func TestCollectionIDsStayMonotonicAcrossDeletes(t *testing.T) {
	t.Parallel()

	c := newItems()
	a := addItem(c, "a")
	b := addItem(c, "b")
	c.remove(b.ID)
	d := addItem(c, "d")

	if a.ID != 1 || b.ID != 2 || d.ID != 3 {
		t.Fatalf("ids = %d, %d, %d, want 1, 2, 3", a.ID, b.ID, d.ID)
	}
	if got := c.list(); len(got) != 2 || got[0].Name != "a" || got[1].Name != "d" {
		t.Fatalf("list = %+v, want [a d]", got)
	}
}

func TestCollectionRemoveMissingIsNoop(t *testing.T) {
	t.Parallel()

	c := newItems()
	addItem(c, "a")
	c.remove(42)
	c.remove(42)
	if c.count() != 1 {
		t.Fatalf("count = %d, want 1", c.count())
	}
}

func TestCollectionUpdateMissing(t *testing.T) {
	t.Parallel()

	c := newItems()
	if _, ok := c.update(7, func(i *item) { i.Name = "x" }); ok {
		t.Fatal("expected update of missing id to report absence")
	}
}

func TestCollectionConcurrentInsertsGetUniqueIDs(t *testing.T) {
	t.Parallel()

	c := newItems()
	const workers, perWorker = 8, 50

	var wg sync.WaitGroup
	ids := make(chan int64, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- addItem(c, "x").ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("unique ids = %d, want %d", len(seen), workers*perWorker)
	}
}

func TestCollectionDumpLoadKeepsCounter(t *testing.T) {
	t.Parallel()

	src := newItems()
	addItem(src, "a")
	b := addItem(src, "b")
	addItem(src, "c")
	src.remove(3)

	snap, err := src.dump("items")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}

	dst := newItems()
	if err := dst.load(snap); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, ok := dst.get(b.ID); !ok || got.Name != "b" {
		t.Fatalf("get(%d) = %+v, %v, want b", b.ID, got, ok)
	}
	if next := addItem(dst, "d"); next.ID != 4 {
		t.Fatalf("next id = %d, want 4", next.ID)
	}
}
