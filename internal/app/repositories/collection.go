package repositories

import (
	"encoding/json"
	"fmt"
	"sync"
)

// record is a stored entity. Clone must return a copy that shares no
// pointers with the receiver.
type record[T any] interface {
	Clone() T
}

// collection holds one entity's records together with its id counter.
// Both live under the same lock so an id is never observable before its
// record is stored, and ids are never reused after a delete.
//
// Records are cloned on the way in and on the way out, so neither the
// caller's inputs nor the values handed back alias what is stored.
type collection[T record[T]] struct {
	mu      sync.RWMutex
	lastID  int64
	order   []int64
	records map[int64]T
	idOf    func(T) int64
}

func newCollection[T record[T]](idOf func(T) int64) *collection[T] {
	return &collection[T]{
		records: make(map[int64]T),
		idOf:    idOf,
	}
}

// insert allocates the next id and stores the record built for it.
func (c *collection[T]) insert(build func(id int64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	rec := build(c.lastID)
	c.records[c.lastID] = rec.Clone()
	c.order = append(c.order, c.lastID)
	return rec
}

func (c *collection[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.records[id]
	return rec.Clone(), ok
}

// list returns every record in insertion order.
func (c *collection[T]) list() []T {
	return c.filter(nil)
}

// filter returns the records matching keep, in insertion order.
// A nil keep matches everything.
func (c *collection[T]) filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		rec := c.records[id]
		if keep == nil || keep(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// find returns the first record matching keep.
func (c *collection[T]) find(keep func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if rec := c.records[id]; keep(rec) {
			return rec.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// update applies mutate to a copy of the stored record and stores the result.
func (c *collection[T]) update(id int64, mutate func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.records[id]
	if !ok {
		return stored, false
	}
	rec := stored.Clone()
	mutate(&rec)
	c.records[id] = rec
	return rec.Clone(), true
}

// remove deletes id if present. Missing ids are ignored.
func (c *collection[T]) remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.records[id]; !ok {
		return
	}
	delete(c.records, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// dump serializes the collection for the snapshot backend.
func (c *collection[T]) dump(entity string) (EntitySnapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := EntitySnapshot{
		Entity:  entity,
		LastID:  c.lastID,
		Records: make([]json.RawMessage, 0, len(c.order)),
	}
	for _, id := range c.order {
		raw, err := json.Marshal(c.records[id])
		if err != nil {
			return EntitySnapshot{}, fmt.Errorf("failed to encode %s %d: %w", entity, id, err)
		}
		snap.Records = append(snap.Records, raw)
	}
	return snap, nil
}

// load replaces the collection's contents with a snapshot. The counter is
// raised to the highest stored id if the snapshot's counter lags behind it.
func (c *collection[T]) load(snap EntitySnapshot) error {
	records := make(map[int64]T, len(snap.Records))
	order := make([]int64, 0, len(snap.Records))
	lastID := snap.LastID

	for i, raw := range snap.Records {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("failed to decode %s record %d: %w", snap.Entity, i, err)
		}
		id := c.idOf(rec)
		if id <= 0 {
			return fmt.Errorf("%s record %d has invalid id %d", snap.Entity, i, id)
		}
		if _, dup := records[id]; dup {
			return fmt.Errorf("%s record id %d appears twice", snap.Entity, id)
		}
		records[id] = rec
		order = append(order, id)
		if id > lastID {
			lastID = id
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = records
	c.order = order
	c.lastID = lastID
	return nil
}
