package storage

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by every model through the embedded Meta.
type Entity interface {
	EntityID() string
	Stamp(id string, now time.Time)
	Touch(now time.Time)
}

// Collection is the keyed in-memory record set for one entity type.
// Every mutation happens under the lock, so each Create/Update is
// atomic from a reader's point of view. List preserves insertion
// order, which is the only ordering callers observe.
type Collection[T Entity] struct {
	mu      sync.RWMutex
	name    string
	records []T
	index   map[string]int
	hub     *Hub
	now     func() time.Time
}

func newCollection[T Entity](name string, hub *Hub, now func() time.Time) *Collection[T] {
	return &Collection[T]{
		name:  name,
		index: make(map[string]int),
		hub:   hub,
		now:   now,
	}
}

// Name returns the collection name used in notifications and errors.
func (c *Collection[T]) Name() string { return c.name }

// Create assigns a fresh identifier, stamps the creation time, stores
// the record and returns it. It never fails for a well-typed record;
// input validation is the facade's job, not the store's.
func (c *Collection[T]) Create(rec T) T {
	c.mu.Lock()
	rec.Stamp(uuid.NewString(), c.now())
	c.index[rec.EntityID()] = len(c.records)
	c.records = append(c.records, rec)
	c.mu.Unlock()

	c.hub.publish(c.name, rec)
	return rec
}

// List returns every record in insertion order. The returned slice is
// a copy; the records themselves are shared, so callers must not
// mutate them directly and instead go through Update.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	i, ok := c.index[id]
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	return c.records[i], nil
}

// Count returns the number of records in the collection.
func (c *Collection[T]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Update merges the given fields onto the existing record and returns
// the merged result. The merge is shallow: patch keys are JSON field
// names, and list- or object-valued fields are replaced wholesale,
// never deep-merged. The identifier and creation timestamp cannot be
// overwritten. Returns ErrNotFound for an unknown id.
func (c *Collection[T]) Update(id string, patch map[string]interface{}) (T, error) {
	c.mu.Lock()
	var zero T
	i, ok := c.index[id]
	if !ok {
		c.mu.Unlock()
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}

	merged, err := overlay(c.records[i], patch)
	if err != nil {
		c.mu.Unlock()
		return zero, fmt.Errorf("merge %s %q: %w", c.name, id, err)
	}
	merged.Touch(c.now())
	c.records[i] = merged
	c.mu.Unlock()

	c.hub.publish(c.name, merged)
	return merged, nil
}

// Replace swaps the stored record wholesale, keeping id and creation
// time. Used by the simulation's crowd refresh, which rederives whole
// records rather than patching fields.
func (c *Collection[T]) Replace(id string, rec T) (T, error) {
	c.mu.Lock()
	var zero T
	i, ok := c.index[id]
	if !ok {
		c.mu.Unlock()
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	prev := c.records[i]
	rec.Stamp(prev.EntityID(), c.now())
	// Stamp reset CreatedAt; restore the original creation time so the
	// identifier-and-creation-stamp pair stays stable for the record's
	// lifetime.
	restoreCreatedAt(rec, prev)
	c.records[i] = rec
	c.mu.Unlock()

	c.hub.publish(c.name, rec)
	return rec, nil
}

// overlay produces a new record equal to rec with the patch applied on
// top. It round-trips through JSON so that patch semantics match the
// wire format exactly: unknown keys are ignored, lists replace rather
// than append, and a type mismatch fails before any field is mutated.
func overlay[T Entity](rec T, patch map[string]interface{}) (T, error) {
	var zero T

	raw, err := json.Marshal(rec)
	if err != nil {
		return zero, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return zero, err
	}
	for k, v := range patch {
		if k == "id" || k == "createdAt" {
			continue
		}
		m[k] = v
	}
	buf, err := json.Marshal(m)
	if err != nil {
		return zero, err
	}

	fresh := reflect.New(reflect.TypeOf(rec).Elem()).Interface().(T)
	if err := json.Unmarshal(buf, fresh); err != nil {
		return zero, err
	}
	return fresh, nil
}

func restoreCreatedAt[T Entity](rec, prev T) {
	created := reflect.ValueOf(prev).Elem().FieldByName("Meta").FieldByName("CreatedAt")
	reflect.ValueOf(rec).Elem().FieldByName("Meta").FieldByName("CreatedAt").Set(created)
}
