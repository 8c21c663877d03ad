package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"smartkumbh-http-service/utils"
)

// MirrorRecord is one namespaced row in the local fallback database.
// The record body is stored as its JSON encoding, so the mirror
// carries the same shapes the facade serves without a per-entity
// schema.
type MirrorRecord struct {
	Collection string `gorm:"primaryKey;size:64"`
	RecordID   string `gorm:"primaryKey;size:64;column:record_id"`
	Data       string `gorm:"type:text"`
	UpdatedAt  time.Time
}

// MirrorStore is the local fallback backend: the same four-operation
// contract as the primary store, backed by a sqlite file so a demo
// deployment without Redis or a broker still keeps data across
// restarts. Identifiers are a millisecond timestamp plus a random
// six-digit suffix; this is not collision-proof under concurrent
// writers, which is acceptable for the single-node demo use it exists
// for.
type MirrorStore struct {
	db *gorm.DB
}

// OpenMirror opens (or creates) the mirror database at path.
func OpenMirror(path string) (*MirrorStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open mirror database: %w", err)
	}
	if err := db.AutoMigrate(&MirrorRecord{}); err != nil {
		return nil, fmt.Errorf("migrate mirror database: %w", err)
	}
	return &MirrorStore{db: db}, nil
}

// Get returns every record of the collection as raw JSON documents.
func (m *MirrorStore) Get(collection string) ([]json.RawMessage, error) {
	var rows []MirrorRecord
	if err := m.db.Where("collection = ?", collection).Order("record_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, json.RawMessage(row.Data))
	}
	return out, nil
}

// Add stores a new record and returns its generated identifier.
func (m *MirrorStore) Add(collection string, value interface{}) (string, error) {
	id := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), utils.RandomDigits(6))
	return id, m.put(collection, id, value)
}

// Update overwrites the record with the given id.
func (m *MirrorStore) Update(collection, id string, value interface{}) error {
	var count int64
	if err := m.db.Model(&MirrorRecord{}).
		Where("collection = ? AND record_id = ?", collection, id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("mirror %s %q: %w", collection, id, ErrNotFound)
	}
	return m.put(collection, id, value)
}

// Delete removes the record with the given id. The mirror is the only
// backend with a delete; the primary store never needs one.
func (m *MirrorStore) Delete(collection, id string) error {
	return m.db.
		Where("collection = ? AND record_id = ?", collection, id).
		Delete(&MirrorRecord{}).Error
}

// Put writes a record under a caller-chosen id, used when replicating
// primary-store records whose ids are already assigned.
func (m *MirrorStore) Put(collection, id string, value interface{}) error {
	return m.put(collection, id, value)
}

func (m *MirrorStore) put(collection, id string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	row := MirrorRecord{
		Collection: collection,
		RecordID:   id,
		Data:       string(raw),
		UpdatedAt:  time.Now(),
	}
	return m.db.Save(&row).Error
}

// Subscribe re-reads the collection on the given interval and invokes
// fn with the complete snapshot. There is no diffing: every tick
// delivers the full current state regardless of what changed, so a
// change is observed within one interval of happening. The returned
// function stops the subscription.
func (m *MirrorStore) Subscribe(collection string, interval time.Duration, fn func([]json.RawMessage)) func() {
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				snapshot, err := m.Get(collection)
				if err != nil {
					continue
				}
				fn(snapshot)
			}
		}
	}()
	return func() { close(stop) }
}
