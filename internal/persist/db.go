// internal/persist/db.go
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one persisted namespace, stored as a JSONB row.
type Snapshot struct {
	Namespace string `gorm:"primaryKey;size:128"`
	Data      []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (Snapshot) TableName() string {
	return "snapshots"
}

// DBStore keeps snapshots in a Postgres table, one row per namespace.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Load(namespace string, v interface{}) error {
	var row Snapshot
	if err := s.db.First(&row, "namespace = ?", namespace).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load snapshot %s: %w", namespace, err)
	}
	if err := json.Unmarshal(row.Data, v); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", namespace, err)
	}
	return nil
}

func (s *DBStore) Save(namespace string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", namespace, err)
	}

	row := Snapshot{Namespace: namespace, Data: data, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", namespace, err)
	}
	return nil
}

func (s *DBStore) Delete(namespace string) error {
	if err := s.db.Delete(&Snapshot{}, "namespace = ?", namespace).Error; err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", namespace, err)
	}
	return nil
}
