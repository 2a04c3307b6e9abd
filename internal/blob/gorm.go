package blob

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one stored blob row.
type Record struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName sets the table name for GORM.
func (Record) TableName() string { return "blobs" }

// GormStore is a blob store backed by a single database table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store on top of an open GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *GormStore) Get(key string) ([]byte, error) {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return rec.Value, nil
}

// Set stores value under key, replacing any previous value.
func (s *GormStore) Set(key string, value []byte) error {
	rec := Record{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}
