package storage

import (
	"context"
	"errors"

	"github.com/bookstore/storefront/internal/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore persists entries in the storage_entries table
type SQLStore struct {
	db  *db.DB
	log *zap.Logger
}

// NewSQLStore creates a new SQL-backed store
func NewSQLStore(database *db.DB, logger *zap.Logger) *SQLStore {
	return &SQLStore{
		db:  database,
		log: logger,
	}
}

// Get retrieves the value stored under key
func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var entry db.Entry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		s.log.Error("Failed to get entry", zap.String("key", key), zap.Error(err))
		return "", err
	}
	return entry.Value, nil
}

// Set inserts or replaces the value stored under key
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	entry := &db.Entry{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		s.log.Error("Failed to set entry", zap.String("key", key), zap.Error(err))
		return err
	}

	s.log.Debug("Entry stored", zap.String("key", key))
	return nil
}

// Delete removes key; deleting an absent key is not an error
func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&db.Entry{}).Error; err != nil {
		s.log.Error("Failed to delete entry", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (s *SQLStore) Ping(context.Context) error { return s.db.Ping() }

func (s *SQLStore) Close() error { return s.db.Close() }
