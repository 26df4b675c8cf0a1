package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thereayou/portfolio-backend/internal/storage"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

var _ storage.Store = (*Database)(nil)

// wrapNotFound maps gorm's sentinel onto the storage contract.
func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	return err
}

// validID reports whether id can match a uuid primary key. A malformed
// id is indistinguishable from an absent row for callers, and postgres
// would reject it with a type error instead of an empty result.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
