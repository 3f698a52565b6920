package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter scopes compose through db.Scopes. Each returns the query
// unchanged when its value is absent, so application order never affects
// the result set.

func filterByExact(column, value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

func filterByContains(column, value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" ILIKE ?", "%"+value+"%")
	}
}

func filterByUUID(column string, value uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == uuid.Nil {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// filterByDateRange compares dates only, ignoring time of day. Both bounds
// are inclusive and independently optional.
func filterByDateRange(column string, from, to *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where("DATE("+column+") >= ?", from.Format(time.DateOnly))
		}
		if to != nil {
			db = db.Where("DATE("+column+") <= ?", to.Format(time.DateOnly))
		}
		return db
	}
}
