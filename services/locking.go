package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds a row-level lock on dialects that support it,
// serializing read-modify-write sequences on the same row. SQLite (used
// in tests) has a single writer and no FOR UPDATE syntax, so it is left
// alone.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
