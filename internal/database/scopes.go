package database

import (
	"gorm.io/gorm"

	"github.com/viltrumflow/taskflow-api/internal/utils"
)

// Paginate applies a skip/limit window to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Skip).Limit(params.Limit)
	}
}

// Newest orders rows by creation time, newest first, with id as tie-break
func Newest(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at DESC").Order(table + ".id DESC")
	}
}
