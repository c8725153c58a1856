package models

import "gorm.io/gorm"

const defaultPageLimit = 10

// NormalizePage clamps page/limit to sane values (page 1, limit 10 by default).
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}

// Paginate is a gorm scope applying offset/limit for a normalized page.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	page, limit = NormalizePage(page, limit)
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// TotalPages is ceil(total/limit) for list envelopes.
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		limit = defaultPageLimit
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
