package models

import (
	"gorm.io/gorm"
)

// Counter hands out the human-friendly sequential ids for products, customers
// and orders. One row per model name.
type Counter struct {
	Model string `gorm:"primaryKey;size:50" json:"model"`
	Seq   int64  `gorm:"not null;default:0" json:"seq"`
}

// NextSequence allocates the next id for the given model name in a single
// atomic statement, so concurrent creators can never observe a duplicate.
// Run it inside the creating transaction: a rolled-back create then rolls the
// allocation back with it.
func NextSequence(tx *gorm.DB, model string) (int, error) {
	if err := tx.Exec(
		"INSERT INTO counters (model, seq) VALUES (?, LAST_INSERT_ID(1)) ON DUPLICATE KEY UPDATE seq = LAST_INSERT_ID(seq + 1)",
		model,
	).Error; err != nil {
		return 0, err
	}

	var seq int64
	if err := tx.Raw("SELECT LAST_INSERT_ID()").Scan(&seq).Error; err != nil {
		return 0, err
	}
	return int(seq), nil
}
