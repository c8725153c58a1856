package models

import "gorm.io/gorm"

// Migrate creates or updates every table the application owns. Called once at
// startup after the connection is established.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Counter{},
		&Brand{},
		&Category{},
		&Product{},
		&Customer{},
		&User{},
		&Order{},
		&OrderItem{},
	)
}
