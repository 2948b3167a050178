package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes AutoMigrate does not express
func MigrateConstraints(db *gorm.DB) error {
	// One seat code per event and show date
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_seats_event_date_code
		ON seats (event_id, show_date, code);
	`).Error
	if err != nil {
		return err
	}

	// Seat map reads filter on event and date, ordered by row and number
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seats_map_order
		ON seats (event_id, show_date, row, number);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
