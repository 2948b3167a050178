package database

import (
	"github.com/Abu-ellil/arena-app-abosaleh/internal/auth"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/events"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/seats"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/settings"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&auth.Admin{},
		&events.Event{},
		&seats.Seat{},
		&settings.Setting{},
	)
}
