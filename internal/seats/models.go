package seats

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/inventory"
)

// Seat is one physical seat for one show of an event
type Seat struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID  uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	ShowDate string    `gorm:"size:40;not null" json:"show_date"`
	Code     string    `gorm:"size:64;not null" json:"code"`
	Row      string    `gorm:"size:16;not null" json:"row"`
	Number   int       `gorm:"not null" json:"number"`
	Section  string    `gorm:"size:100" json:"section"`
	Category string    `gorm:"size:50;index;not null" json:"category"`
	Price    float64   `gorm:"not null;check:price >= 0" json:"price"`
	IsBooked bool      `gorm:"not null;default:false" json:"is_booked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Seat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// ToInventory converts a stored seat into its selection-time form. The seat
// code is the id clients see and echo back in cart tokens.
func (s *Seat) ToInventory() inventory.Seat {
	status := inventory.StatusAvailable
	if s.IsBooked {
		status = inventory.StatusBooked
	}
	return inventory.Seat{
		ID:       s.Code,
		Row:      s.Row,
		Number:   s.Number,
		Section:  s.Section,
		Category: s.Category,
		Price:    s.Price,
		Status:   status,
	}
}
