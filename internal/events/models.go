package events

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string      `json:"title" gorm:"not null;size:255"`
	Description string      `json:"description" gorm:"type:text"`
	Dates       []time.Time `json:"date" gorm:"serializer:json;type:jsonb;not null"`
	Venue       string      `json:"venue" gorm:"not null;size:255"`
	Image       string      `json:"image" gorm:"size:500"`
	Category    string      `json:"category" gorm:"size:100;index"`

	CreatedBy string    `json:"created_by" gorm:"size:64"`
	UpdatedBy string    `json:"updated_by" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

// HasDate reports whether date names one of the event's shows. Both the
// full RFC3339 timestamp and the bare day (2006-01-02) are accepted.
func (e *Event) HasDate(date string) bool {
	date = strings.TrimSpace(date)
	if date == "" {
		return false
	}
	for _, d := range e.Dates {
		if d.UTC().Format(time.RFC3339) == date || d.UTC().Format(DayLayout) == date {
			return true
		}
		if t, err := time.Parse(time.RFC3339, date); err == nil && t.Equal(d) {
			return true
		}
	}
	return false
}

// DayLayout is the day-only form of a show date
const DayLayout = "2006-01-02"

type EventResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         []string  `json:"date"`
	Venue        string    `json:"venue"`
	Image        string    `json:"image,omitempty"`
	Category     string    `json:"category,omitempty"`
	Status       Status    `json:"status"`
	SelectedDate string    `json:"selectedDate,omitempty"`
	StartingFrom float64   `json:"startingFrom,omitempty"`
	Currency     string    `json:"currency,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateEventRequest struct {
	Title       string      `json:"title" binding:"required,min=2,max=255"`
	Description string      `json:"description" binding:"max=5000"`
	Dates       []time.Time `json:"date" binding:"required,min=1,dive,required"`
	Venue       string      `json:"venue" binding:"required,min=2,max=255"`
	Image       string      `json:"image" binding:"omitempty,max=500"`
	Category    string      `json:"category" binding:"omitempty,max=100"`
}

type UpdateEventRequest struct {
	Title       *string     `json:"title" binding:"omitempty,min=2,max=255"`
	Description *string     `json:"description" binding:"omitempty,max=5000"`
	Dates       []time.Time `json:"date" binding:"omitempty,min=1"`
	Venue       *string     `json:"venue" binding:"omitempty,min=2,max=255"`
	Image       *string     `json:"image" binding:"omitempty,max=500"`
	Category    *string     `json:"category" binding:"omitempty,max=100"`
}

type EventListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	Category string `form:"category"`
	Upcoming bool   `form:"upcoming"`
}

// filtered reports whether the query narrows the default listing
func (q EventListQuery) filtered() bool {
	return q.Search != "" || q.Category != "" || q.Upcoming
}

type PaginatedEvents struct {
	Events     []EventResponse `json:"events"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// ToResponse converts an Event; pricing fields are filled by the service
func (e *Event) ToResponse(now time.Time) EventResponse {
	dates := make([]string, 0, len(e.Dates))
	for _, d := range e.Dates {
		dates = append(dates, d.UTC().Format(time.RFC3339))
	}

	return EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Date:        dates,
		Venue:       e.Venue,
		Image:       e.Image,
		Category:    e.Category,
		Status:      StatusAt(e.Dates, now),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
