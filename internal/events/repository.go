package events

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Event, error)
	GetAll(ctx context.Context, query EventListQuery) ([]Event, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Event, error) {
	var event Event
	db := r.db.WithContext(ctx)

	if err := db.Where("id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if err := db.Model(&event).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) GetAll(ctx context.Context, query EventListQuery) ([]Event, int64, error) {
	var events []Event
	var total int64

	db := r.db.WithContext(ctx).Model(&Event{})

	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + search + "%"
		db = db.Where("title ILIKE ? OR description ILIKE ? OR venue ILIKE ?", pattern, pattern, pattern)
	}
	if query.Category != "" {
		db = db.Where("category = ?", query.Category)
	}
	if query.Upcoming {
		// dates is a jsonb array of RFC3339 strings
		db = db.Where("EXISTS (SELECT 1 FROM jsonb_array_elements_text(dates) d WHERE d::timestamptz > NOW())")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	if err := db.Order("created_at DESC").Offset(offset).Limit(query.Limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}
