package seats

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetSeatMap(ctx context.Context, eventID uuid.UUID, date string) ([]Seat, error)
	ReplaceSeatMap(ctx context.Context, eventID uuid.UUID, date string, seats []Seat, replace bool) (int64, error)
	MarkBooked(ctx context.Context, eventID uuid.UUID, date string, codes []string, booked bool) (int64, error)
	MinPriceForCategory(ctx context.Context, eventID uuid.UUID, category string) (float64, bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetSeatMap(ctx context.Context, eventID uuid.UUID, date string) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND show_date = ?", eventID, date).
		Order("row ASC, number ASC").
		Find(&seats).Error
	if err != nil {
		return nil, err
	}
	return seats, nil
}

// ReplaceSeatMap inserts a generated layout. With replace set, the existing
// map of that show date is removed first in the same transaction.
func (r *repository) ReplaceSeatMap(ctx context.Context, eventID uuid.UUID, date string, seats []Seat, replace bool) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replace {
			res := tx.Where("event_id = ? AND show_date = ?", eventID, date).Delete(&Seat{})
			if res.Error != nil {
				return res.Error
			}
			removed = res.RowsAffected
		}
		if len(seats) == 0 {
			return nil
		}
		return tx.CreateInBatches(seats, 500).Error
	})
	return removed, err
}

func (r *repository) MarkBooked(ctx context.Context, eventID uuid.UUID, date string, codes []string, booked bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Seat{}).
		Where("event_id = ? AND show_date = ? AND code IN ?", eventID, date, codes).
		Update("is_booked", booked)
	return res.RowsAffected, res.Error
}

func (r *repository) MinPriceForCategory(ctx context.Context, eventID uuid.UUID, category string) (float64, bool, error) {
	var result struct {
		Price *float64
	}
	err := r.db.WithContext(ctx).Model(&Seat{}).
		Select("MIN(price) AS price").
		Where("event_id = ? AND LOWER(category) = ?", eventID, strings.ToLower(category)).
		Scan(&result).Error
	if err != nil {
		return 0, false, err
	}
	if result.Price == nil {
		return 0, false, nil
	}
	return *result.Price, true, nil
}
