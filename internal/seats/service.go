package seats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/events"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/inventory"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/pricing"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/constants"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/cache"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

var ErrDateRequired = errors.New("date is required")

type Service interface {
	// SeatsForEvent satisfies inventory.SeatSource
	SeatsForEvent(ctx context.Context, eventID, date string) ([]inventory.Seat, error)
	GetSeatMap(ctx context.Context, eventID, date string) (*SeatMapResponse, error)
	GetLegend(ctx context.Context, eventID, date string) (*LegendResponse, error)

	// TierPrice satisfies events.SeatPrices
	TierPrice(ctx context.Context, eventID uuid.UUID, category pricing.Category) (float64, bool)

	GenerateLayout(ctx context.Context, eventID string, req LayoutRequest) (*LayoutResponse, error)
	MarkBooked(ctx context.Context, eventID string, req MarkBookedRequest) (*MarkBookedResponse, error)
}

// EventLookup is the slice of the events service seats depend on
type EventLookup interface {
	Lookup(ctx context.Context, id string) (*events.Event, error)
}

// Settings is the slice of the settings service seats read from
type Settings interface {
	Currency(ctx context.Context) string
	Number(ctx context.Context, key string, fallback float64) float64
}

type service struct {
	repo         Repository
	events       EventLookup
	settings     Settings
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository, eventLookup EventLookup, settings Settings, cacheService cache.Service, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		repo:         repo,
		events:       eventLookup,
		settings:     settings,
		cacheService: cacheService,
		log:          log.WithComponent("seats"),
	}
}

// resolve checks that the event exists and plays on date
func (s *service) resolve(ctx context.Context, eventID, date string) (*events.Event, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, ErrDateRequired
	}
	event, err := s.events.Lookup(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.HasDate(date) {
		return nil, events.ErrDateNotScheduled
	}
	return event, nil
}

func (s *service) SeatsForEvent(ctx context.Context, eventID, date string) ([]inventory.Seat, error) {
	event, err := s.resolve(ctx, eventID, date)
	if err != nil {
		return nil, err
	}

	var seats []inventory.Seat
	err = s.cacheService.GetOrSet(ctx, constants.BuildSeatMapKey(event.ID.String(), date), constants.TTL_SEAT_MAP, func() (interface{}, error) {
		rows, err := s.repo.GetSeatMap(ctx, event.ID, date)
		if err != nil {
			return nil, err
		}
		out := make([]inventory.Seat, 0, len(rows))
		for i := range rows {
			out = append(out, rows[i].ToInventory())
		}
		return out, nil
	}, &seats)
	if err != nil {
		return nil, fmt.Errorf("failed to load seat map: %w", err)
	}
	return seats, nil
}

func (s *service) GetSeatMap(ctx context.Context, eventID, date string) (*SeatMapResponse, error) {
	seats, err := s.SeatsForEvent(ctx, eventID, date)
	if err != nil {
		return nil, err
	}
	return &SeatMapResponse{
		EventID:  eventID,
		Date:     date,
		Currency: s.settings.Currency(ctx),
		Seats:    seats,
	}, nil
}

func (s *service) GetLegend(ctx context.Context, eventID, date string) (*LegendResponse, error) {
	seats, err := s.SeatsForEvent(ctx, eventID, date)
	if err != nil {
		return nil, err
	}
	return &LegendResponse{
		EventID:    eventID,
		Date:       date,
		Categories: inventory.LegendFor(seats),
	}, nil
}

func (s *service) TierPrice(ctx context.Context, eventID uuid.UUID, category pricing.Category) (float64, bool) {
	price, ok, err := s.repo.MinPriceForCategory(ctx, eventID, string(category))
	if err != nil {
		s.log.Warn("tier price lookup failed",
			slog.String("event_id", eventID.String()),
			slog.String("category", string(category)),
			slog.String("error", err.Error()),
		)
		return 0, false
	}
	return price, ok
}

func (s *service) GenerateLayout(ctx context.Context, eventID string, req LayoutRequest) (*LayoutResponse, error) {
	event, err := s.resolve(ctx, eventID, req.Date)
	if err != nil {
		return nil, err
	}

	seats, err := buildLayout(event.ID, req.Date, req.Sections, func(category string) float64 {
		key := pricing.SettingKey(category)
		if key == "" {
			return 0
		}
		return s.settings.Number(ctx, key, 0)
	})
	if err != nil {
		return nil, err
	}

	removed, err := s.repo.ReplaceSeatMap(ctx, event.ID, req.Date, seats, req.Replace)
	if err != nil {
		return nil, fmt.Errorf("failed to save seat map: %w", err)
	}

	s.invalidateSeatMaps(ctx, event.ID)
	s.log.Info("seat map generated",
		slog.String("event_id", event.ID.String()),
		slog.String("date", req.Date),
		slog.Int("seats", len(seats)),
	)

	return &LayoutResponse{
		EventID: event.ID.String(),
		Date:    req.Date,
		Created: len(seats),
		Removed: removed,
	}, nil
}

func (s *service) MarkBooked(ctx context.Context, eventID string, req MarkBookedRequest) (*MarkBookedResponse, error) {
	event, err := s.resolve(ctx, eventID, req.Date)
	if err != nil {
		return nil, err
	}

	booked := true
	if req.Booked != nil {
		booked = *req.Booked
	}

	updated, err := s.repo.MarkBooked(ctx, event.ID, req.Date, req.SeatIDs, booked)
	if err != nil {
		return nil, fmt.Errorf("failed to update seats: %w", err)
	}

	s.invalidateSeatMaps(ctx, event.ID)
	return &MarkBookedResponse{Updated: updated}, nil
}

func (s *service) invalidateSeatMaps(ctx context.Context, eventID uuid.UUID) {
	if err := s.cacheService.DeletePattern(ctx, constants.BuildSeatMapPattern(eventID.String())); err != nil {
		s.log.Warn("failed to invalidate seat map cache", slog.String("event_id", eventID.String()), slog.String("error", err.Error()))
	}
}
