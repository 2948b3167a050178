package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/pricing"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/constants"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/cache"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventID   = errors.New("invalid event ID")
	ErrDateNotScheduled = errors.New("date is not scheduled for this event")
)

type Service interface {
	// Service dependency injection
	SetSeatPrices(seatPrices SeatPrices)

	CreateEvent(ctx context.Context, adminID string, req CreateEventRequest) (*EventResponse, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, adminID string, req UpdateEventRequest) (*EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID, date string) (*EventResponse, error)
	GetAllEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error)

	// Lookup returns the raw event; other modules use it to check dates and titles
	Lookup(ctx context.Context, id string) (*Event, error)
}

// SeatPrices reports what a tier costs on an event's seat map. The seats
// module implements it; the interface keeps the import graph acyclic.
type SeatPrices interface {
	TierPrice(ctx context.Context, eventID uuid.UUID, category pricing.Category) (float64, bool)
}

// Settings is the slice of the settings service events read from
type Settings interface {
	Currency(ctx context.Context) string
	Number(ctx context.Context, key string, fallback float64) float64
}

type service struct {
	repo          Repository
	cacheService  cache.Service
	settings      Settings
	seatPrices    SeatPrices
	fallbackPrice float64
	log           *logger.Logger
	now           func() time.Time
}

func NewService(repo Repository, cacheService cache.Service, settings Settings, fallbackPrice float64, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		repo:          repo,
		cacheService:  cacheService,
		settings:      settings,
		fallbackPrice: fallbackPrice,
		log:           log.WithComponent("events"),
		now:           time.Now,
	}
}

func (s *service) SetSeatPrices(seatPrices SeatPrices) {
	s.seatPrices = seatPrices
}

func (s *service) CreateEvent(ctx context.Context, adminID string, req CreateEventRequest) (*EventResponse, error) {
	event := &Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Dates:       normalizeDates(req.Dates),
		Venue:       strings.TrimSpace(req.Venue),
		Image:       req.Image,
		Category:    req.Category,
		CreatedBy:   adminID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.invalidateEventCache(ctx, event.ID)

	resp := event.ToResponse(s.now())
	return &resp, nil
}

func (s *service) UpdateEvent(ctx context.Context, id uuid.UUID, adminID string, req UpdateEventRequest) (*EventResponse, error) {
	updates := map[string]interface{}{}

	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(req.Dates) > 0 {
		// Updates with a map bypasses the serializer
		updates["dates"] = datesJSON(normalizeDates(req.Dates))
	}
	if req.Venue != nil {
		updates["venue"] = strings.TrimSpace(*req.Venue)
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}

	if len(updates) == 0 {
		return nil, errors.New("no fields to update")
	}
	updates["updated_by"] = adminID

	event, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.invalidateEventCache(ctx, id)

	resp := event.ToResponse(s.now())
	return &resp, nil
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID, date string) (*EventResponse, error) {
	var event Event
	err := s.cacheService.GetOrSet(ctx, constants.BuildEventDetailKey(id.String()), constants.TTL_EVENT_DETAIL, func() (interface{}, error) {
		return s.repo.GetByID(ctx, id)
	}, &event)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if date != "" && !event.HasDate(date) {
		return nil, ErrDateNotScheduled
	}

	resp := event.ToResponse(s.now())
	resp.SelectedDate = date
	resp.StartingFrom = s.startingFrom(ctx, event.ID)
	resp.Currency = s.settings.Currency(ctx)
	return &resp, nil
}

// startingFrom is the Bronze price on the seat map, else the configured Bronze price
func (s *service) startingFrom(ctx context.Context, eventID uuid.UUID) float64 {
	if s.seatPrices != nil {
		if price, ok := s.seatPrices.TierPrice(ctx, eventID, pricing.CategoryBronze); ok {
			return price
		}
	}
	return s.settings.Number(ctx, pricing.SettingKey(string(pricing.CategoryBronze)), s.fallbackPrice)
}

func (s *service) GetAllEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	fetch := func() (interface{}, error) {
		events, total, err := s.repo.GetAll(ctx, query)
		if err != nil {
			return nil, err
		}

		now := s.now()
		responses := make([]EventResponse, 0, len(events))
		for i := range events {
			responses = append(responses, events[i].ToResponse(now))
		}

		return &PaginatedEvents{
			Events:     responses,
			TotalCount: total,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
		}, nil
	}

	// Only the unfiltered listing is cached
	if query.filtered() {
		data, err := fetch()
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}
		return data.(*PaginatedEvents), nil
	}

	var result PaginatedEvents
	if err := s.cacheService.GetOrSet(ctx, constants.BuildEventListKey(query.Page, query.Limit), constants.TTL_EVENT_LIST, fetch, &result); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return &result, nil
}

func (s *service) Lookup(ctx context.Context, id string) (*Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidEventID
	}

	var event Event
	err = s.cacheService.GetOrSet(ctx, constants.BuildEventDetailKey(eventID.String()), constants.TTL_EVENT_DETAIL, func() (interface{}, error) {
		return s.repo.GetByID(ctx, eventID)
	}, &event)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (s *service) invalidateEventCache(ctx context.Context, id uuid.UUID) {
	if err := s.cacheService.Delete(ctx, constants.BuildEventDetailKey(id.String())); err != nil {
		s.log.Warn("failed to invalidate event detail cache", slog.String("event_id", id.String()), slog.String("error", err.Error()))
	}
	if err := s.cacheService.DeletePattern(ctx, constants.CACHE_KEY_EVENTS_LIST+"*"); err != nil {
		s.log.Warn("failed to invalidate event list cache", slog.String("error", err.Error()))
	}
}

func normalizeDates(dates []time.Time) []time.Time {
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.UTC())
	}
	return out
}
