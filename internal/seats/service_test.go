package seats

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/events"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/inventory"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/pricing"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/config"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/cache"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

type fakeRepo struct {
	mu    sync.Mutex
	seats []Seat
	reads int
}

func (r *fakeRepo) GetSeatMap(ctx context.Context, eventID uuid.UUID, date string) ([]Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	var out []Seat
	for _, s := range r.seats {
		if s.EventID == eventID && s.ShowDate == date {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Number < out[j].Number
	})
	return out, nil
}

func (r *fakeRepo) ReplaceSeatMap(ctx context.Context, eventID uuid.UUID, date string, seats []Seat, replace bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	if replace {
		kept := r.seats[:0]
		for _, s := range r.seats {
			if s.EventID == eventID && s.ShowDate == date {
				removed++
				continue
			}
			kept = append(kept, s)
		}
		r.seats = kept
	}
	r.seats = append(r.seats, seats...)
	return removed, nil
}

func (r *fakeRepo) MarkBooked(ctx context.Context, eventID uuid.UUID, date string, codes []string, booked bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := map[string]bool{}
	for _, c := range codes {
		want[c] = true
	}
	var n int64
	for i := range r.seats {
		s := &r.seats[i]
		if s.EventID == eventID && s.ShowDate == date && want[s.Code] {
			s.IsBooked = booked
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) MinPriceForCategory(ctx context.Context, eventID uuid.UUID, category string) (float64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	lowest := 0.0
	for _, s := range r.seats {
		if s.EventID == eventID && s.Category == category && (!found || s.Price < lowest) {
			lowest, found = s.Price, true
		}
	}
	return lowest, found, nil
}

type stubEvents map[string]*events.Event

func (s stubEvents) Lookup(ctx context.Context, id string) (*events.Event, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, events.ErrInvalidEventID
	}
	e, ok := s[id]
	if !ok {
		return nil, events.ErrEventNotFound
	}
	return e, nil
}

type stubSettings map[string]float64

func (s stubSettings) Currency(ctx context.Context) string { return "SAR" }

func (s stubSettings) Number(ctx context.Context, key string, fallback float64) float64 {
	if v, ok := s[key]; ok {
		return v
	}
	return fallback
}

const showDay = "2025-03-20"

func fixture(t *testing.T, settings stubSettings) (*fakeRepo, Service, *events.Event) {
	t.Helper()
	event := &events.Event{
		ID:    uuid.New(),
		Title: "ليلة طرب",
		Dates: []time.Time{time.Date(2025, 3, 20, 20, 0, 0, 0, time.UTC)},
	}
	repo := &fakeRepo{}
	svc := NewService(repo, stubEvents{event.ID.String(): event}, settings, cache.NewMemory(), logger.NewDiscard())
	return repo, svc, event
}

func price(p float64) *float64 { return &p }

func TestBuildLayout(t *testing.T) {
	eventID := uuid.New()
	seats, err := buildLayout(eventID, showDay, []SectionLayout{
		{Name: "Floor", Category: "VIP", Rows: []string{"a", "B"}, SeatsPerRow: 2, Price: price(400)},
		{Name: "Back", Category: "Bronze", Rows: []string{"C"}, SeatsPerRow: 1},
	}, func(category string) float64 {
		if category == "Bronze" {
			return 250
		}
		return 0
	})
	require.NoError(t, err)
	require.Len(t, seats, 5)

	assert.Equal(t, "seat-A-1", seats[0].Code)
	assert.Equal(t, "A", seats[0].Row)
	assert.Equal(t, 400.0, seats[0].Price)
	assert.Equal(t, "seat-C-1", seats[4].Code)
	assert.Equal(t, 250.0, seats[4].Price)
}

func TestBuildLayout_Errors(t *testing.T) {
	noPrice := func(string) float64 { return 0 }

	_, err := buildLayout(uuid.New(), showDay, []SectionLayout{
		{Name: "X", Category: "Silver", Rows: []string{"A"}, SeatsPerRow: 1},
	}, noPrice)
	assert.ErrorIs(t, err, ErrPriceRequired)

	_, err = buildLayout(uuid.New(), showDay, []SectionLayout{
		{Name: "X", Category: "VIP:Front", Rows: []string{"A"}, SeatsPerRow: 1, Price: price(400)},
	}, noPrice)
	assert.ErrorIs(t, err, ErrUnknownTier)

	_, err = buildLayout(uuid.New(), showDay, []SectionLayout{
		{Name: "One", Category: "VIP", Rows: []string{"A"}, SeatsPerRow: 2, Price: price(1)},
		{Name: "Two", Category: "Gold", Rows: []string{"a"}, SeatsPerRow: 1, Price: price(1)},
	}, noPrice)
	assert.ErrorIs(t, err, ErrDuplicateSeat)
}

func TestLayoutRequest_RejectsCategoryOutsideTiers(t *testing.T) {
	valid := LayoutRequest{
		Date:     showDay,
		Sections: []SectionLayout{{Name: "Floor", Category: "VIP", Rows: []string{"A"}, SeatsPerRow: 1, Price: price(400)}},
	}
	require.NoError(t, binding.Validator.ValidateStruct(valid))

	for _, category := range []string{"VIP:Front", "VIP,Gold", "Mystery"} {
		req := valid
		req.Sections = []SectionLayout{valid.Sections[0]}
		req.Sections[0].Category = category
		assert.Error(t, binding.Validator.ValidateStruct(req), category)
	}
}

func TestGenerateLayoutAndRead(t *testing.T) {
	repo, svc, event := fixture(t, stubSettings{"goldTicketPrice": 300})
	ctx := context.Background()

	res, err := svc.GenerateLayout(ctx, event.ID.String(), LayoutRequest{
		Date: showDay,
		Sections: []SectionLayout{
			{Name: "Floor", Category: "Gold", Rows: []string{"A"}, SeatsPerRow: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)

	seats, err := svc.SeatsForEvent(ctx, event.ID.String(), showDay)
	require.NoError(t, err)
	require.Len(t, seats, 3)
	assert.Equal(t, inventory.StatusAvailable, seats[0].Status)
	assert.Equal(t, 300.0, seats[0].Price)

	// served from cache
	_, err = svc.SeatsForEvent(ctx, event.ID.String(), showDay)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.reads)

	booked, err := svc.MarkBooked(ctx, event.ID.String(), MarkBookedRequest{Date: showDay, SeatIDs: []string{"seat-A-2"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), booked.Updated)

	seats, err = svc.SeatsForEvent(ctx, event.ID.String(), showDay)
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusBooked, seats[1].Status)
	assert.Equal(t, 2, repo.reads)

	legend, err := svc.GetLegend(ctx, event.ID.String(), showDay)
	require.NoError(t, err)
	require.Len(t, legend.Categories, 1)
	assert.Equal(t, 2, legend.Categories[0].Available)
	assert.Equal(t, 1, legend.Categories[0].Booked)
}

func TestSeatsForEvent_Errors(t *testing.T) {
	_, svc, event := fixture(t, nil)
	ctx := context.Background()

	_, err := svc.SeatsForEvent(ctx, event.ID.String(), "")
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = svc.SeatsForEvent(ctx, event.ID.String(), "2030-01-01")
	assert.ErrorIs(t, err, events.ErrDateNotScheduled)

	_, err = svc.SeatsForEvent(ctx, uuid.NewString(), showDay)
	assert.ErrorIs(t, err, events.ErrEventNotFound)
}

func TestSeatsForEvent_FeedsInventoryStore(t *testing.T) {
	_, svc, event := fixture(t, nil)
	ctx := context.Background()
	_, err := svc.GenerateLayout(ctx, event.ID.String(), LayoutRequest{
		Date:     showDay,
		Sections: []SectionLayout{{Name: "Floor", Category: "VIP", Rows: []string{"A"}, SeatsPerRow: 2, Price: price(400)}},
	})
	require.NoError(t, err)

	store := inventory.NewStore(svc, logger.NewDiscard())
	store.LoadSeatsForEvent(ctx, event.ID.String(), showDay)
	assert.True(t, store.SelectSeat("seat-A-1"))
	assert.Equal(t, 400.0, store.TotalPrice())
}

func TestTierPrice(t *testing.T) {
	_, svc, event := fixture(t, nil)
	ctx := context.Background()

	_, ok := svc.TierPrice(ctx, event.ID, pricing.CategoryBronze)
	assert.False(t, ok)

	_, err := svc.GenerateLayout(ctx, event.ID.String(), LayoutRequest{
		Date: showDay,
		Sections: []SectionLayout{
			{Name: "Back", Category: "Bronze", Rows: []string{"Z"}, SeatsPerRow: 1, Price: price(180)},
		},
	})
	require.NoError(t, err)

	p, ok := svc.TierPrice(ctx, event.ID, pricing.CategoryBronze)
	assert.True(t, ok)
	assert.Equal(t, 180.0, p)
}

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, svc, event := fixture(t, nil)

	router := gin.New()
	SetupSeatRoutes(router.Group("/api/v1"), NewController(svc), &config.Config{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/"+event.ID.String()+"/seats", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/"+event.ID.String()+"/seats?date=2031-01-01", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/"+event.ID.String()+"/legend?date="+showDay, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	body, _ := json.Marshal(LayoutRequest{Date: showDay})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/events/"+event.ID.String()+"/seats", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
