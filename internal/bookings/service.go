package bookings

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/cart"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/events"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/inventory"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/reservation"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

var (
	ErrSessionNotFound = errors.New("selection session not found")
	ErrSeatUnavailable = errors.New("seat is not available")
	ErrSeatNotSelected = errors.New("seat is not selected")
	ErrSubmitInFlight  = errors.New("payment is already being submitted")
)

type Service interface {
	// Seat selection
	OpenSelection(ctx context.Context, req OpenSelectionRequest) (*SelectionResponse, error)
	Selection(ctx context.Context, sessionID string) (*SelectionSummary, error)
	SelectSeat(ctx context.Context, sessionID, seatID string) (*SelectionSummary, error)
	DeselectSeat(ctx context.Context, sessionID, seatID string) (*SelectionSummary, error)
	CloseSelection(ctx context.Context, sessionID string) error

	// Checkout and payment pages
	OpenCheckout(ctx context.Context, q cart.CheckoutQuery) (*CheckoutView, error)
	Proceed(ctx context.Context, visitID string, form ProceedRequest) (*ProceedResponse, checkout.ErrorMap, error)
	OpenPayment(ctx context.Context, q cart.PaymentQuery) (*PaymentView, error)
	Submit(ctx context.Context, visitID string, form SubmitRequest) (*checkout.Confirmation, checkout.ErrorMap, error)

	// Countdown windows
	VisitStatus(id string) (reservation.Status, error)
	CloseVisit(ctx context.Context, id string) error
	Shutdown()
}

// EventLookup resolves an event id to its record
type EventLookup interface {
	Lookup(ctx context.Context, id string) (*events.Event, error)
}

type Settings interface {
	Currency(ctx context.Context) string
}

// Dependencies are the collaborators of the booking flow
type Dependencies struct {
	Events    EventLookup
	Seats     inventory.SeatSource
	Settings  Settings
	Processor *checkout.Processor
}

// Config holds the countdown windows and display fallbacks
type Config struct {
	Budgets    reservation.Budgets
	Retention  time.Duration
	EventTitle string
}

type service struct {
	deps       Dependencies
	registry   *reservation.Registry
	retention  time.Duration
	eventTitle string
	log        *logger.Logger

	mu       sync.Mutex
	sessions map[string]*session
	pages    map[string]*page
}

func NewService(deps Dependencies, cfg Config, log *logger.Logger, opts ...reservation.Option) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	log = log.WithComponent("bookings")

	s := &service{
		deps:       deps,
		retention:  cfg.Retention,
		eventTitle: cfg.EventTitle,
		log:        log,
		sessions:   make(map[string]*session),
		pages:      make(map[string]*page),
	}
	if s.retention <= 0 {
		s.retention = 10 * time.Minute
	}

	opts = append([]reservation.Option{reservation.WithRetention(s.retention)}, opts...)
	opts = append(opts, reservation.WithExpiryHook(s.onExpire))
	s.registry = reservation.NewRegistry(cfg.Budgets, log, opts...)
	return s
}

func (s *service) OpenSelection(ctx context.Context, req OpenSelectionRequest) (*SelectionResponse, error) {
	event, err := s.deps.Events.Lookup(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !event.HasDate(req.Date) {
		return nil, events.ErrDateNotScheduled
	}

	sess := &session{
		id:      uuid.NewString(),
		eventID: req.EventID,
		date:    req.Date,
		title:   event.Title,
		store:   inventory.NewStore(s.deps.Seats, s.log),
	}
	sess.store.LoadSeatsForEvent(ctx, req.EventID, req.Date)

	// Registered before the window opens so an instant expiry finds it
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	timer := s.registry.OpenWithID(sess.id, reservation.StageSelection)

	seats := sess.store.Seats()
	s.log.LogSelectionOpened(ctx, sess.id, req.EventID, req.Date, len(seats))

	return &SelectionResponse{
		SelectionSummary: s.summarize(ctx, sess, timer),
		EventTitle:       sess.title,
		Seats:            seats,
		Legend:           sess.store.Legend(),
	}, nil
}

func (s *service) Selection(ctx context.Context, sessionID string) (*SelectionSummary, error) {
	sess, timer, err := s.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	summary := s.summarize(ctx, sess, timer)
	return &summary, nil
}

func (s *service) SelectSeat(ctx context.Context, sessionID, seatID string) (*SelectionSummary, error) {
	sess, timer, err := s.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.store.SelectSeat(seatID) {
		return nil, ErrSeatUnavailable
	}
	summary := s.summarize(ctx, sess, timer)
	return &summary, nil
}

func (s *service) DeselectSeat(ctx context.Context, sessionID, seatID string) (*SelectionSummary, error) {
	sess, timer, err := s.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.store.DeselectSeat(seatID) {
		return nil, ErrSeatNotSelected
	}
	summary := s.summarize(ctx, sess, timer)
	return &summary, nil
}

func (s *service) CloseSelection(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	sess.store.ClearSelection()
	s.registry.Close(sessionID)
	s.log.LogSelectionClosed(ctx, sessionID, "closed")
	return nil
}

func (s *service) activeSession(id string) (*session, reservation.Status, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, reservation.Status{}, ErrSessionNotFound
	}

	timer, err := s.registry.Active(id)
	if err != nil {
		return nil, timer, err
	}
	return sess, timer, nil
}

func (s *service) summarize(ctx context.Context, sess *session, timer reservation.Status) SelectionSummary {
	selected := sess.store.SelectedSeats()
	total := sess.store.TotalPrice()

	summary := SelectionSummary{
		SessionID: sess.id,
		EventID:   sess.eventID,
		Date:      sess.date,
		Selected:  selected,
		Count:     len(selected),
		Total:     total,
		Currency:  s.deps.Settings.Currency(ctx),
		Token:     cart.Encode(selected),
		Timer:     timer,
	}
	if len(selected) > 0 {
		summary.CheckoutURL = cart.CheckoutURL(sess.eventID, selected, total)
	}
	return summary
}

func (s *service) OpenCheckout(ctx context.Context, q cart.CheckoutQuery) (*CheckoutView, error) {
	title := s.titleFor(ctx, q.EventID)
	timer := s.openPage(reservation.StageCheckout, title, cart.PaymentQuery{CheckoutQuery: q})

	return &CheckoutView{
		VisitID:      timer.ID,
		EventID:      q.EventID,
		EventTitle:   title,
		Seats:        q.Seats,
		Token:        q.Token,
		Total:        q.Total,
		DisplayTotal: cart.DisplayTotal(q),
		SetPrice:     q.SetPrice,
		Currency:     s.deps.Settings.Currency(ctx),
		CountryCode:  checkout.DefaultCountryCode,
		BackURL:      cart.EventURL(q.EventID),
		Timer:        timer,
	}, nil
}

func (s *service) Proceed(ctx context.Context, visitID string, form ProceedRequest) (*ProceedResponse, checkout.ErrorMap, error) {
	p, err := s.activePage(visitID, reservation.StageCheckout)
	if err != nil {
		return nil, nil, err
	}

	paymentURL, errs := s.deps.Processor.Proceed(p.query.CheckoutQuery, form)
	if !errs.Valid() {
		return nil, errs, checkout.ErrInvalidForm
	}

	s.closePage(visitID)
	s.log.DebugContext(ctx, "checkout completed", slog.String("visit_id", visitID))
	return &ProceedResponse{PaymentURL: paymentURL}, nil, nil
}

func (s *service) OpenPayment(ctx context.Context, q cart.PaymentQuery) (*PaymentView, error) {
	title := s.titleFor(ctx, q.EventID)
	timer := s.openPage(reservation.StagePayment, title, q)

	return &PaymentView{
		VisitID:      timer.ID,
		EventID:      q.EventID,
		EventTitle:   title,
		Seats:        q.Seats,
		Total:        q.Total,
		DisplayTotal: cart.DisplayTotal(q.CheckoutQuery),
		SetPrice:     q.SetPrice,
		Currency:     s.deps.Settings.Currency(ctx),
		Customer:     q.Customer,
		Timer:        timer,
	}, nil
}

func (s *service) Submit(ctx context.Context, visitID string, form SubmitRequest) (*checkout.Confirmation, checkout.ErrorMap, error) {
	p, err := s.activePage(visitID, reservation.StagePayment)
	if err != nil {
		return nil, nil, err
	}

	// one order per payment visit at a time
	s.mu.Lock()
	if p.submitting {
		s.mu.Unlock()
		return nil, nil, ErrSubmitInFlight
	}
	p.submitting = true
	s.mu.Unlock()

	if form.FullName == "" {
		form.FullName = p.query.Customer.FullName
	}
	if form.Phone == "" {
		form.Phone = p.query.Customer.Phone
	}
	if form.Email == "" {
		form.Email = p.query.Customer.Email
	}

	confirmation, errs, err := s.deps.Processor.Submit(ctx, checkout.OrderRequest{
		EventID:    p.query.EventID,
		EventTitle: p.title,
		Currency:   s.deps.Settings.Currency(ctx),
		SetPrice:   p.query.SetPrice,
		Seats:      p.query.Seats,
		Form:       form,
	})
	if err != nil {
		// The window stays open so the buyer can retry
		s.mu.Lock()
		p.submitting = false
		s.mu.Unlock()
		return nil, errs, err
	}

	s.closePage(visitID)
	return confirmation, nil, nil
}

func (s *service) openPage(stage reservation.Stage, title string, q cart.PaymentQuery) reservation.Status {
	id := uuid.NewString()

	s.mu.Lock()
	s.pages[id] = &page{stage: stage, title: title, query: q}
	s.mu.Unlock()

	return s.registry.OpenWithID(id, stage)
}

func (s *service) activePage(id string, stage reservation.Stage) (*page, error) {
	s.mu.Lock()
	p, ok := s.pages[id]
	s.mu.Unlock()
	if !ok || p.stage != stage {
		return nil, reservation.ErrVisitNotFound
	}

	if _, err := s.registry.Active(id); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) closePage(id string) {
	s.mu.Lock()
	delete(s.pages, id)
	s.mu.Unlock()
	s.registry.Close(id)
}

// titleFor falls back to the configured title for unknown events
func (s *service) titleFor(ctx context.Context, eventID string) string {
	if eventID == "" {
		return s.eventTitle
	}
	event, err := s.deps.Events.Lookup(ctx, eventID)
	if err != nil || event.Title == "" {
		return s.eventTitle
	}
	return event.Title
}

func (s *service) VisitStatus(id string) (reservation.Status, error) {
	return s.registry.Status(id)
}

func (s *service) CloseVisit(ctx context.Context, id string) error {
	s.mu.Lock()
	_, isSession := s.sessions[id]
	_, isPage := s.pages[id]
	s.mu.Unlock()

	if isSession {
		return s.CloseSelection(ctx, id)
	}
	if isPage {
		s.closePage(id)
		return nil
	}
	if !s.registry.Close(id) {
		return reservation.ErrVisitNotFound
	}
	return nil
}

// onExpire runs on the timer goroutine of the expired visit
func (s *service) onExpire(id string, stage reservation.Stage) {
	if stage == reservation.StageSelection {
		s.mu.Lock()
		sess, ok := s.sessions[id]
		s.mu.Unlock()

		if ok {
			sess.store.ClearSelection()
			s.log.LogSelectionClosed(context.Background(), id, "expired")
		}
	}

	// Expired visits keep answering with a redirect until the registry forgets them
	time.AfterFunc(s.retention, func() {
		s.mu.Lock()
		delete(s.sessions, id)
		delete(s.pages, id)
		s.mu.Unlock()
	})
}

func (s *service) Shutdown() {
	s.registry.Shutdown()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.store.ClearSelection()
		delete(s.sessions, id)
	}
	for id := range s.pages {
		delete(s.pages, id)
	}
}
