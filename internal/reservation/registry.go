package reservation

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

// Stage is the page a visit belongs to. Each stage has its own budget and
// nothing carries over between stages.
type Stage string

const (
	StageSelection Stage = "selection"
	StageCheckout  Stage = "checkout"
	StagePayment   Stage = "payment"
)

const (
	RedirectHome  = "/"
	PaymentNotice = "انتهت مهلة الدفع"
)

var (
	ErrVisitNotFound = errors.New("visit not found")
	ErrVisitExpired  = errors.New("reservation window expired")
)

// Budgets are the per-stage windows.
type Budgets struct {
	Selection time.Duration
	Checkout  time.Duration
	Payment   time.Duration
}

func DefaultBudgets() Budgets {
	return Budgets{
		Selection: 7 * time.Minute,
		Checkout:  7 * time.Minute,
		Payment:   10 * time.Minute,
	}
}

func (b Budgets) For(stage Stage) time.Duration {
	switch stage {
	case StageSelection:
		return b.Selection
	case StageCheckout:
		return b.Checkout
	case StagePayment:
		return b.Payment
	}
	return 0
}

// Expiry is what a page does when its window runs out.
type Expiry struct {
	Redirect string `json:"redirect"`
	Notice   string `json:"notice,omitempty"`
}

// ExpiryFor returns the expiry action of a stage. Only the payment page shows
// a notice before redirecting.
func ExpiryFor(stage Stage) Expiry {
	if stage == StagePayment {
		return Expiry{Redirect: RedirectHome, Notice: PaymentNotice}
	}
	return Expiry{Redirect: RedirectHome}
}

// Status is the externally visible state of a visit.
type Status struct {
	ID          string  `json:"id"`
	Stage       Stage   `json:"stage"`
	SecondsLeft int     `json:"seconds_left"`
	Clock       string  `json:"clock"`
	State       string  `json:"state"`
	Expired     bool    `json:"expired"`
	Expiry      *Expiry `json:"expiry,omitempty"`
}

type visit struct {
	id    string
	stage Stage
	timer *Timer
}

// Registry owns the running timers, one per page visit.
type Registry struct {
	mu       sync.Mutex
	visits   map[string]*visit
	budgets  Budgets
	interval time.Duration
	keep     time.Duration
	log      *logger.Logger
	onExpire func(id string, stage Stage)

	ctx    context.Context
	cancel context.CancelFunc
}

type Option func(*Registry)

// WithTickInterval shortens the wall-clock second, for tests.
func WithTickInterval(d time.Duration) Option {
	return func(r *Registry) { r.interval = d }
}

// WithRetention sets how long an expired visit stays queryable.
func WithRetention(d time.Duration) Option {
	return func(r *Registry) { r.keep = d }
}

// WithExpiryHook registers a callback run once per expired visit.
func WithExpiryHook(fn func(id string, stage Stage)) Option {
	return func(r *Registry) { r.onExpire = fn }
}

func NewRegistry(budgets Budgets, log *logger.Logger, opts ...Option) *Registry {
	if log == nil {
		log = logger.GetDefault()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &Registry{
		visits:   make(map[string]*visit),
		budgets:  budgets,
		interval: time.Second,
		keep:     10 * time.Minute,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open starts a fresh window for stage and returns its visit id.
func (r *Registry) Open(stage Stage) Status {
	return r.OpenWithID(uuid.NewString(), stage)
}

// OpenWithID starts a window under a caller-chosen id. An existing visit with
// the same id is torn down first.
func (r *Registry) OpenWithID(id string, stage Stage) Status {
	seconds := int(r.budgets.For(stage) / time.Second)

	v := &visit{id: id, stage: stage}
	v.timer = NewTimer(seconds, func() { r.expired(v) }).WithInterval(r.interval)

	r.mu.Lock()
	if old, ok := r.visits[id]; ok {
		old.timer.Stop()
	}
	r.visits[id] = v
	r.mu.Unlock()

	go v.timer.Run(r.ctx)

	r.log.Debug("reservation window opened",
		slog.String("visit_id", id),
		slog.String("stage", string(stage)),
		slog.Int("seconds", seconds),
	)
	return statusOf(v)
}

func (r *Registry) expired(v *visit) {
	r.log.Info("reservation window expired",
		slog.String("visit_id", v.id),
		slog.String("stage", string(v.stage)),
	)

	if r.onExpire != nil {
		r.onExpire(v.id, v.stage)
	}

	time.AfterFunc(r.keep, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if cur, ok := r.visits[v.id]; ok && cur == v {
			delete(r.visits, v.id)
		}
	})
}

// Status reports the state of a visit.
func (r *Registry) Status(id string) (Status, error) {
	r.mu.Lock()
	v, ok := r.visits[id]
	r.mu.Unlock()
	if !ok {
		return Status{}, ErrVisitNotFound
	}
	return statusOf(v), nil
}

// Active returns ErrVisitExpired once the window of id has run out.
func (r *Registry) Active(id string) (Status, error) {
	st, err := r.Status(id)
	if err != nil {
		return st, err
	}
	if st.Expired {
		return st, ErrVisitExpired
	}
	return st, nil
}

// Close stops and forgets a visit.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	v, ok := r.visits[id]
	delete(r.visits, id)
	r.mu.Unlock()

	if ok {
		v.timer.Stop()
	}
	return ok
}

// Shutdown stops every timer.
func (r *Registry) Shutdown() {
	r.cancel()

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, v := range r.visits {
		v.timer.Stop()
		delete(r.visits, id)
	}
}

func statusOf(v *visit) Status {
	left := v.timer.Remaining()
	state := v.timer.State()
	st := Status{
		ID:          v.id,
		Stage:       v.stage,
		SecondsLeft: left,
		Clock:       FormatClock(left),
		State:       state.String(),
		Expired:     state == StateExpired,
	}
	if st.Expired {
		e := ExpiryFor(v.stage)
		st.Expiry = &e
	}
	return st
}
