// Package services – SessionService
//
// This file implements the SessionService, the lifecycle manager that turns
// an anonymous QR scan into a time-bounded, multi-participant ordering
// context. It arbitrates concurrent joins against a single physical table,
// refreshes session expiry on activity ("touch"), performs the lazy expiry
// transition, and registers participants idempotently.
//
// The service holds no session state across calls: every operation is a
// fresh load-mutate-save cycle against the session store, so the last writer
// wins when two requests race on the same record (including a touch racing
// the lazy expiry transition). Two concurrent scans of the same table may
// both create a session; the active-session lookup prefers the newest row by
// creation time, so the table converges onto one session within a single
// subsequent read. This narrow window is accepted by design instead of a
// table-level lock.
//
// Service-level errors (ErrSessionNotFound, ErrSessionExpired, …) are
// returned for predictable cases so handlers can map them to HTTP results
// consistently.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
	"github.com/tabletap/go-table-backend/internal/token"
)

// Session lifecycle metrics. Labels stay fixed-cardinality: the event name
// only.
var sessionEvents = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "table_session_events_total",
		Help: "Total table session lifecycle events.",
	},
	[]string{"event"},
)

func init() {
	prometheus.MustRegister(sessionEvents)
}

// SessionRepo defines the session-store contract required by SessionService.
// Implementations own the durable session records; the service never caches
// them between calls.
type SessionRepo interface {
	// FindActiveByTable returns the newest active, unexpired session for a
	// table, or nil when there is none.
	FindActiveByTable(ctx context.Context, db *gorm.DB, restaurantID, tableID string, now time.Time) (*domain.Session, error)

	// FindByToken returns the session with the exact token, or nil.
	FindByToken(ctx context.Context, db *gorm.DB, tok string) (*domain.Session, error)

	// ExistsToken reports whether a token is already reserved by any
	// session, regardless of status.
	ExistsToken(ctx context.Context, db *gorm.DB, tok string) (bool, error)

	// Insert persists a new session; duplicate tokens must come back as
	// gorm.ErrDuplicatedKey.
	Insert(ctx context.Context, db *gorm.DB, s *domain.Session) error

	// Save writes back a previously loaded session in full.
	Save(ctx context.Context, db *gorm.DB, s *domain.Session) error
}

// Directory resolves tables and restaurants for the session core. It is
// read-only from the lifecycle manager's perspective.
type Directory interface {
	// FindActiveTableByQRToken resolves a scanned QR token to its table;
	// inactive tables must not resolve.
	FindActiveTableByQRToken(ctx context.Context, db *gorm.DB, qrToken string) (*domain.Table, error)

	// GetTableByID fetches a table by primary key.
	GetTableByID(ctx context.Context, db *gorm.DB, id string) (*domain.Table, error)

	// GetRestaurant fetches a restaurant by primary key.
	GetRestaurant(ctx context.Context, db *gorm.DB, id string) (*domain.Restaurant, error)
}

// Notifier receives session lifecycle events for real-time fan-out to the
// room keyed by session token. Implementations must not block; the service
// treats delivery as best-effort.
type Notifier interface {
	Publish(sessionToken, event string, payload any)
}

// Notifier event names.
const (
	EventSessionCreated    = "session_created"
	EventSessionJoined     = "session_joined"
	EventParticipantJoined = "participant_joined"
	EventModeChanged       = "mode_changed"
)

// RestaurantSummary is the minimal restaurant projection returned alongside
// sessions.
type RestaurantSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Currency string `json:"currency"`
	IsActive bool   `json:"is_active"`
}

// TableSummary is the minimal table projection returned alongside sessions.
type TableSummary struct {
	ID          string `json:"id"`
	TableNumber string `json:"table_number"`
}

// JoinResult is the outcome of a QR scan: either a newly created session or
// a join onto the table's existing one, tagged by IsNew.
type JoinResult struct {
	Session      *domain.Session   `json:"session"`
	Restaurant   RestaurantSummary `json:"restaurant"`
	Table        TableSummary      `json:"table"`
	RestaurantID string            `json:"restaurant_id"`
	IsNew        bool              `json:"is_new"`
}

// SessionView is a session together with its table and restaurant
// projections, returned by token fetches.
type SessionView struct {
	Session    *domain.Session   `json:"session"`
	Table      TableSummary      `json:"table"`
	Restaurant RestaurantSummary `json:"restaurant"`
}

// ParticipantResult reports the participant list after an add attempt.
// AlreadyExists distinguishes the idempotent no-op from a fresh append; it
// is a soft status, not an error.
type ParticipantResult struct {
	SessionToken  string                 `json:"session_token"`
	Participants  domain.ParticipantList `json:"participants"`
	AlreadyExists bool                   `json:"already_exists"`
}

// SessionService orchestrates session creation, joining, participant
// registration, mode changes, and expiry transitions.
type SessionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the session store used by this service.
	Repo SessionRepo
	// Dir resolves QR tokens to tables and restaurants.
	Dir Directory
	// Notifier fans lifecycle events out to session rooms; may be nil.
	Notifier Notifier

	// TTL is the activity window: every touch moves ExpiresAt to now+TTL.
	TTL time.Duration
	// TokenBytes sizes generated session tokens.
	TokenBytes int

	// Now allows tests to pin the clock; defaults to time.Now.
	Now func() time.Time
}

// insertAttempts bounds retries when the store rejects a generated token.
// The pre-check makes a collision here vanishingly rare; more than a couple
// of rejections means something other than bad luck is wrong.
const insertAttempts = 3

// NewSessionService constructs a SessionService with production defaults.
func NewSessionService(db *gorm.DB, repo SessionRepo, dir Directory, ttl time.Duration) *SessionService {
	return &SessionService{
		DB:         db,
		Repo:       repo,
		Dir:        dir,
		TTL:        ttl,
		TokenBytes: token.SessionTokenBytes,
		Now:        time.Now,
	}
}

// CreateOrJoin handles a QR scan. It resolves the active table behind
// qrToken, then either touches and returns the table's current session
// (IsNew=false; the mode argument is ignored since mode is fixed at creation)
// or creates a fresh one (IsNew=true) with a unique token, empty participant
// list, and an empty cart snapshot.
//
// An empty mode defaults to collective.
func (s *SessionService) CreateOrJoin(ctx context.Context, qrToken, mode string) (*JoinResult, error) {
	now := s.now()

	if mode == "" {
		mode = domain.ModeCollective
	}
	if !domain.ValidMode(mode) {
		return nil, ErrInvalidMode
	}

	tbl, err := s.Dir.FindActiveTableByQRToken(ctx, s.DB, strings.TrimSpace(qrToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	// Referential integrity should make this lookup infallible, but a
	// missing restaurant must surface as a client-visible 404, not a 500.
	rest, err := s.Dir.GetRestaurant(ctx, s.DB, tbl.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	result := &JoinResult{
		Restaurant:   summarizeRestaurant(rest),
		Table:        TableSummary{ID: tbl.ID, TableNumber: tbl.TableNumber},
		RestaurantID: tbl.RestaurantID,
	}

	existing, err := s.Repo.FindActiveByTable(ctx, s.DB, tbl.RestaurantID, tbl.ID, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.touch(existing, now)
		if err := s.Repo.Save(ctx, s.DB, existing); err != nil {
			return nil, err
		}
		sessionEvents.WithLabelValues("joined").Inc()
		s.publish(existing.SessionToken, EventSessionJoined, existing)
		result.Session = existing
		result.IsNew = false
		return result, nil
	}

	created, err := s.createSession(ctx, tbl, mode, now)
	if err != nil {
		return nil, err
	}
	sessionEvents.WithLabelValues("created").Inc()
	s.publish(created.SessionToken, EventSessionCreated, created)
	result.Session = created
	result.IsNew = true
	return result, nil
}

// createSession generates a unique token and inserts the new session. The
// store's unique index backs the generate-and-check loop: if a concurrent
// insert claims the token between check and insert, the insert is rejected
// and generation retries.
func (s *SessionService) createSession(ctx context.Context, tbl *domain.Table, mode string, now time.Time) (*domain.Session, error) {
	for attempt := 0; ; attempt++ {
		tok, err := token.GenerateUnique(ctx, func(ctx context.Context, candidate string) (bool, error) {
			return s.Repo.ExistsToken(ctx, s.DB, candidate)
		}, s.TokenBytes)
		if err != nil {
			return nil, err
		}

		sess := &domain.Session{
			ID:             uuid.NewString(),
			RestaurantID:   tbl.RestaurantID,
			TableID:        tbl.ID,
			SessionToken:   tok,
			Mode:           mode,
			Participants:   domain.ParticipantList{},
			CartSnapshot:   domain.NewCartSnapshot(),
			Status:         domain.StatusActive,
			ExpiresAt:      now.Add(s.TTL),
			LastActivityAt: now,
			CreatedAt:      now,
		}
		err = s.Repo.Insert(ctx, s.DB, sess)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || attempt+1 >= insertAttempts {
			return nil, err
		}
	}
}

// GetByToken loads a session by exact token, enforces the lifecycle checks,
// touches it, and returns it with its table and restaurant projections.
// Every successful fetch extends the session's life: the session stays alive
// while someone is actively viewing the menu.
func (s *SessionService) GetByToken(ctx context.Context, sessionToken string) (*SessionView, error) {
	sess, now, err := s.loadActive(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	s.touch(sess, now)
	if err := s.Repo.Save(ctx, s.DB, sess); err != nil {
		return nil, err
	}

	view := &SessionView{Session: sess}
	if tbl, err := s.Dir.GetTableByID(ctx, s.DB, sess.TableID); err == nil {
		view.Table = TableSummary{ID: tbl.ID, TableNumber: tbl.TableNumber}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if rest, err := s.Dir.GetRestaurant(ctx, s.DB, sess.RestaurantID); err == nil {
		view.Restaurant = summarizeRestaurant(rest)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return view, nil
}

// AddParticipant registers a diner in the session. Names are trimmed and
// compared with Unicode case folding; re-adding a present name leaves the
// list untouched but still counts as activity, so the session is touched
// either way.
func (s *SessionService) AddParticipant(ctx context.Context, sessionToken, name string) (*ParticipantResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyParticipantName
	}

	sess, now, err := s.loadActive(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	folded := fold.String(name)
	exists := false
	for _, p := range sess.Participants {
		if fold.String(p.Name) == folded {
			exists = true
			break
		}
	}
	if !exists {
		sess.Participants = append(sess.Participants, domain.Participant{Name: name, JoinedAt: now})
	}

	s.touch(sess, now)
	if err := s.Repo.Save(ctx, s.DB, sess); err != nil {
		return nil, err
	}
	if !exists {
		sessionEvents.WithLabelValues("participant_added").Inc()
		s.publish(sess.SessionToken, EventParticipantJoined, sess.Participants)
	}

	return &ParticipantResult{
		SessionToken:  sess.SessionToken,
		Participants:  sess.Participants,
		AlreadyExists: exists,
	}, nil
}

// UpdateMode sets the session mode unconditionally (collective and
// individual are freely reversible while the session is active), then
// touches and persists.
func (s *SessionService) UpdateMode(ctx context.Context, sessionToken, mode string) (*domain.Session, error) {
	if !domain.ValidMode(mode) {
		return nil, ErrInvalidMode
	}

	sess, now, err := s.loadActive(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	sess.Mode = mode
	s.touch(sess, now)
	if err := s.Repo.Save(ctx, s.DB, sess); err != nil {
		return nil, err
	}
	s.publish(sess.SessionToken, EventModeChanged, map[string]string{"mode": sess.Mode})
	return sess, nil
}

// loadActive is the shared resolve-and-validate path for all token-keyed
// operations. It returns ErrSessionNotFound for unknown tokens,
// ErrSessionNotActive for terminal sessions, and performs the lazy expiry
// transition, the sole place it happens, returning ErrSessionExpired after
// persisting the new status.
func (s *SessionService) loadActive(ctx context.Context, sessionToken string) (*domain.Session, time.Time, error) {
	now := s.now()

	sess, err := s.Repo.FindByToken(ctx, s.DB, strings.TrimSpace(sessionToken))
	if err != nil {
		return nil, now, err
	}
	if sess == nil {
		return nil, now, ErrSessionNotFound
	}
	if sess.Status != domain.StatusActive {
		return nil, now, ErrSessionNotActive
	}
	if !sess.ExpiresAt.After(now) {
		sess.Status = domain.StatusExpired
		if err := s.Repo.Save(ctx, s.DB, sess); err != nil {
			return nil, now, err
		}
		sessionEvents.WithLabelValues("expired").Inc()
		return nil, now, ErrSessionExpired
	}
	return sess, now, nil
}

// touch refreshes the activity window: LastActivityAt and ExpiresAt always
// move together.
func (s *SessionService) touch(sess *domain.Session, now time.Time) {
	sess.LastActivityAt = now
	sess.ExpiresAt = now.Add(s.TTL)
}

// publish forwards an event to the notifier when one is configured.
func (s *SessionService) publish(sessionToken, event string, payload any) {
	if s.Notifier != nil {
		s.Notifier.Publish(sessionToken, event, payload)
	}
}

// now returns the configured clock, defaulting to UTC wall time.
func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// summarizeRestaurant projects the fields diners need to render a menu
// header.
func summarizeRestaurant(r *domain.Restaurant) RestaurantSummary {
	return RestaurantSummary{
		ID:       r.ID,
		Name:     r.Name,
		Slug:     r.Slug,
		Currency: r.Currency,
		IsActive: r.IsActive,
	}
}
