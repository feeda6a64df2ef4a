package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
)

// fakeSessionRepo is an in-memory SessionRepo keyed by token.
type fakeSessionRepo struct {
	sessions map[string]*domain.Session

	insertErrs []error // popped per Insert call before storing
	saveErr    error
	findErr    error

	insertCalls int
	saveCalls   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.Session{}}
}

func (f *fakeSessionRepo) FindActiveByTable(_ context.Context, _ *gorm.DB, restaurantID, tableID string, now time.Time) (*domain.Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var newest *domain.Session
	for _, s := range f.sessions {
		if s.RestaurantID != restaurantID || s.TableID != tableID {
			continue
		}
		if s.Status != domain.StatusActive || !s.ExpiresAt.After(now) {
			continue
		}
		if newest == nil || s.CreatedAt.After(newest.CreatedAt) {
			newest = s
		}
	}
	if newest == nil {
		return nil, nil
	}
	cp := *newest
	return &cp, nil
}

func (f *fakeSessionRepo) FindByToken(_ context.Context, _ *gorm.DB, tok string) (*domain.Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	s, ok := f.sessions[tok]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) ExistsToken(_ context.Context, _ *gorm.DB, tok string) (bool, error) {
	_, ok := f.sessions[tok]
	return ok, nil
}

func (f *fakeSessionRepo) Insert(_ context.Context, _ *gorm.DB, s *domain.Session) error {
	f.insertCalls++
	if len(f.insertErrs) > 0 {
		err := f.insertErrs[0]
		f.insertErrs = f.insertErrs[1:]
		if err != nil {
			return err
		}
	}
	if _, ok := f.sessions[s.SessionToken]; ok {
		return gorm.ErrDuplicatedKey
	}
	cp := *s
	f.sessions[s.SessionToken] = &cp
	return nil
}

func (f *fakeSessionRepo) Save(_ context.Context, _ *gorm.DB, s *domain.Session) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *s
	f.sessions[s.SessionToken] = &cp
	return nil
}

// fakeDirectory resolves a single table and restaurant.
type fakeDirectory struct {
	table      *domain.Table
	restaurant *domain.Restaurant
}

func (f *fakeDirectory) FindActiveTableByQRToken(_ context.Context, _ *gorm.DB, qrToken string) (*domain.Table, error) {
	if f.table == nil || f.table.QRToken != qrToken || !f.table.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f.table
	return &cp, nil
}

func (f *fakeDirectory) GetTableByID(_ context.Context, _ *gorm.DB, id string) (*domain.Table, error) {
	if f.table == nil || f.table.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f.table
	return &cp, nil
}

func (f *fakeDirectory) GetRestaurant(_ context.Context, _ *gorm.DB, id string) (*domain.Restaurant, error) {
	if f.restaurant == nil || f.restaurant.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f.restaurant
	return &cp, nil
}

// recordingNotifier captures published events in order.
type recordingNotifier struct {
	events []publishedEvent
}

type publishedEvent struct {
	token string
	event string
}

func (r *recordingNotifier) Publish(sessionToken, event string, _ any) {
	r.events = append(r.events, publishedEvent{token: sessionToken, event: event})
}

func newSessionFixture(t *testing.T) (*SessionService, *fakeSessionRepo, *fakeDirectory, *recordingNotifier, *time.Time) {
	t.Helper()

	repo := newFakeSessionRepo()
	dir := &fakeDirectory{
		restaurant: &domain.Restaurant{ID: "rest-1", Name: "Spice Route", Slug: "spice-route", Currency: "INR", IsActive: true},
		table:      &domain.Table{ID: "tbl-1", RestaurantID: "rest-1", TableNumber: "7", QRToken: "qr-7", Capacity: 4, IsActive: true},
	}
	notifier := &recordingNotifier{}

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	svc := NewSessionService(nil, repo, dir, 30*time.Minute)
	svc.Notifier = notifier
	svc.Now = func() time.Time { return now }

	return svc, repo, dir, notifier, &now
}

func TestCreateOrJoin_CreatesFreshSession(t *testing.T) {
	svc, _, _, notifier, now := newSessionFixture(t)

	res, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("CreateOrJoin: %v", err)
	}
	if !res.IsNew {
		t.Fatal("expected IsNew=true for first scan")
	}
	sess := res.Session
	if sess.Mode != domain.ModeCollective {
		t.Errorf("default mode = %q, want %q", sess.Mode, domain.ModeCollective)
	}
	if sess.Status != domain.StatusActive {
		t.Errorf("status = %q, want %q", sess.Status, domain.StatusActive)
	}
	if len(sess.SessionToken) != 48 {
		t.Errorf("token length = %d, want 48", len(sess.SessionToken))
	}
	if len(sess.Participants) != 0 {
		t.Errorf("participants = %v, want empty", sess.Participants)
	}
	if got, want := sess.ExpiresAt, now.Add(30*time.Minute); !got.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", got, want)
	}
	if res.Restaurant.Slug != "spice-route" || res.Table.TableNumber != "7" {
		t.Errorf("projection mismatch: %+v / %+v", res.Restaurant, res.Table)
	}
	if len(notifier.events) != 1 || notifier.events[0].event != EventSessionCreated {
		t.Errorf("events = %+v, want one %s", notifier.events, EventSessionCreated)
	}
}

func TestCreateOrJoin_SecondScanJoinsAndTouches(t *testing.T) {
	svc, repo, _, notifier, now := newSessionFixture(t)

	first, err := svc.CreateOrJoin(context.Background(), "qr-7", domain.ModeIndividual)
	if err != nil {
		t.Fatalf("first scan: %v", err)
	}

	*now = now.Add(10 * time.Minute)
	second, err := svc.CreateOrJoin(context.Background(), "qr-7", domain.ModeCollective)
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if second.IsNew {
		t.Fatal("expected IsNew=false for second scan")
	}
	if second.Session.SessionToken != first.Session.SessionToken {
		t.Error("second scan returned a different session")
	}
	if second.Session.Mode != domain.ModeIndividual {
		t.Errorf("join changed mode to %q; mode is fixed at creation", second.Session.Mode)
	}
	if got, want := second.Session.ExpiresAt, now.Add(30*time.Minute); !got.Equal(want) {
		t.Errorf("join did not slide expiry: %v, want %v", got, want)
	}
	if len(repo.sessions) != 1 {
		t.Errorf("sessions in store = %d, want 1", len(repo.sessions))
	}
	if notifier.events[len(notifier.events)-1].event != EventSessionJoined {
		t.Errorf("last event = %+v, want %s", notifier.events[len(notifier.events)-1], EventSessionJoined)
	}
}

func TestCreateOrJoin_UnknownOrInactiveQRToken(t *testing.T) {
	svc, _, dir, _, _ := newSessionFixture(t)

	if _, err := svc.CreateOrJoin(context.Background(), "no-such-token", ""); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("unknown token err = %v, want ErrTableNotFound", err)
	}

	dir.table.IsActive = false
	if _, err := svc.CreateOrJoin(context.Background(), "qr-7", ""); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("inactive table err = %v, want ErrTableNotFound", err)
	}
}

func TestCreateOrJoin_InvalidMode(t *testing.T) {
	svc, _, _, _, _ := newSessionFixture(t)

	if _, err := svc.CreateOrJoin(context.Background(), "qr-7", "banquet"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}
}

func TestCreateOrJoin_RetriesOnDuplicateToken(t *testing.T) {
	svc, repo, _, _, _ := newSessionFixture(t)
	repo.insertErrs = []error{gorm.ErrDuplicatedKey}

	res, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("CreateOrJoin: %v", err)
	}
	if repo.insertCalls != 2 {
		t.Errorf("insert calls = %d, want 2", repo.insertCalls)
	}
	if res.Session == nil || res.Session.SessionToken == "" {
		t.Fatal("expected a stored session after retry")
	}
}

func TestCreateOrJoin_GivesUpAfterRepeatedDuplicates(t *testing.T) {
	svc, repo, _, _, _ := newSessionFixture(t)
	repo.insertErrs = []error{gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey}

	if _, err := svc.CreateOrJoin(context.Background(), "qr-7", ""); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("err = %v, want gorm.ErrDuplicatedKey after exhausted retries", err)
	}
	if repo.insertCalls != insertAttempts {
		t.Errorf("insert calls = %d, want %d", repo.insertCalls, insertAttempts)
	}
}

func TestGetByToken_TouchesAndProjects(t *testing.T) {
	svc, repo, _, _, now := newSessionFixture(t)

	created, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("CreateOrJoin: %v", err)
	}
	tok := created.Session.SessionToken

	*now = now.Add(20 * time.Minute)
	view, err := svc.GetByToken(context.Background(), tok)
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if got, want := view.Session.ExpiresAt, now.Add(30*time.Minute); !got.Equal(want) {
		t.Errorf("fetch did not slide expiry: %v, want %v", got, want)
	}
	if !view.Session.LastActivityAt.Equal(*now) {
		t.Errorf("LastActivityAt = %v, want %v", view.Session.LastActivityAt, *now)
	}
	if view.Table.TableNumber != "7" || view.Restaurant.Name != "Spice Route" {
		t.Errorf("projections = %+v / %+v", view.Table, view.Restaurant)
	}
	stored := repo.sessions[tok]
	if !stored.ExpiresAt.Equal(now.Add(30 * time.Minute)) {
		t.Error("touch was not persisted")
	}
}

func TestGetByToken_UnknownToken(t *testing.T) {
	svc, _, _, _, _ := newSessionFixture(t)

	if _, err := svc.GetByToken(context.Background(), "deadbeef"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestGetByToken_LazyExpiry(t *testing.T) {
	svc, repo, _, _, now := newSessionFixture(t)

	created, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("CreateOrJoin: %v", err)
	}
	tok := created.Session.SessionToken

	*now = now.Add(31 * time.Minute)
	if _, err := svc.GetByToken(context.Background(), tok); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("first fetch past deadline err = %v, want ErrSessionExpired", err)
	}
	if got := repo.sessions[tok].Status; got != domain.StatusExpired {
		t.Errorf("persisted status = %q, want %q", got, domain.StatusExpired)
	}

	// Expiry is terminal for this token on every subsequent call.
	if _, err := svc.GetByToken(context.Background(), tok); !errors.Is(err, ErrSessionNotActive) {
		t.Errorf("second fetch err = %v, want ErrSessionNotActive", err)
	}
	if _, err := svc.AddParticipant(context.Background(), tok, "Arnav"); !errors.Is(err, ErrSessionNotActive) {
		t.Errorf("participant add on expired err = %v, want ErrSessionNotActive", err)
	}
}

func TestGetByToken_ExpiryBoundaryIsExclusive(t *testing.T) {
	svc, _, _, _, now := newSessionFixture(t)

	created, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("CreateOrJoin: %v", err)
	}

	// ExpiresAt == now counts as expired.
	*now = now.Add(30 * time.Minute)
	if _, err := svc.GetByToken(context.Background(), created.Session.SessionToken); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("err at exact deadline = %v, want ErrSessionExpired", err)
	}
}

func TestExpiredSessionIsReplacedOnNextScan(t *testing.T) {
	svc, _, _, _, now := newSessionFixture(t)

	first, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("first scan: %v", err)
	}

	*now = now.Add(time.Hour)
	second, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("scan after expiry: %v", err)
	}
	if !second.IsNew {
		t.Fatal("expected a fresh session once the old one aged out")
	}
	if second.Session.SessionToken == first.Session.SessionToken {
		t.Error("fresh session reused the expired token")
	}
}

func TestAddParticipant_AppendsAndTouches(t *testing.T) {
	svc, _, _, notifier, now := newSessionFixture(t)

	created, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("CreateOrJoin: %v", err)
	}
	tok := created.Session.SessionToken

	*now = now.Add(5 * time.Minute)
	res, err := svc.AddParticipant(context.Background(), tok, "  Arnav  ")
	if err != nil {
		t.Fatalf("AddParticipant: %v", err)
	}
	if res.AlreadyExists {
		t.Error("first add reported AlreadyExists")
	}
	if len(res.Participants) != 1 || res.Participants[0].Name != "Arnav" {
		t.Fatalf("participants = %+v, want trimmed [Arnav]", res.Participants)
	}
	if !res.Participants[0].JoinedAt.Equal(*now) {
		t.Errorf("JoinedAt = %v, want %v", res.Participants[0].JoinedAt, *now)
	}
	if notifier.events[len(notifier.events)-1].event != EventParticipantJoined {
		t.Errorf("last event = %+v, want %s", notifier.events[len(notifier.events)-1], EventParticipantJoined)
	}
}

func TestAddParticipant_CaseInsensitiveIdempotent(t *testing.T) {
	svc, repo, _, _, now := newSessionFixture(t)

	created, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("CreateOrJoin: %v", err)
	}
	tok := created.Session.SessionToken

	if _, err := svc.AddParticipant(context.Background(), tok, "Arnav"); err != nil {
		t.Fatalf("first add: %v", err)
	}

	*now = now.Add(2 * time.Minute)
	res, err := svc.AddParticipant(context.Background(), tok, "arnav")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if !res.AlreadyExists {
		t.Error("case-variant re-add not reported as AlreadyExists")
	}
	if len(res.Participants) != 1 {
		t.Fatalf("participants = %+v, want single entry", res.Participants)
	}
	if res.Participants[0].Name != "Arnav" {
		t.Errorf("stored name = %q, original casing must survive", res.Participants[0].Name)
	}

	// The no-op add still counts as activity.
	stored := repo.sessions[tok]
	if !stored.ExpiresAt.Equal(now.Add(30 * time.Minute)) {
		t.Error("idempotent add did not slide expiry")
	}
}

func TestAddParticipant_EmptyName(t *testing.T) {
	svc, _, _, _, _ := newSessionFixture(t)

	created, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("CreateOrJoin: %v", err)
	}
	for _, name := range []string{"", "   "} {
		if _, err := svc.AddParticipant(context.Background(), created.Session.SessionToken, name); !errors.Is(err, ErrEmptyParticipantName) {
			t.Errorf("AddParticipant(%q) err = %v, want ErrEmptyParticipantName", name, err)
		}
	}
}

func TestUpdateMode_RoundTrip(t *testing.T) {
	svc, repo, _, notifier, now := newSessionFixture(t)

	created, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("CreateOrJoin: %v", err)
	}
	tok := created.Session.SessionToken

	*now = now.Add(time.Minute)
	sess, err := svc.UpdateMode(context.Background(), tok, domain.ModeIndividual)
	if err != nil {
		t.Fatalf("UpdateMode to individual: %v", err)
	}
	if sess.Mode != domain.ModeIndividual {
		t.Errorf("mode = %q, want individual", sess.Mode)
	}
	if !sess.ExpiresAt.Equal(now.Add(30 * time.Minute)) {
		t.Error("mode change did not slide expiry")
	}

	sess, err = svc.UpdateMode(context.Background(), tok, domain.ModeCollective)
	if err != nil {
		t.Fatalf("UpdateMode back to collective: %v", err)
	}
	if sess.Mode != domain.ModeCollective {
		t.Errorf("mode = %q, want collective after round trip", sess.Mode)
	}
	if got := repo.sessions[tok].Mode; got != domain.ModeCollective {
		t.Errorf("persisted mode = %q, want collective", got)
	}
	if notifier.events[len(notifier.events)-1].event != EventModeChanged {
		t.Errorf("last event = %+v, want %s", notifier.events[len(notifier.events)-1], EventModeChanged)
	}
}

func TestUpdateMode_Invalid(t *testing.T) {
	svc, repo, _, _, _ := newSessionFixture(t)

	created, err := svc.CreateOrJoin(context.Background(), "qr-7", "")
	if err != nil {
		t.Fatalf("CreateOrJoin: %v", err)
	}
	saves := repo.saveCalls
	if _, err := svc.UpdateMode(context.Background(), created.Session.SessionToken, "split"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}
	if repo.saveCalls != saves {
		t.Error("invalid mode must be rejected before any load or save")
	}
}

func TestIsGone(t *testing.T) {
	if !IsGone(ErrSessionExpired) || !IsGone(ErrSessionNotActive) {
		t.Error("expired and not-active must classify as gone")
	}
	if IsGone(ErrSessionNotFound) || IsGone(nil) {
		t.Error("not-found and nil must not classify as gone")
	}
}
