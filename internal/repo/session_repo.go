// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Session
// model, the durable side of the table-session lifecycle.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a session is not found, FindActiveByTable and FindByToken return
//     (nil, nil) rather than an error; absence is an expected outcome the
//     lifecycle manager branches on.
//   - InsertSession surfaces gorm.ErrDuplicatedKey when the session token
//     unique index rejects the row. This is the structural backstop for the
//     generate-then-insert race: the caller retries generation instead of
//     trusting the pre-check alone.
//   - On other DB errors the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicateKey aliases gorm.ErrDuplicatedKey for callers that should not
// depend on GORM directly.
var ErrDuplicateKey = gorm.ErrDuplicatedKey

// FindActiveByTable returns the newest session for (restaurantID, tableID)
// that is still active and unexpired at now, or nil when there is none.
//
// Ordering by created_at descending makes the newest session win if a
// concurrent-scan race ever produced more than one active row; the table
// converges onto a single session within one subsequent read.
func FindActiveByTable(ctx context.Context, db *gorm.DB, restaurantID, tableID string, now time.Time) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).
		Where("restaurant_id = ? AND table_id = ? AND status = ? AND expires_at > ?",
			restaurantID, tableID, domain.StatusActive, now).
		Order("created_at desc").
		First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// FindByToken returns the session with the exact token, or nil when none
// exists. No status or expiry filter is applied; lifecycle checks belong to
// the service layer.
func FindByToken(ctx context.Context, db *gorm.DB, token string) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).
		Where("session_token = ?", token).
		First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// ExistsSessionToken reports whether any session (of any status) already
// carries the given token. Tokens are never reused, so expired and
// checked-out rows count.
func ExistsSessionToken(ctx context.Context, db *gorm.DB, token string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("session_token = ?", token).
		Count(&n).Error
	return n > 0, err
}

// InsertSession persists a new session row. The caller constructs the
// entity; duplicate tokens come back as gorm.ErrDuplicatedKey via the unique
// index on session_token.
func InsertSession(ctx context.Context, db *gorm.DB, s *domain.Session) error {
	return db.WithContext(ctx).Create(s).Error
}

// SaveSession writes back a previously loaded session in full. The lifecycle
// manager's load-mutate-save cycle means the last writer wins when two
// requests race on the same record.
func SaveSession(ctx context.Context, db *gorm.DB, s *domain.Session) error {
	return db.WithContext(ctx).Save(s).Error
}

// ExpireStale marks every active session whose expiry has passed as expired
// and returns the number of rows changed. This is non-authoritative
// housekeeping; the read path performs the same transition lazily and
// remains correct if the sweep never runs.
func ExpireStale(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("status = ? AND expires_at <= ?", domain.StatusActive, now).
		Update("status", domain.StatusExpired)
	return res.RowsAffected, res.Error
}
