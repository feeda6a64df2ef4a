// Package services – TableService
//
// This file implements the TableService, which manages the physical tables
// of a restaurant and their QR bindings. Table numbers are unique per
// restaurant, QR tokens are unique globally; explicitly provided tokens are
// conflict-checked while omitted ones come from the shared unique-token
// allocator.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
	"github.com/tabletap/go-table-backend/internal/token"
)

// TableRepo defines the repository contract required by TableService.
type TableRepo interface {
	// CreateTable inserts a new table row.
	CreateTable(ctx context.Context, db *gorm.DB, restaurantID, tableNumber, qrToken string, capacity int) (*domain.Table, error)

	// ListTables returns the tables of a restaurant.
	ListTables(ctx context.Context, db *gorm.DB, restaurantID string, includeInactive bool) ([]domain.Table, error)

	// GetTable fetches a table by ID scoped to its restaurant.
	GetTable(ctx context.Context, db *gorm.DB, id, restaurantID string) (*domain.Table, error)

	// ExistsQRToken reports whether any table already carries qrToken.
	ExistsQRToken(ctx context.Context, db *gorm.DB, qrToken string) (bool, error)

	// ExistsTableNumber reports whether another table of the restaurant
	// uses tableNumber.
	ExistsTableNumber(ctx context.Context, db *gorm.DB, restaurantID, tableNumber, excludeID string) (bool, error)

	// SaveTable writes back a previously loaded table in full.
	SaveTable(ctx context.Context, db *gorm.DB, t *domain.Table) error

	// DeleteTable removes a table.
	DeleteTable(ctx context.Context, db *gorm.DB, id, restaurantID string) error

	// ExistsActiveRestaurant reports whether the owning restaurant exists
	// and is active.
	ExistsActiveRestaurant(ctx context.Context, db *gorm.DB, id string) (bool, error)
}

// CreateTableInput carries the writable fields for table creation.
type CreateTableInput struct {
	TableNumber string
	Capacity    int    // defaults to 4 when <= 0
	QRToken     string // optional; allocated when empty
}

// UpdateTableInput carries the writable fields for table updates. Nil
// pointers leave the corresponding field untouched.
type UpdateTableInput struct {
	TableNumber *string
	Capacity    *int
	QRToken     *string
	IsActive    *bool
}

// TableService provides table management scoped to a restaurant.
type TableService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the table repository used by this service.
	Repo TableRepo
	// QRTokenBytes sizes allocated QR tokens.
	QRTokenBytes int
}

// NewTableService constructs a TableService with production defaults.
func NewTableService(db *gorm.DB, r TableRepo) *TableService {
	return &TableService{DB: db, Repo: r, QRTokenBytes: token.QRTokenBytes}
}

// Create adds a table to an active restaurant. Duplicate table numbers and
// explicitly provided duplicate QR tokens are rejected; an omitted QR token
// is generated through the unique-token allocator.
func (s *TableService) Create(ctx context.Context, restaurantID string, in CreateTableInput) (*domain.Table, error) {
	if err := s.requireActiveRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(in.TableNumber)
	dup, err := s.Repo.ExistsTableNumber(ctx, s.DB, restaurantID, number, "")
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateTableNumber
	}

	qr := strings.TrimSpace(in.QRToken)
	if qr != "" {
		taken, err := s.Repo.ExistsQRToken(ctx, s.DB, qr)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateQRToken
		}
	} else {
		qr, err = token.GenerateUnique(ctx, func(ctx context.Context, candidate string) (bool, error) {
			return s.Repo.ExistsQRToken(ctx, s.DB, candidate)
		}, s.QRTokenBytes)
		if err != nil {
			return nil, err
		}
	}

	capacity := in.Capacity
	if capacity <= 0 {
		capacity = 4
	}

	t, err := s.Repo.CreateTable(ctx, s.DB, restaurantID, number, qr, capacity)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTableNumber
		}
		return nil, err
	}
	return t, nil
}

// List returns the restaurant's tables.
func (s *TableService) List(ctx context.Context, restaurantID string, includeInactive bool) ([]domain.Table, error) {
	if err := s.requireActiveRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.Repo.ListTables(ctx, s.DB, restaurantID, includeInactive)
}

// Get fetches one table, mapping absence to ErrTableNotFound.
func (s *TableService) Get(ctx context.Context, restaurantID, tableID string) (*domain.Table, error) {
	t, err := s.Repo.GetTable(ctx, s.DB, tableID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return t, nil
}

// Update applies the provided fields, re-checking the per-restaurant table
// number and global QR token uniqueness when those change.
func (s *TableService) Update(ctx context.Context, restaurantID, tableID string, in UpdateTableInput) (*domain.Table, error) {
	t, err := s.Get(ctx, restaurantID, tableID)
	if err != nil {
		return nil, err
	}

	if in.TableNumber != nil {
		number := strings.TrimSpace(*in.TableNumber)
		if number != t.TableNumber {
			dup, err := s.Repo.ExistsTableNumber(ctx, s.DB, restaurantID, number, tableID)
			if err != nil {
				return nil, err
			}
			if dup {
				return nil, ErrDuplicateTableNumber
			}
			t.TableNumber = number
		}
	}
	if in.QRToken != nil {
		qr := strings.TrimSpace(*in.QRToken)
		if qr != "" && qr != t.QRToken {
			taken, err := s.Repo.ExistsQRToken(ctx, s.DB, qr)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrDuplicateQRToken
			}
			t.QRToken = qr
		}
	}
	if in.Capacity != nil && *in.Capacity > 0 {
		t.Capacity = *in.Capacity
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}

	if err := s.Repo.SaveTable(ctx, s.DB, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a table. Sessions referencing it cascade away with the
// row; any in-flight diners see Gone on their next fetch.
func (s *TableService) Delete(ctx context.Context, restaurantID, tableID string) error {
	err := s.Repo.DeleteTable(ctx, s.DB, tableID, restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTableNotFound
	}
	return err
}

// requireActiveRestaurant maps a missing or inactive owner to
// ErrRestaurantNotFound.
func (s *TableService) requireActiveRestaurant(ctx context.Context, restaurantID string) error {
	ok, err := s.Repo.ExistsActiveRestaurant(ctx, s.DB, restaurantID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRestaurantNotFound
	}
	return nil
}
