// Package services – RestaurantService
//
// This file implements the RestaurantService, which manages tenant records.
// It normalizes and allocates unique slugs, enforces currency conventions,
// and coordinates repository operations for creating, listing (with
// pagination), fetching, updating, and deactivating restaurants.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
	"github.com/tabletap/go-table-backend/internal/utils"
)

// RestaurantRepo defines the repository contract required by
// RestaurantService.
type RestaurantRepo interface {
	// CreateRestaurant inserts a new restaurant row.
	CreateRestaurant(ctx context.Context, db *gorm.DB, r *domain.Restaurant) (*domain.Restaurant, error)

	// CountRestaurants returns the total matching rows for pagination.
	CountRestaurants(ctx context.Context, db *gorm.DB, includeInactive bool, search string) (int64, error)

	// ListRestaurantsPage returns a page of restaurants.
	ListRestaurantsPage(ctx context.Context, db *gorm.DB, includeInactive bool, search string, offset, limit int) ([]domain.Restaurant, error)

	// GetRestaurant fetches a restaurant by ID.
	GetRestaurant(ctx context.Context, db *gorm.DB, id string) (*domain.Restaurant, error)

	// GetRestaurantBySlug fetches a restaurant by its unique slug.
	GetRestaurantBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Restaurant, error)

	// ExistsSlug reports whether another restaurant already uses slug.
	ExistsSlug(ctx context.Context, db *gorm.DB, slug, excludeID string) (bool, error)

	// SaveRestaurant writes back a previously loaded restaurant in full.
	SaveRestaurant(ctx context.Context, db *gorm.DB, r *domain.Restaurant) error
}

// CreateRestaurantInput carries the writable fields for restaurant creation.
type CreateRestaurantInput struct {
	Name     string
	Slug     string // optional; generated from Name when empty
	LogoURL  string
	Currency string // optional; defaults to INR
}

// UpdateRestaurantInput carries the writable fields for restaurant updates.
// Nil pointers leave the corresponding field untouched.
type UpdateRestaurantInput struct {
	Name     *string
	Slug     *string
	LogoURL  *string
	Currency *string
	IsActive *bool
}

// RestaurantService provides tenant-level operations.
type RestaurantService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the restaurant repository used by this service.
	Repo RestaurantRepo
}

// NewRestaurantService constructs a RestaurantService.
func NewRestaurantService(db *gorm.DB, r RestaurantRepo) *RestaurantService {
	return &RestaurantService{DB: db, Repo: r}
}

// Create inserts a new restaurant. An explicitly requested slug must be
// free (ErrDuplicateSlug otherwise); when no slug is given, one is derived
// from the name with numeric suffixes appended until unique.
func (s *RestaurantService) Create(ctx context.Context, in CreateRestaurantInput) (*domain.Restaurant, error) {
	requested := utils.Slugify(in.Slug)
	base := requested
	if base == "" {
		base = utils.Slugify(in.Name)
	}
	if base == "" {
		return nil, ErrInvalidSlug
	}

	var slug string
	if requested != "" {
		taken, err := s.Repo.ExistsSlug(ctx, s.DB, requested, "")
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateSlug
		}
		slug = requested
	} else {
		allocated, err := s.allocateSlug(ctx, base)
		if err != nil {
			return nil, err
		}
		slug = allocated
	}

	r := &domain.Restaurant{
		Name:     strings.TrimSpace(in.Name),
		Slug:     slug,
		LogoURL:  strings.TrimSpace(in.LogoURL),
		Currency: normalizeCurrency(in.Currency),
		IsActive: true,
	}
	created, err := s.Repo.CreateRestaurant(ctx, s.DB, r)
	if err != nil {
		// The unique index may still fire under concurrent creates.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return created, nil
}

// ListPage returns a page of restaurants plus the total count. Invalid
// page/pageSize values fall back to defaults.
func (s *RestaurantService) ListPage(ctx context.Context, includeInactive bool, search string, page, pageSize int) ([]domain.Restaurant, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountRestaurants(ctx, s.DB, includeInactive, search)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Restaurant{}, 0, nil
	}

	items, err := s.Repo.ListRestaurantsPage(ctx, s.DB, includeInactive, search, offset, pageSize)
	return items, total, err
}

// Get fetches a restaurant by ID, mapping absence to ErrRestaurantNotFound.
func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	r, err := s.Repo.GetRestaurant(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return r, nil
}

// GetBySlug fetches a restaurant by slug (normalized before lookup).
func (s *RestaurantService) GetBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	r, err := s.Repo.GetRestaurantBySlug(ctx, s.DB, utils.Slugify(slug))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return r, nil
}

// Update applies the provided fields to an existing restaurant. Slug
// changes are normalized and checked for conflicts against other rows.
func (s *RestaurantService) Update(ctx context.Context, id string, in UpdateRestaurantInput) (*domain.Restaurant, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Slug != nil {
		slug := utils.Slugify(*in.Slug)
		if slug == "" {
			return nil, ErrInvalidSlug
		}
		taken, err := s.Repo.ExistsSlug(ctx, s.DB, slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateSlug
		}
		r.Slug = slug
	}
	if in.Name != nil {
		r.Name = strings.TrimSpace(*in.Name)
	}
	if in.LogoURL != nil {
		r.LogoURL = strings.TrimSpace(*in.LogoURL)
	}
	if in.Currency != nil {
		r.Currency = normalizeCurrency(*in.Currency)
	}
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}

	if err := s.Repo.SaveRestaurant(ctx, s.DB, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Deactivate soft-disables a restaurant. Existing sessions are left to age
// out naturally; new session creation stops because inactive restaurants'
// tables no longer resolve.
func (s *RestaurantService) Deactivate(ctx context.Context, id string) (*domain.Restaurant, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.IsActive = false
	if err := s.Repo.SaveRestaurant(ctx, s.DB, r); err != nil {
		return nil, err
	}
	return r, nil
}

// allocateSlug appends numeric suffixes to base until an unused slug is
// found.
func (s *RestaurantService) allocateSlug(ctx context.Context, base string) (string, error) {
	candidate := base
	for suffix := 1; ; suffix++ {
		taken, err := s.Repo.ExistsSlug(ctx, s.DB, candidate, "")
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}

// normalizeCurrency uppercases and defaults the ISO currency code.
func normalizeCurrency(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return "INR"
	}
	return c
}
