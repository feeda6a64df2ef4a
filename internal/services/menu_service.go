// Package services – MenuService
//
// This file implements the MenuService, which manages a restaurant's menu
// catalog. Diners browse the available subset through the public surface
// while staff manage the full catalog including unavailable items.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
	"github.com/tabletap/go-table-backend/internal/repo"
)

// MenuRepo defines the repository contract required by MenuService.
type MenuRepo interface {
	// CreateMenuItem inserts a new menu item row.
	CreateMenuItem(ctx context.Context, db *gorm.DB, item *domain.MenuItem) (*domain.MenuItem, error)

	// ListMenuItems returns a restaurant's menu items matching the filter.
	ListMenuItems(ctx context.Context, db *gorm.DB, restaurantID string, f repo.MenuFilter) ([]domain.MenuItem, error)

	// GetMenuItem fetches a menu item by ID scoped to its restaurant.
	GetMenuItem(ctx context.Context, db *gorm.DB, id, restaurantID string) (*domain.MenuItem, error)

	// SaveMenuItem writes back a previously loaded menu item in full.
	SaveMenuItem(ctx context.Context, db *gorm.DB, item *domain.MenuItem) error

	// DeleteMenuItem removes a menu item.
	DeleteMenuItem(ctx context.Context, db *gorm.DB, id, restaurantID string) error

	// ExistsActiveRestaurant reports whether the owning restaurant exists
	// and is active.
	ExistsActiveRestaurant(ctx context.Context, db *gorm.DB, id string) (bool, error)
}

// CreateMenuItemInput carries the writable fields for menu item creation.
type CreateMenuItemInput struct {
	Name        string
	Description string
	Category    string
	PriceCents  int64
	ImageURL    string
	Tags        []string
	SortOrder   int
	IsAvailable *bool // defaults to true when nil
}

// UpdateMenuItemInput carries the writable fields for menu item updates.
// Nil pointers leave the corresponding field untouched.
type UpdateMenuItemInput struct {
	Name        *string
	Description *string
	Category    *string
	PriceCents  *int64
	ImageURL    *string
	Tags        *[]string
	SortOrder   *int
	IsAvailable *bool
}

// MenuService provides menu catalog operations scoped to a restaurant.
type MenuService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the menu repository used by this service.
	Repo MenuRepo
}

// NewMenuService constructs a MenuService.
func NewMenuService(db *gorm.DB, r MenuRepo) *MenuService {
	return &MenuService{DB: db, Repo: r}
}

// Create adds a menu item to an active restaurant.
func (s *MenuService) Create(ctx context.Context, restaurantID string, in CreateMenuItemInput) (*domain.MenuItem, error) {
	if err := s.requireActiveRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	item := &domain.MenuItem{
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Category:     strings.TrimSpace(in.Category),
		PriceCents:   in.PriceCents,
		ImageURL:     strings.TrimSpace(in.ImageURL),
		Tags:         domain.StringList(in.Tags),
		SortOrder:    in.SortOrder,
		IsAvailable:  available,
	}
	return s.Repo.CreateMenuItem(ctx, s.DB, item)
}

// List returns menu items matching the filter for an active restaurant.
func (s *MenuService) List(ctx context.Context, restaurantID string, f repo.MenuFilter) ([]domain.MenuItem, error) {
	if err := s.requireActiveRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.Repo.ListMenuItems(ctx, s.DB, restaurantID, f)
}

// Get fetches one menu item, mapping absence to ErrMenuItemNotFound.
func (s *MenuService) Get(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error) {
	item, err := s.Repo.GetMenuItem(ctx, s.DB, itemID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Update applies the provided fields to an existing menu item.
func (s *MenuService) Update(ctx context.Context, restaurantID, itemID string, in UpdateMenuItemInput) (*domain.MenuItem, error) {
	item, err := s.Get(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.PriceCents != nil {
		item.PriceCents = *in.PriceCents
	}
	if in.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.Tags != nil {
		item.Tags = domain.StringList(*in.Tags)
	}
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}

	if err := s.Repo.SaveMenuItem(ctx, s.DB, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a menu item, mapping absence to ErrMenuItemNotFound.
func (s *MenuService) Delete(ctx context.Context, restaurantID, itemID string) error {
	err := s.Repo.DeleteMenuItem(ctx, s.DB, itemID, restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMenuItemNotFound
	}
	return err
}

// requireActiveRestaurant maps a missing or inactive owner to
// ErrRestaurantNotFound.
func (s *MenuService) requireActiveRestaurant(ctx context.Context, restaurantID string) error {
	ok, err := s.Repo.ExistsActiveRestaurant(ctx, s.DB, restaurantID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRestaurantNotFound
	}
	return nil
}
