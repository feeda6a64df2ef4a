// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the MenuItem
// model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
)

// MenuFilter narrows ListMenuItems results. The zero value lists the
// available items of a restaurant.
type MenuFilter struct {
	// IncludeUnavailable also returns items whose availability toggle is off.
	IncludeUnavailable bool
	// Category restricts results to a single category when non-empty.
	Category string
	// Search matches name or description case-insensitively when non-empty.
	Search string
}

// CreateMenuItem inserts a new menu item row. The ID is a randomly generated
// UUID and CreatedAt is set to UTC.
func CreateMenuItem(ctx context.Context, db *gorm.DB, item *domain.MenuItem) (*domain.MenuItem, error) {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// ListMenuItems returns a restaurant's menu ordered by category, manual sort
// order, then name.
func ListMenuItems(ctx context.Context, db *gorm.DB, restaurantID string, f MenuFilter) ([]domain.MenuItem, error) {
	q := db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if !f.IncludeUnavailable {
		q = q.Where("is_available = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	var out []domain.MenuItem
	err := q.Order("category asc, sort_order asc, name asc").Find(&out).Error
	return out, err
}

// GetMenuItem fetches a single menu item by ID scoped to its restaurant.
// If the record does not exist, it returns ErrNotFound.
func GetMenuItem(ctx context.Context, db *gorm.DB, id, restaurantID string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SaveMenuItem writes back a previously loaded menu item in full.
func SaveMenuItem(ctx context.Context, db *gorm.DB, item *domain.MenuItem) error {
	return db.WithContext(ctx).Save(item).Error
}

// DeleteMenuItem removes a menu item by ID scoped to its restaurant. If no
// rows are affected, it returns ErrNotFound.
func DeleteMenuItem(ctx context.Context, db *gorm.DB, id, restaurantID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&domain.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
