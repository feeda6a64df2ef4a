// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Restaurant
// model plus the aggregate stats query used for conditional list responses.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
)

// CreateRestaurant inserts a new restaurant row. The ID is a randomly
// generated UUID and CreatedAt is set to UTC. Duplicate slugs surface as
// gorm.ErrDuplicatedKey.
func CreateRestaurant(ctx context.Context, db *gorm.DB, r *domain.Restaurant) (*domain.Restaurant, error) {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// CountRestaurants returns the total number of restaurants matching the
// includeInactive/search filters, for pagination metadata.
func CountRestaurants(ctx context.Context, db *gorm.DB, includeInactive bool, search string) (int64, error) {
	var total int64
	err := restaurantFilter(db.WithContext(ctx), includeInactive, search).
		Model(&domain.Restaurant{}).
		Count(&total).Error
	return total, err
}

// ListRestaurantsPage returns a page of restaurants ordered by creation time
// descending. Use CountRestaurants to obtain the total for pagination
// metadata.
func ListRestaurantsPage(ctx context.Context, db *gorm.DB, includeInactive bool, search string, offset, limit int) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	err := restaurantFilter(db.WithContext(ctx), includeInactive, search).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// restaurantFilter composes the shared list/count predicate.
func restaurantFilter(q *gorm.DB, includeInactive bool, search string) *gorm.DB {
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	return q
}

// GetRestaurant fetches a restaurant by ID. If the record does not exist, it
// returns ErrNotFound.
func GetRestaurant(ctx context.Context, db *gorm.DB, id string) (*domain.Restaurant, error) {
	var r domain.Restaurant
	if err := db.WithContext(ctx).Where("id = ?", id).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRestaurantBySlug fetches a restaurant by its unique slug.
func GetRestaurantBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Restaurant, error) {
	var r domain.Restaurant
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ExistsActiveRestaurant reports whether the restaurant exists and is
// active. Table and menu writes hang off this check.
func ExistsActiveRestaurant(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Restaurant{}).
		Where("id = ? AND is_active = ?", id, true).
		Count(&n).Error
	return n > 0, err
}

// ExistsSlug reports whether another restaurant already uses slug.
// excludeID skips the row being updated; pass "" on create.
func ExistsSlug(ctx context.Context, db *gorm.DB, slug, excludeID string) (bool, error) {
	q := db.WithContext(ctx).
		Model(&domain.Restaurant{}).
		Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

// SaveRestaurant writes back a previously loaded restaurant in full.
func SaveRestaurant(ctx context.Context, db *gorm.DB, r *domain.Restaurant) error {
	return db.WithContext(ctx).Save(r).Error
}

// RestaurantsStats returns aggregate metadata for the restaurant collection:
// the total number of visible rows and the maximum UpdatedAt timestamp among
// them. The HTTP layer folds both into a weak ETag for the list endpoint.
//
// Return values:
//   - count:        total restaurants matching the filter
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func RestaurantsStats(ctx context.Context, db *gorm.DB, includeInactive bool) (count int64, maxUpdatedAt *time.Time, err error) {
	q := restaurantFilter(db.WithContext(ctx), includeInactive, "").Model(&domain.Restaurant{})

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
