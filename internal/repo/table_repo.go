// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Table
// model, including the QR-token lookup that anchors session creation.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
)

// CreateTable inserts a new table row for the given restaurant. The table ID
// is a randomly generated UUID, and CreatedAt is set to UTC. Duplicate table
// numbers or QR tokens surface as gorm.ErrDuplicatedKey.
func CreateTable(ctx context.Context, db *gorm.DB, restaurantID, tableNumber, qrToken string, capacity int) (*domain.Table, error) {
	t := &domain.Table{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		TableNumber:  tableNumber,
		Capacity:     capacity,
		QRToken:      qrToken,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// ListTables returns the tables of a restaurant ordered by table number then
// creation time. When includeInactive is false, deactivated tables are
// filtered out.
func ListTables(ctx context.Context, db *gorm.DB, restaurantID string, includeInactive bool) ([]domain.Table, error) {
	q := db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var out []domain.Table
	err := q.Order("table_number asc, created_at asc").Find(&out).Error
	return out, err
}

// GetTable fetches a single table by ID scoped to its restaurant. If the
// record does not exist, it returns ErrNotFound.
func GetTable(ctx context.Context, db *gorm.DB, id, restaurantID string) (*domain.Table, error) {
	var t domain.Table
	err := db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTableByID fetches a table by primary key without restaurant scoping.
// Used by the session layer, which already holds a validated table ID.
func GetTableByID(ctx context.Context, db *gorm.DB, id string) (*domain.Table, error) {
	var t domain.Table
	if err := db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindActiveTableByQRToken resolves a QR scan: the table carrying qrToken
// with is_active true, or ErrNotFound. Inactive tables are invisible here on
// purpose: a retired QR code must not open sessions.
func FindActiveTableByQRToken(ctx context.Context, db *gorm.DB, qrToken string) (*domain.Table, error) {
	var t domain.Table
	err := db.WithContext(ctx).
		Where("qr_token = ? AND is_active = ?", qrToken, true).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ExistsQRToken reports whether any table already carries the given QR
// token. Feeds the unique-token allocator's existence probe.
func ExistsQRToken(ctx context.Context, db *gorm.DB, qrToken string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Table{}).
		Where("qr_token = ?", qrToken).
		Count(&n).Error
	return n > 0, err
}

// ExistsTableNumber reports whether another table of the same restaurant
// already uses tableNumber. excludeID skips the row being updated; pass ""
// on create.
func ExistsTableNumber(ctx context.Context, db *gorm.DB, restaurantID, tableNumber, excludeID string) (bool, error) {
	q := db.WithContext(ctx).
		Model(&domain.Table{}).
		Where("restaurant_id = ? AND table_number = ?", restaurantID, tableNumber)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

// SaveTable writes back a previously loaded table in full.
func SaveTable(ctx context.Context, db *gorm.DB, t *domain.Table) error {
	return db.WithContext(ctx).Save(t).Error
}

// DeleteTable removes a table by ID scoped to its restaurant. If no rows are
// affected, it returns ErrNotFound.
func DeleteTable(ctx context.Context, db *gorm.DB, id, restaurantID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&domain.Table{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
