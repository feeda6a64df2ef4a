package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
)

func seedRestaurant(t *testing.T, db *gorm.DB, slug string, active bool) *domain.Restaurant {
	t.Helper()
	r := &domain.Restaurant{ID: uuid.NewString(), Name: "R " + slug, Slug: slug, Currency: "INR", IsActive: active}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func TestCreateTable_SetsFieldsAndDefaults(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{}, &domain.Table{})
	r := seedRestaurant(t, db, "bistro", true)

	tb, err := CreateTable(context.Background(), db, r.ID, "A1", "qr-a1", 6)
	if err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if tb.ID == "" || tb.TableNumber != "A1" || tb.Capacity != 6 || !tb.IsActive {
		t.Fatalf("unexpected table: %+v", tb)
	}
}

func TestCreateTable_DuplicateNumberAndQRToken(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{}, &domain.Table{})
	r := seedRestaurant(t, db, "bistro", true)
	other := seedRestaurant(t, db, "cantina", true)
	ctx := context.Background()

	if _, err := CreateTable(ctx, db, r.ID, "A1", "qr-1", 4); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	// Same number in the same restaurant: rejected.
	if _, err := CreateTable(ctx, db, r.ID, "A1", "qr-2", 4); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected duplicate table number error, got %v", err)
	}
	// Same number in another restaurant: fine.
	if _, err := CreateTable(ctx, db, other.ID, "A1", "qr-3", 4); err != nil {
		t.Fatalf("same number across restaurants should work: %v", err)
	}
	// QR tokens are globally unique.
	if _, err := CreateTable(ctx, db, other.ID, "B9", "qr-1", 4); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected duplicate qr token error, got %v", err)
	}
}

func TestListTables_ActiveFilterAndOrder(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{}, &domain.Table{})
	r := seedRestaurant(t, db, "bistro", true)
	ctx := context.Background()

	b2, _ := CreateTable(ctx, db, r.ID, "B2", "qr-b2", 4)
	a1, _ := CreateTable(ctx, db, r.ID, "A1", "qr-a1", 4)
	b2.IsActive = false
	if err := SaveTable(ctx, db, b2); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = a1

	active, err := ListTables(ctx, db, r.ID, false)
	if err != nil {
		t.Fatalf("ListTables: %v", err)
	}
	if len(active) != 1 || active[0].TableNumber != "A1" {
		t.Fatalf("active filter broken: %+v", active)
	}

	all, err := ListTables(ctx, db, r.ID, true)
	if err != nil {
		t.Fatalf("ListTables: %v", err)
	}
	if len(all) != 2 || all[0].TableNumber != "A1" || all[1].TableNumber != "B2" {
		t.Fatalf("ordering broken: %+v", all)
	}
}

func TestFindActiveTableByQRToken(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{}, &domain.Table{})
	r := seedRestaurant(t, db, "bistro", true)
	ctx := context.Background()

	tb, _ := CreateTable(ctx, db, r.ID, "A1", "qr-live", 4)

	got, err := FindActiveTableByQRToken(ctx, db, "qr-live")
	if err != nil || got.ID != tb.ID {
		t.Fatalf("FindActiveTableByQRToken: %v / %v", got, err)
	}

	// Deactivated tables stop resolving.
	tb.IsActive = false
	if err := SaveTable(ctx, db, tb); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := FindActiveTableByQRToken(ctx, db, "qr-live"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive table, got %v", err)
	}

	if _, err := FindActiveTableByQRToken(ctx, db, "qr-unknown"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown token, got %v", err)
	}
}

func TestExistsHelpers(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{}, &domain.Table{})
	r := seedRestaurant(t, db, "bistro", true)
	ctx := context.Background()

	tb, _ := CreateTable(ctx, db, r.ID, "A1", "qr-x", 4)

	if used, _ := ExistsQRToken(ctx, db, "qr-x"); !used {
		t.Fatalf("ExistsQRToken should see existing token")
	}
	if used, _ := ExistsQRToken(ctx, db, "qr-y"); used {
		t.Fatalf("ExistsQRToken false positive")
	}

	if dup, _ := ExistsTableNumber(ctx, db, r.ID, "A1", ""); !dup {
		t.Fatalf("ExistsTableNumber should see existing number")
	}
	// Excluding the row itself (update path) clears the conflict.
	if dup, _ := ExistsTableNumber(ctx, db, r.ID, "A1", tb.ID); dup {
		t.Fatalf("ExistsTableNumber must ignore the excluded row")
	}
}

func TestDeleteTable(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{}, &domain.Table{})
	r := seedRestaurant(t, db, "bistro", true)
	ctx := context.Background()

	tb, _ := CreateTable(ctx, db, r.ID, "A1", "qr-del", 4)
	if err := DeleteTable(ctx, db, tb.ID, r.ID); err != nil {
		t.Fatalf("DeleteTable: %v", err)
	}
	if err := DeleteTable(ctx, db, tb.ID, r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
	if _, err := GetTable(ctx, db, tb.ID, r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted table still readable: %v", err)
	}
}
