package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tabletap/go-table-backend/internal/domain"
)

func TestCreateRestaurant_AssignsIDAndRejectsDuplicateSlug(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{})
	ctx := context.Background()

	r, err := CreateRestaurant(ctx, db, &domain.Restaurant{Name: "Spice Route", Slug: "spice-route", Currency: "INR", IsActive: true})
	if err != nil {
		t.Fatalf("CreateRestaurant: %v", err)
	}
	if r.ID == "" {
		t.Fatalf("expected generated ID")
	}

	_, err = CreateRestaurant(ctx, db, &domain.Restaurant{Name: "Copy", Slug: "spice-route", Currency: "INR", IsActive: true})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestListRestaurantsPage_FiltersAndPagination(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{})
	ctx := context.Background()

	seedRestaurant(t, db, "alpha-grill", true)
	seedRestaurant(t, db, "beta-cafe", true)
	seedRestaurant(t, db, "gamma-bar", false)

	total, err := CountRestaurants(ctx, db, false, "")
	if err != nil || total != 2 {
		t.Fatalf("CountRestaurants(active) = %d, %v; want 2", total, err)
	}
	total, err = CountRestaurants(ctx, db, true, "")
	if err != nil || total != 3 {
		t.Fatalf("CountRestaurants(all) = %d, %v; want 3", total, err)
	}

	// Name search.
	total, err = CountRestaurants(ctx, db, true, "gamma")
	if err != nil || total != 1 {
		t.Fatalf("CountRestaurants(search) = %d, %v; want 1", total, err)
	}

	page, err := ListRestaurantsPage(ctx, db, true, "", 0, 2)
	if err != nil || len(page) != 2 {
		t.Fatalf("first page = %d items, %v; want 2", len(page), err)
	}
	rest, err := ListRestaurantsPage(ctx, db, true, "", 2, 2)
	if err != nil || len(rest) != 1 {
		t.Fatalf("second page = %d items, %v; want 1", len(rest), err)
	}
}

func TestGetRestaurant_ByIDAndSlug(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{})
	ctx := context.Background()
	r := seedRestaurant(t, db, "bistro", true)

	byID, err := GetRestaurant(ctx, db, r.ID)
	if err != nil || byID.Slug != "bistro" {
		t.Fatalf("GetRestaurant: %+v, %v", byID, err)
	}
	bySlug, err := GetRestaurantBySlug(ctx, db, "bistro")
	if err != nil || bySlug.ID != r.ID {
		t.Fatalf("GetRestaurantBySlug: %+v, %v", bySlug, err)
	}
	if _, err := GetRestaurant(ctx, db, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExistsActiveRestaurant(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{})
	ctx := context.Background()
	active := seedRestaurant(t, db, "open", true)
	inactive := seedRestaurant(t, db, "closed", false)

	if ok, _ := ExistsActiveRestaurant(ctx, db, active.ID); !ok {
		t.Fatalf("active restaurant not visible")
	}
	if ok, _ := ExistsActiveRestaurant(ctx, db, inactive.ID); ok {
		t.Fatalf("inactive restaurant must not count as active")
	}
}

func TestExistsSlug_ExcludeSelf(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{})
	ctx := context.Background()
	r := seedRestaurant(t, db, "bistro", true)

	if dup, _ := ExistsSlug(ctx, db, "bistro", ""); !dup {
		t.Fatalf("ExistsSlug should see existing slug")
	}
	if dup, _ := ExistsSlug(ctx, db, "bistro", r.ID); dup {
		t.Fatalf("ExistsSlug must ignore the excluded row")
	}
}

func TestRestaurantsStats(t *testing.T) {
	db := newRepoDB(t, &domain.Restaurant{})
	ctx := context.Background()

	count, maxTS, err := RestaurantsStats(ctx, db, true)
	if err != nil || count != 0 || maxTS != nil {
		t.Fatalf("empty stats = %d, %v, %v", count, maxTS, err)
	}

	seedRestaurant(t, db, "one", true)
	time.Sleep(5 * time.Millisecond)
	seedRestaurant(t, db, "two", true)

	count, maxTS, err = RestaurantsStats(ctx, db, true)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 2 || maxTS == nil {
		t.Fatalf("stats = %d, %v; want 2 rows with timestamp", count, maxTS)
	}
}
