package domain

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Enforce FKs so cascades actually execute.
	db.Exec("PRAGMA foreign_keys=ON;")
	return db
}

func TestTableNames(t *testing.T) {
	if (Restaurant{}).TableName() != "restaurants" {
		t.Fatalf("Restaurant.TableName() = %q; want %q", (Restaurant{}).TableName(), "restaurants")
	}
	if (Table{}).TableName() != "tables" {
		t.Fatalf("Table.TableName() = %q; want %q", (Table{}).TableName(), "tables")
	}
	if (Session{}).TableName() != "table_sessions" {
		t.Fatalf("Session.TableName() = %q; want %q", (Session{}).TableName(), "table_sessions")
	}
	if (MenuItem{}).TableName() != "menu_items" {
		t.Fatalf("MenuItem.TableName() = %q; want %q", (MenuItem{}).TableName(), "menu_items")
	}
}

func TestValidMode(t *testing.T) {
	cases := map[string]bool{
		ModeCollective: true,
		ModeIndividual: true,
		"":             false,
		"Collective":   false,
		"shared":       false,
	}
	for in, want := range cases {
		if got := ValidMode(in); got != want {
			t.Errorf("ValidMode(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestMigrations_Indexes_AndCascades(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(&Restaurant{}, &Table{}, &Session{}, &MenuItem{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	for _, tbl := range []any{&Restaurant{}, &Table{}, &Session{}, &MenuItem{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}

	if !m.HasIndex(&Restaurant{}, "ux_restaurant_slug") {
		t.Fatalf("expected index ux_restaurant_slug on restaurants")
	}
	if !m.HasIndex(&Table{}, "ux_table_number") {
		t.Fatalf("expected index ux_table_number on tables")
	}
	if !m.HasIndex(&Table{}, "ux_table_qr_token") {
		t.Fatalf("expected index ux_table_qr_token on tables")
	}
	if !m.HasIndex(&Session{}, "ux_session_token") {
		t.Fatalf("expected index ux_session_token on table_sessions")
	}
	if !m.HasIndex(&Session{}, "idx_table_sessions") {
		t.Fatalf("expected index idx_table_sessions on table_sessions")
	}

	now := time.Now().UTC()
	r := Restaurant{ID: "r1", Name: "Spice Route", Slug: "spice-route", Currency: "INR", IsActive: true}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	tb := Table{ID: "t1", RestaurantID: "r1", TableNumber: "A1", Capacity: 4, QRToken: "tok-123", IsActive: true}
	if err := db.Create(&tb).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	s := Session{
		ID: "s1", RestaurantID: "r1", TableID: "t1", SessionToken: "sess-abc",
		Mode: ModeCollective, Participants: ParticipantList{}, CartSnapshot: NewCartSnapshot(),
		Status: StatusActive, ExpiresAt: now.Add(30 * time.Minute), LastActivityAt: now,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("create session: %v", err)
	}

	// Duplicate session token must be rejected by the unique index.
	dup := s
	dup.ID = "s2"
	if err := db.Create(&dup).Error; err == nil {
		t.Fatalf("expected unique violation on duplicate session token")
	}

	// Duplicate table number within the same restaurant must be rejected.
	dupTable := Table{ID: "t2", RestaurantID: "r1", TableNumber: "A1", QRToken: "tok-456", IsActive: true}
	if err := db.Create(&dupTable).Error; err == nil {
		t.Fatalf("expected unique violation on duplicate table number")
	}
}

func TestSession_JSONColumnsRoundTrip(t *testing.T) {
	db := newDomainDB(t)
	if err := db.AutoMigrate(&Restaurant{}, &Table{}, &Session{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := db.Create(&Restaurant{ID: "r1", Name: "Bistro", Slug: "bistro", Currency: "EUR", IsActive: true}).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	if err := db.Create(&Table{ID: "t1", RestaurantID: "r1", TableNumber: "7", QRToken: "qr-7", IsActive: true}).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	in := Session{
		ID: "s1", RestaurantID: "r1", TableID: "t1", SessionToken: "sess-1",
		Mode:         ModeIndividual,
		Participants: ParticipantList{{Name: "Riya", JoinedAt: now}},
		CartSnapshot: JSONMap{"items": []any{map[string]any{"sku": "dosa", "qty": float64(2)}}},
		Status:       StatusActive, ExpiresAt: now.Add(time.Hour), LastActivityAt: now,
	}
	if err := db.Create(&in).Error; err != nil {
		t.Fatalf("create session: %v", err)
	}

	var out Session
	if err := db.First(&out, "id = ?", "s1").Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if len(out.Participants) != 1 || out.Participants[0].Name != "Riya" {
		t.Fatalf("participants did not round-trip: %+v", out.Participants)
	}
	if !out.Participants[0].JoinedAt.Equal(now) {
		t.Fatalf("joinedAt = %v; want %v", out.Participants[0].JoinedAt, now)
	}
	items, ok := out.CartSnapshot["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("cart snapshot did not round-trip: %+v", out.CartSnapshot)
	}
	if out.Mode != ModeIndividual {
		t.Fatalf("mode = %q; want %q", out.Mode, ModeIndividual)
	}
}
