// Package domain defines the persistence models for restaurants, tables,
// table sessions, and menu items. These types are mapped with GORM and form
// the core data layer of the QR-table ordering backend.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Session mode values. The mode is mutable for the lifetime of an active
// session and only controls how the ordering UI groups carts.
const (
	// ModeCollective means all participants at the table share one ordering context.
	ModeCollective = "collective"
	// ModeIndividual means each participant orders within their own sub-context.
	ModeIndividual = "individual"
)

// Session status values. A session leaves StatusActive exactly once and
// never returns.
const (
	StatusActive     = "active"
	StatusCheckedOut = "checked_out"
	StatusExpired    = "expired"
)

// ValidMode reports whether m is a recognized session mode.
func ValidMode(m string) bool {
	return m == ModeCollective || m == ModeIndividual
}

// Restaurant represents a tenant of the platform. Every table, session, and
// menu item belongs to exactly one restaurant.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Name: display name (2–100 chars).
//   - Slug: URL-safe unique identifier, lowercase, generated from the name
//     when not provided.
//   - LogoURL: optional logo location.
//   - Currency: ISO 4217 code, uppercase, defaults to INR.
//   - IsActive: soft activation flag; inactive restaurants are hidden from
//     diner-facing lookups and reject new tables/menu items.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker.
type Restaurant struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name"       gorm:"type:varchar(100);not null"`
	Slug      string         `json:"slug"       gorm:"type:varchar(120);not null;uniqueIndex:ux_restaurant_slug"`
	LogoURL   string         `json:"logo_url,omitempty" gorm:"type:varchar(512)"`
	Currency  string         `json:"currency"   gorm:"type:char(3);not null;default:'INR'"`
	IsActive  bool           `json:"is_active"  gorm:"not null;default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Restaurant.
func (Restaurant) TableName() string { return "restaurants" }

// Table represents a physical table inside a restaurant. Each table carries
// a globally unique QR token; scanning that token is how diners start or
// join a session.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - RestaurantID: foreign key to the owning restaurant.
//   - TableNumber: human-visible label, unique per restaurant.
//   - Capacity: seat count (informational).
//   - QRToken: opaque hex token, globally unique across all tables.
//   - IsActive: inactive tables reject new sessions.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker.
type Table struct {
	ID           string         `json:"id"            gorm:"type:char(36);primaryKey"`
	RestaurantID string         `json:"restaurant_id" gorm:"type:char(36);not null;uniqueIndex:ux_table_number,priority:1"`
	TableNumber  string         `json:"table_number"  gorm:"type:varchar(20);not null;uniqueIndex:ux_table_number,priority:2"`
	Capacity     int            `json:"capacity"      gorm:"not null;default:4"`
	QRToken      string         `json:"qr_token"      gorm:"type:varchar(64);not null;uniqueIndex:ux_table_qr_token"`
	IsActive     bool           `json:"is_active"     gorm:"not null;default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"             gorm:"index"`

	// Restaurant is the owning tenant. Tables are cascade-deleted if their
	// restaurant is removed.
	Restaurant Restaurant `json:"-" gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Table.
func (Table) TableName() string { return "tables" }

// Session represents a time-bounded, multi-participant ordering context
// bound to exactly one table of exactly one restaurant. Sessions are created
// by a QR scan and kept alive by activity: every qualifying operation
// refreshes LastActivityAt and ExpiresAt together ("touch").
//
// At most one active session should exist per (restaurant, table) pair at a
// time; the lookup-before-create path enforces this advisorily, and a narrow
// duplicate window under concurrent scans is accepted (the newest session
// wins on the next read).
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - RestaurantID / TableID: scope of the session, immutable after creation.
//   - SessionToken: opaque hex token, globally unique, never reused.
//   - Mode: ModeCollective or ModeIndividual, mutable while active.
//   - Participants: insertion-ordered diner list, serialized as JSON.
//   - CartSnapshot: opaque cart payload persisted verbatim for the ordering
//     subsystem; the session layer never interprets it.
//   - Status: StatusActive, StatusCheckedOut, or StatusExpired.
//   - ExpiresAt: always LastActivityAt + TTL; indexed for sweep queries.
//   - LastActivityAt: time of the most recent touch.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Session struct {
	ID             string          `json:"id"             gorm:"type:char(36);primaryKey"`
	RestaurantID   string          `json:"restaurant_id"  gorm:"type:char(36);not null;index:idx_table_sessions,priority:1"`
	TableID        string          `json:"table_id"       gorm:"type:char(36);not null;index:idx_table_sessions,priority:2"`
	SessionToken   string          `json:"session_token"  gorm:"type:varchar(128);not null;uniqueIndex:ux_session_token"`
	Mode           string          `json:"mode"           gorm:"type:varchar(16);not null;default:'collective';check:mode IN ('collective','individual')"`
	Participants   ParticipantList `json:"participants"   gorm:"type:text;not null"`
	CartSnapshot   JSONMap         `json:"cart_snapshot"  gorm:"type:text;not null"`
	Status         string          `json:"status"         gorm:"type:varchar(16);not null;default:'active';index:idx_table_sessions,priority:3;check:status IN ('active','checked_out','expired')"`
	ExpiresAt      time.Time       `json:"expires_at"     gorm:"not null;index"`
	LastActivityAt time.Time       `json:"last_activity_at" gorm:"not null"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Restaurant and Table anchor the session scope. Sessions are
	// cascade-deleted with their table.
	Restaurant Restaurant `json:"-" gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Table      Table      `json:"-" gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Session.
func (Session) TableName() string { return "table_sessions" }

// MenuItem represents a single orderable dish on a restaurant's menu.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - RestaurantID: foreign key to the owning restaurant (indexed with
//     category and availability for menu queries).
//   - Name / Description / Category: display metadata.
//   - PriceCents: price in the restaurant's currency minor units.
//   - ImageURL: optional photo location.
//   - Tags: free-form labels ("vegan", "gluten-free"), JSON-encoded.
//   - IsAvailable: availability toggle; unavailable items are hidden from
//     diner-facing menus by default.
//   - SortOrder: manual ordering within a category.
type MenuItem struct {
	ID           string         `json:"id"            gorm:"type:char(36);primaryKey"`
	RestaurantID string         `json:"restaurant_id" gorm:"type:char(36);not null;index:idx_menu_category,priority:1;index:idx_menu_available,priority:1"`
	Name         string         `json:"name"          gorm:"type:varchar(120);not null"`
	Description  string         `json:"description,omitempty" gorm:"type:varchar(600)"`
	Category     string         `json:"category"      gorm:"type:varchar(80);not null;index:idx_menu_category,priority:2"`
	PriceCents   int64          `json:"price_cents"   gorm:"not null;check:price_cents >= 0"`
	ImageURL     string         `json:"image_url,omitempty" gorm:"type:varchar(512)"`
	Tags         StringList     `json:"tags"          gorm:"type:text"`
	IsAvailable  bool           `json:"is_available"  gorm:"not null;default:true;index:idx_menu_available,priority:2"`
	SortOrder    int            `json:"sort_order"    gorm:"not null;default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"             gorm:"index"`

	// Restaurant is the owning tenant. Menu items are cascade-deleted if
	// their restaurant is removed.
	Restaurant Restaurant `json:"-" gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for MenuItem.
func (MenuItem) TableName() string { return "menu_items" }
