// Menu HTTP handlers.
//
// This file exposes REST endpoints for the menu catalog:
//   - POST   /restaurants/{id}/menu               (create item)
//   - GET    /restaurants/{id}/menu               (list, filterable)
//   - GET    /restaurants/{id}/menu/{itemId}      (fetch)
//   - PATCH  /restaurants/{id}/menu/{itemId}      (update)
//   - DELETE /restaurants/{id}/menu/{itemId}      (delete)
//
// The list endpoint serves both diners (available items only, the default)
// and staff (include_unavailable=true).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tabletap/go-table-backend/internal/domain"
	"github.com/tabletap/go-table-backend/internal/repo"
	"github.com/tabletap/go-table-backend/internal/services"
)

// MenuService defines menu catalog operations consumed by HTTP handlers.
type MenuService interface {
	// Create adds a menu item.
	Create(ctx context.Context, restaurantID string, in services.CreateMenuItemInput) (*domain.MenuItem, error)
	// List returns menu items matching the filter.
	List(ctx context.Context, restaurantID string, f repo.MenuFilter) ([]domain.MenuItem, error)
	// Get fetches one menu item.
	Get(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error)
	// Update applies partial changes to a menu item.
	Update(ctx context.Context, restaurantID, itemID string, in services.UpdateMenuItemInput) (*domain.MenuItem, error)
	// Delete removes a menu item.
	Delete(ctx context.Context, restaurantID, itemID string) error
}

// MenuHandlers groups the menu catalog endpoints.
type MenuHandlers struct {
	svc MenuService
}

// NewMenuHandlers constructs MenuHandlers bound to the given service.
func NewMenuHandlers(svc MenuService) *MenuHandlers {
	return &MenuHandlers{svc: svc}
}

// CreateMenuItemRequest is the JSON payload for adding a menu item.
type CreateMenuItemRequest struct {
	// Name is the item's display name (1-255 chars).
	Name string `json:"name" binding:"required,min=1,max=255" example:"Paneer Tikka"`
	// Description optionally elaborates on the item.
	Description string `json:"description"`
	// Category groups items on the menu page.
	Category string `json:"category" example:"starters"`
	// PriceCents is the price in the restaurant's currency minor units.
	PriceCents int64 `json:"price_cents" binding:"min=0" example:"24900"`
	// ImageURL optionally points at an item photo.
	ImageURL string `json:"image_url"`
	// Tags carry dietary or promotional labels.
	Tags []string `json:"tags" example:"veg,spicy"`
	// SortOrder positions the item within its category.
	SortOrder int `json:"sort_order"`
	// IsAvailable defaults to true when omitted.
	IsAvailable *bool `json:"is_available"`
}

// UpdateMenuItemRequest is the JSON payload for partial menu item updates.
type UpdateMenuItemRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	PriceCents  *int64    `json:"price_cents"`
	ImageURL    *string   `json:"image_url"`
	Tags        *[]string `json:"tags"`
	SortOrder   *int      `json:"sort_order"`
	IsAvailable *bool     `json:"is_available"`
}

// failMenu translates menu service errors into HTTP responses.
func failMenu(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRestaurantNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "restaurant not found")
	case errors.Is(err, services.ErrMenuItemNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "menu item not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

// CreateMenuItem godoc
// @ID          createMenuItem
// @Summary     Add a menu item
// @Tags        Menu
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       body  body  handlers.CreateMenuItemRequest  true  "Create item payload"
//
// @Success     201  {object}  domain.MenuItem
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Restaurant not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/{id}/menu [post]
func (h *MenuHandlers) CreateMenuItem(c *gin.Context) {
	rid, okID := restaurantID(c)
	if !okID {
		return
	}
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	item, err := h.svc.Create(c.Request.Context(), rid, services.CreateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
		SortOrder:   req.SortOrder,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		failMenu(c, err)
		return
	}
	ok(c, http.StatusCreated, item)
}

// ListMenu godoc
// @ID          listMenu
// @Summary     List a restaurant's menu
// @Description Returns available items by default; staff pass include_unavailable=true
// @Description to see the full catalog. Supports category and name search filters.
// @Tags        Menu
// @Produce     json
//
// @Param       id                   path   string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       category             query  string  false "Filter by category"
// @Param       search               query  string  false "Filter by name substring"
// @Param       include_unavailable  query  bool    false "Include unavailable items" default(false)
//
// @Success     200  {array}   domain.MenuItem
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Restaurant not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/{id}/menu [get]
func (h *MenuHandlers) ListMenu(c *gin.Context) {
	rid, okID := restaurantID(c)
	if !okID {
		return
	}
	items, err := h.svc.List(c.Request.Context(), rid, repo.MenuFilter{
		IncludeUnavailable: c.Query("include_unavailable") == "true",
		Category:           c.Query("category"),
		Search:             c.Query("search"),
	})
	if err != nil {
		failMenu(c, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	ok(c, http.StatusOK, items)
}

// GetMenuItem godoc
// @ID          getMenuItem
// @Summary     Fetch one menu item
// @Tags        Menu
// @Produce     json
//
// @Param       id      path  string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       itemId  path  string  true  "Menu item ID (UUID)"   format(uuid)
//
// @Success     200  {object}  domain.MenuItem
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Menu item not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/{id}/menu/{itemId} [get]
func (h *MenuHandlers) GetMenuItem(c *gin.Context) {
	rid, okID := restaurantID(c)
	if !okID {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), rid, c.Param("itemId"))
	if err != nil {
		failMenu(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

// UpdateMenuItem godoc
// @ID          updateMenuItem
// @Summary     Update a menu item
// @Tags        Menu
// @Accept      json
// @Produce     json
//
// @Param       id      path  string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       itemId  path  string  true  "Menu item ID (UUID)"   format(uuid)
// @Param       body    body  handlers.UpdateMenuItemRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.MenuItem
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Menu item not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/{id}/menu/{itemId} [patch]
func (h *MenuHandlers) UpdateMenuItem(c *gin.Context) {
	rid, okID := restaurantID(c)
	if !okID {
		return
	}
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	item, err := h.svc.Update(c.Request.Context(), rid, c.Param("itemId"), services.UpdateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
		SortOrder:   req.SortOrder,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		failMenu(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

// DeleteMenuItem godoc
// @ID          deleteMenuItem
// @Summary     Delete a menu item
// @Tags        Menu
// @Produce     json
//
// @Param       id      path  string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       itemId  path  string  true  "Menu item ID (UUID)"   format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Menu item not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /restaurants/{id}/menu/{itemId} [delete]
func (h *MenuHandlers) DeleteMenuItem(c *gin.Context) {
	rid, okID := restaurantID(c)
	if !okID {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), rid, c.Param("itemId")); err != nil {
		failMenu(c, err)
		return
	}
	noContent(c)
}
