// Restaurant HTTP handlers.
//
// This file exposes REST endpoints for tenant management:
//   - POST   /restaurants                 (create)
//   - GET    /restaurants                 (list, paginated, ETag support)
//   - GET    /restaurants/{id}            (fetch by ID)
//   - GET    /restaurants/slug/{slug}     (fetch by slug)
//   - PATCH  /restaurants/{id}            (update)
//   - DELETE /restaurants/{id}            (deactivate)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/domain"
	"github.com/tabletap/go-table-backend/internal/repo"
	"github.com/tabletap/go-table-backend/internal/services"
	"github.com/tabletap/go-table-backend/internal/utils"
)

// RestaurantService defines tenant operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RestaurantService interface {
	// Create registers a new restaurant, allocating a slug when absent.
	Create(ctx context.Context, in services.CreateRestaurantInput) (*domain.Restaurant, error)
	// ListPage returns a page of restaurants and the total count.
	ListPage(ctx context.Context, includeInactive bool, search string, page, pageSize int) ([]domain.Restaurant, int64, error)
	// Get fetches a restaurant by ID.
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	// GetBySlug fetches a restaurant by its URL slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Restaurant, error)
	// Update applies partial changes to a restaurant.
	Update(ctx context.Context, id string, in services.UpdateRestaurantInput) (*domain.Restaurant, error)
	// Deactivate soft-disables a restaurant.
	Deactivate(ctx context.Context, id string) (*domain.Restaurant, error)
}

// RestaurantHandlers groups the tenant management endpoints.
type RestaurantHandlers struct {
	svc RestaurantService
}

// NewRestaurantHandlers constructs RestaurantHandlers bound to the given service.
func NewRestaurantHandlers(svc RestaurantService) *RestaurantHandlers {
	return &RestaurantHandlers{svc: svc}
}

//
// DTOs
//

// CreateRestaurantRequest is the JSON payload for registering a restaurant.
type CreateRestaurantRequest struct {
	// Name is the display name (1-255 chars).
	Name string `json:"name" binding:"required,min=1,max=255" example:"The Spice Route"`
	// Slug optionally fixes the URL slug; derived from Name when empty.
	Slug string `json:"slug" example:"the-spice-route"`
	// LogoURL optionally points at the restaurant's logo.
	LogoURL string `json:"logo_url" example:"https://cdn.example.com/logo.png"`
	// Currency is an ISO 4217 code; INR when empty.
	Currency string `json:"currency" example:"INR"`
}

// UpdateRestaurantRequest is the JSON payload for partial restaurant updates.
type UpdateRestaurantRequest struct {
	Name     *string `json:"name" example:"The Spice Route"`
	Slug     *string `json:"slug" example:"spice-route"`
	LogoURL  *string `json:"logo_url"`
	Currency *string `json:"currency" example:"EUR"`
	IsActive *bool   `json:"is_active"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListRestaurantsResponse wraps a page of restaurants and pagination
// information.
type ListRestaurantsResponse struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
	Pagination  Pagination          `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// failRestaurant translates restaurant service errors into HTTP responses.
func failRestaurant(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRestaurantNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "restaurant not found")
	case errors.Is(err, services.ErrDuplicateSlug):
		fail(c, http.StatusConflict, ErrCodeConflict, "slug already in use")
	case errors.Is(err, services.ErrInvalidSlug):
		fail(c, http.StatusUnprocessableEntity, ErrCodeBadRequest, "name or slug must contain slug-safe characters")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

//
// Handlers
//

// CreateRestaurant godoc
// @ID          createRestaurant
// @Summary     Register a restaurant
// @Description Creates a restaurant tenant and returns the resource, including its slug.
// @Tags        Restaurants
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateRestaurantRequest  true  "Create restaurant payload"
//
// @Success     201  {object}  domain.Restaurant
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Slug already in use"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants [post]
func (h *RestaurantHandlers) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	r, err := h.svc.Create(c.Request.Context(), services.CreateRestaurantInput{
		Name:     req.Name,
		Slug:     req.Slug,
		LogoURL:  req.LogoURL,
		Currency: req.Currency,
	})
	if err != nil {
		failRestaurant(c, err)
		return
	}
	ok(c, http.StatusCreated, r)
}

// ListRestaurants godoc
// @ID          listRestaurants
// @Summary     List restaurants (paginated)
// @Description Returns a page of restaurants. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Restaurants
// @Produce     json
//
// @Param       If-None-Match     header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page              query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size         query   int     false "Items per page"               minimum(1) maximum(100) default(20)
// @Param       include_inactive  query   bool    false "Include deactivated tenants"  default(false)
// @Param       search            query   string  false "Filter by name substring"
//
// @Success     200  {object} handlers.ListRestaurantsResponse
// @Header      200  {string} ETag           "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /restaurants [get]
func (h *RestaurantHandlers) ListRestaurants(c *gin.Context) {
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)
	includeInactive := c.Query("include_inactive") == "true"
	search := c.Query("search")

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, isConcrete := h.svc.(*services.RestaurantService); isConcrete {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.RestaurantsStats(ctx, db, includeInactive)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"restaurants:%t:%d:%d"`, includeInactive, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.svc.ListPage(ctx, includeInactive, search, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListRestaurantsResponse{
		Restaurants: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetRestaurant godoc
// @ID          getRestaurant
// @Summary     Fetch a restaurant by ID
// @Tags        Restaurants
// @Produce     json
//
// @Param       id  path  string  true  "Restaurant ID (UUID)"  format(uuid)
//
// @Success     200  {object}  domain.Restaurant
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Restaurant not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/{id} [get]
func (h *RestaurantHandlers) GetRestaurant(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "restaurant id must be a UUID")
		return
	}
	r, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		failRestaurant(c, err)
		return
	}
	ok(c, http.StatusOK, r)
}

// GetRestaurantBySlug godoc
// @ID          getRestaurantBySlug
// @Summary     Fetch a restaurant by slug
// @Tags        Restaurants
// @Produce     json
//
// @Param       slug  path  string  true  "Restaurant slug"  example(the-spice-route)
//
// @Success     200  {object}  domain.Restaurant
// @Failure     404  {object}  handlers.ErrorResponse  "Restaurant not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/slug/{slug} [get]
func (h *RestaurantHandlers) GetRestaurantBySlug(c *gin.Context) {
	r, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		failRestaurant(c, err)
		return
	}
	ok(c, http.StatusOK, r)
}

// UpdateRestaurant godoc
// @ID          updateRestaurant
// @Summary     Update a restaurant
// @Description Applies partial changes; omitted fields are left untouched.
// @Tags        Restaurants
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       body  body  handlers.UpdateRestaurantRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.Restaurant
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Restaurant not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Slug already in use"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/{id} [patch]
func (h *RestaurantHandlers) UpdateRestaurant(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "restaurant id must be a UUID")
		return
	}
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	r, err := h.svc.Update(c.Request.Context(), id, services.UpdateRestaurantInput{
		Name:     req.Name,
		Slug:     req.Slug,
		LogoURL:  req.LogoURL,
		Currency: req.Currency,
		IsActive: req.IsActive,
	})
	if err != nil {
		failRestaurant(c, err)
		return
	}
	ok(c, http.StatusOK, r)
}

// DeactivateRestaurant godoc
// @ID          deactivateRestaurant
// @Summary     Deactivate a restaurant
// @Description Soft-disables the tenant. Existing sessions age out naturally; new
// @Description sessions stop because inactive restaurants' tables no longer resolve.
// @Tags        Restaurants
// @Produce     json
//
// @Param       id  path  string  true  "Restaurant ID (UUID)"  format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Restaurant not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /restaurants/{id} [delete]
func (h *RestaurantHandlers) DeactivateRestaurant(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "restaurant id must be a UUID")
		return
	}
	if _, err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		failRestaurant(c, err)
		return
	}
	noContent(c)
}
