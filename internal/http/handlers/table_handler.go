// Table HTTP handlers.
//
// This file exposes REST endpoints for managing a restaurant's tables:
//   - POST   /restaurants/{id}/tables               (create)
//   - GET    /restaurants/{id}/tables               (list)
//   - GET    /restaurants/{id}/tables/{tableId}     (fetch)
//   - PATCH  /restaurants/{id}/tables/{tableId}     (update)
//   - DELETE /restaurants/{id}/tables/{tableId}     (delete)
//
// The QR token returned on creation is what gets printed on the physical
// table card; scanning it drives the session creation flow.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tabletap/go-table-backend/internal/domain"
	"github.com/tabletap/go-table-backend/internal/services"
)

// TableService defines table management operations consumed by HTTP handlers.
type TableService interface {
	// Create adds a table, allocating a QR token when absent.
	Create(ctx context.Context, restaurantID string, in services.CreateTableInput) (*domain.Table, error)
	// List returns a restaurant's tables.
	List(ctx context.Context, restaurantID string, includeInactive bool) ([]domain.Table, error)
	// Get fetches one table.
	Get(ctx context.Context, restaurantID, tableID string) (*domain.Table, error)
	// Update applies partial changes to a table.
	Update(ctx context.Context, restaurantID, tableID string, in services.UpdateTableInput) (*domain.Table, error)
	// Delete removes a table.
	Delete(ctx context.Context, restaurantID, tableID string) error
}

// TableHandlers groups the table management endpoints.
type TableHandlers struct {
	svc TableService
}

// NewTableHandlers constructs TableHandlers bound to the given service.
func NewTableHandlers(svc TableService) *TableHandlers {
	return &TableHandlers{svc: svc}
}

// CreateTableRequest is the JSON payload for adding a table.
type CreateTableRequest struct {
	// TableNumber labels the physical table; unique per restaurant.
	TableNumber string `json:"table_number" binding:"required" example:"7"`
	// Capacity is the seat count; 4 when omitted.
	Capacity int `json:"capacity" example:"4"`
	// QRToken optionally fixes the token; allocated when empty.
	QRToken string `json:"qr_token"`
}

// UpdateTableRequest is the JSON payload for partial table updates.
type UpdateTableRequest struct {
	TableNumber *string `json:"table_number"`
	Capacity    *int    `json:"capacity"`
	QRToken     *string `json:"qr_token"`
	IsActive    *bool   `json:"is_active"`
}

// failTable translates table service errors into HTTP responses.
func failTable(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRestaurantNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "restaurant not found")
	case errors.Is(err, services.ErrTableNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "table not found")
	case errors.Is(err, services.ErrDuplicateTableNumber):
		fail(c, http.StatusConflict, ErrCodeConflict, "table number already in use")
	case errors.Is(err, services.ErrDuplicateQRToken):
		fail(c, http.StatusConflict, ErrCodeConflict, "qr token already in use")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

// restaurantID validates and returns the :id path parameter, failing the
// request when it is not a UUID.
func restaurantID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "restaurant id must be a UUID")
		return "", false
	}
	return id, true
}

// CreateTable godoc
// @ID          createTable
// @Summary     Add a table to a restaurant
// @Tags        Tables
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       body  body  handlers.CreateTableRequest  true  "Create table payload"
//
// @Success     201  {object}  domain.Table
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Restaurant not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Table number or QR token in use"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/{id}/tables [post]
func (h *TableHandlers) CreateTable(c *gin.Context) {
	rid, okID := restaurantID(c)
	if !okID {
		return
	}
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	t, err := h.svc.Create(c.Request.Context(), rid, services.CreateTableInput{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		QRToken:     req.QRToken,
	})
	if err != nil {
		failTable(c, err)
		return
	}
	ok(c, http.StatusCreated, t)
}

// ListTables godoc
// @ID          listTables
// @Summary     List a restaurant's tables
// @Tags        Tables
// @Produce     json
//
// @Param       id                path   string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       include_inactive  query  bool    false "Include disabled tables" default(false)
//
// @Success     200  {array}   domain.Table
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Restaurant not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/{id}/tables [get]
func (h *TableHandlers) ListTables(c *gin.Context) {
	rid, okID := restaurantID(c)
	if !okID {
		return
	}
	items, err := h.svc.List(c.Request.Context(), rid, c.Query("include_inactive") == "true")
	if err != nil {
		failTable(c, err)
		return
	}
	if items == nil {
		items = []domain.Table{}
	}
	ok(c, http.StatusOK, items)
}

// GetTable godoc
// @ID          getTable
// @Summary     Fetch one table
// @Tags        Tables
// @Produce     json
//
// @Param       id       path  string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       tableId  path  string  true  "Table ID (UUID)"       format(uuid)
//
// @Success     200  {object}  domain.Table
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Table not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/{id}/tables/{tableId} [get]
func (h *TableHandlers) GetTable(c *gin.Context) {
	rid, okID := restaurantID(c)
	if !okID {
		return
	}
	t, err := h.svc.Get(c.Request.Context(), rid, c.Param("tableId"))
	if err != nil {
		failTable(c, err)
		return
	}
	ok(c, http.StatusOK, t)
}

// UpdateTable godoc
// @ID          updateTable
// @Summary     Update a table
// @Tags        Tables
// @Accept      json
// @Produce     json
//
// @Param       id       path  string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       tableId  path  string  true  "Table ID (UUID)"       format(uuid)
// @Param       body     body  handlers.UpdateTableRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.Table
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Table not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Table number or QR token in use"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /restaurants/{id}/tables/{tableId} [patch]
func (h *TableHandlers) UpdateTable(c *gin.Context) {
	rid, okID := restaurantID(c)
	if !okID {
		return
	}
	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	t, err := h.svc.Update(c.Request.Context(), rid, c.Param("tableId"), services.UpdateTableInput{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		QRToken:     req.QRToken,
		IsActive:    req.IsActive,
	})
	if err != nil {
		failTable(c, err)
		return
	}
	ok(c, http.StatusOK, t)
}

// DeleteTable godoc
// @ID          deleteTable
// @Summary     Delete a table
// @Tags        Tables
// @Produce     json
//
// @Param       id       path  string  true  "Restaurant ID (UUID)"  format(uuid)
// @Param       tableId  path  string  true  "Table ID (UUID)"       format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Table not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /restaurants/{id}/tables/{tableId} [delete]
func (h *TableHandlers) DeleteTable(c *gin.Context) {
	rid, okID := restaurantID(c)
	if !okID {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), rid, c.Param("tableId")); err != nil {
		failTable(c, err)
		return
	}
	noContent(c)
}
