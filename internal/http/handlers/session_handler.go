// Table session HTTP handlers.
//
// This file exposes REST endpoints for the session lifecycle:
//   - POST   /sessions                                  (create or join via QR token)
//   - GET    /sessions/{sessionToken}                   (fetch, slides expiry)
//   - POST   /sessions/{sessionToken}/participants      (idempotent participant add)
//   - PATCH  /sessions/{sessionToken}/mode              (switch ordering mode)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Lifecycle errors map onto a
// three-way split clients can branch on: 404 for tokens that never existed,
// 410 for sessions that ended, 422 for semantically invalid input.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tabletap/go-table-backend/internal/domain"
	"github.com/tabletap/go-table-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// SessionService defines the session lifecycle operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type SessionService interface {
	// CreateOrJoin resolves a QR token and creates or joins the table's session.
	CreateOrJoin(ctx context.Context, qrToken, mode string) (*services.JoinResult, error)
	// GetByToken fetches a live session by its token, sliding its expiry.
	GetByToken(ctx context.Context, sessionToken string) (*services.SessionView, error)
	// AddParticipant registers a diner name idempotently.
	AddParticipant(ctx context.Context, sessionToken, name string) (*services.ParticipantResult, error)
	// UpdateMode switches the ordering mode of a live session.
	UpdateMode(ctx context.Context, sessionToken, mode string) (*domain.Session, error)
}

// SessionHandlers groups the session lifecycle endpoints.
type SessionHandlers struct {
	svc SessionService
}

// NewSessionHandlers constructs SessionHandlers bound to the given service.
func NewSessionHandlers(svc SessionService) *SessionHandlers {
	return &SessionHandlers{svc: svc}
}

//
// DTOs
//

// CreateSessionRequest is the JSON payload for creating or joining a session.
type CreateSessionRequest struct {
	// QRToken identifies the scanned table.
	QRToken string `json:"qr_token" binding:"required" example:"9f8a7b6c5d4e3f2a1b0c9d8e7f6a5b4c"`
	// Mode optionally fixes the ordering mode at creation; collective when empty.
	Mode string `json:"mode" example:"collective"`
}

// AddParticipantRequest is the JSON payload for registering a diner.
type AddParticipantRequest struct {
	// Name is the diner's display name (1-120 chars after trimming).
	Name string `json:"name" binding:"required" example:"Arnav"`
}

// UpdateModeRequest is the JSON payload for switching the ordering mode.
type UpdateModeRequest struct {
	// Mode is either "collective" or "individual".
	Mode string `json:"mode" binding:"required" example:"individual"`
}

//
// Helpers
//

// failSession translates service lifecycle errors into the stable HTTP
// taxonomy shared by every token-keyed endpoint.
func failSession(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
	case errors.Is(err, services.ErrSessionExpired):
		fail(c, http.StatusGone, ErrCodeGone, "session expired")
	case errors.Is(err, services.ErrSessionNotActive):
		fail(c, http.StatusGone, ErrCodeGone, "session no longer active")
	case errors.Is(err, services.ErrInvalidMode):
		fail(c, http.StatusUnprocessableEntity, ErrCodeBadRequest, "mode must be collective or individual")
	case errors.Is(err, services.ErrEmptyParticipantName):
		fail(c, http.StatusUnprocessableEntity, ErrCodeBadRequest, "participant name must not be empty")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

//
// Handlers
//

// CreateOrJoinSession godoc
// @ID          createOrJoinSession
// @Summary     Create or join a table session
// @Description Resolves the scanned QR token to a table and either joins the table's
// @Description current session (200) or creates a fresh one (201). The response flags
// @Description which case occurred via is_new.
// @Tags        Sessions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateSessionRequest  true  "QR token and optional mode"
//
// @Success     200  {object}  services.JoinResult  "Joined the existing session"
// @Success     201  {object}  services.JoinResult  "Created a new session"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown or inactive table"
// @Failure     422  {object}  handlers.ErrorResponse  "Invalid mode"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sessions [post]
func (h *SessionHandlers) CreateOrJoinSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.QRToken) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "qr_token required")
		return
	}

	res, err := h.svc.CreateOrJoin(c.Request.Context(), req.QRToken, strings.TrimSpace(req.Mode))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableNotFound), errors.Is(err, services.ErrRestaurantNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "table not found")
		case errors.Is(err, services.ErrInvalidMode):
			fail(c, http.StatusUnprocessableEntity, ErrCodeBadRequest, "mode must be collective or individual")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	status := http.StatusOK
	if res.IsNew {
		status = http.StatusCreated
	}
	ok(c, status, res)
}

// GetSession godoc
// @ID          getSession
// @Summary     Fetch a session by token
// @Description Returns the session with its table and restaurant projections. Every
// @Description successful fetch counts as activity and slides the expiry window.
// @Tags        Sessions
// @Produce     json
//
// @Param       sessionToken  path  string  true  "Session token (48 hex chars)"
//
// @Success     200  {object}  services.SessionView
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown token"
// @Failure     410  {object}  handlers.ErrorResponse  "Session expired or ended"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sessions/{sessionToken} [get]
func (h *SessionHandlers) GetSession(c *gin.Context) {
	view, err := h.svc.GetByToken(c.Request.Context(), c.Param("sessionToken"))
	if err != nil {
		failSession(c, err)
		return
	}
	ok(c, http.StatusOK, view)
}

// AddParticipant godoc
// @ID          addParticipant
// @Summary     Register a diner in a session
// @Description Adds a participant name to the session. Names are compared
// @Description case-insensitively; re-adding an existing name is a successful no-op
// @Description flagged by already_exists. Either way the call counts as activity.
// @Tags        Sessions
// @Accept      json
// @Produce     json
//
// @Param       sessionToken  path  string  true  "Session token (48 hex chars)"
// @Param       body          body  handlers.AddParticipantRequest  true  "Diner name"
//
// @Success     200  {object}  services.ParticipantResult
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown token"
// @Failure     410  {object}  handlers.ErrorResponse  "Session expired or ended"
// @Failure     422  {object}  handlers.ErrorResponse  "Empty name"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sessions/{sessionToken}/participants [post]
func (h *SessionHandlers) AddParticipant(c *gin.Context) {
	var req AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if len(strings.TrimSpace(req.Name)) > 120 {
		fail(c, http.StatusUnprocessableEntity, ErrCodeBadRequest, "participant name too long (max 120 chars)")
		return
	}

	res, err := h.svc.AddParticipant(c.Request.Context(), c.Param("sessionToken"), req.Name)
	if err != nil {
		failSession(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// UpdateSessionMode godoc
// @ID          updateSessionMode
// @Summary     Switch the ordering mode
// @Description Sets the session mode to collective or individual. The switch is freely
// @Description reversible while the session is active and counts as activity.
// @Tags        Sessions
// @Accept      json
// @Produce     json
//
// @Param       sessionToken  path  string  true  "Session token (48 hex chars)"
// @Param       body          body  handlers.UpdateModeRequest  true  "New mode"
//
// @Success     200  {object}  domain.Session
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown token"
// @Failure     410  {object}  handlers.ErrorResponse  "Session expired or ended"
// @Failure     422  {object}  handlers.ErrorResponse  "Invalid mode"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sessions/{sessionToken}/mode [patch]
func (h *SessionHandlers) UpdateSessionMode(c *gin.Context) {
	var req UpdateModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	sess, err := h.svc.UpdateMode(c.Request.Context(), c.Param("sessionToken"), strings.TrimSpace(req.Mode))
	if err != nil {
		failSession(c, err)
		return
	}
	ok(c, http.StatusOK, sess)
}
