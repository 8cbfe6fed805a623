package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/infrastructure/realtime"
	"tutorlink.backend/internal/interfaces/http/middleware"
	"tutorlink.backend/internal/interfaces/http/response"
	"tutorlink.backend/internal/usecases"
)

// AdminHandler handles moderation endpoints
type AdminHandler struct {
	moderationUsecase *usecases.ModerationUsecase
	notifier          *realtime.Notifier
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(moderationUsecase *usecases.ModerationUsecase, notifier *realtime.Notifier) *AdminHandler {
	return &AdminHandler{
		moderationUsecase: moderationUsecase,
		notifier:          notifier,
	}
}

// ListUsers lists users with their resolved verification status
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	search := c.Query("search")
	role := entities.UserRole(c.Query("role"))

	users, err := h.moderationUsecase.ListUsers(c.Request.Context(), adminID, search, role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// ApproveUser approves a tutor or institution
// POST /api/v1/admin/users/:id/approve
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	h.moderate(c, h.moderationUsecase.ApproveUser)
}

// RejectUser rejects a tutor or institution
// POST /api/v1/admin/users/:id/reject
func (h *AdminHandler) RejectUser(c *gin.Context) {
	h.moderate(c, h.moderationUsecase.RejectUser)
}

// DeleteUser soft deletes a user account
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	if err := h.moderationUsecase.DeleteUser(c.Request.Context(), adminID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}

// GetUserStatus resolves one user's verification status
// GET /api/v1/admin/users/:id/status
func (h *AdminHandler) GetUserStatus(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	status, err := h.moderationUsecase.ResolveUserStatus(c.Request.Context(), adminID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"userId": userID,
		"status": status,
	})
}

// GetStats returns dashboard counters
// GET /api/v1/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.moderationUsecase.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// Events streams moderation events to the admin dashboard over SSE
// GET /api/v1/admin/events
func (h *AdminHandler) Events(c *gin.Context) {
	if h.notifier == nil {
		response.Error(c, domainerrors.NewAppError(http.StatusServiceUnavailable, domainerrors.CodeInternalError, "Event stream not available", nil))
		return
	}

	events := h.notifier.SubscribeProfileEvents(c.Request.Context())

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		event, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent("profile", event)
		return true
	})
}

func (h *AdminHandler) moderate(c *gin.Context, action func(ctx context.Context, adminID, userID uuid.UUID) (*entities.ModerationResult, error)) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	result, err := action(c.Request.Context(), adminID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
