package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/interfaces/http/middleware"
	"tutorlink.backend/internal/interfaces/http/response"
	"tutorlink.backend/internal/usecases"
)

// ScheduleHandler handles calendar and booking endpoints
type ScheduleHandler struct {
	scheduleUsecase *usecases.ScheduleUsecase
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleUsecase *usecases.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
	}
}

// PublishSlot publishes a slot on the acting tutor's calendar
// POST /api/v1/schedule
func (h *ScheduleHandler) PublishSlot(c *gin.Context) {
	tutorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	slot, err := h.scheduleUsecase.PublishSlot(c.Request.Context(), tutorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, slot)
}

// BookSlot books an available slot for the acting student
// POST /api/v1/schedule/:id/book
func (h *ScheduleHandler) BookSlot(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid slot ID"))
		return
	}

	slot, err := h.scheduleUsecase.BookSlot(c.Request.Context(), studentID, slotID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, slot)
}

// CancelSlot cancels a slot
// POST /api/v1/schedule/:id/cancel
func (h *ScheduleHandler) CancelSlot(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid slot ID"))
		return
	}

	if err := h.scheduleUsecase.CancelSlot(c.Request.Context(), actorID, slotID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Slot cancelled"})
}

// MySchedule lists the acting tutor's slots in a time range
// GET /api/v1/schedule
func (h *ScheduleHandler) MySchedule(c *gin.Context) {
	tutorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	from := time.Now()
	to := from.AddDate(0, 1, 0)
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid from timestamp"))
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid to timestamp"))
			return
		}
		to = parsed
	}

	slots, err := h.scheduleUsecase.MySchedule(c.Request.Context(), tutorID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

// MyBookings lists the acting student's booked slots
// GET /api/v1/schedule/bookings
func (h *ScheduleHandler) MyBookings(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	slots, err := h.scheduleUsecase.MyBookings(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}
