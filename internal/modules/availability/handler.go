package availability

import (
	"errors"
	"net/http"

	"flightsched/internal/domain"
	"flightsched/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/time-slot-view-by-participant-and-time-range", h.SlotsByParticipant)
	rg.POST("/time-slot-view-by-type-and-time-range", h.SlotsByType)
	rg.POST("/make-time-slot-available", h.MakeAvailable)
	rg.PUT("/make-time-slot-unavailable", h.MakeUnavailable)
}

func (h *Handler) SlotsByParticipant(c *gin.Context) {
	var req ParticipantRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	slots, err := h.service.SlotsByParticipant(c.Request.Context(),
		req.ParticipantID, domain.ParticipantType(req.ParticipantType), req.TimeBegin, req.TimeEnd)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timeSlots": NewSlotViews(slots)})
}

func (h *Handler) SlotsByType(c *gin.Context) {
	var req TypeRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	slots, err := h.service.AvailableSlotsByType(c.Request.Context(),
		domain.ParticipantType(req.ParticipantType), req.TimeBegin, req.TimeEnd)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timeSlots": NewSlotViews(slots)})
}

func (h *Handler) MakeAvailable(c *gin.Context) {
	var req MakeAvailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	slot, err := h.service.SetAvailable(c.Request.Context(),
		req.ParticipantID, domain.ParticipantType(req.ParticipantType), req.StartTime)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"timeSlot": NewSlotView(*slot)})
}

func (h *Handler) MakeUnavailable(c *gin.Context) {
	var req MakeUnavailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	slot, err := h.service.SetUnavailable(c.Request.Context(), req.TimeSlotID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timeSlot": NewSlotView(*slot)})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.BadRequest(c, "VALIDATION_ERROR", "Invalid participant or time range")
	case errors.Is(err, ErrInvalidSlotTime):
		response.BadRequest(c, "INVALID_SLOT_TIME", "Start time must be hour-aligned and in the future")
	case errors.Is(err, ErrSlotNotFound):
		response.NotFound(c, "SLOT_NOT_FOUND", "Time slot not found")
	case errors.Is(err, ErrInvalidTransition):
		response.Conflict(c, "INVALID_TRANSITION", "Slot state does not allow this change")
	default:
		response.Internal(c, "Failed to process time slot request")
	}
}
