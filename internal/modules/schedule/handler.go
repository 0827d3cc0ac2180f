package schedule

import (
	"errors"
	"net/http"

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
	rg.POST("/bookable-time-slots", h.BookableSlots)
}

func (h *Handler) BookableSlots(c *gin.Context) {
	var req BookableRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	slots, err := h.service.BookableSlots(c.Request.Context(), req.StudentID, req.TimeBegin, req.TimeEnd)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.BadRequest(c, "VALIDATION_ERROR", "Invalid student or time range")
			return
		}
		response.Internal(c, "Failed to compute bookable slots")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timeSlots": NewBookableSlotViews(slots)})
}
