package reservation

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
	rg.POST("/booking", h.Book)
	rg.DELETE("/booking/:reservationId", h.Cancel)
	rg.GET("/booking/:reservationId", h.Details)
}

func (h *Handler) Book(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Book(c.Request.Context(), req.StudentID, req.ReservationTime)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": NewReservationView(*res)})
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("reservationId")

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservationId": id, "status": "cancelled"})
}

func (h *Handler) Details(c *gin.Context) {
	id := c.Param("reservationId")

	details, err := h.service.Details(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": details})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.BadRequest(c, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrInvalidSlotTime):
		response.BadRequest(c, "INVALID_SLOT_TIME", "Reservation time must be hour-aligned and in the future")
	case errors.Is(err, ErrSlotNoLongerAvailable):
		response.Conflict(c, "SLOT_NO_LONGER_AVAILABLE", "The slot is no longer available for booking")
	case errors.Is(err, ErrReservationNotFound):
		response.NotFound(c, "RESERVATION_NOT_FOUND", "Reservation not found")
	case errors.Is(err, ErrReservationCreationFailed):
		response.Error(c, http.StatusInternalServerError, "RESERVATION_CREATION_FAILED", "Could not allocate a reservation code")
	default:
		response.Internal(c, "Failed to process reservation request")
	}
}
