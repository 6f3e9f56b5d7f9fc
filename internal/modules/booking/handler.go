package booking

import (
	"errors"
	"net/http"
	"strconv"

	"gymmaster/internal/pkg/response"
	"gymmaster/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	validator.Register()
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "Invalid request body")
		return
	}

	res, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": res})
}

func (h *Handler) ListBookings(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err, "Invalid filter")
		return
	}

	rows, err := h.service.ListBookings(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": toRowResponses(rows),
		"count":    len(rows),
	})
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "Invalid request body")
		return
	}

	b, err := h.service.UpdateBookingStatus(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking": gin.H{
			"booking_id": b.ID,
			"member_id":  b.MemberID,
			"class_id":   b.ClassID,
			"status":     b.Status,
		},
	})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Record deleted successfully")
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func bindError(c *gin.Context, err error, message string) {
	if validator.HasTag(err, validator.TagBookingStatus) {
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be one of: Booked, Cancelled, Attended")
		return
	}
	if fields := validator.Fields(err); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", message, fields)
		return
	}
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", message)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be one of: Booked, Cancelled, Attended")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrReferenceNotFound):
		response.Error(c, http.StatusUnprocessableEntity, "REFERENCE_NOT_FOUND", "Member or class does not exist")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Database operation failed")
	}
}
