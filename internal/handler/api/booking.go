package api

import (
	"errors"
	"net/http"

	"bistro-booking/internal/domain/reservation"
	reqdto "bistro-booking/internal/handler/dto/request"
	resdto "bistro-booking/internal/handler/dto/response"
	"bistro-booking/internal/handler/httperr"
	"bistro-booking/internal/pkg/errs"
	"bistro-booking/internal/usecase/commands"
	"bistro-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands    commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, reservationQueries queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands:    bookingCommands,
		reservationQueries: reservationQueries,
	}
}

// @Summary Submit booking
// @Description Submit a public booking request
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.SubmitBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.bookingCommands.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		var fieldErrs reservation.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			httperr.AbortWithFields(c, http.StatusUnprocessableEntity, err, "Validation failed", fieldErrs)
		case errors.Is(err, errs.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Booking service temporarily unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	response := resdto.FromSubmitResult(result, reservation.StatusPending.String())
	c.JSON(http.StatusCreated, response)
}

// @Summary Booking confirmation
// @Description Look up the public confirmation view for a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ConfirmationResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/{id}/confirmation [get]
func (h *BookingHandler) GetConfirmation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID")
		return
	}

	view, err := h.reservationQueries.GetConfirmation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrStoreUnavailable) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Booking service temporarily unavailable")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmationView(view))
}
