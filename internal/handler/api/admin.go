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

type AdminHandler struct {
	adminCommands      commands.AdminCommands
	reservationQueries queries.ReservationQueries
	statsQueries       queries.StatsQueries
}

func NewAdminHandler(
	adminCommands commands.AdminCommands,
	reservationQueries queries.ReservationQueries,
	statsQueries queries.StatsQueries,
) *AdminHandler {
	return &AdminHandler{
		adminCommands:      adminCommands,
		reservationQueries: reservationQueries,
		statsQueries:       statsQueries,
	}
}

// @Summary List reservations
// @Description List reservations with status filter, text search and paging
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" default(all)
// @Param search query string false "Name or email substring"
// @Param page query int false "1-based page" default(1)
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/reservations [get]
func (h *AdminHandler) List(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	if q.Status != "" && q.Status != "all" && !reservation.Status(q.Status).IsValid() {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, nil, "Unknown status filter")
		return
	}

	result, err := h.reservationQueries.List(c.Request.Context(), queries.ListParams{
		Status: q.Status,
		Search: q.Search,
		Page:   q.Page,
	})
	if err != nil {
		h.writeReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromListResult(result))
}

// @Summary Get reservation
// @Description Get a single reservation with internal notes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/reservations/{id} [get]
func (h *AdminHandler) GetByID(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Change reservation status
// @Description Apply a lifecycle action to a reservation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/reservations/{id}/status [patch]
func (h *AdminHandler) ChangeStatus(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req reqdto.ChangeStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	if err := h.adminCommands.ChangeStatus(c.Request.Context(), id, req.Status); err != nil {
		h.writeCommandError(c, err)
		return
	}

	h.respondWithRecord(c, id)
}

// @Summary Update reservation notes
// @Description Replace the internal notes on a reservation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateNotesRequest true "Notes"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id}/notes [patch]
func (h *AdminHandler) UpdateNotes(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateNotesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	if err := h.adminCommands.UpdateNotes(c.Request.Context(), id, req.Notes); err != nil {
		h.writeCommandError(c, err)
		return
	}

	h.respondWithRecord(c, id)
}

// @Summary Delete reservation
// @Description Permanently remove a reservation
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/reservations/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	if err := h.adminCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Dashboard stats
// @Description Headline counts for the reservation console
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Failure 401 {object} map[string]string
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsQueries.Dashboard(c.Request.Context())
	if err != nil {
		h.writeReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}

func (h *AdminHandler) reservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *AdminHandler) respondWithRecord(c *gin.Context, id uuid.UUID) {
	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *AdminHandler) writeReadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
	case errors.Is(err, errs.ErrStoreUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation store temporarily unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func (h *AdminHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
	case errors.Is(err, reservation.ErrUnknownStatus):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown status")
	case errors.Is(err, reservation.ErrIllegalTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Illegal status transition")
	case errors.Is(err, errs.ErrStaleReservation):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation was modified concurrently")
	case errors.Is(err, errs.ErrStoreUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation store temporarily unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
