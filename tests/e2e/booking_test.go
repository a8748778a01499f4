//go:build e2e

package e2e

import (
	"net/http"
	"testing"

	resdto "bistro-booking/internal/handler/dto/response"
	"bistro-booking/internal/pkg/config"
	"bistro-booking/tests/common/authtest"
	"bistro-booking/tests/common/builder"
	"bistro-booking/tests/common/dbtest"
	"bistro-booking/tests/common/httptest"
	"bistro-booking/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type BookingFlowTestSuite struct {
	suite.Suite
	pool       *pgxpool.Pool
	router     *gin.Engine
	cfg        config.Config
	adminToken string
	staffToken string
}

func (s *BookingFlowTestSuite) SetupSuite() {
	s.pool, s.router, s.cfg = setupE2EEnvironment(s.T())

	jwtHelper := authtest.NewJWTHelper(s.cfg.JWT)
	s.adminToken = jwtHelper.GenerateToken(s.T(), uuid.New(), "admin")
	s.staffToken = jwtHelper.GenerateToken(s.T(), uuid.New(), "staff")
}

func (s *BookingFlowTestSuite) SetupTest() {
	dbtest.TruncateReservations(s.T(), s.pool)
}

func TestBookingFlowSuite(t *testing.T) {
	suite.Run(t, new(BookingFlowTestSuite))
}

func (s *BookingFlowTestSuite) TestPublicBookingFlow() {
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", reqBody, "")

	var submitted resdto.SubmitBookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &submitted)
	s.Equal("pending", submitted.Status)
	s.Contains(submitted.ConfirmationCode, "BKG-")

	s.Equal("pending", dbtest.ReservationStatus(s.T(), s.pool, submitted.ID))

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+submitted.ID.String()+"/confirmation", nil, "")

	var confirmation resdto.ConfirmationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &confirmation)
	s.Equal(submitted.ConfirmationCode, confirmation.Reference)
	s.Equal(reqBody.Name, confirmation.Name)
	s.Equal("pending", confirmation.Status)
}

func (s *BookingFlowTestSuite) TestValidationGateReportsAllFields() {
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	requestMap := testutil.DtoMap(s.T(), reqBody,
		testutil.Field("name", "X"),
		testutil.Field("email", "not-an-email"),
		testutil.Field("date", "2020-01-01"),
		testutil.Field("time", "03:15"),
	)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", requestMap, "")

	fields := httptest.AssertValidationResponse(s.T(), rec)
	s.ElementsMatch([]string{"name", "email", "date", "time"}, fields)
}

func (s *BookingFlowTestSuite) TestConfirmationFallsBackToPendingView() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+uuid.NewString()+"/confirmation", nil, "")

	var confirmation resdto.ConfirmationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &confirmation)
	s.Equal("pending", confirmation.Status)
	s.Contains(confirmation.Reference, "BKG-")
	s.Empty(confirmation.Name)
}

func (s *BookingFlowTestSuite) TestAdminReservationLifecycle() {
	id := dbtest.InsertReservation(s.T(), s.pool, builder.NewReservationBuilder())
	url := "/api/admin/reservations/" + id.String()

	s.Run("list shows the pending record", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations?status=pending", nil, s.adminToken)

		var list resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		s.Equal(int64(1), list.Pagination.Total)
		s.Equal(id, list.Reservations[0].ID)
	})

	s.Run("confirming persists and enqueues a notification", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"/status", gin.H{"status": "confirmed"}, s.adminToken)

		var updated resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
		s.Equal("confirmed", updated.Status)
		s.Equal(int64(1), dbtest.CountNotificationJobs(s.T(), s.pool, "reservation_confirmed"))
	})

	s.Run("re-applying the same status is accepted without effect", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"/status", gin.H{"status": "confirmed"}, s.adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(int64(1), dbtest.CountNotificationJobs(s.T(), s.pool, "reservation_confirmed"))
	})

	s.Run("completing a confirmed reservation", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"/status", gin.H{"status": "completed"}, s.adminToken)

		var updated resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
		s.Equal("completed", updated.Status)
	})

	s.Run("cancelling a completed reservation is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"/status", gin.H{"status": "cancelled"}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Illegal status transition")
		s.Equal("completed", dbtest.ReservationStatus(s.T(), s.pool, id))
	})

	s.Run("notes update round trips", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"/notes", gin.H{"notes": "VIP table"}, s.adminToken)

		var updated resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
		s.NotNil(updated.Notes)
		s.Equal("VIP table", *updated.Notes)
	})

	s.Run("delete removes the record for good", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.adminToken)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *BookingFlowTestSuite) TestAdminStats() {
	dbtest.InsertReservation(s.T(), s.pool, builder.NewRandomReservationBuilder())
	dbtest.InsertReservation(s.T(), s.pool, builder.NewRandomReservationBuilder())

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/stats", nil, s.adminToken)

	var stats resdto.StatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &stats)
	s.Equal(int64(2), stats.Pending)
}

func (s *BookingFlowTestSuite) TestAdminGate() {
	s.Run("missing token is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("non-admin role is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations", nil, s.staffToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("expired token is rejected", func() {
		expired := authtest.NewJWTHelper(s.cfg.JWT).CreateExpiredToken(s.T(), uuid.New(), "admin")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations", nil, expired)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
