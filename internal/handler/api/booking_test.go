//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"adspace-backend/internal/handler/api"
	resdto "adspace-backend/internal/handler/dto/response"
	"adspace-backend/internal/pkg/errs"
	"adspace-backend/internal/usecase"
	"adspace-backend/internal/usecase/queries"
	"adspace-backend/tests/common/builder"
	"adspace-backend/tests/common/httptest"
	queriesmock "adspace-backend/tests/mock/queries"
	usecasemock "adspace-backend/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockBooking   *usecasemock.MockBookingCoordinator
	mockResources *queriesmock.MockResourceQueries
	handler       *api.BookingHandler
	tenantID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingCoordinator(s.mockCtrl)
	s.mockResources = queriesmock.NewMockResourceQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBooking, s.mockResources)
	s.tenantID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("tenant_id", s.tenantID)
		c.Next()
	}

	// Setup routes
	s.router.POST("/reservations", authMiddleware, s.handler.CreateReservation)
	s.router.DELETE("/reservations/:id", authMiddleware, s.handler.CancelReservation)
	s.router.GET("/resources/:id", authMiddleware, s.handler.GetResource)
	s.router.GET("/resources/:id/reservations", authMiddleware, s.handler.ListResourceReservations)
	s.router.POST("/resources/:id/maintenance", authMiddleware, s.handler.ToggleMaintenance)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockBooking.EXPECT().CreateReservation(gomock.Any(), s.tenantID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(reqBody.StartDate, response.StartDate)
		s.Equal(reqBody.EndDate, response.EndDate)
	})

	s.Run("success: accepts RFC3339 timestamps", func() {
		body := reqBody
		body.StartDate = "2026-09-01T10:30:00Z"
		body.EndDate = "2026-09-07T23:00:00Z"

		s.mockBooking.EXPECT().CreateReservation(gomock.Any(), s.tenantID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"resource_id": "not-a-uuid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request on unparseable date", func() {
		body := reqBody
		body.StartDate = "September 1st"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			bookingError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid date range",
				bookingError:   usecase.ErrInvalidDateRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid date range",
			},
			{
				name:           "marked invalid date range carries the cause",
				bookingError:   errs.Mark(errors.New("start after end"), usecase.ErrInvalidDateRange),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid date range",
			},
			{
				name:           "resource not found",
				bookingError:   usecase.ErrResourceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Resource not found",
			},
			{
				name:           "overlapping reservation",
				bookingError:   usecase.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "overlap",
			},
			{
				name:           "internal server error",
				bookingError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().CreateReservation(gomock.Any(), s.tenantID, gomock.Any()).
					Return(nil, tc.bookingError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockBooking.EXPECT().CancelReservation(gomock.Any(), s.tenantID, reservationID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			bookingError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				bookingError:   usecase.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "internal server error",
				bookingError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().CancelReservation(gomock.Any(), s.tenantID, reservationID).
					Return(tc.bookingError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetResource
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetResource() {
	resourceID := uuid.New()
	url := "/resources/" + resourceID.String()

	returnView := builder.NewResourceBuilder().
		With(func(b *builder.ResourceBuilder) { b.ID = resourceID }).
		BuildView()

	s.Run("success: returns 200 OK with derived status", func() {
		s.mockResources.EXPECT().GetByID(gomock.Any(), s.tenantID, resourceID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resourceID, response.ID)
		s.Equal("available", response.Status)
		s.True(response.Available)
	})

	s.Run("success: maintenance status", func() {
		view := builder.NewResourceBuilder().
			With(func(b *builder.ResourceBuilder) {
				b.ID = resourceID
				b.Available = false
			}).
			BuildView()

		s.mockResources.EXPECT().GetByID(gomock.Any(), s.tenantID, resourceID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("maintenance", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource ID format")
	})

	s.Run("error: 500 on query error", func() {
		s.mockResources.EXPECT().GetByID(gomock.Any(), s.tenantID, resourceID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListResourceReservations
// ================================================================================

func (s *BookingHandlerTestSuite) TestListResourceReservations() {
	resourceID := uuid.New()
	url := "/resources/" + resourceID.String() + "/reservations"

	views := []*queries.ReservationView{}

	s.Run("success: returns reservation list", func() {
		items := []*queries.ReservationView{
			builder.NewReservationBuilder().BuildView(),
			builder.NewReservationBuilder().BuildView(),
		}
		s.mockBooking.EXPECT().ListReservationsForResource(gomock.Any(), s.tenantID, resourceID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty list for resource with no reservations", func() {
		s.mockBooking.EXPECT().ListReservationsForResource(gomock.Any(), s.tenantID, resourceID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/invalid-uuid/reservations", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource ID format")
	})

	s.Run("error: 500 on query error", func() {
		s.mockBooking.EXPECT().ListReservationsForResource(gomock.Any(), s.tenantID, resourceID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestToggleMaintenance
// ================================================================================

func (s *BookingHandlerTestSuite) TestToggleMaintenance() {
	resourceID := uuid.New()
	url := "/resources/" + resourceID.String() + "/maintenance"

	returnView := builder.NewResourceBuilder().
		With(func(b *builder.ResourceBuilder) {
			b.ID = resourceID
			b.Available = false
		}).
		BuildView()

	s.Run("success: returns 200 OK with updated state", func() {
		s.mockBooking.EXPECT().ToggleMaintenance(gomock.Any(), s.tenantID, resourceID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resourceID, response.ID)
		s.Equal("maintenance", response.Status)
		s.False(response.Available)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources/invalid-uuid/maintenance", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			bookingError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "resource not found",
				bookingError:   usecase.ErrResourceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Resource not found",
			},
			{
				name:           "resource currently booked",
				bookingError:   usecase.ErrResourceBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "active reservation",
			},
			{
				name:           "internal server error",
				bookingError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().ToggleMaintenance(gomock.Any(), s.tenantID, resourceID).
					Return(nil, tc.bookingError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
