//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"cleaning-scheduler/internal/domain/booking"
	"cleaning-scheduler/internal/domain/cleaner"
	"cleaning-scheduler/internal/handler/api"
	resdto "cleaning-scheduler/internal/handler/dto/response"
	"cleaning-scheduler/internal/usecase/commands"
	"cleaning-scheduler/internal/usecase/queries"
	"cleaning-scheduler/tests/common/builder"
	"cleaning-scheduler/tests/common/httptest"
	"cleaning-scheduler/tests/common/testutil"
	commandsmock "cleaning-scheduler/tests/mock/commands"
	queriesmock "cleaning-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.PUT("/bookings/:id", s.handler.UpdateBooking)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created with BookingResponse", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.DurationHours, response.DurationHours)
		s.Equal(returnView.CustomerName, response.CustomerName)
		s.Equal(returnView.CleanerIDs, response.CleanerIDs)
		s.Equal(returnView.VehicleID, response.VehicleID)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		missing := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: startDateTime (required)", mutate: testutil.Field("startDateTime", nil)},
			{name: "missing field: durationHours (required)", mutate: testutil.Field("durationHours", nil)},
			{name: "missing field: cleanerCount (required)", mutate: testutil.Field("cleanerCount", nil)},
			{name: "missing field: customerName (required)", mutate: testutil.Field("customerName", nil)},
		}

		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "past date", commandsError: booking.ErrPastDate, expectedStatus: http.StatusBadRequest},
			{name: "closing day", commandsError: booking.ErrNonWorkingDay, expectedStatus: http.StatusBadRequest},
			{name: "outside working hours", commandsError: booking.ErrOutsideWorkingHours, expectedStatus: http.StatusBadRequest},
			{name: "invalid duration", commandsError: booking.ErrInvalidDuration, expectedStatus: http.StatusBadRequest},
			{name: "invalid cleaner count", commandsError: booking.ErrInvalidCleanerCount, expectedStatus: http.StatusBadRequest},
			{name: "no cleaners available", commandsError: commands.ErrNoCleanersAvailable, expectedStatus: http.StatusConflict},
			{name: "no vehicle with capacity", commandsError: cleaner.ErrNoVehicleWithCapacity, expectedStatus: http.StatusConflict},
			{name: "persist-time conflict", commandsError: commands.ErrBookingConflict, expectedStatus: http.StatusConflict},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestUpdateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	bookingID := builder.NewBookingBuilder().ID
	url := "/bookings/" + bookingID.String()

	newStart := time.Date(2026, time.September, 8, 14, 0, 0, 0, time.UTC)
	reqBody := builder.NewBookingBuilder().WithStart(newStart).BuildUpdateRequestDTO()
	returnView := builder.NewBookingBuilder().WithID(bookingID).WithStart(newStart).BuildView()

	s.Run("success: returns 200 OK with the moved booking", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), bookingID, newStart).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.True(newStart.Equal(response.StartDateTime))
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/invalid-uuid", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 400 Bad Request on missing newStartDateTime", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("newStartDateTime", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "booking not found", commandsError: queries.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
			{name: "crew member busy", commandsError: commands.ErrInsufficientCleaners, expectedStatus: http.StatusConflict},
			{name: "persist-time conflict", commandsError: commands.ErrBookingConflict, expectedStatus: http.StatusConflict},
			{name: "new time on closing day", commandsError: booking.ErrNonWorkingDay, expectedStatus: http.StatusBadRequest},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), bookingID, newStart).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := builder.NewBookingBuilder().ID
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().WithID(bookingID).BuildView()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
