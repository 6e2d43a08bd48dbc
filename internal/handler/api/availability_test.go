//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"cleaning-scheduler/internal/domain/booking"
	"cleaning-scheduler/internal/handler/api"
	resdto "cleaning-scheduler/internal/handler/dto/response"
	"cleaning-scheduler/internal/usecase/queries"
	"cleaning-scheduler/tests/common/httptest"
	queriesmock "cleaning-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/availability", s.handler.GetDayAvailability)
	s.router.GET("/availability/slot", s.handler.GetSlotAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func cleanerView(name string) queries.CleanerView {
	return queries.CleanerView{
		CleanerID:   uuid.New(),
		CleanerName: name,
		VehicleID:   uuid.New(),
		VehicleName: "Vehicle-1",
	}
}

// ================================================================================
// TestGetDayAvailability
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestGetDayAvailability() {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	url := "/availability?date=2026-09-07"

	s.Run("success: renders windows as wall-clock times", func() {
		views := []queries.CleanerAvailabilityView{
			{
				CleanerID:   uuid.New(),
				CleanerName: "Cleaner-1-1",
				VehicleID:   uuid.New(),
				VehicleName: "Vehicle-1",
				Windows: []queries.TimeWindowView{
					{Start: date.Add(8 * time.Hour), End: date.Add(10 * time.Hour)},
					{Start: date.Add(12*time.Hour + 30*time.Minute), End: date.Add(22 * time.Hour)},
				},
			},
		}
		s.mockQueries.EXPECT().DayAvailability(gomock.Any(), date).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.CleanerAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Cleaner-1-1", response[0].CleanerName)
		s.Require().Len(response[0].AvailableWindows, 2)
		s.Equal("08:00", response[0].AvailableWindows[0].Start)
		s.Equal("10:00", response[0].AvailableWindows[0].End)
		s.Equal("12:30", response[0].AvailableWindows[1].Start)
	})

	s.Run("success: closed day renders an empty array", func() {
		s.mockQueries.EXPECT().DayAvailability(gomock.Any(), gomock.Any()).
			Return([]queries.CleanerAvailabilityView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-11", nil)

		var response []resdto.CleanerAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request for malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=07-09-2026", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 400 Bad Request for a past date", func() {
		s.mockQueries.EXPECT().DayAvailability(gomock.Any(), date).
			Return(nil, booking.ErrPastDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().DayAvailability(gomock.Any(), date).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetSlotAvailability
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestGetSlotAvailability() {
	start := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)
	url := "/availability/slot?date=2026-09-07&start=10:00&durationHours=2"

	s.Run("success: returns the free cleaners", func() {
		views := []queries.CleanerView{cleanerView("Cleaner-1-1"), cleanerView("Cleaner-1-2")}
		s.mockQueries.EXPECT().AvailableCleaners(gomock.Any(), start, 2).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.CleanerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[0].CleanerID, response[0].CleanerID)
		s.Equal(views[1].CleanerName, response[1].CleanerName)
	})

	s.Run("error: 400 Bad Request for malformed query params", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{name: "bad date", url: "/availability/slot?date=today&start=10:00&durationHours=2"},
			{name: "bad start", url: "/availability/slot?date=2026-09-07&start=ten&durationHours=2"},
			{name: "bad duration", url: "/availability/slot?date=2026-09-07&start=10:00&durationHours=two"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for unsupported duration", func() {
		s.mockQueries.EXPECT().AvailableCleaners(gomock.Any(), start, 3).
			Return(nil, booking.ErrInvalidDuration).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability/slot?date=2026-09-07&start=10:00&durationHours=3", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().AvailableCleaners(gomock.Any(), start, 2).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
