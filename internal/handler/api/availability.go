package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cleaning-scheduler/internal/domain/booking"
	resdto "cleaning-scheduler/internal/handler/dto/response"
	"cleaning-scheduler/internal/handler/httperr"
	"cleaning-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Day availability
// @Description Free time windows per cleaner for a date
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.CleanerAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/availability [get]
func (h *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	views, err := h.availabilityQueries.DayAvailability(c.Request.Context(), date)
	if err != nil {
		abortAvailabilityError(c, err)
		return
	}

	response := make([]resdto.CleanerAvailabilityResponse, 0, len(views))
	for _, v := range views {
		response = append(response, resdto.FromCleanerAvailabilityView(v))
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Slot availability
// @Description Cleaners free for a concrete slot
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start time (HH:MM)"
// @Param durationHours query int true "Duration in hours (2 or 4)"
// @Success 200 {array} resdto.CleanerResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/availability/slot [get]
func (h *AvailabilityHandler) GetSlotAvailability(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}
	startClock, err := time.Parse(clockLayout, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start format, expected HH:MM", nil)
		return
	}
	durationHours, err := strconv.Atoi(c.Query("durationHours"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid durationHours", nil)
		return
	}

	start := time.Date(date.Year(), date.Month(), date.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, date.Location())

	views, err := h.availabilityQueries.AvailableCleaners(c.Request.Context(), start, durationHours)
	if err != nil {
		abortAvailabilityError(c, err)
		return
	}

	response := make([]resdto.CleanerResponse, 0, len(views))
	for _, v := range views {
		response = append(response, resdto.FromCleanerView(v))
	}
	c.JSON(http.StatusOK, response)
}

func abortAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrPastDate),
		errors.Is(err, booking.ErrInvalidDuration),
		errors.Is(err, booking.ErrInvalidTimeRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
