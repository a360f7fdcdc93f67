package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/rumbus/shuttle/internal/utils"
	"github.com/rumbus/shuttle/services/history"
)

// HistoryHandler handles HTTP requests for trip histories
type HistoryHandler struct {
	historyUC history.HistoryUC
}

// NewHistoryHandler creates a new trip history HTTP handler
func NewHistoryHandler(historyUC history.HistoryUC) *HistoryHandler {
	return &HistoryHandler{
		historyUC: historyUC,
	}
}

// RegisterRoutes mounts the trip history routes on the given group
func (h *HistoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:trip_id/history", h.GetTripHistory)
	g.POST("/:trip_id/history", h.AddTripHistory)
}

// GetTripHistory returns the recorded geopoints of a trip
func (h *HistoryHandler) GetTripHistory(c echo.Context) error {
	tripID := c.Param("trip_id")
	if tripID == "" {
		return utils.ErrorResponse(c, http.StatusBadRequest, "trip_id is required")
	}

	result, err := h.historyUC.GetTripHistory(c.Request().Context(), tripID)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to get trip history",
			logger.String("trip_id", tripID),
			logger.Err(err))
		if errors.Is(err, models.ErrStorageUnavailable) {
			return utils.ErrorResponse(c, http.StatusServiceUnavailable, "trip history unavailable")
		}
		return utils.ErrorResponse(c, http.StatusInternalServerError, "failed to get trip history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip history retrieved successfully", result)
}

// AddTripHistory appends a batch of geopoints to a trip
func (h *HistoryHandler) AddTripHistory(c echo.Context) error {
	tripID := c.Param("trip_id")
	if tripID == "" {
		return utils.ErrorResponse(c, http.StatusBadRequest, "trip_id is required")
	}

	var req models.TripHistoryRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to bind request", logger.Err(err))
		return utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
	}

	count, err := h.historyUC.AddGeoPoints(c.Request().Context(), tripID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidGeoPoint):
			return utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, models.ErrStorageUnavailable):
			return utils.ErrorResponse(c, http.StatusServiceUnavailable, "trip history unavailable")
		default:
			logger.ErrorCtx(c.Request().Context(), "Failed to add trip history",
				logger.String("trip_id", tripID),
				logger.Err(err))
			return utils.ErrorResponse(c, http.StatusInternalServerError, "failed to add trip history")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip history recorded successfully", map[string]interface{}{
		"trip_id":  tripID,
		"recorded": count,
	})
}
