package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/rumbus/shuttle/internal/utils"
	"github.com/rumbus/shuttle/services/stops"
)

// StopHandler handles HTTP requests for the stop directory
type StopHandler struct {
	stopUC stops.StopUC
}

// NewStopHandler creates a new stop HTTP handler
func NewStopHandler(stopUC stops.StopUC) *StopHandler {
	return &StopHandler{
		stopUC: stopUC,
	}
}

type createStopResponse struct {
	Message  string `json:"message"`
	StopName string `json:"stop_name"`
}

// RegisterRoutes mounts the stop routes on the given group
func (h *StopHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListStops)
	g.POST("", h.CreateStop)
	g.GET("/:lat/:lon", h.GetStop)
	g.PUT("/:lat/:lon", h.UpdateStop)
	g.DELETE("/:lat/:lon", h.DeleteStop)
}

// ListStops returns every registered stop
func (h *StopHandler) ListStops(c echo.Context) error {
	result, err := h.stopUC.ListStops(c.Request().Context())
	if err != nil {
		return h.handleError(c, "Failed to list stops", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stops retrieved successfully", result)
}

// GetStop returns the stop at /stops/:lat/:lon
func (h *StopHandler) GetStop(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	}

	stop, err := h.stopUC.GetStop(c.Request().Context(), lat, lon)
	if err != nil {
		return h.handleError(c, "Failed to get stop", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stop retrieved successfully", stop)
}

// CreateStop registers a new stop
func (h *StopHandler) CreateStop(c echo.Context) error {
	var req models.CreateStopRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to bind request", logger.Err(err))
		return utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
	}

	stop, err := h.stopUC.CreateStop(c.Request().Context(), &req)
	if err != nil {
		return h.handleError(c, "Failed to create stop", err)
	}

	return c.JSON(http.StatusCreated, createStopResponse{
		Message:  "Stop was successfully created",
		StopName: stop.Name,
	})
}

// UpdateStop renames the stop at /stops/:lat/:lon
func (h *StopHandler) UpdateStop(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	}

	var req models.UpdateStopRequest
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.stopUC.UpdateStop(c.Request().Context(), lat, lon, &req); err != nil {
		return h.handleError(c, "Failed to update stop", err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteStop removes the stop at /stops/:lat/:lon
func (h *StopHandler) DeleteStop(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	}

	if err := h.stopUC.DeleteStop(c.Request().Context(), lat, lon); err != nil {
		return h.handleError(c, "Failed to delete stop", err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *StopHandler) handleError(c echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidStop):
		return utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrStopNotFound):
		return utils.ErrorResponse(c, http.StatusNotFound, "stop not found")
	case errors.Is(err, models.ErrStopConflict):
		return utils.ErrorResponse(c, http.StatusConflict, "a stop already exists at these coordinates")
	case errors.Is(err, models.ErrStorageUnavailable):
		logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
		return utils.ErrorResponse(c, http.StatusServiceUnavailable, "stop directory unavailable")
	default:
		logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
		return utils.ErrorResponse(c, http.StatusInternalServerError, "")
	}
}

func parseCoordinates(c echo.Context) (float64, float64, error) {
	lat, err := strconv.ParseFloat(c.Param("lat"), 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return 0, 0, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(c.Param("lon"), 64)
	if err != nil || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0, 0, errors.New("lon must be a number")
	}
	return lat, lon, nil
}
