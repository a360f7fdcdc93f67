package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/rumbus/shuttle/internal/utils"
	"github.com/rumbus/shuttle/services/stops"
)

// StopUC implements stops.StopUC
type StopUC struct {
	repo stops.StopRepo
}

// NewStopUC creates a new stop directory use case
func NewStopUC(repo stops.StopRepo) stops.StopUC {
	return &StopUC{repo: repo}
}

// ListStops returns the full directory in registration order
func (uc *StopUC) ListStops(ctx context.Context) ([]*models.Stop, error) {
	result, err := uc.repo.ListStops(ctx)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetStop returns the stop at (lat, lon)
func (uc *StopUC) GetStop(ctx context.Context, lat, lon float64) (*models.Stop, error) {
	return uc.repo.GetStop(ctx, lat, lon)
}

// CreateStop validates the request and registers a new stop
func (uc *StopUC) CreateStop(ctx context.Context, req *models.CreateStopRequest) (*models.Stop, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidStop, err)
	}

	stop := &models.Stop{
		Lat:  *req.Lat,
		Lon:  *req.Lon,
		Name: strings.TrimSpace(req.Name),
	}
	if stop.Name == "" {
		return nil, fmt.Errorf("%w: name is blank", models.ErrInvalidStop)
	}

	if err := uc.repo.CreateStop(ctx, stop); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Stop registered",
		logger.String("name", stop.Name),
		logger.Point("position", stop.Lat, stop.Lon))

	return stop, nil
}

// UpdateStop renames the stop at (lat, lon)
func (uc *StopUC) UpdateStop(ctx context.Context, lat, lon float64, req *models.UpdateStopRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidStop, err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is blank", models.ErrInvalidStop)
	}

	return uc.repo.UpdateStopName(ctx, lat, lon, name)
}

// DeleteStop removes the stop at (lat, lon)
func (uc *StopUC) DeleteStop(ctx context.Context, lat, lon float64) error {
	if err := uc.repo.DeleteStop(ctx, lat, lon); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Stop deleted",
		logger.Point("position", lat, lon))
	return nil
}
