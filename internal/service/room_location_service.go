package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/dto"
	appErrors "github.com/noah-isme/roomfinder-api/pkg/errors"
)

type roomLocationRepository interface {
	Loaded() bool
	Find(ctx context.Context, roomIDs []string) (map[string]string, error)
}

// RoomLocationService resolves rooms to their building and floor.
type RoomLocationService struct {
	repo      roomLocationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRoomLocationService instantiates RoomLocationService.
func NewRoomLocationService(repo roomLocationRepository, validate *validator.Validate, logger *zap.Logger) *RoomLocationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomLocationService{repo: repo, validator: validate, logger: logger}
}

// Locate returns the labels of the known room ids; unknown ids are omitted.
func (s *RoomLocationService) Locate(ctx context.Context, req dto.RoomLocationsRequest) (map[string]string, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing required parameter: room_ids")
	}
	if s.repo == nil || !s.repo.Loaded() {
		return nil, appErrors.Clone(appErrors.ErrDataUnavailable, "Room locations not loaded")
	}
	locations, err := s.repo.Find(ctx, req.RoomIDs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up room locations")
	}
	return locations, nil
}
