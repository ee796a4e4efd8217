package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/dto"
	"github.com/noah-isme/roomfinder-api/internal/models"
	"github.com/noah-isme/roomfinder-api/pkg/clocktime"
	appErrors "github.com/noah-isme/roomfinder-api/pkg/errors"
)

const missingWindowMessage = "Missing required parameters: day, from, to"

// AvailabilityService answers free-room queries over the loaded timetable.
type AvailabilityService struct {
	dataset   *models.Dataset
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAvailabilityService instantiates AvailabilityService. cache may be nil.
func NewAvailabilityService(dataset *models.Dataset, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *AvailabilityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{dataset: dataset, cache: cache, validator: validate, logger: logger}
}

// FindFreeRooms returns one witness session for every room that has a session
// on the requested day but none overlapping the requested window, sorted by room.
// An inverted window is not rejected; nothing overlaps it, so every room is free.
func (s *AvailabilityService) FindFreeRooms(ctx context.Context, req dto.FreeRoomsRequest) ([]models.RoomAvailability, error) {
	if s.dataset.Empty() {
		return nil, appErrors.ErrDataUnavailable
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, missingWindowMessage)
	}
	window, err := parseWindow(req.From, req.To)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("freerooms:%s:%d:%d:%s", req.Day, window.Start.Minutes(), window.End.Minutes(), req.Campus)
	var cached []models.RoomAvailability
	if s.cache.Lookup(ctx, key, &cached) {
		return cached, nil
	}

	candidates := s.dataset.SessionsOn(req.Day, models.CampusPrefix(req.Campus))
	occupied, err := occupiedRooms(candidates, window)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	free := make([]models.RoomAvailability, 0)
	for _, candidate := range candidates {
		room := candidate.Session.Venue
		if _, busy := occupied[room]; busy {
			continue
		}
		if _, dup := seen[room]; dup {
			continue
		}
		seen[room] = struct{}{}
		free = append(free, witness(candidate))
	}
	sort.SliceStable(free, func(i, j int) bool { return free[i].Room < free[j].Room })

	s.logger.Debug("free rooms computed",
		zap.String("day", req.Day),
		zap.String("window", window.String()),
		zap.String("campus", req.Campus),
		zap.Int("candidates", len(candidates)),
		zap.Int("occupied", len(occupied)),
		zap.Int("free", len(free)),
	)
	s.cache.Store(ctx, key, free)
	return free, nil
}

// ListRooms returns the sorted distinct venues used by batches matching campus.
func (s *AvailabilityService) ListRooms(ctx context.Context, campus string) ([]string, error) {
	if s.dataset.Empty() {
		return nil, appErrors.ErrDataUnavailable
	}
	include := models.CampusPrefix(campus)
	set := make(map[string]struct{})
	for _, day := range models.Weekdays {
		for _, candidate := range s.dataset.SessionsOn(day, include) {
			if venue := candidate.Session.Venue; venue != "" {
				set[venue] = struct{}{}
			}
		}
	}
	rooms := make([]string, 0, len(set))
	for room := range set {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms, nil
}

// CheckRooms reports, for each requested room, whether it is free during the window.
func (s *AvailabilityService) CheckRooms(ctx context.Context, req dto.CheckRoomsRequest) (map[string]bool, error) {
	if s.dataset.Empty() {
		return nil, appErrors.ErrDataUnavailable
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing required parameters: day, from, to, rooms")
	}
	window, err := parseWindow(req.From, req.To)
	if err != nil {
		return nil, err
	}

	occupied, err := occupiedRooms(s.dataset.SessionsOn(req.Day, models.CampusPrefix(req.Campus)), window)
	if err != nil {
		return nil, err
	}
	availability := make(map[string]bool, len(req.Rooms))
	for _, room := range req.Rooms {
		_, busy := occupied[room]
		availability[room] = !busy
	}
	return availability, nil
}

func parseWindow(from, to string) (clocktime.Interval, error) {
	start, err := clocktime.Parse(from)
	if err != nil {
		return clocktime.Interval{}, appErrors.Wrap(err, appErrors.ErrParse.Code, appErrors.ErrParse.Status, fmt.Sprintf("invalid from time %q, expected hh:mm AM/PM", from))
	}
	end, err := clocktime.Parse(to)
	if err != nil {
		return clocktime.Interval{}, appErrors.Wrap(err, appErrors.ErrParse.Code, appErrors.ErrParse.Status, fmt.Sprintf("invalid to time %q, expected hh:mm AM/PM", to))
	}
	return clocktime.Interval{Start: start, End: end}, nil
}

// occupiedRooms collects the raw venue strings of sessions overlapping window.
func occupiedRooms(candidates []models.BatchSession, window clocktime.Interval) (map[string]struct{}, error) {
	occupied := make(map[string]struct{})
	for _, candidate := range candidates {
		interval, err := candidate.Session.Interval()
		if err != nil {
			return nil, malformedSession(candidate, err)
		}
		if interval.Overlaps(window) {
			occupied[candidate.Session.Venue] = struct{}{}
		}
	}
	return occupied, nil
}

func malformedSession(candidate models.BatchSession, err error) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status,
		fmt.Sprintf("malformed session time in batch %s", candidate.Batch))
}

func witness(candidate models.BatchSession) models.RoomAvailability {
	session := candidate.Session
	return models.RoomAvailability{
		Room:        session.Venue,
		Batch:       candidate.Batch,
		Subject:     session.Subject,
		SubjectCode: session.SubjectCode,
		Teacher:     session.Teacher,
		Type:        session.Type,
		Start:       session.Start,
		End:         session.End,
	}
}
