package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/dto"
	"github.com/noah-isme/roomfinder-api/internal/models"
	appErrors "github.com/noah-isme/roomfinder-api/pkg/errors"
)

// DirectoryService locates teachers in today's timetable.
type DirectoryService struct {
	dataset   *models.Dataset
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDirectoryService instantiates DirectoryService.
func NewDirectoryService(dataset *models.Dataset, validate *validator.Validate, logger *zap.Logger) *DirectoryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{dataset: dataset, validator: validate, logger: logger}
}

// FindTeacherSessions returns, in dataset order, every session on now's weekday
// whose teacher contains the query case-insensitively. A session is current
// when now falls within it, both ends inclusive.
func (s *DirectoryService) FindTeacherSessions(ctx context.Context, req dto.TeacherSearchRequest, now time.Time) ([]models.TeacherSession, error) {
	if s.dataset.Empty() {
		return nil, appErrors.ErrDataUnavailable
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing required parameter: teacher_name")
	}

	query := strings.ToLower(strings.TrimSpace(req.TeacherName))
	today := now.Weekday().String()

	matches := make([]models.TeacherSession, 0)
	for _, candidate := range s.dataset.SessionsOn(today, nil) {
		session := candidate.Session
		if !strings.Contains(strings.ToLower(session.Teacher), query) {
			continue
		}
		interval, err := session.Interval()
		if err != nil {
			return nil, malformedSession(candidate, err)
		}
		matches = append(matches, models.TeacherSession{
			Batch:       candidate.Batch,
			Subject:     session.Subject,
			SubjectCode: session.SubjectCode,
			Teacher:     session.Teacher,
			Room:        session.Venue,
			Type:        session.Type,
			Start:       session.Start,
			End:         session.End,
			Day:         today,
			IsCurrent:   interval.ContainsTime(now),
		})
	}

	s.logger.Debug("teacher search", zap.String("query", query), zap.String("day", today), zap.Int("matches", len(matches)))
	return matches, nil
}
