package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/roomfinder-api/internal/models"
)

// sessionRow mirrors one row of the class_sessions snapshot table:
//
//	CREATE TABLE class_sessions (
//	    batch_key      TEXT    NOT NULL,
//	    batch_position INT     NOT NULL,
//	    day            TEXT    NOT NULL,
//	    position       INT     NOT NULL,
//	    start_time     TEXT    NOT NULL,
//	    end_time       TEXT    NOT NULL,
//	    venue          TEXT    NOT NULL DEFAULT '',
//	    subject        TEXT    NOT NULL DEFAULT '',
//	    subject_code   TEXT    NOT NULL DEFAULT '',
//	    teacher        TEXT    NOT NULL DEFAULT '',
//	    session_type   TEXT    NOT NULL DEFAULT '',
//	    cache_version  TEXT    NOT NULL DEFAULT ''
//	);
type sessionRow struct {
	BatchKey     string `db:"batch_key"`
	Day          string `db:"day"`
	StartTime    string `db:"start_time"`
	EndTime      string `db:"end_time"`
	Venue        string `db:"venue"`
	Subject      string `db:"subject"`
	SubjectCode  string `db:"subject_code"`
	Teacher      string `db:"teacher"`
	SessionType  string `db:"session_type"`
	CacheVersion string `db:"cache_version"`
}

const selectSessionsQuery = `SELECT batch_key, day, start_time, end_time, venue, subject, subject_code, teacher, session_type, cache_version
FROM class_sessions
ORDER BY batch_position, batch_key, day, position`

// SessionRepository loads a timetable snapshot stored in PostgreSQL.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs a SessionRepository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Load reads every session and groups them into batches in table order.
func (r *SessionRepository) Load(ctx context.Context) (*models.Dataset, error) {
	var rows []sessionRow
	if err := r.db.SelectContext(ctx, &rows, selectSessionsQuery); err != nil {
		return nil, fmt.Errorf("load class sessions: %w", err)
	}

	var batches []models.BatchSchedule
	index := make(map[string]int)
	for _, row := range rows {
		pos, ok := index[row.BatchKey]
		if !ok {
			pos = len(batches)
			index[row.BatchKey] = pos
			batches = append(batches, models.BatchSchedule{
				Key:     row.BatchKey,
				Classes: make(map[string][]models.Session),
			})
		}
		batch := &batches[pos]
		if batch.CacheVersion == "" && row.CacheVersion != "" {
			batch.CacheVersion = models.CacheVersion(row.CacheVersion)
		}
		batch.Classes[row.Day] = append(batch.Classes[row.Day], models.Session{
			Start:       row.StartTime,
			End:         row.EndTime,
			Venue:       row.Venue,
			Subject:     row.Subject,
			SubjectCode: row.SubjectCode,
			Teacher:     row.Teacher,
			Type:        row.SessionType,
		})
	}

	return models.NewDataset(batches), nil
}
