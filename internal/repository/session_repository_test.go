package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var sessionColumns = []string{"batch_key", "day", "start_time", "end_time", "venue", "subject", "subject_code", "teacher", "session_type", "cache_version"}

func TestSessionRepositoryLoadGroupsByBatch(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	rows := sqlmock.NewRows(sessionColumns).
		AddRow("btech-2_cse", "Monday", "09:00 AM", "09:50 AM", "LT1", "Maths", "MA101", "Dr. Rao", "Lecture", "v3").
		AddRow("btech-2_cse", "Monday", "10:00 AM", "10:50 AM", "LT2", "Physics", "PH101", "Dr. Sen", "Lecture", "v3").
		AddRow("btech-1_ece", "Tuesday", "11:00 AM", "11:50 AM", "LAB1", "Circuits", "EC101", "Dr. Iyer", "Lab", "")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT batch_key, day, start_time, end_time")).WillReturnRows(rows)

	dataset, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"btech-2_cse", "btech-1_ece"}, dataset.Keys())
	assert.Equal(t, 3, dataset.SessionCount())

	batch, ok := dataset.Batch("btech-2_cse")
	require.True(t, ok)
	assert.Equal(t, "v3", string(batch.CacheVersion))
	require.Len(t, batch.Classes["Monday"], 2)
	assert.Equal(t, "LT2", batch.Classes["Monday"][1].Venue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryLoadError(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectQuery("SELECT batch_key").WillReturnError(errors.New("connection refused"))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load class sessions")
	assert.NoError(t, mock.ExpectationsWereMet())
}
