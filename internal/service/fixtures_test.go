package service

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/noah-isme/roomfinder-api/internal/models"
	appErrors "github.com/noah-isme/roomfinder-api/pkg/errors"
)

func session(start, end, venue, subject, teacher string) models.Session {
	return models.Session{Start: start, End: end, Venue: venue, Subject: subject, SubjectCode: subject + "-101", Teacher: teacher, Type: "Lecture"}
}

func batch(key string, version string, classes map[string][]models.Session) models.BatchSchedule {
	return models.BatchSchedule{Key: key, CacheVersion: models.CacheVersion(version), Classes: classes}
}

// campusDataset is a small timetable spread over two campuses.
func campusDataset() *models.Dataset {
	return models.NewDataset([]models.BatchSchedule{
		batch("btech-1_cse", "v2", map[string][]models.Session{
			"Monday": {
				session("09:00 AM", "10:00 AM", "LT1", "Maths", "Dr. Rao"),
				session("10:00 AM", "11:00 AM", "LT2", "Physics", "Dr. Sen"),
			},
			"Tuesday": {
				session("02:00 PM", "03:00 PM", "Lab-3", "Chemistry", "Dr. Iyer"),
			},
		}),
		batch("btech-2_ece", "v1", map[string][]models.Session{
			"Monday": {
				session("09:00 AM", "10:00 AM", "LT1", "Circuits", "Prof. Das"),
				session("11:00 AM", "12:00 PM", "LT3", "Signals", "Dr. Rao"),
			},
		}),
		batch("mca_1", "", map[string][]models.Session{
			"Monday": {
				session("09:30 AM", "10:30 AM", "MCA-101", "Databases", "Ms. Roy"),
			},
		}),
	})
}

type memoryCacheStore struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	sets    int
	getErr  error
}

func newMemoryCacheStore() *memoryCacheStore {
	return &memoryCacheStore{entries: make(map[string][]byte)}
}

func (m *memoryCacheStore) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheStore) DeleteByPattern(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if matchPattern(pattern, key) {
			delete(m.entries, key)
		}
	}
	return nil
}

// matchPattern supports the trailing '*' form used for invalidation.
func matchPattern(pattern, key string) bool {
	if n := len(pattern); n > 0 && pattern[n-1] == '*' {
		return len(key) >= n-1 && key[:n-1] == pattern[:n-1]
	}
	return pattern == key
}
