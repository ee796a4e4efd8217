package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/models"
)

// FileDatasetRepository loads the timetable dataset from a classes.json file.
type FileDatasetRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileDatasetRepository constructs a FileDatasetRepository.
func NewFileDatasetRepository(path string, logger *zap.Logger) *FileDatasetRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileDatasetRepository{path: path, logger: logger}
}

// Load reads and decodes the dataset file.
func (r *FileDatasetRepository) Load(ctx context.Context) (*models.Dataset, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", r.path, err)
	}
	return DecodeDataset(data, r.logger)
}

// DecodeDataset decodes a classes.json document, preserving the order of its
// batch keys. Batches whose payload is not a timetable object are skipped.
// Inside a batch only the bad records are dropped: a day that is not a list,
// or a session that is not an object or does not decode.
func DecodeDataset(data []byte, logger *zap.Logger) (*models.Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode dataset: invalid json")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("decode dataset: top level must be an object")
	}

	var batches []models.BatchSchedule
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			logger.Warn("skipping batch with non-object payload", zap.String("batch", key.String()))
			return true
		}
		batches = append(batches, decodeBatch(key.String(), value, logger))
		return true
	})

	return models.NewDataset(batches), nil
}

func decodeBatch(key string, value gjson.Result, logger *zap.Logger) models.BatchSchedule {
	batch := models.BatchSchedule{Key: key, Classes: make(map[string][]models.Session)}

	if version := value.Get("cacheVersion"); version.Exists() {
		if version.IsObject() || version.IsArray() {
			logger.Warn("ignoring non-scalar cache version", zap.String("batch", key))
		} else if err := json.Unmarshal([]byte(version.Raw), &batch.CacheVersion); err != nil {
			logger.Warn("ignoring malformed cache version", zap.String("batch", key), zap.Error(err))
		}
	}

	classes := value.Get("classes")
	if !classes.IsObject() {
		if classes.Exists() {
			logger.Warn("ignoring non-object classes", zap.String("batch", key))
		}
		return batch
	}

	classes.ForEach(func(day, sessions gjson.Result) bool {
		if !sessions.IsArray() {
			logger.Warn("skipping non-list day", zap.String("batch", key), zap.String("day", day.String()))
			return true
		}
		decoded := make([]models.Session, 0, len(sessions.Array()))
		for idx, raw := range sessions.Array() {
			if !raw.IsObject() {
				logger.Warn("skipping non-object session",
					zap.String("batch", key), zap.String("day", day.String()), zap.Int("index", idx))
				continue
			}
			var session models.Session
			if err := json.Unmarshal([]byte(raw.Raw), &session); err != nil {
				logger.Warn("skipping malformed session",
					zap.String("batch", key), zap.String("day", day.String()), zap.Int("index", idx), zap.Error(err))
				continue
			}
			decoded = append(decoded, session)
		}
		batch.Classes[day.String()] = decoded
		return true
	})

	return batch
}
