package service

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/models"
	"github.com/noah-isme/roomfinder-api/pkg/clocktime"
)

// busyPairList matches an indented JSON array made only of [start, end] pairs.
var busyPairList = regexp.MustCompile(`\[\s*((?:\[\s*"[^"]+"\s*,\s*"[^"]+"\s*\]\s*,?\s*)+)\]`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CompactorService builds the per-campus room busy table from a raw dataset.
type CompactorService struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewCompactorService instantiates CompactorService. now defaults to time.Now.
func NewCompactorService(logger *zap.Logger, now func() time.Time) *CompactorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &CompactorService{logger: logger, now: now}
}

type textPair struct {
	start string
	end   string
}

// Compact merges the booked intervals of every (campus, room, day). Entries
// with missing fields, unparsable times or start >= end are skipped.
func (s *CompactorService) Compact(ctx context.Context, dataset *models.Dataset) (*models.CompactTable, error) {
	// campus -> room -> day -> pairs, each list deduplicated on insert
	raw := make(map[string]map[string]map[string][]textPair)
	versions := make(map[string]struct{})

	for _, key := range dataset.Keys() {
		batch, _ := dataset.Batch(key)
		campus := models.ClassifyBatchKey(key).CampusKey()
		if batch.CacheVersion != "" {
			versions[string(batch.CacheVersion)] = struct{}{}
		}
		for day, sessions := range batch.Classes {
			for _, session := range sessions {
				if session.Start == "" || session.End == "" || session.Venue == "" {
					continue
				}
				pair := textPair{start: session.Start, end: session.End}
				for _, room := range session.Rooms() {
					addPair(raw, campus, room, day, pair)
				}
			}
		}
	}

	campuses := make(map[string]models.CampusRooms)
	skipped := 0
	for campus, rooms := range raw {
		out := make(map[string]map[string][]models.BusyPair)
		for room, days := range rooms {
			for day, pairs := range days {
				intervals := make([]clocktime.Interval, 0, len(pairs))
				for _, pair := range pairs {
					interval, err := clocktime.ParseInterval(pair.start, pair.end)
					if err != nil {
						skipped++
						s.logger.Debug("skipping unparsable interval",
							zap.String("campus", campus), zap.String("room", room), zap.String("day", day), zap.Error(err))
						continue
					}
					if !interval.Valid() {
						skipped++
						continue
					}
					intervals = append(intervals, interval)
				}
				merged := clocktime.MergeOverlapping(intervals)
				if len(merged) == 0 {
					continue
				}
				busy := make([]models.BusyPair, len(merged))
				for i, interval := range merged {
					busy[i] = models.BusyPair{interval.Start.String(), interval.End.String()}
				}
				if out[room] == nil {
					out[room] = make(map[string][]models.BusyPair)
				}
				out[room][day] = busy
			}
		}
		if len(out) > 0 {
			campuses[campus] = models.CampusRooms{Rooms: out}
		}
	}

	sourceVersions := make([]string, 0, len(versions))
	for version := range versions {
		sourceVersions = append(sourceVersions, version)
	}
	sort.Strings(sourceVersions)

	if skipped > 0 {
		s.logger.Warn("compaction skipped malformed intervals", zap.Int("count", skipped))
	}

	return &models.CompactTable{
		Meta: models.CompactMeta{
			GeneratedAt:         s.now().UTC().Truncate(time.Second).Format(time.RFC3339),
			SourceCacheVersions: sourceVersions,
		},
		Campuses: campuses,
	}, nil
}

func addPair(raw map[string]map[string]map[string][]textPair, campus, room, day string, pair textPair) {
	rooms, ok := raw[campus]
	if !ok {
		rooms = make(map[string]map[string][]textPair)
		raw[campus] = rooms
	}
	days, ok := rooms[room]
	if !ok {
		days = make(map[string][]textPair)
		rooms[room] = days
	}
	for _, existing := range days[day] {
		if existing == pair {
			return
		}
	}
	days[day] = append(days[day], pair)
}

// Encode renders the table as indented JSON with each room/day interval list
// kept on a single line.
func (s *CompactorService) Encode(table *models.CompactTable) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(table); err != nil {
		return nil, fmt.Errorf("encode compact table: %w", err)
	}
	collapsed := busyPairList.ReplaceAllFunc(buf.Bytes(), func(match []byte) []byte {
		inner := busyPairList.FindSubmatch(match)[1]
		flat := whitespaceRun.ReplaceAllString(strings.TrimSpace(string(inner)), " ")
		flat = strings.NewReplacer("[ ", "[", " ]", "]", " ,", ",").Replace(flat)
		return []byte("[" + flat + "]")
	})
	return collapsed, nil
}
