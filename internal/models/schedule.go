package models

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"

	"github.com/noah-isme/roomfinder-api/pkg/clocktime"
)

// Weekdays lists the day names used as keys in the timetable dataset.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Session is one scheduled class meeting as recorded in the dataset.
type Session struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	Venue       string `json:"venue"`
	Subject     string `json:"subject"`
	SubjectCode string `json:"subjectcode"`
	Teacher     string `json:"teacher"`
	Type        string `json:"type"`
}

// Interval parses the session's start and end times.
func (s Session) Interval() (clocktime.Interval, error) {
	return clocktime.ParseInterval(s.Start, s.End)
}

// Rooms splits a compound venue such as "LT1/LT2" into its trimmed parts.
func (s Session) Rooms() []string {
	parts := strings.Split(s.Venue, "/")
	rooms := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			rooms = append(rooms, trimmed)
		}
	}
	return rooms
}

// CacheVersion accepts either a JSON string or a bare scalar.
type CacheVersion string

// UnmarshalJSON implements json.Unmarshaler.
func (v *CacheVersion) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = CacheVersion(s)
		return nil
	}
	*v = CacheVersion(data)
	return nil
}

// BatchSchedule is the weekly timetable of one batch/section.
type BatchSchedule struct {
	Key          string               `json:"-"`
	CacheVersion CacheVersion         `json:"cacheVersion,omitempty"`
	Classes      map[string][]Session `json:"classes"`
}

// BatchSession pairs a session with the batch that owns it.
type BatchSession struct {
	Batch   string
	Session Session
}

// Dataset is the immutable, ordered collection of batch timetables loaded at
// startup. Batch order follows the source document.
type Dataset struct {
	order   []string
	batches map[string]BatchSchedule
}

// NewDataset builds a dataset from batches in source order. A repeated key
// replaces the earlier value but keeps its original position.
func NewDataset(batches []BatchSchedule) *Dataset {
	d := &Dataset{batches: make(map[string]BatchSchedule, len(batches))}
	for _, batch := range batches {
		if _, exists := d.batches[batch.Key]; !exists {
			d.order = append(d.order, batch.Key)
		}
		d.batches[batch.Key] = batch
	}
	return d
}

// Len returns the number of batches.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// Empty reports whether the dataset holds no batches.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// Keys returns the batch keys in source order.
func (d *Dataset) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	return keys
}

// Batch looks up a batch by key.
func (d *Dataset) Batch(key string) (BatchSchedule, bool) {
	if d == nil {
		return BatchSchedule{}, false
	}
	batch, ok := d.batches[key]
	return batch, ok
}

// SessionCount returns the total number of sessions across all batches and days.
func (d *Dataset) SessionCount() int {
	total := 0
	for _, key := range d.Keys() {
		for _, sessions := range d.batches[key].Classes {
			total += len(sessions)
		}
	}
	return total
}

// SessionsOn returns, in dataset order, every session held on day by a batch
// accepted by include. A nil include accepts every batch.
func (d *Dataset) SessionsOn(day string, include func(batchKey string) bool) []BatchSession {
	var out []BatchSession
	for _, key := range d.Keys() {
		if include != nil && !include(key) {
			continue
		}
		for _, session := range d.batches[key].Classes[day] {
			out = append(out, BatchSession{Batch: key, Session: session})
		}
	}
	return out
}

// CampusPrefix returns a batch filter matching keys that start with campus.
// An empty campus matches every batch.
func CampusPrefix(campus string) func(string) bool {
	if campus == "" {
		return nil
	}
	return func(batchKey string) bool {
		return strings.HasPrefix(batchKey, campus)
	}
}
