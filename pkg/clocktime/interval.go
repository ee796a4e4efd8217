package clocktime

import (
	"fmt"
	"sort"
	"time"
)

// Interval is a span of the day from Start to End.
type Interval struct {
	Start Clock
	End   Clock
}

// ParseInterval parses both ends of an interval.
func ParseInterval(start, end string) (Interval, error) {
	s, err := Parse(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Valid reports whether the interval is non-empty.
func (i Interval) Valid() bool {
	return i.Start < i.End
}

// Overlaps uses half-open semantics: an interval that ends exactly when the
// other begins does not overlap it.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// ContainsTime reports whether the time of day of t lies within the interval,
// inclusive on both ends.
func (i Interval) ContainsTime(t time.Time) bool {
	sinceMidnight := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	start := time.Duration(i.Start.Minutes()) * time.Minute
	end := time.Duration(i.End.Minutes()) * time.Minute
	return start <= sinceMidnight && sinceMidnight <= end
}

// String renders the interval as "09:00 AM-10:00 AM".
func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}

// MergeOverlapping sorts intervals by start and merges those that strictly
// overlap. Touching intervals (next.Start == running.End) stay separate.
// The input slice is not modified.
func MergeOverlapping(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Start < sorted[b].Start })

	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start < current.End {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
