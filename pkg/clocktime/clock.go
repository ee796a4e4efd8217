// Package clocktime models wall-clock times of day written in the 12-hour
// "hh:mm AM" form used by the timetable dataset.
package clocktime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is wrapped by every error returned from Parse.
var ErrParse = errors.New("invalid clock time")

// Clock is a time of day measured in minutes since midnight.
type Clock int

// Parse reads a 12-hour clock time such as "09:30 AM" or "9:30 pm".
func Parse(text string) (Clock, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}

	hourText, minuteText, ok := strings.Cut(fields[0], ":")
	if !ok || len(hourText) < 1 || len(hourText) > 2 || len(minuteText) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}
	hour, err := parseDigits(hourText)
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour out of range in %q", ErrParse, text)
	}
	minute, err := parseDigits(minuteText)
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("%w: minute out of range in %q", ErrParse, text)
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("%w: meridiem must be AM or PM in %q", ErrParse, text)
	}

	return Clock(hour*60 + minute), nil
}

func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric %q", s)
		}
	}
	return strconv.Atoi(s)
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return int(c)
}

// Hour returns the 24-hour component.
func (c Clock) Hour() int {
	return int(c) / 60
}

// Minute returns the minute component.
func (c Clock) Minute() int {
	return int(c) % 60
}

// String formats the clock in the zero-padded 12-hour form, e.g. "01:05 PM".
func (c Clock) String() string {
	hour := c.Hour()
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour12, c.Minute(), meridiem)
}
