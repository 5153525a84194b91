package enums

import (
	"fmt"
	"time"
)

// Weekday is the day name used by availability windows. Values match Go's
// time.Weekday strings so a shift date maps directly onto stored windows.
type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

var validWeekdays = []Weekday{
	Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday,
}

func (w Weekday) String() string {
	return string(w)
}

func (w Weekday) IsValid() bool {
	for _, candidate := range validWeekdays {
		if candidate == w {
			return true
		}
	}
	return false
}

func ParseWeekday(value string) (Weekday, error) {
	for _, candidate := range validWeekdays {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid weekday %q", value)
}

// WeekdayOf resolves the day name for a calendar date at UTC midnight,
// keeping the mapping stable regardless of the host timezone.
func WeekdayOf(date time.Time) Weekday {
	return Weekday(date.UTC().Weekday().String())
}
