package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// Reason classifies why a proposed shift was declined.
type Reason string

const (
	ReasonAvailability Reason = "availability"
	ReasonConflict     Reason = "conflict"
)

const (
	msgAvailability = "Cannot assign shift. Please check the employee's availability."
	msgConflict     = "Shift conflict detected. Please check for overlapping shifts."
)

// Decision is the advisory outcome of a conflict check. It carries no side
// effects; callers persist the shift after an accepting decision.
type Decision struct {
	Available bool
	Reason    Reason
	Message   string
}

// ShiftWindow is a proposed work interval on one calendar date. Date must
// be at UTC midnight; times are "HH:MM" 24-hour clock strings.
type ShiftWindow struct {
	Date      time.Time
	StartTime string
	EndTime   string
}

// EvaluateShift decides whether a shift may be created or reassigned given
// the employee's recurring availability and their existing shifts on the
// same date. An employee with no availability rows is unavailable.
//
// The same-day rule rejects on the mere existence of another shift that
// date, not on actual time overlap.
func EvaluateShift(win ShiftWindow, availability []models.AvailabilityWindow, sameDay []models.Shift) (Decision, error) {
	shiftStart, err := minutesOfDay(win.StartTime)
	if err != nil {
		return Decision{}, fmt.Errorf("parsing shift start: %w", err)
	}
	shiftEnd, err := minutesOfDay(win.EndTime)
	if err != nil {
		return Decision{}, fmt.Errorf("parsing shift end: %w", err)
	}

	dayName := enums.WeekdayOf(win.Date)

	covered := false
	for _, window := range availability {
		if window.Day != dayName {
			continue
		}
		windowStart, err := minutesOfDay(window.StartTime)
		if err != nil {
			continue // unparseable stored windows never match
		}
		windowEnd, err := minutesOfDay(window.EndTime)
		if err != nil {
			continue
		}
		if windowStart <= shiftStart && shiftEnd <= windowEnd {
			covered = true
			break
		}
	}

	if !covered {
		return Decision{Available: false, Reason: ReasonAvailability, Message: msgAvailability}, nil
	}

	if len(sameDay) > 0 {
		return Decision{Available: false, Reason: ReasonConflict, Message: msgConflict}, nil
	}

	return Decision{Available: true}, nil
}

// minutesOfDay converts an "HH:MM" clock string to minutes since midnight.
func minutesOfDay(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid clock time %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock time %q", value)
	}
	return hours*60 + minutes, nil
}

// DayBounds returns the half-open UTC interval [midnight, midnight+24h)
// containing the provided date.
func DayBounds(date time.Time) (time.Time, time.Time) {
	d := date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
