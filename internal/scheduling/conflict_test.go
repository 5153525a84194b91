package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

func nineToFiveMonday() []models.AvailabilityWindow {
	return []models.AvailabilityWindow{
		{ID: uuid.New(), Day: enums.Monday, StartTime: "09:00", EndTime: "17:00"},
	}
}

func TestEvaluateShiftInsideWindowAccepted(t *testing.T) {
	decision, err := EvaluateShift(ShiftWindow{Date: monday, StartTime: "10:00", EndTime: "12:00"}, nineToFiveMonday(), nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !decision.Available {
		t.Fatalf("expected acceptance, got %+v", decision)
	}
}

func TestEvaluateShiftStartsBeforeWindowRejected(t *testing.T) {
	decision, err := EvaluateShift(ShiftWindow{Date: monday, StartTime: "08:00", EndTime: "12:00"}, nineToFiveMonday(), nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if decision.Available {
		t.Fatal("expected rejection for shift starting before the window")
	}
	if decision.Reason != ReasonAvailability {
		t.Fatalf("expected availability reason, got %s", decision.Reason)
	}
}

func TestEvaluateShiftEndsAfterWindowRejected(t *testing.T) {
	decision, err := EvaluateShift(ShiftWindow{Date: monday, StartTime: "10:00", EndTime: "18:00"}, nineToFiveMonday(), nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if decision.Available || decision.Reason != ReasonAvailability {
		t.Fatalf("expected availability rejection, got %+v", decision)
	}
}

func TestEvaluateShiftWrongWeekdayRejected(t *testing.T) {
	tuesday := monday.Add(24 * time.Hour)
	decision, err := EvaluateShift(ShiftWindow{Date: tuesday, StartTime: "10:00", EndTime: "12:00"}, nineToFiveMonday(), nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if decision.Available || decision.Reason != ReasonAvailability {
		t.Fatalf("expected availability rejection, got %+v", decision)
	}
}

func TestEvaluateShiftNoAvailabilityRejected(t *testing.T) {
	decision, err := EvaluateShift(ShiftWindow{Date: monday, StartTime: "10:00", EndTime: "12:00"}, nil, nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if decision.Available || decision.Reason != ReasonAvailability {
		t.Fatalf("expected availability rejection, got %+v", decision)
	}
}

// Pins the coarse same-day policy: any existing shift on the date rejects,
// even when the proposed times do not overlap it.
func TestEvaluateShiftSameDayNonOverlapping(t *testing.T) {
	existing := []models.Shift{
		{ID: uuid.New(), Date: monday, StartTime: "09:00", EndTime: "10:00"},
	}
	decision, err := EvaluateShift(ShiftWindow{Date: monday, StartTime: "13:00", EndTime: "15:00"}, nineToFiveMonday(), existing)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if decision.Available {
		t.Fatal("expected rejection for the same-day shift")
	}
	if decision.Reason != ReasonConflict {
		t.Fatalf("expected conflict reason, got %s", decision.Reason)
	}
}

func TestEvaluateShiftMalformedTimesAreErrors(t *testing.T) {
	cases := []ShiftWindow{
		{Date: monday, StartTime: "10am", EndTime: "12:00"},
		{Date: monday, StartTime: "10:00", EndTime: "noon"},
		{Date: monday, StartTime: "25:00", EndTime: "26:00"},
		{Date: monday, StartTime: "10:61", EndTime: "11:00"},
	}
	for _, win := range cases {
		if _, err := EvaluateShift(win, nineToFiveMonday(), nil); err == nil {
			t.Fatalf("expected parse error for %q-%q", win.StartTime, win.EndTime)
		}
	}
}

func TestEvaluateShiftSkipsUnparseableStoredWindows(t *testing.T) {
	availability := []models.AvailabilityWindow{
		{Day: enums.Monday, StartTime: "bogus", EndTime: "17:00"},
		{Day: enums.Monday, StartTime: "09:00", EndTime: "17:00"},
	}
	decision, err := EvaluateShift(ShiftWindow{Date: monday, StartTime: "10:00", EndTime: "12:00"}, availability, nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !decision.Available {
		t.Fatalf("expected a later valid window to cover the shift, got %+v", decision)
	}
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	start, end := DayBounds(time.Date(2024, time.June, 3, 10, 30, 0, 0, time.UTC).In(loc))
	if !start.Equal(monday) {
		t.Fatalf("expected UTC midnight, got %s", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("expected a 24h half-open window, got %s", end.Sub(start))
	}
}
