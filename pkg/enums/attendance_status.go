package enums

// AttendanceStatus tracks whether a clock log is still open.
type AttendanceStatus string

const (
	AttendanceClockedIn  AttendanceStatus = "Clocked In"
	AttendanceClockedOut AttendanceStatus = "Clocked Out"
)

func (s AttendanceStatus) String() string {
	return string(s)
}

func (s AttendanceStatus) IsValid() bool {
	return s == AttendanceClockedIn || s == AttendanceClockedOut
}
