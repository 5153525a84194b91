package enums

import "fmt"

// EmploymentStatus distinguishes full-time from part-time employees.
type EmploymentStatus string

const (
	EmploymentFullTime EmploymentStatus = "Full-Time"
	EmploymentPartTime EmploymentStatus = "Part-Time"
)

var validEmploymentStatuses = []EmploymentStatus{
	EmploymentFullTime,
	EmploymentPartTime,
}

func (e EmploymentStatus) String() string {
	return string(e)
}

func (e EmploymentStatus) IsValid() bool {
	for _, candidate := range validEmploymentStatuses {
		if candidate == e {
			return true
		}
	}
	return false
}

func ParseEmploymentStatus(value string) (EmploymentStatus, error) {
	for _, candidate := range validEmploymentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid employment status %q", value)
}
