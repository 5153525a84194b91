package enums

import "fmt"

// RequestStatus is the lifecycle state shared by swap and time-off requests.
// Approved and Rejected are terminal.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

var validRequestStatuses = []RequestStatus{
	RequestPending,
	RequestApproved,
	RequestRejected,
}

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	for _, candidate := range validRequestStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status forbids further transitions.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestRejected
}

func ParseRequestStatus(value string) (RequestStatus, error) {
	for _, candidate := range validRequestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid request status %q", value)
}
