package readmodel

import "time"

// Dispatch states
const (
	DispatchInFlight  = "in_flight"
	DispatchSent      = "sent"
	DispatchFailed    = "failed"
	DispatchCancelled = "cancelled"
)

// DispatchRM is the latest known state of the notification sent for one
// rental request.
type DispatchRM struct {
	RequestID  string     `json:"requestId"`
	Kind       string     `json:"kind"`
	Recipient  string     `json:"recipient"`
	Subject    string     `json:"subject"`
	State      string     `json:"state"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

func (d DispatchRM) InFlight() bool {
	return d.State == DispatchInFlight
}
