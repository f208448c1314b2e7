package rental

type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusDisapproved Status = "disapproved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDisapproved:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusDisapproved
}

// IsDecision reports whether an admin may set s.
func (s Status) IsDecision() bool {
	return s.IsTerminal()
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
