package valueobjects

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a checklist. The transition is
// one-way: a checklist is started Pending and completed exactly once.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusCompleted: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	return s == StatusPending && newStatus == StatusCompleted
}

// NewStatus parses a status string case-insensitively. Legacy rows
// stored free-text casing ("Completed", "PENDING").
func NewStatus(s string) (Status, error) {
	st := Status(strings.ToLower(s))
	if !st.IsValid() {
		return "", fmt.Errorf("invalid checklist status: %s", s)
	}
	return st, nil
}
