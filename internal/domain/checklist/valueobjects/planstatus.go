package valueobjects

import (
	"fmt"
	"strings"
)

// PlanStatus is the lifecycle state of a corrective action plan.
type PlanStatus string

const (
	PlanStatusOpen       PlanStatus = "open"
	PlanStatusInProgress PlanStatus = "in_progress"
	PlanStatusClosed     PlanStatus = "closed"
)

var validPlanStatuses = map[PlanStatus]bool{
	PlanStatusOpen:       true,
	PlanStatusInProgress: true,
	PlanStatusClosed:     true,
}

var planStatusTransitions = map[PlanStatus][]PlanStatus{
	PlanStatusOpen: {
		PlanStatusInProgress,
		PlanStatusClosed,
	},
	PlanStatusInProgress: {
		PlanStatusClosed,
	},
}

func (ps PlanStatus) String() string {
	return string(ps)
}

func (ps PlanStatus) IsValid() bool {
	return validPlanStatuses[ps]
}

func (ps PlanStatus) IsOpen() bool {
	return ps == PlanStatusOpen
}

func (ps PlanStatus) IsClosed() bool {
	return ps == PlanStatusClosed
}

func (ps PlanStatus) CanTransitionTo(newStatus PlanStatus) bool {
	for _, allowed := range planStatusTransitions[ps] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// NewPlanStatus parses a plan status string case-insensitively.
func NewPlanStatus(s string) (PlanStatus, error) {
	ps := PlanStatus(strings.ToLower(s))
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid action plan status: %s", s)
	}
	return ps, nil
}
