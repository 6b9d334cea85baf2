package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "pending lowercase", input: "pending", want: StatusPending},
		{name: "completed mixed case", input: "Completed", want: StatusCompleted},
		{name: "legacy uppercase", input: "PENDING", want: StatusPending},
		{name: "unknown value", input: "in_progress", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusPending))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCompleted))
}

func TestPlanStatus_Transitions(t *testing.T) {
	tests := []struct {
		name string
		from PlanStatus
		to   PlanStatus
		want bool
	}{
		{"open to in_progress", PlanStatusOpen, PlanStatusInProgress, true},
		{"open to closed", PlanStatusOpen, PlanStatusClosed, true},
		{"in_progress to closed", PlanStatusInProgress, PlanStatusClosed, true},
		{"closed is terminal", PlanStatusClosed, PlanStatusOpen, false},
		{"no reopen", PlanStatusClosed, PlanStatusInProgress, false},
		{"no backwards", PlanStatusInProgress, PlanStatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewPlanStatus(t *testing.T) {
	got, err := NewPlanStatus("Open")
	require.NoError(t, err)
	assert.Equal(t, PlanStatusOpen, got)

	_, err = NewPlanStatus("abandoned")
	require.Error(t, err)
}

func TestAnswerValue_Classification(t *testing.T) {
	tests := []struct {
		input   string
		isOK    bool
		isNOK   bool
	}{
		{"OK", true, false},
		{"ok", true, false},
		{"NOK", false, true},
		{"nok", false, true},
		{"Nok", false, true},
		{"N/A", false, false},
		{"pas conforme", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			av := AnswerValue(tt.input)
			assert.Equal(t, tt.isOK, av.IsOK())
			assert.Equal(t, tt.isNOK, av.IsNOK())
		})
	}
}

func TestNewAnswerValue(t *testing.T) {
	_, err := NewAnswerValue("  ")
	require.Error(t, err)

	got, err := NewAnswerValue("NOK")
	require.NoError(t, err)
	assert.True(t, got.IsNOK())
}

func TestNewMatricule(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "digits only", input: "10482"},
		{name: "single digit", input: "7"},
		{name: "empty", input: "", wantErr: true},
		{name: "letters", input: "A1234", wantErr: true},
		{name: "whitespace", input: "12 34", wantErr: true},
		{name: "negative sign", input: "-123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewMatricule(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}
