package valueobjects

import (
	"fmt"
	"strings"
)

// AnswerValue is an operator's response to an inspection question.
// The workflow only distinguishes OK from NOK, compared
// case-insensitively; other free text is tolerated and counts as
// neither.
type AnswerValue string

const (
	AnswerOK  AnswerValue = "OK"
	AnswerNOK AnswerValue = "NOK"
)

func (av AnswerValue) String() string {
	return string(av)
}

func (av AnswerValue) IsOK() bool {
	return strings.EqualFold(string(av), string(AnswerOK))
}

// IsNOK reports whether the answer fails the inspection point and
// therefore requires a corrective action plan.
func (av AnswerValue) IsNOK() bool {
	return strings.EqualFold(string(av), string(AnswerNOK))
}

// NewAnswerValue validates that an answer is non-empty.
func NewAnswerValue(s string) (AnswerValue, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("answer value cannot be empty")
	}
	return AnswerValue(s), nil
}
