package checklist

import (
	"fmt"

	vo "qcheck/internal/domain/checklist/valueobjects"
)

// Answer is an operator's response to one question of a checklist.
// Answers are created in bulk at submission and never mutated.
type Answer struct {
	id          uint
	checklistID uint
	questionID  uint
	value       vo.AnswerValue
}

func NewAnswer(checklistID, questionID uint, value vo.AnswerValue) (*Answer, error) {
	if checklistID == 0 {
		return nil, fmt.Errorf("checklist ID is required")
	}
	if questionID == 0 {
		return nil, fmt.Errorf("question ID is required")
	}
	return &Answer{
		checklistID: checklistID,
		questionID:  questionID,
		value:       value,
	}, nil
}

func ReconstructAnswer(id, checklistID, questionID uint, value vo.AnswerValue) (*Answer, error) {
	if id == 0 {
		return nil, fmt.Errorf("answer ID cannot be zero")
	}
	a, err := NewAnswer(checklistID, questionID, value)
	if err != nil {
		return nil, err
	}
	a.id = id
	return a, nil
}

func (a *Answer) ID() uint {
	return a.id
}

func (a *Answer) ChecklistID() uint {
	return a.checklistID
}

func (a *Answer) QuestionID() uint {
	return a.questionID
}

func (a *Answer) Value() vo.AnswerValue {
	return a.value
}

func (a *Answer) IsNOK() bool {
	return a.value.IsNOK()
}

func (a *Answer) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("answer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("answer ID cannot be zero")
	}
	a.id = id
	return nil
}
