package usecases

import (
	"time"

	"qcheck/internal/domain/checklist"
	vo "qcheck/internal/domain/checklist/valueobjects"
)

var answerSeq uint = 1000

// makeChecklist reconstructs a completed checklist with the given
// answers attached. Values containing "nok" count against the quality
// rate.
func makeChecklist(id, userID, templateID uint, projectID, lineID *uint, date time.Time, shift string, values map[uint]string) *checklist.Checklist {
	cl, err := checklist.ReconstructChecklist(
		id, userID, projectID, lineID, templateID,
		vo.StatusCompleted, &date, shift, "Sent", "1001", "2002",
		date, date,
	)
	if err != nil {
		panic(err)
	}

	answers := make([]*checklist.Answer, 0, len(values))
	for questionID, value := range values {
		answerSeq++
		a, err := checklist.ReconstructAnswer(answerSeq, id, questionID, vo.AnswerValue(value))
		if err != nil {
			panic(err)
		}
		answers = append(answers, a)
	}
	cl.AttachAnswers(answers)
	return cl
}

// makePendingChecklist reconstructs a started-but-unsubmitted checklist
// with the given answers attached.
func makePendingChecklist(id, userID, templateID uint, projectID, lineID *uint, date time.Time, shift string, values map[uint]string) *checklist.Checklist {
	cl, err := checklist.ReconstructChecklist(
		id, userID, projectID, lineID, templateID,
		vo.StatusPending, &date, shift, "Pending", "", "",
		date, date,
	)
	if err != nil {
		panic(err)
	}

	answers := make([]*checklist.Answer, 0, len(values))
	for questionID, value := range values {
		answerSeq++
		a, err := checklist.ReconstructAnswer(answerSeq, id, questionID, vo.AnswerValue(value))
		if err != nil {
			panic(err)
		}
		answers = append(answers, a)
	}
	cl.AttachAnswers(answers)
	return cl
}

func attachPlan(cl *checklist.Checklist, planID, answerID, questionID uint, rank int, status vo.PlanStatus) {
	date := time.Now().UTC()
	plan, err := checklist.ReconstructActionPlan(
		planID, cl.ID(), answerID, questionID, rank,
		date, "inspector", "replace worn gasket", "maintenance", date.AddDate(0, 0, 7),
		status,
	)
	if err != nil {
		panic(err)
	}
	cl.AttachActionPlans(append(cl.ActionPlans(), plan))
}

func uintPtr(v uint) *uint { return &v }

func dayUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 9, 30, 0, 0, time.UTC)
}
