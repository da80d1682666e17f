package practice

import (
	"maps"
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/errors"
)

// Feedback is the panel shown under the current problem.
type Feedback string

const (
	FeedbackNone      Feedback = ""
	FeedbackEmpty     Feedback = "empty"
	FeedbackCorrect   Feedback = "correct"
	FeedbackIncorrect Feedback = "incorrect"
	FeedbackHint      Feedback = "hint"
	FeedbackSolution  Feedback = "solution"
)

// State is the practice zone of one session. Transitions return a new value
// and never modify the receiver.
type State struct {
	Difficulty       Difficulty      `json:"difficulty"`
	CurrentProblemID string          `json:"current_problem_id,omitempty"`
	Answers          map[string]bool `json:"answers"`
	Feedback         Feedback        `json:"feedback,omitempty"`
}

// NewState starts on the beginner list with no answers.
func NewState() State {
	return State{Difficulty: Beginner, Answers: map[string]bool{}}
}

func (s State) clone() State {
	s.Answers = maps.Clone(s.Answers)
	if s.Answers == nil {
		s.Answers = map[string]bool{}
	}
	return s
}

// SelectDifficulty switches the list and closes any open problem.
func (s State) SelectDifficulty(d Difficulty) State {
	next := s.clone()
	next.Difficulty = d
	next.CurrentProblemID = ""
	next.Feedback = FeedbackNone
	return next
}

// OpenProblem shows the problem with id from set.
func (s State) OpenProblem(set *Set, id string) (State, error) {
	problem, ok := set.Find(id)
	if !ok {
		return s, ErrProblemNotFound(id)
	}
	next := s.clone()
	next.CurrentProblemID = problem.ID
	next.Feedback = FeedbackNone
	return next, nil
}

// CheckAnswer grades answer against the open problem and records the
// outcome. A blank answer only asks for input.
func (s State) CheckAnswer(set *Set, answer string) (State, bool, error) {
	problem, ok := set.Find(s.CurrentProblemID)
	if !ok {
		return s, false, errors.New(errors.CodeProblemNotFound, "No practice problem is open")
	}
	next := s.clone()
	if strings.TrimSpace(answer) == "" {
		next.Feedback = FeedbackEmpty
		return next, false, nil
	}
	correct := CompareAnswers(answer, problem.Answer)
	next.Answers[problem.ID] = correct
	next.Feedback = FeedbackIncorrect
	if correct {
		next.Feedback = FeedbackCorrect
	}
	return next, correct, nil
}

// ShowHint reveals the hint of the open problem.
func (s State) ShowHint() State {
	return s.reveal(FeedbackHint)
}

// ShowSolution reveals the solution of the open problem.
func (s State) ShowSolution() State {
	return s.reveal(FeedbackSolution)
}

func (s State) reveal(feedback Feedback) State {
	next := s.clone()
	if next.CurrentProblemID != "" {
		next.Feedback = feedback
	}
	return next
}

// CloseProblem returns to the list.
func (s State) CloseProblem() State {
	next := s.clone()
	next.CurrentProblemID = ""
	next.Feedback = FeedbackNone
	return next
}

// Progress counts solved problems and problems with any recorded answer.
func Progress(s State) (solved, attempted int) {
	for _, correct := range s.Answers {
		attempted++
		if correct {
			solved++
		}
	}
	return solved, attempted
}
