package practice

import (
	"testing"

	"github.com/louisbranch/numerals.space/internal/platform/errors"
)

func TestStateTransitions(t *testing.T) {
	t.Parallel()

	set := DefaultSet()
	start := NewState()
	if start.Difficulty != Beginner || start.CurrentProblemID != "" {
		t.Fatalf("NewState() = %+v", start)
	}

	opened, err := start.OpenProblem(set, "b1")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if opened.CurrentProblemID != "b1" {
		t.Fatalf("current = %q", opened.CurrentProblemID)
	}

	empty, correct, err := opened.CheckAnswer(set, "  ")
	if err != nil || correct {
		t.Fatalf("blank check = %v, %v", correct, err)
	}
	if empty.Feedback != FeedbackEmpty || len(empty.Answers) != 0 {
		t.Fatalf("blank check state = %+v", empty)
	}

	wrong, correct, err := opened.CheckAnswer(set, "17")
	if err != nil || correct {
		t.Fatalf("wrong check = %v, %v", correct, err)
	}
	if wrong.Feedback != FeedbackIncorrect || wrong.Answers["b1"] {
		t.Fatalf("wrong state = %+v", wrong)
	}

	right, correct, err := wrong.CheckAnswer(set, "18")
	if err != nil || !correct {
		t.Fatalf("right check = %v, %v", correct, err)
	}
	if right.Feedback != FeedbackCorrect || !right.Answers["b1"] {
		t.Fatalf("right state = %+v", right)
	}
	if wrong.Answers["b1"] {
		t.Fatal("transition mutated previous state")
	}

	if got := right.ShowHint().Feedback; got != FeedbackHint {
		t.Fatalf("hint feedback = %q", got)
	}
	if got := right.ShowSolution().Feedback; got != FeedbackSolution {
		t.Fatalf("solution feedback = %q", got)
	}

	closed := right.CloseProblem()
	if closed.CurrentProblemID != "" || closed.Feedback != FeedbackNone {
		t.Fatalf("closed = %+v", closed)
	}
	if !closed.Answers["b1"] {
		t.Fatal("closing lost recorded answers")
	}
	if got := closed.ShowHint().Feedback; got != FeedbackNone {
		t.Fatalf("hint without a problem = %q", got)
	}
}

func TestSelectDifficultyClosesProblem(t *testing.T) {
	t.Parallel()

	opened, err := NewState().OpenProblem(DefaultSet(), "b2")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	next := opened.SelectDifficulty(Advanced)
	if next.Difficulty != Advanced || next.CurrentProblemID != "" {
		t.Fatalf("next = %+v", next)
	}
}

func TestOpenUnknownProblem(t *testing.T) {
	t.Parallel()

	_, err := NewState().OpenProblem(DefaultSet(), "nope")
	if errors.CodeOf(err) != errors.CodeProblemNotFound {
		t.Fatalf("error = %v", err)
	}
	_, _, err = NewState().CheckAnswer(DefaultSet(), "18")
	if errors.CodeOf(err) != errors.CodeProblemNotFound {
		t.Fatalf("check without problem error = %v", err)
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()

	state := State{Answers: map[string]bool{"b1": true, "b2": false, "i1": true}}
	solved, attempted := Progress(state)
	if solved != 2 || attempted != 3 {
		t.Fatalf("Progress = %d/%d", solved, attempted)
	}
	if solved, attempted := Progress(State{}); solved != 0 || attempted != 0 {
		t.Fatalf("empty Progress = %d/%d", solved, attempted)
	}
}
