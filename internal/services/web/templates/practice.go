package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
)

// Feedback kinds rendered under a problem.
const (
	FeedbackEmpty     = "empty"
	FeedbackCorrect   = "correct"
	FeedbackIncorrect = "incorrect"
	FeedbackHint      = "hint"
	FeedbackSolution  = "solution"
)

// Problem statuses shown on list cards.
const (
	StatusSolved    = "solved"
	StatusAttempted = "attempted"
)

// DifficultyTab is one difficulty selector.
type DifficultyTab struct {
	Value  string
	URL    string
	Active bool
}

// ProblemCard is one entry of the problem list.
type ProblemCard struct {
	ID     string
	Number int
	Title  string
	Type   string
	URL    string
	Status string
}

// ProblemView is an open problem. Content, Hint and Solution are trusted
// markup from the embedded problem set.
type ProblemView struct {
	ID       string
	Title    string
	Content  string
	Hint     string
	Solution string
	Answer   string
	Feedback string
}

// PracticeView is the practice page state.
type PracticeView struct {
	Tabs      []DifficultyTab
	Problems  []ProblemCard
	Solved    int
	Attempted int
	Problem   *ProblemView
}

// PracticePage renders either the problem list or the open problem.
func PracticePage(view PracticeView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTML(w)
		h.open("section", "class", "practice")
		h.elem("h1", T(loc, "web.practice.title"))
		h.open("nav", "class", "difficulty-tabs")
		for _, tab := range view.Tabs {
			attrs := []string{"href", tab.URL, "data-difficulty", tab.Value, "class", classes("difficulty-btn", activeClass(tab.Active))}
			attrs = append(attrs, when(tab.Active, "aria-current", "page")...)
			h.elem("a", T(loc, "web.practice.difficulty."+tab.Value), attrs...)
		}
		h.close("nav")
		h.elem("p", T(loc, "web.practice.progress", view.Solved, view.Attempted), "class", "practice-progress")

		if view.Problem != nil {
			writeProblem(h, *view.Problem, loc)
		} else {
			writeProblemList(h, view.Problems, loc)
		}
		h.close("section")
		return h.err
	})
}

func writeProblemList(h *html, problems []ProblemCard, loc Localizer) {
	if len(problems) == 0 {
		h.elem("p", T(loc, "web.practice.empty"), "class", "empty-state")
		return
	}
	h.open("div", "id", "problems-list", "class", "problems-list")
	for _, card := range problems {
		h.open("a", "class", classes("problem-card-preview", card.Status), "href", card.URL, "data-problem-id", card.ID)
		h.elem("span", T(loc, "web.practice.problem_number", card.Number), "class", "problem-number")
		h.elem("h4", card.Title, "class", "problem-preview-title")
		h.elem("p", card.Type, "class", "problem-type")
		switch card.Status {
		case StatusSolved:
			h.elem("span", T(loc, "web.practice.status_solved"), "class", "problem-status")
		case StatusAttempted:
			h.elem("span", T(loc, "web.practice.status_attempted"), "class", "problem-status")
		}
		h.close("a")
	}
	h.close("div")
}

func writeProblem(h *html, problem ProblemView, loc Localizer) {
	h.open("article", "id", "problem-view", "class", "problem-view", "data-problem-id", problem.ID)
	h.elem("h3", problem.Title, "id", "problem-title")
	h.open("div", "id", "problem-content", "class", "problem-content").raw(problem.Content).close("div")

	h.open("form", "class", "answer-form", "method", "post", "action", routepath.PracticeAnswer(problem.ID))
	h.elem("label", T(loc, "web.practice.answer_label"), "for", "problem-answer")
	h.open("input", "type", "text", "id", "problem-answer", "name", "answer", "class", "converter-input",
		"value", problem.Answer, "placeholder", T(loc, "web.practice.answer_placeholder"), "autocomplete", "off")
	h.elem("button", T(loc, "web.practice.check"), "type", "submit", "id", "check-answer")
	h.close("form")

	h.open("div", "class", "problem-actions")
	for _, action := range []struct{ url, key, id string }{
		{routepath.PracticeHint(problem.ID), "web.practice.hint", "show-hint"},
		{routepath.PracticeSolution(problem.ID), "web.practice.solution", "show-solution"},
		{routepath.PracticeClosePath, "web.practice.close", "close-problem"},
	} {
		h.open("form", "method", "post", "action", action.url)
		h.elem("button", T(loc, action.key), "type", "submit", "id", action.id)
		h.close("form")
	}
	h.close("div")

	writeFeedback(h, problem, loc)
	h.close("article")
}

func writeFeedback(h *html, problem ProblemView, loc Localizer) {
	if problem.Feedback == "" {
		return
	}
	h.open("div", "id", "problem-feedback", "class", classes("problem-feedback", problem.Feedback), "role", "status")
	switch problem.Feedback {
	case FeedbackEmpty:
		h.elem("p", T(loc, "web.practice.feedback_empty"))
	case FeedbackCorrect:
		h.elem("h4", T(loc, "web.practice.feedback_correct_title"))
		h.elem("p", T(loc, "web.practice.feedback_correct"))
	case FeedbackIncorrect:
		h.elem("h4", T(loc, "web.practice.feedback_incorrect_title"))
		h.elem("p", T(loc, "web.practice.feedback_incorrect"))
	case FeedbackHint:
		h.elem("h4", T(loc, "web.practice.hint_title"))
		h.open("p").raw(problem.Hint).close("p")
	case FeedbackSolution:
		h.raw(problem.Solution)
	}
	h.close("div")
}
