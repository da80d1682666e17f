package practice

import (
	"net/http"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice"
	apperrors "github.com/louisbranch/numerals.space/internal/services/web/platform/errors"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/numerals.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/weberror"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/numerals.space/internal/services/web/templates"
)

type handlers struct {
	service *app.Service
}

func newHandlers(service *app.Service) handlers {
	return handlers{service: service}
}

// session loads the visitor's practice state for the session bound by the
// module middleware.
func (h handlers) session(r *http.Request) (string, practice.State, error) {
	sessionID := sessioncookie.FromRequest(r)
	state, err := h.service.State(httpx.RequestContext(r), sessionID)
	return sessionID, state, err
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	sessionID, state, err := h.session(r)
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	if raw := r.URL.Query().Get("difficulty"); raw != "" {
		difficulty, err := practice.ParseDifficulty(raw)
		if err != nil {
			weberror.WriteModuleError(w, r, err)
			return
		}
		state = state.SelectDifficulty(difficulty)
	} else {
		state = state.CloseProblem()
	}
	if err := h.service.SaveState(httpx.RequestContext(r), sessionID, state); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	h.render(w, r, state)
}

func (h handlers) handleProblem(w http.ResponseWriter, r *http.Request) {
	sessionID, state, err := h.session(r)
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	problemID := r.PathValue("problemID")
	// Reloading the open problem keeps its feedback panel.
	if state.CurrentProblemID != problemID {
		state, err = state.OpenProblem(h.service.ProblemSet(), problemID)
		if err != nil {
			weberror.WriteModuleError(w, r, err)
			return
		}
		if err := h.service.SaveState(httpx.RequestContext(r), sessionID, state); err != nil {
			weberror.WriteModuleError(w, r, err)
			return
		}
	}
	h.render(w, r, state)
}

func (h handlers) handleAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "invalid answer form"))
		return
	}
	sessionID := sessioncookie.FromRequest(r)
	problemID := r.PathValue("problemID")
	if _, err := h.service.CheckAnswer(httpx.RequestContext(r), sessionID, problemID, r.PostForm.Get("answer")); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.PracticeProblem(problemID))
}

func (h handlers) handleHint(w http.ResponseWriter, r *http.Request) {
	h.reveal(w, r, practice.State.ShowHint)
}

func (h handlers) handleSolution(w http.ResponseWriter, r *http.Request) {
	h.reveal(w, r, practice.State.ShowSolution)
}

func (h handlers) reveal(w http.ResponseWriter, r *http.Request, transition func(practice.State) practice.State) {
	sessionID, state, err := h.session(r)
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	problemID := r.PathValue("problemID")
	if state.CurrentProblemID != problemID {
		state, err = state.OpenProblem(h.service.ProblemSet(), problemID)
		if err != nil {
			weberror.WriteModuleError(w, r, err)
			return
		}
	}
	if err := h.service.SaveState(httpx.RequestContext(r), sessionID, transition(state)); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.PracticeProblem(problemID))
}

func (h handlers) handleClose(w http.ResponseWriter, r *http.Request) {
	sessionID, state, err := h.session(r)
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	state = state.CloseProblem()
	if err := h.service.SaveState(httpx.RequestContext(r), sessionID, state); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Practice(string(state.Difficulty)))
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, state practice.State) {
	if err := pagerender.Write(w, r, func(loc webi18n.Localizer) pagerender.ModulePage {
		return pagerender.ModulePage{
			Title:     webtemplates.T(loc, "web.practice.title"),
			ActiveNav: webtemplates.NavPractice,
			Fragment:  webtemplates.PracticePage(practiceView(h.service.ProblemSet(), state), loc),
		}
	}); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func practiceView(set *practice.Set, state practice.State) webtemplates.PracticeView {
	view := webtemplates.PracticeView{}
	view.Solved, view.Attempted = practice.Progress(state)
	for _, difficulty := range practice.Difficulties() {
		view.Tabs = append(view.Tabs, webtemplates.DifficultyTab{
			Value:  string(difficulty),
			URL:    routepath.Practice(string(difficulty)),
			Active: difficulty == state.Difficulty,
		})
	}
	if problem, ok := set.Find(state.CurrentProblemID); ok {
		view.Problem = &webtemplates.ProblemView{
			ID:       problem.ID,
			Title:    problem.Title,
			Content:  problem.Content,
			Hint:     problem.Hint,
			Solution: problem.Solution,
			Feedback: string(state.Feedback),
		}
		return view
	}
	for i, problem := range set.List(state.Difficulty) {
		card := webtemplates.ProblemCard{
			ID:     problem.ID,
			Number: i + 1,
			Title:  problem.Title,
			Type:   problem.Type,
			URL:    routepath.PracticeProblem(problem.ID),
		}
		if correct, answered := state.Answers[problem.ID]; answered {
			card.Status = webtemplates.StatusAttempted
			if correct {
				card.Status = webtemplates.StatusSolved
			}
		}
		view.Problems = append(view.Problems, card)
	}
	return view
}
