package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	domainerrors "github.com/louisbranch/numerals.space/internal/platform/errors"
	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice"
	"github.com/louisbranch/numerals.space/internal/services/numerals/registry"
	apperrors "github.com/louisbranch/numerals.space/internal/services/web/platform/errors"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/sessioncookie"
)

const maxBodyBytes = 64 << 10

type handlers struct {
	service *app.Service
}

func newHandlers(service *app.Service) handlers {
	return handlers{service: service}
}

type systemsResponse struct {
	Systems []registry.System `json:"systems"`
}

type problemsResponse struct {
	Difficulty practice.Difficulty `json:"difficulty"`
	Problems   []practice.Problem  `json:"problems"`
}

type convertRequest struct {
	Input     string `json:"input"`
	System    string `json:"system"`
	Direction string `json:"direction"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

func (h handlers) handleSystems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ctx := httpx.RequestContext(r)
	var systems []registry.System
	if filter := strings.TrimSpace(query.Get("filter")); filter != "" {
		filtered, err := h.service.FilterSystems(ctx, filter)
		if err != nil {
			writeError(w, err)
			return
		}
		systems = filtered
	} else {
		systems = h.service.Systems(ctx, registry.Query{Base: query.Get("base"), Search: query.Get("q")})
	}
	_ = httpx.WriteJSON(w, http.StatusOK, systemsResponse{Systems: systems})
}

func (h handlers) handleSystem(w http.ResponseWriter, r *http.Request) {
	system, err := h.service.System(httpx.RequestContext(r), r.PathValue("systemID"))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, system)
}

// handleConvert answers with the engine result. Failures carry the status
// of their code; sentinel successes are 200.
func (h handlers) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if r.Method == http.MethodGet {
		query := r.URL.Query()
		req = convertRequest{Input: query.Get("input"), System: query.Get("system"), Direction: query.Get("direction")}
	} else if err := decodeBody(r, &req, func(values func(string) string) {
		req = convertRequest{Input: values("input"), System: values("system"), Direction: values("direction")}
	}); err != nil {
		writeError(w, err)
		return
	}

	result := h.service.Convert(httpx.RequestContext(r), app.ConvertRequest{
		Input:     req.Input,
		SystemID:  req.System,
		Direction: req.Direction,
	})
	status := http.StatusOK
	if !result.Success {
		status = result.Code.HTTPStatus()
	}
	_ = httpx.WriteJSON(w, status, result)
}

func (h handlers) handleProblems(w http.ResponseWriter, r *http.Request) {
	difficulty, problems, err := h.service.Problems(httpx.RequestContext(r), r.URL.Query().Get("difficulty"))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, problemsResponse{Difficulty: difficulty, Problems: problems})
}

func (h handlers) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeBody(r, &req, func(values func(string) string) {
		req = answerRequest{Answer: values("answer")}
	}); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.service.CheckAnswer(httpx.RequestContext(r), sessioncookie.FromRequest(r), r.PathValue("problemID"), req.Answer)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, result)
}

// decodeBody reads a JSON body, or falls back to form values for other
// content types.
func decodeBody(r *http.Request, target any, fromForm func(func(string) string)) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
		if err := decoder.Decode(target); err != nil && !errors.Is(err, io.EOF) {
			return apperrors.E(apperrors.KindInvalidInput, "request body must be valid JSON")
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return apperrors.E(apperrors.KindInvalidInput, "request form is invalid")
	}
	fromForm(r.PostForm.Get)
	return nil
}

func writeError(w http.ResponseWriter, err error) {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		status := domainErr.Code.HTTPStatus()
		if status < http.StatusBadRequest {
			status = http.StatusUnprocessableEntity
		}
		_ = httpx.WriteJSONError(w, status, string(domainErr.Code), domainErr.Message)
		return
	}
	_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), "", err.Error())
}
