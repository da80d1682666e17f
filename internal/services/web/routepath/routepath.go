// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root    = "/"
	Health  = "/healthz"
	Metrics = "/metrics"

	StaticPrefix = "/static/"

	LibraryPrefix         = "/systems/"
	LibrarySystemPattern  = LibraryPrefix + "{systemID}"
	ConverterPrefix       = "/convert/"
	PracticePrefix        = "/practice/"
	PracticeProblemPrefix = "/practice/problems/"
	PracticeProblemPath   = PracticeProblemPrefix + "{problemID}"
	PracticeAnswerPath    = PracticeProblemPrefix + "{problemID}/answer"
	PracticeHintPath      = PracticeProblemPrefix + "{problemID}/hint"
	PracticeSolutionPath  = PracticeProblemPrefix + "{problemID}/solution"
	PracticeClosePath     = PracticePrefix + "close"

	APIPrefix            = "/api/"
	APISystems           = "/api/systems"
	APISystemPattern     = "/api/systems/{systemID}"
	APIConvert           = "/api/convert"
	APIProblems          = "/api/problems"
	APIProblemAnswerPath = "/api/problems/{problemID}/answer"
)

// LibrarySystem returns the detail page of a system.
func LibrarySystem(systemID string) string {
	return LibraryPrefix + escapeSegment(systemID)
}

// Library returns the library page with query state.
func Library(base, search string) string {
	return withQuery(LibraryPrefix, url.Values{"base": {base}, "q": {search}})
}

// Converter returns the converter page preselecting a system and direction.
func Converter(systemID, direction string) string {
	return withQuery(ConverterPrefix, url.Values{"system": {systemID}, "direction": {direction}})
}

// Practice returns the problem list of a difficulty.
func Practice(difficulty string) string {
	return withQuery(PracticePrefix, url.Values{"difficulty": {difficulty}})
}

// PracticeProblem returns the problem view.
func PracticeProblem(problemID string) string {
	return PracticeProblemPrefix + escapeSegment(problemID)
}

// PracticeAnswer returns the answer endpoint of a problem.
func PracticeAnswer(problemID string) string {
	return PracticeProblem(problemID) + "/answer"
}

// PracticeHint returns the hint endpoint of a problem.
func PracticeHint(problemID string) string {
	return PracticeProblem(problemID) + "/hint"
}

// PracticeSolution returns the solution endpoint of a problem.
func PracticeSolution(problemID string) string {
	return PracticeProblem(problemID) + "/solution"
}

// APISystem returns the JSON detail of a system.
func APISystem(systemID string) string {
	return APISystems + "/" + escapeSegment(systemID)
}

// APIProblemAnswer returns the JSON answer endpoint of a problem.
func APIProblemAnswer(problemID string) string {
	return APIProblems + "/" + escapeSegment(problemID) + "/answer"
}

// Base renders a radix for query strings.
func Base(base int) string {
	return strconv.Itoa(base)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

func withQuery(path string, values url.Values) string {
	for key, value := range values {
		if len(value) == 0 || strings.TrimSpace(value[0]) == "" {
			values.Del(key)
		}
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
