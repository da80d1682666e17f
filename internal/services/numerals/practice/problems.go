// Package practice holds the practice puzzles, answer checking and the
// explicit state of a practice session.
package practice

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/errors"
	"github.com/pelletier/go-toml/v2"
)

//go:embed problems.toml
var problemsTOML []byte

// Difficulty groups problems for browsing.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

var difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// Difficulties returns the difficulties in browsing order.
func Difficulties() []Difficulty {
	return append([]Difficulty(nil), difficulties...)
}

// ParseDifficulty validates a difficulty. Blank defaults to Beginner.
func ParseDifficulty(value string) (Difficulty, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return Beginner, nil
	}
	for _, d := range difficulties {
		if string(d) == trimmed {
			return d, nil
		}
	}
	return "", errors.WithMetadata(
		errors.CodeInvalidDifficulty,
		fmt.Sprintf("Unknown difficulty: %s", value),
		map[string]string{"Difficulty": value},
	)
}

// Problem is one practice puzzle. Content and Solution are trusted HTML.
type Problem struct {
	ID         string     `toml:"id" json:"id"`
	Title      string     `toml:"title" json:"title"`
	Type       string     `toml:"type" json:"type"`
	Difficulty Difficulty `toml:"difficulty" json:"difficulty"`
	Content    string     `toml:"content" json:"content"`
	Answer     string     `toml:"answer" json:"-"`
	Hint       string     `toml:"hint" json:"hint"`
	Solution   string     `toml:"solution" json:"-"`
}

type problemsFile struct {
	Problems []Problem `toml:"problems"`
}

// Set is an immutable problem collection.
type Set struct {
	problems []Problem
	byID     map[string]int
}

var defaultSet = mustLoadSet(problemsTOML)

func mustLoadSet(data []byte) *Set {
	set, err := LoadSet(data)
	if err != nil {
		panic(fmt.Sprintf("load practice problems: %v", err))
	}
	return set
}

// LoadSet decodes a problems TOML document. Ids must be unique, every
// difficulty known, and every problem must carry an answer.
func LoadSet(data []byte) (*Set, error) {
	var file problemsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode problems: %w", err)
	}

	set := &Set{byID: make(map[string]int, len(file.Problems))}
	for i, problem := range file.Problems {
		if strings.TrimSpace(problem.ID) == "" {
			return nil, fmt.Errorf("problem %d: id is required", i)
		}
		if _, dup := set.byID[problem.ID]; dup {
			return nil, fmt.Errorf("problem %q: duplicate id", problem.ID)
		}
		if _, err := ParseDifficulty(string(problem.Difficulty)); err != nil || problem.Difficulty == "" {
			return nil, fmt.Errorf("problem %q: unknown difficulty %q", problem.ID, problem.Difficulty)
		}
		if strings.TrimSpace(problem.Answer) == "" {
			return nil, fmt.Errorf("problem %q: answer is required", problem.ID)
		}
		problem.Content = strings.TrimSpace(problem.Content)
		problem.Solution = strings.TrimSpace(problem.Solution)
		set.byID[problem.ID] = len(set.problems)
		set.problems = append(set.problems, problem)
	}
	return set, nil
}

// DefaultSet returns the embedded problems.
func DefaultSet() *Set {
	return defaultSet
}

// List returns the problems of d in declaration order.
func (s *Set) List(d Difficulty) []Problem {
	var out []Problem
	for _, problem := range s.problems {
		if problem.Difficulty == d {
			out = append(out, problem)
		}
	}
	return out
}

// Find returns the problem with id, whatever its difficulty.
func (s *Set) Find(id string) (Problem, bool) {
	idx, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return Problem{}, false
	}
	return s.problems[idx], true
}

// ListProblems returns the embedded problems of d.
func ListProblems(d Difficulty) []Problem {
	return defaultSet.List(d)
}

// FindProblem looks up an embedded problem by id.
func FindProblem(id string) (Problem, bool) {
	return defaultSet.Find(id)
}

// ErrProblemNotFound builds the lookup failure for id.
func ErrProblemNotFound(id string) error {
	return errors.WithMetadata(errors.CodeProblemNotFound, "Practice problem not found", map[string]string{"ProblemID": id})
}
