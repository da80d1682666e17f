// Package app is the numerals facade shared by the web, MCP and CLI surfaces.
//
// It routes calls to the engine, registry and practice packages and adds
// tracing, metrics and optional persistence of practice sessions.
package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/numerals.space/internal/platform/errors"
	"github.com/louisbranch/numerals.space/internal/platform/metrics"
	platformotel "github.com/louisbranch/numerals.space/internal/platform/otel"
	"github.com/louisbranch/numerals.space/internal/services/numerals/engine"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice/storage"
	"github.com/louisbranch/numerals.space/internal/services/numerals/registry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Service is safe for concurrent use once constructed.
type Service struct {
	systems  *registry.Registry
	problems *practice.Set
	store    storage.SessionStore
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithRegistry replaces the embedded system catalog.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.systems = r
		}
	}
}

// WithProblemSet replaces the embedded practice problems.
func WithProblemSet(set *practice.Set) Option {
	return func(s *Service) {
		if set != nil {
			s.problems = set
		}
	}
}

// WithSessionStore persists practice state and attempts.
func WithSessionStore(store storage.SessionStore) Option {
	return func(s *Service) { s.store = store }
}

// WithMetrics records conversions and answer checks.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithTracer overrides the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New builds a Service over the embedded catalog and problems.
func New(opts ...Option) *Service {
	s := &Service{
		systems:  registry.Default(),
		problems: practice.DefaultSet(),
		tracer:   platformotel.Tracer(),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ConvertRequest carries raw user input. Direction may be blank.
type ConvertRequest struct {
	Input     string
	SystemID  string
	Direction string
}

// Metric labels for values outside the catalog or the known directions.
const (
	unknownSystemLabel    = "unknown"
	invalidDirectionLabel = "invalid"
)

// Convert runs one conversion. Failures are reported inside the Result.
//
// The system id must resolve in the service's registry before the engine is
// consulted, so a catalog installed with WithRegistry bounds what converts.
func (s *Service) Convert(ctx context.Context, req ConvertRequest) engine.Result {
	systemID := strings.TrimSpace(req.SystemID)
	direction, err := engine.ParseDirection(req.Direction)
	directionLabel := string(direction)
	if err != nil {
		direction = engine.Direction(strings.TrimSpace(req.Direction))
		directionLabel = invalidDirectionLabel
	}

	_, span := s.tracer.Start(ctx, "numerals.convert", trace.WithAttributes(
		attribute.String("numerals.system", systemID),
		attribute.String("numerals.direction", string(direction)),
	))
	defer span.End()

	_, known := s.systems.Get(systemID)
	started := s.now()
	var result engine.Result
	if known {
		result = engine.Convert(req.Input, systemID, direction)
	} else {
		result = systemNotFound(systemID)
	}
	elapsed := s.now().Sub(started)

	span.SetAttributes(attribute.Bool("numerals.success", result.Success))
	if result.Code != "" {
		span.SetAttributes(attribute.String("numerals.code", string(result.Code)))
	}
	if !result.Success {
		span.SetStatus(codes.Error, result.Message)
	}

	systemLabel := systemID
	if !known {
		systemLabel = unknownSystemLabel
	}
	s.metrics.ObserveConversion(systemLabel, directionLabel, string(result.Code), elapsed)
	return result
}

func systemNotFound(systemID string) engine.Result {
	return engine.Result{
		Code:     errors.CodeSystemNotFound,
		Message:  "System not found",
		Metadata: map[string]string{"System": systemID},
	}
}

// Systems lists the catalog filtered by the library query.
func (s *Service) Systems(_ context.Context, q registry.Query) []registry.System {
	return registry.Apply(s.systems.List(), q)
}

// FilterSystems lists systems matching an AIP-160 filter expression.
func (s *Service) FilterSystems(_ context.Context, filter string) ([]registry.System, error) {
	pred, err := registry.ParseFilter(filter)
	if err != nil {
		return nil, &errors.Error{
			Code:     errors.CodeInvalidFilter,
			Message:  fmt.Sprintf("Invalid filter expression: %v", err),
			Metadata: map[string]string{"Reason": err.Error()},
			Cause:    err,
		}
	}
	return registry.Filter(s.systems.List(), pred), nil
}

// System returns one catalog entry.
func (s *Service) System(_ context.Context, id string) (registry.System, error) {
	system, ok := s.systems.Get(strings.TrimSpace(id))
	if !ok {
		return registry.System{}, errors.WithMetadata(
			errors.CodeSystemNotFound,
			"Numeral system not found",
			map[string]string{"SystemID": id},
		)
	}
	return system, nil
}

// Bases returns the distinct radices in the catalog.
func (s *Service) Bases() []int {
	return s.systems.Bases()
}

// Problems lists the problems of a difficulty. Blank means beginner.
func (s *Service) Problems(_ context.Context, difficulty string) (practice.Difficulty, []practice.Problem, error) {
	d, err := practice.ParseDifficulty(difficulty)
	if err != nil {
		return "", nil, err
	}
	return d, s.problems.List(d), nil
}

// Problem returns one problem by id.
func (s *Service) Problem(_ context.Context, id string) (practice.Problem, error) {
	problem, ok := s.problems.Find(id)
	if !ok {
		return practice.Problem{}, practice.ErrProblemNotFound(id)
	}
	return problem, nil
}

// ProblemSet exposes the problems backing this service.
func (s *Service) ProblemSet() *practice.Set {
	return s.problems
}

// AnswerResult is the outcome of one answer check.
type AnswerResult struct {
	ProblemID string            `json:"problem_id"`
	Correct   bool              `json:"correct"`
	Feedback  practice.Feedback `json:"feedback"`
	State     practice.State    `json:"-"`
}

// CheckAnswer opens problemID in the session, grades answer and persists
// the new state. A blank sessionID grades without persistence.
func (s *Service) CheckAnswer(ctx context.Context, sessionID, problemID, answer string) (AnswerResult, error) {
	ctx, span := s.tracer.Start(ctx, "numerals.check_answer", trace.WithAttributes(
		attribute.String("numerals.problem_id", problemID),
	))
	defer span.End()

	state, err := s.State(ctx, sessionID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return AnswerResult{}, err
	}
	state, err = state.OpenProblem(s.problems, problemID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return AnswerResult{}, err
	}
	state, correct, err := state.CheckAnswer(s.problems, answer)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return AnswerResult{}, err
	}
	span.SetAttributes(attribute.Bool("numerals.correct", correct))

	problem, _ := s.problems.Find(state.CurrentProblemID)
	if state.Feedback != practice.FeedbackEmpty {
		s.metrics.ObserveAnswerCheck(string(problem.Difficulty), correct)
		if err := s.recordAttempt(ctx, sessionID, problem.ID, answer, correct); err != nil {
			return AnswerResult{}, err
		}
	}
	if err := s.SaveState(ctx, sessionID, state); err != nil {
		return AnswerResult{}, err
	}
	return AnswerResult{
		ProblemID: problem.ID,
		Correct:   correct,
		Feedback:  state.Feedback,
		State:     state,
	}, nil
}

// State loads the practice state of a session, starting fresh when the
// session is unknown or no store is configured.
func (s *Service) State(ctx context.Context, sessionID string) (practice.State, error) {
	if s.store == nil || strings.TrimSpace(sessionID) == "" {
		return practice.NewState(), nil
	}
	state, err := s.store.LoadState(ctx, sessionID)
	if stderrors.Is(err, storage.ErrNotFound) {
		return practice.NewState(), nil
	}
	if err != nil {
		return practice.State{}, errors.Wrap(errors.CodeInternal, "Could not load practice session", err)
	}
	if state.Difficulty == "" {
		state.Difficulty = practice.Beginner
	}
	return state, nil
}

// SaveState persists state when a store and session are available.
func (s *Service) SaveState(ctx context.Context, sessionID string, state practice.State) error {
	if s.store == nil || strings.TrimSpace(sessionID) == "" {
		return nil
	}
	if err := s.store.SaveState(ctx, sessionID, state); err != nil {
		return errors.Wrap(errors.CodeInternal, "Could not save practice session", err)
	}
	return nil
}

// Attempts lists recent attempts of a session, newest first.
func (s *Service) Attempts(ctx context.Context, sessionID string, limit int) ([]storage.Attempt, error) {
	if s.store == nil || strings.TrimSpace(sessionID) == "" {
		return nil, nil
	}
	attempts, err := s.store.ListAttempts(ctx, sessionID, limit)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "Could not list practice attempts", err)
	}
	return attempts, nil
}

func (s *Service) recordAttempt(ctx context.Context, sessionID, problemID, answer string, correct bool) error {
	if s.store == nil || strings.TrimSpace(sessionID) == "" {
		return nil
	}
	err := s.store.RecordAttempt(ctx, storage.Attempt{
		SessionID: sessionID,
		ProblemID: problemID,
		Answer:    answer,
		Correct:   correct,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return errors.Wrap(errors.CodeInternal, "Could not record practice attempt", err)
	}
	return nil
}
