package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListProblemsInput represents the MCP tool input for listing problems.
type ListProblemsInput struct {
	Difficulty string `json:"difficulty,omitempty" jsonschema:"beginner (default), intermediate or advanced"`
}

// ProblemEntry is a practice problem without its answer or solution.
type ProblemEntry struct {
	ID      string `json:"id" jsonschema:"problem id"`
	Title   string `json:"title" jsonschema:"problem title"`
	Type    string `json:"type" jsonschema:"problem kind"`
	Content string `json:"content" jsonschema:"problem statement as HTML"`
	Hint    string `json:"hint,omitempty" jsonschema:"optional hint"`
}

// ListProblemsResult represents the MCP tool output for listing problems.
type ListProblemsResult struct {
	Difficulty string         `json:"difficulty" jsonschema:"difficulty that was listed"`
	Problems   []ProblemEntry `json:"problems" jsonschema:"problems in browsing order"`
}

// ListProblemsTool defines the MCP tool schema for listing practice problems.
func ListProblemsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_practice_problems",
		Description: "Lists practice problems for a difficulty without revealing answers",
	}
}

// ListProblemsHandler lists problems through the numerals service.
func ListProblemsHandler(service *app.Service) mcp.ToolHandlerFor[ListProblemsInput, ListProblemsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListProblemsInput) (*mcp.CallToolResult, ListProblemsResult, error) {
		if service == nil {
			return nil, ListProblemsResult{}, fmt.Errorf("numerals service is not configured")
		}
		difficulty, problems, err := service.Problems(ctx, input.Difficulty)
		if err != nil {
			return nil, ListProblemsResult{}, err
		}
		out := ListProblemsResult{
			Difficulty: string(difficulty),
			Problems:   make([]ProblemEntry, 0, len(problems)),
		}
		for _, problem := range problems {
			out.Problems = append(out.Problems, ProblemEntry{
				ID:      problem.ID,
				Title:   problem.Title,
				Type:    problem.Type,
				Content: problem.Content,
				Hint:    problem.Hint,
			})
		}
		return nil, out, nil
	}
}

// CheckAnswerInput represents the MCP tool input for grading an answer.
type CheckAnswerInput struct {
	ProblemID string `json:"problem_id" jsonschema:"problem id, for example b1"`
	Answer    string `json:"answer" jsonschema:"proposed answer"`
	SessionID string `json:"session_id,omitempty" jsonschema:"optional practice session id used to record progress"`
}

// CheckAnswerResult represents the MCP tool output for grading an answer.
type CheckAnswerResult struct {
	ProblemID string `json:"problem_id" jsonschema:"graded problem id"`
	Correct   bool   `json:"correct" jsonschema:"whether the answer matched"`
	Feedback  string `json:"feedback" jsonschema:"correct, incorrect or empty"`
}

// CheckAnswerTool defines the MCP tool schema for grading answers.
func CheckAnswerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "check_practice_answer",
		Description: "Checks an answer to a practice problem, ignoring case, spacing and commas",
	}
}

// CheckAnswerHandler grades an answer through the numerals service.
func CheckAnswerHandler(service *app.Service) mcp.ToolHandlerFor[CheckAnswerInput, CheckAnswerResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckAnswerInput) (*mcp.CallToolResult, CheckAnswerResult, error) {
		if service == nil {
			return nil, CheckAnswerResult{}, fmt.Errorf("numerals service is not configured")
		}
		result, err := service.CheckAnswer(ctx, input.SessionID, input.ProblemID, input.Answer)
		if err != nil {
			return nil, CheckAnswerResult{}, err
		}
		return nil, CheckAnswerResult{
			ProblemID: result.ProblemID,
			Correct:   result.Correct,
			Feedback:  string(result.Feedback),
		}, nil
	}
}
