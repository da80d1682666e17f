package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ConvertNumberInput represents the MCP tool input for a conversion.
type ConvertNumberInput struct {
	Input     string `json:"input" jsonschema:"arabic integer or cultural numeral text to convert"`
	SystemID  string `json:"system_id" jsonschema:"numeral system id, for example roman or mayan"`
	Direction string `json:"direction,omitempty" jsonschema:"to-cultural (default) or to-arabic"`
}

// ConvertNumberResult represents the MCP tool output for a conversion.
type ConvertNumberResult struct {
	Success bool     `json:"success" jsonschema:"whether the conversion produced a value"`
	Result  string   `json:"result,omitempty" jsonschema:"converted value; N/A for unsupported values"`
	Steps   []string `json:"steps,omitempty" jsonschema:"explanation steps in order"`
	Code    string   `json:"code,omitempty" jsonschema:"error or sentinel code"`
	Error   string   `json:"error,omitempty" jsonschema:"failure message"`
}

// ConvertNumberTool defines the MCP tool schema for conversions.
func ConvertNumberTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "convert_number",
		Description: "Converts between arabic integers and a cultural numeral system, explaining each step",
	}
}

// ConvertNumberHandler executes a conversion through the numerals service.
func ConvertNumberHandler(service *app.Service) mcp.ToolHandlerFor[ConvertNumberInput, ConvertNumberResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ConvertNumberInput) (*mcp.CallToolResult, ConvertNumberResult, error) {
		if service == nil {
			return nil, ConvertNumberResult{}, fmt.Errorf("numerals service is not configured")
		}
		result := service.Convert(ctx, app.ConvertRequest{
			Input:     input.Input,
			SystemID:  input.SystemID,
			Direction: input.Direction,
		})
		return nil, ConvertNumberResult{
			Success: result.Success,
			Result:  result.Value,
			Steps:   result.Steps,
			Code:    string(result.Code),
			Error:   result.Message,
		}, nil
	}
}
