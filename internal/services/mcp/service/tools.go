package service

import (
	"fmt"

	"github.com/louisbranch/numerals.space/internal/services/mcp/domain"
	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationKind int

const (
	mcpRegistrationKindTools mcpRegistrationKind = iota
	mcpRegistrationKindResources
)

const (
	mcpConverterToolsModuleName  = "converter-tools"
	mcpLibraryToolsModuleName    = "library-tools"
	mcpPracticeToolsModuleName   = "practice-tools"
	mcpLibraryResourceModuleName = "library-resources"
)

type mcpRegistrationModule struct {
	name     string
	kind     mcpRegistrationKind
	register func(*mcp.Server) error
}

// newMCPRegistrationModules lists tool modules before resource modules.
func newMCPRegistrationModules(service *app.Service) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpConverterToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(server *mcp.Server) error {
				return registerTool(server, domain.ConvertNumberTool(), domain.ConvertNumberHandler(service))
			},
		},
		{
			name: mcpLibraryToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(server *mcp.Server) error {
				return registerTool(server, domain.ListSystemsTool(), domain.ListSystemsHandler(service))
			},
		},
		{
			name: mcpPracticeToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(server *mcp.Server) error {
				if err := registerTool(server, domain.ListProblemsTool(), domain.ListProblemsHandler(service)); err != nil {
					return err
				}
				return registerTool(server, domain.CheckAnswerTool(), domain.CheckAnswerHandler(service))
			},
		},
		{
			name: mcpLibraryResourceModuleName,
			kind: mcpRegistrationKindResources,
			register: func(server *mcp.Server) error {
				server.AddResource(domain.SystemsResource(), domain.SystemsResourceHandler(service))
				server.AddResourceTemplate(domain.SystemResourceTemplate(), domain.SystemResourceHandler(service))
				return nil
			},
		},
	}
}

// registerTool adds a typed tool, turning the SDK's schema panics into errors.
func registerTool[I, O any](server *mcp.Server, tool *mcp.Tool, handler mcp.ToolHandlerFor[I, O]) (err error) {
	if server == nil {
		return fmt.Errorf("mcp server is nil")
	}
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	if handler == nil {
		return fmt.Errorf("tool %q handler is nil", tool.Name)
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("register tool %q: %v", tool.Name, recovered)
		}
	}()
	mcp.AddTool(server, tool, handler)
	return nil
}
