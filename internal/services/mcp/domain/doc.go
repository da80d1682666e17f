// Package domain translates MCP tool calls and resource reads into numerals
// service operations.
//
// Each tool has a Tool constructor describing its schema and a Handler
// constructor bound to an *app.Service. Conversion failures are reported in
// the tool result, not as protocol errors, so clients can render them.
package domain
