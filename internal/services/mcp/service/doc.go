// Package service wires MCP transports to the numerals domain handlers.
//
// The package knows how to run MCP over stdio or streamable HTTP and
// delegates meaning to the handlers in the domain package.
package service
