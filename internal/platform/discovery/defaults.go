// Package discovery centralizes the default listen and dial addresses of
// the numerals services.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceWeb is the web HTTP service identity.
	ServiceWeb = "web"
	// ServiceWebHealth is the gRPC health endpoint that runs beside web.
	ServiceWebHealth = "web-health"
	// ServiceMCP is the MCP HTTP service identity.
	ServiceMCP = "mcp"
)

var ports = map[string]int{
	ServiceWeb:       8080,
	ServiceMCP:       8085,
	ServiceWebHealth: 8092,
}

// DefaultListenAddr returns the ":port" address a service binds by default.
func DefaultListenAddr(service string) string {
	port, ok := ports[strings.TrimSpace(service)]
	if !ok {
		return ""
	}
	return ":" + strconv.Itoa(port)
}

// DefaultDialAddr returns the loopback address clients use to reach a
// locally running service.
func DefaultDialAddr(service string) string {
	listen := DefaultListenAddr(service)
	if listen == "" {
		return ""
	}
	return "localhost" + listen
}

// OrDefaultDialAddr returns value when set, otherwise the service convention.
func OrDefaultDialAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultDialAddr(service)
}
