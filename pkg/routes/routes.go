// Package routes declares route groups and registers them on a ServeMux
// using Go 1.22 method-qualified patterns.
package routes

import "net/http"

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Register mounts every group under basePath on mux.
func Register(mux *http.ServeMux, basePath string, groups ...Group) {
	for _, g := range groups {
		register(mux, basePath, g)
	}
}

// Patterns lists every "METHOD path" pattern the groups would register.
func Patterns(basePath string, groups ...Group) []string {
	var out []string
	for _, g := range groups {
		out = appendPatterns(out, basePath, g)
	}
	return out
}

func register(mux *http.ServeMux, parent string, g Group) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		register(mux, prefix, child)
	}
}

func appendPatterns(out []string, parent string, g Group) []string {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		out = append(out, r.Method+" "+prefix+r.Pattern)
	}
	for _, child := range g.Children {
		out = appendPatterns(out, prefix, child)
	}
	return out
}
