package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/routekit/routekit/pkg/route"
)

// LoadError reports a problem with a specific route file.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Parse builds routes from YAML route file contents, preserving declaration
// order.
func Parse(data []byte) ([]*route.Route, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing route file: %w", err)
	}

	routes := make([]*route.Route, 0, len(file.Routes))
	for i, def := range file.Routes {
		if def == nil {
			continue
		}
		rt, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
		routes = append(routes, rt)
	}
	return routes, nil
}

// LoadFile loads routes from a single YAML file.
func LoadFile(path string) ([]*route.Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "reading route file", Err: err}
	}

	routes, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "loading routes", Err: err}
	}
	return routes, nil
}

// LoadGlob loads routes from every file matching the glob pattern, in
// sorted path order so loading is deterministic. Patterns containing **
// match recursively.
func LoadGlob(pattern string) ([]*route.Route, error) {
	matches, err := expandGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expanding glob pattern: %w", err)
	}
	sort.Strings(matches)

	var routes []*route.Route
	for _, path := range matches {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		routes = append(routes, loaded...)
	}
	return routes, nil
}

// expandGlob expands a glob pattern to matching file paths, using
// doublestar for ** support and filepath.Glob for simple patterns.
func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return doublestar.FilepathGlob(pattern)
	}
	return filepath.Glob(pattern)
}
