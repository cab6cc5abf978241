package config

import (
	"errors"
	"fmt"

	"github.com/routekit/routekit/internal/id"
	"github.com/routekit/routekit/pkg/route"
)

// File is the top-level structure of a route declaration file.
type File struct {
	// Version is the declaration format version.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Routes lists the declared routes in registration order.
	Routes []*RouteDef `yaml:"routes" json:"routes"`
}

// RouteDef is one declared route.
type RouteDef struct {
	Name     string            `yaml:"name,omitempty" json:"name,omitempty"`
	Template string            `yaml:"template" json:"template"`
	Defaults map[string]string `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Patterns map[string]string `yaml:"patterns,omitempty" json:"patterns,omitempty"`
	Methods  []string          `yaml:"methods,omitempty" json:"methods,omitempty"`
	Accepts  []string          `yaml:"accepts,omitempty" json:"accepts,omitempty"`
	Fields   map[string]string `yaml:"fields,omitempty" json:"fields,omitempty"`
	Secure   *bool             `yaml:"secure,omitempty" json:"secure,omitempty"`
	Routable *bool             `yaml:"routable,omitempty" json:"routable,omitempty"`
	Wildcard string            `yaml:"wildcard,omitempty" json:"wildcard,omitempty"`
	Guard    string            `yaml:"guard,omitempty" json:"guard,omitempty"`
}

// Build converts the declaration into an immutable route. Unnamed routes
// get a generated name.
func (d *RouteDef) Build() (*route.Route, error) {
	if d.Template == "" {
		return nil, errors.New("route template is required")
	}

	cfg := route.Config{
		Name:          d.Name,
		Template:      d.Template,
		Defaults:      d.Defaults,
		TokenPatterns: d.Patterns,
		Methods:       d.Methods,
		AcceptTypes:   d.Accepts,
		FieldPatterns: d.Fields,
		Secure:        d.Secure,
		Routable:      d.Routable,
		WildcardParam: d.Wildcard,
	}
	if cfg.Name == "" {
		cfg.Name = id.RouteName()
	}
	if d.Guard != "" {
		pred, err := CompileGuard(d.Guard)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", cfg.Name, err)
		}
		cfg.Predicate = pred
	}

	return route.New(cfg), nil
}
