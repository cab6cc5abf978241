package config

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/routekit/routekit/pkg/route"
)

// CompileGuard compiles an expr guard expression into the engine's typed
// predicate. The expression environment exposes:
//
//	method   string            request method
//	accept   string            raw Accept header
//	https    bool              TLS indicator
//	port     int               server port
//	fields   map[string]string extra metadata fields
//	captures map[string]string captures collected so far
//
// The guard must evaluate to a boolean; a runtime evaluation error rejects
// the request rather than failing the match call.
func CompileGuard(src string) (route.Predicate, error) {
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling guard %q: %w", src, err)
	}

	return func(req *route.Request, captures map[string]string) bool {
		if req == nil {
			req = &route.Request{}
		}
		fields := req.Fields
		if fields == nil {
			fields = map[string]string{}
		}
		if captures == nil {
			captures = map[string]string{}
		}

		out, err := expr.Run(program, map[string]any{
			"method":   req.Method,
			"accept":   req.Accept,
			"https":    req.HTTPS,
			"port":     req.ServerPort,
			"fields":   fields,
			"captures": captures,
		})
		if err != nil {
			return false
		}
		ok, _ := out.(bool)
		return ok
	}, nil
}
