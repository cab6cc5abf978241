package router

import (
	"log/slog"

	"github.com/routekit/routekit/pkg/logging"
	"github.com/routekit/routekit/pkg/route"
)

// Match pairs the winning route with its successful attempt.
type Match struct {
	Route   *route.Route
	Attempt *route.Attempt
}

// Router is an ordered, append-only collection of routes. It is safe for
// concurrent matching once registration is done; registration itself is not
// synchronized.
type Router struct {
	routes []*route.Route
	log    *slog.Logger
}

// New creates an empty router.
func New() *Router {
	return &Router{log: logging.Nop()}
}

// SetLogger sets the logger used for match decisions.
func (r *Router) SetLogger(log *slog.Logger) {
	if log != nil {
		r.log = log
	}
}

// Add appends routes in registration order.
func (r *Router) Add(routes ...*route.Route) {
	r.routes = append(r.routes, routes...)
}

// Routes returns the registered routes in order.
func (r *Router) Routes() []*route.Route {
	return append([]*route.Route(nil), r.routes...)
}

// Match evaluates every route against the request and returns the match
// with the highest score, or nil when no route matches. Earlier
// registration wins ties.
func (r *Router) Match(path string, req *route.Request) *Match {
	if req == nil {
		req = &route.Request{}
	}

	var best *Match
	for _, rt := range r.routes {
		a := rt.Match(path, req)
		if !a.Matched {
			continue
		}
		if best == nil || a.Score > best.Attempt.Score {
			best = &Match{Route: rt, Attempt: a}
		}
	}

	if best == nil {
		r.log.Debug("no route matched", "path", path, "method", req.Method)
		return nil
	}
	r.log.Debug("route matched",
		"path", path,
		"route", best.Route.Name(),
		"score", best.Attempt.Score)
	return best
}
