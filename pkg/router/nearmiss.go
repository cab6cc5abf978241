package router

import (
	"sort"
	"strings"

	"github.com/routekit/routekit/pkg/route"
)

// NearMiss is a route that failed to match but got partway through its
// check chain.
type NearMiss struct {
	RouteName string            `json:"routeName,omitempty"`
	Template  string            `json:"template"`
	Score     int               `json:"score"`
	Failure   route.FailureKind `json:"-"`
	FailedOn  string            `json:"failedOn"`
	Trail     []string          `json:"trail"`
	Reason    string            `json:"reason"`
}

// NearMisses evaluates every route and returns the top n failed attempts
// that passed at least one check, best first. Routes that failed their very
// first check are not interesting and are skipped. Only worth calling after
// Match returned nil — zero overhead on matched requests.
func (r *Router) NearMisses(path string, req *route.Request, n int) []NearMiss {
	if n <= 0 {
		n = 3
	}
	if req == nil {
		req = &route.Request{}
	}

	var candidates []NearMiss
	for _, rt := range r.routes {
		a := rt.Match(path, req)
		if a.Matched || a.Score == 0 {
			continue
		}
		candidates = append(candidates, NearMiss{
			RouteName: rt.Name(),
			Template:  rt.Template(),
			Score:     a.Score,
			Failure:   a.Failure,
			FailedOn:  a.Failure.String(),
			Trail:     a.Trail,
			Reason:    buildReason(a),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// buildReason turns an attempt's trail into a one-line explanation of how
// far the route got and what stopped it.
func buildReason(a *route.Attempt) string {
	if len(a.Trail) == 0 {
		return "no checks evaluated"
	}

	last := a.Trail[len(a.Trail)-1]
	var passed []string
	for _, line := range a.Trail[:len(a.Trail)-1] {
		passed = append(passed, strings.TrimSuffix(line, " passed"))
	}
	if len(passed) == 0 {
		return last
	}
	return joinNames(passed) + " passed, but " + last
}

// joinNames joins check names with commas and "and".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
