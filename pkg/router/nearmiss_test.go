package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/pkg/route"
)

func TestNearMissesRanksByScore(t *testing.T) {
	r := New()
	r.Add(
		// Fails immediately: unroutable, score 0, not a near miss.
		route.New(route.Config{
			Name:     "disabled",
			Template: "/users/{id}",
			Routable: boolPtr(false),
		}),
		// Fails on pattern: score 1.
		route.New(route.Config{Name: "posts", Template: "/posts/{id}"}),
		// Passes pattern, fails on method: score 2.
		route.New(route.Config{
			Name:     "users",
			Template: "/users/{id}",
			Methods:  []string{"GET"},
		}),
	)

	misses := r.NearMisses("/users/5", &route.Request{Method: "DELETE"}, 5)
	require.Len(t, misses, 2)

	assert.Equal(t, "users", misses[0].RouteName)
	assert.Equal(t, 2, misses[0].Score)
	assert.Equal(t, route.FailureMethod, misses[0].Failure)
	assert.Equal(t, "method", misses[0].FailedOn)
	assert.Contains(t, misses[0].Reason, "routable and pattern passed, but")

	assert.Equal(t, "posts", misses[1].RouteName)
	assert.Equal(t, route.FailurePattern, misses[1].Failure)
}

func TestNearMissesTruncatesToTopN(t *testing.T) {
	r := New()
	for _, tpl := range []string{"/a/{x}", "/b/{x}", "/c/{x}", "/d/{x}"} {
		r.Add(route.New(route.Config{Template: tpl, Methods: []string{"GET"}}))
	}

	// All four fail on pattern with score 1.
	misses := r.NearMisses("/z/1", &route.Request{Method: "GET"}, 2)
	assert.Len(t, misses, 2)

	// Default cap is 3.
	misses = r.NearMisses("/z/1", &route.Request{Method: "GET"}, 0)
	assert.Len(t, misses, 3)
}

func TestNearMissesEmptyWhenRequestMatches(t *testing.T) {
	r := New()
	r.Add(route.New(route.Config{Template: "/ok"}))

	assert.Empty(t, r.NearMisses("/ok", &route.Request{}, 3))
}

func TestBuildReasonSingleFailure(t *testing.T) {
	rt := route.New(route.Config{Template: "/x", Routable: boolPtr(false)})
	a := rt.Match("/x", &route.Request{})

	reason := buildReason(a)
	assert.Contains(t, reason, "routable failed")
	assert.NotContains(t, reason, "passed, but")
}
