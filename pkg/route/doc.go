// Package route implements the per-route matching kernel.
//
// A Route is an immutable specification compiled from a path template plus
// matching constraints (methods, media types, transport security, metadata
// field patterns, and an optional custom predicate). Matching a request
// against a Route runs an ordered chain of checks that short-circuits on the
// first failure, producing:
//
//   - Score: how many checks passed before the chain stopped
//   - Failure: which check rejected the request (FailureNone on success)
//   - Trail: human-readable diagnostics for every evaluated check
//   - Captures: raw named-group values from the path pattern and field checks
//   - Params: final parameter values (defaults merged with decoded captures)
//
// Path templates support named placeholders ({id}), per-token pattern
// overrides, a single optional segment group ({/year,month,day}),
// separator-prefixed optional placeholders ({.format}), and a trailing
// wildcard parameter that captures and splits the remainder of the path.
//
// Routes are safe for concurrent use: the compiled pattern is published
// through a sync.Once cell and all per-attempt state lives in the Attempt
// value returned by Match.
package route
