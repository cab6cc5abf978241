package route

import (
	"fmt"
	"strings"
)

// FailureKind classifies which check first rejected a request. Checks run in
// a fixed order and short-circuit, so at most one kind is set per attempt.
type FailureKind int

const (
	// FailureNone means the attempt did not fail.
	FailureNone FailureKind = iota

	// FailureRoutable means the route is not routable at all.
	FailureRoutable

	// FailureSecure means the transport security requirement was not met.
	FailureSecure

	// FailurePattern means the path did not match the compiled pattern.
	FailurePattern

	// FailureMethod means the request method is not allowed.
	FailureMethod

	// FailureAccept means content negotiation against the Accept header failed.
	FailureAccept

	// FailureField means a required metadata field pattern did not match.
	FailureField

	// FailurePredicate means the custom predicate rejected the request.
	FailurePredicate
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureRoutable:
		return "routable"
	case FailureSecure:
		return "secure"
	case FailurePattern:
		return "pattern"
	case FailureMethod:
		return "method"
	case FailureAccept:
		return "accept"
	case FailureField:
		return "field"
	case FailurePredicate:
		return "predicate"
	default:
		return "unknown"
	}
}

// Attempt is the outcome of matching one request against one route. A fresh
// Attempt is returned from every Match call; it is never shared between
// evaluations.
type Attempt struct {
	// Matched reports whether every check passed.
	Matched bool

	// Score counts the checks that passed before the chain stopped. On a
	// full match it equals the number of checks the route declares.
	Score int

	// Failure classifies the first failing check, or FailureNone.
	Failure FailureKind

	// Trail holds one diagnostic line per evaluated check, in order.
	Trail []string

	// Captures holds the raw named-group values from the path pattern and
	// any field-constraint sub-groups. Populated only once the pattern
	// check has passed.
	Captures map[string]string

	// Params is the final parameter mapping, populated only on success:
	// defaults overlaid with percent-decoded non-empty captures.
	Params map[string]string

	// Wildcard holds the decoded wildcard path segments in order. It is nil
	// when the route declares no wildcard parameter, and empty (not nil)
	// when the parameter is declared but the request supplied no remainder.
	Wildcard []string
}

// FailedMethod reports whether the attempt failed specifically on the method
// check. Useful for mapping to a 405 upstream.
func (a *Attempt) FailedMethod() bool { return a.Failure == FailureMethod }

// FailedAccept reports whether the attempt failed specifically on content
// negotiation. Useful for mapping to a 406 upstream.
func (a *Attempt) FailedAccept() bool { return a.Failure == FailureAccept }

// check is one named stage of the match chain.
type check struct {
	name string
	kind FailureKind
	run  func(path string, req *Request, a *Attempt) (bool, string)
}

// buildChain assembles the ordered check chain for this route. Only
// applicable checks are included, so an attempt's score reflects exactly the
// checks that were evaluated.
func (r *Route) buildChain() []check {
	chain := []check{{name: "routable", kind: FailureRoutable, run: r.checkRoutable}}
	if r.secure != nil {
		chain = append(chain, check{name: "secure", kind: FailureSecure, run: r.checkSecure})
	}
	chain = append(chain, check{name: "pattern", kind: FailurePattern, run: r.checkPattern})
	if len(r.methods) > 0 {
		chain = append(chain, check{name: "method", kind: FailureMethod, run: r.checkMethod})
	}
	if len(r.accepts) > 0 {
		chain = append(chain, check{name: "accept", kind: FailureAccept, run: r.checkAccept})
	}
	for _, name := range r.fieldKeys {
		chain = append(chain, check{name: "field " + name, kind: FailureField, run: r.checkField(name)})
	}
	if r.predicate != nil {
		chain = append(chain, check{name: "predicate", kind: FailurePredicate, run: r.checkPredicate})
	}
	return chain
}

// Match evaluates the route against a path and request metadata. Checks run
// strictly in order and stop at the first failure; unevaluated checks
// contribute neither score nor trail entries. Non-match is an expected
// outcome, never an error.
func (r *Route) Match(path string, req *Request) *Attempt {
	if req == nil {
		req = &Request{}
	}

	a := &Attempt{Failure: FailureNone}
	for _, c := range r.chain {
		ok, note := c.run(path, req, a)
		if !ok {
			a.Failure = c.kind
			a.Trail = append(a.Trail, failLine(c.name, note))
			return a
		}
		a.Score++
		a.Trail = append(a.Trail, c.name+" passed")
	}

	a.Params, a.Wildcard = r.extractParams(a.Captures)
	a.Matched = true
	return a
}

// IsMatch reports whether the route matches, discarding the attempt detail.
func (r *Route) IsMatch(path string, req *Request) bool {
	return r.Match(path, req).Matched
}

func failLine(name, note string) string {
	if note == "" {
		return name + " failed"
	}
	return name + " failed: " + note
}

func (r *Route) checkRoutable(string, *Request, *Attempt) (bool, string) {
	if !r.routable {
		return false, "route is not routable"
	}
	return true, ""
}

func (r *Route) checkSecure(_ string, req *Request, _ *Attempt) (bool, string) {
	if req.Secure() != *r.secure {
		return false, fmt.Sprintf("transport secure=%v, route requires %v", req.Secure(), *r.secure)
	}
	return true, ""
}

func (r *Route) checkPattern(path string, _ *Request, a *Attempt) (bool, string) {
	re, err := r.compiled()
	if err != nil {
		return false, "template did not compile: " + err.Error()
	}

	m := re.FindStringSubmatch(path)
	if m == nil {
		return false, fmt.Sprintf("%q does not match %s", path, re.String())
	}

	a.Captures = make(map[string]string)
	for i, name := range re.SubexpNames() {
		if i > 0 && name != "" && i < len(m) {
			a.Captures[name] = m[i]
		}
	}
	return true, ""
}

func (r *Route) checkMethod(_ string, req *Request, _ *Attempt) (bool, string) {
	for _, m := range r.methods {
		if strings.EqualFold(m, req.Method) {
			return true, ""
		}
	}
	return false, fmt.Sprintf("method %q not in %v", req.Method, r.methods)
}

func (r *Route) checkAccept(_ string, req *Request, _ *Attempt) (bool, string) {
	if matchAccept(r.accepts, req.Accept) {
		return true, ""
	}
	return false, fmt.Sprintf("accept header %q matches none of %v", req.Accept, r.accepts)
}

// checkField builds the check for a single metadata field constraint. A
// missing field is treated as an empty string; named sub-groups of a
// matching pattern are merged into the capture set.
func (r *Route) checkField(name string) func(string, *Request, *Attempt) (bool, string) {
	return func(_ string, req *Request, a *Attempt) (bool, string) {
		r.compiled()
		if err := r.fieldErrs[name]; err != nil {
			return false, fmt.Sprintf("pattern for %s did not compile: %v", name, err)
		}

		re := r.fieldRes[name]
		val := req.Field(name)
		m := re.FindStringSubmatch(val)
		if m == nil {
			return false, fmt.Sprintf("%s=%q does not match %q", name, val, re.String())
		}

		for i, sub := range re.SubexpNames() {
			if i > 0 && sub != "" && i < len(m) {
				a.Captures[sub] = m[i]
			}
		}
		return true, ""
	}
}

func (r *Route) checkPredicate(_ string, req *Request, a *Attempt) (bool, string) {
	if r.predicate(req, a.Captures) {
		return true, ""
	}
	return false, "custom predicate rejected the request"
}
