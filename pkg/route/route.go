package route

import (
	"maps"
	"regexp"
	"sort"
	"sync"
)

// Predicate is a custom match check invoked with the request metadata and the
// captures collected so far. Returning false rejects the route.
type Predicate func(req *Request, captures map[string]string) bool

// Config declares a route. It is copied at construction; the caller may
// reuse or discard it afterwards.
type Config struct {
	// Name is an optional identifier, opaque to matching.
	Name string

	// Template is the path template, e.g. "/archive{/year,month,day}".
	Template string

	// Defaults maps parameter names to their default values.
	Defaults map[string]string

	// TokenPatterns overrides the default "[^/]+" sub-pattern per parameter.
	TokenPatterns map[string]string

	// Methods lists the allowed HTTP methods. Empty means any method.
	Methods []string

	// AcceptTypes lists acceptable media types ("type/subtype") in
	// preference order. Empty means any.
	AcceptTypes []string

	// FieldPatterns maps request metadata field names to sub-patterns their
	// values must match. Named groups in a field pattern are merged into the
	// capture set.
	FieldPatterns map[string]string

	// Predicate is an optional custom check, run last.
	Predicate Predicate

	// Secure requires (true) or forbids (false) a secure transport.
	// Nil means indifferent.
	Secure *bool

	// Routable gates the route. Nil means routable.
	Routable *bool

	// WildcardParam names a trailing catch-all parameter. When set, the
	// remainder of the path is captured and split into decoded segments.
	WildcardParam string

	// Handler is an opaque reference carried for dispatch or link
	// generation by collaborators. Matching never touches it.
	Handler any
}

// Route is an immutable, shareable route specification. All mutable match
// state lives in the Attempt values returned by Match, so a single Route may
// serve concurrent match attempts.
type Route struct {
	name      string
	template  string
	defaults  map[string]string
	tokens    map[string]string
	methods   []string
	accepts   []string
	fields    map[string]string
	fieldKeys []string
	predicate Predicate
	secure    *bool
	routable  bool
	wildcard  string
	handler   any

	chain []check

	compileOnce sync.Once
	pattern     *regexp.Regexp
	compileErr  error
	fieldRes    map[string]*regexp.Regexp
	fieldErrs   map[string]error
}

// New builds a Route from a Config. The path pattern is compiled lazily on
// first use; a malformed template or sub-pattern surfaces as a pattern-stage
// match failure (and through Pattern), never as a panic.
func New(cfg Config) *Route {
	r := &Route{
		name:      cfg.Name,
		template:  cfg.Template,
		defaults:  maps.Clone(cfg.Defaults),
		tokens:    maps.Clone(cfg.TokenPatterns),
		methods:   append([]string(nil), cfg.Methods...),
		accepts:   append([]string(nil), cfg.AcceptTypes...),
		fields:    maps.Clone(cfg.FieldPatterns),
		predicate: cfg.Predicate,
		secure:    cfg.Secure,
		routable:  cfg.Routable == nil || *cfg.Routable,
		wildcard:  cfg.WildcardParam,
		handler:   cfg.Handler,
	}

	// Field checks must run in a stable order so the failure kind and score
	// of an attempt are deterministic.
	for name := range r.fields {
		r.fieldKeys = append(r.fieldKeys, name)
	}
	sort.Strings(r.fieldKeys)

	r.chain = r.buildChain()
	return r
}

// compiled returns the compiled path pattern, compiling it (and the field
// sub-patterns) exactly once.
func (r *Route) compiled() (*regexp.Regexp, error) {
	r.compileOnce.Do(func() {
		r.pattern, r.compileErr = compilePattern(r.template, r.tokens, r.wildcard)
		r.fieldRes = make(map[string]*regexp.Regexp, len(r.fields))
		r.fieldErrs = make(map[string]error)
		for name, pat := range r.fields {
			re, err := regexp.Compile(pat)
			if err != nil {
				r.fieldErrs[name] = err
				continue
			}
			r.fieldRes[name] = re
		}
	})
	return r.pattern, r.compileErr
}

// Name returns the declared route name.
func (r *Route) Name() string { return r.name }

// Template returns the original path template.
func (r *Route) Template() string { return r.template }

// Defaults returns a copy of the declared default parameter values.
func (r *Route) Defaults() map[string]string { return maps.Clone(r.defaults) }

// Methods returns the allowed HTTP methods (empty means any).
func (r *Route) Methods() []string { return append([]string(nil), r.methods...) }

// AcceptTypes returns the acceptable media types (empty means any).
func (r *Route) AcceptTypes() []string { return append([]string(nil), r.accepts...) }

// WildcardParam returns the declared wildcard parameter name, or "".
func (r *Route) WildcardParam() string { return r.wildcard }

// Handler returns the opaque handler reference declared on the route.
func (r *Route) Handler() any { return r.handler }

// Pattern returns the compiled anchored pattern, compiling it on first use.
func (r *Route) Pattern() (*regexp.Regexp, error) { return r.compiled() }
