package route

import (
	"net/url"
	"strings"
)

// extractParams merges the route defaults with the raw captures of a
// successful match.
//
// An empty capture means "not provided": the declared default wins, and a
// parameter that was never declared stays absent from the map entirely, so
// callers can tell unset from empty. Overlaid values are percent-decoded.
//
// The wildcard parameter is returned separately as an ordered segment list:
// empty (never nil) when the request supplied no remainder, otherwise the
// raw capture split on "/" with each segment decoded individually — decoding
// happens after the split so an encoded slash stays inside its segment.
func (r *Route) extractParams(captures map[string]string) (map[string]string, []string) {
	params := make(map[string]string, len(r.defaults)+len(captures))
	for k, v := range r.defaults {
		params[k] = v
	}

	rest := params[r.wildcard]
	for name, val := range captures {
		if val == "" {
			continue
		}
		if name == r.wildcard && r.wildcard != "" {
			rest = val
			continue
		}
		params[name] = pctDecode(val)
	}

	if r.wildcard == "" {
		return params, nil
	}

	delete(params, r.wildcard)
	if rest == "" {
		return params, []string{}
	}
	segments := strings.Split(rest, "/")
	for i, s := range segments {
		segments[i] = pctDecode(s)
	}
	return params, segments
}

// pctDecode percent-decodes s, returning it unchanged when it is not valid
// percent-encoding.
func pctDecode(s string) string {
	if d, err := url.PathUnescape(s); err == nil {
		return d
	}
	return s
}
