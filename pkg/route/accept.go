package route

import "strings"

// matchAccept runs content negotiation between the route's acceptable media
// types and the request's Accept header. An absent header accepts anything,
// as does a header carrying "*/*". Otherwise the first acceptable type that
// some header entry accept-matches wins.
func matchAccept(accepts []string, header string) bool {
	if header == "" {
		return true
	}
	if strings.Contains(header, "*/*") {
		return true
	}
	for _, want := range accepts {
		if acceptsType(header, want) {
			return true
		}
	}
	return false
}

// acceptsType reports whether any entry in the Accept header accept-matches
// the media type want ("type/subtype"). An entry matches on the exact type
// or on the subtype wildcard ("type/*"), unless it carries an explicit
// zero quality — q=0.0 is a rejection signal and always loses.
func acceptsType(header, want string) bool {
	typ, _, _ := strings.Cut(want, "/")
	wildcard := typ + "/*"

	for _, entry := range strings.Split(header, ",") {
		media, params, _ := strings.Cut(strings.TrimSpace(entry), ";")
		media = strings.TrimSpace(media)
		if media != want && media != wildcard {
			continue
		}
		if quality(params) == "0.0" {
			continue
		}
		return true
	}
	return false
}

// quality extracts the q parameter value from a media type's parameter list,
// or "" when absent.
func quality(params string) string {
	for _, p := range strings.Split(params, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if ok && strings.TrimSpace(k) == "q" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
