package route

import (
	"net"
	"net/http"
	"strconv"
)

// Request carries the request metadata the match chain consumes. It is
// read-only to the engine; the zero value is a valid (insecure, methodless)
// request.
type Request struct {
	// Method is the HTTP method.
	Method string

	// HTTPS indicates the request arrived over TLS.
	HTTPS bool

	// ServerPort is the local port the request arrived on.
	ServerPort int

	// Accept is the raw Accept header value, "" when absent.
	Accept string

	// Fields holds additional named metadata (typically headers) consulted
	// by field-constraint checks.
	Fields map[string]string
}

// Secure derives the transport-security boolean: an affirmative HTTPS
// indicator, or the conventional HTTPS port.
func (r *Request) Secure() bool {
	return r.HTTPS || r.ServerPort == 443
}

// Field looks up a metadata field by name. Explicit Fields entries win over
// the well-known names; an unknown field resolves to "".
func (r *Request) Field(name string) string {
	if v, ok := r.Fields[name]; ok {
		return v
	}
	switch name {
	case "method":
		return r.Method
	case "accept":
		return r.Accept
	case "https":
		if r.HTTPS {
			return "on"
		}
		return ""
	case "port":
		return strconv.Itoa(r.ServerPort)
	}
	return ""
}

// FromHTTP adapts a live HTTP request into the metadata form the engine
// consumes. Each header's first value becomes a field under its canonical
// name.
func FromHTTP(hr *http.Request) *Request {
	req := &Request{
		Method: hr.Method,
		HTTPS:  hr.TLS != nil,
		Accept: hr.Header.Get("Accept"),
		Fields: make(map[string]string, len(hr.Header)),
	}
	if _, port, err := net.SplitHostPort(hr.Host); err == nil {
		req.ServerPort, _ = strconv.Atoi(port)
	}
	for name, vals := range hr.Header {
		if len(vals) > 0 {
			req.Fields[name] = vals[0]
		}
	}
	return req
}
