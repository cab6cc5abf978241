// Package router holds an ordered collection of routes and picks the best
// match for a request.
//
// Every route is evaluated independently; the matched attempt with the
// highest score wins, with registration order breaking ties. When nothing
// matches, NearMisses reports the closest-failing routes with their failure
// classification and diagnostic trail, which is what you want to surface on
// a 404 (or a 405/406, via the attempt's FailedMethod/FailedAccept).
package router
