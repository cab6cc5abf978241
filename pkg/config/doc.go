// Package config loads route declarations from YAML files.
//
// A route file looks like:
//
//	version: "1"
//	routes:
//	  - name: blog.archive
//	    template: /archive{/year,month,day}
//	    defaults:
//	      controller: archive
//	    patterns:
//	      year: '[0-9]{4}'
//	    methods: [GET]
//	    accepts: [text/html]
//	    fields:
//	      Host: 'api\.'
//	    secure: true
//	    guard: 'method == "GET" && captures.year != "1999"'
//
// Guard strings are expr expressions compiled into the engine's typed
// predicate; the expression environment exposes method, accept, https,
// port, fields, and captures. Routes declared without a name get a
// generated one.
package config
