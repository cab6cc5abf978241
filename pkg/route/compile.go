package route

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultToken matches one or more non-slash characters, the default class
// for a placeholder without a custom token pattern.
const defaultToken = `[^/]+`

var (
	// optionalGroupRe matches the single optional segment group syntax,
	// e.g. {/year,month,day}. Only the first occurrence in a template is
	// expanded; later groups are left as literal text.
	optionalGroupRe = regexp.MustCompile(`\{/([a-z][a-zA-Z0-9_]*(?:,[a-z][a-zA-Z0-9_]*)*)\}`)

	// placeholderRe matches a named placeholder, optionally prefixed with a
	// dot separator: {id} or {.format}. Names outside [a-z][a-zA-Z0-9_]*
	// are not placeholders and stay literal.
	placeholderRe = regexp.MustCompile(`\{(\.?)([a-z][a-zA-Z0-9_]*)\}`)
)

// compilePattern converts a path template into a single anchored regexp with
// named capture groups.
//
// The rewrite stages, in order:
//
//  1. The first {/n1,n2,...} group expands to nested optional groups so a
//     later name can only be present when every earlier name is. When the
//     group opens the template, the leading slash of the first name is
//     hoisted outside the nesting so a bare "/" still matches.
//  2. Each remaining {name} becomes a named capture using the custom token
//     pattern when declared, the default non-slash class otherwise. A
//     {.name} placeholder compiles to an optional dot-prefixed group whose
//     capture is empty when absent.
//  3. With a wildcard parameter, trailing slashes are trimmed and an
//     optional catch-all group is appended that swallows the rest of the
//     path, embedded slashes included.
//  4. The result is anchored at both ends; matching is full-string only.
func compilePattern(template string, tokens map[string]string, wildcard string) (*regexp.Regexp, error) {
	tpl := template
	if wildcard != "" {
		tpl = strings.TrimRight(tpl, "/")
	}

	var b strings.Builder
	b.WriteString("^")

	if loc := optionalGroupRe.FindStringSubmatchIndex(tpl); loc != nil {
		writePlaceholders(&b, tpl[:loc[0]], tokens)
		writeOptionalChain(&b, strings.Split(tpl[loc[2]:loc[3]], ","), loc[0] == 0, tokens)
		writePlaceholders(&b, tpl[loc[1]:], tokens)
	} else {
		writePlaceholders(&b, tpl, tokens)
	}

	if wildcard != "" {
		fmt.Fprintf(&b, "(?:/(?P<%s>.*))?", wildcard)
	}
	b.WriteString("$")

	return regexp.Compile(b.String())
}

// writePlaceholders expands every placeholder in s into a named capture,
// quoting the literal spans in between.
func writePlaceholders(b *strings.Builder, s string, tokens map[string]string) {
	end := 0
	for _, m := range placeholderRe.FindAllStringSubmatchIndex(s, -1) {
		b.WriteString(regexp.QuoteMeta(s[end:m[0]]))
		sep := s[m[2]:m[3]]
		name := s[m[4]:m[5]]
		if sep == "" {
			fmt.Fprintf(b, "(?P<%s>%s)", name, tokenPattern(name, tokens))
		} else {
			fmt.Fprintf(b, "(?:%s(?P<%s>%s))?", regexp.QuoteMeta(sep), name, tokenPattern(name, tokens))
		}
		end = m[1]
	}
	b.WriteString(regexp.QuoteMeta(s[end:]))
}

// writeOptionalChain expands an optional segment group into left-to-right
// nested optional captures. With hoist, the first name's slash sits outside
// the optional nesting.
func writeOptionalChain(b *strings.Builder, names []string, hoist bool, tokens map[string]string) {
	for i, name := range names {
		if i == 0 && hoist {
			fmt.Fprintf(b, "/(?:(?P<%s>%s)", name, tokenPattern(name, tokens))
			continue
		}
		fmt.Fprintf(b, "(?:/(?P<%s>%s)", name, tokenPattern(name, tokens))
	}
	for range names {
		b.WriteString(")?")
	}
}

func tokenPattern(name string, tokens map[string]string) string {
	if pat, ok := tokens[name]; ok {
		return pat
	}
	return defaultToken
}
