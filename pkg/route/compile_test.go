package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePattern(t *testing.T) {
	tests := []struct {
		name     string
		template string
		tokens   map[string]string
		wildcard string
		path     string
		want     bool
		captures map[string]string
	}{
		{
			name:     "literal template",
			template: "/about",
			path:     "/about",
			want:     true,
			captures: map[string]string{},
		},
		{
			name:     "literal template no prefix match",
			template: "/about",
			path:     "/about/team",
			want:     false,
		},
		{
			name:     "named placeholder",
			template: "/users/{id}",
			path:     "/users/123",
			want:     true,
			captures: map[string]string{"id": "123"},
		},
		{
			name:     "placeholder refuses slash",
			template: "/users/{id}",
			path:     "/users/1/2",
			want:     false,
		},
		{
			name:     "token pattern override",
			template: "/users/{id}",
			tokens:   map[string]string{"id": `[0-9]+`},
			path:     "/users/abc",
			want:     false,
		},
		{
			name:     "token pattern override accepts digits",
			template: "/users/{id}",
			tokens:   map[string]string{"id": `[0-9]+`},
			path:     "/users/42",
			want:     true,
			captures: map[string]string{"id": "42"},
		},
		{
			name:     "literal metacharacters are quoted",
			template: "/feed.xml",
			path:     "/feedaxml",
			want:     false,
		},
		{
			name:     "uppercase name stays literal",
			template: "/users/{ID}",
			path:     "/users/{ID}",
			want:     true,
			captures: map[string]string{},
		},
		{
			name:     "optional group absent",
			template: "/archive{/year,month,day}",
			path:     "/archive",
			want:     true,
			captures: map[string]string{"year": "", "month": "", "day": ""},
		},
		{
			name:     "optional group first name only",
			template: "/archive{/year,month,day}",
			path:     "/archive/2024",
			want:     true,
			captures: map[string]string{"year": "2024", "month": "", "day": ""},
		},
		{
			name:     "optional group all names",
			template: "/archive{/year,month,day}",
			path:     "/archive/2024/05/02",
			want:     true,
			captures: map[string]string{"year": "2024", "month": "05", "day": "02"},
		},
		{
			name:     "optional group skipped middle name",
			template: "/archive{/year,month,day}",
			path:     "/archive/2024//02",
			want:     false,
		},
		{
			name:     "leading optional group matches bare slash",
			template: "{/controller,action}",
			path:     "/",
			want:     true,
			captures: map[string]string{"controller": "", "action": ""},
		},
		{
			name:     "leading optional group one segment",
			template: "{/controller,action}",
			path:     "/posts",
			want:     true,
			captures: map[string]string{"controller": "posts", "action": ""},
		},
		{
			name:     "leading optional group two segments",
			template: "{/controller,action}",
			path:     "/posts/edit",
			want:     true,
			captures: map[string]string{"controller": "posts", "action": "edit"},
		},
		{
			name:     "dot placeholder absent",
			template: "/post/{id}{.format}",
			tokens:   map[string]string{"id": `[0-9]+`},
			path:     "/post/42",
			want:     true,
			captures: map[string]string{"id": "42", "format": ""},
		},
		{
			name:     "dot placeholder present",
			template: "/post/{id}{.format}",
			tokens:   map[string]string{"id": `[0-9]+`},
			path:     "/post/42.json",
			want:     true,
			captures: map[string]string{"id": "42", "format": "json"},
		},
		{
			name:     "wildcard captures remainder",
			template: "/files",
			wildcard: "rest",
			path:     "/files/a/b/c",
			want:     true,
			captures: map[string]string{"rest": "a/b/c"},
		},
		{
			name:     "wildcard absent",
			template: "/files",
			wildcard: "rest",
			path:     "/files",
			want:     true,
			captures: map[string]string{"rest": ""},
		},
		{
			name:     "wildcard trims trailing slash from template",
			template: "/files/",
			wildcard: "rest",
			path:     "/files/a",
			want:     true,
			captures: map[string]string{"rest": "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := compilePattern(tt.template, tt.tokens, tt.wildcard)
			require.NoError(t, err)

			m := re.FindStringSubmatch(tt.path)
			if !tt.want {
				assert.Nil(t, m, "expected no match for %q against %s", tt.path, re.String())
				return
			}
			require.NotNil(t, m, "expected %q to match %s", tt.path, re.String())

			got := make(map[string]string)
			for i, name := range re.SubexpNames() {
				if i > 0 && name != "" && i < len(m) {
					got[name] = m[i]
				}
			}
			assert.Equal(t, tt.captures, got)
		})
	}
}

func TestCompilePatternOnlyFirstOptionalGroup(t *testing.T) {
	// A second optional segment group is unsupported; its text survives as a
	// quoted literal, so only paths spelling it out verbatim can match.
	re, err := compilePattern("/a{/x}/b{/y}", nil, "")
	require.NoError(t, err)

	m := re.FindStringSubmatch("/a/1/b{/y}")
	require.NotNil(t, m)
	assert.Nil(t, re.FindStringSubmatch("/a/1/b/2"))
}

func TestCompilePatternBadTokenPattern(t *testing.T) {
	_, err := compilePattern("/users/{id}", map[string]string{"id": `[`}, "")
	require.Error(t, err)
}

func TestRoutePatternMemoized(t *testing.T) {
	rt := New(Config{Template: "/users/{id}"})

	re1, err := rt.Pattern()
	require.NoError(t, err)
	re2, err := rt.Pattern()
	require.NoError(t, err)

	assert.Same(t, re1, re2, "pattern must be compiled exactly once")
}
