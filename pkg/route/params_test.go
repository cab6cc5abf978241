package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsDefaultsAndOverlay(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		path string
		want map[string]string
	}{
		{
			name: "capture overlays default",
			cfg: Config{
				Template: "/users/{id}",
				Defaults: map[string]string{"id": "0", "action": "view"},
			},
			path: "/users/7",
			want: map[string]string{"id": "7", "action": "view"},
		},
		{
			name: "empty capture falls back to default",
			cfg: Config{
				Template:      "/post/{id}{.format}",
				TokenPatterns: map[string]string{"id": `[0-9]+`},
				Defaults:      map[string]string{"format": "html"},
			},
			path: "/post/42",
			want: map[string]string{"id": "42", "format": "html"},
		},
		{
			name: "present capture beats default",
			cfg: Config{
				Template:      "/post/{id}{.format}",
				TokenPatterns: map[string]string{"id": `[0-9]+`},
				Defaults:      map[string]string{"format": "html"},
			},
			path: "/post/42.json",
			want: map[string]string{"id": "42", "format": "json"},
		},
		{
			name: "undeclared absent param stays unset",
			cfg: Config{
				Template: "/archive{/year,month}",
			},
			path: "/archive/2024",
			want: map[string]string{"year": "2024"},
		},
		{
			name: "captures are percent-decoded",
			cfg: Config{
				Template: "/tags/{tag}",
			},
			path: "/tags/caf%C3%A9",
			want: map[string]string{"tag": "café"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.cfg).Match(tt.path, &Request{})
			require.True(t, a.Matched)
			assert.Equal(t, tt.want, a.Params)
		})
	}
}

func TestParamsUnsetDistinctFromEmpty(t *testing.T) {
	rt := New(Config{
		Template: "/archive{/year,month}",
		Defaults: map[string]string{"year": "any"},
	})

	a := rt.Match("/archive", &Request{})
	require.True(t, a.Matched)

	// Declared but absent: the default.
	assert.Equal(t, "any", a.Params["year"])
	// Never declared: absent from the map, not an empty string.
	_, present := a.Params["month"]
	assert.False(t, present)
}

func TestParamsWildcardExpansion(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		path string
		want []string
	}{
		{
			name: "remainder split into segments",
			cfg:  Config{Template: "/files", WildcardParam: "rest"},
			path: "/files/a/b/c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "segments decoded after the split",
			cfg:  Config{Template: "/files", WildcardParam: "rest"},
			path: "/files/a/b%2Fc/d",
			want: []string{"a", "b/c", "d"},
		},
		{
			name: "absent remainder is an empty list",
			cfg:  Config{Template: "/files", WildcardParam: "rest"},
			path: "/files",
			want: []string{},
		},
		{
			name: "wildcard after optional segment",
			cfg:  Config{Template: "/files{/base}", WildcardParam: "rest"},
			path: "/files/a/b/c",
			want: []string{"b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.cfg).Match(tt.path, &Request{})
			require.True(t, a.Matched)
			assert.Equal(t, tt.want, a.Wildcard)

			// The wildcard name never appears among the scalar params.
			_, present := a.Params[tt.cfg.WildcardParam]
			assert.False(t, present)
		})
	}
}

func TestParamsNoWildcardDeclared(t *testing.T) {
	a := New(Config{Template: "/files"}).Match("/files", &Request{})
	require.True(t, a.Matched)
	assert.Nil(t, a.Wildcard)
}
