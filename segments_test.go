package pageroute

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSegments(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []segment
		wantErr bool
	}{
		{
			name:    "literal",
			pattern: "/web/",
			want:    []segment{{name: "/web/"}},
		},
		{
			name:    "anchored",
			pattern: "/web/{$}",
			want:    []segment{{name: "/web/"}, {name: "{$}"}},
		},
		{
			name:    "catch-all",
			pattern: "/web/{wildcard...}",
			want:    []segment{{name: "/web/"}, {name: "wildcard", param: true, wildcard: true}},
		},
		{
			name:    "param",
			pattern: "/web/{id}/edit",
			want:    []segment{{name: "/web/"}, {name: "id", param: true}, {name: "/edit"}},
		},
		{
			name:    "catch-all not last",
			pattern: "/web/{rest...}/x",
			wantErr: true,
		},
		{
			name:    "unmatched brace",
			pattern: "/web/{id",
			wantErr: true,
		},
		{
			name:    "empty name",
			pattern: "/web/{}",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSegments(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSegments(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(segment{})); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLiteralPrefix(t *testing.T) {
	for pattern, want := range map[string]string{
		"/web/{$}":           "/web/",
		"/web/{wildcard...}": "/web/",
		"/a/{id}/b":          "/a/",
		"/plain":             "/plain",
	} {
		segments, err := parseSegments(pattern)
		if err != nil {
			t.Fatalf("parseSegments(%q): %v", pattern, err)
		}
		if got := literalPrefix(segments); got != want {
			t.Errorf("literalPrefix(%q) = %q, want %q", pattern, got, want)
		}
	}
}
