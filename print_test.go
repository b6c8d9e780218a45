package pageroute

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrintRoutes(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want [][]string
	}{
		{
			name: "web",
			cfg:  WebVariant,
			want: [][]string{
				{"web:", "prefix", "/web/,", "web", "history", "at", "/"},
				{"GET", "/web/{$}", "serve", "Serve", "pageroute.testComponent"},
				{"GET", "/web/{wildcard...}", "page", "Page", "pageroute.testComponent"},
			},
		},
		{
			name: "pages",
			cfg:  PagesVariant,
			want: [][]string{
				{"pages:", "prefix", "/pages/,", "web", "history", "at", "/pages/"},
				{"GET", "/pages/pages/{$}", "serve", "Serve", "pageroute.testComponent"},
				{"GET", "/pages/pages/{wildcard...}", "page", "Page", "pageroute.testComponent"},
			},
		},
		{
			name: "hash",
			cfg:  Config{Name: "hash", Prefix: "/web/", Mode: HistoryHash},
			want: [][]string{
				{"hash:", "prefix", "/web/,", "hash", "history", "at", "/"},
				{"GET", "/web/{$}", "serve", "Serve", "pageroute.testComponent"},
				{"GET", "/web/{wildcard...}", "page", "Page", "pageroute.testComponent"},
				{"GET", "/{$}", "shell", "Serve", "pageroute.testComponent"},
			},
		},
		{
			name: "hash at root",
			cfg:  Config{Name: "root", Prefix: "/", Mode: HistoryHash},
			want: [][]string{
				{"root:", "prefix", "/,", "hash", "history", "at", "/"},
				{"GET", "/{$}", "serve", "Serve", "pageroute.testComponent"},
				{"GET", "/{wildcard...}", "page", "Page", "pageroute.testComponent"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg, testComponent{"serve"}, testComponent{"page"}, WithLogger(discardLogger()))
			if err != nil {
				t.Fatal(err)
			}
			var got [][]string
			for _, line := range strings.Split(strings.TrimSpace(PrintRoutes(p)), "\n") {
				got = append(got, strings.Fields(line))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PrintRoutes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
