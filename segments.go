package pageroute

import (
	"fmt"
	"strings"
)

type segment struct {
	name     string
	param    bool
	wildcard bool
	value    string
}

// parseSegments splits a ServeMux style pattern into literal and parameter
// segments. {$} is kept as a literal.
func parseSegments(pattern string) (segments []segment, err error) {
	rest := pattern
	for rest != "" {
		start := strings.Index(rest, "{")
		if start == -1 {
			segments = append(segments, segment{name: rest})
			break
		}
		if start > 0 {
			segments = append(segments, segment{name: rest[:start]})
		}
		rest = rest[start+1:] // move over the '{'
		end := strings.Index(rest, "}")
		if end == -1 {
			return nil, fmt.Errorf("pattern %s: unmatched {", pattern)
		}
		name := rest[:end]
		rest = rest[end+1:]
		if name == "$" {
			segments = append(segments, segment{name: "{$}"})
			continue
		}
		seg := segment{name: name, param: true}
		if strings.HasSuffix(name, "...") {
			seg.name = strings.TrimSuffix(name, "...")
			seg.wildcard = true
			if rest != "" {
				return nil, fmt.Errorf("pattern %s: wildcard {%s} must be the last segment", pattern, name)
			}
		}
		if seg.name == "" {
			return nil, fmt.Errorf("pattern %s: empty parameter name", pattern)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// literalPrefix returns the pattern text up to the first placeholder.
func literalPrefix(segments []segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		if seg.param || seg.name == "{$}" {
			break
		}
		sb.WriteString(seg.name)
	}
	return sb.String()
}

func isCatchAll(segments []segment) bool {
	return len(segments) > 0 && segments[len(segments)-1].wildcard
}
