package pageroute

import (
	"net/http"
	"strings"

	"github.com/angelofallars/htmx-go"
)

func isHTMX(r *http.Request) bool {
	return htmx.IsHTMX(r)
}

// hxTarget returns the id of the element an HTMX request swaps into.
func hxTarget(r *http.Request) string {
	target, ok := htmx.GetTarget(r)
	if !ok {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(target), "#")
}

// selectComponent picks what to render for a request. Non-HTMX requests get the
// full component. HTMX requests get the fragment named by HX-Target when the
// component provides it, otherwise the full component retargeted to the body.
// When push is set a swapped fragment also pushes the request URL to history.
func selectComponent(r *http.Request, comp Component, push bool) (Component, htmx.Response) {
	resp := htmx.NewResponse()
	if !isHTMX(r) {
		return comp, resp
	}
	if t, ok := comp.(Targets); ok {
		if id := hxTarget(r); id != "" {
			if part, ok := t.Target(id); ok {
				if push {
					resp = resp.PushURL(r.URL.RequestURI())
				}
				return part, resp
			}
		}
	}
	return comp, resp.Retarget("body")
}
