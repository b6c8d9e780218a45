// Package views holds the default Serve and Page components: an index of the
// content store and a document or directory view for the catch-all path.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/jackielii/pageroute"
)

// ContentID is the id of the element swapped on HTMX navigation.
const ContentID = "content"

// HTMXScript is the script tag included by Layout.
var HTMXScript = `<script src="https://unpkg.com/htmx.org@2.0.4"></script>`

// hashLoader makes the shell of a hash history table load the route named by
// the fragment into the content element, on load and on every hash change.
const hashLoader = `<script>(function(){` +
	`var main=document.getElementById("` + ContentID + `");` +
	`var base=main.dataset.historyBase.replace(/\/$/,"");` +
	`function load(){var route=location.hash.slice(1);if(route.charAt(0)!=="/")return;` +
	`htmx.ajax("GET",base+route,{target:main,swap:"innerHTML"});}` +
	`window.addEventListener("hashchange",load);load();})();</script>`

// Layout wraps body in a full HTML document. Under web history links are
// boosted by HTMX; under hash history the fragment drives navigation.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hash := false
		var base string
		if p := pageroute.PagesFrom(ctx); p != nil && p.History().Mode == pageroute.HistoryHash {
			hash, base = true, pageroute.NormalizePrefix(p.History().Base)
		}

		hw := &htmlWriter{w: w}
		hw.raw("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		hw.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		hw.raw("<title>")
		hw.text(title)
		hw.raw("</title>")
		hw.raw(HTMXScript)
		if hash {
			hw.raw("</head><body>")
			hw.raw("<main id=\"" + ContentID + "\" data-history-base=\"")
			hw.text(base)
			hw.raw("\">")
		} else {
			hw.raw("</head><body hx-boost=\"true\" hx-target=\"#" + ContentID + "\" hx-swap=\"innerHTML\">")
			hw.raw("<main id=\"" + ContentID + "\">")
		}
		if hw.err != nil {
			return hw.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		hw.raw("</main>")
		if hash {
			hw.raw(hashLoader)
		}
		hw.raw("</body></html>")
		return hw.err
	})
}

// htmlWriter writes markup and keeps the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) link(href, label string) {
	h.raw(`<a href="`)
	h.text(string(templ.URL(href)))
	h.raw(`">`)
	h.text(label)
	h.raw(`</a>`)
}
