package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/jackielii/pageroute"
	"github.com/jackielii/pageroute/content"
)

type pageView struct {
	store content.Store
}

// Page shows the document or directory addressed by the catch-all segments.
// HTML documents are embedded as they are; anything else is shown as text.
func Page(store content.Store) pageroute.Component {
	return pageView{store: store}
}

func (v pageView) Render(ctx context.Context, w io.Writer) error {
	title := "Pages"
	if segs := pageroute.WildcardFrom(ctx); len(segs) > 0 {
		title = segs[len(segs)-1]
	}
	return Layout(title, v.content()).Render(ctx, w)
}

func (v pageView) Target(id string) (pageroute.Component, bool) {
	if id != ContentID {
		return nil, false
	}
	return v.content(), true
}

func (v pageView) content() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		segs := pageroute.WildcardFrom(ctx)
		entry, err := v.store.Stat(ctx, segs)
		if err != nil {
			return err
		}
		hw := &htmlWriter{w: w}
		writeBreadcrumbs(ctx, hw, segs)
		if entry.IsDir {
			entries, err := v.store.List(ctx, segs)
			if err != nil {
				return err
			}
			hw.raw("<h1>")
			hw.text(entry.Title())
			hw.raw("</h1>")
			writeListing(ctx, hw, entries)
			return hw.err
		}

		doc, err := v.store.Get(ctx, segs)
		if err != nil {
			return err
		}
		hw.raw(`<article>`)
		if doc.IsHTML() {
			hw.raw(string(doc.Body))
		} else {
			hw.raw("<h1>")
			hw.text(doc.Title())
			hw.raw("</h1><pre>")
			hw.text(string(doc.Body))
			hw.raw("</pre>")
		}
		hw.raw(`</article>`)
		return hw.err
	})
}

// writeBreadcrumbs links the index and every ancestor of segs.
func writeBreadcrumbs(ctx context.Context, hw *htmlWriter, segs []string) {
	home, err := pageroute.URLFor(ctx, pageroute.KindServe)
	if err != nil {
		hw.err = err
		return
	}
	hw.raw(`<nav class="breadcrumbs">`)
	hw.link(home, "Index")
	for i := range len(segs) - 1 {
		href, err := pageroute.URLFor(ctx, pageroute.KindPage, segs[:i+1]...)
		if err != nil {
			hw.err = err
			return
		}
		hw.raw(" / ")
		hw.link(href+"/", segs[i])
	}
	if len(segs) > 0 {
		hw.raw(" / ")
		hw.text(segs[len(segs)-1])
	}
	hw.raw("</nav>")
}
