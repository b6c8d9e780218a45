package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/jackielii/pageroute"
	"github.com/jackielii/pageroute/content"
)

type serveView struct {
	store content.Store
	title string
}

// Serve lists the top level entries of store.
func Serve(store content.Store, title string) pageroute.Component {
	if title == "" {
		title = "Pages"
	}
	return serveView{store: store, title: title}
}

func (v serveView) Render(ctx context.Context, w io.Writer) error {
	return Layout(v.title, v.content()).Render(ctx, w)
}

func (v serveView) Target(id string) (pageroute.Component, bool) {
	if id != ContentID {
		return nil, false
	}
	return v.content(), true
}

func (v serveView) content() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		entries, err := v.store.List(ctx, nil)
		if err != nil {
			return err
		}
		hw := &htmlWriter{w: w}
		hw.raw("<h1>")
		hw.text(v.title)
		hw.raw("</h1>")
		writeListing(ctx, hw, entries)
		return hw.err
	})
}

func writeListing(ctx context.Context, hw *htmlWriter, entries []content.Entry) {
	if len(entries) == 0 {
		hw.raw(`<p class="empty">Nothing here yet.</p>`)
		return
	}
	hw.raw(`<ul class="listing">`)
	for _, e := range entries {
		href, err := pageroute.URLFor(ctx, pageroute.KindPage, e.Path...)
		if err != nil {
			hw.err = err
			return
		}
		if e.IsDir {
			hw.raw(`<li class="dir">`)
			hw.link(href+"/", e.Title()+"/")
		} else {
			hw.raw(`<li class="doc">`)
			hw.link(href, e.Title())
		}
		hw.raw("</li>")
	}
	hw.raw("</ul>")
}
