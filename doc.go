// Package pageroute mounts a two-entry page route table on an HTTP router.
//
// A table is built for a single path prefix. The prefix itself renders the Serve
// component (an index or listing view) and every path below it renders the Page
// component through a catch-all wildcard:
//
//	/pages/          -> Serve
//	/pages/foo/bar   -> Page, wildcard = ["foo", "bar"]
//
// Matching is left to the router the table is mounted on, either [http.ServeMux]
// through [NewRouter] or chi through the chirouter package. Components are anything
// with a Render(ctx, io.Writer) error method, which includes templ components.
//
// Example:
//
//	pages, err := pageroute.New(pageroute.WebVariant, views.Serve(store, "Docs"), views.Page(store))
//	if err != nil {
//		log.Fatal(err)
//	}
//	mux := http.NewServeMux()
//	if err := pages.Mount(pageroute.NewRouter(mux)); err != nil {
//		log.Fatal(err)
//	}
package pageroute
