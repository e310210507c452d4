package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Navbar(site Site) g.Node {
	return Nav(
		Class("navbar"),
		g.Attr("aria-label", "Main"),
		Logo(site),
		A(Href(site.DocsPath), g.Text("Docs")),
		g.If(site.RepoURL != "",
			A(Href(site.RepoURL), g.Attr("target", "_blank"), g.Attr("rel", "noopener noreferrer"), g.Text("GitHub")),
		),
	)
}
