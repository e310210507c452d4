package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(site Site) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container text--center"),
			Div(
				A(Href(site.DocsPath), g.Text("Documentation")),
				g.If(site.RepoURL != "", g.Group([]g.Node{
					g.Text(" · "),
					A(Href(site.RepoURL), g.Text("GitHub")),
				})),
			),
			g.If(site.Copyright != "", P(g.Text(site.Copyright))),
		),
	)
}
