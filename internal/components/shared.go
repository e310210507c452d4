package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Site carries the site-wide text shown around the page sections.
type Site struct {
	Title     string
	Tagline   string
	DocsPath  string
	RepoURL   string
	Copyright string
}

func Logo(site Site) g.Node {
	return A(
		Class("navbar__brand"),
		Href("/"),
		Strong(g.Text(site.Title)),
	)
}

// classIf emits a class attribute only when the lookup produced a name.
func classIf(class string) g.Node {
	return g.If(class != "", Class(class))
}
