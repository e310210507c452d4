package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/formdocs/internal/styles"
)

// HomepageHeader renders the hero banner above the feature grid.
func HomepageHeader(site Site, lookup ClassLookup) g.Node {
	heroClass := "hero hero--primary"
	if c := lookup.Class(styles.HeroBanner); c != "" {
		heroClass += " " + c
	}

	return Header(
		Class(heroClass),
		Div(
			Class("container"),
			H1(Class("hero__title"), g.Text(site.Title)),
			P(Class("hero__subtitle"), g.Text(site.Tagline)),
			Div(
				classIf(lookup.Class(styles.Buttons)),
				A(
					Class("button button--secondary button--lg"),
					Href(site.DocsPath),
					g.Text("Get started"),
				),
			),
		),
	)
}
