package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/formdocs/internal/features"
)

// HomePage composes the full homepage around the feature grid.
func HomePage(site Site, section FeatureSection, catalog features.Catalog) g.Node {
	return Layout(
		PageConfig{
			Title:       site.Title,
			Description: site.Tagline,
		},
		Navbar(site),
		HomepageHeader(site, section.Styles),
		Main(
			section.Section(catalog),
			GetStarted(site),
		),
		PageFooter(site),
	)
}
