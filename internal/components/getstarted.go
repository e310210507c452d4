package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func GetStarted(site Site) g.Node {
	steps := []string{
		"Install the package",
		"Describe your form data with a class or a plain object",
		"Plug in the validation schema of your choice",
	}

	return Section(
		Class("container text--center padding-horiz--md"),
		ID("get-started"),
		H2(g.Text("Get started")),
		Ol(
			g.Group(g.Map(steps, func(step string) g.Node {
				return Li(g.Text(step))
			})),
		),
		A(
			Class("button button--secondary"),
			Href(site.DocsPath),
			g.Text("Read the docs"),
		),
	)
}
