package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	Lang        string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Lang == "" {
		config.Lang = "en"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(config.Lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				g.If(config.Description != "", Meta(g.Attr("property", "og:description"), Content(config.Description))),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Href("/static/img/controlled.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
			),
			Body(
				g.Group(content),
			),
		),
	})
}
