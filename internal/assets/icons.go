package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// IconID is a compile-time handle for one of the embedded feature graphics.
// The zero value is not a valid icon.
type IconID int

const (
	IconControlled IconID = iota + 1
	IconBuild
	IconClasses
	IconValidations
	IconLibraries
	IconWebMobile

	iconLimit
)

//go:embed static/img/controlled.svg
var controlledSVG []byte

//go:embed static/img/build.svg
var buildSVG []byte

//go:embed static/img/classes.svg
var classesSVG []byte

//go:embed static/img/validations.svg
var validationsSVG []byte

//go:embed static/img/libraries.svg
var librariesSVG []byte

//go:embed static/img/web_mobile.svg
var webMobileSVG []byte

type iconSource struct {
	name string
	data []byte
}

var iconSources = [iconLimit]iconSource{
	IconControlled:  {"controlled", controlledSVG},
	IconBuild:       {"build", buildSVG},
	IconClasses:     {"classes", classesSVG},
	IconValidations: {"validations", validationsSVG},
	IconLibraries:   {"libraries", librariesSVG},
	IconWebMobile:   {"web_mobile", webMobileSVG},
}

// String returns the logical name of the icon, which is also its file name
// under static/img without the extension.
func (id IconID) String() string {
	if id <= 0 || id >= iconLimit {
		return fmt.Sprintf("IconID(%d)", int(id))
	}
	return iconSources[id].name
}

// Path returns the URL path the icon is served from.
func (id IconID) Path() string {
	return "/static/img/" + id.String() + ".svg"
}

// IconIDs lists every defined icon in declaration order.
func IconIDs() []IconID {
	ids := make([]IconID, 0, iconLimit-1)
	for id := IconControlled; id < iconLimit; id++ {
		ids = append(ids, id)
	}
	return ids
}

// ParseIconID maps a logical icon name back to its handle.
func ParseIconID(name string) (IconID, error) {
	for _, id := range IconIDs() {
		if iconSources[id].name == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown icon %q", name)
}

type graphic struct {
	attrs []html.Attribute
	inner string
}

// Icons resolves icon handles into inline SVG nodes. It is immutable once
// built and safe for concurrent use.
type Icons struct {
	graphics map[IconID]graphic
}

var defaultIcons = mustLoadIcons()

// DefaultIcons returns the resolver for the embedded icon set.
func DefaultIcons() *Icons {
	return defaultIcons
}

func mustLoadIcons() *Icons {
	icons, err := loadIcons()
	if err != nil {
		panic(err)
	}
	return icons
}

func loadIcons() (*Icons, error) {
	icons := &Icons{graphics: make(map[IconID]graphic, iconLimit-1)}
	for _, id := range IconIDs() {
		src := iconSources[id]
		if src.name == "" {
			return nil, fmt.Errorf("icon %d has no source", int(id))
		}
		gr, err := parseSVG(src.data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse icon %s: %w", src.name, err)
		}
		icons.graphics[id] = gr
	}
	return icons, nil
}

// Has reports whether id resolves to a graphic.
func (i *Icons) Has(id IconID) bool {
	_, ok := i.graphics[id]
	return ok
}

// Icon renders the graphic for id with the given class and accessibility role.
// Empty class or role values are omitted. An unknown id renders nothing.
func (i *Icons) Icon(id IconID, class, role string) g.Node {
	gr, ok := i.graphics[id]
	if !ok {
		return nil
	}

	nodes := make([]g.Node, 0, len(gr.attrs)+3)
	for _, a := range gr.attrs {
		nodes = append(nodes, g.Attr(a.Key, a.Val))
	}
	nodes = append(nodes,
		g.If(class != "", Class(class)),
		g.If(role != "", g.Attr("role", role)),
		g.Raw(gr.inner),
	)
	return g.El("svg", nodes...)
}

func parseSVG(data []byte) (graphic, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(data), context)
	if err != nil {
		return graphic{}, err
	}

	var root *html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode && n.Data == "svg" {
			root = n
			break
		}
	}
	if root == nil {
		return graphic{}, fmt.Errorf("no <svg> root element")
	}

	var gr graphic
	for _, a := range root.Attr {
		// class and role belong to the caller; namespace declarations are
		// implied for inline SVG.
		if a.Key == "class" || a.Key == "role" || a.Key == "xmlns" || a.Namespace == "xmlns" {
			continue
		}
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		gr.attrs = append(gr.attrs, html.Attribute{Key: key, Val: a.Val})
	}

	var inner strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&inner, c); err != nil {
			return graphic{}, err
		}
	}
	gr.inner = inner.String()
	return gr, nil
}
