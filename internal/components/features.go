package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/formdocs/internal/assets"
	"github.com/emergentai/formdocs/internal/features"
	"github.com/emergentai/formdocs/internal/styles"
)

// DefaultColumns is the number of cards per grid row.
const DefaultColumns = 3

// GridUnits is the width of a grid row in column units. A column count must
// divide it evenly so every card in a row gets the same col--N width.
const GridUnits = 12

// IconResolver turns an icon handle into a renderable graphic carrying the
// given class and accessibility role.
type IconResolver interface {
	Icon(id assets.IconID, class, role string) g.Node
}

// ClassLookup maps a semantic style name to a concrete class.
type ClassLookup interface {
	Class(name string) string
}

// FeatureSection renders the homepage feature grid. It holds only its
// collaborators; every call renders from its arguments alone.
type FeatureSection struct {
	Icons   IconResolver
	Styles  ClassLookup
	Columns int
}

func NewFeatureSection(icons IconResolver, lookup ClassLookup, columns int) FeatureSection {
	return FeatureSection{Icons: icons, Styles: lookup, Columns: columns}
}

func (s FeatureSection) columns() int {
	if s.Columns < 1 || GridUnits%s.Columns != 0 {
		return DefaultColumns
	}
	return s.Columns
}

// CardClass is the grid cell class for one card, sized so that a full row
// spans the grid exactly.
func (s FeatureSection) CardClass() string {
	return "col col--" + strconv.Itoa(GridUnits/s.columns())
}

// Card renders one feature cell. key ties the cell to its position in the
// catalog and carries no other meaning.
func (s FeatureSection) Card(r features.Record, key int) g.Node {
	return Div(
		Class(s.CardClass()),
		g.Attr("data-feature-key", strconv.Itoa(key)),
		Div(
			Class("text--center"),
			s.Icons.Icon(r.Icon, s.Styles.Class(styles.FeatureSvg), "img"),
		),
		Div(
			Class("text--center padding-horiz--md"),
			H3(g.Text(r.Title)),
			P(Description(r.Description)),
		),
	)
}

// Section renders the whole feature grid for c, wrapping every Columns cards
// into a new row.
func (s FeatureSection) Section(c features.Catalog) g.Node {
	records := c.Records()
	cols := s.columns()

	rows := make([]g.Node, 0, (len(records)+cols-1)/cols)
	for start := 0; start < len(records); start += cols {
		end := min(start+cols, len(records))
		cards := make([]g.Node, 0, end-start)
		for key := start; key < end; key++ {
			cards = append(cards, s.Card(records[key], key))
		}
		rows = append(rows, Div(Class("row"), g.Group(cards)))
	}

	return Section(
		classIf(s.Styles.Class(styles.Features)),
		Div(
			Class("container"),
			g.Group(rows),
		),
	)
}

// Description renders rich text runs: plain runs as text, emphasized runs
// as <b>.
func Description(d features.Description) g.Node {
	nodes := make([]g.Node, 0, len(d))
	for _, run := range d {
		switch run.Kind {
		case features.RunEmphasis:
			nodes = append(nodes, B(g.Text(run.Text)))
		default:
			nodes = append(nodes, g.Text(run.Text))
		}
	}
	return g.Group(nodes)
}
