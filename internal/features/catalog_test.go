package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergentai/formdocs/internal/assets"
)

func TestDefault_ReferenceInstance(t *testing.T) {
	c := Default()
	require.Equal(t, 6, c.Len())

	wantTitles := []string{
		"Controlled form",
		"Build in Typescript",
		"Support for classes",
		"Validation by schema",
		"Compatiblity with 3rd-party UI libraries",
		"Support for reactjs and react-native",
	}
	wantIcons := []assets.IconID{
		assets.IconControlled,
		assets.IconBuild,
		assets.IconClasses,
		assets.IconValidations,
		assets.IconLibraries,
		assets.IconWebMobile,
	}
	for i, r := range c.All() {
		assert.Equal(t, wantTitles[i], r.Title)
		assert.Equal(t, wantIcons[i], r.Icon)
	}

	validation := c.At(3)
	assert.Equal(t, "No native validation. The entire validation is up to the developer.", validation.Description.String())

	classes := c.At(2)
	assert.Equal(t, Describe(Plain("Possability of "), Emphasis("classes"), Plain(" as default form data.")), classes.Description)
}

func TestDefault_Validates(t *testing.T) {
	assert.NoError(t, Default().Validate(assets.DefaultIcons()))
}

func TestNewCatalog_Empty(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Records())
	assert.Empty(t, c.Summaries())

	count := 0
	for range c.All() {
		count++
	}
	assert.Zero(t, count)
}

func TestCatalog_IsImmutable(t *testing.T) {
	desc := Describe(Plain("original"))
	records := []Record{{Title: "one", Icon: assets.IconBuild, Description: desc}}
	c := NewCatalog(records...)

	records[0].Title = "changed"
	desc[0].Text = "changed"
	assert.Equal(t, "one", c.At(0).Title)
	assert.Equal(t, "original", c.At(0).Description.String())

	got := c.Records()
	got[0].Title = "changed"
	got[0].Description[0].Text = "changed"
	assert.Equal(t, "one", c.At(0).Title)
	assert.Equal(t, "original", c.At(0).Description.String())

	at := c.At(0)
	at.Description[0].Text = "changed"
	assert.Equal(t, "original", c.At(0).Description.String())
}

func TestCatalog_All_PreservesOrderAndStops(t *testing.T) {
	c := NewCatalog(
		Record{Title: "a", Icon: assets.IconBuild},
		Record{Title: "b", Icon: assets.IconBuild},
		Record{Title: "c", Icon: assets.IconBuild},
	)

	var titles []string
	for i, r := range c.All() {
		titles = append(titles, r.Title)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, titles)
}

type iconSetFunc func(assets.IconID) bool

func (f iconSetFunc) Has(id assets.IconID) bool { return f(id) }

func TestCatalog_Validate(t *testing.T) {
	c := NewCatalog(
		Record{Title: "ok", Icon: assets.IconBuild},
		Record{Title: "  ", Icon: assets.IconBuild},
		Record{Title: "no icon"},
	)

	err := c.Validate(assets.DefaultIcons())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature 1: title is empty")
	assert.Contains(t, err.Error(), `feature 2 ("no icon"): icon IconID(0) does not resolve`)
	assert.NotContains(t, err.Error(), "feature 0")

	none := iconSetFunc(func(assets.IconID) bool { return false })
	err = NewCatalog(Record{Title: "x", Icon: assets.IconBuild}).Validate(none)
	assert.EqualError(t, err, `feature 0 ("x"): icon build does not resolve`)
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name string
		desc Description
		want string
	}{
		{"nil", nil, ""},
		{"single plain", Describe(Plain("hello")), "hello"},
		{"mixed", Describe(Plain("a "), Emphasis("b"), Plain(" c")), "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.desc.String())
		})
	}

	assert.Equal(t, "plain", RunPlain.String())
	assert.Equal(t, "emphasis", RunEmphasis.String())
	assert.Equal(t, "unknown", RunKind(9).String())
}

func TestCatalog_Summaries(t *testing.T) {
	s := Default().Summaries()
	require.Len(t, s, 6)

	assert.Equal(t, 2, s[2].Key)
	assert.Equal(t, "Support for classes", s[2].Title)
	assert.Equal(t, "classes", s[2].Icon)
	assert.Equal(t, "/static/img/classes.svg", s[2].IconPath)
	assert.Equal(t, "Possability of classes as default form data.", s[2].Description)
	assert.Equal(t, []RunSummary{
		{Kind: "plain", Text: "Possability of "},
		{Kind: "emphasis", Text: "classes"},
		{Kind: "plain", Text: " as default form data."},
	}, s[2].Runs)
}
