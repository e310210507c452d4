// Package features holds the homepage feature catalog.
//
// A Catalog is an ordered, immutable list of Records. Order is display order.
// Records are copied on the way in and on the way out, so a Catalog can be
// shared by concurrent renderers without locking.
package features

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/emergentai/formdocs/internal/assets"
)

// Record describes one feature card.
type Record struct {
	Title       string
	Icon        assets.IconID
	Description Description
}

func (r Record) clone() Record {
	r.Description = r.Description.clone()
	return r
}

// Catalog is an ordered, read-only collection of records.
type Catalog struct {
	records []Record
}

// NewCatalog returns a catalog holding copies of records in the given order.
func NewCatalog(records ...Record) Catalog {
	c := Catalog{records: make([]Record, len(records))}
	for i, r := range records {
		c.records[i] = r.clone()
	}
	return c
}

// Len returns the number of records.
func (c Catalog) Len() int {
	return len(c.records)
}

// At returns a copy of the record at position i. It panics if i is out of
// range, like a slice index.
func (c Catalog) At(i int) Record {
	return c.records[i].clone()
}

// All iterates over positions and records in display order.
func (c Catalog) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range c.records {
			if !yield(i, r.clone()) {
				return
			}
		}
	}
}

// Records returns a copy of every record in display order.
func (c Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	for i, r := range c.records {
		out[i] = r.clone()
	}
	return out
}

// IconSet reports whether an icon handle resolves to a graphic.
type IconSet interface {
	Has(id assets.IconID) bool
}

// Validate reports every malformed record: a blank title or an icon the
// resolver cannot satisfy. It returns nil for a well-formed catalog.
func (c Catalog) Validate(icons IconSet) error {
	var errs []error
	for i, r := range c.records {
		if strings.TrimSpace(r.Title) == "" {
			errs = append(errs, fmt.Errorf("feature %d: title is empty", i))
		}
		if !icons.Has(r.Icon) {
			errs = append(errs, fmt.Errorf("feature %d (%q): icon %s does not resolve", i, r.Title, r.Icon))
		}
	}
	return errors.Join(errs...)
}
