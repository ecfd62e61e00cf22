// Package pdfsource abstracts the PDF library behind small interfaces so the
// statement parser can be tested against an in-memory fake.
package pdfsource

import (
	"github.com/nickymouseeeeeee/bankstatement/internal/models"
)

// Region is a rectangular area of a page that can yield positioned words,
// plain text, and sub-regions.
type Region interface {
	// BBox returns the region's bounding box in absolute page coordinates.
	BBox() models.Rect

	// Words returns the word tokens inside the region, with absolute
	// coordinates, ordered top to bottom then left to right.
	Words() ([]models.Token, error)

	// Text returns the text content of the region.
	Text() (string, error)

	// Crop returns a sub-region. The rectangle is relative to this
	// region's bounding box origin.
	Crop(rel models.Rect) (Region, error)
}

// Page is a full page of the document.
type Page interface {
	Region

	// Number returns the 1-based page number.
	Number() int

	// TableRegions returns one region per detected table on the page,
	// in detection order. An empty slice means no tables were found.
	TableRegions() ([]Region, error)
}

// Source is an open document.
type Source interface {
	// Pages returns all pages in document order.
	Pages() []Page

	// Close releases the underlying document.
	Close() error
}
