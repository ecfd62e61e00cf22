package pdfsource

import (
	"sort"
	"strings"

	"github.com/nickymouseeeeeee/bankstatement/internal/models"
)

// FakeSource is an in-memory Source for tests.
type FakeSource struct {
	FakePages []*FakePage
	Closed    bool
}

func (s *FakeSource) Pages() []Page {
	pages := make([]Page, 0, len(s.FakePages))
	for _, p := range s.FakePages {
		pages = append(pages, p)
	}
	return pages
}

func (s *FakeSource) Close() error {
	s.Closed = true
	return nil
}

// FakePage is an in-memory page built from positioned tokens. Crops filter
// the token set by absolute coordinates, mirroring how the real library
// filters page objects. Error fields let tests inject failures.
type FakePage struct {
	Num      int
	Bound    models.Rect
	Tokens   []models.Token
	PageText string

	// Regions overrides TableRegions; when nil the page itself is the
	// only table region, which matches a page with no detected tables.
	Regions []Region

	WordsErr   error
	TextErr    error
	RegionsErr error
}

func (p *FakePage) Number() int { return p.Num }

func (p *FakePage) BBox() models.Rect {
	if p.Bound == (models.Rect{}) {
		return models.Rect{X0: 0, Top: 0, X1: 612, Bottom: 850}
	}
	return p.Bound
}

func (p *FakePage) Words() ([]models.Token, error) {
	if p.WordsErr != nil {
		return nil, p.WordsErr
	}
	return sortTokens(p.Tokens), nil
}

func (p *FakePage) Text() (string, error) {
	if p.TextErr != nil {
		return "", p.TextErr
	}
	if p.PageText != "" {
		return p.PageText, nil
	}
	return joinTokenText(p.Tokens), nil
}

func (p *FakePage) Crop(rel models.Rect) (Region, error) {
	return cropTokens(p.BBox(), p.Tokens, rel), nil
}

func (p *FakePage) TableRegions() ([]Region, error) {
	if p.RegionsErr != nil {
		return nil, p.RegionsErr
	}
	return p.Regions, nil
}

// FakeRegion is a crop of a FakePage.
type FakeRegion struct {
	Bound  models.Rect
	Tokens []models.Token

	WordsErr error
	TextErr  error
}

func (r *FakeRegion) BBox() models.Rect { return r.Bound }

func (r *FakeRegion) Words() ([]models.Token, error) {
	if r.WordsErr != nil {
		return nil, r.WordsErr
	}
	return sortTokens(r.Tokens), nil
}

func (r *FakeRegion) Text() (string, error) {
	if r.TextErr != nil {
		return "", r.TextErr
	}
	return joinTokenText(r.Tokens), nil
}

func (r *FakeRegion) Crop(rel models.Rect) (Region, error) {
	return cropTokens(r.Bound, r.Tokens, rel), nil
}

func cropTokens(bound models.Rect, tokens []models.Token, rel models.Rect) *FakeRegion {
	abs := models.Rect{
		X0:     bound.X0 + rel.X0,
		Top:    bound.Top + rel.Top,
		X1:     bound.X0 + rel.X1,
		Bottom: bound.Top + rel.Bottom,
	}
	var kept []models.Token
	for _, t := range tokens {
		if t.Top >= abs.Top && t.Top < abs.Bottom && t.X0 >= abs.X0 && t.X0 < abs.X1 {
			kept = append(kept, t)
		}
	}
	return &FakeRegion{Bound: abs, Tokens: kept}
}

func sortTokens(tokens []models.Token) []models.Token {
	out := make([]models.Token, len(tokens))
	copy(out, tokens)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Top != out[j].Top {
			return out[i].Top < out[j].Top
		}
		return out[i].X0 < out[j].X0
	})
	return out
}

func joinTokenText(tokens []models.Token) string {
	sorted := sortTokens(tokens)
	parts := make([]string, 0, len(sorted))
	for _, t := range sorted {
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}
