package pdfsource

import (
	"sort"
	"strings"

	pdfplumber "github.com/pyhub-apps/pdfplumber-golang"
	"github.com/pyhub-apps/pdfplumber-golang/pkg/pdf"

	"github.com/nickymouseeeeeee/bankstatement/internal/models"
	"github.com/nickymouseeeeeee/bankstatement/internal/parsererror"
)

// Word grouping tolerances, matching pdfplumber's defaults.
const (
	wordXTolerance = 3.0
	wordYTolerance = 3.0
)

// Open opens a PDF document, optionally decrypting it with a password. A
// file that cannot be opened is reported as an InvalidFormatError, which
// callers treat as fatal.
func Open(path, password string) (Source, error) {
	var (
		doc pdf.Document
		err error
	)
	if password != "" {
		doc, err = pdfplumber.OpenWithPassword(path, password)
	} else {
		doc, err = pdfplumber.Open(path)
	}
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "PDF",
			Msg:            "unable to open document",
			Err:            err,
		}
	}
	return &plumberSource{doc: doc}, nil
}

type plumberSource struct {
	doc pdf.Document
}

func (s *plumberSource) Pages() []Page {
	raw := s.doc.GetPages()
	pages := make([]Page, 0, len(raw))
	for _, p := range raw {
		pages = append(pages, &plumberRegion{page: p})
	}
	return pages
}

func (s *plumberSource) Close() error {
	return s.doc.Close()
}

// plumberRegion wraps a library page (or a crop of one) as a Region. Crops
// filter page objects but keep absolute coordinates, so no coordinate
// translation is needed when reading tokens back out.
type plumberRegion struct {
	page pdf.Page
}

func (r *plumberRegion) Number() int {
	return r.page.GetPageNumber()
}

func (r *plumberRegion) BBox() models.Rect {
	b := r.page.GetBBox()
	return models.Rect{X0: b.X0, Top: b.Y0, X1: b.X1, Bottom: b.Y1}
}

func (r *plumberRegion) Words() ([]models.Token, error) {
	words := groupWords(r.page.GetObjects().Chars)
	tokens := make([]models.Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, models.Token{
			Text: w.text,
			X0:   w.x0,
			Top:  w.top,
			X1:   w.x1,
		})
	}
	return tokens, nil
}

// Text assembles the region text from its character objects rather than the
// page content stream, so cropped regions only report their own content.
func (r *plumberRegion) Text() (string, error) {
	words := groupWords(r.page.GetObjects().Chars)
	if len(words) == 0 {
		return "", nil
	}

	var sb strings.Builder
	lineTop := words[0].top
	for i, w := range words {
		if i > 0 {
			if w.top-lineTop > wordYTolerance {
				sb.WriteString("\n")
				lineTop = w.top
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(w.text)
	}
	return sb.String(), nil
}

func (r *plumberRegion) Crop(rel models.Rect) (Region, error) {
	b := r.page.GetBBox()
	abs := pdf.BoundingBox{
		X0: b.X0 + rel.X0,
		Y0: b.Y0 + rel.Top,
		X1: b.X0 + rel.X1,
		Y1: b.Y0 + rel.Bottom,
	}
	return &plumberRegion{page: r.page.Crop(abs)}, nil
}

func (r *plumberRegion) TableRegions() ([]Region, error) {
	tables := r.page.ExtractTables()
	regions := make([]Region, 0, len(tables))
	for _, t := range tables {
		regions = append(regions, &plumberRegion{page: r.page.Crop(t.BBox)})
	}
	return regions, nil
}

type word struct {
	text string
	x0   float64
	top  float64
	x1   float64
}

// groupWords rebuilds word tokens from raw character objects: characters
// are sorted top to bottom then left to right, bucketed into lines within
// the vertical tolerance, and split into words at horizontal gaps larger
// than the tolerance or a third of the following character's width.
func groupWords(chars []pdf.CharObject) []word {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]pdf.CharObject, len(chars))
	copy(sorted, chars)
	sort.Slice(sorted, func(i, j int) bool {
		if diff := sorted[i].Y0 - sorted[j].Y0; diff > wordYTolerance || diff < -wordYTolerance {
			return sorted[i].Y0 < sorted[j].Y0
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines [][]pdf.CharObject
	currentLine := []pdf.CharObject{sorted[0]}
	currentY := sorted[0].Y0
	for _, c := range sorted[1:] {
		if diff := c.Y0 - currentY; diff > wordYTolerance || diff < -wordYTolerance {
			lines = append(lines, currentLine)
			currentLine = []pdf.CharObject{c}
			currentY = c.Y0
		} else {
			currentLine = append(currentLine, c)
		}
	}
	lines = append(lines, currentLine)

	var words []word
	for _, line := range lines {
		sort.Slice(line, func(i, j int) bool { return line[i].X0 < line[j].X0 })

		run := []pdf.CharObject{line[0]}
		for i := 1; i < len(line); i++ {
			gap := line[i].X0 - line[i-1].X1
			if gap > wordXTolerance || gap > line[i].Width*0.3 {
				words = append(words, joinChars(run))
				run = []pdf.CharObject{line[i]}
			} else {
				run = append(run, line[i])
			}
		}
		words = append(words, joinChars(run))
	}
	return words
}

func joinChars(chars []pdf.CharObject) word {
	var sb strings.Builder
	x0, top, x1 := chars[0].X0, chars[0].Y0, chars[0].X1
	for _, c := range chars {
		sb.WriteString(c.Text)
		if c.X0 < x0 {
			x0 = c.X0
		}
		if c.Y0 < top {
			top = c.Y0
		}
		if c.X1 > x1 {
			x1 = c.X1
		}
	}
	return word{text: sb.String(), x0: x0, top: top, x1: x1}
}
