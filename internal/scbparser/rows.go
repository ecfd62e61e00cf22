package scbparser

import (
	"sort"

	"github.com/nickymouseeeeeee/bankstatement/internal/models"
)

// dateAnchors returns the sorted unique top coordinates of date tokens whose
// left edge falls inside the date band. Each anchor marks the start of one
// logical table row.
func (e *Extractor) dateAnchors(tokens []models.Token) []float64 {
	seen := make(map[float64]bool)
	var anchors []float64
	for _, t := range tokens {
		if !e.match.IsDate(t.Text) {
			continue
		}
		if t.X0 < e.layout.DateX0 || t.X0 > e.layout.DateX1 {
			continue
		}
		if !seen[t.Top] {
			seen[t.Top] = true
			anchors = append(anchors, t.Top)
		}
	}
	sort.Float64s(anchors)
	return anchors
}

// rowIntervals converts anchor coordinates into half-open vertical bands.
// Each band starts a margin above its anchor and ends a margin above the
// next anchor. The last band has no successor, so its height is extrapolated
// from the gap to the previous anchor, or twice the margin when the page has
// a single anchor.
func rowIntervals(anchors []float64, margin float64) []models.RowInterval {
	intervals := make([]models.RowInterval, 0, len(anchors))
	for i, y := range anchors {
		start := y - margin
		var end float64
		if i+1 < len(anchors) {
			end = anchors[i+1] - margin
		} else {
			gap := margin * 2
			if i > 0 {
				gap = y - anchors[i-1]
			}
			end = y + gap - margin
		}
		intervals = append(intervals, models.RowInterval{Start: start, End: end})
	}
	return intervals
}

// assignToRows places each token into the first interval containing its top
// coordinate. Tokens outside every interval are dropped.
func assignToRows(tokens []models.Token, intervals []models.RowInterval) [][]models.Token {
	rows := make([][]models.Token, len(intervals))
	for _, t := range tokens {
		for i, iv := range intervals {
			if iv.Contains(t.Top) {
				rows[i] = append(rows[i], t)
				break
			}
		}
	}
	return rows
}
