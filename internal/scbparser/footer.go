package scbparser

import (
	"math"
	"strings"

	"github.com/nickymouseeeeeee/bankstatement/internal/models"
	"github.com/nickymouseeeeeee/bankstatement/internal/pdfsource"
)

// groupRowsByMargin buckets tokens into coarse row groups keyed by
// floor(top / margin). The grouping is deliberately crude: it only needs to
// bring the words of one printed line together for footer detection.
func groupRowsByMargin(tokens []models.Token, margin float64) map[int][]models.Token {
	groups := make(map[int][]models.Token)
	for _, t := range tokens {
		key := int(math.Floor(t.Top / margin))
		groups[key] = append(groups[key], t)
	}
	return groups
}

// footerCutoff scans the coarse row groups for footer keywords and returns
// the vertical cutoff above the first footer line. The second return value
// is false when the region has no footer.
func (e *Extractor) footerCutoff(tokens []models.Token) (float64, bool) {
	cutoff := math.Inf(1)
	found := false
	for _, group := range groupRowsByMargin(tokens, e.layout.YMargin) {
		minTop := math.Inf(1)
		hasKeyword := false
		for _, t := range group {
			for _, kw := range e.layout.FooterKeywords {
				if strings.Contains(t.Text, kw) {
					hasKeyword = true
				}
			}
			if t.Top < minTop {
				minTop = t.Top
			}
		}
		if hasKeyword && minTop < cutoff {
			cutoff = minTop
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return cutoff - e.layout.YMargin, true
}

// truncateAtFooter removes everything below the first footer line by
// re-cropping the region and re-extracting its words. Regions without a
// footer are returned unchanged.
func (e *Extractor) truncateAtFooter(region pdfsource.Region, tokens []models.Token) (pdfsource.Region, []models.Token, error) {
	cutoff, ok := e.footerCutoff(tokens)
	if !ok {
		return region, tokens, nil
	}

	b := region.BBox()
	cropped, err := region.Crop(models.Rect{X0: 0, Top: 0, X1: b.X1, Bottom: cutoff})
	if err != nil {
		return nil, nil, err
	}
	words, err := cropped.Words()
	if err != nil {
		return nil, nil, err
	}
	return cropped, words, nil
}
