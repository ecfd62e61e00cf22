// Package scbparser reconstructs transaction tables and page headers from
// SCB statement PDFs. The pages expose positioned word tokens rather than
// table structure, so rows are rebuilt geometrically: date tokens in a
// fixed horizontal band anchor the rows, footer lines truncate the table,
// and horizontal split boundaries map each token to its column.
package scbparser

import (
	"github.com/nickymouseeeeeee/bankstatement/internal/layout"
	"github.com/nickymouseeeeeee/bankstatement/internal/logging"
	"github.com/nickymouseeeeeee/bankstatement/internal/models"
	"github.com/nickymouseeeeeee/bankstatement/internal/parsererror"
	"github.com/nickymouseeeeeee/bankstatement/internal/pdfsource"
	"github.com/nickymouseeeeeee/bankstatement/internal/textmatch"
)

// Extractor runs the page pipeline for one statement layout.
type Extractor struct {
	layout layout.Layout
	match  textmatch.Matcher
	log    logging.Logger
}

// New creates an Extractor for the given layout.
func New(lay layout.Layout, log logging.Logger) *Extractor {
	return &Extractor{
		layout: lay,
		match:  textmatch.NewMatcher(lay.DatePattern, lay.TimePattern, lay.MoneyPattern),
		log:    log,
	}
}

// ExtractFile opens a statement PDF and extracts it into a Statement. A file
// that cannot be opened at all returns an error; individual page failures
// are recorded on the Statement instead.
func (e *Extractor) ExtractFile(path, password string) (*Statement, error) {
	e.log.Info("Opening statement", logging.Field{Key: logging.FieldFile, Value: path})

	src, err := pdfsource.Open(path, password)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			e.log.WithError(cerr).Warn("Failed to close document")
		}
	}()

	return e.ExtractPages(src.Pages()), nil
}

// ExtractPages runs the page pipeline over the given pages and finalizes
// the accumulated records into a Statement. A failing page is logged and
// recorded as a failure; the remaining pages are still processed.
func (e *Extractor) ExtractPages(pages []pdfsource.Page) *Statement {
	results := make([]models.PageResult, 0, len(pages))
	for _, page := range pages {
		result := e.processPage(page)
		if !result.OK() {
			e.log.WithError(result.Err).Warn("Page extraction failed",
				logging.Field{Key: logging.FieldPage, Value: result.PageNumber})
		}
		results = append(results, result)
	}
	return finalize(results)
}

// processPage extracts the header record and transaction rows of one page.
// Any failure is wrapped in a PageError on the result.
func (e *Extractor) processPage(page pdfsource.Page) models.PageResult {
	result := models.PageResult{PageNumber: page.Number()}

	fail := func(err error) models.PageResult {
		result.Err = &parsererror.PageError{PageNumber: page.Number(), Err: err}
		return result
	}

	pageText, err := page.Text()
	if err != nil {
		return fail(err)
	}
	pageID := textmatch.PageID(e.layout.PageIDPattern, pageText)

	header, err := e.extractHeader(page, pageID, pageText)
	if err != nil {
		return fail(err)
	}
	result.Header = header

	regions, err := page.TableRegions()
	if err != nil {
		return fail(err)
	}
	if len(regions) == 0 {
		// No detected tables; treat the whole page as the table region.
		regions = []pdfsource.Region{page}
	}

	for _, region := range regions {
		records, err := e.extractRegion(region, pageID)
		if err != nil {
			return fail(err)
		}
		result.Transactions = append(result.Transactions, records...)
	}

	e.log.Debug("Processed page",
		logging.Field{Key: logging.FieldPage, Value: page.Number()},
		logging.Field{Key: logging.FieldPageID, Value: pageID},
		logging.Field{Key: logging.FieldTransactions, Value: len(result.Transactions)})
	return result
}

// extractRegion rebuilds the transaction rows of one table region.
func (e *Extractor) extractRegion(region pdfsource.Region, pageID string) ([]models.TransactionRecord, error) {
	tokens, err := region.Words()
	if err != nil {
		return nil, err
	}

	_, tokens, err = e.truncateAtFooter(region, tokens)
	if err != nil {
		return nil, err
	}

	anchors := e.dateAnchors(tokens)
	if len(anchors) == 0 {
		return nil, nil
	}

	intervals := rowIntervals(anchors, e.layout.YMargin)
	rows := assignToRows(tokens, intervals)

	var records []models.TransactionRecord
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		record, ok := e.splitRow(pageID, row)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
