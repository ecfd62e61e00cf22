// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Token is a positioned piece of text extracted from a PDF page. Coordinates
// are in PDF points with the origin at the top-left of the page; Top grows
// downward. Tokens are produced by the token source and are scoped to one
// page-processing pass.
type Token struct {
	Text string
	X0   float64 // left edge
	Top  float64 // top edge
	X1   float64 // right edge
}

// Rect is a rectangular area on a page: (X0, Top) top-left, (X1, Bottom)
// bottom-right.
type Rect struct {
	X0     float64
	Top    float64
	X1     float64
	Bottom float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// RowInterval is a half-open vertical band [Start, End) assumed to contain
// one logical table row. Intervals for a page never overlap and are sorted
// ascending by Start.
type RowInterval struct {
	Start float64
	End   float64
}

// Contains reports whether a vertical coordinate falls inside the interval.
func (iv RowInterval) Contains(top float64) bool {
	return top >= iv.Start && top < iv.End
}

// TransactionRecord is one reconstructed statement line. Amount fields use
// NullDecimal so an absent amount stays distinguishable from zero. A row
// with no recognizable date keeps a zero Date; the finalizer filters those
// out of the transactions dataset.
type TransactionRecord struct {
	PageID      string
	Date        time.Time
	Time        string
	Code        string
	Channel     string
	Withdrawal  decimal.NullDecimal
	Deposit     decimal.NullDecimal
	Balance     decimal.NullDecimal
	Description string
}

// HeaderRecord holds the per-page header fields read from fixed crop
// regions. Summary totals are only populated on pages that carry the
// credit-total marker.
type HeaderRecord struct {
	PageID        string
	AccountName   string
	Address       string
	AccountNumber string
	Period        string
	OwnerBranch   string

	TotalWithdrawal             decimal.NullDecimal
	TotalDeposit                decimal.NullDecimal
	TotalWithdrawalTransactions decimal.NullDecimal
	TotalDepositTransactions    decimal.NullDecimal

	// PeriodStart and PeriodEnd are parsed from Period (day-first); zero
	// when the period text is missing or unparseable.
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// PageResult is the outcome of processing a single page: either a header
// plus zero or more transactions, or a failure reason. A failed page never
// aborts the run; the orchestrator records the result and moves on.
type PageResult struct {
	PageNumber   int
	Header       *HeaderRecord
	Transactions []TransactionRecord
	Err          error
}

// OK reports whether the page was processed successfully.
func (r PageResult) OK() bool {
	return r.Err == nil
}
