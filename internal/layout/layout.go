// Package layout defines the fixed geometry of a statement page family:
// the horizontal bands that map x-coordinates to semantic columns, the
// vertical row margin, the lexical patterns for dates/times/amounts, and
// the crop boxes for header fields. A Layout value is immutable and passed
// explicitly into every component, so an alternate statement family is
// supported by substituting another Layout rather than editing globals.
package layout

import (
	"regexp"

	"github.com/nickymouseeeeeee/bankstatement/internal/models"
)

// Header crop field names.
const (
	FieldAccountName                 = "account_name"
	FieldAddress                     = "address"
	FieldAccountNumber               = "account_number"
	FieldPeriod                      = "period"
	FieldOwnerBranch                 = "owner_branch"
	FieldTotalWithdrawalSummary      = "total_withdrawal_summary"
	FieldTotalDepositSummary         = "total_deposit_summary"
	FieldTotalWithdrawalTransactions = "total_withdrawal_transaction_summary"
	FieldTotalDepositTransactions    = "total_deposit_transaction_summary"
)

// Layout holds every coordinate and pattern constant for one statement
// family. All x-splits are upper bounds of their band, compared against a
// token's left edge with XTolerance slack.
type Layout struct {
	// Horizontal band where a date token marks the start of a row.
	DateX0 float64
	DateX1 float64

	// Column split boundaries, in increasing x order:
	// code | channel | withdrawal/deposit | balance | description.
	SplitCodeChannel        float64
	SplitChannelDebitCredit float64
	SplitWithdrawalDeposit  float64
	SplitDebitCreditBalance float64
	SplitBalanceDescription float64

	XTolerance float64
	YMargin    float64

	DatePattern   *regexp.Regexp
	TimePattern   *regexp.Regexp
	MoneyPattern  *regexp.Regexp
	PageIDPattern *regexp.Regexp

	// AmountScanPattern finds an amount anywhere inside free text, used
	// for the header summary crops where the amount shares the box with
	// labels.
	AmountScanPattern *regexp.Regexp

	// DateFormat is the Go time layout matching DatePattern.
	DateFormat string

	HeaderCrops map[string]models.Rect

	// FooterKeywords mark summary lines that terminate the transaction
	// table; CreditTotalMarker signals that a page carries summary totals.
	FooterKeywords    []string
	CreditTotalMarker string
}

// SCB returns the layout of SCB statements without the note column.
func SCB() Layout {
	return Layout{
		DateX0: 20.0,
		DateX1: 30.0,

		SplitCodeChannel:        120.0,
		SplitChannelDebitCredit: 300.0,
		SplitWithdrawalDeposit:  280.0,
		SplitDebitCreditBalance: 400.0,
		SplitBalanceDescription: 550.0,

		XTolerance: 2.0,
		YMargin:    3.0,

		DatePattern:       regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`),
		TimePattern:       regexp.MustCompile(`^\d{2}:\d{2}$`),
		MoneyPattern:      regexp.MustCompile(`^[\d,]+\.\d{2}$`),
		PageIDPattern:     regexp.MustCompile(`(?i)\b(\d+)\s*of\s*(\d+)\b`),
		AmountScanPattern: regexp.MustCompile(`[\d,]+(?:\.\d{2})?`),

		DateFormat: "02/01/06",

		HeaderCrops: map[string]models.Rect{
			FieldAccountName:                 {X0: 70, Top: 95.9, X1: 230.4, Bottom: 105.9},
			FieldAddress:                     {X0: 70, Top: 141.9, X1: 260.3, Bottom: 180.9},
			FieldAccountNumber:               {X0: 415, Top: 95.9, X1: 550.3, Bottom: 100.9},
			FieldPeriod:                      {X0: 398, Top: 151.9, X1: 586.8, Bottom: 156.9},
			FieldOwnerBranch:                 {X0: 30, Top: 66.9, X1: 180.6, Bottom: 81.9},
			FieldTotalWithdrawalSummary:      {X0: 203, Top: 742.0, X1: 301.1, Bottom: 755.6},
			FieldTotalDepositSummary:         {X0: 203, Top: 760.0, X1: 301.1, Bottom: 775.6},
			FieldTotalWithdrawalTransactions: {X0: 160, Top: 780.0, X1: 280.1, Bottom: 795.6},
			FieldTotalDepositTransactions:    {X0: 265.2, Top: 780.0, X1: 301.1, Bottom: 795.6},
		},

		FooterKeywords:    []string{"TOTAL AMOUNTS", "TOTAL ITEMS"},
		CreditTotalMarker: "TOTAL AMOUNTS (Credit)",
	}
}
