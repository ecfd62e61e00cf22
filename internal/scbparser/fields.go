package scbparser

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nickymouseeeeeee/bankstatement/internal/dateutils"
	"github.com/nickymouseeeeeee/bankstatement/internal/models"
)

// splitRow classifies one row's tokens into transaction fields by horizontal
// position. The second return value is false for rows that turn out to be
// footer/summary lines despite surviving the region truncation.
func (e *Extractor) splitRow(pageID string, row []models.Token) (models.TransactionRecord, bool) {
	lay := e.layout

	joined := make([]string, 0, len(row))
	for _, t := range row {
		joined = append(joined, t.Text)
	}
	rowText := strings.Join(joined, " ")
	for _, kw := range lay.FooterKeywords {
		if strings.Contains(rowText, kw) {
			return models.TransactionRecord{}, false
		}
	}

	sorted := make([]models.Token, len(row))
	copy(sorted, row)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Top != sorted[j].Top {
			return sorted[i].Top < sorted[j].Top
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var dateText, timeText string
	for _, t := range sorted {
		switch {
		case dateText == "" && e.match.IsDate(t.Text) && t.X0 >= lay.DateX0 && t.X0 <= lay.DateX1:
			dateText = t.Text
		case timeText == "" && e.match.IsTime(t.Text) && t.X0 > lay.DateX1:
			timeText = t.Text
		}
	}

	var (
		codeTokens        []string
		channelTokens     []string
		descriptionTokens []string
		dcCandidates      []models.Token
		balanceCandidates []models.Token
	)
	for _, t := range sorted {
		if e.match.IsDate(t.Text) || e.match.IsTime(t.Text) {
			continue
		}

		if e.match.IsMoney(t.Text) {
			switch {
			case t.X0 <= lay.SplitChannelDebitCredit+lay.XTolerance:
				dcCandidates = append(dcCandidates, t)
			case t.X0 <= lay.SplitBalanceDescription+lay.XTolerance:
				balanceCandidates = append(balanceCandidates, t)
			}
			// Money tokens beyond the balance band carry no field.
			continue
		}

		switch {
		case t.X0 <= lay.SplitCodeChannel+lay.XTolerance:
			codeTokens = append(codeTokens, t.Text)
		case t.X0 <= lay.SplitChannelDebitCredit+lay.XTolerance:
			channelTokens = append(channelTokens, t.Text)
		default:
			descriptionTokens = append(descriptionTokens, t.Text)
		}
	}

	// A token's right edge decides withdrawal vs deposit; when several land
	// in the same band the last one wins.
	var withdrawal, deposit decimal.NullDecimal
	for _, t := range dcCandidates {
		amount := e.match.ParseMoney(t.Text)
		if t.X1 <= lay.SplitWithdrawalDeposit+lay.XTolerance {
			withdrawal = amount
		} else {
			deposit = amount
		}
	}

	// First valid money token in the balance band wins.
	var balance decimal.NullDecimal
	for _, t := range balanceCandidates {
		if amount := e.match.ParseMoney(t.Text); amount.Valid {
			balance = amount
			break
		}
	}

	var date time.Time
	if dateText != "" {
		if parsed, err := dateutils.ParseStatementDate(dateText); err == nil {
			date = parsed
		}
	}

	return models.TransactionRecord{
		PageID:      pageID,
		Date:        date,
		Time:        timeText,
		Code:        strings.Join(codeTokens, " "),
		Channel:     strings.Join(channelTokens, " "),
		Withdrawal:  withdrawal,
		Deposit:     deposit,
		Balance:     balance,
		Description: strings.Join(descriptionTokens, " "),
	}, true
}
