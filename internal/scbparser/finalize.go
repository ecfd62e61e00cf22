package scbparser

import (
	"github.com/nickymouseeeeeee/bankstatement/internal/dateutils"
	"github.com/nickymouseeeeeee/bankstatement/internal/models"
)

// Statement is the finalized output of one extraction run: the flattened
// transaction and header datasets plus the failures of any pages that could
// not be processed.
type Statement struct {
	Transactions []models.TransactionRow
	Headers      []models.HeaderRow
	Failures     []error
}

// finalize flattens per-page results into the two output datasets.
// Transaction rows without a parseable date are dropped; header records are
// renamed to their accounting column names. Failed pages contribute their
// error and nothing else.
func finalize(results []models.PageResult) *Statement {
	stmt := &Statement{
		Transactions: []models.TransactionRow{},
		Headers:      []models.HeaderRow{},
	}
	for _, result := range results {
		if !result.OK() {
			stmt.Failures = append(stmt.Failures, result.Err)
			continue
		}

		if result.Header != nil {
			h := result.Header
			stmt.Headers = append(stmt.Headers, models.HeaderRow{
				PageID:                h.PageID,
				AccountName:           h.AccountName,
				Address:               h.Address,
				AccountNumber:         h.AccountNumber,
				Period:                h.Period,
				Debit:                 h.TotalWithdrawal,
				Credit:                h.TotalDeposit,
				WithdrawalTransaction: h.TotalWithdrawalTransactions,
				DepositTransaction:    h.TotalDepositTransactions,
			})
		}

		for _, t := range result.Transactions {
			if t.Date.IsZero() {
				continue
			}
			stmt.Transactions = append(stmt.Transactions, models.TransactionRow{
				PageID:      t.PageID,
				Date:        dateutils.ToISODate(t.Date),
				Time:        t.Time,
				Code:        t.Code,
				Channel:     t.Channel,
				Withdrawal:  t.Withdrawal,
				Deposit:     t.Deposit,
				Balance:     t.Balance,
				Description: t.Description,
			})
		}
	}
	return stmt
}
