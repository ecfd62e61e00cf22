package scbparser

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickymouseeeeeee/bankstatement/internal/models"
)

func TestFinalizeDropsDatelessTransactions(t *testing.T) {
	results := []models.PageResult{
		{
			PageNumber: 1,
			Header:     &models.HeaderRecord{PageID: "1/1"},
			Transactions: []models.TransactionRecord{
				{PageID: "1/1", Date: time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), Description: "kept"},
				{PageID: "1/1", Description: "continuation line, no date"},
			},
		},
	}

	stmt := finalize(results)

	require.Len(t, stmt.Transactions, 1)
	assert.Equal(t, "kept", stmt.Transactions[0].Description)
	assert.Equal(t, "2023-03-15", stmt.Transactions[0].Date)
}

func TestFinalizeRenamesHeaderTotals(t *testing.T) {
	withdrawal := decimal.NullDecimal{Decimal: decimal.NewFromFloat(100.00), Valid: true}
	deposit := decimal.NullDecimal{Decimal: decimal.NewFromFloat(200.00), Valid: true}

	results := []models.PageResult{
		{
			PageNumber: 1,
			Header: &models.HeaderRecord{
				PageID:          "1/1",
				AccountName:     "JOHN DOE",
				TotalWithdrawal: withdrawal,
				TotalDeposit:    deposit,
			},
		},
	}

	stmt := finalize(results)

	require.Len(t, stmt.Headers, 1)
	header := stmt.Headers[0]
	assert.Equal(t, withdrawal, header.Debit)
	assert.Equal(t, deposit, header.Credit)
	assert.Equal(t, "JOHN DOE", header.AccountName)
}

func TestFinalizeCollectsFailures(t *testing.T) {
	someErr := errors.New("page exploded")
	results := []models.PageResult{
		{PageNumber: 1, Err: someErr},
		{PageNumber: 2, Header: &models.HeaderRecord{PageID: "2/2"}},
	}

	stmt := finalize(results)

	require.Len(t, stmt.Failures, 1)
	assert.ErrorIs(t, stmt.Failures[0], someErr)
	assert.Len(t, stmt.Headers, 1)
}

func TestFinalizeEmptyInput(t *testing.T) {
	stmt := finalize(nil)

	assert.NotNil(t, stmt.Transactions)
	assert.NotNil(t, stmt.Headers)
	assert.Empty(t, stmt.Failures)
}
