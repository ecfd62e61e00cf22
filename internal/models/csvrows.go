package models

import "github.com/shopspring/decimal"

// TransactionRow is the finalized shape of one transaction as written to
// the transactions CSV. NullDecimal fields marshal to an empty cell when
// absent.
type TransactionRow struct {
	PageID          string              `csv:"page_id"`
	Date            string              `csv:"date"` // ISO date, empty when unknown
	Time            string              `csv:"time"`
	Code            string              `csv:"code"`
	Channel         string              `csv:"channel"`
	Withdrawal      decimal.NullDecimal `csv:"withdrawal"`
	Deposit         decimal.NullDecimal `csv:"deposit"`
	Balance         decimal.NullDecimal `csv:"balance"`
	TransactionType string              `csv:"transaction_type"`
	Description     string              `csv:"description"`
}

// HeaderRow is the finalized shape of one page header as written to the
// headers CSV. The summary totals are renamed to their accounting names
// (withdrawal -> debit, deposit -> credit).
type HeaderRow struct {
	PageID                string              `csv:"page_id"`
	AccountName           string              `csv:"account_name"`
	Address               string              `csv:"address"`
	AccountNumber         string              `csv:"account_number"`
	Period                string              `csv:"period"`
	Debit                 decimal.NullDecimal `csv:"debit"`
	Credit                decimal.NullDecimal `csv:"credit"`
	WithdrawalTransaction decimal.NullDecimal `csv:"withdrawal_transaction"`
	DepositTransaction    decimal.NullDecimal `csv:"deposit_transaction"`
}
