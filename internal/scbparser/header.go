package scbparser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nickymouseeeeeee/bankstatement/internal/currencyutils"
	"github.com/nickymouseeeeeee/bankstatement/internal/dateutils"
	"github.com/nickymouseeeeeee/bankstatement/internal/layout"
	"github.com/nickymouseeeeeee/bankstatement/internal/models"
	"github.com/nickymouseeeeeee/bankstatement/internal/pdfsource"
	"github.com/nickymouseeeeeee/bankstatement/internal/textmatch"
)

// extractHeader reads the fixed crop regions of a page into a HeaderRecord.
// Summary totals are only read on pages carrying the credit-total marker;
// other pages keep them absent.
func (e *Extractor) extractHeader(page pdfsource.Page, pageID, pageText string) (*models.HeaderRecord, error) {
	rec := &models.HeaderRecord{PageID: pageID}
	hasCreditTotal := textmatch.ContainsAnyKeyword(pageText, []string{e.layout.CreditTotalMarker})

	for field, box := range e.layout.HeaderCrops {
		region, err := page.Crop(box)
		if err != nil {
			return nil, err
		}
		text, err := region.Text()
		if err != nil {
			return nil, err
		}
		text = strings.TrimSpace(text)

		if strings.HasSuffix(field, "_summary") {
			var amount decimal.NullDecimal
			if hasCreditTotal {
				if m := e.layout.AmountScanPattern.FindString(text); m != "" {
					amount = currencyutils.ParseOptionalAmount(m)
				}
			}
			switch field {
			case layout.FieldTotalWithdrawalSummary:
				rec.TotalWithdrawal = amount
			case layout.FieldTotalDepositSummary:
				rec.TotalDeposit = amount
			case layout.FieldTotalWithdrawalTransactions:
				rec.TotalWithdrawalTransactions = amount
			case layout.FieldTotalDepositTransactions:
				rec.TotalDepositTransactions = amount
			}
			continue
		}

		switch field {
		case layout.FieldAccountName:
			rec.AccountName = text
		case layout.FieldAddress:
			rec.Address = text
		case layout.FieldAccountNumber:
			rec.AccountNumber = text
		case layout.FieldPeriod:
			rec.Period = text
		case layout.FieldOwnerBranch:
			rec.OwnerBranch = text
		}
	}

	rec.Address = strings.TrimSpace(strings.ReplaceAll(rec.Address, "\n", ""))
	rec.PeriodStart, rec.PeriodEnd = dateutils.SplitPeriod(rec.Period)
	return rec, nil
}
