package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSCBLayout(t *testing.T) {
	lay := SCB()

	// The column splits must come in increasing x order for the banding
	// logic to be meaningful.
	assert.Less(t, lay.SplitCodeChannel, lay.SplitChannelDebitCredit)
	assert.Less(t, lay.SplitWithdrawalDeposit, lay.SplitChannelDebitCredit)
	assert.Less(t, lay.SplitChannelDebitCredit, lay.SplitDebitCreditBalance)
	assert.Less(t, lay.SplitDebitCreditBalance, lay.SplitBalanceDescription)
	assert.Less(t, lay.DateX0, lay.DateX1)

	assert.Positive(t, lay.YMargin)
	assert.Positive(t, lay.XTolerance)
	assert.Equal(t, "02/01/06", lay.DateFormat)
}

func TestSCBLayoutPatterns(t *testing.T) {
	lay := SCB()

	assert.True(t, lay.DatePattern.MatchString("15/03/23"))
	assert.True(t, lay.TimePattern.MatchString("09:41"))
	assert.True(t, lay.MoneyPattern.MatchString("1,250.00"))
	assert.True(t, lay.PageIDPattern.MatchString("Page 1 of 3"))
	assert.Equal(t, "1,250.00", lay.AmountScanPattern.FindString("THB 1,250.00 total"))
}

func TestSCBLayoutHeaderCrops(t *testing.T) {
	lay := SCB()

	required := []string{
		FieldAccountName,
		FieldAddress,
		FieldAccountNumber,
		FieldPeriod,
		FieldOwnerBranch,
		FieldTotalWithdrawalSummary,
		FieldTotalDepositSummary,
		FieldTotalWithdrawalTransactions,
		FieldTotalDepositTransactions,
	}
	for _, name := range required {
		box, ok := lay.HeaderCrops[name]
		require.True(t, ok, "missing crop region %s", name)
		assert.Positive(t, box.Width(), "crop %s has no width", name)
		assert.Positive(t, box.Height(), "crop %s has no height", name)
	}
}
