package custody

import (
	"testing"

	"mainevent/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildLedgerEmbed(t *testing.T) {
	embed := BuildLedgerEmbed([]*models.CustodyEntry{
		{ID: 3, Kind: models.CustodyEntryPayout, Identity: "x", EventID: 1, Amount: -7500},
		{ID: 2, Kind: models.CustodyEntryStake, Identity: "x", EventID: 1, Amount: 3000},
		{ID: 1, Kind: models.CustodyEntryDeposit, Identity: "house", Amount: 10000},
	})

	assert.Equal(t,
		"`-7,500` payout <@x> on #1\n"+
			"`+3,000` stake <@x> on #1\n"+
			"`+10,000` deposit <@house>\n",
		embed.Description)

	assert.Equal(t, "The ledger is empty.", BuildLedgerEmbed(nil).Description)
}
