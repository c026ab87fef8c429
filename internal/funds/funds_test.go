package funds

import (
	"testing"

	"exchange_calculator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountsAndCardsAreCopies(t *testing.T) {
	accounts := Accounts()
	require.Len(t, accounts, 2)
	accounts[0].Balance = 0

	cards := Cards()
	require.Len(t, cards, 2)
	cards[1].Name = "changed"

	assert.Equal(t, 1200.5, Accounts()[0].Balance)
	assert.Equal(t, "Mastercard Gold", Cards()[1].Name)
}

func TestMergedItems(t *testing.T) {
	items := MergedItems(Accounts(), Cards())

	assert.Equal(t, []models.SourceItem{
		{Key: "account-1", RawID: 1, Type: TypeAccount, Name: "Checking Account", Amount: 1200.5},
		{Key: "account-2", RawID: 2, Type: TypeAccount, Name: "Savings Account", Amount: 8700},
		{Key: "card-a1", RawID: "a1", Type: TypeCard, Name: "Visa Platinum", Amount: 5000},
		{Key: "card-b2", RawID: "b2", Type: TypeCard, Name: "Mastercard Gold", Amount: 3000},
	}, items)
}

func TestMergedItems_Empty(t *testing.T) {
	items := MergedItems(nil, nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
