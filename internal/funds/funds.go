package funds

import (
	"fmt"

	"exchange_calculator/internal/models"
)

const (
	TypeAccount = "account"
	TypeCard    = "card"
)

var initialAccounts = []models.Account{
	{ID: 1, Name: "Checking Account", Balance: 1200.5},
	{ID: 2, Name: "Savings Account", Balance: 8700.0},
}

var initialCards = []models.Card{
	{ID: "a1", Name: "Visa Platinum", Limit: 5000},
	{ID: "b2", Name: "Mastercard Gold", Limit: 3000},
}

// Демонстрационные счета клиента (копия)
func Accounts() []models.Account {
	accounts := make([]models.Account, len(initialAccounts))
	copy(accounts, initialAccounts)
	return accounts
}

// Демонстрационные карты клиента (копия)
func Cards() []models.Card {
	cards := make([]models.Card, len(initialCards))
	copy(cards, initialCards)
	return cards
}

// Счета и карты одним списком: сначала счета, затем карты
func MergedItems(accounts []models.Account, cards []models.Card) []models.SourceItem {
	items := make([]models.SourceItem, 0, len(accounts)+len(cards))
	for _, acc := range accounts {
		items = append(items, models.SourceItem{
			Key:    fmt.Sprintf("%s-%d", TypeAccount, acc.ID),
			RawID:  acc.ID,
			Type:   TypeAccount,
			Name:   acc.Name,
			Amount: acc.Balance,
		})
	}
	for _, card := range cards {
		items = append(items, models.SourceItem{
			Key:    fmt.Sprintf("%s-%s", TypeCard, card.ID),
			RawID:  card.ID,
			Type:   TypeCard,
			Name:   card.Name,
			Amount: card.Limit,
		})
	}
	return items
}
