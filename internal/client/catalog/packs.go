package catalog

// CoinPack is one purchasable bundle on the parent coin-purchase page.
// Prices are in whole rupees; there is no payment integration behind them.
type CoinPack struct {
	ID      string
	Coins   int
	PriceRs int
	Label   string
	Popular bool
}

var coinPacks = []CoinPack{
	{ID: "1", Coins: 100, PriceRs: 99, Label: "Starter Pack"},
	{ID: "2", Coins: 220, PriceRs: 199, Label: "Best Value", Popular: true},
	{ID: "3", Coins: 350, PriceRs: 299, Label: "Maximum Savings"},
}

// CoinPacks returns the purchase table.
func CoinPacks() []CoinPack {
	return append([]CoinPack(nil), coinPacks...)
}

// PackByID looks up a bundle by its identifier.
func PackByID(id string) (CoinPack, bool) {
	for _, p := range coinPacks {
		if p.ID == id {
			return p, true
		}
	}
	return CoinPack{}, false
}
