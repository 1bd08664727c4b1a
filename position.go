package stockfolio

// Position is a single holding: a normalized symbol plus the share count
// and the two prices that describe it. Positions are plain values; the
// Portfolio owns the authoritative copies.
type Position struct {
	// Symbol is the uppercase ticker, unique within a portfolio.
	Symbol string
	// Quantity is the held share count, always positive for a position
	// present in a portfolio.
	Quantity int64
	// AvgBuyPrice is the volume-weighted average cost per share across
	// all buys of this symbol.
	AvgBuyPrice Money
	// CurrentPrice is the last known market price: the buy price when the
	// position was opened, then whatever the latest buy, sell or explicit
	// price update marked.
	CurrentPrice Money
}

// Cost returns the position's total cost basis.
func (p Position) Cost() Money { return p.AvgBuyPrice.MulQty(p.Quantity) }

// MarketValue returns the position's value at the current price.
func (p Position) MarketValue() Money { return p.CurrentPrice.MulQty(p.Quantity) }

// UnrealizedPL returns market value minus cost basis.
func (p Position) UnrealizedPL() Money { return p.MarketValue().Sub(p.Cost()) }

// ReturnPct returns the unrealized profit or loss as a percentage of the
// cost basis, defined as exactly 0 when the cost basis is 0.
func (p Position) ReturnPct() Percent {
	cost := p.Cost()
	if cost.IsZero() {
		return 0
	}
	return p.UnrealizedPL().PctOf(cost)
}
