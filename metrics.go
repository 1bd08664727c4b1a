package stockfolio

// Metrics aggregates the whole portfolio at last known prices.
type Metrics struct {
	// Positions is the number of holdings the figures cover.
	Positions int
	// Cost is the total cost basis: sum of quantity times average buy
	// price over all positions.
	Cost Money
	// MarketValue is the total worth at current prices.
	MarketValue Money
	// UnrealizedPL is MarketValue minus Cost.
	UnrealizedPL Money
	// ReturnPct is UnrealizedPL over Cost. Zero when Cost is zero, so an
	// empty portfolio reports flat rather than dividing by zero.
	ReturnPct Percent
}

// Metrics computes portfolio-level figures. An empty portfolio yields
// all zeros.
func (p *Portfolio) Metrics() Metrics {
	m := Metrics{Positions: len(p.positions)}
	for _, pos := range p.positions {
		m.Cost = m.Cost.Add(pos.Cost())
		m.MarketValue = m.MarketValue.Add(pos.MarketValue())
	}
	m.UnrealizedPL = m.MarketValue.Sub(m.Cost)
	if !m.Cost.IsZero() {
		m.ReturnPct = m.UnrealizedPL.PctOf(m.Cost)
	}
	return m
}
