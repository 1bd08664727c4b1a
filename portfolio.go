package stockfolio

import (
	"fmt"
	"iter"
	"slices"
)

// DefaultCapacity is the ceiling on held positions unless the caller
// picks another one. The bound is a feature: the tracker reports a full
// book instead of growing without limit.
const DefaultCapacity = 100

// Portfolio is an ordered collection of positions, at most one per
// symbol. Positions keep the order in which their symbol was first
// bought; removing one collapses the sequence without reordering the
// survivors.
//
// A Portfolio belongs to a single session and is mutated synchronously:
// every operation either applies fully or leaves the store untouched.
type Portfolio struct {
	positions []Position
	capacity  int
}

// New returns an empty portfolio with DefaultCapacity.
func New() *Portfolio { return NewWithCapacity(DefaultCapacity) }

// NewWithCapacity returns an empty portfolio that holds at most capacity
// positions. Non-positive values fall back to DefaultCapacity.
func NewWithCapacity(capacity int) *Portfolio {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Portfolio{capacity: capacity}
}

// Len returns the number of positions currently held.
func (p *Portfolio) Len() int { return len(p.positions) }

// Capacity returns the ceiling on the number of positions.
func (p *Portfolio) Capacity() int { return p.capacity }

// Positions iterates over the held positions in store order.
func (p *Portfolio) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, pos := range p.positions {
			if !yield(pos) {
				return
			}
		}
	}
}

// Find returns the position for symbol (normalized first), if held.
func (p *Portfolio) Find(symbol string) (Position, bool) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return Position{}, false
	}
	if i := p.index(sym); i >= 0 {
		return p.positions[i], true
	}
	return Position{}, false
}

// index locates a normalized symbol with a linear scan. The store is
// small and bounded, so no index structure is kept next to the slice.
func (p *Portfolio) index(sym string) int {
	return slices.IndexFunc(p.positions, func(pos Position) bool {
		return pos.Symbol == sym
	})
}

// removeAt drops the position at i, shifting later entries left by one.
func (p *Portfolio) removeAt(i int) {
	p.positions = slices.Delete(p.positions, i, i+1)
}

// insert appends a brand-new position, enforcing the capacity ceiling.
func (p *Portfolio) insert(pos Position) error {
	if len(p.positions) >= p.capacity {
		return fmt.Errorf("%w: cannot add %s, already holding %d positions",
			ErrCapacity, pos.Symbol, len(p.positions))
	}
	p.positions = append(p.positions, pos)
	return nil
}

// Buy opens or adds to a position and returns the resulting state.
//
// A first buy creates the position with both prices set to the trade
// price. A subsequent buy recomputes the average buy price as the
// quantity-weighted mean of all buys and marks the current price at the
// trade price, the way a live quote would at purchase time.
func (p *Portfolio) Buy(symbol string, qty int64, price Money) (Position, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return Position{}, err
	}
	if qty <= 0 {
		return Position{}, invalidf("quantity must be greater than 0, got %d", qty)
	}
	if !price.IsPositive() {
		return Position{}, invalidf("buy price must be greater than 0, got %s", price)
	}

	if i := p.index(sym); i >= 0 {
		pos := p.positions[i]
		totalCost := pos.Cost().Add(price.MulQty(qty))
		pos.Quantity += qty
		pos.AvgBuyPrice = totalCost.DivQty(pos.Quantity)
		pos.CurrentPrice = price
		p.positions[i] = pos
		return pos, nil
	}

	pos := Position{Symbol: sym, Quantity: qty, AvgBuyPrice: price, CurrentPrice: price}
	if err := p.insert(pos); err != nil {
		return Position{}, err
	}
	return pos, nil
}

// SellResult describes a completed sale.
type SellResult struct {
	// Position is the holding after the sale. When Closed it carries a
	// zero quantity and the final prices, for reporting.
	Position Position
	// Closed is true when the full held quantity was sold and the
	// position was removed from the store.
	Closed bool
}

// Sell records a sale against an existing position. The executed trade
// price becomes the new current price. Selling the entire held quantity
// removes the position, keeping the remaining store order intact.
func (p *Portfolio) Sell(symbol string, qty int64, price Money) (SellResult, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return SellResult{}, err
	}
	if qty <= 0 {
		return SellResult{}, invalidf("quantity must be greater than 0, got %d", qty)
	}
	if price.IsNegative() {
		return SellResult{}, invalidf("sell price must not be negative, got %s", price)
	}

	i := p.index(sym)
	if i < 0 {
		return SellResult{}, fmt.Errorf("%w: %s", ErrNotFound, sym)
	}
	pos := p.positions[i]
	if qty > pos.Quantity {
		return SellResult{}, invalidf("cannot sell %d shares of %s, only %d held", qty, sym, pos.Quantity)
	}

	pos.Quantity -= qty
	pos.CurrentPrice = price
	if pos.Quantity == 0 {
		p.removeAt(i)
		return SellResult{Position: pos, Closed: true}, nil
	}
	p.positions[i] = pos
	return SellResult{Position: pos}, nil
}

// SetPrice overwrites the last known market price of a held symbol. Only
// the current price changes; quantity and average buy price are left
// alone.
func (p *Portfolio) SetPrice(symbol string, price Money) (Position, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return Position{}, err
	}
	if !price.IsPositive() {
		return Position{}, invalidf("price must be greater than 0, got %s", price)
	}
	i := p.index(sym)
	if i < 0 {
		return Position{}, fmt.Errorf("%w: %s", ErrNotFound, sym)
	}
	p.positions[i].CurrentPrice = price
	return p.positions[i], nil
}
