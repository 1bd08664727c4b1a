package stockfolio

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

// checkPosition compares one holding field by field.
func checkPosition(t *testing.T, got Position, symbol string, qty int64, avg, cur Money) {
	t.Helper()
	if got.Symbol != symbol {
		t.Errorf("Symbol = %q, want %q", got.Symbol, symbol)
	}
	if got.Quantity != qty {
		t.Errorf("Quantity = %d, want %d", got.Quantity, qty)
	}
	if !got.AvgBuyPrice.Equal(avg) {
		t.Errorf("AvgBuyPrice = %s, want %s", got.AvgBuyPrice, avg)
	}
	if !got.CurrentPrice.Equal(cur) {
		t.Errorf("CurrentPrice = %s, want %s", got.CurrentPrice, cur)
	}
}

// symbols returns the store order, for ordering assertions.
func symbols(p *Portfolio) []string {
	var out []string
	for pos := range p.Positions() {
		out = append(out, pos.Symbol)
	}
	return out
}

// TestPositionLifecycle walks a single symbol through its whole life:
// open, average up, partial sell, final sell.
func TestPositionLifecycle(t *testing.T) {
	p := New()

	pos, err := p.Buy("AAPL", 10, M(100))
	if err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	checkPosition(t, pos, "AAPL", 10, M(100), M(100))

	// Second buy at a higher price moves the average to the
	// quantity-weighted mean and marks the market at the trade price.
	pos, err = p.Buy("aapl", 10, M(200))
	if err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	checkPosition(t, pos, "AAPL", 20, M(150), M(200))

	// Partial sell: quantity drops, average stays, market marks at 180.
	res, err := p.Sell("AAPL", 15, M(180))
	if err != nil {
		t.Fatalf("Sell() error = %v", err)
	}
	if res.Closed {
		t.Error("Sell() Closed = true, want false for a partial sale")
	}
	checkPosition(t, res.Position, "AAPL", 5, M(150), M(180))

	// Selling the remainder closes and removes the position.
	res, err = p.Sell("AAPL", 5, M(190))
	if err != nil {
		t.Fatalf("Sell() error = %v", err)
	}
	if !res.Closed {
		t.Error("Sell() Closed = false, want true for a full sale")
	}
	if p.Len() != 0 {
		t.Errorf("Len() after closing the only position = %d, want 0", p.Len())
	}
	if _, held := p.Find("AAPL"); held {
		t.Error("Find(AAPL) after full sale: held = true, want false")
	}
}

// TestBuyWeightedAverage checks the average over a longer sequence of
// buys, including one that does not divide evenly.
func TestBuyWeightedAverage(t *testing.T) {
	p := New()
	buys := []struct {
		qty   int64
		price Money
	}{
		{qty: 3, price: M(10)},
		{qty: 1, price: M(50)},
		{qty: 2, price: M(20.5)},
	}
	var wantCost Money
	var wantQty int64
	for _, b := range buys {
		if _, err := p.Buy("VTI", b.qty, b.price); err != nil {
			t.Fatalf("Buy(%d@%s) error = %v", b.qty, b.price, err)
		}
		wantCost = wantCost.Add(b.price.MulQty(b.qty))
		wantQty += b.qty
	}

	pos, held := p.Find("VTI")
	if !held {
		t.Fatal("Find(VTI): held = false, want true")
	}
	if pos.Quantity != wantQty {
		t.Errorf("Quantity = %d, want %d", pos.Quantity, wantQty)
	}
	// 121/6 does not terminate, so the mean is compared against the same
	// division the operation performs, not a hand-written literal.
	if want := wantCost.DivQty(wantQty); !pos.AvgBuyPrice.Equal(want) {
		t.Errorf("AvgBuyPrice = %s, want %s", pos.AvgBuyPrice, want)
	}
}

func TestBuyValidation(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		qty     int64
		price   Money
		wantErr error
	}{
		{"empty symbol", "", 10, M(100), ErrValidation},
		{"zero quantity", "AAPL", 0, M(100), ErrValidation},
		{"negative quantity", "AAPL", -1, M(100), ErrValidation},
		{"zero price", "AAPL", 10, M(0), ErrValidation},
		{"negative price", "AAPL", 10, M(-5), ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			if _, err := p.Buy("KO", 1, M(60)); err != nil {
				t.Fatalf("Buy() error = %v", err)
			}
			_, err := p.Buy(tt.symbol, tt.qty, tt.price)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Buy() error = %v, want %v", err, tt.wantErr)
			}
			// A rejected buy leaves the store as it was.
			if p.Len() != 1 {
				t.Errorf("Len() after rejected buy = %d, want 1", p.Len())
			}
			pos, _ := p.Find("KO")
			checkPosition(t, pos, "KO", 1, M(60), M(60))
		})
	}
}

func TestSellValidation(t *testing.T) {
	newStore := func(t *testing.T) *Portfolio {
		t.Helper()
		p := New()
		if _, err := p.Buy("AAPL", 10, M(100)); err != nil {
			t.Fatalf("Buy() error = %v", err)
		}
		return p
	}

	tests := []struct {
		name    string
		symbol  string
		qty     int64
		price   Money
		wantErr error
	}{
		{"unknown symbol", "GOOG", 1, M(100), ErrNotFound},
		{"zero quantity", "AAPL", 0, M(100), ErrValidation},
		{"negative price", "AAPL", 5, M(-1), ErrValidation},
		{"more than held", "AAPL", 11, M(100), ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newStore(t)
			_, err := p.Sell(tt.symbol, tt.qty, tt.price)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Sell() error = %v, want %v", err, tt.wantErr)
			}
			pos, _ := p.Find("AAPL")
			checkPosition(t, pos, "AAPL", 10, M(100), M(100))
		})
	}
}

func TestSellKeepsStoreOrder(t *testing.T) {
	p := New()
	for i, sym := range []string{"AAPL", "GOOG", "MSFT", "TSLA"} {
		if _, err := p.Buy(sym, 1, M(10*(i+1))); err != nil {
			t.Fatalf("Buy(%s) error = %v", sym, err)
		}
	}

	if _, err := p.Sell("GOOG", 1, M(25)); err != nil {
		t.Fatalf("Sell() error = %v", err)
	}

	want := []string{"AAPL", "MSFT", "TSLA"}
	if got := symbols(p); !slices.Equal(got, want) {
		t.Errorf("store order after removal = %v, want %v", got, want)
	}
}

func TestSetPrice(t *testing.T) {
	p := New()
	if _, err := p.Buy("AAPL", 10, M(100)); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}

	pos, err := p.SetPrice("aapl", M(123.45))
	if err != nil {
		t.Fatalf("SetPrice() error = %v", err)
	}
	checkPosition(t, pos, "AAPL", 10, M(100), M(123.45))

	if _, err := p.SetPrice("GOOG", M(100)); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetPrice(GOOG) error = %v, want %v", err, ErrNotFound)
	}
	if _, err := p.SetPrice("AAPL", M(0)); !errors.Is(err, ErrValidation) {
		t.Errorf("SetPrice(AAPL, 0) error = %v, want %v", err, ErrValidation)
	}
}

func TestCapacity(t *testing.T) {
	p := NewWithCapacity(3)
	for i := range 3 {
		if _, err := p.Buy(fmt.Sprintf("SYM%d", i), 1, M(10)); err != nil {
			t.Fatalf("Buy() error = %v", err)
		}
	}

	// A brand-new symbol bounces off the ceiling with no partial insert.
	_, err := p.Buy("OVER", 1, M(10))
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("Buy() over capacity error = %v, want %v", err, ErrCapacity)
	}
	if p.Len() != 3 {
		t.Errorf("Len() after rejected buy = %d, want 3", p.Len())
	}
	if _, held := p.Find("OVER"); held {
		t.Error("Find(OVER): held = true, want false")
	}

	// Adding to a held symbol is not an insert and still works at the cap.
	pos, err := p.Buy("SYM1", 1, M(20))
	if err != nil {
		t.Fatalf("Buy() on held symbol at capacity error = %v", err)
	}
	checkPosition(t, pos, "SYM1", 2, M(15), M(20))
}

func TestNewWithCapacityFallsBack(t *testing.T) {
	for _, capacity := range []int{0, -7} {
		if got := NewWithCapacity(capacity).Capacity(); got != DefaultCapacity {
			t.Errorf("NewWithCapacity(%d).Capacity() = %d, want %d", capacity, got, DefaultCapacity)
		}
	}
}

func TestFindNormalizes(t *testing.T) {
	p := New()
	if _, err := p.Buy("AAPL", 1, M(1)); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	if _, held := p.Find("  aapl "); !held {
		t.Error("Find(\"  aapl \"): held = false, want true")
	}
	if _, held := p.Find("!!"); held {
		t.Error("Find(\"!!\"): held = true, want false")
	}
}
