package stockfolio

import (
	"strings"
	"testing"
)

// sourceFromLines builds a PriceSource that replays canned answers, the
// way the interactive prompt feeds one line per symbol.
func sourceFromLines(input string) PriceSource {
	lr := NewLineReader(strings.NewReader(input))
	return func(string) (string, bool) { return lr.ReadLine() }
}

// twoPositions returns a store holding AAPL then GOOG, in that order.
func twoPositions(t *testing.T) *Portfolio {
	t.Helper()
	p := New()
	if _, err := p.Buy("AAPL", 10, M(100)); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	if _, err := p.Buy("GOOG", 5, M(200)); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	return p
}

// TestUpdateAllPricesBlankKeeps replays the classic session: press enter
// on the first symbol, type a price for the second. The pass completes,
// the first price stands, the second is stored.
func TestUpdateAllPricesBlankKeeps(t *testing.T) {
	p := twoPositions(t)

	report := p.UpdateAllPrices(sourceFromLines("\n250.5\n"))

	if len(report.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(report.Entries))
	}
	if got := report.Entries[0]; got.Status != BulkKept || !got.Price.Equal(M(100)) {
		t.Errorf("first entry = {%s %s}, want kept at 100", got.Status, got.Price)
	}
	if got := report.Entries[1]; got.Status != BulkUpdated || !got.Price.Equal(M(250.5)) {
		t.Errorf("second entry = {%s %s}, want updated to 250.5", got.Status, got.Price)
	}
	if report.Updated() != 1 || report.Skipped() != 1 {
		t.Errorf("Updated()/Skipped() = %d/%d, want 1/1", report.Updated(), report.Skipped())
	}

	aapl, _ := p.Find("AAPL")
	if !aapl.CurrentPrice.Equal(M(100)) {
		t.Errorf("AAPL CurrentPrice = %s, want 100 (unchanged)", aapl.CurrentPrice)
	}
	goog, _ := p.Find("GOOG")
	if !goog.CurrentPrice.Equal(M(250.5)) {
		t.Errorf("GOOG CurrentPrice = %s, want 250.5", goog.CurrentPrice)
	}
}

// TestUpdateAllPricesBadInput checks that one bad answer is rejected with
// a reason and never aborts the rest of the pass.
func TestUpdateAllPricesBadInput(t *testing.T) {
	p := twoPositions(t)

	report := p.UpdateAllPrices(sourceFromLines("oops\n300\n"))

	if len(report.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(report.Entries))
	}
	first := report.Entries[0]
	if first.Status != BulkRejected {
		t.Errorf("first entry status = %s, want rejected", first.Status)
	}
	if first.Reason == "" {
		t.Error("first entry has no rejection reason")
	}
	if !first.Price.Equal(M(100)) {
		t.Errorf("first entry price = %s, want the old 100", first.Price)
	}
	if got := report.Entries[1]; got.Status != BulkUpdated || !got.Price.Equal(M(300)) {
		t.Errorf("second entry = {%s %s}, want updated to 300", got.Status, got.Price)
	}

	aapl, _ := p.Find("AAPL")
	if !aapl.CurrentPrice.Equal(M(100)) {
		t.Errorf("AAPL CurrentPrice = %s, want 100 (unchanged)", aapl.CurrentPrice)
	}
}

// TestUpdateAllPricesNonPositive: "0" and negative prices parse fine but
// are still rejected, the store keeps the old price.
func TestUpdateAllPricesNonPositive(t *testing.T) {
	p := twoPositions(t)

	report := p.UpdateAllPrices(sourceFromLines("0\n-12\n"))

	for i, entry := range report.Entries {
		if entry.Status != BulkRejected {
			t.Errorf("entry %d status = %s, want rejected", i, entry.Status)
		}
	}
	if report.Updated() != 0 {
		t.Errorf("Updated() = %d, want 0", report.Updated())
	}
}

// TestUpdateAllPricesExhausted runs out of input after the first symbol.
// The pass still covers every position: the rest are reported unread.
func TestUpdateAllPricesExhausted(t *testing.T) {
	p := twoPositions(t)
	if _, err := p.Buy("MSFT", 1, M(50)); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}

	report := p.UpdateAllPrices(sourceFromLines("111\n"))

	if len(report.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(report.Entries))
	}
	if got := report.Entries[0]; got.Status != BulkUpdated || !got.Price.Equal(M(111)) {
		t.Errorf("first entry = {%s %s}, want updated to 111", got.Status, got.Price)
	}
	for _, entry := range report.Entries[1:] {
		if entry.Status != BulkUnread {
			t.Errorf("entry %s status = %s, want unread", entry.Symbol, entry.Status)
		}
	}

	goog, _ := p.Find("GOOG")
	if !goog.CurrentPrice.Equal(M(200)) {
		t.Errorf("GOOG CurrentPrice = %s, want 200 (unchanged)", goog.CurrentPrice)
	}
}

func TestUpdateAllPricesEmptyStore(t *testing.T) {
	p := New()
	report := p.UpdateAllPrices(func(string) (string, bool) {
		t.Fatal("source called on an empty store")
		return "", false
	})
	if len(report.Entries) != 0 {
		t.Errorf("len(Entries) = %d, want 0", len(report.Entries))
	}
}
