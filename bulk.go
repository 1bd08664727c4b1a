package stockfolio

// PriceSource supplies one raw price string per prompted symbol during a
// bulk update. ok must be false only when the source is exhausted (for
// interactive use, end of input); a blank answer is ("", true).
type PriceSource func(symbol string) (raw string, ok bool)

// BulkStatus classifies the outcome for one symbol of a bulk update.
type BulkStatus int

const (
	// BulkUpdated means a valid price was supplied and stored.
	BulkUpdated BulkStatus = iota
	// BulkKept means the answer was blank and the old price stands.
	BulkKept
	// BulkRejected means the answer did not parse as a positive price;
	// the old price stands.
	BulkRejected
	// BulkUnread means the source ran out before this symbol was asked.
	BulkUnread
)

// String returns a short label for reports.
func (s BulkStatus) String() string {
	switch s {
	case BulkUpdated:
		return "updated"
	case BulkKept:
		return "kept"
	case BulkRejected:
		return "rejected"
	case BulkUnread:
		return "unread"
	}
	return "unknown"
}

// BulkEntry records what happened to one symbol during a bulk update.
type BulkEntry struct {
	Symbol string
	Status BulkStatus
	// Price is the stored price after the pass, whatever the status.
	Price Money
	// Reason explains a rejection, empty otherwise.
	Reason string
}

// BulkReport is the per-symbol outcome of a full bulk update pass.
type BulkReport struct {
	Entries []BulkEntry
}

// Updated counts the symbols whose price changed.
func (r BulkReport) Updated() int { return r.count(BulkUpdated) }

// Skipped counts the symbols left at their old price, for any reason.
func (r BulkReport) Skipped() int { return len(r.Entries) - r.count(BulkUpdated) }

func (r BulkReport) count(status BulkStatus) int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == status {
			n++
		}
	}
	return n
}

// UpdateAllPrices walks every held position in store order and asks
// source for a new price. A blank answer keeps the old price; an answer
// that does not parse as a positive price is rejected and the old price
// stands. One bad answer never aborts the pass: every symbol gets an
// entry in the report, and when the source is exhausted the remaining
// symbols are reported as unread with their old prices.
func (p *Portfolio) UpdateAllPrices(source PriceSource) BulkReport {
	report := BulkReport{Entries: make([]BulkEntry, 0, len(p.positions))}
	exhausted := false
	for i := range p.positions {
		pos := &p.positions[i]
		entry := BulkEntry{Symbol: pos.Symbol, Price: pos.CurrentPrice}
		if exhausted {
			entry.Status = BulkUnread
			report.Entries = append(report.Entries, entry)
			continue
		}
		raw, ok := source(pos.Symbol)
		switch {
		case !ok:
			exhausted = true
			entry.Status = BulkUnread
		case raw == "":
			entry.Status = BulkKept
		default:
			price, err := ParsePrice(raw)
			if err != nil {
				entry.Status = BulkRejected
				entry.Reason = err.Error()
			} else if !price.IsPositive() {
				entry.Status = BulkRejected
				entry.Reason = "price must be greater than 0"
			} else {
				pos.CurrentPrice = price
				entry.Status = BulkUpdated
				entry.Price = price
			}
		}
		report.Entries = append(report.Entries, entry)
	}
	return report
}
