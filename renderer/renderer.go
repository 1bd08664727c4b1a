// Package renderer turns portfolio state into markdown documents. It owns
// all presentation decisions (currency symbols, rounding for display,
// column layout) so the core package can stay purely about exact values.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"stockfolio"
)

// HoldingsMarkdown renders the position table, one row per holding in
// store order.
func HoldingsMarkdown(p *stockfolio.Portfolio, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Holdings (%d of %d)", p.Len(), p.Capacity()))

	if p.Len() == 0 {
		doc.PlainText("Portfolio is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Symbol", "Quantity", "Avg Buy", "Current", "Market Value", "Return"},
	}
	for pos := range p.Positions() {
		table.Rows = append(table.Rows, []string{
			pos.Symbol,
			strconv.FormatInt(pos.Quantity, 10),
			fmtMoney(pos.AvgBuyPrice, currency),
			fmtMoney(pos.CurrentPrice, currency),
			fmtMoney(pos.MarketValue(), currency),
			pos.ReturnPct().SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// MetricsMarkdown renders the portfolio-level figures.
func MetricsMarkdown(m stockfolio.Metrics, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Metrics")
	doc.PlainText(fmt.Sprintf("Across %d positions:", m.Positions))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Cost Basis", fmtMoney(m.Cost, currency)},
			{"Market Value", fmtMoney(m.MarketValue, currency)},
			{"Unrealized P/L", signedMoney(m.UnrealizedPL, currency)},
			{"Return", m.ReturnPct.SignedString()},
		},
	})

	return doc.String()
}

// BulkReportMarkdown renders the outcome of a bulk price update, one row
// per symbol, then the updated/skipped tally.
func BulkReportMarkdown(report stockfolio.BulkReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Price Update")

	if len(report.Entries) == 0 {
		doc.PlainText("Portfolio is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Symbol", "Outcome", "Price", "Note"},
	}
	for _, entry := range report.Entries {
		table.Rows = append(table.Rows, []string{
			entry.Symbol,
			entry.Status.String(),
			fmtMoney(entry.Price, currency),
			entry.Reason,
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Updated %d, skipped %d.", report.Updated(), report.Skipped()))

	return doc.String()
}
