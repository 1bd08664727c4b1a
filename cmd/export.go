package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"

	"stockfolio"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export holdings to a spreadsheet" }
func (*exportCmd) Usage() string {
	return `sfo export [-o <file>]

  Exports every position with its derived figures (cost basis, market
  value, unrealized P/L, return) to a spreadsheet. The format follows the
  output extension: .xlsx or .csv. Read-only on the portfolio file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "portfolio.xlsx", "Output file, .xlsx or .csv")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}

	switch ext := strings.ToLower(filepath.Ext(c.output)); ext {
	case ".xlsx":
		err = exportXLSX(c.output, p)
	case ".csv":
		err = exportCSV(c.output, p)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported export format %q, use .xlsx or .csv.\n", ext)
		return subcommands.ExitUsageError
	}
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Exported %d positions to %s.\n", p.Len(), c.output)
	return subcommands.ExitSuccess
}

var exportHeader = []string{
	"Symbol", "Quantity", "Avg Buy Price", "Current Price",
	"Cost Basis", "Market Value", "Unrealized P/L", "Return %",
}

func exportXLSX(path string, p *stockfolio.Portfolio) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Portfolio"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("cannot create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("cannot drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("cannot create header style: %w", err)
	}
	for i, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, title); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "H1", headerStyle); err != nil {
		return err
	}

	row := 1
	for pos := range p.Positions() {
		row++
		_ = f.SetCellStr(sheet, fmt.Sprintf("A%d", row), pos.Symbol)
		_ = f.SetCellInt(sheet, fmt.Sprintf("B%d", row), pos.Quantity)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), pos.AvgBuyPrice.Decimal().InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), pos.CurrentPrice.Decimal().InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), pos.Cost().Decimal().InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), pos.MarketValue().Decimal().InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), pos.UnrealizedPL().Decimal().InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", row), float64(pos.ReturnPct()))
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}

func exportCSV(path string, p *stockfolio.Portfolio) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	for pos := range p.Positions() {
		record := []string{
			pos.Symbol,
			strconv.FormatInt(pos.Quantity, 10),
			pos.AvgBuyPrice.String(),
			pos.CurrentPrice.String(),
			pos.Cost().String(),
			pos.MarketValue().String(),
			pos.UnrealizedPL().String(),
			fmt.Sprintf("%.2f", float64(pos.ReturnPct())),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("cannot write %q: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return f.Close()
}
