package stockfolio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// This file contains code to persist a portfolio as a plain text file, one
// position per line, human-readable and diff-friendly:
//
//	SYMBOL QUANTITY AVG_BUY_PRICE CURRENT_PRICE
//
// Prices are written at full decimal precision so that a save/load cycle
// reproduces the store exactly.
//
// Decoding is tolerant: a malformed line is counted and skipped, never
// fatal, so one corrupt record does not take the rest of the file with it.
// Encoding is canonical: whatever shape the file had, the next save writes
// clean records.

// DecodeStats reports what a decode pass saw, for the caller to surface.
type DecodeStats struct {
	// Loaded is the number of positions added to the store.
	Loaded int
	// Malformed is the number of non-blank lines that did not yield a
	// valid position and were skipped.
	Malformed int
	// Overflow lists symbols from valid records that did not fit under
	// the capacity ceiling, in file order.
	Overflow []string
	// NoSavedState is true when the file did not exist: a first run, not
	// an error.
	NoSavedState bool
}

// EncodePortfolio writes every position in store order, one record per
// line.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	for _, pos := range p.positions {
		_, err := fmt.Fprintf(w, "%s %d %s %s\n",
			pos.Symbol, pos.Quantity, pos.AvgBuyPrice, pos.CurrentPrice)
		if err != nil {
			return fmt.Errorf("persist error: cannot write record for %s: %w", pos.Symbol, err)
		}
	}
	return nil
}

// parseRecord parses one non-blank line into a position. Any deviation
// from the format is an error; the decoder turns it into a skip.
func parseRecord(line string) (Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Position{}, fmt.Errorf("want 4 fields, got %d", len(fields))
	}
	sym, err := NormalizeSymbol(fields[0])
	if err != nil {
		return Position{}, err
	}
	qty, err := ParseQuantity(fields[1])
	if err != nil {
		return Position{}, err
	}
	if qty <= 0 {
		return Position{}, fmt.Errorf("quantity must be greater than 0, got %d", qty)
	}
	avg, err := ParsePrice(fields[2])
	if err != nil {
		return Position{}, err
	}
	if !avg.IsPositive() {
		return Position{}, fmt.Errorf("average buy price must be greater than 0, got %s", avg)
	}
	cur, err := ParsePrice(fields[3])
	if err != nil {
		return Position{}, err
	}
	if cur.IsNegative() {
		return Position{}, fmt.Errorf("current price must not be negative, got %s", cur)
	}
	return Position{Symbol: sym, Quantity: qty, AvgBuyPrice: avg, CurrentPrice: cur}, nil
}

// DecodePortfolio reads records from r into a fresh portfolio with the
// given capacity. Blank lines are ignored. A line that does not parse, or
// that repeats a symbol already read, counts as malformed and is skipped.
// A valid record over the capacity ceiling is reported in the stats and
// dropped. Only a read failure aborts the pass.
func DecodePortfolio(r io.Reader, capacity int) (*Portfolio, DecodeStats, error) {
	p := NewWithCapacity(capacity)
	var stats DecodeStats

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		pos, err := parseRecord(line)
		if err != nil {
			stats.Malformed++
			continue
		}
		if p.index(pos.Symbol) >= 0 {
			stats.Malformed++
			continue
		}
		if err := p.insert(pos); err != nil {
			stats.Overflow = append(stats.Overflow, pos.Symbol)
			continue
		}
		stats.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("load error: %w: %w", ErrIO, err)
	}
	return p, stats, nil
}

// SaveFile persists the portfolio to path, replacing whatever was there.
func SaveFile(path string, p *Portfolio) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist error: %w: cannot create %q: %w", ErrIO, path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := EncodePortfolio(w, p); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("persist error: %w: cannot write %q: %w", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("persist error: %w: cannot close %q: %w", ErrIO, path, err)
	}
	return nil
}

// LoadFile reads the portfolio saved at path. A missing file is a first
// run: the result is an empty portfolio with NoSavedState set, not an
// error. Whatever was in the store before is gone either way, because the
// decode always starts from a fresh portfolio.
func LoadFile(path string, capacity int) (*Portfolio, DecodeStats, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewWithCapacity(capacity), DecodeStats{NoSavedState: true}, nil
		}
		return nil, DecodeStats{}, fmt.Errorf("load error: %w: cannot open %q: %w", ErrIO, path, err)
	}
	defer f.Close()
	return DecodePortfolio(f, capacity)
}
