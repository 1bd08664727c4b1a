package stockfolio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxSymbolLen bounds the visible length of a ticker symbol, both on
// interactive input and in the persistence file.
const MaxSymbolLen = 15

// NormalizeSymbol trims and uppercases a raw symbol, returning a new
// string; the caller's value is never mutated. The result must be
// non-empty, at most MaxSymbolLen characters, and drawn from A-Z, 0-9,
// '.' and '-'. Anything looser (spaces in particular) could not survive a
// round-trip through the whitespace-separated portfolio file.
func NormalizeSymbol(raw string) (string, error) {
	sym := strings.ToUpper(strings.TrimSpace(raw))
	if sym == "" {
		return "", invalidf("no symbol entered")
	}
	if len(sym) > MaxSymbolLen {
		return "", invalidf("symbol %q is longer than %d characters", sym, MaxSymbolLen)
	}
	for _, r := range sym {
		if !isSymbolRune(r) {
			return "", invalidf("symbol %q contains %q", sym, r)
		}
	}
	return sym, nil
}

func isSymbolRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
		return true
	}
	return false
}

// ParseQuantity parses a share count. The entire trimmed string must be a
// base-10 integer: partial matches such as "12abc" are rejected, unlike a
// prefix-scanning parse.
func ParseQuantity(s string) (int64, error) {
	q, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, invalidf("quantity %q is not a whole number", strings.TrimSpace(s))
	}
	return q, nil
}

// ParsePrice parses a price. The entire trimmed string must be a base-10
// decimal; decimal.NewFromString already enforces the full-string rule.
func ParsePrice(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, invalidf("price %q is not a number", strings.TrimSpace(s))
	}
	return Money{value: d}, nil
}

// LineReader delivers interactive input one line at a time. It exists so
// operations can tell "the user pressed enter on an empty line" apart from
// "the input is exhausted": the two differ in meaning everywhere they are
// consumed.
type LineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader wraps r, typically os.Stdin.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line with its trailing newline stripped.
// ok is false once the input is exhausted; an empty line returns ("", true).
func (l *LineReader) ReadLine() (line string, ok bool) {
	if !l.scanner.Scan() {
		return "", false
	}
	return l.scanner.Text(), true
}
