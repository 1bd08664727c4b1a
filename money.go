package stockfolio

import "github.com/shopspring/decimal"

// Money is an exact monetary amount. The tracker reports in a single
// currency, so Money carries the value only; display formatting (symbol,
// thousands separators) is the renderer's business.
//
// The zero value is an exact zero and ready to use.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from any of the usual numeric types.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float32:
		return Money{value: decimal.NewFromFloat32(v)}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Money{value: decimal.NewFromInt32(v)}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// Decimal returns the underlying exact value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// String returns the full-precision decimal representation. It is what the
// persistence format stores, and it round-trips exactly through ParsePrice.
func (m Money) String() string { return m.value.String() }

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MulQty scales a per-share amount by a share count.
func (m Money) MulQty(q int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(q))}
}

// DivQty divides a total amount by a share count, e.g. to recover a
// per-share average.
func (m Money) DivQty(q int64) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(q))}
}

// PctOf expresses m as a percentage of base. Callers guard the zero base;
// the portfolio-wide convention is that a ratio over a zero base is 0.
func (m Money) PctOf(base Money) Percent {
	return Percent(m.value.Div(base.value).InexactFloat64() * 100)
}
