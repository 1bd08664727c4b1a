package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"stockfolio"
)

// fmtMoney renders an exact amount in the display currency, with the
// symbol and separators go-money knows for it. The exact value is scaled
// to the currency's minor unit and rounded only here, at the display
// boundary. An unknown currency code falls back to the plain decimal.
func fmtMoney(m stockfolio.Money, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return m.String()
	}
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	minor := m.Decimal().Mul(factor).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

// signedMoney is fmtMoney with an explicit plus on gains, for P/L cells.
func signedMoney(m stockfolio.Money, currency string) string {
	if m.IsPositive() {
		return "+" + fmtMoney(m, currency)
	}
	return fmtMoney(m, currency)
}
