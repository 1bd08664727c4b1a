// Package stockfolio implements a small, single-user equity portfolio:
// an ordered collection of positions together with the handful of
// operations a tracker needs.
//
// The core functionalities include:
//   - Position Tracking: one position per ticker symbol, holding the share
//     count, the volume-weighted average buy price and the last known
//     market price.
//   - Operations: buying (opening or averaging into a position), selling
//     (trimming or closing), and marking current prices one symbol at a
//     time or across the whole book.
//   - Metrics: aggregate cost basis, market value, unrealized profit and
//     loss, and the portfolio return percentage.
//   - Data Persistence: a tolerant reader and canonical writer for the
//     plain-text, one-record-per-line portfolio file.
//
// The package holds no global state: a Portfolio is constructed by the
// caller and passed to every operation, so the `sfo` command-line tool and
// the tests both own their stores outright. All money arithmetic is exact,
// on top of shopspring/decimal.
package stockfolio
