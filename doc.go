// Package divproj projects the future value of a dividend-paying equity
// position from a fixed set of annual assumptions: share price, share count,
// holding period, dividend yield and growth, stock appreciation, periodic
// contributions, and dividend reinvestment.
//
// The core functionalities include:
//   - Rate Derivation: converting annual percentage assumptions into
//     per-month compounding rates and per-payment-period dividend yields,
//     with a fixed High/Low yield band around the Baseline.
//   - Projection Engine: an exact, order-sensitive monthly simulation
//     producing a total-value series per scenario over the whole holding
//     period, together with the share price path.
//   - Reports: the breakdown of the final value into principal,
//     contributions, dividends, and appreciation; the yearly dividend
//     income rollup; and the month-by-month schedule table.
//   - Assumptions Persistence: encoding and decoding assumptions records
//     as small, version-controllable YAML files.
//
// This package serves as the foundational logic for the `dvp` command-line
// tool. A projection run is deterministic and retains no state: every
// invocation derives rates, simulates, and reports from scratch.
package divproj
