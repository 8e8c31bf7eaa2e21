package tariff

import (
	"math"
	"strconv"
)

// Cents is a fixed-point money amount in US cents.
//
// All tariff math is done on integer cents so fee sums and the box-overage
// ceiling never accumulate binary floating point drift. HTTP and storage
// layers convert to/from dollars at the boundary.
type Cents int64

// FromDollars converts a dollar amount to Cents, rounding half away from zero.
func FromDollars(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// Dollars returns the amount as a float dollar value for presentation.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// String formats the amount as a plain dollar figure, e.g. "218.40".
func (c Cents) String() string {
	return strconv.FormatFloat(c.Dollars(), 'f', 2, 64)
}
