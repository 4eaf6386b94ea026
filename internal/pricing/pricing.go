// Package pricing holds the order/invoice money math. Prices are a pure
// function of (product, quantity) and totals are always recomputed from the
// lines, never trusted from a cached field.
package pricing

import "math"

// WholesaleMinQty is the tier threshold: quantities of 10 and above get the
// wholesale price, 9 and below pay retail.
const WholesaleMinQty = 10

// Line is one order line as the money math sees it.
type Line struct {
	Quantity int
	Price    float64
}

// UnitPrice picks the price bracket for a quantity.
func UnitPrice(retail, wholesale float64, quantity int) float64 {
	if quantity >= WholesaleMinQty {
		return wholesale
	}
	return retail
}

// LineTotal is quantity x unit price, rounded to 2 decimals.
func LineTotal(quantity int, price float64) float64 {
	return Round2(float64(quantity) * price)
}

// Total sums quantity x price over all lines, rounded to 2 decimals.
func Total(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += float64(l.Quantity) * l.Price
	}
	return Round2(sum)
}

// Balance is amountPaid - total. Positive means change owed to the
// customer, negative means the customer still owes.
func Balance(amountPaid, total float64) float64 {
	return Round2(amountPaid - total)
}

// Round2 rounds to 2 decimal places (cedi pesewas).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Equal2 reports whether two amounts agree within half a pesewa.
func Equal2(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}
