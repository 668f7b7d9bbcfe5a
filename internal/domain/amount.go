package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceAmount parses a user-supplied monetary amount. Anything that is not a
// valid non-negative number coerces to zero instead of being rejected; this is
// the forgiving-input contract applied to all amount fields.
func CoerceAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
