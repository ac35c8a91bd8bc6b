package models

import (
	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
)

const pricePrecision = 2

// Price is a fiat price rendered as a bare JSON number with two decimals (0.00).
type Price struct {
	decimal.Decimal
}

// PlaceholderPrice is stamped on every asset; there is no live pricing source.
var PlaceholderPrice = Price{Decimal: decimal.Zero}

// MarshalJSON renders the price unquoted with fixed precision.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.StringFixed(pricePrecision)), nil
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (p *Price) UnmarshalJSON(data []byte) error {
	return p.Decimal.UnmarshalJSON(data)
}

// JSONSchema describes Price as a plain number for generated schemas.
func (Price) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "number",
		Description: "Price in USD, always 0.00 until a pricing source exists",
		Examples:    []any{0.00},
	}
}
