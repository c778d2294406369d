package entity

import "github.com/shopspring/decimal"

// PriceBreakdown is the itemized result of pricing one custom bowl.
// Base is always zero in the current menu design; the size tier alone
// differentiates the price via the protein lookup.
type PriceBreakdown struct {
	Protein decimal.Decimal `json:"protein"`
	Base    decimal.Decimal `json:"base"`
	Extras  []ExtraLine     `json:"extras"`
	Total   decimal.Decimal `json:"total"`
}

// ExtraLine is one paid add-on in the breakdown, in selection order.
type ExtraLine struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Type  string          `json:"type"`
}

// ProteinMinimums carries the cheapest available protein per size tier,
// used for the "ab €X" display on the bowl builder.
type ProteinMinimums struct {
	KleinMin    decimal.Decimal `json:"klein_min"`
	StandardMin decimal.Decimal `json:"standard_min"`
}
