package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

// Breakdown labels for the four paid add-on categories, in the order they
// are priced.
const (
	LabelExtraProtein = "Extra Protein"
	LabelExtraFresh   = "Extra Zutat"
	LabelExtraSauce   = "Extra Sauce"
	LabelExtraTopping = "Extra Topping"
)

// ParsePrice reads a decimal price string from the catalog. An empty or
// unparseable value reports ok=false, meaning "not priced" rather than free.
func ParsePrice(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// UnitProteinPrice resolves the protein price for a size tier. The tier
// column wins over the generic price; an unpriced ingredient is zero.
func UnitProteinPrice(ing entity.Ingredient, size string) decimal.Decimal {
	tierColumn := ing.PriceStandard
	if size == entity.SizeKlein {
		tierColumn = ing.PriceSmall
	}
	if p, ok := ParsePrice(tierColumn); ok {
		return p
	}
	if p, ok := ParsePrice(ing.Price); ok {
		return p
	}
	return decimal.Zero
}

// ExtraPrice resolves the add-on price of an ingredient, falling back to the
// generic price column when no dedicated extra price is set.
func ExtraPrice(ing entity.Ingredient) decimal.Decimal {
	if p, ok := ParsePrice(ing.ExtraPrice); ok {
		return p
	}
	if p, ok := ParsePrice(ing.Price); ok {
		return p
	}
	return decimal.Zero
}

// ComputeBowlPrice prices one custom bowl configuration against the catalog.
// The included selections (base, marinade, sauce, fixed fresh and toppings)
// carry no incremental price and are never read here; only the protein and
// the four extra lists contribute. Unresolved ids and zero-priced extras are
// skipped silently. Base is always zero: size differentiation happens purely
// through the protein tier lookup.
func ComputeBowlPrice(sel entity.BowlSelection, size string, catalog []entity.Ingredient) entity.PriceBreakdown {
	byID := make(map[int]entity.Ingredient, len(catalog))
	for _, ing := range catalog {
		byID[ing.ID] = ing
	}

	breakdown := entity.PriceBreakdown{
		Protein: decimal.Zero,
		Base:    decimal.Zero,
		Total:   decimal.Zero,
	}

	if ing, ok := byID[sel.Protein]; ok {
		breakdown.Protein = UnitProteinPrice(ing, size)
		breakdown.Total = breakdown.Total.Add(breakdown.Protein)
	}

	categories := []struct {
		ids   []int
		label string
	}{
		{sel.ExtraProtein, LabelExtraProtein},
		{sel.ExtraFreshIngredients, LabelExtraFresh},
		{sel.ExtraSauces, LabelExtraSauce},
		{sel.ExtraToppings, LabelExtraTopping},
	}

	for _, cat := range categories {
		for _, id := range cat.ids {
			ing, ok := byID[id]
			if !ok {
				continue
			}
			price := ExtraPrice(ing)
			if !price.IsPositive() {
				continue
			}
			breakdown.Extras = append(breakdown.Extras, entity.ExtraLine{
				Name:  ing.NameDE,
				Price: price,
				Type:  cat.label,
			})
			breakdown.Total = breakdown.Total.Add(price)
		}
	}

	return breakdown
}

// MinProteinPrices finds the cheapest available protein per size tier for the
// "ab €X" display. Proteins resolving to zero are treated as not priced and
// excluded from the minimum; with no candidates left a tier reports zero.
func MinProteinPrices(catalog []entity.Ingredient) entity.ProteinMinimums {
	minimums := entity.ProteinMinimums{
		KleinMin:    decimal.Zero,
		StandardMin: decimal.Zero,
	}

	for _, ing := range catalog {
		if ing.Type != entity.IngredientProtein || !ing.Available {
			continue
		}
		if p := UnitProteinPrice(ing, entity.SizeKlein); p.IsPositive() {
			if minimums.KleinMin.IsZero() || p.LessThan(minimums.KleinMin) {
				minimums.KleinMin = p
			}
		}
		if p := UnitProteinPrice(ing, entity.SizeStandard); p.IsPositive() {
			if minimums.StandardMin.IsZero() || p.LessThan(minimums.StandardMin) {
				minimums.StandardMin = p
			}
		}
	}

	return minimums
}

// FormatPrice renders a price with two decimals, e.g. "8.00".
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatPriceWithCurrency renders a price as "€8.00".
func FormatPriceWithCurrency(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}
