package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

func testCatalog() []entity.Ingredient {
	return []entity.Ingredient{
		{ID: 1, NameDE: "Lachs", Type: entity.IngredientProtein, PriceSmall: "5.00", PriceStandard: "6.50", Available: true},
		{ID: 2, NameDE: "Thunfisch", Type: entity.IngredientProtein, Price: "7.00", Available: true},
		{ID: 3, NameDE: "Tofu", Type: entity.IngredientProtein, PriceSmall: "4.50", PriceStandard: "5.50", Available: false},
		{ID: 4, NameDE: "Reis", Type: entity.IngredientBase, Available: true},
		{ID: 5, NameDE: "Mango", Type: entity.IngredientFresh, ExtraPrice: "1.50", Available: true},
		{ID: 6, NameDE: "Sriracha Mayo", Type: entity.IngredientSauce, Price: "1.00", Available: true},
		{ID: 7, NameDE: "Sesam", Type: entity.IngredientTopping, ExtraPrice: "0.00", Available: true},
	}
}

func TestUnitProteinPriceTierFallback(t *testing.T) {
	ing := entity.Ingredient{PriceSmall: "5.00", PriceStandard: "6.50", Price: "9.99"}
	assert.True(t, UnitProteinPrice(ing, entity.SizeKlein).Equal(decimal.RequireFromString("5.00")))
	assert.True(t, UnitProteinPrice(ing, entity.SizeStandard).Equal(decimal.RequireFromString("6.50")))

	// missing tier column falls back to the generic price
	generic := entity.Ingredient{Price: "7.00"}
	assert.True(t, UnitProteinPrice(generic, entity.SizeKlein).Equal(decimal.RequireFromString("7.00")))
	assert.True(t, UnitProteinPrice(generic, entity.SizeStandard).Equal(decimal.RequireFromString("7.00")))

	// garbage in the tier column falls through the chain instead of failing
	garbled := entity.Ingredient{PriceStandard: "n/a", Price: "7.00"}
	assert.True(t, UnitProteinPrice(garbled, entity.SizeStandard).Equal(decimal.RequireFromString("7.00")))

	// nothing priced at all is zero
	assert.True(t, UnitProteinPrice(entity.Ingredient{}, entity.SizeStandard).IsZero())
}

func TestExtraPriceFallback(t *testing.T) {
	assert.True(t, ExtraPrice(entity.Ingredient{ExtraPrice: "1.50"}).Equal(decimal.RequireFromString("1.50")))
	assert.True(t, ExtraPrice(entity.Ingredient{Price: "1.00"}).Equal(decimal.RequireFromString("1.00")))
	assert.True(t, ExtraPrice(entity.Ingredient{}).IsZero())
}

func TestComputeBowlPrice(t *testing.T) {
	sel := entity.BowlSelection{
		Protein:       1,
		ExtraToppings: []int{5},
	}

	b := ComputeBowlPrice(sel, entity.SizeStandard, testCatalog())

	assert.True(t, b.Protein.Equal(decimal.RequireFromString("6.50")))
	assert.True(t, b.Base.IsZero())
	require.Len(t, b.Extras, 1)
	assert.Equal(t, "Mango", b.Extras[0].Name)
	assert.Equal(t, LabelExtraTopping, b.Extras[0].Type)
	assert.True(t, b.Extras[0].Price.Equal(decimal.RequireFromString("1.50")))
	assert.True(t, b.Total.Equal(decimal.RequireFromString("8.00")))
}

func TestComputeBowlPriceSizeTierDrivesProtein(t *testing.T) {
	sel := entity.BowlSelection{Protein: 1}

	klein := ComputeBowlPrice(sel, entity.SizeKlein, testCatalog())
	standard := ComputeBowlPrice(sel, entity.SizeStandard, testCatalog())

	assert.True(t, klein.Total.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, standard.Total.Equal(decimal.RequireFromString("6.50")))
}

func TestComputeBowlPriceSkipsUnresolvedAndZeroPriced(t *testing.T) {
	sel := entity.BowlSelection{
		Protein:       999, // not in the catalog
		ExtraToppings: []int{7, 888, 5},
	}

	b := ComputeBowlPrice(sel, entity.SizeStandard, testCatalog())

	assert.True(t, b.Protein.IsZero())
	// id 7 resolves to a zero extra price, 888 does not resolve; neither
	// produces a breakdown line
	require.Len(t, b.Extras, 1)
	assert.Equal(t, "Mango", b.Extras[0].Name)
	assert.True(t, b.Total.Equal(decimal.RequireFromString("1.50")))
}

func TestComputeBowlPriceIncludedSelectionsAreFree(t *testing.T) {
	sel := entity.BowlSelection{
		Protein:          2,
		Base:             4,
		Sauce:            6,
		FreshIngredients: []int{5},
		Toppings:         []int{7},
	}

	b := ComputeBowlPrice(sel, entity.SizeStandard, testCatalog())

	// only the protein contributes; base, sauce and the fixed inclusions
	// are never read by the pricing routine
	assert.Empty(t, b.Extras)
	assert.True(t, b.Total.Equal(decimal.RequireFromString("7.00")))
}

func TestComputeBowlPriceExtrasKeepSelectionOrder(t *testing.T) {
	sel := entity.BowlSelection{
		ExtraProtein:          []int{2, 1},
		ExtraFreshIngredients: []int{5},
		ExtraSauces:           []int{6},
	}

	b := ComputeBowlPrice(sel, entity.SizeStandard, testCatalog())

	require.Len(t, b.Extras, 4)
	assert.Equal(t, []string{"Thunfisch", "Lachs", "Mango", "Sriracha Mayo"}, []string{
		b.Extras[0].Name, b.Extras[1].Name, b.Extras[2].Name, b.Extras[3].Name,
	})
	assert.Equal(t, LabelExtraProtein, b.Extras[0].Type)
	assert.Equal(t, LabelExtraFresh, b.Extras[2].Type)
	assert.Equal(t, LabelExtraSauce, b.Extras[3].Type)

	sum := b.Protein
	for _, extra := range b.Extras {
		sum = sum.Add(extra.Price)
	}
	assert.True(t, b.Total.Equal(sum))
}

func TestMinProteinPrices(t *testing.T) {
	m := MinProteinPrices(testCatalog())

	// Tofu is unavailable; Lachs wins klein (5.00 < 7.00) and standard
	// (6.50 < 7.00)
	assert.True(t, m.KleinMin.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, m.StandardMin.Equal(decimal.RequireFromString("6.50")))
}

func TestMinProteinPricesNoCandidates(t *testing.T) {
	m := MinProteinPrices(nil)
	assert.True(t, m.KleinMin.IsZero())
	assert.True(t, m.StandardMin.IsZero())

	unavailable := []entity.Ingredient{
		{ID: 1, Type: entity.IngredientProtein, Price: "5.00", Available: false},
	}
	m = MinProteinPrices(unavailable)
	assert.True(t, m.KleinMin.IsZero())
	assert.True(t, m.StandardMin.IsZero())
}

func TestMinProteinPricesExcludesUnpriced(t *testing.T) {
	catalog := []entity.Ingredient{
		{ID: 1, Type: entity.IngredientProtein, Available: true}, // no price set
		{ID: 2, Type: entity.IngredientProtein, Price: "6.00", Available: true},
	}

	m := MinProteinPrices(catalog)

	// the zero-priced protein is treated as "price not set", not "free"
	assert.True(t, m.KleinMin.Equal(decimal.RequireFromString("6.00")))
	assert.True(t, m.StandardMin.Equal(decimal.RequireFromString("6.00")))
}

func TestParsePrice(t *testing.T) {
	d, ok := ParsePrice("6.50")
	assert.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("6.50")))

	_, ok = ParsePrice("")
	assert.False(t, ok)

	_, ok = ParsePrice("6,50")
	assert.False(t, ok)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "8.00", FormatPrice(decimal.RequireFromString("8")))
	assert.Equal(t, "6.50", FormatPrice(decimal.RequireFromString("6.5")))
	assert.Equal(t, "€8.00", FormatPriceWithCurrency(decimal.RequireFromString("8")))
	assert.Equal(t, "€0.00", FormatPriceWithCurrency(decimal.Zero))
}
