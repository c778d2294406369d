package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

func standardLine(id, price string, qty int) entity.CartLine {
	return entity.CartLine{
		ID:       id,
		Name:     "Salmon Bowl",
		NameDE:   "Lachs Bowl",
		Price:    price,
		Quantity: qty,
	}
}

func customLine(price string) entity.CartLine {
	return entity.CartLine{
		ID:       "custom",
		Name:     "Custom Bowl",
		Price:    price,
		Quantity: 1,
		Customization: &entity.BowlSelection{
			Protein:       1,
			ExtraToppings: []int{7},
		},
	}
}

func TestAddItemMergesStandardLines(t *testing.T) {
	s := New()
	s.AddItem(standardLine("bowl1-standard-reis", "14.75", 1))
	s.AddItem(standardLine("bowl1-standard-reis", "14.75", 1))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, s.Total().Equal(decimal.RequireFromString("29.50")),
		"total is %s", s.Total())
}

func TestAddItemKeepsOriginalSnapshotOnMerge(t *testing.T) {
	s := New()
	s.AddItem(standardLine("bowl1-standard-reis", "14.75", 1))

	// A later add with a refreshed price must not overwrite the original
	// snapshot, only bump the quantity.
	candidate := standardLine("bowl1-standard-reis", "15.25", 2)
	candidate.Name = "Renamed"
	s.AddItem(candidate)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "14.75", items[0].Price)
	assert.Equal(t, "Salmon Bowl", items[0].Name)
}

func TestAddItemCustomBowlAlwaysNewLine(t *testing.T) {
	s := New()
	s.AddItem(customLine("16.00"))
	s.AddItem(customLine("16.00"))

	items := s.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.True(t, s.Total().Equal(decimal.RequireFromString("32.00")))
}

func TestAddItemCustomBowlNeverMergesWithStandardLine(t *testing.T) {
	s := New()
	s.AddItem(standardLine("custom", "10.00", 1))
	s.AddItem(customLine("16.00"))

	require.Len(t, s.Items(), 2)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	s := New()
	s.AddItem(standardLine("bowl2", "9.50", 0))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddItemDistinctIDsStayDistinct(t *testing.T) {
	s := New()
	s.AddItem(standardLine("bowl1-klein-reis", "11.75", 1))
	s.AddItem(standardLine("bowl1-standard-reis", "14.75", 1))
	s.AddItem(standardLine("bowl1-klein-reis", "11.75", 1))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestRemoveItem(t *testing.T) {
	s := New()
	s.AddItem(standardLine("a", "5.00", 1))
	s.AddItem(standardLine("b", "6.00", 1))

	s.RemoveItem("a")
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	// removing an absent id is a no-op
	s.RemoveItem("a")
	assert.Len(t, s.Items(), 1)
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -5} {
		s := New()
		s.AddItem(standardLine("a", "5.00", 2))
		s.UpdateQuantity("a", qty)
		assert.Empty(t, s.Items(), "quantity %d should remove the line", qty)
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	s := New()
	s.AddItem(standardLine("a", "5.00", 1))
	s.UpdateQuantity("a", 4)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)

	// unknown id is a no-op
	s.UpdateQuantity("missing", 2)
	assert.Len(t, s.Items(), 1)
}

func TestUpdateItemMergesFields(t *testing.T) {
	s := New()
	s.AddItem(standardLine("a", "5.00", 2))

	newPrice := "5.50"
	newName := "Tuna Bowl"
	s.UpdateItem("a", entity.CartUpdate{Price: &newPrice, Name: &newName})

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "5.50", items[0].Price)
	assert.Equal(t, "Tuna Bowl", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Lachs Bowl", items[0].NameDE)

	// unknown id is a no-op
	s.UpdateItem("missing", entity.CartUpdate{Price: &newPrice})
	assert.Len(t, s.Items(), 1)
}

func TestClear(t *testing.T) {
	s := New()
	s.AddItem(standardLine("a", "5.00", 1))
	s.AddItem(customLine("16.00"))

	s.Clear()
	assert.Empty(t, s.Items())
	assert.True(t, s.Total().IsZero())
}

func TestTotalEmptyCartIsZero(t *testing.T) {
	assert.True(t, New().Total().IsZero())
}

func TestTotalUnparseablePriceContributesZero(t *testing.T) {
	s := New()
	s.AddItem(standardLine("a", "not-a-price", 3))
	s.AddItem(standardLine("b", "2.50", 2))

	assert.True(t, s.Total().Equal(decimal.RequireFromString("5.00")),
		"total is %s", s.Total())
}

func TestNewSeedsPersistedLines(t *testing.T) {
	seed := []entity.CartLine{
		standardLine("a", "5.00", 2),
		standardLine("b", "1.25", 1),
	}
	s := New(seed...)

	assert.Len(t, s.Items(), 2)
	assert.True(t, s.Total().Equal(decimal.RequireFromString("11.25")))
}
