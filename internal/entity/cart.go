package entity

// CartLine is one purchasable unit in the cart. For fixed menu items the ID is
// a composite key of menu item, size and base variant so identical
// configurations merge into one line. Custom bowls always get a freshly
// generated ID so every bowl stays its own line.
type CartLine struct {
	ID            string         `json:"id"`
	MenuItemID    int            `json:"menu_item_id"`
	Name          string         `json:"name"`
	NameDE        string         `json:"name_de"`
	Price         string         `json:"price"`
	Image         string         `json:"image"`
	Quantity      int            `json:"quantity"`
	Size          string         `json:"size,omitempty"`
	Customization *BowlSelection `json:"customization,omitempty"`
}

// BowlSelection holds the customer's choices in the bowl builder. The plain
// fields are included in the bowl price, the Extra* lists are paid add-ons.
type BowlSelection struct {
	Protein               int   `json:"protein,omitempty"`
	Base                  int   `json:"base,omitempty"`
	Marinade              int   `json:"marinade,omitempty"`
	Sauce                 int   `json:"sauce,omitempty"`
	FreshIngredients      []int `json:"fresh_ingredients,omitempty"`
	Toppings              []int `json:"toppings,omitempty"`
	ExtraProtein          []int `json:"extra_protein,omitempty"`
	ExtraFreshIngredients []int `json:"extra_fresh_ingredients,omitempty"`
	ExtraSauces           []int `json:"extra_sauces,omitempty"`
	ExtraToppings         []int `json:"extra_toppings,omitempty"`
}

// CartUpdate carries the display fields UpdateItem may merge into a line.
// Identity (ID, Customization) and Quantity are never touched through it.
type CartUpdate struct {
	Name   *string `json:"name,omitempty"`
	NameDE *string `json:"name_de,omitempty"`
	Price  *string `json:"price,omitempty"`
	Image  *string `json:"image,omitempty"`
	Size   *string `json:"size,omitempty"`
}
