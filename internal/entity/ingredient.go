package entity

// Ingredient types as stored in the ingredients table.
const (
	IngredientProtein  = "protein"
	IngredientBase     = "base"
	IngredientMarinade = "marinade"
	IngredientFresh    = "fresh"
	IngredientSauce    = "sauce"
	IngredientTopping  = "topping"
)

// Bowl size tiers. The tier selects which price column applies to proteins.
const (
	SizeKlein    = "klein"
	SizeStandard = "standard"
)

// Ingredient is one catalog entry for the custom bowl builder. Price columns
// are decimal strings; an empty string means the column is not set and the
// fallback chain applies (PriceSmall/PriceStandard -> Price, ExtraPrice -> Price).
type Ingredient struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	NameDE        string `json:"name_de"`
	Type          string `json:"type"`
	Price         string `json:"price"`
	PriceSmall    string `json:"price_small"`
	PriceStandard string `json:"price_standard"`
	ExtraPrice    string `json:"extra_price"`
	Available     bool   `json:"available"`
}

/*
Mysql Table

CREATE TABLE ingredients (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	name_de VARCHAR(100) NOT NULL,
	type VARCHAR(20) NOT NULL,
	price VARCHAR(20) NOT NULL DEFAULT '',
	price_small VARCHAR(20) NOT NULL DEFAULT '',
	price_standard VARCHAR(20) NOT NULL DEFAULT '',
	extra_price VARCHAR(20) NOT NULL DEFAULT '',
	available TINYINT(1) NOT NULL DEFAULT 1
);
*/
