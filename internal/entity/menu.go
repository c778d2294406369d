package entity

// MenuItem is one fixed item on the public menu. Custom bowls are priced
// through the pricing package instead and have no fixed price here.
type MenuItem struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	NameDE        string `json:"name_de"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	PriceSmall    string `json:"price_small"`
	PriceStandard string `json:"price_standard"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	Available     bool   `json:"available"`
}
