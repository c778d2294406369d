package consumer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

func TestFormatOrder(t *testing.T) {
	order := entity.Order{
		ID:           12,
		CustomerName: "Anna Schmidt",
		Phone:        "+49 40 1234567",
		Total:        "29.50",
		Lines: []entity.CartLine{
			{NameDE: "Lachs Bowl", Quantity: 2, Size: "standard"},
			{Name: "Custom Bowl", Quantity: 1},
		},
	}

	text := formatOrder(order)

	assert.Contains(t, text, "Neue Bestellung #12 von Anna Schmidt")
	assert.Contains(t, text, "2x Lachs Bowl (standard)")
	assert.Contains(t, text, "1x Custom Bowl")
	assert.Contains(t, text, "Gesamt: €29.50")
}

func TestFormatReservation(t *testing.T) {
	res := entity.Reservation{
		ID:     7,
		Name:   "Max Müller",
		Guests: 4,
		Date:   "2025-06-14",
		Time:   "19:30",
		Phone:  "+49 40 7654321",
	}

	text := formatReservation(res)

	assert.Contains(t, text, "Neue Reservierung #7")
	assert.Contains(t, text, "4 Gäste")
	assert.Contains(t, text, "am 2025-06-14 um 19:30")
}
