package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

func TestValidateReservation(t *testing.T) {
	valid := entity.Reservation{
		Name:   "Anna Schmidt",
		Phone:  "+49 40 1234567",
		Date:   "2025-06-14",
		Time:   "19:30",
		Guests: 2,
	}
	assert.NoError(t, validateReservation(&valid))

	missingName := valid
	missingName.Name = "  "
	assert.Error(t, validateReservation(&missingName))

	noContact := valid
	noContact.Phone = ""
	noContact.Email = ""
	assert.Error(t, validateReservation(&noContact))

	emailOnly := valid
	emailOnly.Phone = ""
	emailOnly.Email = "anna@example.com"
	assert.NoError(t, validateReservation(&emailOnly))

	noDate := valid
	noDate.Date = ""
	assert.Error(t, validateReservation(&noDate))

	noGuests := valid
	noGuests.Guests = 0
	assert.Error(t, validateReservation(&noGuests))
}
