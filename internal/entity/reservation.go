package entity

import "time"

type Reservation struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Note      string    `json:"note"`
	Status    string    `json:"status"` // e.g., "pending", "confirmed", "declined"
	CreatedAt time.Time `json:"created_at"`
}
