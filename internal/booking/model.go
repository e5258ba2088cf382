package booking

import "time"

// Booking is one table reservation request.
type Booking struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"size"`
	Comment   string `json:"comment"`

	CreatedAt time.Time `json:"-"`
	IP        string    `json:"-"`
	UserAgent string    `json:"-"`
}
