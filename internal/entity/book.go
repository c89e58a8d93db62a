package entity

import "time"

type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
}

// OnLoan is the number of copies currently out on open loans.
func (b Book) OnLoan() int {
	return b.TotalCopies - b.AvailableCopies
}
