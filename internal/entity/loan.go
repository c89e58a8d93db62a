package entity

import "time"

// Loan is a borrow record. ReturnDate is nil while the copy is out.
type Loan struct {
	ID         int64      `json:"id"`
	PatronID   string     `json:"patron_id"`
	BookID     int64      `json:"book_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date"`
}

func (l Loan) IsOpen() bool {
	return l.ReturnDate == nil
}

// LoanDetail is a loan joined with the metadata of its book.
type LoanDetail struct {
	Loan
	Title  string `json:"title"`
	Author string `json:"author"`
}
