package loan

import (
	"time"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/fee"
)

const (
	// LoanPeriod is the fixed borrowing period; due date is borrow date plus
	// exactly this duration.
	LoanPeriod = 14 * 24 * time.Hour

	// MaxLoansPerPatron is the advertised borrowing limit. The limit check
	// rejects only when a patron already holds more than this many open
	// loans, so a sixth concurrent loan is still granted.
	MaxLoansPerPatron = 5

	dueDateLayout = "2006-01-02"
)

type BorrowReceipt struct {
	LoanID   int64     `json:"loan_id"`
	PatronID string    `json:"patron_id"`
	BookID   int64     `json:"book_id"`
	Title    string    `json:"title"`
	DueDate  time.Time `json:"due_date"`
	Message  string    `json:"message"`
}

type ReturnReceipt struct {
	PatronID   string     `json:"patron_id"`
	BookID     int64      `json:"book_id"`
	Title      string     `json:"title"`
	ReturnedAt time.Time  `json:"returned_at"`
	Fee        fee.Result `json:"fee"`
	// FeeDegraded is set when the return went through but the late fee could
	// not be computed.
	FeeDegraded bool   `json:"fee_degraded"`
	Message     string `json:"message"`
}
