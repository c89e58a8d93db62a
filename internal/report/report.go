// Package report builds the patron status report: open loans with the fee
// accrued so far, and the full borrowing history.
package report

import (
	"context"
	"time"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/apperr"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/fee"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/patron"
	"github.com/shopspring/decimal"
)

const statusRetrieved = "Successfully retrieved patron's status report."

type CurrentLoan struct {
	BookID     int64           `json:"book_id"`
	Title      string          `json:"title"`
	Author     string          `json:"author"`
	DueDate    time.Time       `json:"due_date"`
	IsOverdue  bool            `json:"is_overdue"`
	AccruedFee decimal.Decimal `json:"accrued_fee"`
}

type HistoryEntry struct {
	BookID     int64      `json:"book_id"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date"`
}

type Report struct {
	PatronID        string          `json:"patron_id"`
	CurrentLoans    []CurrentLoan   `json:"current_borrowed_books"`
	TotalFeesOwed   decimal.Decimal `json:"total_fees_owed"`
	NumCurrentLoans int             `json:"num_current_borrowed_books"`
	History         []HistoryEntry  `json:"borrowing_history"`
	Status          string          `json:"status"`
}

func emptyReport(patronID string) Report {
	return Report{
		PatronID:      patronID,
		CurrentLoans:  []CurrentLoan{},
		TotalFeesOwed: decimal.Zero,
		History:       []HistoryEntry{},
	}
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// PatronStatus assembles the report. The fees owed are what the open loans
// would cost if returned now, so overdue books still out are counted.
// On failure the returned report is empty but usable alongside the error.
func (s *Service) PatronStatus(ctx context.Context, patronID string) (Report, error) {
	rep := emptyReport(patronID)
	if err := patron.ValidateID(patronID); err != nil {
		rep.Status = apperr.MessageOf(err)
		return rep, err
	}

	open, err := s.store.ListOpenLoans(ctx, patronID)
	if err != nil {
		return s.failed(rep, apperr.Storage("Database error occurred while loading borrowed books.", err))
	}
	history, err := s.store.ListHistory(ctx, patronID)
	if err != nil {
		return s.failed(rep, apperr.Storage("Database error occurred while loading borrowing history.", err))
	}

	now := s.now()
	total := decimal.Zero
	for _, l := range open {
		accrued := fee.Accrued(l.Loan, now)
		total = total.Add(accrued)
		rep.CurrentLoans = append(rep.CurrentLoans, CurrentLoan{
			BookID:     l.BookID,
			Title:      l.Title,
			Author:     l.Author,
			DueDate:    l.DueDate,
			IsOverdue:  now.After(l.DueDate),
			AccruedFee: accrued,
		})
	}
	for _, l := range history {
		rep.History = append(rep.History, historyEntry(l))
	}

	rep.NumCurrentLoans = len(rep.CurrentLoans)
	rep.TotalFeesOwed = total.Round(2)
	rep.Status = statusRetrieved
	return rep, nil
}

func (s *Service) failed(rep Report, err error) (Report, error) {
	rep.Status = apperr.MessageOf(err)
	return rep, err
}

func historyEntry(l entity.LoanDetail) HistoryEntry {
	return HistoryEntry{
		BookID:     l.BookID,
		Title:      l.Title,
		Author:     l.Author,
		BorrowDate: l.BorrowDate,
		DueDate:    l.DueDate,
		ReturnDate: l.ReturnDate,
	}
}
