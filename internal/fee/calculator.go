package fee

import (
	"context"
	"errors"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/apperr"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/patron"
)

//go:generate mockgen -source=calculator.go -destination=mock_calculator.go -package=fee

// Store is the read side of the catalog store the calculator needs.
type Store interface {
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	ListHistory(ctx context.Context, patronID string) ([]entity.LoanDetail, error)
}

type Calculator struct {
	store Store
}

func NewCalculator(store Store) *Calculator {
	return &Calculator{store: store}
}

// Calculate finds the patron's most recent loan of the book across the whole
// borrowing history and assesses it. It never mutates the store.
func (c *Calculator) Calculate(ctx context.Context, patronID string, bookID int64) (Result, error) {
	if err := patron.ValidateID(patronID); err != nil {
		return Result{}, err
	}

	if _, err := c.store.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, entity.ErrBookNotFound) {
			return Result{}, apperr.NotFound(apperr.CodeBookNotFound, "Book not found.")
		}
		return Result{}, apperr.Storage("Database error occurred while calculating late fee.", err)
	}

	history, err := c.store.ListHistory(ctx, patronID)
	if err != nil {
		return Result{}, apperr.Storage("Database error occurred while calculating late fee.", err)
	}

	loan, ok := latestLoan(history, bookID)
	if !ok {
		return Result{}, apperr.Conflict(apperr.CodeNotBorrowed, "Book not borrowed by patron.")
	}
	return Assess(loan), nil
}

func latestLoan(history []entity.LoanDetail, bookID int64) (entity.Loan, bool) {
	var (
		latest entity.Loan
		found  bool
	)
	for _, d := range history {
		if d.BookID != bookID {
			continue
		}
		if !found || d.BorrowDate.After(latest.BorrowDate) ||
			(d.BorrowDate.Equal(latest.BorrowDate) && d.ID > latest.ID) {
			latest = d.Loan
			found = true
		}
	}
	return latest, found
}
