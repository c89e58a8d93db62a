package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/apperr"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/fee"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/patron"
	"go.uber.org/zap"
)

type Engine struct {
	store  Store
	tx     Transactor
	fees   FeeCalculator
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Engine)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(store Store, tx Transactor, fees FeeCalculator, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		tx:     tx,
		fees:   fees,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Borrow lends one copy of a book to a patron. Preconditions are checked in
// order and the first failure is returned. The loan insert and the
// availability decrement share a transaction, so a lost race on the last
// copy rolls the insert back and surfaces as unavailable.
func (e *Engine) Borrow(ctx context.Context, patronID string, bookID int64) (BorrowReceipt, error) {
	if err := patron.ValidateID(patronID); err != nil {
		return BorrowReceipt{}, err
	}

	var receipt BorrowReceipt
	err := e.tx.WithinTx(ctx, func(ctx context.Context) error {
		book, err := e.findBook(ctx, bookID)
		if err != nil {
			return err
		}
		if book.AvailableCopies <= 0 {
			return unavailable()
		}

		current, err := e.store.CountOpenLoans(ctx, patronID)
		if err != nil {
			return e.storageError("Database error occurred while checking borrowed books.", err)
		}
		if current > MaxLoansPerPatron {
			return apperr.Conflict(apperr.CodeBorrowLimit,
				fmt.Sprintf("You have reached the maximum borrowing limit of %d books.", MaxLoansPerPatron))
		}

		borrowedAt := e.now()
		loan := entity.Loan{
			PatronID:   patronID,
			BookID:     bookID,
			BorrowDate: borrowedAt,
			DueDate:    borrowedAt.Add(LoanPeriod),
		}
		if err := e.store.InsertLoan(ctx, &loan); err != nil {
			return e.storageError("Database error occurred while creating borrow record.", err)
		}

		if err := e.store.AdjustAvailability(ctx, bookID, -1); err != nil {
			if errors.Is(err, entity.ErrAvailabilityConflict) {
				return unavailable()
			}
			return e.storageError("Database error occurred while updating book availability.", err)
		}

		receipt = BorrowReceipt{
			LoanID:   loan.ID,
			PatronID: patronID,
			BookID:   bookID,
			Title:    book.Title,
			DueDate:  loan.DueDate,
			Message: fmt.Sprintf("Successfully borrowed \"%s\". Due date: %s.",
				book.Title, loan.DueDate.Format(dueDateLayout)),
		}
		return nil
	})
	if err != nil {
		return BorrowReceipt{}, err
	}

	e.logger.Info("book borrowed",
		zap.String("patron_id", patronID),
		zap.Int64("book_id", bookID),
		zap.Int64("loan_id", receipt.LoanID),
		zap.Time("due_date", receipt.DueDate),
	)
	return receipt, nil
}

// Return closes the patron's open loan of a book and then assesses the late
// fee. A fee that cannot be computed does not undo the return; the receipt
// reports it as degraded instead.
func (e *Engine) Return(ctx context.Context, patronID string, bookID int64) (ReturnReceipt, error) {
	if err := patron.ValidateID(patronID); err != nil {
		return ReturnReceipt{}, err
	}

	var (
		book       entity.Book
		returnedAt time.Time
	)
	err := e.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		book, err = e.findBook(ctx, bookID)
		if err != nil {
			return err
		}

		open, err := e.store.ListOpenLoans(ctx, patronID)
		if err != nil {
			return e.storageError("Database error occurred while loading borrowed books.", err)
		}
		if !holds(open, bookID) {
			return notBorrowed()
		}

		if err := e.store.AdjustAvailability(ctx, bookID, +1); err != nil {
			return e.storageError("Database error occurred while updating book availability.", err)
		}

		returnedAt = e.now()
		if err := e.store.SetReturnDate(ctx, patronID, bookID, returnedAt); err != nil {
			if cerr := e.store.AdjustAvailability(ctx, bookID, -1); cerr != nil {
				e.logger.Warn("availability compensation failed",
					zap.Int64("book_id", bookID),
					zap.Error(cerr),
				)
			}
			if errors.Is(err, entity.ErrNoOpenLoan) {
				return notBorrowed()
			}
			return e.storageError("Database error occurred while recording return date.", err)
		}
		return nil
	})
	if err != nil {
		return ReturnReceipt{}, err
	}

	receipt := ReturnReceipt{
		PatronID:   patronID,
		BookID:     bookID,
		Title:      book.Title,
		ReturnedAt: returnedAt,
		Message:    "Book successfully returned.",
	}

	res, ferr := e.fees.Calculate(ctx, patronID, bookID)
	switch {
	case ferr != nil:
		receipt.FeeDegraded = true
		receipt.Message = "Late fees not updated. Error: " + apperr.MessageOf(ferr)
	case res.Status != fee.StatusCalculated && res.Status != fee.StatusNotOverdue:
		receipt.Fee = res
		receipt.FeeDegraded = true
		receipt.Message = "Late fees not updated. Error: " + res.Message
	default:
		receipt.Fee = res
	}

	if receipt.FeeDegraded {
		e.logger.Warn("book returned without fee assessment",
			zap.String("patron_id", patronID),
			zap.Int64("book_id", bookID),
			zap.String("reason", receipt.Message),
		)
	} else {
		e.logger.Info("book returned",
			zap.String("patron_id", patronID),
			zap.Int64("book_id", bookID),
			zap.Int("days_overdue", receipt.Fee.DaysOverdue),
			zap.String("fee_amount", receipt.Fee.FeeAmount.StringFixed(2)),
		)
	}
	return receipt, nil
}

func (e *Engine) findBook(ctx context.Context, bookID int64) (entity.Book, error) {
	book, err := e.store.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, entity.ErrBookNotFound) {
			return entity.Book{}, apperr.NotFound(apperr.CodeBookNotFound, "Book not found.")
		}
		return entity.Book{}, e.storageError("Database error occurred while loading the book.", err)
	}
	return book, nil
}

func (e *Engine) storageError(message string, err error) error {
	e.logger.Error(message, zap.Error(err))
	return apperr.Storage(message, err)
}

func holds(open []entity.LoanDetail, bookID int64) bool {
	for _, l := range open {
		if l.BookID == bookID {
			return true
		}
	}
	return false
}

func unavailable() error {
	return apperr.Conflict(apperr.CodeUnavailable, "This book is currently not available.")
}

func notBorrowed() error {
	return apperr.Conflict(apperr.CodeNotBorrowed, "Book not borrowed by patron.")
}
