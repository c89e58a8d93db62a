package loan

import (
	"context"
	"time"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/fee"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=loan

// Store is the part of the catalog store the engine mutates.
type Store interface {
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	// AdjustAvailability adds delta to available_copies. It returns
	// entity.ErrAvailabilityConflict when the result would leave
	// [0, total_copies].
	AdjustAvailability(ctx context.Context, bookID int64, delta int) error
	InsertLoan(ctx context.Context, loan *entity.Loan) error
	// SetReturnDate closes the most recent open loan for the pair (latest
	// borrow date, then highest id), or returns entity.ErrNoOpenLoan.
	SetReturnDate(ctx context.Context, patronID string, bookID int64, returnedAt time.Time) error
	ListOpenLoans(ctx context.Context, patronID string) ([]entity.LoanDetail, error)
	CountOpenLoans(ctx context.Context, patronID string) (int, error)
}

// Transactor runs fn so that every store call made with the context it
// receives commits or rolls back together.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type FeeCalculator interface {
	Calculate(ctx context.Context, patronID string, bookID int64) (fee.Result, error)
}
