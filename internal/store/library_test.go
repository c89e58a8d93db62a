package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/apperr"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/catalog"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/fee"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/loan"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type backend interface {
	catalog.Repository
	loan.Store
	loan.Transactor
	fee.Store
	report.Store
}

type library struct {
	store   backend
	catalog *catalog.Service
	fees    *fee.Calculator
	engine  *loan.Engine
	reports *report.Service
}

func newLibrary(s backend, now func() time.Time) *library {
	fees := fee.NewCalculator(s)
	return &library{
		store:   s,
		catalog: catalog.NewService(s),
		fees:    fees,
		engine:  loan.NewEngine(s, s, fees, zap.NewNop(), loan.WithClock(now)),
		reports: report.NewService(s),
	}
}

func (l *library) addBook(t *testing.T, n, copies int) int64 {
	t.Helper()
	res, err := l.catalog.AddBook(context.Background(), catalog.NewBook{
		Title:       fmt.Sprintf("Book %02d", n),
		Author:      "Author",
		ISBN:        fmt.Sprintf("97800000000%02d", n),
		TotalCopies: copies,
	})
	require.NoError(t, err)
	return res.Book.ID
}

// openLoansOf counts the patron's open loans of the book.
func openLoansOf(t *testing.T, l *library, patronID string, bookID int64) int {
	t.Helper()
	open, err := l.store.ListOpenLoans(context.Background(), patronID)
	require.NoError(t, err)
	n := 0
	for _, ln := range open {
		if ln.BookID == bookID {
			n++
		}
	}
	return n
}

// runLibraryScenarios drives the services end to end against a store.
func runLibraryScenarios(t *testing.T, newBackend func(t *testing.T) backend) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("added book is fully available", func(t *testing.T) {
		lib := newLibrary(newBackend(t), clock)
		lib.addBook(t, 1, 4)

		b, err := lib.store.GetByISBN(ctx, "9780000000001")
		require.NoError(t, err)
		assert.Equal(t, 4, b.TotalCopies)
		assert.Equal(t, 4, b.AvailableCopies)
	})

	t.Run("duplicate isbn keeps a single book", func(t *testing.T) {
		lib := newLibrary(newBackend(t), clock)
		lib.addBook(t, 1, 1)

		_, err := lib.catalog.AddBook(ctx, catalog.NewBook{Title: "Other", Author: "X", ISBN: "9780000000001", TotalCopies: 2})
		assert.Equal(t, apperr.CodeDuplicateISBN, apperr.CodeOf(err))

		hits, err := lib.catalog.Search(ctx, "9780000000001", catalog.SearchByISBN)
		require.NoError(t, err)
		assert.Len(t, hits, 1)
	})

	t.Run("last copy can only be borrowed once", func(t *testing.T) {
		lib := newLibrary(newBackend(t), clock)
		id := lib.addBook(t, 1, 1)

		_, err := lib.engine.Borrow(ctx, "111111", id)
		require.NoError(t, err)
		_, err = lib.engine.Borrow(ctx, "222222", id)
		assert.Equal(t, apperr.CodeUnavailable, apperr.CodeOf(err))

		b, err := lib.store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 0, b.AvailableCopies)
	})

	t.Run("sixth loan is granted and seventh refused", func(t *testing.T) {
		lib := newLibrary(newBackend(t), clock)
		for i := 1; i <= 7; i++ {
			id := lib.addBook(t, i, 1)
			_, err := lib.engine.Borrow(ctx, "123456", id)
			if i <= 6 {
				require.NoError(t, err, "borrow #%d", i)
				continue
			}
			assert.Equal(t, apperr.CodeBorrowLimit, apperr.CodeOf(err))
			assert.Equal(t, "You have reached the maximum borrowing limit of 5 books.", apperr.MessageOf(err))
		}
		n, err := lib.store.CountOpenLoans(ctx, "123456")
		require.NoError(t, err)
		assert.Equal(t, 6, n)
	})

	t.Run("borrow then return restores availability", func(t *testing.T) {
		lib := newLibrary(newBackend(t), clock)
		id := lib.addBook(t, 1, 3)

		receipt, err := lib.engine.Borrow(ctx, "000042", id)
		require.NoError(t, err)
		assert.Equal(t, now.Add(loan.LoanPeriod), receipt.DueDate)

		ret, err := lib.engine.Return(ctx, "000042", id)
		require.NoError(t, err)
		assert.False(t, ret.FeeDegraded)

		b, err := lib.store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 3, b.AvailableCopies)
		assert.Equal(t, openLoansOf(t, lib, "000042", id), b.OnLoan())

		res, err := lib.fees.Calculate(ctx, "000042", id)
		require.NoError(t, err)
		assert.Equal(t, fee.StatusNotOverdue, res.Status)
		assert.True(t, res.FeeAmount.IsZero())

		history, err := lib.store.ListHistory(ctx, "000042")
		require.NoError(t, err)
		require.Len(t, history, 1)
		require.NotNil(t, history[0].ReturnDate)
		assert.True(t, history[0].ReturnDate.Equal(now))
	})

	t.Run("return without a loan is refused", func(t *testing.T) {
		lib := newLibrary(newBackend(t), clock)
		id := lib.addBook(t, 1, 1)

		_, err := lib.engine.Return(ctx, "123456", id)
		assert.Equal(t, apperr.CodeNotBorrowed, apperr.CodeOf(err))
	})

	t.Run("late return is charged", func(t *testing.T) {
		s := newBackend(t)
		borrowLib := newLibrary(s, clock)
		id := borrowLib.addBook(t, 1, 1)
		_, err := borrowLib.engine.Borrow(ctx, "123456", id)
		require.NoError(t, err)

		later := now.Add(loan.LoanPeriod + 10*24*time.Hour)
		returnLib := newLibrary(s, func() time.Time { return later })
		ret, err := returnLib.engine.Return(ctx, "123456", id)
		require.NoError(t, err)

		assert.Equal(t, fee.StatusCalculated, ret.Fee.Status)
		assert.Equal(t, 10, ret.Fee.DaysOverdue)
		assert.Equal(t, "6.50", ret.Fee.FeeAmount.StringFixed(2))
	})

	t.Run("second copy is returned against its own loan", func(t *testing.T) {
		s := newBackend(t)
		lib := newLibrary(s, clock)
		id := lib.addBook(t, 1, 2)
		_, err := lib.engine.Borrow(ctx, "123456", id)
		require.NoError(t, err)

		second := now.Add(24 * time.Hour)
		_, err = newLibrary(s, func() time.Time { return second }).engine.Borrow(ctx, "123456", id)
		require.NoError(t, err)

		later := now.Add(loan.LoanPeriod + 3*24*time.Hour)
		returnLib := newLibrary(s, func() time.Time { return later })
		ret, err := returnLib.engine.Return(ctx, "123456", id)
		require.NoError(t, err)
		assert.False(t, ret.FeeDegraded)
		assert.Equal(t, fee.StatusCalculated, ret.Fee.Status)
		assert.Equal(t, 2, ret.Fee.DaysOverdue)

		b, err := lib.store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, b.AvailableCopies)
		assert.Equal(t, openLoansOf(t, lib, "123456", id), b.OnLoan())

		open, err := lib.store.ListOpenLoans(ctx, "123456")
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.True(t, open[0].BorrowDate.Equal(now))

		ret, err = returnLib.engine.Return(ctx, "123456", id)
		require.NoError(t, err)
		assert.False(t, ret.FeeDegraded)

		b, err = lib.store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2, b.AvailableCopies)
		assert.Zero(t, b.OnLoan())
	})

	t.Run("report lists open loans and history", func(t *testing.T) {
		lib := newLibrary(newBackend(t), clock)
		first := lib.addBook(t, 1, 1)
		second := lib.addBook(t, 2, 1)
		_, err := lib.engine.Borrow(ctx, "123456", first)
		require.NoError(t, err)
		_, err = lib.engine.Borrow(ctx, "123456", second)
		require.NoError(t, err)
		_, err = lib.engine.Return(ctx, "123456", first)
		require.NoError(t, err)

		rep, err := lib.reports.PatronStatus(ctx, "123456")
		require.NoError(t, err)
		assert.Equal(t, 1, rep.NumCurrentLoans)
		assert.Equal(t, "Book 02", rep.CurrentLoans[0].Title)
		assert.Len(t, rep.History, 2)
	})

	t.Run("concurrent borrowers share the copies", func(t *testing.T) {
		lib := newLibrary(newBackend(t), clock)
		id := lib.addBook(t, 1, 3)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			granted int
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if _, err := lib.engine.Borrow(ctx, fmt.Sprintf("%06d", i), id); err == nil {
					mu.Lock()
					granted++
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 3, granted)
		b, err := lib.store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 0, b.AvailableCopies)
		onLoan := 0
		for i := 0; i < 10; i++ {
			onLoan += openLoansOf(t, lib, fmt.Sprintf("%06d", i), id)
		}
		assert.Equal(t, onLoan, b.OnLoan())
	})
}
