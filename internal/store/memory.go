package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/catalog"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
)

type memTxKey struct{}

// Memory is an in-process catalog store. Writes are serialized; a failed
// transaction restores the snapshot taken when it began.
type Memory struct {
	txMu sync.Mutex

	mu         sync.RWMutex
	books      map[int64]entity.Book
	loans      []entity.Loan
	nextBookID int64
	nextLoanID int64
	now        func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		books: make(map[int64]entity.Book),
		now:   time.Now,
	}
}

func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// WithinTx runs fn with exclusive write access. Nested calls join the
// outer transaction.
func (m *Memory) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}

	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.RLock()
	books := make(map[int64]entity.Book, len(m.books))
	for id, b := range m.books {
		books[id] = b
	}
	loans := append([]entity.Loan(nil), m.loans...)
	nextBookID, nextLoanID := m.nextBookID, m.nextLoanID
	m.mu.RUnlock()

	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		m.mu.Lock()
		m.books, m.loans = books, loans
		m.nextBookID, m.nextLoanID = nextBookID, nextLoanID
		m.mu.Unlock()
		return err
	}
	return nil
}

// write makes a lone mutation take part in the transaction lock so a
// concurrent rollback cannot erase it.
func (m *Memory) write(ctx context.Context, fn func() error) error {
	return m.WithinTx(ctx, func(context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		return fn()
	})
}

func (m *Memory) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.books[id]
	if !ok {
		return entity.Book{}, entity.ErrBookNotFound
	}
	return b, nil
}

func (m *Memory) GetByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return entity.Book{}, entity.ErrBookNotFound
}

func (m *Memory) Insert(ctx context.Context, book *entity.Book) error {
	return m.write(ctx, func() error {
		for _, b := range m.books {
			if b.ISBN == book.ISBN {
				return entity.ErrDuplicateISBN
			}
		}
		m.nextBookID++
		book.ID = m.nextBookID
		book.CreatedAt = m.now()
		m.books[book.ID] = *book
		return nil
	})
}

func (m *Memory) List(ctx context.Context) ([]entity.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	books := make([]entity.Book, 0, len(m.books))
	for _, b := range m.books {
		books = append(books, b)
	}
	sortBooks(books)
	return books, nil
}

func (m *Memory) Search(ctx context.Context, q catalog.SearchQuery) ([]entity.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	term := strings.ToLower(q.Term)
	books := []entity.Book{}
	for _, b := range m.books {
		var hit bool
		switch q.Field {
		case catalog.SearchByTitle:
			hit = strings.Contains(strings.ToLower(b.Title), term)
		case catalog.SearchByAuthor:
			hit = strings.Contains(strings.ToLower(b.Author), term)
		case catalog.SearchByISBN:
			hit = b.ISBN == q.Term
		}
		if hit {
			books = append(books, b)
		}
	}
	sortBooks(books)
	return books, nil
}

func (m *Memory) AdjustAvailability(ctx context.Context, bookID int64, delta int) error {
	return m.write(ctx, func() error {
		b, ok := m.books[bookID]
		if !ok {
			return entity.ErrBookNotFound
		}
		next := b.AvailableCopies + delta
		if next < 0 || next > b.TotalCopies {
			return entity.ErrAvailabilityConflict
		}
		b.AvailableCopies = next
		m.books[bookID] = b
		return nil
	})
}

func (m *Memory) InsertLoan(ctx context.Context, loan *entity.Loan) error {
	return m.write(ctx, func() error {
		if _, ok := m.books[loan.BookID]; !ok {
			return entity.ErrBookNotFound
		}
		m.nextLoanID++
		loan.ID = m.nextLoanID
		m.loans = append(m.loans, *loan)
		return nil
	})
}

func (m *Memory) SetReturnDate(ctx context.Context, patronID string, bookID int64, returnedAt time.Time) error {
	return m.write(ctx, func() error {
		idx := -1
		for i, l := range m.loans {
			if l.PatronID != patronID || l.BookID != bookID || !l.IsOpen() {
				continue
			}
			if idx < 0 || l.BorrowDate.After(m.loans[idx].BorrowDate) ||
				(l.BorrowDate.Equal(m.loans[idx].BorrowDate) && l.ID > m.loans[idx].ID) {
				idx = i
			}
		}
		if idx < 0 {
			return entity.ErrNoOpenLoan
		}
		t := returnedAt
		m.loans[idx].ReturnDate = &t
		return nil
	})
}

func (m *Memory) ListOpenLoans(ctx context.Context, patronID string) ([]entity.LoanDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []entity.LoanDetail{}
	for _, l := range m.loans {
		if l.PatronID == patronID && l.IsOpen() {
			out = append(out, m.detail(l))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BorrowDate.Before(out[j].BorrowDate)
	})
	return out, nil
}

func (m *Memory) CountOpenLoans(ctx context.Context, patronID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, l := range m.loans {
		if l.PatronID == patronID && l.IsOpen() {
			n++
		}
	}
	return n, nil
}

// ListHistory returns every loan of the patron, newest first.
func (m *Memory) ListHistory(ctx context.Context, patronID string) ([]entity.LoanDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []entity.LoanDetail{}
	for _, l := range m.loans {
		if l.PatronID == patronID {
			out = append(out, m.detail(l))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BorrowDate.Equal(out[j].BorrowDate) {
			return out[i].ID > out[j].ID
		}
		return out[i].BorrowDate.After(out[j].BorrowDate)
	})
	return out, nil
}

func (m *Memory) detail(l entity.Loan) entity.LoanDetail {
	b := m.books[l.BookID]
	return entity.LoanDetail{Loan: l, Title: b.Title, Author: b.Author}
}

func sortBooks(books []entity.Book) {
	sort.Slice(books, func(i, j int) bool {
		if books[i].Title == books[j].Title {
			return books[i].ID < books[j].ID
		}
		return books[i].Title < books[j].Title
	})
}
