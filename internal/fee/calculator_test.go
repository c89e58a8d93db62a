package fee

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/apperr"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loanDetail(id, bookID int64, borrowed time.Time, returned *time.Time) entity.LoanDetail {
	return entity.LoanDetail{
		Loan: entity.Loan{
			ID:         id,
			PatronID:   "123456",
			BookID:     bookID,
			BorrowDate: borrowed,
			DueDate:    borrowed.Add(14 * 24 * time.Hour),
			ReturnDate: returned,
		},
		Title: "Book",
	}
}

func TestCalculator_Calculate(t *testing.T) {
	ctx := context.Background()
	borrowed := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("invalid patron skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		calc := NewCalculator(NewMockStore(ctrl))

		_, err := calc.Calculate(ctx, "12ab56", 1)
		assert.Equal(t, apperr.CodeInvalidPatronID, apperr.CodeOf(err))
	})

	t.Run("book not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := NewMockStore(ctrl)
		calc := NewCalculator(store)

		store.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entity.Book{}, entity.ErrBookNotFound)

		_, err := calc.Calculate(ctx, "123456", 1)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Equal(t, "Book not found.", apperr.MessageOf(err))
	})

	t.Run("never borrowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := NewMockStore(ctrl)
		calc := NewCalculator(store)

		store.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entity.Book{ID: 1}, nil)
		store.EXPECT().ListHistory(gomock.Any(), "123456").Return([]entity.LoanDetail{loanDetail(1, 2, borrowed, nil)}, nil)

		_, err := calc.Calculate(ctx, "123456", 1)
		assert.Equal(t, apperr.CodeNotBorrowed, apperr.CodeOf(err))
		assert.Equal(t, "Book not borrowed by patron.", apperr.MessageOf(err))
	})

	t.Run("history failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := NewMockStore(ctrl)
		calc := NewCalculator(store)

		store.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entity.Book{ID: 1}, nil)
		store.EXPECT().ListHistory(gomock.Any(), "123456").Return(nil, errors.New("timeout"))

		_, err := calc.Calculate(ctx, "123456", 1)
		assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	})

	t.Run("uses the most recent loan of the book", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := NewMockStore(ctrl)
		calc := NewCalculator(store)

		oldReturn := borrowed.Add(30 * 24 * time.Hour)
		recentBorrow := borrowed.Add(60 * 24 * time.Hour)
		recentReturn := recentBorrow.Add(14*24*time.Hour + 5*24*time.Hour)

		store.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entity.Book{ID: 1}, nil)
		store.EXPECT().ListHistory(gomock.Any(), "123456").Return([]entity.LoanDetail{
			loanDetail(1, 1, borrowed, &oldReturn),
			loanDetail(2, 1, recentBorrow, &recentReturn),
		}, nil)

		res, err := calc.Calculate(ctx, "123456", 1)
		require.NoError(t, err)
		assert.Equal(t, StatusCalculated, res.Status)
		assert.Equal(t, 5, res.DaysOverdue)
		assert.Equal(t, "2.50", res.FeeAmount.StringFixed(2))
	})

	t.Run("open loan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := NewMockStore(ctrl)
		calc := NewCalculator(store)

		store.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entity.Book{ID: 1}, nil)
		store.EXPECT().ListHistory(gomock.Any(), "123456").Return([]entity.LoanDetail{loanDetail(1, 1, borrowed, nil)}, nil)

		res, err := calc.Calculate(ctx, "123456", 1)
		require.NoError(t, err)
		assert.Equal(t, StatusNotReturned, res.Status)
		assert.True(t, res.FeeAmount.IsZero())
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	handler := NewHTTPHandler(NewCalculator(store))

	t.Run("bad book id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/late_fee/123456/x", nil)
		r.SetPathValue("patron_id", "123456")
		r.SetPathValue("book_id", "x")
		handler.Get(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("fee calculated", func(t *testing.T) {
		borrowed := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		returned := borrowed.Add(24 * 24 * time.Hour)
		store.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entity.Book{ID: 3}, nil)
		store.EXPECT().ListHistory(gomock.Any(), "123456").Return([]entity.LoanDetail{loanDetail(1, 3, borrowed, &returned)}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/late_fee/123456/3", nil)
		r.SetPathValue("patron_id", "123456")
		r.SetPathValue("book_id", "3")
		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"days_overdue":10`)
		assert.Contains(t, w.Body.String(), `"status":"fee_calculated"`)
	})
}
