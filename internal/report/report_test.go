package report

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
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, now time.Time) (*Service, *MockStore) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	svc := NewService(store)
	svc.now = func() time.Time { return now }
	return svc, store
}

func TestService_PatronStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("invalid patron id", func(t *testing.T) {
		svc, _ := newService(t, now)

		rep, err := svc.PatronStatus(ctx, "12a456")

		assert.Equal(t, apperr.CodeInvalidPatronID, apperr.CodeOf(err))
		assert.Equal(t, "Invalid patron ID. Must be exactly 6 digits.", rep.Status)
		assert.NotNil(t, rep.CurrentLoans)
		assert.Empty(t, rep.CurrentLoans)
		assert.NotNil(t, rep.History)
		assert.True(t, rep.TotalFeesOwed.IsZero())
	})

	t.Run("aggregates open loans and history", func(t *testing.T) {
		svc, store := newService(t, now)
		returned := now.Add(-48 * time.Hour)
		day := 24 * time.Hour
		onTime := testutil.OpenLoan("123456", entity.Book{ID: 1, Title: "Wicked", Author: "Gregory Maguire"}, now.Add(-3*day))
		// ten days late: 7 * 0.50 + 3 * 1.00
		late := testutil.OpenLoan("123456", entity.Book{ID: 2, Title: "Dune", Author: "Frank Herbert"}, now.Add(-24*day))
		closed := testutil.ClosedLoan("123456", entity.Book{ID: 3, Title: "Emma", Author: "Jane Austen"}, now.Add(-40*day), returned)
		store.EXPECT().ListOpenLoans(ctx, "123456").Return([]entity.LoanDetail{onTime, late}, nil)
		store.EXPECT().ListHistory(ctx, "123456").Return([]entity.LoanDetail{onTime, late, closed}, nil)

		rep, err := svc.PatronStatus(ctx, "123456")

		require.NoError(t, err)
		assert.Equal(t, "Successfully retrieved patron's status report.", rep.Status)
		assert.Equal(t, 2, rep.NumCurrentLoans)
		require.Len(t, rep.CurrentLoans, 2)
		assert.False(t, rep.CurrentLoans[0].IsOverdue)
		assert.True(t, rep.CurrentLoans[1].IsOverdue)
		assert.True(t, rep.TotalFeesOwed.Equal(decimal.RequireFromString("6.50")), rep.TotalFeesOwed.String())
		require.Len(t, rep.History, 3)
		require.NotNil(t, rep.History[2].ReturnDate)
		assert.True(t, rep.History[2].ReturnDate.Equal(returned))
		assert.Nil(t, rep.History[0].ReturnDate)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newService(t, now)
		store.EXPECT().ListOpenLoans(ctx, "123456").Return(nil, errors.New("conn refused"))

		rep, err := svc.PatronStatus(ctx, "123456")

		assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
		assert.Empty(t, rep.History)
	})
}

func TestHTTPHandler_PatronStatus(t *testing.T) {
	svc, store := newService(t, time.Now())
	store.EXPECT().ListOpenLoans(gomock.Any(), "000001").Return(nil, nil)
	store.EXPECT().ListHistory(gomock.Any(), "000001").Return(nil, nil)
	handler := NewHTTPHandler(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/patron_status/000001", nil)
	r.SetPathValue("patron_id", "000001")
	handler.PatronStatus(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"current_borrowed_books":[]`)
	assert.Contains(t, w.Body.String(), `"num_current_borrowed_books":0`)
}
