package settlement

import (
	"context"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/fee"
)

type FeeCalculator interface {
	Calculate(ctx context.Context, patronID string, bookID int64) (fee.Result, error)
}

type BookFinder interface {
	GetByID(ctx context.Context, id int64) (entity.Book, error)
}
