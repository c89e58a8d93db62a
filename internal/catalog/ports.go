package catalog

import (
	"context"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=catalog

// Repository is the book side of the catalog store.
type Repository interface {
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	GetByISBN(ctx context.Context, isbn string) (entity.Book, error)
	Insert(ctx context.Context, book *entity.Book) error
	List(ctx context.Context) ([]entity.Book, error)
	Search(ctx context.Context, q SearchQuery) ([]entity.Book, error)
}
