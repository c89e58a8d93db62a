package report

import (
	"context"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=report

type Store interface {
	ListOpenLoans(ctx context.Context, patronID string) ([]entity.LoanDetail, error)
	ListHistory(ctx context.Context, patronID string) ([]entity.LoanDetail, error)
}
