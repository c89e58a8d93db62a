// Package payment defines the contract of the external payment gateway used
// to settle late fees, and an in-process simulator implementing it.
package payment

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment.go -destination=mock_gateway.go -package=payment

const (
	// TransactionPrefix starts every transaction id the gateway issues.
	TransactionPrefix = "txn_"

	StatusCompleted = "completed"
	StatusNotFound  = "not_found"
)

// MaxAmount is the largest single charge the gateway accepts.
var MaxAmount = decimal.NewFromInt(1000)

// Charge is the outcome of a payment attempt. A declined payment is not an
// error: Success is false and Message says why.
type Charge struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message"`
}

type Refund struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type StatusReport struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// Gateway is the payment service boundary. Implementations return an error
// only when the call itself could not be carried out.
type Gateway interface {
	ProcessPayment(ctx context.Context, patronID string, amount decimal.Decimal, description string) (Charge, error)
	RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal) (Refund, error)
	VerifyPaymentStatus(ctx context.Context, transactionID string) (StatusReport, error)
}

// ValidTransactionID reports whether id has the shape of a gateway-issued id.
func ValidTransactionID(id string) bool {
	return strings.HasPrefix(id, TransactionPrefix)
}
