package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/patron"
	"github.com/shopspring/decimal"
)

// Simulator is a Gateway with no ledger behind it. Every well formed request
// succeeds after an optional artificial latency.
type Simulator struct {
	latency time.Duration
	now     func() time.Time
}

type SimulatorOption func(*Simulator)

func WithLatency(d time.Duration) SimulatorOption {
	return func(s *Simulator) { s.latency = d }
}

func WithSimulatorClock(now func() time.Time) SimulatorOption {
	return func(s *Simulator) { s.now = now }
}

func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) ProcessPayment(ctx context.Context, patronID string, amount decimal.Decimal, description string) (Charge, error) {
	if err := s.wait(ctx); err != nil {
		return Charge{}, err
	}

	if !amount.IsPositive() {
		return Charge{Message: "Invalid amount: must be greater than 0"}, nil
	}
	if amount.GreaterThan(MaxAmount) {
		return Charge{Message: "Payment declined: amount exceeds limit"}, nil
	}
	if !patron.IsValidID(patronID) {
		return Charge{Message: "Invalid patron ID format"}, nil
	}

	return Charge{
		Success:       true,
		TransactionID: fmt.Sprintf("%s%s_%d", TransactionPrefix, patronID, s.now().Unix()),
		Message:       fmt.Sprintf("Payment of $%s processed successfully", amount.StringFixed(2)),
	}, nil
}

func (s *Simulator) RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal) (Refund, error) {
	if err := s.wait(ctx); err != nil {
		return Refund{}, err
	}

	if !ValidTransactionID(transactionID) {
		return Refund{Message: "Invalid transaction ID"}, nil
	}
	if !amount.IsPositive() {
		return Refund{Message: "Invalid refund amount"}, nil
	}

	return Refund{
		Success: true,
		Message: fmt.Sprintf("Refund of $%s processed successfully. Refund ID: refund_%s",
			amount.StringFixed(2), uuid.NewString()),
	}, nil
}

func (s *Simulator) VerifyPaymentStatus(ctx context.Context, transactionID string) (StatusReport, error) {
	if err := ctx.Err(); err != nil {
		return StatusReport{}, err
	}
	status := StatusCompleted
	if !ValidTransactionID(transactionID) {
		status = StatusNotFound
	}
	return StatusReport{TransactionID: transactionID, Status: status}, nil
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
