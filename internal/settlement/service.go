// Package settlement charges and refunds late fees through a payment
// gateway. The gateway is outside the trust boundary: its errors and panics
// stop here and come back as Adapter failures.
package settlement

import (
	"context"
	"fmt"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/apperr"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/fee"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/patron"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/payment"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentReceipt struct {
	PatronID      string          `json:"patron_id"`
	BookID        int64           `json:"book_id"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
	Message       string          `json:"message"`
}

type RefundReceipt struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Message       string          `json:"message"`
}

type Service struct {
	fees    FeeCalculator
	books   BookFinder
	gateway payment.Gateway
	logger  *zap.Logger
}

func NewService(fees FeeCalculator, books BookFinder, gateway payment.Gateway, logger *zap.Logger) *Service {
	return &Service{
		fees:    fees,
		books:   books,
		gateway: gateway,
		logger:  logger,
	}
}

// PayLateFees charges the current late fee of a patron's loan. A fee that
// cannot be calculated counts as nothing to pay, and the gateway is not
// called in that case.
func (s *Service) PayLateFees(ctx context.Context, patronID string, bookID int64) (PaymentReceipt, error) {
	if err := patron.ValidateID(patronID); err != nil {
		return PaymentReceipt{}, err
	}

	res, err := s.fees.Calculate(ctx, patronID, bookID)
	if err != nil || !res.FeeAmount.IsPositive() {
		return PaymentReceipt{}, apperr.Conflict(apperr.CodeNoLateFees, "No late fees to pay for this book.")
	}

	book, err := s.books.GetByID(ctx, bookID)
	if errors.Is(err, entity.ErrBookNotFound) {
		return PaymentReceipt{}, apperr.NotFound(apperr.CodeBookNotFound, "Book not found.")
	}
	if err != nil {
		return PaymentReceipt{}, apperr.Storage("Database error occurred while loading the book.", err)
	}

	var charge payment.Charge
	err = s.guard("process_payment", func() error {
		var err error
		charge, err = s.gateway.ProcessPayment(ctx, patronID, res.FeeAmount,
			fmt.Sprintf("Late fees for '%s'", book.Title))
		return err
	})
	if err != nil {
		s.logger.Warn("payment gateway error",
			zap.String("patron_id", patronID),
			zap.Int64("book_id", bookID),
			zap.Error(err),
		)
		return PaymentReceipt{}, apperr.Adapter(apperr.CodeGatewayError, "Payment processing error: "+err.Error(), err)
	}
	if !charge.Success {
		s.logger.Warn("payment declined",
			zap.String("patron_id", patronID),
			zap.Int64("book_id", bookID),
			zap.String("reason", charge.Message),
		)
		return PaymentReceipt{}, apperr.Adapter(apperr.CodePaymentDeclined, "Payment failed: "+charge.Message, nil)
	}

	s.logger.Info("late fee paid",
		zap.String("patron_id", patronID),
		zap.Int64("book_id", bookID),
		zap.String("amount", res.FeeAmount.StringFixed(2)),
		zap.String("transaction_id", charge.TransactionID),
	)
	return PaymentReceipt{
		PatronID:      patronID,
		BookID:        bookID,
		Amount:        res.FeeAmount,
		TransactionID: charge.TransactionID,
		Message:       "Payment successful! " + charge.Message,
	}, nil
}

// RefundLateFeePayment refunds part or all of a late fee payment. The amount
// may not exceed the fee cap.
func (s *Service) RefundLateFeePayment(ctx context.Context, transactionID string, amount decimal.Decimal) (RefundReceipt, error) {
	if !payment.ValidTransactionID(transactionID) {
		return RefundReceipt{}, apperr.Validation(apperr.CodeInvalidTransaction, "Invalid transaction ID.")
	}
	if !amount.IsPositive() {
		return RefundReceipt{}, apperr.Validation(apperr.CodeInvalidAmount, "Refund amount must be greater than 0.")
	}
	if amount.GreaterThan(fee.MaxFee) {
		return RefundReceipt{}, apperr.Validation(apperr.CodeInvalidAmount, "Refund amount exceeds maximum late fee.")
	}

	var refund payment.Refund
	err := s.guard("refund_payment", func() error {
		var err error
		refund, err = s.gateway.RefundPayment(ctx, transactionID, amount)
		return err
	})
	if err != nil {
		s.logger.Warn("refund gateway error", zap.String("transaction_id", transactionID), zap.Error(err))
		return RefundReceipt{}, apperr.Adapter(apperr.CodeGatewayError, "Refund processing error: "+err.Error(), err)
	}
	if !refund.Success {
		s.logger.Warn("refund declined",
			zap.String("transaction_id", transactionID),
			zap.String("reason", refund.Message),
		)
		return RefundReceipt{}, apperr.Adapter(apperr.CodePaymentDeclined, "Refund failed: "+refund.Message, nil)
	}

	s.logger.Info("late fee refunded",
		zap.String("transaction_id", transactionID),
		zap.String("amount", amount.StringFixed(2)),
	)
	return RefundReceipt{
		TransactionID: transactionID,
		Amount:        amount,
		Message:       refund.Message,
	}, nil
}

func (s *Service) VerifyPayment(ctx context.Context, transactionID string) (payment.StatusReport, error) {
	var report payment.StatusReport
	err := s.guard("verify_payment_status", func() error {
		var err error
		report, err = s.gateway.VerifyPaymentStatus(ctx, transactionID)
		return err
	})
	if err != nil {
		return payment.StatusReport{}, apperr.Adapter(apperr.CodeGatewayError, "Payment status lookup error: "+err.Error(), err)
	}
	return report, nil
}

// guard runs a gateway call, turning a panic into an error.
func (s *Service) guard(op string, call func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("payment gateway panicked",
				zap.String("op", op),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			err = errors.Errorf("%v", r)
		}
	}()
	return call()
}
