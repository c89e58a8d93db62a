// Package fee computes late fees from loan records. The schedule is a pure
// function of the due and return dates; Calculator adds the store lookups
// needed to find the record for a patron and book.
package fee

import (
	"time"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	day = 24 * time.Hour

	// Days billed at the short-term rate before the daily rate applies.
	shortTermDays = 7
)

var (
	shortTermRate = decimal.RequireFromString("0.50")
	dailyRate     = decimal.RequireFromString("1.00")

	// MaxFee caps the fee of a single loan. Refunds reuse it as their ceiling.
	MaxFee = decimal.RequireFromString("15.00")
)

type Status string

const (
	StatusCalculated  Status = "fee_calculated"
	StatusNotOverdue  Status = "not_overdue"
	StatusNotReturned Status = "not_returned"
)

// Message is the human readable form shown to patrons.
func (s Status) Message() string {
	switch s {
	case StatusCalculated:
		return "Fee amount successfully calculated."
	case StatusNotOverdue:
		return "Book is not overdue."
	case StatusNotReturned:
		return "Book not returned."
	default:
		return string(s)
	}
}

type Result struct {
	FeeAmount   decimal.Decimal `json:"fee_amount"`
	DaysOverdue int             `json:"days_overdue"`
	Status      Status          `json:"status"`
	Message     string          `json:"message"`
}

func newResult(status Status, days int, amount decimal.Decimal) Result {
	return Result{
		FeeAmount:   amount,
		DaysOverdue: days,
		Status:      status,
		Message:     status.Message(),
	}
}

// Schedule maps whole days overdue to a fee: 0.50 per day for the first
// seven days, then 1.00 per day, capped at MaxFee.
func Schedule(daysOverdue int) decimal.Decimal {
	if daysOverdue <= 0 {
		return decimal.Zero
	}
	if daysOverdue <= shortTermDays {
		return shortTermRate.Mul(decimal.NewFromInt(int64(daysOverdue)))
	}
	fee := shortTermRate.Mul(decimal.NewFromInt(shortTermDays)).
		Add(dailyRate.Mul(decimal.NewFromInt(int64(daysOverdue - shortTermDays))))
	return decimal.Min(fee, MaxFee)
}

// DaysOverdue counts whole days between due and returned. Partial days are
// truncated, never rounded up.
func DaysOverdue(due, returned time.Time) int {
	if !returned.After(due) {
		return 0
	}
	return int(returned.Sub(due) / day)
}

// Assess computes the fee of a single loan record.
func Assess(loan entity.Loan) Result {
	if loan.ReturnDate == nil {
		return newResult(StatusNotReturned, 0, decimal.Zero)
	}
	days := DaysOverdue(loan.DueDate, *loan.ReturnDate)
	if days == 0 {
		return newResult(StatusNotOverdue, 0, decimal.Zero)
	}
	return newResult(StatusCalculated, days, Schedule(days))
}

// Accrued is the fee an open loan would owe if it were returned at now.
// Closed loans report their final fee.
func Accrued(loan entity.Loan, now time.Time) decimal.Decimal {
	if loan.ReturnDate != nil {
		return Assess(loan).FeeAmount
	}
	return Schedule(DaysOverdue(loan.DueDate, now))
}
