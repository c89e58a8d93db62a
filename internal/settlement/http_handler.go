package settlement

import (
	"net/http"
	"strconv"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/httpx"
	"github.com/shopspring/decimal"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type refundRequest struct {
	TransactionID string          `json:"transaction_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

// Pay handles POST /api/late_fee/{patron_id}/{book_id}/pay
// @Summary Pay the late fee of a loan
// @Tags payments
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /api/late_fee/{patron_id}/{book_id}/pay [post]
func (h *HTTPHandler) Pay(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(r.PathValue("book_id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Book ID must be an integer", nil)
		return
	}

	receipt, err := h.service.PayLateFees(r.Context(), r.PathValue("patron_id"), bookID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, receipt, nil)
}

// Refund handles POST /api/refunds
// @Summary Refund a late fee payment
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /api/refunds [post]
func (h *HTTPHandler) Refund(w http.ResponseWriter, r *http.Request) {
	var req refundRequest
	if !httpx.BindJSON(w, r, &req) {
		return
	}

	receipt, err := h.service.RefundLateFeePayment(r.Context(), req.TransactionID, req.Amount)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, receipt, nil)
}

// Status handles GET /api/payments/{transaction_id}
func (h *HTTPHandler) Status(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.VerifyPayment(r.Context(), r.PathValue("transaction_id"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, report, nil)
}
