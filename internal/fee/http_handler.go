package fee

import (
	"net/http"
	"strconv"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/httpx"
)

type HTTPHandler struct {
	calc *Calculator
}

func NewHTTPHandler(calc *Calculator) *HTTPHandler {
	return &HTTPHandler{calc: calc}
}

// Get handles GET /api/late_fee/{patron_id}/{book_id}
// @Summary Late fee for a borrowed book
// @Tags fees
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/late_fee/{patron_id}/{book_id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(r.PathValue("book_id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Book ID must be an integer", nil)
		return
	}

	res, err := h.calc.Calculate(r.Context(), r.PathValue("patron_id"), bookID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}
