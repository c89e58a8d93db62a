package loan

import (
	"net/http"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/httpx"
)

type HTTPHandler struct {
	engine *Engine
}

func NewHTTPHandler(engine *Engine) *HTTPHandler {
	return &HTTPHandler{engine: engine}
}

type loanRequest struct {
	PatronID string `json:"patron_id"`
	BookID   int64  `json:"book_id" validate:"gt=0"`
}

// Borrow handles POST /borrow
// @Summary Borrow a book
// @Tags loans
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /borrow [post]
func (h *HTTPHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if !httpx.BindJSON(w, r, &req) {
		return
	}

	receipt, err := h.engine.Borrow(r.Context(), req.PatronID, req.BookID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, receipt, nil)
}

// Return handles POST /return
// @Summary Return a borrowed book
// @Tags loans
// @Accept json
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /return [post]
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if !httpx.BindJSON(w, r, &req) {
		return
	}

	receipt, err := h.engine.Return(r.Context(), req.PatronID, req.BookID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, receipt, nil)
}
