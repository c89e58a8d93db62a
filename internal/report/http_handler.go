package report

import (
	"net/http"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// PatronStatus handles GET /api/patron_status/{patron_id}
// @Summary Patron status report
// @Tags reports
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/patron_status/{patron_id} [get]
func (h *HTTPHandler) PatronStatus(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.PatronStatus(r.Context(), r.PathValue("patron_id"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, rep, nil)
}
