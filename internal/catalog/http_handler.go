package catalog

import (
	"net/http"
	"strconv"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type addBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int    `json:"total_copies"`
}

// List handles GET /books
// @Summary List the catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]interface{}{"total": len(books)})
}

// Create handles POST /books
// @Summary Add a book to the catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if !httpx.BindJSON(w, r, &req) {
		return
	}

	res, err := h.svc.AddBook(r.Context(), NewBook{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, res.Book, map[string]interface{}{"message": res.Message})
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Book ID must be a positive integer", nil)
		return
	}

	book, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, book, nil)
}

// Search handles GET /search?q=&type=
// @Summary Search the catalog
// @Tags catalog
// @Produce json
// @Param q query string true "Search term"
// @Param type query string false "title, author or isbn" default(title)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	term := query.Get("q")
	field := SearchField(query.Get("type"))
	if field == "" {
		field = SearchByTitle
	}

	if term == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Search term is required", nil)
		return
	}

	books, err := h.svc.Search(r.Context(), term, field)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]interface{}{
		"search_term": term,
		"search_type": string(field),
		"count":       len(books),
	})
}
