package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TestBook is a catalog entry with every copy on the shelf.
var TestBook = entity.Book{
	ID:              1,
	Title:           "Test Book Title",
	Author:          "Test Author",
	ISBN:            "9780000000001",
	TotalCopies:     3,
	AvailableCopies: 3,
	CreatedAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
}

const TestPatronID = "123456"

// OpenLoan builds an open loan of book that started at borrowedAt with the
// standard two week period.
func OpenLoan(patronID string, book entity.Book, borrowedAt time.Time) entity.LoanDetail {
	return entity.LoanDetail{
		Loan: entity.Loan{
			PatronID:   patronID,
			BookID:     book.ID,
			BorrowDate: borrowedAt,
			DueDate:    borrowedAt.Add(14 * 24 * time.Hour),
		},
		Title:  book.Title,
		Author: book.Author,
	}
}

// ClosedLoan is OpenLoan returned at returnedAt.
func ClosedLoan(patronID string, book entity.Book, borrowedAt, returnedAt time.Time) entity.LoanDetail {
	l := OpenLoan(patronID, book, borrowedAt)
	l.ReturnDate = &returnedAt
	return l
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	var reader io.Reader
	switch b := body.(type) {
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		bodyBytes, _ := json.Marshal(body)
		reader = bytes.NewReader(bodyBytes)
	}
	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse is a decoded response envelope.
type RecordResponse struct {
	Code    int
	Header  http.Header
	Success bool
	Data    map[string]interface{}
	Meta    map[string]interface{}
	Error   map[string]interface{}
}

// RecordHTTPResponse decodes the recorded envelope. Non-object data is left
// out of Data.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	var body struct {
		Success bool                   `json:"success"`
		Data    interface{}            `json:"data"`
		Meta    map[string]interface{} `json:"meta"`
		Error   map[string]interface{} `json:"error"`
	}
	_ = json.NewDecoder(result.Body).Decode(&body)

	data, _ := body.Data.(map[string]interface{})
	return RecordResponse{
		Code:    result.StatusCode,
		Header:  result.Header,
		Success: body.Success,
		Data:    data,
		Meta:    body.Meta,
		Error:   body.Error,
	}
}

// ErrorCode returns error.code of the envelope, or "".
func (r RecordResponse) ErrorCode() string {
	code, _ := r.Error["code"].(string)
	return code
}
