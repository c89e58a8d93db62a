package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/payment"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/store"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool                   `json:"success"`
	Data    jsoniter.RawMessage    `json:"data"`
	Meta    map[string]interface{} `json:"meta"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := config{RateLimitRPS: 1000, RateLimitBurst: 1000, MaxBodyBytes: 1 << 20}
	srv := httptest.NewServer(newServer(ctx, cfg, zap.NewNop(), store.NewMemory(), payment.NewSimulator()))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, envelope) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	_ = jsoniter.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env
}

func TestRouting_Health(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := srv.Client().Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"), path)
	}
}

func TestRouting_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	status, _ := do(t, srv, http.MethodDelete, "/books", "")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}

func TestRouting_LibraryFlow(t *testing.T) {
	srv := newTestServer(t)

	status, env := do(t, srv, http.MethodPost, "/books",
		`{"title":"Dune","author":"Frank Herbert","isbn":"9780441172719","total_copies":1}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, `Book "Dune" has been successfully added to the catalog.`, env.Meta["message"])

	status, env = do(t, srv, http.MethodPost, "/books",
		`{"title":"Dune","author":"Frank Herbert","isbn":"9780441172719","total_copies":1}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "A book with this ISBN already exists.", env.Error.Message)

	status, env = do(t, srv, http.MethodGet, "/search?q=dune&type=title", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, env.Meta["count"])

	status, _ = do(t, srv, http.MethodPost, "/borrow", `{"patron_id":"123456","book_id":1}`)
	require.Equal(t, http.StatusCreated, status)

	status, env = do(t, srv, http.MethodPost, "/borrow", `{"patron_id":"654321","book_id":1}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "UNAVAILABLE", env.Error.Code)

	status, env = do(t, srv, http.MethodGet, "/api/late_fee/123456/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"status":"not_returned"`)

	status, env = do(t, srv, http.MethodGet, "/api/patron_status/123456", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"num_current_borrowed_books":1`)

	status, env = do(t, srv, http.MethodPost, "/api/late_fee/123456/1/pay", "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "No late fees to pay for this book.", env.Error.Message)

	status, env = do(t, srv, http.MethodPost, "/return", `{"patron_id":"123456","book_id":1}`)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Book successfully returned.")

	status, env = do(t, srv, http.MethodGet, "/books/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"available_copies":1`)
}

func TestRouting_Payments(t *testing.T) {
	srv := newTestServer(t)

	status, env := do(t, srv, http.MethodPost, "/api/refunds", `{"transaction_id":"txn_123456_1","amount":"2.00"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Refund of $2.00")

	status, env = do(t, srv, http.MethodGet, "/api/payments/txn_123456_1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"completed"`)
}
