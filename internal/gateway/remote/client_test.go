package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"fintrack/internal/core"
	"fintrack/internal/gateway"
)

func TestListTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Data/getAlldata", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "ok",
			"data": []map[string]any{
				{"_id": "abc", "name": "income", "source": "Salary", "amount": 1200.0, "date": "2024-01-01", "icon": "💰"},
				{"_id": "def", "name": "expense", "source": "Rent", "amount": -800.0, "date": "2024-01-02", "icon": "💸"},
			},
		})
	}))
	defer srv.Close()

	cli, err := New(srv.URL)
	assert.Nil(t, err)

	txns, err := cli.ListTransactions(context.Background())
	assert.Nil(t, err)
	assert.Len(t, txns, 2)
	assert.Equal(t, "abc", txns[0].ID)
	assert.Equal(t, "Salary", txns[0].Source)
	assert.Equal(t, "income", txns[0].Category)
	assert.Equal(t, -800.0, txns[1].Amount)
}

func TestListTransactionsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "session expired"})
	}))
	defer srv.Close()

	cli, _ := New(srv.URL)
	_, err := cli.ListTransactions(context.Background())
	assert.True(t, errors.Is(err, gateway.ErrRejected))
	assert.Contains(t, err.Error(), "session expired")
}

func TestAddTransaction(t *testing.T) {
	var got addDataRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Data/addData", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "added", "id": "srv-1"})
	}))
	defer srv.Close()

	cli, _ := New(srv.URL)
	id, err := cli.AddTransaction(context.Background(), core.Transaction{
		ID:       "local-1",
		Source:   "Groceries",
		Amount:   -42.5,
		Date:     "2024-03-01",
		Icon:     "🛒",
		Category: "expense",
	})
	assert.Nil(t, err)
	// Server-assigned id wins over the optimistic local one.
	assert.Equal(t, "srv-1", id)
	assert.Equal(t, "expense", got.Name)
	assert.Equal(t, "Groceries", got.Source)
	assert.Equal(t, -42.5, got.Amount)
}

func TestAddTransactionKeepsLocalIDWithoutEcho(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "added"})
	}))
	defer srv.Close()

	cli, _ := New(srv.URL)
	id, err := cli.AddTransaction(context.Background(), core.Transaction{
		ID: "local-1", Source: "x", Amount: 5, Date: "2024-01-01",
	})
	assert.Nil(t, err)
	assert.Equal(t, "local-1", id)
}

func TestAddTransactionRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "quota exceeded"})
	}))
	defer srv.Close()

	cli, _ := New(srv.URL)
	_, err := cli.AddTransaction(context.Background(), core.Transaction{
		Source: "x", Amount: 5, Date: "2024-01-01",
	})
	assert.True(t, errors.Is(err, gateway.ErrRejected))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAddTransactionValidatesLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	cli, _ := New(srv.URL)
	_, err := cli.AddTransaction(context.Background(), core.Transaction{Source: "", Amount: 5, Date: "2024-01-01"})
	assert.Equal(t, core.ErrEmptySource, err)
	assert.False(t, called, "validation failures must never reach the network")
}

func TestGetRetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok", "data": []any{}})
	}))
	defer srv.Close()

	cli, _ := New(srv.URL)
	txns, err := cli.ListTransactions(context.Background())
	assert.Nil(t, err)
	assert.Empty(t, txns)
	assert.Equal(t, 3, attempts)
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := New("not-a-url")
	assert.NotNil(t, err)
}
