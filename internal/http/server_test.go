package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/export"
	exportmem "fintrack/internal/export/memory"
	gwmem "fintrack/internal/gateway/memory"
	"fintrack/internal/store"
)

func seedTransactions() []core.Transaction {
	return []core.Transaction{
		{ID: "1", Source: "Salary", Amount: 1500, Date: "2024-03-01", Icon: "💼", Category: "income"},
		{ID: "2", Source: "Rent", Amount: -800, Date: "2024-03-02", Icon: "🏠", Category: "expense"},
		{ID: "3", Source: "Groceries", Amount: -42.5, Date: "2024-03-03", Icon: "🛒", Category: "expense"},
	}
}

func newTestServer(gw *gwmem.Store) (*Server, *store.Store) {
	st := store.New()
	txns, _ := gw.ListTransactions(context.Background())
	st.Load(txns)
	srv := NewServer(ServerConfig{
		Addr:       ":0",
		Gateway:    gw,
		Store:      st,
		Serializer: export.NewSerializer(exportmem.New()),
	})
	return srv, st
}

func decodeEnvelope(t *testing.T, body string) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, body)
	}
	return envelope
}

func TestHealthAndReady(t *testing.T) {
	srv, _ := newTestServer(gwmem.New())
	defer srv.Shutdown(context.Background())

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.Handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestDashboardTotals(t *testing.T) {
	srv, _ := newTestServer(gwmem.NewSeeded(seedTransactions()))
	defer srv.Shutdown(context.Background())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("dashboard status=%d", rr.Code)
	}

	envelope := decodeEnvelope(t, rr.Body.String())
	dashboard, ok := envelope["dashboard"].(map[string]any)
	if !ok {
		t.Fatalf("missing dashboard payload: %v", envelope)
	}
	totals := dashboard["totals"].(map[string]any)
	if totals["income"].(float64) != 1500 {
		t.Errorf("income = %v, want 1500", totals["income"])
	}
	if totals["expenses"].(float64) != 842.5 {
		t.Errorf("expenses = %v, want 842.5", totals["expenses"])
	}
	if totals["balance"].(float64) != 657.5 {
		t.Errorf("balance = %v, want 657.5", totals["balance"])
	}
}

func TestDashboardCaching(t *testing.T) {
	srv, _ := newTestServer(gwmem.NewSeeded(seedTransactions()))
	defer srv.Shutdown(context.Background())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("dashboard status=%d", rr.Code)
	}
	if srv.dashboardCache.Size() != 1 {
		t.Errorf("dashboard cache size = %d, want 1", srv.dashboardCache.Size())
	}

	// A successful POST must drop the memoized views.
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/income",
		strings.NewReader(`{"source":"Bonus","amount":"200","date":"2024-03-04"}`))
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("income post status=%d body=%s", rr.Code, rr.Body.String())
	}
	if srv.dashboardCache.Size() != 0 {
		t.Errorf("dashboard cache size after append = %d, want 0", srv.dashboardCache.Size())
	}
}

func TestSubmitEntryValidation(t *testing.T) {
	srv, st := newTestServer(gwmem.New())
	defer srv.Shutdown(context.Background())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/expenses",
		strings.NewReader(`{"source":"","amount":"abc","date":""}`))
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}

	envelope := decodeEnvelope(t, rr.Body.String())
	errs, ok := envelope["errors"].(map[string]any)
	if !ok {
		t.Fatalf("missing errors map: %v", envelope)
	}
	for _, field := range []string{"source", "amount", "date"} {
		if errs[field] != true {
			t.Errorf("errors[%q] = %v, want true", field, errs[field])
		}
	}
	if st.Len() != 0 {
		t.Errorf("store len = %d, want 0 after validation failure", st.Len())
	}
}

func TestSubmitEntrySuccess(t *testing.T) {
	srv, st := newTestServer(gwmem.New())
	defer srv.Shutdown(context.Background())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/expenses",
		strings.NewReader(`{"source":"Groceries","amount":"42.5","date":"2024-03-01","icon":"🛒"}`))
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	envelope := decodeEnvelope(t, rr.Body.String())
	tx := envelope["transaction"].(map[string]any)
	if tx["amount"].(float64) != -42.5 {
		t.Errorf("amount = %v, want -42.5 (expense sign forced)", tx["amount"])
	}
	if st.Len() != 1 {
		t.Fatalf("store len = %d, want 1", st.Len())
	}
}

func TestSubmitEntryGatewayRejection(t *testing.T) {
	gw := gwmem.New()
	gw.RejectWith("quota exceeded")
	srv, st := newTestServer(gw)
	defer srv.Shutdown(context.Background())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/income",
		strings.NewReader(`{"source":"Salary","amount":"1500","date":"2024-03-01"}`))
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}

	envelope := decodeEnvelope(t, rr.Body.String())
	msg, _ := envelope["message"].(string)
	if !strings.Contains(msg, "quota exceeded") {
		t.Errorf("message = %q, want backend reason surfaced", msg)
	}
	draft, ok := envelope["draft"].(map[string]any)
	if !ok || draft["source"] != "Salary" || draft["amount"] != "1500" {
		t.Errorf("draft fields not echoed back: %v", envelope["draft"])
	}
	if st.Len() != 0 {
		t.Errorf("store len = %d, want 0 after rejection", st.Len())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(gwmem.New())
	defer srv.Shutdown(context.Background())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/income", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
	if allow := rr.Header().Get("Allow"); allow != "GET, POST" {
		t.Errorf("Allow header = %q, want GET, POST", allow)
	}
}

func TestSectionSwitch(t *testing.T) {
	srv, st := newTestServer(gwmem.NewSeeded(seedTransactions()))
	defer srv.Shutdown(context.Background())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/section",
		strings.NewReader(`{"section":"Income"}`))
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("section status=%d", rr.Code)
	}
	if st.ActiveSection() != core.SectionIncome {
		t.Errorf("active section = %v, want Income", st.ActiveSection())
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/view", nil)
	srv.Handler.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Active-Section"); got != "Income" {
		t.Errorf("X-Active-Section = %q, want Income", got)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/section",
		strings.NewReader(`{"section":"Bogus"}`))
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown section, got %d", rr.Code)
	}
}

func TestExportSyncFallback(t *testing.T) {
	gw := gwmem.NewSeeded(seedTransactions())
	srv, _ := newTestServer(gw)
	defer srv.Shutdown(context.Background())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/export/expenses", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("export status=%d body=%s", rr.Code, rr.Body.String())
	}

	envelope := decodeEnvelope(t, rr.Body.String())
	if rows := envelope["rows"].(float64); rows != 2 {
		t.Errorf("rows = %v, want 2", rows)
	}
}

type capturingPublisher struct {
	messages []*amqp.ExportRequestMessage
}

func (p *capturingPublisher) PublishExportRequest(_ context.Context, msg *amqp.ExportRequestMessage) error {
	p.messages = append(p.messages, msg)
	return nil
}

func TestExportEnqueued(t *testing.T) {
	gw := gwmem.NewSeeded(seedTransactions())
	st := store.New()
	txns, _ := gw.ListTransactions(context.Background())
	st.Load(txns)

	pub := &capturingPublisher{}
	srv := NewServer(ServerConfig{
		Addr:      ":0",
		Gateway:   gw,
		Store:     st,
		Publisher: pub,
	})
	defer srv.Shutdown(context.Background())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/export/income", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rr.Code)
	}
	if len(pub.messages) != 1 {
		t.Fatalf("published messages = %d, want 1", len(pub.messages))
	}
	if pub.messages[0].Direction != core.DirectionIncome {
		t.Errorf("direction = %v, want income", pub.messages[0].Direction)
	}
}
