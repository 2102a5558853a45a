package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"momentum/internal/coach"
	"momentum/internal/momentum"
	"momentum/internal/router"
	"momentum/internal/store"
	"momentum/internal/trend"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	logger := zap.NewNop()
	engine := momentum.NewEngine(s, s, logger)
	rt := router.New(s, engine, logger)
	reporter := trend.NewReporter(s)
	c := coach.New(coach.Config{}, logger)

	srv, err := NewServer(s, engine, rt, reporter, c, logger, Config{Host: "127.0.0.1", Port: 0})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestParseEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/parse", `{"text":"drank 500ml of water"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		Domain     string  `json:"domain"`
		Confidence float64 `json:"confidence"`
		Hydration  *struct {
			AmountML float64 `json:"amount_ml"`
		} `json:"hydration"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Domain != "hydration_add" || got.Confidence != 0.9 {
		t.Fatalf("unexpected classification: %+v", got)
	}
	if got.Hydration == nil || got.Hydration.AmountML != 500 {
		t.Fatalf("unexpected payload: %+v", got.Hydration)
	}

	// Parse must not persist anything.
	rec = doJSON(t, srv, http.MethodGet, "/api/v1/momentum/2026-08-01", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for untouched date, got %d", rec.Code)
	}
}

func TestParseRejectsEmptyText(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodPost, "/api/v1/parse", `{"text":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestIntentEndpointAppliesAndSnapshots(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/intents",
		`{"text":"slept 8 hours","date":"2026-08-01"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		Result struct {
			Decision string `json:"decision"`
			Snapshot *struct {
				Score     int `json:"score"`
				Breakdown struct {
					Sleep int `json:"sleep"`
				} `json:"breakdown"`
			} `json:"snapshot"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Result.Decision != "applied" {
		t.Fatalf("expected applied, got %+v", got.Result)
	}
	if got.Result.Snapshot == nil || got.Result.Snapshot.Breakdown.Sleep != 15 {
		t.Fatalf("expected full sleep credit, got %+v", got.Result.Snapshot)
	}

	// The snapshot is now readable.
	rec = doJSON(t, srv, http.MethodGet, "/api/v1/momentum/2026-08-01", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 reading snapshot, got %d", rec.Code)
	}
}

func TestIntentEndpointConfirmationGate(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/intents",
		`{"text":"spent $15 on lunch","date":"2026-08-01"}`)
	var got struct {
		Result struct {
			Decision string `json:"decision"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Result.Decision != "rejected" {
		t.Fatalf("expected rejected without confirmation, got %q", got.Result.Decision)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/intents",
		`{"text":"spent $15 on lunch","date":"2026-08-01","confirmed":true}`)
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Result.Decision != "applied" {
		t.Fatalf("expected applied with confirmation, got %q", got.Result.Decision)
	}
}

func TestIntentEndpointRejectsBadDate(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodPost, "/api/v1/intents",
		`{"text":"slept 8 hours","date":"01-08-2026"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", rec.Code)
	}
}

func TestRecomputeAndWeakest(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/momentum/2026-08-01/recompute", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var snap struct {
		Score int `json:"score"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Empty day: finance full credit only.
	if snap.Score != 10 {
		t.Fatalf("expected score 10 on empty day, got %d", snap.Score)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/momentum/2026-08-01/weakest", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var weakest WeakestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &weakest); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if weakest.Category != momentum.CategoryNutrition || weakest.Score != 0 {
		t.Fatalf("expected nutrition 0 as weakest on empty day, got %+v", weakest)
	}
}

func TestWeeklyTrendEndpoint(t *testing.T) {
	srv := testServer(t)

	for _, date := range []string{"2026-08-01", "2026-08-02"} {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/momentum/"+date+"/recompute", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("recompute %s: %d", date, rec.Code)
		}
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/trend/weekly", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var sum trend.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sum.Days != 2 || sum.AverageScore != 10 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/settings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var settings momentum.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if settings.StepGoal != 10000 {
		t.Fatalf("expected default step goal, got %d", settings.StepGoal)
	}

	settings.StepGoal = 12000
	body, _ := json.Marshal(settings)
	rec = doJSON(t, srv, http.MethodPut, "/api/v1/settings", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/settings", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if settings.StepGoal != 12000 {
		t.Fatalf("expected updated step goal, got %d", settings.StepGoal)
	}
}

func TestDigestEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/momentum/2026-08-01/recompute", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("recompute: %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/momentum/2026-08-01/digest", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got DigestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(got.Digest, "Weakest link: nutrition") {
		t.Fatalf("unexpected digest:\n%s", got.Digest)
	}
}
