package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dana/castmatch/internal/api/middleware"
	"github.com/dana/castmatch/internal/cache"
	"github.com/dana/castmatch/internal/domain"
)

const testCookie = "castmatch_session"

func testRouter(manager *cache.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Session(manager, testCookie))

	resultsHandler := NewResultsHandler()
	sessionHandler := NewSessionHandler()
	r.GET("/api/v1/results", resultsHandler.Results)
	r.GET("/api/v1/session/:key", sessionHandler.Get)
	r.PUT("/api/v1/session/:key", sessionHandler.Put)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "test-session"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedResults(manager *cache.Manager) {
	results := domain.ResultsData{
		Recommendations: []domain.Recommendation{
			{ActorName: "김배우", Score: 80, DetailedScores: domain.DetailedScores{Personality: 90, RoleExperience: 40, VisualMatch: 50}},
			{ActorName: "이배우", Score: 70, DetailedScores: domain.DetailedScores{Personality: 40, RoleExperience: 90, VisualMatch: 50}},
		},
		ActorDatasets: []domain.ActorRecord{
			{Name: "김배우", Agency: "bh"},
		},
		CharacterName: "강태오",
		Weights:       domain.WeightConfig{Personality: 40, RoleExperience: 35, VisualMatch: 25},
	}
	encoded, _ := json.Marshal(results)
	manager.Session("test-session").Set(domain.SessionKeyResults, encoded)
}

func TestResultsMissingData(t *testing.T) {
	manager := cache.NewManager(time.Minute)
	defer manager.Close()
	r := testRouter(manager)

	w := doRequest(r, http.MethodGet, "/api/v1/results", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if body["error"] != "result not found, please redo the analysis" {
		t.Errorf("unexpected error message %q", body["error"])
	}
}

func TestResultsCorruptData(t *testing.T) {
	manager := cache.NewManager(time.Minute)
	defer manager.Close()
	manager.Session("test-session").Set(domain.SessionKeyResults, []byte("{not json"))
	r := testRouter(manager)

	w := doRequest(r, http.MethodGet, "/api/v1/results", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "result not found") {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestResultsRerankWithWeightOverride(t *testing.T) {
	manager := cache.NewManager(time.Minute)
	defer manager.Close()
	seedResults(manager)
	r := testRouter(manager)

	// Role-heavy override must put 이배우 first despite the stored order
	w := doRequest(r, http.MethodGet, "/api/v1/results?personality=10&roleExperience=80&visualMatch=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ResultsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CharacterName != "강태오" {
		t.Errorf("unexpected character name %q", resp.CharacterName)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].ActorName != "이배우" {
		t.Errorf("expected 이배우 first after override, got %q", resp.Results[0].ActorName)
	}
	if resp.Weights.RoleExperience != 80 {
		t.Errorf("expected override weights echoed back, got %+v", resp.Weights)
	}

	// Name join resolves for 김배우 only
	for _, entry := range resp.Results {
		switch entry.ActorName {
		case "김배우":
			if entry.Actor == nil || entry.Actor.Agency != "bh" {
				t.Errorf("expected joined roster record for 김배우, got %+v", entry.Actor)
			}
		case "이배우":
			if entry.Actor != nil {
				t.Errorf("expected null join for 이배우, got %+v", entry.Actor)
			}
		}
	}
}

func TestResultsStoredWeightsByDefault(t *testing.T) {
	manager := cache.NewManager(time.Minute)
	defer manager.Close()
	seedResults(manager)
	r := testRouter(manager)

	w := doRequest(r, http.MethodGet, "/api/v1/results", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp ResultsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Stored personality-heavy weights keep 김배우 first
	if resp.Results[0].ActorName != "김배우" {
		t.Errorf("expected stored weights ranking, got %q first", resp.Results[0].ActorName)
	}
	if resp.Weights.Personality != 40 {
		t.Errorf("expected stored weights echoed back, got %+v", resp.Weights)
	}
}

func TestResultsPagination(t *testing.T) {
	manager := cache.NewManager(time.Minute)
	defer manager.Close()
	seedResults(manager)
	r := testRouter(manager)

	w := doRequest(r, http.MethodGet, "/api/v1/results?page=2&page_size=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp ResultsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 || resp.Page != 2 || resp.PageSize != 1 {
		t.Errorf("unexpected paging metadata: %+v", resp)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result on page 2, got %d", len(resp.Results))
	}

	// Out-of-range pages return an empty slice, not an error
	w = doRequest(r, http.MethodGet, "/api/v1/results?page=9&page_size=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("expected empty page, got %d results", len(resp.Results))
	}
}

func TestSessionRoundTrip(t *testing.T) {
	manager := cache.NewManager(time.Minute)
	defer manager.Close()
	r := testRouter(manager)

	payload := `{"characterInfo":"차가운 형사","processedCharacter":null}`
	w := doRequest(r, http.MethodPut, "/api/v1/session/"+domain.SessionKeyCharacter, payload)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/v1/session/"+domain.SessionKeyCharacter, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != payload {
		t.Errorf("expected stored document verbatim, got %s", w.Body.String())
	}
}

func TestSessionRejections(t *testing.T) {
	manager := cache.NewManager(time.Minute)
	defer manager.Close()
	r := testRouter(manager)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		expected int
	}{
		{name: "unknown key get", method: http.MethodGet, path: "/api/v1/session/secrets", expected: http.StatusBadRequest},
		{name: "unknown key put", method: http.MethodPut, path: "/api/v1/session/secrets", body: "{}", expected: http.StatusBadRequest},
		{name: "missing value", method: http.MethodGet, path: "/api/v1/session/" + domain.SessionKeyResults, expected: http.StatusNotFound},
		{name: "invalid json body", method: http.MethodPut, path: "/api/v1/session/" + domain.SessionKeyResults, body: "{broken", expected: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.path, tt.body)
			if w.Code != tt.expected {
				t.Errorf("%s %s = %d, expected %d", tt.method, tt.path, w.Code, tt.expected)
			}
		})
	}
}
