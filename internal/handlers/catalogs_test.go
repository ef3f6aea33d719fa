package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCatalogsHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/catalogs", nil)
	rr := httptest.NewRecorder()
	Catalogs(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"design_patterns", "ui_libraries", "fonts",
		"auth_providers", "database_providers", "payment_gateways",
		"ai_tools", "themes",
	} {
		if _, ok := body[key]; !ok {
			t.Errorf("catalog response missing %q", key)
		}
	}
}
