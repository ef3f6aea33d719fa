package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCSRFSetsCookieOnGet(t *testing.T) {
	handler := CSRF(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/catalogs", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}

	var csrfCookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == CSRFCookieName {
			csrfCookie = c
		}
	}
	if csrfCookie == nil {
		t.Fatal("expected CSRF cookie to be set")
	}
	if len(csrfCookie.Value) != csrfTokenLength*2 {
		t.Errorf("token length: got %d, want %d", len(csrfCookie.Value), csrfTokenLength*2)
	}
	if csrfCookie.HttpOnly {
		t.Error("CSRF cookie must be readable by JS")
	}
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	handler := CSRF(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("got status %d, want 403", rr.Code)
	}
}

func TestCSRFRejectsMismatchedToken(t *testing.T) {
	handler := CSRF(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "real-token"})
	req.Header.Set(CSRFHeaderName, "forged-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("got status %d, want 403", rr.Code)
	}
}

func TestCSRFAllowsMatchingToken(t *testing.T) {
	handler := CSRF(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "matching-token"})
	req.Header.Set(CSRFHeaderName, "matching-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("got status %d, want 200", rr.Code)
	}
}

func TestGetCSRFToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token := GetCSRFToken(req); token != "" {
		t.Errorf("expected empty token without cookie, got %q", token)
	}

	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "tok123"})
	if token := GetCSRFToken(req); token != "tok123" {
		t.Errorf("got %q, want %q", token, "tok123")
	}
}
