package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bimsite/internal/domain"
)

type stubVerifier struct {
	accept string
}

func (s *stubVerifier) Verify(token string) error {
	if token == s.accept {
		return nil
	}
	return domain.ErrUnauthorized
}

func protected(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return RequireAdmin(&stubVerifier{accept: "good-token"})(next), &called
}

func TestRequireAdminMissingHeader(t *testing.T) {
	h, called := protected(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/ai-config", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if *called {
		t.Error("handler must not run without a token")
	}
}

func TestRequireAdminInvalidToken(t *testing.T) {
	h, called := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ai-config", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if *called {
		t.Error("handler must not run with an invalid token")
	}
}

func TestRequireAdminValidToken(t *testing.T) {
	h, called := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ai-config", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !*called {
		t.Error("handler should have run")
	}
}

func TestRequireAdminRejectsNonBearerScheme(t *testing.T) {
	h, _ := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ai-config", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
