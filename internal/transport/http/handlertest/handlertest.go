// Package handlertest mounts handlers behind the production middleware for httptest-based tests.
package handlertest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/audit"
	"hris/internal/domain/auth"
	"hris/internal/platform/authz"
	"hris/internal/transport/http/middleware"
)

type Registrar interface {
	RegisterRoutes(r chi.Router)
}

// Guard returns a guard backed by the real role policy.
func Guard(t testing.TB) *middleware.Guard {
	t.Helper()
	enforcer, err := authz.New()
	if err != nil {
		t.Fatalf("authz: %v", err)
	}
	return middleware.NewGuard(enforcer)
}

// Do sends one request as the given role. An empty role sends it anonymously.
func Do(t testing.TB, h Registrar, role, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if role != "" {
				req = req.WithContext(middleware.WithUser(req.Context(), auth.UserContext{UserID: 1, Email: "tester@hris.local", Role: role}))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api/v1", h.RegisterRoutes)

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func Decode(t testing.TB, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return env
}

// Data decodes the envelope's data into out.
func Data(t testing.TB, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	env := Decode(t, rec)
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v (body %s)", err, rec.Body.String())
	}
}

// Auditor keeps recorded entries in memory.
type Auditor struct {
	mu      sync.Mutex
	Entries []audit.Entry
}

func (a *Auditor) Record(_ context.Context, e audit.Entry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Entries = append(a.Entries, e)
	return nil
}

func (a *Auditor) Actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.Entries))
	for _, e := range a.Entries {
		out = append(out, e.Action)
	}
	return out
}
