package shared

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

// PathID parses a positive numeric URL parameter, answering 400 itself when it is malformed.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		FailValidation(w, middleware.GetRequestID(r.Context()), []ValidationIssue{{Field: name, Reason: "must be a positive integer"}})
		return 0, false
	}
	return id, true
}

// QueryInt reports ok=false with a 400 already written when the parameter is present but not an integer.
func QueryInt(w http.ResponseWriter, r *http.Request, name string) (int64, bool, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		FailValidation(w, middleware.GetRequestID(r.Context()), []ValidationIssue{{Field: name, Reason: "must be an integer"}})
		return 0, false, false
	}
	return value, true, true
}

func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		requestID := middleware.GetRequestID(r.Context())
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", requestID)
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return false
	}
	return true
}

// Deleted writes the {"success": bool} body used by every delete operation.
func Deleted(w http.ResponseWriter, r *http.Request, deleted bool) {
	api.Success(w, map[string]bool{"success": deleted}, middleware.GetRequestID(r.Context()))
}

func ClientIP(r *http.Request) string {
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}
