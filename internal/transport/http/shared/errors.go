package shared

import (
	"log/slog"
	"net/http"

	"hris/internal/apperr"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

var kindStatus = map[apperr.Kind]int{
	apperr.KindNotFound:   http.StatusNotFound,
	apperr.KindValidation: http.StatusBadRequest,
	apperr.KindConflict:   http.StatusConflict,
	apperr.KindConstraint: http.StatusConflict,
}

// FailError maps a domain error onto a response. Unclassified errors become 500 with the fallback code.
func FailError(w http.ResponseWriter, r *http.Request, err error, fallbackCode, fallbackMessage string) {
	requestID := middleware.GetRequestID(r.Context())
	kind := apperr.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		slog.Error(fallbackMessage, "method", r.Method, "path", r.URL.Path, "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, fallbackCode, fallbackMessage, requestID)
		return
	}
	slog.Info("request rejected", "method", r.Method, "path", r.URL.Path, "kind", kind.String(), "err", err, "requestId", requestID)
	api.Fail(w, status, kind.String(), apperr.Message(err), requestID)
}
