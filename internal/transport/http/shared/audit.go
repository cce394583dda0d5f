package shared

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"hris/internal/domain/audit"
	"hris/internal/transport/http/middleware"
)

// Auditor is satisfied by *audit.Service.
type Auditor interface {
	Record(ctx context.Context, e audit.Entry) error
}

// RecordAudit stamps the entry with the caller, request id and client address. A failed write is
// logged and never fails the request.
func RecordAudit(r *http.Request, auditor Auditor, action, entityType, entityID string, before, after any) {
	if auditor == nil {
		return
	}
	entry := audit.Entry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		RequestID:  middleware.GetRequestID(r.Context()),
		IP:         ClientIP(r),
		Before:     before,
		After:      after,
	}
	if user, ok := middleware.GetUser(r.Context()); ok {
		entry.ActorID = strconv.FormatInt(user.UserID, 10)
	}
	if err := auditor.Record(r.Context(), entry); err != nil {
		slog.Warn("audit record failed", "action", action, "entityId", entityID, "err", err)
	}
}
