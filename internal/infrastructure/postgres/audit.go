package postgres

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// AuditEntry describes one auth event for the audit trail.
type AuditEntry struct {
	UserID    string
	Username  string
	Action    string
	IP        string
	UserAgent string
	Metadata  map[string]any
}

// AuditLogger writes best-effort audit rows. A nil logger or nil db is a
// no-op so handlers never need to guard the call site.
type AuditLogger struct {
	db     DB
	logger *logrus.Logger
}

func NewAuditLogger(db DB, logger *logrus.Logger) *AuditLogger {
	return &AuditLogger{db: db, logger: logger}
}

func (a *AuditLogger) Record(ctx context.Context, e AuditEntry) {
	if a == nil || a.db == nil {
		return
	}
	var md []byte
	if e.Metadata != nil {
		md, _ = json.Marshal(e.Metadata)
	}
	var uid any
	if e.UserID != "" {
		uid = e.UserID
	}
	_, err := a.db.Exec(ctx, `
		INSERT INTO audit_logs (user_id, username, action, ip, user_agent, metadata)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, ''), $6)
	`, uid, e.Username, e.Action, e.IP, e.UserAgent, md)
	if err != nil && a.logger != nil {
		a.logger.WithError(err).WithField("action", e.Action).Warn("audit insert failed")
	}
}
