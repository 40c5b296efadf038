// Package audit provides structured security event logging. Events are
// emitted as JSON fields on the standard logger so they can be filtered
// out of the regular application log stream.
package audit

import (
	"time"

	"go.uber.org/zap"

	sqlcheck "github.com/alou/yoga-journal/pkg/sql"
)

// SecurityEventType categorizes security-relevant events for filtering.
type SecurityEventType string

const (
	// EventSQLInjectionAttempt is logged when injection screening flags a
	// free-text input.
	EventSQLInjectionAttempt SecurityEventType = "sql_injection_attempt"
)

// SecurityLogger emits security events.
type SecurityLogger struct {
	logger *zap.Logger
}

// NewSecurityLogger creates a security logger. Pass nil to disable
// emission; every method is a no-op on a nil receiver's logger.
func NewSecurityLogger(logger *zap.Logger) *SecurityLogger {
	return &SecurityLogger{logger: logger}
}

// LogInjectionAttempt records a rejected free-text input. The offending
// value is logged verbatim; it never reached a query, so the log line is
// the only place it lands.
func (s *SecurityLogger) LogInjectionAttempt(result *sqlcheck.InjectionCheckResult) {
	if s == nil || s.logger == nil || result == nil {
		return
	}

	s.logger.Warn("security event",
		zap.String("event_type", string(EventSQLInjectionAttempt)),
		zap.Time("timestamp", time.Now().UTC()),
		zap.String("field", result.FieldName),
		zap.String("fingerprint", result.Fingerprint),
		zap.String("value", result.FieldValue),
		zap.String("severity", "warning"),
	)
}
