// Package logging - structured audit trail for dispatched operations.
// Audit events are JSONL records written alongside the category logs so a
// session's request/response history can be replayed or grepped.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AuditEventType defines the type of audit event.
type AuditEventType string

const (
	// Dispatcher lifecycle
	AuditDispatchStart    AuditEventType = "dispatch_start"
	AuditDispatchComplete AuditEventType = "dispatch_complete"
	AuditDispatchError    AuditEventType = "dispatch_error"

	// Pipeline stages
	AuditClassified AuditEventType = "classified"
	AuditRendered   AuditEventType = "rendered"
	AuditLookupHit  AuditEventType = "lookup_hit"
	AuditLookupMiss AuditEventType = "lookup_miss"
	AuditRewrite    AuditEventType = "rewrite_applied"
)

// AuditEvent represents one structured audit record.
type AuditEvent struct {
	Timestamp  int64                  `json:"ts"` // Unix milliseconds
	EventType  AuditEventType         `json:"event"`
	RequestID  string                 `json:"req"`
	Operation  string                 `json:"op"`
	Success    bool                   `json:"success"`
	DurationMs int64                  `json:"dur_ms,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Message    string                 `json:"msg,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

var (
	auditFile *os.File
	auditMu   sync.Mutex
)

// InitAudit initializes the audit logging system.
// No-op unless debug mode is enabled.
func InitAudit() error {
	if !IsDebugMode() {
		return nil
	}

	auditMu.Lock()
	defer auditMu.Unlock()

	if auditFile != nil {
		return nil // Already initialized
	}

	date := time.Now().Format("2006-01-02")
	auditPath := filepath.Join(logsDir, fmt.Sprintf("%s_audit.log", date))

	file, err := os.OpenFile(auditPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	auditFile = file

	header := fmt.Sprintf("# Audit log started at %s\n", time.Now().Format(time.RFC3339))
	auditFile.WriteString(header)

	return nil
}

// CloseAudit closes the audit log file.
func CloseAudit() {
	auditMu.Lock()
	defer auditMu.Unlock()

	if auditFile != nil {
		auditFile.Close()
		auditFile = nil
	}
}

// AuditRecord writes one audit event. Silently drops the event if the audit
// log is not initialized (production mode).
func AuditRecord(event AuditEvent) {
	auditMu.Lock()
	defer auditMu.Unlock()

	if auditFile == nil {
		return
	}

	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	auditFile.Write(append(data, '\n'))
}

// AuditDispatch records a completed dispatch with duration and outcome.
func AuditDispatch(requestID, operation string, success bool, elapsed time.Duration, errMsg string) {
	eventType := AuditDispatchComplete
	if !success {
		eventType = AuditDispatchError
	}
	AuditRecord(AuditEvent{
		EventType:  eventType,
		RequestID:  requestID,
		Operation:  operation,
		Success:    success,
		DurationMs: elapsed.Milliseconds(),
		Error:      errMsg,
	})
}
