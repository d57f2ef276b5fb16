package audit

import (
	"context"
)

// AuditLogger records security-relevant events.
// The tool ships a stdout/stderr logger implementation; the interface
// leaves room for sinks with retention.
type AuditLogger interface {
	// Log records an event.
	// ctx: context of the invocation
	// action: what happened (e.g., "secret.generate")
	// actor: who did it
	// resource: what was affected (the secret file path)
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}
