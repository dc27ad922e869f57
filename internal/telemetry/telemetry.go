// Package telemetry provides the structured-logging helper used by the
// filter package's DecodeContext and PrintContext. It generalizes the timing/tracing wrapper
// the teacher LDAP client keeps in internal/ldap/logger.go (LogOperation)
// to any synchronous, single-shot operation.
package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Operation runs fn, logging its start, completion, duration, and a fresh
// correlation ID under the given subsystem. Because tflog no-ops until a
// caller has installed a provider/root logger onto ctx, this is safe to
// call unconditionally from a pure library with no logging host attached.
func Operation(ctx context.Context, subsystem, name string, fields map[string]any, fn func() error) error {
	if fields == nil {
		fields = make(map[string]any, 3)
	}
	fields["operation"] = name
	fields["correlation_id"] = uuid.NewString()

	start := time.Now()
	tflog.SubsystemDebug(ctx, subsystem, "starting operation", fields)

	err := fn()

	fields["duration_ms"] = time.Since(start).Milliseconds()
	if err != nil {
		fields["error"] = err.Error()
		tflog.SubsystemError(ctx, subsystem, "operation failed", fields)
	} else {
		tflog.SubsystemDebug(ctx, subsystem, "operation completed", fields)
	}
	return err
}
