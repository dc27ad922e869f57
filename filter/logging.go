package filter

import (
	"context"
	"strings"

	"github.com/isometry/ldapfilter/internal/telemetry"
)

const subsystem = "filter"

// sensitiveAttributes mirrors the teacher's logger.go SanitizeFields
// denylist, adapted to the attribute descriptions most likely to carry
// credential-shaped assertion values.
var sensitiveAttributes = map[string]bool{
	"userpassword": true,
	"unicodepwd":   true,
}

// redactedValue returns "[REDACTED]" for filters whose attribute
// description looks credential-shaped, and the printed value otherwise.
func redactedValue(f *Filter) any {
	if f == nil {
		return nil
	}
	if sensitiveAttributes[strings.ToLower(f.Attribute)] {
		return "[REDACTED]"
	}
	return string(f.Value)
}

// DecodeContext behaves like Decode but logs the operation (duration,
// outcome, a fresh correlation ID) through the shared telemetry helper.
func DecodeContext(ctx context.Context, s string) (*Filter, error) {
	var f *Filter
	err := telemetry.Operation(ctx, subsystem, "decode", map[string]any{
		"input_length": len(s),
	}, func() error {
		var decodeErr error
		f, decodeErr = Decode(s)
		return decodeErr
	})
	return f, err
}

// PrintContext behaves like Print but logs the operation through the
// shared telemetry helper, redacting credential-shaped assertion values.
func PrintContext(ctx context.Context, f *Filter) string {
	var out string
	_ = telemetry.Operation(ctx, subsystem, "print", map[string]any{
		"kind":  f.Kind.String(),
		"value": redactedValue(f),
	}, func() error {
		out = Print(f)
		return nil
	})
	return out
}
