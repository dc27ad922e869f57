package filter

import "github.com/creasty/defaults"

// Options bounds the decoder against pathological input. spec.md names no
// configuration surface for the codec itself, but leaving nesting depth and
// input length unbounded turns attacker-controlled filter strings (e.g. a
// filter with tens of thousands of nested "(&(&(&...") groups) into a stack
// exhaustion or memory-exhaustion vector. A zero value for either field
// disables that particular bound.
type Options struct {
	// MaxDepth is the maximum nesting depth of compound (And/Or/Not)
	// filters. Zero disables the check.
	MaxDepth int `default:"64"`
	// MaxLength is the maximum accepted length, in bytes, of the input
	// filter string. Zero disables the check.
	MaxLength int `default:"65536"`
}

// DefaultOptions returns the Options a bare Decode call uses, populated via
// the `default` struct tags above.
func DefaultOptions() Options {
	opts := Options{}
	// Set can only fail if passed a non-pointer, which never happens here.
	_ = defaults.Set(&opts)
	return opts
}
