package filter

import "sync"

var (
	objectClassPresentOnce sync.Once
	objectClassPresent     *Filter
)

// PresentFilter returns a Present filter for the given attribute
// description. It is a plain constructor; ObjectClassPresent below is the
// one cached instance the original decoder maintained as a process-wide
// singleton (spec.md §5).
func PresentFilter(attribute string) *Filter {
	return Present(attribute)
}

// ObjectClassPresent returns the canonical "(objectclass=*)" filter,
// lazily built once and shared across callers. Sharing is safe because
// Filter values are immutable once constructed (spec.md §3, §5).
func ObjectClassPresent() *Filter {
	objectClassPresentOnce.Do(func() {
		objectClassPresent = PresentFilter("objectclass")
	})
	return objectClassPresent
}
