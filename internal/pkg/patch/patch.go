package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// OptionalString trims the pointed-to value; nil and blank become "".
func OptionalString(ptr *string) string {
	return strings.TrimSpace(Coalesce(ptr, ""))
}
