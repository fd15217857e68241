package core

import (
	"fmt"
	"strings"
)

// CapabilityError reports required names the host does not provide.
// It unwraps to its Kind, so errors.Is(err, ErrMissingLayer) works.
type CapabilityError struct {
	Kind      error
	Missing   []string
	Required  []string
	Available []string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s (required: [%s], available: [%s])",
		e.Kind,
		strings.Join(e.Missing, ", "),
		strings.Join(e.Required, ", "),
		strings.Join(e.Available, ", "))
}

// Unwrap returns the kind of the error
func (e *CapabilityError) Unwrap() error {
	return e.Kind
}

// missingNames returns every name of required absent from available,
// in required order
func missingNames(required, available []string) []string {
	have := make(map[string]struct{}, len(available))
	for _, name := range available {
		have[name] = struct{}{}
	}
	var missing []string
	for _, name := range required {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
