package ai

import "fmt"

// ProviderError reports a failed generation call. It carries the upstream
// HTTP status (0 when the failure happened before a response arrived) and
// message so the CLI can surface the detail before exiting.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}
