package remote

import "errors"

// ErrUnavailable indicates the listing API kept throttling until the retry
// budget ran out. Callers leave the affected view empty rather than crash.
var ErrUnavailable = errors.New("listing service unavailable")

// IsUnavailable checks if an error indicates retry exhaustion on throttling.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
