package pipeline

import (
	"errors"
	"fmt"

	"github.com/sells-group/leadgen-cli/pkg/places"
)

// SearchError is the fatal pagination error: the search endpoint answered
// with a status other than the recognized non-error codes. The walk stops
// immediately; summaries accumulated before the failure are still returned.
type SearchError struct {
	Status  places.Status
	Message string
}

func (e *SearchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("search failed with status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("search failed with status %s", e.Status)
}

// CredentialProblem reports whether the failure points at the API key or
// entitlement rather than the query. Diagnostic only: the termination path
// is the same either way.
func (e *SearchError) CredentialProblem() bool {
	return e.Status.Denied()
}

// AsSearchError unwraps a SearchError from an error chain.
func AsSearchError(err error) (*SearchError, bool) {
	var se *SearchError
	ok := errors.As(err, &se)
	return se, ok
}
