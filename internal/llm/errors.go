package llm

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNoChoices = errors.New("no choices in provider response")

// ProviderError is a rejection from the provider that carried a JSON body.
// Callers forward StatusCode and Body to their own client unchanged.
type ProviderError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, string(e.Body))
}

// returns the provider rejection wrapped in err, if any
func AsProviderError(err error) (*ProviderError, bool) {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr, true
	}

	return nil, false
}
