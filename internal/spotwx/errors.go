package spotwx

import (
	"errors"
	"fmt"
)

// ErrDataNotFound is returned when the response body contains no aDataSet
// assignment. It is distinct from an HTTP-level failure: the provider
// answered, but the page carried no forecast block (typically a product
// the provider renders without the tabular display).
var ErrDataNotFound = errors.New("aDataSet variable not found in response")

// InvalidArgumentError reports a request parameter that failed validation,
// along with the accepted values or format.
type InvalidArgumentError struct {
	Param string
	Hint  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Hint)
}

// StatusError reports a non-200 response from the provider. The fetch is
// not retried; the caller decides whether to run again.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}
