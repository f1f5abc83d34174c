package qmeans

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a clustering run is configured
// with an unusable k, iteration count, or point set. Returned errors wrap
// this sentinel with the specific violation; check with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
