package assess

import "errors"

var (
	// ErrMorphologyRequired is returned when a morphology provider is not provided.
	ErrMorphologyRequired = errors.New("morphology provider required")
)
