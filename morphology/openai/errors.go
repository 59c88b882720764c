package openai

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when the retry count is not positive.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmptyResponse is returned when the model returns no choices.
	ErrEmptyResponse = errors.New("model returned no choices")

	// ErrGenerationFailed wraps the last error after all attempts failed.
	ErrGenerationFailed = errors.New("forms generation failed")
)
