package morphology

import (
	"context"

	"github.com/poiesic/prosecheck/core"
)

// Provider expands a keyphrase into the forms of each of its content words.
// Implementations must be safe for concurrent use.
type Provider interface {
	// TopicForms returns one form list per content word of the keyphrase,
	// in keyphrase order. Each list contains the word itself.
	// Returns ErrUnsupportedLocale if the provider has no data for the locale.
	TopicForms(ctx context.Context, keyphrase, locale string) (*core.TopicForms, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, keyphrase, locale string) (*core.TopicForms, error)

// TopicForms calls f.
func (f ProviderFunc) TopicForms(ctx context.Context, keyphrase, locale string) (*core.TopicForms, error) {
	return f(ctx, keyphrase, locale)
}
