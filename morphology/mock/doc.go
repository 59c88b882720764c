// Package mock provides a test double for morphology.Provider.
//
// The mock lets tests run without a dictionary or an LLM and gives
// controlled, deterministic forms.
//
// # Usage in Tests
//
//	// Default behavior: each content word plus a naive "s" plural
//	provider := mock.NewMockProvider()
//	forms, err := provider.TopicForms(ctx, "kitchen sink", "en")
//
//	// Custom behavior injection
//	provider = mock.NewMockProvider().
//	    WithTopicFormsFunc(func(ctx context.Context, keyphrase, locale string) (*core.TopicForms, error) {
//	        return nil, errors.New("unavailable")
//	    })
//
//	// Check call counts
//	count := provider.CallCount()
package mock
