package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/morphology"
)

// MockProvider is a test double for morphology.Provider.
// It allows custom behavior injection via function fields.
type MockProvider struct {
	// TopicFormsFunc is called by TopicForms if set.
	// If nil, each content word gets itself and a naive plural.
	TopicFormsFunc func(ctx context.Context, keyphrase, locale string) (*core.TopicForms, error)

	mu        sync.Mutex
	callCount int
}

var _ morphology.Provider = (*MockProvider)(nil)

// NewMockProvider creates a mock provider with default behavior.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// WithTopicFormsFunc sets custom TopicForms behavior.
func (m *MockProvider) WithTopicFormsFunc(fn func(ctx context.Context, keyphrase, locale string) (*core.TopicForms, error)) *MockProvider {
	m.TopicFormsFunc = fn
	return m
}

// TopicForms returns forms for the keyphrase's content words.
func (m *MockProvider) TopicForms(ctx context.Context, keyphrase, locale string) (*core.TopicForms, error) {
	m.mu.Lock()
	m.callCount++
	fn := m.TopicFormsFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, keyphrase, locale)
	}

	words := morphology.ContentWords(keyphrase, locale)
	forms := make([][]string, 0, len(words))
	for _, word := range words {
		if strings.HasSuffix(word, "s") {
			forms = append(forms, []string{word})
			continue
		}
		forms = append(forms, []string{word, word + "s"})
	}
	return &core.TopicForms{KeyphraseForms: forms}, nil
}

// CallCount returns the number of times TopicForms was called.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.TopicFormsFunc = nil
}
