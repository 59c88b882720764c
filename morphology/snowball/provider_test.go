package snowball

import (
	"context"
	"testing"

	"github.com/poiesic/prosecheck/morphology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_English(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	forms, err := p.TopicForms(context.Background(), "kitchen sinks", "en_US")
	require.NoError(t, err)
	require.Len(t, forms.KeyphraseForms, 2)

	assert.Equal(t, "kitchen", forms.KeyphraseForms[0][0])
	assert.Contains(t, forms.KeyphraseForms[0], "kitchens")
	assert.Equal(t, "sinks", forms.KeyphraseForms[1][0])
	assert.Contains(t, forms.KeyphraseForms[1], "sink")
}

func TestProvider_DropsFunctionWords(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	forms, err := p.TopicForms(context.Background(), "the kitchen", "en")
	require.NoError(t, err)
	require.Len(t, forms.KeyphraseForms, 1)
	assert.Equal(t, "kitchen", forms.KeyphraseForms[0][0])
}

func TestProvider_UnsupportedLocale(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	_, err = p.TopicForms(context.Background(), "keuken", "nl")
	assert.ErrorIs(t, err, morphology.ErrUnsupportedLocale)
}

func TestProvider_NilLogger(t *testing.T) {
	_, err := NewProvider(WithLogger(nil))
	assert.Error(t, err)
}

func TestSupports(t *testing.T) {
	assert.True(t, Supports("en"))
	assert.True(t, Supports("fr_FR"))
	assert.True(t, Supports("nb-NO"))
	assert.False(t, Supports("nl"))
	assert.False(t, Supports(""))
}

func TestNewForms(t *testing.T) {
	tests := []struct {
		name       string
		lang       string
		word, stem string
		want       []string
	}{
		{"english plural", "en", "sink", "sink", []string{"sink", "sinks"}},
		{"english singular from plural", "en", "sinks", "sink", []string{"sinks", "sink"}},
		{"english es plural", "en", "box", "box", []string{"box", "boxes"}},
		{"english y plural", "en", "party", "parti", []string{"party", "parti", "parties"}},
		{"english ies singular", "en", "parties", "parti", []string{"parties", "parti", "party"}},
		{"french plural", "fr", "cuisine", "cuisin", []string{"cuisine", "cuisin", "cuisines", "cuisins"}},
		{"no inflections", "ru", "кухня", "кухн", []string{"кухня", "кухн"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewForms(tt.lang, tt.word, tt.stem))
		})
	}
}
