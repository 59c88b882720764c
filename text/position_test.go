package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePosition(t *testing.T) {
	tests := []struct {
		name          string
		title         string
		raw           int
		functionWords []string
		locale        string
		want          int
	}{
		{
			name:          "leading article collapses",
			title:         "The Kitchen Sink Guide",
			raw:           4,
			functionWords: []string{"the"},
			locale:        "en",
			want:          0,
		},
		{
			name:          "content word before match",
			title:         "Best Kitchen Sink Reviews",
			raw:           5,
			functionWords: []string{"the"},
			locale:        "en",
			want:          5,
		},
		{
			name:          "several function words",
			title:         "On the Kitchen Sink",
			raw:           7,
			functionWords: []string{"on", "the"},
			locale:        "en",
			want:          0,
		},
		{
			name:          "hyphenated prefix splits",
			title:         "The-Kitchen Sink",
			raw:           4,
			functionWords: []string{"the"},
			locale:        "en",
			want:          0,
		},
		{
			name:          "position zero untouched",
			title:         "Kitchen Sink",
			raw:           0,
			functionWords: []string{"the"},
			locale:        "en",
			want:          0,
		},
		{
			name:          "not found untouched",
			title:         "Kitchen Sink",
			raw:           -1,
			functionWords: []string{"the"},
			locale:        "en",
			want:          -1,
		},
		{
			name:          "out of range untouched",
			title:         "Sink",
			raw:           40,
			functionWords: []string{"the"},
			locale:        "en",
			want:          40,
		},
		{
			name:          "multibyte prefix",
			title:         "Über die Küche",
			raw:           9,
			functionWords: []string{"über", "die"},
			locale:        "de",
			want:          0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePosition(tt.title, tt.raw, tt.functionWords, tt.locale))
		})
	}
}

func TestNormalizePosition_NoFunctionWords(t *testing.T) {
	for _, p := range []int{-1, 0, 1, 4, 17, 100} {
		assert.Equal(t, p, NormalizePosition("The Kitchen Sink Guide", p, nil, "en"))
		assert.Equal(t, p, NormalizePosition("The Kitchen Sink Guide", p, []string{}, "en"))
	}
}
