package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker(t *testing.T) {
	t.Run("reports at intervals", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := newProgressTracker(&buf, 10, 5)
		tracker.Start()

		tracker.Increment(3)
		assert.Empty(t, buf.String())

		tracker.Increment(3)
		assert.Contains(t, buf.String(), "Imported: 6/10 (60.0%)")
	})

	t.Run("caps at total", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := newProgressTracker(&buf, 4, 100)
		tracker.Start()
		tracker.Increment(10)
		assert.Equal(t, 4, tracker.Current())
	})

	t.Run("finish prints final line", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := newProgressTracker(&buf, 3, 100)
		tracker.Start()
		tracker.Increment(1)
		tracker.Finish()
		assert.Contains(t, buf.String(), "Imported: 3/3 (100.0%)")
		assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
	})

	t.Run("ignored before start", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := newProgressTracker(&buf, 3, 1)
		tracker.Increment(2)
		tracker.Finish()
		assert.Empty(t, buf.String())
		assert.Equal(t, 0, tracker.Current())
	})

	t.Run("empty import", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := newProgressTracker(&buf, 0, 0)
		tracker.Start()
		tracker.Finish()
		assert.Contains(t, buf.String(), "Imported: 0/0 (0.0%)")
	})
}
