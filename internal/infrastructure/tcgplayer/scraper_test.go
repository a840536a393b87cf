package tcgplayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaults(t *testing.T) {
	t.Run("fills zero values", func(t *testing.T) {
		got := withDefaults(Config{})

		assert.Equal(t, "https://www.tcgplayer.com/", got.BaseURL)
		assert.Equal(t, 2500*time.Millisecond, got.RenderDelay)
		assert.Equal(t, 12, got.RatePerMinute)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		got := withDefaults(Config{
			BaseURL:       "http://localhost:9222/",
			BrowserBin:    "/usr/bin/chromium-browser",
			RenderDelay:   time.Second,
			RatePerMinute: 3,
		})

		assert.Equal(t, "http://localhost:9222/", got.BaseURL)
		assert.Equal(t, "/usr/bin/chromium-browser", got.BrowserBin)
		assert.Equal(t, time.Second, got.RenderDelay)
		assert.Equal(t, 3, got.RatePerMinute)
	})

	t.Run("negative rate falls back to the default", func(t *testing.T) {
		got := withDefaults(Config{RatePerMinute: -1})
		assert.Equal(t, 12, got.RatePerMinute)
	})
}
