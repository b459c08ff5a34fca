package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCarouselAdvanceWraps(t *testing.T) {
	c := NewCarousel(3, time.Hour)

	assert.Equal(t, 0, c.Index())
	c.Advance()
	c.Advance()
	c.Advance()
	assert.Equal(t, 0, c.Index())
}

func TestCarouselHoverPausesTimerAdvance(t *testing.T) {
	c := NewCarousel(3, time.Hour)

	c.HoverEnter()
	c.advance() // what the ticker would do
	assert.Equal(t, 0, c.Index(), "timer advance is paused while hovering")

	// manual navigation still works while hovering
	c.Advance()
	assert.Equal(t, 1, c.Index())

	c.HoverLeave()
	c.advance()
	assert.Equal(t, 2, c.Index())
}

func TestCarouselTickerAdvances(t *testing.T) {
	c := NewCarousel(2, 5*time.Millisecond)
	c.Start()
	defer c.Stop()

	assert.Eventually(t, func() bool {
		return c.Index() != 0
	}, time.Second, time.Millisecond)
}

func TestCarouselStartStopIdempotent(t *testing.T) {
	c := NewCarousel(2, time.Hour)
	c.Start()
	c.Start()
	c.Stop()
	c.Stop()

	empty := NewCarousel(0, time.Hour)
	empty.Start()
	empty.Advance()
	assert.Equal(t, 0, empty.Index())
	empty.Stop()
}
