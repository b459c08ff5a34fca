package catalog

import (
	"sync"
	"time"
)

// DefaultCarouselInterval is the auto-advance period of the home carousel.
const DefaultCarouselInterval = 5 * time.Second

// Carousel is the rotating banner's auto-advance state. Every interval it
// moves to the next slide unless the pointer is hovering it, in which case
// advancing pauses until the pointer leaves. The carousel never touches
// data state; it is purely cosmetic.
type Carousel struct {
	mu       sync.Mutex
	count    int
	index    int
	paused   bool
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// NewCarousel creates a stopped carousel over count slides.
func NewCarousel(count int, interval time.Duration) *Carousel {
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	return &Carousel{count: count, interval: interval}
}

// Start begins auto-advancing. Calling Start on a running carousel is a
// no-op.
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker != nil || c.count == 0 {
		return
	}
	c.ticker = time.NewTicker(c.interval)
	c.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				c.advance()
			case <-done:
				return
			}
		}
	}(c.ticker, c.done)
}

// Stop halts auto-advancing.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.ticker = nil
}

// HoverEnter pauses advancing while the pointer is over the carousel.
func (c *Carousel) HoverEnter() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// HoverLeave resumes advancing.
func (c *Carousel) HoverLeave() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

// Index returns the currently shown slide.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Advance moves to the next slide immediately. Manual navigation works
// even while hovering; only the timer respects the pause.
func (c *Carousel) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return
	}
	c.index = (c.index + 1) % c.count
}

func (c *Carousel) advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused || c.count == 0 {
		return
	}
	c.index = (c.index + 1) % c.count
}
