package nav

// ScrollRequest asks the presentation surface to scroll so that slide Index
// is at the top. Offset is Index * viewport height.
type ScrollRequest struct {
	Index  int
	Offset int
}

// Controller is the single source of truth for the active slide. The scroll
// offset is the authoritative readout; keyboard and explicit selection only
// produce scroll targets.
type Controller struct {
	count  int
	height int
	offset int
	active int

	target   int
	inFlight bool
}

// New returns a controller for count slides on a viewport of the given
// height in rows.
func New(count, height int) *Controller {
	c := &Controller{}
	c.Reset(count, height)
	return c
}

// Reset starts over for a new deck: slide 0, no animation.
func (c *Controller) Reset(count, height int) {
	c.count = count
	c.height = maxInt(height, 1)
	c.offset = 0
	c.active = 0
	c.target = 0
	c.inFlight = false
}

// Len returns the number of slides.
func (c *Controller) Len() int { return c.count }

// Last returns the highest valid index.
func (c *Controller) Last() int { return maxInt(c.count-1, 0) }

// Active returns the index derived from the latest scroll offset.
func (c *Controller) Active() int { return c.active }

// Offset returns the latest scroll offset in rows.
func (c *Controller) Offset() int { return c.offset }

// Height returns the viewport height in rows.
func (c *Controller) Height() int { return c.height }

// InFlight reports whether a smooth scroll has not reached its target.
func (c *Controller) InFlight() bool { return c.inFlight }

// Target returns the index of the in-flight smooth scroll, if any.
func (c *Controller) Target() (int, bool) {
	return c.target, c.inFlight
}

// OnScroll records a scroll position and derives the active index by
// rounding offset / height. It never moves the scroll position.
func (c *Controller) OnScroll(offset int) int {
	c.offset = maxInt(offset, 0)
	c.active = c.clamp((2*c.offset + c.height) / (2 * c.height))
	return c.active
}

// Advance requests the next slide.
func (c *Controller) Advance() ScrollRequest {
	return c.request(c.base() + 1)
}

// Retreat requests the previous slide.
func (c *Controller) Retreat() ScrollRequest {
	return c.request(c.base() - 1)
}

// Select requests a specific slide, as from a navigation entry or deep link.
func (c *Controller) Select(index int) ScrollRequest {
	return c.request(index)
}

// First requests slide 0.
func (c *Controller) First() ScrollRequest { return c.request(0) }

// End requests the last slide.
func (c *Controller) End() ScrollRequest { return c.request(c.Last()) }

// Step moves an in-flight smooth scroll one animation frame closer to its
// target and records the new offset. It returns the new offset and whether
// the animation is still running.
func (c *Controller) Step() (int, bool) {
	if !c.inFlight {
		return c.offset, false
	}
	goal := c.target * c.height
	remaining := goal - c.offset
	if absInt(remaining) <= 1 {
		c.OnScroll(goal)
		c.inFlight = false
		return c.offset, false
	}
	delta := remaining / easeDivisor
	if delta == 0 {
		if remaining > 0 {
			delta = 1
		} else {
			delta = -1
		}
	}
	c.OnScroll(c.offset + delta)
	return c.offset, true
}

// Settle finishes any in-flight smooth scroll immediately.
func (c *Controller) Settle() int {
	if c.inFlight {
		c.OnScroll(c.target * c.height)
		c.inFlight = false
	}
	return c.offset
}

// Interrupt abandons an in-flight smooth scroll, leaving the offset where it
// is. Used when the user scrolls the surface directly.
func (c *Controller) Interrupt() {
	c.inFlight = false
}

// Resize changes the viewport height and keeps the active slide aligned.
func (c *Controller) Resize(height int) int {
	c.Settle()
	c.height = maxInt(height, 1)
	return c.OnScroll(c.active * c.height)
}

// base is the index keyboard requests are relative to. While a smooth
// scroll is in flight the pending target wins over the transient active
// index, so rapid presses accumulate.
func (c *Controller) base() int {
	if c.inFlight {
		return c.target
	}
	return c.active
}

func (c *Controller) request(index int) ScrollRequest {
	index = c.clamp(index)
	c.target = index
	c.inFlight = index*c.height != c.offset
	return ScrollRequest{Index: index, Offset: index * c.height}
}

func (c *Controller) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if last := c.Last(); index > last {
		return last
	}
	return index
}

// easeDivisor controls the smooth-scroll easing: each frame covers a third
// of the remaining distance.
const easeDivisor = 3

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
