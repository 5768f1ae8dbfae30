package paginate

// Counter is an integer value clamped into a fixed inclusive range.
// The zero value is a counter fixed at 0; construct with Between.
//
// Counter is a pure value type: every operation returns a new Counter
// with the invariant lower <= value <= upper re-established by
// clamping, never by reporting an error.
type Counter struct {
	value int
	lower int
	upper int
}

// Between returns a Counter bound to [low, high] with its value at low.
// A degenerate range (high < low) is repaired by raising high to low.
func Between(low, high int) Counter {
	if high < low {
		high = low
	}
	return Counter{value: low, lower: low, upper: high}
}

// Set returns a Counter whose value is n clamped into the bound range.
func (c Counter) Set(n int) Counter {
	if n < c.lower {
		n = c.lower
	}
	if n > c.upper {
		n = c.upper
	}
	c.value = n
	return c
}

// Increment returns a Counter advanced by step, clamped at the upper bound.
func (c Counter) Increment(step int) Counter {
	return c.Set(c.value + step)
}

// Decrement returns a Counter moved back by step, clamped at the lower bound.
func (c Counter) Decrement(step int) Counter {
	return c.Set(c.value - step)
}

// Value returns the current value.
func (c Counter) Value() int { return c.value }

// Lower returns the inclusive lower bound.
func (c Counter) Lower() int { return c.lower }

// Upper returns the inclusive upper bound.
func (c Counter) Upper() int { return c.upper }
