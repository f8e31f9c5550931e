package model

// Curve is a sampled parameter curve attached to a voice part. Xs and Ys are
// parallel; Xs never decreases.
type Curve struct {
	Abbr string `yaml:"abbr" json:"abbr"`
	Xs   []int  `yaml:"xs" json:"xs"`
	Ys   []int  `yaml:"ys" json:"ys"`
}

// Set records a sample at x carrying y. prevX and prevY describe the segment
// leading into the sample: when prevX lies past the last recorded sample an
// anchor is inserted there first, so a held step followed by a ramp stays
// distinguishable from a plain ramp. Positions are kept monotonic by
// clamping; setting the current last position overwrites its value.
func (c *Curve) Set(x, y, prevX, prevY int) {
	if n := len(c.Xs); n > 0 {
		last := c.Xs[n-1]
		if prevX > last && prevX < x {
			c.Xs = append(c.Xs, prevX)
			c.Ys = append(c.Ys, prevY)
		}
		if x < c.Xs[len(c.Xs)-1] {
			x = c.Xs[len(c.Xs)-1]
		}
	}
	if n := len(c.Xs); n > 0 && c.Xs[n-1] == x {
		c.Ys[n-1] = y
		return
	}
	c.Xs = append(c.Xs, x)
	c.Ys = append(c.Ys, y)
}

func (c *Curve) IsEmpty() bool {
	return len(c.Xs) == 0
}

// Sample returns the curve value at position x: the value of the last sample
// at or before x, or 0 before the first sample.
func (c *Curve) Sample(x int) int {
	res := 0
	for i, cx := range c.Xs {
		if cx > x {
			break
		}
		res = c.Ys[i]
	}
	return res
}
