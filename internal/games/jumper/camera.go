package jumper

// Camera is the view into the world. It follows a target, moving only when
// the target leaves a dead zone centred on the view.
type Camera struct {
	ScrollX, ScrollY float64 // World position of the view's top-left corner
	Width, Height    float64
	DeadzoneW        float64
	DeadzoneH        float64
}

// CenterOn scrolls so (x, y) is in the middle of the view.
func (c *Camera) CenterOn(x, y float64) {
	c.ScrollX = x - c.Width/2
	c.ScrollY = y - c.Height/2
}

// Follow scrolls the minimum needed to keep (x, y) inside the dead zone.
// A zero-height dead zone pins the target to the vertical centre.
func (c *Camera) Follow(x, y float64) {
	c.ScrollX = follow(c.ScrollX, x, c.Width, c.DeadzoneW)
	c.ScrollY = follow(c.ScrollY, y, c.Height, c.DeadzoneH)
}

func follow(scroll, target, view, zone float64) float64 {
	lo := scroll + (view-zone)/2
	hi := lo + zone
	switch {
	case target < lo:
		return target - (view-zone)/2
	case target > hi:
		return target - (view-zone)/2 - zone
	default:
		return scroll
	}
}

// Bottom returns the world y of the view's bottom edge.
func (c *Camera) Bottom() float64 {
	return c.ScrollY + c.Height
}
