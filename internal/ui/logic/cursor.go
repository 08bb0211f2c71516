package logic

// Cursor tracks a highlighted row in a scrolling list
type Cursor struct {
	Index  int
	Offset int
}

// Move shifts the cursor by delta within total rows and keeps it inside a
// window of height rows. A cursor of -1 means nothing is highlighted;
// moving down from it lands on the first row.
func (c Cursor) Move(delta, total, height int) Cursor {
	if total <= 0 {
		return Cursor{Index: -1}
	}
	if c.Index < 0 {
		if delta <= 0 {
			return c
		}
		c.Index = 0
		delta--
	}
	c.Index += delta
	return c.Clamp(total, height)
}

// Home moves to the first row
func (c Cursor) Home(total, height int) Cursor {
	return Cursor{Index: 0}.Clamp(total, height)
}

// End moves to the last row
func (c Cursor) End(total, height int) Cursor {
	return Cursor{Index: total - 1, Offset: c.Offset}.Clamp(total, height)
}

// Clamp bounds the cursor to total rows and scrolls the window so the
// cursor stays visible.
func (c Cursor) Clamp(total, height int) Cursor {
	if total <= 0 {
		return Cursor{Index: -1}
	}
	if height < 1 {
		height = 1
	}
	if c.Index >= total {
		c.Index = total - 1
	}
	if c.Index < -1 {
		c.Index = -1
	}

	// Scroll window
	if c.Index >= 0 && c.Index < c.Offset {
		c.Offset = c.Index
	}
	if c.Index >= c.Offset+height {
		c.Offset = c.Index - height + 1
	}
	if maxOffset := total - height; c.Offset > maxOffset {
		c.Offset = maxOffset
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
	return c
}

// Visible returns the half-open range of rows shown in the window
func (c Cursor) Visible(total, height int) (int, int) {
	start := c.Offset
	if start > total {
		start = total
	}
	end := start + height
	if end > total {
		end = total
	}
	return start, end
}
