package logic

// Navigator keeps a cursor inside a list and the viewport that shows it
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a navigator showing height rows at a time
func NewNavigator(height int) *Navigator {
	n := &Navigator{}
	n.SetViewportHeight(height)
	return n
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the first visible row
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Height is the number of visible rows
func (n *Navigator) Height() int {
	return n.viewportHeight
}

// SetViewportHeight changes the number of visible rows
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureSelectedVisible()
}

// SetTotal updates the list length and clamps the cursor into it
func (n *Navigator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	n.total = total
	n.clamp()
	n.ensureSelectedVisible()
}

// Move moves the cursor by delta rows
func (n *Navigator) Move(delta int) {
	n.selectedIndex += delta
	n.clamp()
	n.ensureSelectedVisible()
}

// Navigate applies a named direction: up, down, pageup, pagedown, home, end
func (n *Navigator) Navigate(direction string) {
	switch direction {
	case "up":
		n.Move(-1)
	case "down":
		n.Move(1)
	case "pageup":
		n.Move(-n.viewportHeight)
	case "pagedown":
		n.Move(n.viewportHeight)
	case "home":
		n.Move(-n.total)
	case "end":
		n.Move(n.total)
	}
}

// Window returns the half-open range of rows to render
func (n *Navigator) Window() (int, int) {
	end := n.viewportOffset + n.viewportHeight
	if end > n.total {
		end = n.total
	}
	return n.viewportOffset, end
}

func (n *Navigator) clamp() {
	if n.selectedIndex >= n.total {
		n.selectedIndex = n.total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	// Don't leave empty rows at the bottom when the list shrinks
	maxOffset := n.total - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
