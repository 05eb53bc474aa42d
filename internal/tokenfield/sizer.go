package tokenfield

// Container is the rendering substrate hosting the field. Geometry is in the
// host's units (terminal cells for the bundled UI).
type Container interface {
	// Width is the inner width of the container.
	Width() int
	// Bounds reports where the token with id is drawn, relative to the
	// container's left edge. ok is false when the token is not laid out.
	Bounds(id string) (r Rect, ok bool)
}

// Rect is a token's on-screen box relative to its container.
type Rect struct {
	Left  int
	Top   int
	Width int
}

// Right is the first column after the box.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// InputWidth is the Input Surface's width after a layout pass. Full means the
// input takes a whole line of the container.
type InputWidth struct {
	Cells int
	Full  bool
}

// FullWidth makes the input span the container.
var FullWidth = InputWidth{Full: true}

// Percent reports the width as a fraction of containerWidth in [0,1].
func (w InputWidth) Percent(containerWidth int) float64 {
	if w.Full || containerWidth <= 0 {
		return 1
	}
	p := float64(w.Cells) / float64(containerWidth)
	if p > 1 {
		return 1
	}
	return p
}

// Default sizing, in cells.
const (
	DefaultGutter   = 2
	DefaultMinWidth = 2
)

// Sizer places the input right after the last token. When fewer than MinWidth
// units remain on that line the input wraps to a full-width line.
type Sizer struct {
	// Gutter is kept free at the right edge of the container.
	Gutter int
	// MinWidth is the narrowest usable input.
	MinWidth int
}

// DefaultSizer returns a Sizer with the default gutter and minimum.
func DefaultSizer() Sizer {
	return Sizer{Gutter: DefaultGutter, MinWidth: DefaultMinWidth}
}

// Size computes the input width anchored at last. With no last token, or when
// the container cannot place it, the input is full width.
func (s Sizer) Size(c Container, last Token, ok bool) InputWidth {
	if !ok || c == nil {
		return FullWidth
	}
	bounds, laid := c.Bounds(last.ID)
	if !laid {
		return FullWidth
	}
	remaining := c.Width() - bounds.Right() - s.Gutter
	if remaining < s.MinWidth {
		return FullWidth
	}
	return InputWidth{Cells: remaining}
}
