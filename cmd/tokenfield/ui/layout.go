package ui

import "tokenfield/internal/tokenfield"

// Layout constants, in cells.
const (
	// Container chrome
	ContainerBorderWidth = 1
	ContainerPaddingH    = 1

	// Chips
	ChipPaddingH = 1
	ChipGap      = 1

	// Used until the first WindowSizeMsg arrives
	DefaultContainerWidth = 60

	// Narrowest container we lay out into
	MinimumContainerWidth = 10
)

// ContainerInnerWidth returns the width available to chips for an outer width.
func ContainerInnerWidth(outer int) int {
	inner := outer - 2*ContainerBorderWidth - 2*ContainerPaddingH
	if inner < MinimumContainerWidth {
		return MinimumContainerWidth
	}
	return inner
}

// placedChip is a token with its position inside the container.
type placedChip struct {
	tok  tokenfield.Token
	rect tokenfield.Rect
}

// flowLayout places chips left to right, wrapping onto a new row when a chip
// would cross the right edge. It is the geometry source the field sizes its
// input against.
type flowLayout struct {
	width  int
	styles *Styles
	tokens func() []tokenfield.Token
}

func newFlowLayout(width int, styles *Styles) *flowLayout {
	return &flowLayout{
		width:  width,
		styles: styles,
		tokens: func() []tokenfield.Token { return nil },
	}
}

// Width implements tokenfield.Container.
func (l *flowLayout) Width() int {
	return l.width
}

// Bounds implements tokenfield.Container.
func (l *flowLayout) Bounds(id string) (tokenfield.Rect, bool) {
	for _, p := range l.place() {
		if p.tok.ID == id {
			return p.rect, true
		}
	}
	return tokenfield.Rect{}, false
}

func (l *flowLayout) place() []placedChip {
	toks := l.tokens()
	placed := make([]placedChip, 0, len(toks))
	left, top := 0, 0
	for _, tok := range toks {
		w := l.styles.ChipWidth(tok)
		if left > 0 && left+w > l.width {
			left, top = 0, top+1
		}
		placed = append(placed, placedChip{
			tok:  tok,
			rect: tokenfield.Rect{Left: left, Top: top, Width: w},
		})
		left += w + ChipGap
	}
	return placed
}

// rows groups placed chips by line.
func (l *flowLayout) rows() [][]placedChip {
	var rows [][]placedChip
	for _, p := range l.place() {
		for len(rows) <= p.rect.Top {
			rows = append(rows, nil)
		}
		rows[p.rect.Top] = append(rows[p.rect.Top], p)
	}
	return rows
}

// hit is the target of a click inside the container.
type hit struct {
	id      string
	onClose bool
	onChip  bool
}

// hitTest resolves a click at (x, y) relative to the container's content box.
func (l *flowLayout) hitTest(x, y int) hit {
	for _, p := range l.place() {
		if p.rect.Top != y || x < p.rect.Left || x >= p.rect.Right() {
			continue
		}
		return hit{
			id:      p.tok.ID,
			onChip:  true,
			onClose: x-p.rect.Left >= l.styles.closeOffset(p.rect.Width),
		}
	}
	return hit{}
}
