package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultResizeDuration is the recommended debounce duration for resize events
const DefaultResizeDuration = 150 * time.Millisecond

// resizeSettledMsg fires once a burst of resizes has been quiet for the
// debounce duration.
type resizeSettledMsg struct {
	seq int
}

// ResizeDebouncer coalesces rapid WindowSizeMsg bursts. Only the last size of
// a burst is applied. It runs inside the bubbletea loop, so no locking: the
// pending size lives here and the timer is a tea.Tick command.
type ResizeDebouncer struct {
	duration      time.Duration
	seq           int
	pendingWidth  int
	pendingHeight int
	lastWidth     int
	lastHeight    int
}

// NewResizeDebouncer creates a debouncer optimized for resize events
func NewResizeDebouncer(duration time.Duration) *ResizeDebouncer {
	return &ResizeDebouncer{duration: duration}
}

// Resize records a size and returns the command that will report it settled.
// Rapid successive calls supersede earlier ones.
func (rd *ResizeDebouncer) Resize(width, height int) tea.Cmd {
	rd.seq++
	rd.pendingWidth = width
	rd.pendingHeight = height
	seq := rd.seq
	return tea.Tick(rd.duration, func(time.Time) tea.Msg {
		return resizeSettledMsg{seq: seq}
	})
}

// Settle reports whether msg belongs to the latest burst and, if so, returns
// the size to apply.
func (rd *ResizeDebouncer) Settle(msg resizeSettledMsg) (width, height int, ok bool) {
	if msg.seq != rd.seq {
		return 0, 0, false
	}
	rd.lastWidth, rd.lastHeight = rd.pendingWidth, rd.pendingHeight
	return rd.lastWidth, rd.lastHeight, true
}

// Immediate applies a size at once and cancels any pending burst.
func (rd *ResizeDebouncer) Immediate(width, height int) {
	rd.seq++
	rd.pendingWidth, rd.pendingHeight = width, height
	rd.lastWidth, rd.lastHeight = width, height
}

// GetLastSize returns the last processed size
func (rd *ResizeDebouncer) GetLastSize() (width, height int) {
	return rd.lastWidth, rd.lastHeight
}
