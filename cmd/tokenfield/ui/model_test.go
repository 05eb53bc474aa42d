package ui

import (
	"errors"
	"strings"
	"testing"

	"tokenfield/internal/config"
	"tokenfield/internal/tokenfield"
	"tokenfield/internal/validate"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	styles := NewStyles(LightTheme())
	opts.Styles = &styles
	m, err := New(opts)
	require.NoError(t, err)
	return m
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pasted(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	left      = tea.KeyMsg{Type: tea.KeyLeft}
	right     = tea.KeyMsg{Type: tea.KeyRight}
	tab       = tea.KeyMsg{Type: tea.KeyTab}
)

func TestModel_TypedSeparatorCommits(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(m, typed("joe@mail.com"))
	assert.Empty(t, m.Field().Content())
	assert.Equal(t, "joe@mail.com", m.input.Value())

	m = send(m, typed(",alice@bob.com,"))

	want := []string{"joe@mail.com", "alice@bob.com"}
	if diff := cmp.Diff(want, m.Field().Content()); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "", m.input.Value(), "input cleared after commit")
	assert.Equal(t, "", m.Field().Buffer())
}

func TestModel_PasteNotifiesOnce(t *testing.T) {
	var calls [][]string
	m := newTestModel(t, Options{OnChange: func(c []string) { calls = append(calls, c) }})

	m = send(m, pasted("x,y,z,"))

	require.Len(t, calls, 1)
	assert.Equal(t, []string{"x", "y", "z"}, calls[0])
	assert.Equal(t, 1, m.Changes())
	assert.Empty(t, m.changes.pending, "notifications forwarded as ChangedMsg")
}

func TestModel_EnterCommitsSingleValue(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(m, typed("solo"), enter)

	assert.Equal(t, []string{"solo"}, m.Field().Content())
	assert.Equal(t, "", m.input.Value())
}

func TestModel_EnterOnEmptyInputDoesNotNotify(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(m, enter, enter)

	assert.Empty(t, m.Field().Content())
	assert.Equal(t, 0, m.Changes())
}

func TestModel_BackspaceEditsThenRemoves(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(m, typed("a,b,"), typed("c"))
	m = send(m, backspace)
	assert.Equal(t, []string{"a", "b"}, m.Field().Content(), "first backspace edits the buffer")
	assert.Equal(t, "", m.input.Value())

	m = send(m, backspace)
	assert.Equal(t, []string{"a"}, m.Field().Content())

	m = send(m, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Empty(t, m.Field().Content())

	changes := m.Changes()
	m = send(m, backspace)
	assert.Equal(t, changes, m.Changes(), "backspace on an empty field is silent")
}

func TestModel_TabBlursAndCommits(t *testing.T) {
	m := newTestModel(t, Options{})
	require.True(t, m.Field().Focused())

	m = send(m, typed("pending"), tab)

	assert.False(t, m.Field().Focused())
	assert.False(t, m.input.Focused())
	assert.Equal(t, []string{"pending"}, m.Field().Content())

	m = send(m, tab)
	assert.True(t, m.Field().Focused())
	assert.True(t, m.input.Focused())
}

func TestModel_TypingRefocuses(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(m, tab)
	require.False(t, m.Field().Focused())

	m = send(m, typed("q"))

	assert.True(t, m.Field().Focused())
	assert.Equal(t, "q", m.input.Value())
}

func TestModel_DoneCommitsAndQuits(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(m, typed("last"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
	res := m.Result()
	assert.False(t, res.Aborted)
	assert.Equal(t, []string{"last"}, res.Content)
}

func TestModel_AbortDropsPendingText(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(m, typed("a,"), typed("unfinished"), tea.KeyMsg{Type: tea.KeyCtrlC})

	res := m.Result()
	assert.True(t, res.Aborted)
	assert.Equal(t, []string{"a"}, res.Content)
}

func TestModel_SelectAndRemoveChip(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(m, typed("a,b,c,"))

	m = send(m, left)
	assert.Equal(t, 2, m.selected)
	m = send(m, left)
	assert.Equal(t, 1, m.selected)

	m = send(m, backspace)
	assert.Equal(t, []string{"a", "c"}, m.Field().Content())
	assert.Equal(t, 1, m.selected, "selection moves to the next chip")

	m = send(m, right)
	assert.Equal(t, -1, m.selected, "moving past the last chip returns to the input")

	m = send(m, left, typed("x"))
	assert.Equal(t, -1, m.selected, "typing clears the selection")
	assert.Equal(t, "x", m.input.Value())
}

func TestModel_LeftWithTextMovesCursor(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(m, typed("a,"), typed("bc"), left)

	assert.Equal(t, -1, m.selected)
	assert.Equal(t, 1, m.input.Position())
}

func TestModel_Validator(t *testing.T) {
	m := newTestModel(t, Options{Validator: validate.Email})

	m = send(m, typed("abc,x@y.com,"))

	res := m.Result()
	assert.Equal(t, []string{"x@y.com"}, res.Valid)
	assert.Equal(t, []string{"abc"}, res.Invalid)
	assert.Contains(t, m.View(), "1 invalid")
}

func TestModel_InputTrailsLastChip(t *testing.T) {
	m := newTestModel(t, Options{Width: 40})
	inner := ContainerInnerWidth(40)
	assert.True(t, m.Field().InputWidth().Full)
	assert.Equal(t, inner-1, m.input.Width)

	m = send(m, typed("abc,"))

	chip := m.styles.ChipWidth(m.Field().Tokens()[0])
	want := inner - chip - tokenfield.DefaultGutter
	assert.Equal(t, tokenfield.InputWidth{Cells: want}, m.Field().InputWidth())
	assert.Equal(t, want-1, m.input.Width)
}

func TestModel_InputWrapsToOwnLine(t *testing.T) {
	m := newTestModel(t, Options{Width: 20})

	long := strings.Repeat("z", ContainerInnerWidth(20)-6)
	m = send(m, typed(long+","))

	assert.True(t, m.Field().InputWidth().Full)
	assert.Len(t, m.contentLines(), 2)
}

func TestModel_MouseCloseButton(t *testing.T) {
	m := newTestModel(t, Options{Width: 40})
	m = send(m, typed("abc,def,"))
	toks := m.Field().Tokens()
	require.Len(t, toks, 2)

	first, ok := m.layout.Bounds(toks[0].ID)
	require.True(t, ok)
	originX := ContainerBorderWidth + ContainerPaddingH
	closeX := originX + first.Left + m.styles.closeOffset(first.Width)

	// Clicking the text keeps the chip
	m = send(m, click(originX+first.Left+1, ContainerBorderWidth))
	assert.Len(t, m.Field().Content(), 2)

	m = send(m, click(closeX, ContainerBorderWidth))
	assert.Equal(t, []string{"def"}, m.Field().Content())
	assert.True(t, m.Field().Focused())
}

func TestModel_MouseCloseWithViewOffset(t *testing.T) {
	m := newTestModel(t, Options{Width: 40, OriginX: 3, OriginY: 10})
	m = send(m, typed("abc,def,"), typed("pending"))
	toks := m.Field().Tokens()
	require.Len(t, toks, 2)

	first, ok := m.layout.Bounds(toks[0].ID)
	require.True(t, ok)
	closeX := 3 + ContainerBorderWidth + ContainerPaddingH + first.Left + m.styles.closeOffset(first.Width)

	m = send(m, click(closeX, 10+ContainerBorderWidth))

	assert.Equal(t, []string{"def"}, m.Field().Content())
	assert.Equal(t, "pending", m.Field().Buffer(), "closing a chip keeps the typed text")
	assert.True(t, m.Field().Focused())

	// Above the view is outside the container
	m = send(m, click(closeX, 2))
	assert.False(t, m.Field().Focused())
	assert.Equal(t, []string{"def", "pending"}, m.Field().Content())
}

func TestModel_ClickOutsideBlurs(t *testing.T) {
	m := newTestModel(t, Options{Width: 40})
	m = send(m, typed("zz"))

	m = send(m, click(5, 30))

	assert.False(t, m.Field().Focused())
	assert.Equal(t, []string{"zz"}, m.Field().Content())

	m = send(m, click(3, 1))
	assert.True(t, m.Field().Focused())
}

func TestModel_IgnoresOtherMouseEvents(t *testing.T) {
	m := newTestModel(t, Options{Width: 40})
	m = send(m, typed("zz"))

	m = send(m, tea.MouseMsg{X: 5, Y: 30, Action: tea.MouseActionMotion})

	assert.True(t, m.Field().Focused())
	assert.Empty(t, m.Field().Content())
}

func TestModel_WindowResizeDebounced(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Equal(t, ContainerInnerWidth(30), m.layout.Width(), "first size applies immediately")

	m = send(m, tea.WindowSizeMsg{Width: 50, Height: 10})
	stale := resizeSettledMsg{seq: m.resize.seq}
	m = send(m, tea.WindowSizeMsg{Width: 70, Height: 10})
	assert.Equal(t, ContainerInnerWidth(30), m.layout.Width(), "pending until settled")

	m = send(m, stale)
	assert.Equal(t, ContainerInnerWidth(30), m.layout.Width(), "superseded burst ignored")

	m = send(m, resizeSettledMsg{seq: m.resize.seq})
	assert.Equal(t, ContainerInnerWidth(70), m.layout.Width())
}

func TestModel_WidthCap(t *testing.T) {
	m := newTestModel(t, Options{Width: 40})

	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 10})

	assert.Equal(t, ContainerInnerWidth(40), m.layout.Width())
}

func TestModel_ConfigReload(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(m, typed("abc,"))

	cfg := config.DefaultConfig()
	cfg.Field.Validator = "email"
	cfg.UI.Theme = config.ThemeDark
	m = send(m, ConfigReloadedMsg{Config: cfg})

	m = send(m, typed("def,x@y.com,"))
	assert.Equal(t, []string{"abc", "x@y.com"}, m.Field().ValidContent())
	assert.Equal(t, []string{"def"}, m.Field().InvalidContent())
	assert.True(t, m.styles.Theme.IsDark)
	assert.Equal(t, "config reloaded", m.status)
}

func TestModel_ConfigReloadResizes(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 24}, typed("abc,"))
	chip := m.styles.ChipWidth(m.Field().Tokens()[0])

	cfg := config.DefaultConfig()
	cfg.Field.Gutter = 6
	cfg.Field.MinInputWidth = 3
	cfg.UI.Width = 30
	m = send(m, ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, ContainerInnerWidth(30), m.layout.Width(), "width cap reloaded")
	want := ContainerInnerWidth(30) - chip - 6
	assert.Equal(t, tokenfield.InputWidth{Cells: want}, m.Field().InputWidth(), "gutter reloaded")
	assert.Equal(t, want-1, m.input.Width)

	// Raising the minimum past what is left wraps the input
	cfg.Field.MinInputWidth = want + 1
	m = send(m, ConfigReloadedMsg{Config: cfg})
	assert.True(t, m.Field().InputWidth().Full)
}

func TestModel_ConfigReloadError(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(m, ConfigReloadedMsg{Err: errors.New("boom")})
	assert.Contains(t, m.status, "boom")

	cfg := config.DefaultConfig()
	cfg.Field.Validator = "phone"
	m = send(m, ConfigReloadedMsg{Config: cfg})
	assert.Contains(t, m.status, "unknown validator")
}

func TestModel_InitialTokens(t *testing.T) {
	m := newTestModel(t, Options{Initial: []string{"a", "", "b"}})

	assert.Equal(t, []string{"a", "b"}, m.Field().Content())
	assert.Empty(t, m.changes.pending)
}

func TestModel_ViewRendersChipsAndHelp(t *testing.T) {
	m := newTestModel(t, Options{ShowHelp: true})
	m = send(m, typed("joe@mail.com,"))

	view := m.View()
	assert.Contains(t, view, "joe@mail.com "+CloseGlyph)
	assert.Contains(t, view, "1 valid")
	assert.Contains(t, view, "enter")
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Field.Separator = ";"
	cfg.Field.Validator = "email"
	cfg.Field.Gutter = 4

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, ";", opts.Separator)
	assert.NotNil(t, opts.Validator)
	assert.Equal(t, 4, opts.Sizer.Gutter)

	cfg.Field.Validator = "phone"
	_, err = OptionsFromConfig(cfg)
	assert.ErrorIs(t, err, validate.ErrUnknownValidator)
}
