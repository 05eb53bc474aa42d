package ui

import (
	"fmt"
	"strings"

	"tokenfield/internal/config"
	"tokenfield/internal/tokenfield"
	"tokenfield/internal/validate"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ChangedMsg is emitted after every mutation of the token store, carrying the
// full content. Parent models can observe it; Model itself ignores it.
type ChangedMsg struct {
	Content []string
}

// ConfigReloadedMsg swaps the theme and validator at runtime. Tokens that
// already exist keep their validity.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// Options configures a Model.
type Options struct {
	Separator   string
	Validator   tokenfield.Validator
	Sizer       tokenfield.Sizer // zero value = tokenfield.DefaultSizer()
	Styles      *Styles          // nil = DefaultStyles()
	Placeholder string
	Width       int // outer width cap, 0 = terminal width
	// Screen cell of the view's top-left corner, zero in the alt screen
	OriginX     int
	OriginY     int
	ShowHelp    bool
	Initial     []string // committed through the Enter path at startup
	OnChange    tokenfield.ChangeFunc
	Logger      *zap.Logger
}

// OptionsFromConfig translates a loaded config into Options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	v, err := validate.Parse(cfg.Field.Validator)
	if err != nil {
		return Options{}, fmt.Errorf("field.validator: %w", err)
	}
	styles := NewStyles(ThemeByName(cfg.UI.Theme))
	return Options{
		Separator:   cfg.Field.Separator,
		Validator:   v,
		Sizer:       cfg.Field.Sizer(),
		Styles:      &styles,
		Placeholder: cfg.UI.Placeholder,
		Width:       cfg.UI.Width,
		ShowHelp:    cfg.UI.ShowHelp,
	}, nil
}

// Result is what the user ended up with.
type Result struct {
	Content []string
	Valid   []string
	Invalid []string
	Aborted bool
}

// changeLog collects notifications raised by the field during one Update so
// they can be forwarded as ChangedMsg.
type changeLog struct {
	count   int
	pending [][]string
	sink    tokenfield.ChangeFunc
}

func (c *changeLog) record(content []string) {
	c.count++
	c.pending = append(c.pending, content)
	if c.sink != nil {
		c.sink(content)
	}
}

// Model hosts a token field in a bubbletea program.
type Model struct {
	field   *tokenfield.Field
	input   textinput.Model
	layout  *flowLayout
	styles  *Styles
	keys    KeyMap
	help    help.Model
	resize  *ResizeDebouncer
	changes *changeLog
	logger  *zap.Logger

	selected int // index of the highlighted chip, -1 for none
	originX  int
	originY  int
	maxWidth int
	width    int
	showHelp bool
	status   string
	quitting bool
	aborted  bool
}

// New creates a Model. The field starts focused.
func New(opts Options) (Model, error) {
	styles := opts.Styles
	if styles == nil {
		s := DefaultStyles()
		styles = &s
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sizer := opts.Sizer
	if sizer == (tokenfield.Sizer{}) {
		sizer = tokenfield.DefaultSizer()
	}

	outer := DefaultContainerWidth
	if opts.Width > 0 {
		outer = opts.Width
	}
	layout := newFlowLayout(ContainerInnerWidth(outer), styles)
	changes := &changeLog{sink: opts.OnChange}

	field, err := tokenfield.New(layout,
		tokenfield.WithSeparator(opts.Separator),
		tokenfield.WithValidator(opts.Validator),
		tokenfield.WithSizer(sizer),
		tokenfield.WithOnChange(changes.record),
		tokenfield.WithLogger(logger.Named("field")),
	)
	if err != nil {
		return Model{}, err
	}
	layout.tokens = field.Tokens

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 0
	ti.TextStyle = styles.Input
	ti.PlaceholderStyle = styles.Placeholder

	m := Model{
		field:    field,
		input:    ti,
		layout:   layout,
		styles:   styles,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		resize:   NewResizeDebouncer(DefaultResizeDuration),
		changes:  changes,
		logger:   logger,
		selected: -1,
		originX:  opts.OriginX,
		originY:  opts.OriginY,
		maxWidth: opts.Width,
		width:    outer,
		showHelp: opts.ShowHelp,
	}

	m.field.Focus()
	m.input.Focus()
	if len(opts.Initial) > 0 {
		m.field.Handle(tokenfield.KeyDown(tokenfield.KeyEnter, strings.Join(opts.Initial, m.field.Separator())))
		m.changes.pending = nil
	}
	m.syncInput()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Field exposes the underlying token field for queries.
func (m Model) Field() *tokenfield.Field {
	return m.field
}

// Changes returns how many change notifications the field has raised.
func (m Model) Changes() int {
	return m.changes.count
}

// Result returns the final content split by validity.
func (m Model) Result() Result {
	return Result{
		Content: m.field.Content(),
		Valid:   m.field.ValidContent(),
		Invalid: m.field.InvalidContent(),
		Aborted: m.aborted,
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.handleMouse(msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		if w, _ := m.resize.GetLastSize(); w == 0 {
			// First size report: apply without waiting
			m.resize.Immediate(msg.Width, msg.Height)
			m.applySize(msg.Width)
		} else {
			cmds = append(cmds, m.resize.Resize(msg.Width, msg.Height))
		}

	case resizeSettledMsg:
		if w, _, ok := m.resize.Settle(msg); ok {
			m.applySize(w)
		}

	case ConfigReloadedMsg:
		m = m.applyConfig(msg)

	case ChangedMsg:
		// Forwarded for parent models

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.drainChanges())
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.aborted = true
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Done):
		m.blur()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Blur):
		if m.field.Focused() {
			m.blur()
			return m, nil
		}
		return m, m.focus()
	}

	var cmds []tea.Cmd
	if !m.field.Focused() {
		cmds = append(cmds, m.focus())
	}

	switch {
	case key.Matches(msg, m.keys.Commit):
		m.selected = -1
		m.field.KeyDown(tokenfield.KeyEnter)
		m.syncInput()
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keys.Remove):
		if tok, ok := m.selectedToken(); ok {
			m.field.Close(tok.ID)
			m.clampSelection()
			m.syncInput()
			return m, tea.Batch(cmds...)
		}
		k := tokenfield.KeyBackspace
		if msg.Type == tea.KeyDelete {
			k = tokenfield.KeyDelete
		}
		if m.field.KeyDown(k).Kind == tokenfield.ActionRemoveLast {
			m.syncInput()
			return m, tea.Batch(cmds...)
		}

	case m.field.Buffer() == "" && key.Matches(msg, m.keys.Prev):
		m.selectPrev()
		return m, tea.Batch(cmds...)

	case m.field.Buffer() == "" && key.Matches(msg, m.keys.Next) && m.selected >= 0:
		m.selectNext()
		return m, tea.Batch(cmds...)
	}

	// Everything else edits the buffer
	m.selected = -1
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if value := m.input.Value(); value != before {
		m.field.Input(value)
		m.syncInput()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	// Mouse coordinates are screen cells; make them relative to the view
	mx, my := msg.X-m.originX, msg.Y-m.originY
	outerHeight := len(m.contentLines()) + 2*ContainerBorderWidth
	if mx < 0 || mx >= m.outerWidth() || my < 0 || my >= outerHeight {
		// Clicking anywhere outside the container takes focus away
		if m.field.Focused() {
			m.blur()
		}
		return m, nil
	}

	x := mx - ContainerBorderWidth - ContainerPaddingH
	y := my - ContainerBorderWidth
	if h := m.layout.hitTest(x, y); h.onClose {
		m.logger.Debug("close clicked", zap.String("id", h.id))
		m.field.Close(h.id)
		m.clampSelection()
		m.syncInput()
	}

	m.field.Click()
	return m, m.input.Focus()
}

func (m *Model) focus() tea.Cmd {
	m.field.Focus()
	return m.input.Focus()
}

// blur commits the buffer the way focus loss does.
func (m *Model) blur() {
	m.selected = -1
	m.field.Blur()
	m.input.Blur()
	m.syncInput()
}

func (m *Model) selectedToken() (tokenfield.Token, bool) {
	toks := m.field.Tokens()
	if m.selected < 0 || m.selected >= len(toks) {
		return tokenfield.Token{}, false
	}
	return toks[m.selected], true
}

func (m *Model) selectPrev() {
	n := m.field.Len()
	switch {
	case n == 0:
		m.selected = -1
	case m.selected < 0:
		m.selected = n - 1
	case m.selected > 0:
		m.selected--
	}
}

func (m *Model) selectNext() {
	if m.selected >= 0 && m.selected < m.field.Len()-1 {
		m.selected++
		return
	}
	// Moving past the last chip returns to the input
	m.selected = -1
}

func (m *Model) clampSelection() {
	if m.selected >= m.field.Len() {
		m.selected = m.field.Len() - 1
	}
}

// syncInput mirrors the field's buffer and computed width into the input.
func (m *Model) syncInput() {
	if m.input.Value() != m.field.Buffer() {
		m.input.SetValue(m.field.Buffer())
	}
	cells := m.layout.Width()
	if w := m.field.InputWidth(); !w.Full {
		cells = w.Cells
	}
	if cells < 2 {
		cells = 2
	}
	// One cell is left for the cursor
	m.input.Width = cells - 1
}

func (m *Model) applySize(termWidth int) {
	outer := termWidth
	if m.maxWidth > 0 && m.maxWidth < outer {
		outer = m.maxWidth
	}
	m.width = outer
	m.layout.width = ContainerInnerWidth(outer)
	m.help.Width = outer
	width := m.field.Relayout()
	m.logger.Debug("relayout",
		zap.Int("container", m.layout.width),
		zap.Int("input", width.Cells),
		zap.Bool("full", width.Full),
	)
	m.syncInput()
}

func (m Model) applyConfig(msg ConfigReloadedMsg) Model {
	if msg.Err != nil {
		m.status = "config reload failed: " + msg.Err.Error()
		return m
	}
	v, err := validate.Parse(msg.Config.Field.Validator)
	if err != nil {
		m.status = "config reload failed: " + err.Error()
		return m
	}
	m.field.SetValidator(v)
	m.field.SetSizer(msg.Config.Field.Sizer())
	m.maxWidth = msg.Config.UI.Width
	*m.styles = NewStyles(ThemeByName(msg.Config.UI.Theme))
	m.input.TextStyle = m.styles.Input
	m.input.PlaceholderStyle = m.styles.Placeholder
	m.input.Placeholder = msg.Config.UI.Placeholder
	m.showHelp = msg.Config.UI.ShowHelp
	m.status = "config reloaded"
	m.applySize(m.terminalWidth())
	return m
}

func (m Model) drainChanges() tea.Cmd {
	if len(m.changes.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.changes.pending))
	for _, content := range m.changes.pending {
		content := content
		cmds = append(cmds, func() tea.Msg { return ChangedMsg{Content: content} })
	}
	m.changes.pending = nil
	return tea.Batch(cmds...)
}

// terminalWidth is the last reported terminal width, or the configured cap
// before the first WindowSizeMsg.
func (m Model) terminalWidth() int {
	if w, _ := m.resize.GetLastSize(); w > 0 {
		return w
	}
	if m.maxWidth > 0 {
		return m.maxWidth
	}
	return DefaultContainerWidth
}

func (m Model) outerWidth() int {
	return m.layout.width + 2*ContainerBorderWidth + 2*ContainerPaddingH
}
