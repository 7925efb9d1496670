// Package hostlist is a terminal screen listing hosts, each with a radio
// control. Exactly one row is selected at a time; choosing a row animates the
// previous selection out and the new one in.
package hostlist

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/radiobutton/internal/logger"
	"github.com/go-drift/radiobutton/pkg/animation"
	"github.com/go-drift/radiobutton/pkg/errors"
	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/radio"
)

// DefaultRows is the number of rows shown when Options.Rows is zero.
const DefaultRows = 20

// darkEvery marks rows 0, n, 2n and so on as using the dark palette.
const darkEvery = 4

// FrameInterval is the redraw period while any control animates.
const FrameInterval = time.Second / 60

// Row palette colors. Regular rows select in RowSelectedColor unless
// Options.Radio says otherwise.
var (
	RowSelectedColor    = graphics.RGB(0x4A, 0x90, 0xE2)
	DarkSelectedColor   = graphics.ColorWhite
	DarkDeselectedColor = graphics.ColorLightGray
)

// Options configures a host list.
type Options struct {
	// Rows is the number of rows. Zero means DefaultRows.
	Rows int
	// Radio configures the controls of regular rows. Dark rows keep the
	// diameter and use the dark palette.
	Radio radio.Config
	// Title is shown above the rows.
	Title string
	// Logger receives selection and frame diagnostics. Nil means Noop.
	Logger logger.Logger
}

// Row is one entry of the list.
type Row struct {
	Label   string
	Dark    bool
	Control *radio.Control
}

// Model is a Bubble Tea model for the host list.
type Model struct {
	rows     []Row
	cursor   int
	selected int
	ticking  bool
	quitting bool
	title    string

	help help.Model
	log  logger.Logger
}

// frameMsg drives redraws while controls animate.
type frameMsg time.Time

// New builds a host list with no row selected.
func New(opts Options) (*Model, error) {
	if opts.Rows < 0 {
		return nil, errors.New("hostlist.New", errors.KindConfig,
			&errors.ConfigError{Field: "rows", Value: opts.Rows, Reason: "must not be negative"})
	}
	if opts.Rows == 0 {
		opts.Rows = DefaultRows
	}
	if opts.Radio == (radio.Config{}) {
		opts.Radio = radio.DefaultConfig().WithSelectedColor(RowSelectedColor)
	}
	if opts.Title == "" {
		opts.Title = "Select a host"
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	now := animation.MediaTime()
	rows := make([]Row, opts.Rows)
	for i := range rows {
		dark := i%darkEvery == 0
		cfg := opts.Radio
		if dark {
			cfg = cfg.WithColors(DarkSelectedColor, DarkDeselectedColor)
		}
		c, err := radio.New(cfg)
		if err != nil {
			return nil, errors.New("hostlist.New", errors.KindConfig, fmt.Errorf("row %d: %w", i, err))
		}
		c.Attach(now)
		rows[i] = Row{Label: fmt.Sprintf("host-%02d", i+1), Dark: dark, Control: c}
	}

	return &Model{
		rows:     rows,
		selected: -1,
		title:    opts.Title,
		help:     help.New(),
		log:      opts.Logger,
	}, nil
}

// Rows returns the list rows.
func (m *Model) Rows() []Row { return m.rows }

// Cursor returns the row under the cursor.
func (m *Model) Cursor() int { return m.cursor }

// Selected returns the selected row index, or -1.
func (m *Model) Selected() int { return m.selected }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Select):
			m.Choose(m.cursor)
			return m, m.startFrames()
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case frameMsg:
		for _, r := range m.rows {
			r.Control.Prune()
		}
		if m.animating() {
			return m, frame()
		}
		m.ticking = false
		m.log.Debug("animations settled")
	}
	return m, nil
}

// Choose makes row i the selected row. The previous row animates out before
// the new one animates in. Choosing the selected row does nothing.
func (m *Model) Choose(i int) {
	if i < 0 || i >= len(m.rows) || i == m.selected {
		return
	}
	if m.selected >= 0 {
		m.rows[m.selected].Control.Deselect(true)
	}
	m.rows[i].Control.Select(true)
	m.log.Debug("selected %s (was %d)", m.rows[i].Label, m.selected)
	m.selected = i
}

func (m *Model) animating() bool {
	for _, r := range m.rows {
		if r.Control.IsAnimating() {
			return true
		}
	}
	return false
}

// startFrames begins the frame ticker unless it is already running.
func (m *Model) startFrames() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return frame()
}

func frame() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	for i, r := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("› ")
		}
		style := labelStyle
		if r.Dark {
			style = darkRowStyle
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(controlGlyph(r.Control) + " " + r.Label))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(keys)))
	return b.String()
}

// Run displays the host list until the user quits and returns the label of
// the selected row, or "" if none was selected.
// A panic inside the program is reported and returned as a KindPanic error.
func Run(opts Options, output io.Writer, input io.Reader) (label string, err error) {
	defer errors.Recover("hostlist.Run", &err)

	m, err := New(opts)
	if err != nil {
		return "", err
	}

	p := tea.NewProgram(m, tea.WithOutput(output), tea.WithInput(input))
	final, err := p.Run()
	if err != nil {
		return "", errors.New("hostlist.Run", errors.KindRender, err)
	}
	if fm, ok := final.(*Model); ok && fm.selected >= 0 {
		return fm.rows[fm.selected].Label, nil
	}
	return "", nil
}
