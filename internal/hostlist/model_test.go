package hostlist

import (
	stderrors "errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/radiobutton/internal/logger"
	"github.com/go-drift/radiobutton/pkg/errors"
	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/layer"
	"github.com/go-drift/radiobutton/pkg/radio"
	drifttest "github.com/go-drift/radiobutton/pkg/testing"
)

func useFakeClock(t *testing.T) *drifttest.FakeClock {
	t.Helper()
	return drifttest.NewFakeClock().Install(t)
}

func newModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m, err := New(opts)
	require.NoError(t, err)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func TestNew_Defaults(t *testing.T) {
	useFakeClock(t)
	m := newModel(t, Options{})

	require.Len(t, m.Rows(), DefaultRows)
	assert.Equal(t, -1, m.Selected())
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, "host-01", m.Rows()[0].Label)
	for _, r := range m.Rows() {
		assert.False(t, r.Control.IsSelected())
	}
}

func TestNew_DarkPaletteEveryFourthRow(t *testing.T) {
	useFakeClock(t)
	m := newModel(t, Options{Rows: 9, Radio: radio.DefaultConfig().WithDiameter(24)})

	for i, r := range m.Rows() {
		dark := i == 0 || i == 4 || i == 8
		assert.Equal(t, dark, r.Dark, "row %d", i)
		assert.Equal(t, 24.0, r.Control.Diameter())
		if dark {
			assert.Equal(t, DarkSelectedColor, r.Control.SelectedColor())
			assert.Equal(t, DarkDeselectedColor, r.Control.DeselectedColor())
		} else {
			assert.Equal(t, radio.DefaultSelectedColor, r.Control.SelectedColor())
		}
	}
}

func TestNew_DefaultRowsUseRowPalette(t *testing.T) {
	useFakeClock(t)
	m := newModel(t, Options{Rows: 2})

	assert.Equal(t, graphics.RGB(74, 144, 226), RowSelectedColor)
	assert.True(t, m.Rows()[0].Dark)
	assert.Equal(t, DarkSelectedColor, m.Rows()[0].Control.SelectedColor())
	assert.False(t, m.Rows()[1].Dark)
	assert.Equal(t, RowSelectedColor, m.Rows()[1].Control.SelectedColor())
	assert.Equal(t, radio.DefaultDeselectedColor, m.Rows()[1].Control.DeselectedColor())
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	_, err := New(Options{Rows: -1})
	var ce *errors.ConfigError
	require.True(t, stderrors.As(err, &ce))
	assert.Equal(t, "rows", ce.Field)

	_, err = New(Options{Radio: radio.DefaultConfig().WithDiameter(-1)})
	require.True(t, stderrors.As(err, &ce))
	assert.Equal(t, "diameter", ce.Field)
}

func TestUpdate_CursorMovement(t *testing.T) {
	useFakeClock(t)
	m := newModel(t, Options{Rows: 3})

	send(m, "up")
	assert.Equal(t, 0, m.Cursor())
	send(m, "down", "j")
	assert.Equal(t, 2, m.Cursor())
	send(m, "down")
	assert.Equal(t, 2, m.Cursor())
	send(m, "k")
	assert.Equal(t, 1, m.Cursor())
}

func TestUpdate_SelectHandsOffSelection(t *testing.T) {
	clock := useFakeClock(t)
	log := logger.NewBufferLogger()
	m := newModel(t, Options{Rows: 4, Logger: log})

	cmd := send(m, "enter")
	assert.NotNil(t, cmd, "animation starts the frame ticker")
	assert.Equal(t, 0, m.Selected())
	assert.True(t, m.Rows()[0].Control.IsSelected())
	assert.True(t, log.HasLevel("debug"))

	cmd = send(m, "down", "space")
	assert.Nil(t, cmd, "ticker is already running")
	assert.Equal(t, 1, m.Selected())
	assert.False(t, m.Rows()[0].Control.IsSelected())
	assert.True(t, m.Rows()[1].Control.IsSelected())
	prev := m.Rows()[0].Control
	assert.Contains(t, prev.AnimationKeys(radio.SurfaceInner), "innerDecreaseReverse.borderWidth")
	assert.Equal(t, []string{"circleBorderColorReverse"}, prev.AnimationKeys(radio.SurfaceOuter))

	clock.Advance(time.Second)
	_, cmd = m.Update(frameMsg(clock.Now()))
	assert.Nil(t, cmd, "ticker stops once animations settle")
	assert.False(t, m.Rows()[0].Control.IsAnimating())
	assert.Empty(t, m.Rows()[1].Control.AnimationKeys(radio.SurfaceWave))
}

func TestUpdate_FrameKeepsTickingWhileAnimating(t *testing.T) {
	clock := useFakeClock(t)
	m := newModel(t, Options{Rows: 2})

	send(m, "enter")
	clock.Advance(100 * time.Millisecond)
	_, cmd := m.Update(frameMsg(clock.Now()))
	assert.NotNil(t, cmd)
}

func TestChoose_SelectedRowIsNoop(t *testing.T) {
	useFakeClock(t)
	m := newModel(t, Options{Rows: 2})

	m.Choose(1)
	keys := m.Rows()[1].Control.AnimationKeys(radio.SurfaceInner)
	m.Choose(1)
	assert.Equal(t, keys, m.Rows()[1].Control.AnimationKeys(radio.SurfaceInner))
	assert.False(t, m.Rows()[0].Control.IsSelected())

	m.Choose(5)
	assert.Equal(t, 1, m.Selected())
}

func TestUpdate_Quit(t *testing.T) {
	useFakeClock(t)
	m := newModel(t, Options{Rows: 2})

	cmd := send(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestView_ListsRows(t *testing.T) {
	useFakeClock(t)
	m := newModel(t, Options{Rows: 3, Title: "Hosts"})

	view := m.View()
	assert.Contains(t, view, "Hosts")
	assert.Contains(t, view, "host-01")
	assert.Contains(t, view, "host-03")
	assert.Contains(t, view, "select")
}

func TestInnerFill(t *testing.T) {
	s := layer.State{Bounds: graphics.Square(10), BorderWidth: 6, Opacity: 1}
	assert.Equal(t, 1.0, innerFill(s))

	s.BorderWidth = 2.5
	s.Opacity = 0.5
	assert.Equal(t, 0.25, innerFill(s))

	assert.Equal(t, 0.0, innerFill(layer.State{}))
}

func TestTermColor(t *testing.T) {
	assert.Equal(t, "#4A8FE0", string(termColor(radio.DefaultSelectedColor)))
	assert.Equal(t, "#FFFFFF", string(termColor(graphics.ColorWhite.WithAlpha(0.5))))
}
