package tui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/psy/internal/doglist"
	"github.com/ytget/psy/internal/locale"
	"github.com/ytget/psy/internal/model"
)

// Icons shared with the GUI counters line
const (
	iconDog         = "🐶"
	iconHearts      = "💜"
	iconFavorite    = "♥"
	iconNotFavorite = "♡"
	inputCursor     = "▏"
)

// pasteNewlines flattens pasted line breaks into spaces
var pasteNewlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Focus tells which part of the screen receives keys
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

// String returns the focus name
func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

// Model is the bubbletea model of the dog list screen
type Model struct {
	dogs         doglist.Manager
	localization *locale.Localization
	styles       Styles

	view    model.View
	input   []rune
	focus   Focus
	cursor  int
	lastErr error

	width  int
	height int
}

// NewModel creates the screen model over a dog list
func NewModel(dogs doglist.Manager, localization *locale.Localization) *Model {
	return &Model{
		dogs:         dogs,
		localization: localization,
		styles:       DefaultStyles(),
		view:         dogs.CurrentView(),
		focus:        FocusInput,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.localization.GetText(locale.KeyAppTitle))
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleKeyMsg routes keys: global ones first, then by focus
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab:
		m.switchFocus()
		return m, nil
	}

	if m.focus == FocusList {
		m.handleListKey(msg)
		return m, nil
	}
	m.handleInputKey(msg)
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.addDog()
	case tea.KeyCtrlF:
		m.view = m.dogs.Search(string(m.input))
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
			m.lastErr = nil
		}
	case tea.KeyCtrlU:
		m.input = nil
		m.lastErr = nil
	case tea.KeySpace:
		m.input = append(m.input, ' ')
		m.lastErr = nil
	case tea.KeyRunes:
		if msg.Paste {
			// Pasted names are a single line
			m.input = append(m.input, []rune(pasteNewlines.Replace(string(msg.Runes)))...)
		} else {
			m.input = append(m.input, msg.Runes...)
		}
		m.lastErr = nil
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.view.Len()-1 {
			m.cursor++
		}
	case " ", "f":
		if name, ok := m.selected(); ok {
			m.view = m.dogs.ToggleFavorite(name)
			m.followDog(name)
		}
	case "d", "x", "delete":
		if name, ok := m.selected(); ok {
			m.view = m.dogs.RemoveDog(name)
			m.clampCursor()
			if m.view.Len() == 0 {
				m.focus = FocusInput
			}
		}
	}
}

// addDog submits the input line
func (m *Model) addDog() {
	view, err := m.dogs.AddDog(string(m.input))
	m.view = view
	if err != nil {
		log.Printf("Add rejected: %v", err)
		m.lastErr = err
		return
	}
	m.input = nil
	m.lastErr = nil
	m.cursor = 0
}

func (m *Model) switchFocus() {
	if m.focus == FocusInput && m.view.Len() > 0 {
		m.focus = FocusList
		m.clampCursor()
		return
	}
	m.focus = FocusInput
}

func (m *Model) selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= m.view.Len() {
		return "", false
	}
	return m.view.Dogs[m.cursor].Name, true
}

// followDog keeps the cursor on a dog after it moved
func (m *Model) followDog(name string) {
	for i, dog := range m.view.Dogs {
		if dog.Name == name {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= m.view.Len() {
		m.cursor = m.view.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model
func (m *Model) View() string {
	sections := []string{
		m.styles.Title.Render(m.localization.GetText(locale.KeyAppTitle)),
		m.renderInput(),
	}

	if m.lastErr != nil {
		sections = append(sections, m.styles.Error.Render(m.localization.ErrorText(m.lastErr)))
	}

	sections = append(sections,
		m.styles.Counter.Render(formatCounters(m.view)),
		m.renderList(),
		m.styles.Help.Render(m.localization.GetText(locale.KeyHelpKeys)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderInput() string {
	style := m.styles.Input
	switch {
	case m.lastErr != nil:
		style = m.styles.InputError
	case m.focus == FocusInput:
		style = m.styles.InputFocus
	}

	if m.width > 4 {
		style = style.Width(m.width - 2)
	}

	text := string(m.input)
	if text == "" && m.focus != FocusInput {
		return style.Render(m.styles.Placeholder.Render(m.localization.GetText(locale.KeyInputLabel)))
	}
	if text == "" {
		return style.Render(inputCursor + m.styles.Placeholder.Render(m.localization.GetText(locale.KeyInputLabel)))
	}
	if m.focus == FocusInput {
		text += inputCursor
	}
	return style.Render(text)
}

func (m *Model) renderList() string {
	if m.view.Len() == 0 {
		return m.styles.Empty.Render(m.localization.GetText(locale.KeyEmptyList))
	}

	rows := make([]string, 0, m.view.Len())
	for i, dog := range m.view.Dogs {
		heart := m.styles.NotFavorite.Render(iconNotFavorite)
		if dog.IsFavorite {
			heart = m.styles.Favorite.Render(iconFavorite)
		}

		style := m.styles.Row
		if m.focus == FocusList && i == m.cursor {
			style = m.styles.RowSelected
		}
		if m.width > 4 {
			style = style.Width(m.width - 2)
		}
		rows = append(rows, style.Render(heart+" "+dog.Name))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// formatCounters renders "🐶: n    💜: m"
func formatCounters(view model.View) string {
	return fmt.Sprintf("%s: %d    %s: %d", iconDog, view.Len(), iconHearts, view.FavoriteCount)
}

// Run starts the terminal program and blocks until the user quits
func Run(dogs doglist.Manager, localization *locale.Localization, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewModel(dogs, localization), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	return nil
}
