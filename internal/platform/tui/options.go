package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravitate/internal/config"
	"github.com/vovakirdan/gravitate/internal/core"
)

type optionField int

const (
	optionColumns optionField = iota
	optionRows
	optionColors
	optionDelay
	optionScoring
	optionSave
	optionCount
)

const delayStep = 50

// OptionsModel edits the board configuration.
type OptionsModel struct {
	cfg       config.GravitateConfig
	cursor    optionField
	width     int
	height    int
	keyMapper *KeyMapper
	help      help.Model
	saved     bool
	back      bool
	quitting  bool
}

// NewOptionsModel creates an editor for cfg.
func NewOptionsModel(cfg config.GravitateConfig, width, height int) OptionsModel {
	cfg.Clamp()
	return OptionsModel{
		cfg:       cfg,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// Init initializes the model.
func (m OptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m OptionsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < optionCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionSelect:
		if m.cursor == optionSave {
			m.saved = true
			return m, tea.Quit
		}
		m.adjust(1)
	}
	return m, nil
}

// adjust changes the field under the cursor by one step in dir.
func (m *OptionsModel) adjust(dir int) {
	b := &m.cfg.Board
	switch m.cursor {
	case optionColumns:
		b.Columns = core.Clamp(b.Columns+dir, config.SizeMin, config.SizeMax)
	case optionRows:
		b.Rows = core.Clamp(b.Rows+dir, config.SizeMin, config.SizeMax)
	case optionColors:
		b.MaxColors = core.Clamp(b.MaxColors+dir, config.ColorsMin, config.ColorsMax)
	case optionDelay:
		b.DelayMs = core.Clamp(b.DelayMs+dir*delayStep, config.DelayMsMin, config.DelayMsMax)
	case optionScoring:
		if m.cfg.Scoring.Rule == config.RuleBonus {
			m.cfg.Scoring.Rule = config.RuleClassic
		} else {
			m.cfg.Scoring.Rule = config.RuleBonus
		}
	}
}

// View renders the option list.
func (m OptionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("O P T I O N S"), m.width))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Columns      < %2d >", m.cfg.Board.Columns),
		fmt.Sprintf("Rows         < %2d >", m.cfg.Board.Rows),
		fmt.Sprintf("Colors       < %2d >", m.cfg.Board.MaxColors),
		fmt.Sprintf("Delay    < %4d ms >", m.cfg.Board.DelayMs),
		fmt.Sprintf("Scoring  < %-7s >", m.cfg.Scoring.Rule),
		"Save",
	}
	for i, row := range rows {
		line := "  " + row
		if optionField(i) == m.cursor {
			line = menuCursor.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keyMapper.Menu), m.width))
	b.WriteString("\n")
	return b.String()
}

// Config returns the edited configuration.
func (m OptionsModel) Config() config.GravitateConfig {
	return m.cfg
}

// Saved reports whether the user chose Save.
func (m OptionsModel) Saved() bool {
	return m.saved
}

// RunOptions shows the options editor. It returns the edited config and
// whether the user chose to save it.
func RunOptions(cfg config.GravitateConfig, width, height int) (config.GravitateConfig, bool, error) {
	p := tea.NewProgram(
		NewOptionsModel(cfg, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return cfg, false, err
	}
	m, ok := finalModel.(OptionsModel)
	if !ok || !m.Saved() {
		return cfg, false, nil
	}
	return m.Config(), true, nil
}
