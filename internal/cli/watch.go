package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/stage"
)

var watchCmd = &cobra.Command{
	Use:   "watch [scramble]",
	Short: "Interactively apply moves and watch milestone status update live",
	Long: `Watch starts a full-screen TUI that tracks a cube as you type moves
into it, one line of WCA notation at a time, re-evaluating every
EO/DR/HTR milestone on every axis after each line so you can see which
ones you've just entered or left.

Keyboard shortcuts:
  <moves> Enter   - Apply a space-separated move sequence
  ctrl+u          - Clear the pending input line
  ctrl+r          - Reset the cube back to the starting scramble
  q / ctrl+c      - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scrambleStr := ""
		if len(args) > 0 {
			scrambleStr = args[0]
		}
		start, err := cubie.ParseMoves(scrambleStr)
		if err != nil {
			return fmt.Errorf("failed to parse scramble: %w", err)
		}

		m := newWatchModel(scrambleStr, start)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

var (
	watchTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))
	watchSolvedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82"))
	watchEligibleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))
	watchMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
	watchErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
	watchHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

type watchModel struct {
	scrambleStr string
	start       []cubie.Move
	applied     []cubie.Move
	input       string
	lastErr     string
	quitting    bool
}

func newWatchModel(scrambleStr string, start []cubie.Move) *watchModel {
	return &watchModel{scrambleStr: scrambleStr, start: start}
}

func (m *watchModel) Init() tea.Cmd {
	return nil
}

func (m *watchModel) cube() cubie.Cube {
	c := cubie.FromMoves(m.start)
	c.ApplyMoves(m.applied)
	return c
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+u":
		m.input = ""
	case "ctrl+r":
		m.applied = nil
		m.lastErr = ""
	case "enter":
		moves, err := cubie.ParseMoves(m.input)
		if err != nil {
			m.lastErr = err.Error()
		} else {
			m.applied = append(m.applied, moves...)
			m.lastErr = ""
		}
		m.input = ""
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if len(keyMsg.String()) == 1 {
			m.input += keyMsg.String()
		}
	}
	return m, nil
}

func (m *watchModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	c := m.cube()
	var b strings.Builder
	b.WriteString(watchTitleStyle.Render("FMC Watch"))
	b.WriteString("\n\n")

	if m.scrambleStr != "" {
		b.WriteString(watchMutedStyle.Render("scramble: " + m.scrambleStr))
		b.WriteString("\n")
	}
	if len(m.applied) > 0 {
		parts := make([]string, len(m.applied))
		for i, mv := range m.applied {
			parts[i] = cubie.MoveString(mv)
		}
		b.WriteString("applied:  " + strings.Join(parts, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	kinds := []stage.Kind{stage.EO, stage.DR, stage.HTR, stage.FR, stage.Slice}
	axes := []cubie.Axis{cubie.AxisUD, cubie.AxisFB, cubie.AxisRL}
	for _, kind := range kinds {
		for _, axis := range axes {
			cls := stage.For(kind, axis)
			label := fmt.Sprintf("  %-7s %-3s ", kind, axis)
			switch {
			case cls.IsSolved(c):
				b.WriteString(label + watchSolvedStyle.Render("solved"))
			case cls.IsEligible(c):
				b.WriteString(label + watchEligibleStyle.Render("eligible, case "+cls.CaseName(c)))
			default:
				b.WriteString(label + watchMutedStyle.Render("-"))
			}
			b.WriteString("\n")
		}
	}

	finish := stage.For(stage.Finish, cubie.AxisUD)
	label := fmt.Sprintf("  %-7s %-3s ", stage.Finish, "-")
	if finish.IsSolved(c) {
		b.WriteString(label + watchSolvedStyle.Render("solved"))
	} else if finish.IsEligible(c) {
		b.WriteString(label + watchEligibleStyle.Render("eligible, case "+finish.CaseName(c)))
	} else {
		b.WriteString(label + watchMutedStyle.Render("-"))
	}
	b.WriteString("\n\n")

	if m.lastErr != "" {
		b.WriteString(watchErrorStyle.Render("error: " + m.lastErr))
		b.WriteString("\n")
	}
	b.WriteString("> " + m.input + "_\n\n")
	b.WriteString(watchHelpStyle.Render("type moves, Enter to apply - ctrl+u clear - ctrl+r reset - q quit"))
	return b.String()
}
