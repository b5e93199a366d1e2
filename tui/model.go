// Package tui is an interactive stepper for the machine: a terminal
// panel showing the registers, memory grid, queues, and program
// source, advanced one instruction at a time.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/golmc/golmc/cpu"
	"github.com/golmc/golmc/emulator"
)

type model struct {
	emu    *emulator.Emulator
	status string
}

func newModel(emu *emulator.Emulator) model {
	return model{emu: emu}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s", " ":
			m.status = ""
			if m.emu.Tick() {
				m.status = "halted"
			}
		case "r":
			m.status = "halted"
			if err := m.emu.RunSteps(emulator.STEP_LIMIT); err != nil {
				m.status = err.Error()
			}
		case "R":
			m.emu.Reset()
			m.status = ""
		}
	}
	return m, nil
}

func (m model) viewRegisters() string {
	var view strings.Builder

	next := cpu.Disassemble(m.emu.ReadMemory(m.emu.ReadPC()))
	fmt.Fprintf(&view, "pc   %2d\n", m.emu.ReadPC())
	fmt.Fprintf(&view, "acc  %3d\n", m.emu.ReadAccumulator())
	fmt.Fprintf(&view, "next %v", next)
	if !m.emu.Running() {
		view.WriteString("\n" + haltStyle.Render("HALTED"))
	}

	return view.String()
}

func (m model) viewMemory() string {
	var view strings.Builder

	pc := m.emu.ReadPC()
	for addr := range cpu.MEMORY_SIZE {
		if addr > 0 && addr%10 == 0 {
			view.WriteString("\n")
		}
		cell := fmt.Sprintf("%03d", m.emu.ReadMemory(addr))
		if addr == pc {
			cell = pcStyle.Render(cell)
		}
		view.WriteString(cell + " ")
	}

	return view.String()
}

func (m model) viewQueues() string {
	var view strings.Builder

	fmt.Fprintf(&view, "inbox  %v\n", m.emu.Inbox())
	fmt.Fprintf(&view, "outbox %v", m.emu.Outbox())

	return view.String()
}

func (m model) viewSource() string {
	if len(m.emu.Program.Opcodes) == 0 {
		return "(no source)"
	}

	var view strings.Builder

	pc := m.emu.ReadPC()
	for _, op := range m.emu.Program.Opcodes {
		marker := "  "
		if op.Addr == pc {
			marker = pcStyle.Render("> ")
		}
		fmt.Fprintf(&view, "%s%2d: %03d  %v\n", marker, op.Addr, op.Word, strings.Join(op.Words, " "))
	}

	return strings.TrimSuffix(view.String(), "\n")
}

func (m model) View() string {
	title := titleStyle.Render("golmc")

	registers := boxStyle.Render(m.viewRegisters())
	queues := boxStyle.Render(m.viewQueues())
	memory := boxStyle.Render(m.viewMemory())
	source := boxStyle.Render(m.viewSource())

	help := "s step  r run  R reset  q quit"
	if len(m.status) > 0 {
		help = m.status + "  " + help
	}

	left := lipgloss.JoinVertical(lipgloss.Left, registers, queues)
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, memory, source)

	return lipgloss.JoinVertical(lipgloss.Left, title, panels, helpStyle.Render(help))
}

// Start runs the stepper until the operator quits.
func Start(emu *emulator.Emulator) (err error) {
	program := tea.NewProgram(newModel(emu), tea.WithAltScreen())
	_, err = program.Run()

	return
}
