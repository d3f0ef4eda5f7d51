package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nettopo/topograph/pkg/topology"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// deviceListModel is the bubbletea model for interactive device selection,
// used by "topograph tree" when no target is given and the source can
// enumerate its devices.
type deviceListModel struct {
	devices  []string
	cursor   int
	selected string
	height   int
	offset   int
}

// newDeviceListModel creates a device list model.
func newDeviceListModel(devices []string) deviceListModel {
	return deviceListModel{devices: devices, height: 15}
}

func (m deviceListModel) Init() tea.Cmd {
	return nil
}

func (m deviceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.devices)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.devices[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m deviceListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Device"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.devices) {
		end = len(m.devices)
	}

	for i := m.offset; i < end; i++ {
		d := m.devices[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		kind := "access  "
		if topology.IsBackbone(d) {
			kind = "backbone"
		}

		line := fmt.Sprintf("%s%s  %s", cursor, listDimStyle.Render(kind), d)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.devices))))

	return b.String()
}

// selectDevice runs the interactive picker and returns the chosen device,
// or "" when the picker was dismissed.
func selectDevice(devices []string) (string, error) {
	final, err := tea.NewProgram(newDeviceListModel(devices)).Run()
	if err != nil {
		return "", fmt.Errorf("device picker: %w", err)
	}
	m, ok := final.(deviceListModel)
	if !ok {
		return "", nil
	}
	return m.selected, nil
}
