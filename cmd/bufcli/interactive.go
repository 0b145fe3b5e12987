package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typedbuf/typedbuf/handle"
	"github.com/typedbuf/typedbuf/view"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	table  *handle.Table
	h      handle.Handle
	input  textinput.Model
	result string
	err    error
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "new 25 int"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &interactiveModel{
		table: handle.NewTable(),
		input: ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.table.Close()
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "quit" || line == "q" {
				m.table.Close()
				return m, tea.Quit
			}
			if line != "" {
				m.result, m.err = m.execute(line)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) execute(line string) (string, error) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "new":
		if len(args) < 2 {
			return "", fmt.Errorf("usage: new COUNT TYPE")
		}
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("count: %w", err)
		}
		tag, err := view.Parse(strings.Join(args[1:], " "))
		if err != nil {
			return "", err
		}
		if m.h != 0 {
			m.table.Remove(m.h)
		}
		h, err := m.table.NewTyped(count, tag)
		if err != nil {
			return "", err
		}
		m.h = h
		return fmt.Sprintf("allocated %d x %s", count, tag), nil

	case "size":
		if err := m.needBuffer(); err != nil {
			return "", err
		}
		if len(args) == 0 {
			size, err := m.table.Size(m.h)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d bytes", size), nil
		}
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("size: %w", err)
		}
		if err := m.table.SetSize(m.h, size); err != nil {
			return "", err
		}
		return fmt.Sprintf("resized to %d bytes", size), nil

	case "len":
		if err := m.needBuffer(); err != nil {
			return "", err
		}
		tag, err := m.tagArg(args)
		if err != nil {
			return "", err
		}
		n, err := m.table.Length(m.h, tag)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d elements", n), nil

	case "type":
		if err := m.needBuffer(); err != nil {
			return "", err
		}
		if len(args) == 0 {
			tag, err := m.table.Type(m.h)
			if err != nil {
				return "", err
			}
			return tag.String(), nil
		}
		tag, err := view.Parse(strings.Join(args, " "))
		if err != nil {
			return "", err
		}
		if err := m.table.SetType(m.h, tag); err != nil {
			return "", err
		}
		return "type set to " + tag.String(), nil

	case "set":
		if err := m.needBuffer(); err != nil {
			return "", err
		}
		if len(args) < 2 {
			return "", fmt.Errorf("usage: set INDEX VALUE [TYPE]")
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("index: %w", err)
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return "", fmt.Errorf("value: %w", err)
		}
		tag, err := m.tagArg(args[2:])
		if err != nil {
			return "", err
		}
		if err := m.table.SetValue(m.h, index, tag, value); err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d] = %s", index, args[1]), nil

	case "get":
		if err := m.needBuffer(); err != nil {
			return "", err
		}
		if len(args) < 1 {
			return "", fmt.Errorf("usage: get INDEX [TYPE]")
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("index: %w", err)
		}
		tag, err := m.tagArg(args[1:])
		if err != nil {
			return "", err
		}
		v, err := m.table.GetValue(m.h, index, tag)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d] = %v", index, v), nil

	case "fill":
		if err := m.needBuffer(); err != nil {
			return "", err
		}
		step := 1
		if len(args) > 0 {
			var err error
			step, err = strconv.Atoi(args[0])
			if err != nil {
				return "", fmt.Errorf("step: %w", err)
			}
		}
		n, err := m.table.Length(m.h, handle.DefaultTag)
		if err != nil {
			return "", err
		}
		for i := 0; i < n; i++ {
			if err := m.table.SetValue(m.h, i, handle.DefaultTag, i*step); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("filled %d elements with i*%d", n, step), nil

	case "help":
		return "new COUNT TYPE | size [N] | len [TYPE] | type [TYPE] | set IDX VAL [TYPE] | get IDX [TYPE] | fill [STEP] | quit", nil

	default:
		return "", fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func (m *interactiveModel) needBuffer() error {
	if m.h == 0 {
		return fmt.Errorf("no buffer; use: new COUNT TYPE")
	}
	return nil
}

// tagArg parses an optional trailing type argument, defaulting to the
// buffer's cached type.
func (m *interactiveModel) tagArg(args []string) (view.Tag, error) {
	if len(args) == 0 {
		return handle.DefaultTag, nil
	}
	return view.Parse(strings.Join(args, " "))
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("typedbuf inspector"))
	b.WriteString("\n\n")

	if m.h != 0 {
		if buf, ok := m.table.Get(m.h); ok {
			tag, _ := m.table.Type(m.h)
			n, _ := m.table.Length(m.h, handle.DefaultTag)
			b.WriteString(infoStyle.Render(fmt.Sprintf("buffer #%d: %d bytes, %d x %s (capacity %d)",
				m.h, buf.Size(), n, tag, buf.Capacity())))
			b.WriteString("\n\n")
			b.WriteString(hexPreview(buf.Bytes()))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(helpStyle.Render("no buffer allocated"))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.result != "" {
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter run command • help commands • ctrl+c quit"))

	return b.String()
}

const hexPreviewBytes = 128

func hexPreview(data []byte) string {
	truncated := false
	if len(data) > hexPreviewBytes {
		data = data[:hexPreviewBytes]
		truncated = true
	}
	s := dumpHex(data)
	if truncated {
		s += helpStyle.Render("  ...") + "\n"
	}
	return s
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
