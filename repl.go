// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/ops"
)

// focusArea is the pane receiving key events
type focusArea int

const (
	focusInput focusArea = iota
	focusTranscript
	focusTree
)

// ReplModel represents the Bubble Tea application state
type ReplModel struct {
	ready bool

	// Components
	input          textinput.Model
	transcriptView viewport.Model
	treeView       viewport.Model

	// Data
	tree      *avl.Tree
	manager   *ops.Manager
	config    *Config
	helpCache *cache.Cache

	// State
	focus        focusArea
	showHelp     bool
	transcript   []string
	history      []string
	historyIndex int
	status       string
	statusIsErr  bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int

	copyFn func(string) error
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// NewReplModel creates the initial model around tree
func NewReplModel(tree *avl.Tree, manager *ops.Manager, config *Config, hc *cache.Cache) ReplModel {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30, delete 20, search 10, inorder ..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	transcriptView := viewport.New(0, 0)
	treeView := viewport.New(0, 0)

	model := ReplModel{
		input:          ti,
		transcriptView: transcriptView,
		treeView:       treeView,
		tree:           tree,
		manager:        manager,
		config:         config,
		helpCache:      hc,
		focus:          focusInput,
		transcript:     []string{},
		history:        []string{},
		styles:         NewStyles(),
		copyFn:         copyToClipboard,
	}
	model.refreshTree()
	return model
}

// Init is called when the program starts
func (m ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.cycleFocus()
			return m, nil
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshTree()
			return m, nil
		case "ctrl+y":
			m.copyInOrder()
			return m, nil
		case "enter":
			if m.focus == focusInput {
				line := m.input.Value()
				m.input.SetValue("")
				m.execute(line)
				return m, nil
			}
		case "up":
			if m.focus == focusInput {
				m.recallPrevious()
				return m, nil
			}
		case "down":
			if m.focus == focusInput {
				m.recallNext()
				return m, nil
			}
		}

		switch m.focus {
		case focusInput:
			m.input, cmd = m.input.Update(msg)
		case focusTranscript:
			m.transcriptView, cmd = m.transcriptView.Update(msg)
		case focusTree:
			m.treeView, cmd = m.treeView.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshTree()
		m.ready = true
	}

	return m, nil
}

func (m *ReplModel) cycleFocus() {
	m.focus = (m.focus + 1) % 3
	if m.focus == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// execute runs one line and records it in the transcript and history
func (m *ReplModel) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	m.history = append(m.history, line)
	m.historyIndex = len(m.history)

	out, err := m.manager.Execute(m.tree, line)
	m.appendTranscript("> " + line)
	if err != nil {
		m.appendTranscript("error: " + err.Error())
		m.setStatus(err.Error(), true)
	} else {
		if out = strings.TrimSuffix(out, "\n"); out != "" {
			m.appendTranscript(out)
		}
		m.setStatus(fmt.Sprintf("%d keys, height %d", m.tree.Len(), m.tree.Height()), false)
	}

	m.transcriptView.SetContent(strings.Join(m.transcript, "\n"))
	m.transcriptView.GotoBottom()
	m.refreshTree()
}

func (m *ReplModel) appendTranscript(text string) {
	m.transcript = append(m.transcript, strings.Split(text, "\n")...)
	if limit := m.config.Repl.HistorySize; limit > 0 && len(m.transcript) > limit {
		m.transcript = m.transcript[len(m.transcript)-limit:]
	}
}

func (m *ReplModel) recallPrevious() {
	if m.historyIndex > 0 {
		m.historyIndex--
		m.input.SetValue(m.history[m.historyIndex])
		m.input.CursorEnd()
	}
}

func (m *ReplModel) recallNext() {
	if m.historyIndex < len(m.history)-1 {
		m.historyIndex++
		m.input.SetValue(m.history[m.historyIndex])
		m.input.CursorEnd()
		return
	}
	m.historyIndex = len(m.history)
	m.input.SetValue("")
}

func (m *ReplModel) copyInOrder() {
	if err := m.copyFn(m.tree.String()); err != nil {
		m.setStatus("copy failed: "+err.Error(), true)
		return
	}
	m.setStatus("📋 Copied in-order keys to clipboard", false)
}

func (m *ReplModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// refreshTree redraws the right pane: the tree, or help when toggled
func (m *ReplModel) refreshTree() {
	if m.showHelp {
		m.treeView.SetContent(m.renderHelp())
		m.treeView.GotoTop()
		return
	}

	var b strings.Builder
	if m.tree.IsEmpty() {
		b.WriteString("(empty tree)\n")
	} else {
		m.tree.Print(&b)
	}
	b.WriteString("\nin-order: ")
	b.WriteString(m.tree.String())
	m.treeView.SetContent(b.String())
}

// renderHelp renders the markdown guide once per width
func (m *ReplModel) renderHelp() string {
	width := m.treeView.Width
	rendered, err := GetOrRenderHelpPage(m.helpCache, "repl", width, func() (string, error) {
		if m.glamourRenderer == nil {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(m.config.Repl.WrapWidth),
			)
			if err != nil {
				return "", err
			}
			m.glamourRenderer = renderer
		}
		return m.glamourRenderer.Render(getHelpMarkdown(m.manager))
	})
	if err != nil {
		// Fall back to plain text
		return getHelpMarkdown(m.manager)
	}
	return rendered
}

func (m *ReplModel) updateLayout() {
	inputHeight := 3
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - inputHeight - 6

	m.input.Width = leftWidth - 6
	m.transcriptView.Width = leftWidth - 2
	m.transcriptView.Height = max(bodyHeight-2, 1)
	m.treeView.Width = rightWidth - 2
	m.treeView.Height = max(bodyHeight+inputHeight, 1)
}

// View renders the program's UI
func (m ReplModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - inputHeight - 6

	box := func(focused bool, title string, width, height int, content string) string {
		style := m.styles.BorderBlurred
		if focused {
			style = m.styles.BorderFocused
			title += " (Active)"
		}
		return style.
			Width(width).
			Height(height).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Width(width-4).Render(title),
				content,
			))
	}

	inputBox := box(m.focus == focusInput, " ⌨️  Operation", leftWidth, inputHeight, m.input.View())
	transcriptBox := box(m.focus == focusTranscript, " 📜 Transcript", leftWidth, bodyHeight, m.transcriptView.View())

	rightTitle := " 🌳 Tree"
	if m.showHelp {
		rightTitle = " 📖 Help"
	}
	treeBox := box(m.focus == focusTree, rightTitle, rightWidth, bodyHeight+inputHeight+2, m.treeView.View())

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, transcriptBox)
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, treeBox)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus(), m.renderKeyHelp())
}

func (m ReplModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return m.styles.ErrorMessage.Render(" ✗ " + m.status)
	}
	return m.styles.SuccessMessage.Render(" ✓ " + m.status)
}

// renderKeyHelp renders the key binding footer
func (m ReplModel) renderKeyHelp() string {
	keys := []string{"enter", "↑/↓", "tab", "f1", "ctrl+y", "esc"}
	descs := []string{"run", "history", "switch focus", "toggle help", "copy in-order", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runRepl starts the Bubble Tea application on tree
func runRepl(tree *avl.Tree, manager *ops.Manager, config *Config, hc *cache.Cache) error {
	InitializeColors(config.Display.Color)

	program := tea.NewProgram(
		NewReplModel(tree, manager, config, hc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
