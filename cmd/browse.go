// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/Thermoquad/pronto/pkg/pronto"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse loaded remotes and send button presses",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCodec()
		if err != nil {
			return err
		}
		p := tea.NewProgram(initialBrowseModel(c))
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

//////////////////////////////////////////////////////////////
// list.Item implementations
//////////////////////////////////////////////////////////////

type remoteItem struct {
	name  string
	model string
}

func (r remoteItem) Title() string       { return r.name }
func (r remoteItem) Description() string { return r.model }
func (r remoteItem) FilterValue() string { return r.name }

type buttonItem struct {
	name string
	note string
}

func (b buttonItem) Title() string       { return b.name }
func (b buttonItem) Description() string { return b.note }
func (b buttonItem) FilterValue() string { return b.name }

//////////////////////////////////////////////////////////////
// Model
//////////////////////////////////////////////////////////////

const (
	focusRemotes = iota
	focusButtons
)

var (
	browseStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	browseErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type browseModel struct {
	codec *pronto.Codec

	remoteList list.Model
	buttonList list.Model
	focus      int

	currentRemote string
	status        string
	quitting      bool
}

func initialBrowseModel(c *pronto.Codec) browseModel {
	names := c.RemoteNames()
	sort.Strings(names)

	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		model := ""
		if r, ok := c.Remote(name); ok {
			model = r.Model
		}
		items = append(items, remoteItem{name: name, model: model})
	}

	remoteDelegate := list.NewDefaultDelegate()
	remoteList := list.New(items, remoteDelegate, 30, 20)
	remoteList.Title = "Remotes"
	remoteList.SetShowHelp(false)

	buttonDelegate := list.NewDefaultDelegate()
	buttonList := list.New(nil, buttonDelegate, 30, 20)
	buttonList.Title = "Buttons"
	buttonList.SetShowHelp(false)

	return browseModel{
		codec:      c,
		remoteList: remoteList,
		buttonList: buttonList,
		focus:      focusRemotes,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.remoteList.SetSize(msg.Width/2, msg.Height-2)
		m.buttonList.SetSize(msg.Width/2, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			if m.focus == focusButtons {
				m.focus = focusRemotes
				m.status = ""
			}
			return m, nil

		case "enter":
			return m.onEnter()
		}
	}

	var cmd tea.Cmd
	if m.focus == focusRemotes {
		m.remoteList, cmd = m.remoteList.Update(msg)
	} else {
		m.buttonList, cmd = m.buttonList.Update(msg)
	}
	return m, cmd
}

func (m browseModel) onEnter() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusRemotes:
		item, ok := m.remoteList.SelectedItem().(remoteItem)
		if !ok {
			return m, nil
		}
		r, ok := m.codec.Remote(item.name)
		if !ok {
			return m, nil
		}
		names := make([]string, 0, len(r.Functions))
		for name := range r.Functions {
			names = append(names, name)
		}
		sort.Strings(names)
		items := make([]list.Item, 0, len(names))
		for _, name := range names {
			items = append(items, buttonItem{name: name, note: r.Functions[name].Note})
		}
		m.buttonList.SetItems(items)
		m.currentRemote = item.name
		m.focus = focusButtons
		m.status = ""
		return m, nil

	case focusButtons:
		item, ok := m.buttonList.SelectedItem().(buttonItem)
		if !ok {
			return m, nil
		}
		err := m.codec.SendRemoteCode(context.Background(), m.currentRemote, item.name)
		if err != nil {
			m.status = browseErrorStyle.Render(fmt.Sprintf("send failed: %s", err))
		} else {
			m.status = browseStatusStyle.Render(fmt.Sprintf("sent %s/%s", m.currentRemote, item.name))
		}
		return m, nil
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}
	left := m.remoteList.View()
	right := m.buttonList.View()
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return row + "\n" + m.status + "\n"
}
