package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/dnd"
)

type commandInfo struct {
	execute        func(m *Model, command, args string) tea.Cmd
	getCompletions func(m *Model, args string) []string
}

var commandRegistry = make(map[string]commandInfo)

func registerCommand(name string, info commandInfo) {
	commandRegistry[name] = info
}

func init() {
	registerCommand("q", commandInfo{execute: cmdQuit})
	registerCommand("quit", commandInfo{execute: cmdQuit})

	registerCommand("move", commandInfo{
		execute:        cmdMove,
		getCompletions: moveCompletions,
	})
	registerCommand("find", commandInfo{execute: cmdFind})
	registerCommand("fzf", commandInfo{execute: cmdFind})
	registerCommand("help", commandInfo{execute: cmdHelp})
	registerCommand("noh", commandInfo{execute: cmdNoHighlight})
	registerCommand("nohlsearch", commandInfo{execute: cmdNoHighlight})
}

func commandNames() []string {
	names := make([]string, 0, len(commandRegistry))
	for name := range commandRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Model) executeCommand(line string) tea.Cmd {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	command := parts[0]
	if command == "" {
		return nil
	}

	var args string
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	info, ok := commandRegistry[command]
	if !ok {
		m.statusMessage = "Not a command: " + command
		return clearStatusCmd(3 * time.Second)
	}
	return info.execute(m, command, args)
}

// completeCommandLine extends the last word of line with the first
// candidate it prefixes.
func (m *Model) completeCommandLine(line string) string {
	command, args, hasArgs := strings.Cut(line, " ")
	if !hasArgs {
		for _, name := range commandNames() {
			if strings.HasPrefix(name, command) && name != command {
				return name
			}
		}
		return line
	}

	info, ok := commandRegistry[command]
	if !ok || info.getCompletions == nil {
		return line
	}

	words := strings.Split(args, " ")
	last := words[len(words)-1]
	for _, candidate := range info.getCompletions(m, args) {
		if strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(last)) {
			words[len(words)-1] = candidate
			return command + " " + strings.Join(words, " ")
		}
	}
	return line
}

func cmdQuit(m *Model, command, args string) tea.Cmd {
	return tea.Quit
}

// cmdMove handles ":move <item id> <column>".
func cmdMove(m *Model, command, args string) tea.Cmd {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		m.statusMessage = "Usage: :move <item-id> <column>"
		return clearStatusCmd(3 * time.Second)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		m.statusMessage = fmt.Sprintf("Invalid item id: %s", fields[0])
		return clearStatusCmd(3 * time.Second)
	}

	source, ok := m.board.Locate(id)
	if !ok {
		m.statusMessage = fmt.Sprintf("No item with id %d", id)
		return clearStatusCmd(3 * time.Second)
	}

	dest, ok := m.board.ResolveKey(fields[1])
	if !ok {
		m.statusMessage = fmt.Sprintf("Unknown column: %s", fields[1])
		return clearStatusCmd(3 * time.Second)
	}
	if dest == source {
		m.statusMessage = fmt.Sprintf("Item %d is already in %s", id, m.columnTitle(dest))
		return clearStatusCmd(3 * time.Second)
	}

	return m.dragTo(dnd.Payload{Type: dnd.Card, ItemID: id, Origin: string(source)}, dest)
}

// moveCompletions offers column keys once the item id has been typed.
func moveCompletions(m *Model, args string) []string {
	if len(strings.Fields(args)) < 1 || !strings.Contains(args, " ") {
		return nil
	}
	out := make([]string, 0, len(m.board.Columns))
	for _, k := range m.board.Keys() {
		out = append(out, string(k))
	}
	return out
}

func cmdFind(m *Model, command, args string) tea.Cmd {
	return m.openFinder()
}

func cmdHelp(m *Model, command, args string) tea.Cmd {
	m.help.ShowAll = !m.help.ShowAll
	return nil
}

func cmdNoHighlight(m *Model, command, args string) tea.Cmd {
	m.clearSearch()
	m.statusMessage = "Search highlighting cleared"
	return clearStatusCmd(2 * time.Second)
}
