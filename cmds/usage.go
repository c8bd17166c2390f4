package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// PrintUsage lists every command with its description. Aliases share the
// line of the command they name.
func (p *Executor) PrintUsage() {
	printCommands(p.output, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || printed[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		printed[command] = true

		names := append([]string{name}, command.Aliases...)
		line := strings.Repeat("  ", depth) + strings.Join(names, ", ")
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
