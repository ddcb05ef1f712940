package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p, p.commands, 0)
}

func printCommands(p *Executor, commands map[string]*Command, depth int) {
	// aliases share one *Command; print it once under the name that is not an alias
	names := make(map[*Command]string)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil {
			continue
		}
		if _, ok := names[command]; !ok || !slices.Contains(command.Aliases, name) {
			if ok && !slices.Contains(command.Aliases, names[command]) {
				continue
			}
			names[command] = name
		}
	}

	for _, name := range slices.Sorted(maps.Values(names)) {
		command := commands[name]
		line := strings.Repeat("  ", depth) + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(p.output, line)

		if len(command.Subs) > 0 {
			printCommands(p, command.Subs, depth+1)
		}
	}
}
