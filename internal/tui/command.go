package tui

import "strings"

// Command names accepted by the ':' prompt.
const (
	CmdOpen    = "open"
	CmdFilter  = "filter"
	CmdClose   = "close"
	CmdDetails = "details"
	CmdHelp    = "help"
	CmdQuit    = "quit"
)

var commandAliases = map[string]string{
	"o": CmdOpen,
	"f": CmdFilter,
	"c": CmdClose,
	"d": CmdDetails,
	"h": CmdHelp,
	"q": CmdQuit,
}

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
// Short aliases are expanded to their full names.
func ParseCommand(input string) Command {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	name, args, _ := strings.Cut(input, " ")
	cmd := Command{Name: strings.ToLower(name), Args: strings.TrimSpace(args)}
	if full, ok := commandAliases[cmd.Name]; ok {
		cmd.Name = full
	}
	return cmd
}
