package handlers

import (
	"strings"
)

// CommandKind identifies the parsed command variant.
type CommandKind int

const (
	CommandUnrecognized CommandKind = iota
	CommandAdd
	CommandTotal
	CommandList
)

func (k CommandKind) String() string {
	switch k {
	case CommandAdd:
		return "add"
	case CommandTotal:
		return "total"
	case CommandList:
		return "list"
	}
	return "unrecognized"
}

// Command is the single internal representation both entry paths produce: the
// legacy path by tokenizing raw message text, the slash path directly from
// structured options.
type Command struct {
	Kind       CommandKind
	Item       string
	AmountText string
}

// ParseCommand tokenizes raw message text into a Command. Verb matching is
// case-insensitive. For add, the last token is the amount and everything
// before it joins into the item name; a single token is taken as the amount
// with an empty item. A bare add verb returns ErrMissingAmount. Anything that
// does not match a verb is Unrecognized.
func ParseCommand(raw, prefix string) (Command, error) {
	content := strings.TrimSpace(raw)

	switch strings.ToLower(content) {
	case prefix + "total":
		return Command{Kind: CommandTotal}, nil
	case prefix + "list":
		return Command{Kind: CommandList}, nil
	}

	fields := strings.Fields(content)
	if len(fields) == 0 || strings.ToLower(fields[0]) != prefix+"add" {
		return Command{Kind: CommandUnrecognized}, nil
	}

	args := fields[1:]
	switch len(args) {
	case 0:
		return Command{Kind: CommandAdd}, ErrMissingAmount
	case 1:
		return Command{Kind: CommandAdd, AmountText: args[0]}, nil
	default:
		return Command{
			Kind:       CommandAdd,
			Item:       strings.Join(args[:len(args)-1], " "),
			AmountText: args[len(args)-1],
		}, nil
	}
}
