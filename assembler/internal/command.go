package internal

import "fmt"

type CommandType int

const (
	// ACommand is `@symbol`, it loads a constant or an address into the A register.
	ACommand CommandType = iota
	// CCommand is `dest=comp;jump`.
	CCommand
	// LCommand is `(LABEL)`. It takes no rom slot.
	LCommand
)

func (tp CommandType) String() string {
	switch tp {
	case ACommand:
		return "A"
	case CCommand:
		return "C"
	case LCommand:
		return "L"
	default:
		return fmt.Sprintf("CommandType(%d)", int(tp))
	}
}

// Command is one parsed statement. Symbol is set for A and L commands, Dest, Comp
// and Jump for C commands. An empty Dest or Jump means the field is absent.
//
// RomIdx is the rom slot of an A or C command. For an L command it is the slot of
// the next instruction.
type Command struct {
	Tp              CommandType
	Symbol          string
	Dest            string
	Comp            string
	Jump            string
	RomIdx          int
	Line            int
	OriginalContent string
}

func (command Command) String() string {
	switch command.Tp {
	case CCommand:
		return fmt.Sprintf("Command: {Tp: %s, Dest: %q, Comp: %q, Jump: %q, RomIdx: %d, Line: %d, OriginalContent: %s}",
			command.Tp, command.Dest, command.Comp, command.Jump, command.RomIdx, command.Line, command.OriginalContent)
	default:
		return fmt.Sprintf("Command: {Tp: %s, Symbol: %s, RomIdx: %d, Line: %d, OriginalContent: %s}",
			command.Tp, command.Symbol, command.RomIdx, command.Line, command.OriginalContent)
	}
}
