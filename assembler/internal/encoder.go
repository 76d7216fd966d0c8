package internal

import (
	"bufio"
	"io"

	"github.com/xiaobogaga/hackasm/util"
)

// Encode is the second pass. It writes one 16 character line per A and C command
// in rom order, allocating variables in table on their first occurrence.
func Encode(commands []Command, table *SymbolTable, w io.Writer) error {
	bf := bufio.NewWriter(w)
	for _, command := range commands {
		var code string
		switch command.Tp {
		case ACommand:
			addr, err := resolveACommand(command, table)
			if err != nil {
				return err
			}
			code = formatCode(addr)
		case CCommand:
			code = encodeCCommand(command)
		default:
			continue
		}
		if _, err := bf.WriteString(code); err != nil {
			return makeIOErr("write machine code", err)
		}
		if err := bf.WriteByte('\n'); err != nil {
			return makeIOErr("write machine code", err)
		}
	}
	if err := bf.Flush(); err != nil {
		return makeIOErr("flush machine code", err)
	}
	return nil
}

func resolveACommand(command Command, table *SymbolTable) (int16, error) {
	if util.IsNumeral(command.Symbol) {
		addr, err := parseAddress(command.Symbol)
		if err != nil {
			return 0, &SyntaxError{Line: command.Line, Content: command.OriginalContent,
				Msg: "constant out of 16 bit range", Err: ErrMalformedLine}
		}
		return addr, nil
	}
	addr, err := table.Resolve(command.Symbol)
	if err != nil {
		return 0, &SyntaxError{Line: command.Line, Content: command.OriginalContent,
			Msg: "variable " + command.Symbol, Err: ErrRAMExhausted}
	}
	return addr, nil
}
