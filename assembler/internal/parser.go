package internal

import (
	"strconv"
	"strings"

	"github.com/xiaobogaga/hackasm/util"
)

// Parse classifies every cleaned line into a Command and assigns rom indexes.
// Only A and C commands advance the rom index.
func Parse(lines []Line) ([]Command, error) {
	commands := make([]Command, 0, len(lines))
	romIdx := 0
	labels := map[string]int{}
	for _, line := range lines {
		command, err := parseLine(line, romIdx)
		if err != nil {
			return nil, err
		}
		if command.Tp == LCommand {
			if prev, exist := labels[command.Symbol]; exist {
				return nil, makeSyntaxErr(line, ErrDuplicateLabel, "label first declared at line "+strconv.Itoa(prev))
			}
			labels[command.Symbol] = line.Number
		} else {
			romIdx++
		}
		commands = append(commands, command)
	}
	return commands, nil
}

func parseLine(line Line, romIdx int) (Command, error) {
	text := line.Text
	if text == "" {
		return Command{}, makeSyntaxErr(line, ErrMalformedLine, "empty line")
	}
	command := Command{RomIdx: romIdx, Line: line.Number, OriginalContent: text}
	switch {
	case text[0] == '@':
		symbol := text[1:]
		if err := checkASymbol(line, symbol); err != nil {
			return Command{}, err
		}
		command.Tp = ACommand
		command.Symbol = symbol
	case text[0] == '(' && text[len(text)-1] == ')':
		label := text[1 : len(text)-1]
		if err := checkLabel(line, label); err != nil {
			return Command{}, err
		}
		command.Tp = LCommand
		command.Symbol = label
	default:
		dest, comp, jump, err := parseCCommand(line)
		if err != nil {
			return Command{}, err
		}
		command.Tp = CCommand
		command.Dest, command.Comp, command.Jump = dest, comp, jump
	}
	return command, nil
}

// checkASymbol accepts any non-empty symbol. A numeral must fit in a signed 16 bit
// word, anything else is a label or variable name. An out of range numeral such as
// @40000 is an error, it never falls back to being a variable.
func checkASymbol(line Line, symbol string) error {
	if symbol == "" {
		return makeSyntaxErr(line, ErrMalformedLine, "@ needs to be followed by a constant or symbol")
	}
	if util.IsNumeral(symbol) {
		if _, err := parseAddress(symbol); err != nil {
			return makeSyntaxErr(line, ErrMalformedLine, "constant out of 16 bit range")
		}
	}
	return nil
}

func checkLabel(line Line, label string) error {
	if label == "" {
		return makeSyntaxErr(line, ErrMalformedLine, "empty label")
	}
	if util.IsNumber(label[0]) {
		return makeSyntaxErr(line, ErrMalformedLine, "label starts with a digit")
	}
	for i := 0; i < len(label); i++ {
		if !util.IsSymbolChar(label[i]) {
			return makeSyntaxErr(line, ErrMalformedLine, "wrong label format")
		}
	}
	return nil
}

func parseAddress(symbol string) (int16, error) {
	value, err := strconv.ParseInt(symbol, 10, 16)
	return int16(value), err
}

// parseCCommand splits `dest=comp;jump` on the first ';' and then the first '='.
// Every field is trimmed, blanks around the comp operators are dropped and the
// result must belong to the hack vocabulary.
func parseCCommand(line Line) (dest, comp, jump string, err error) {
	left, jump, hasJump := strings.Cut(line.Text, ";")
	dest, comp, hasDest := strings.Cut(left, "=")
	if !hasDest {
		dest, comp = "", left
	}
	dest, jump = util.TrimBlank(dest), util.TrimBlank(jump)
	comp = util.StripBlankAround(comp, compOperators)
	if comp == "" {
		return "", "", "", makeSyntaxErr(line, ErrMissingComp, "c command needs a comp part")
	}
	if _, exist := compTable[comp]; !exist {
		return "", "", "", makeSyntaxErr(line, ErrUnknownMnemonic, "wrong c command of comp code format: "+comp)
	}
	if hasDest {
		if _, exist := destTable[dest]; !exist {
			return "", "", "", makeSyntaxErr(line, ErrUnknownMnemonic, "wrong c command of dest code format: "+dest)
		}
	}
	if hasJump {
		if _, exist := jumpTable[jump]; !exist {
			return "", "", "", makeSyntaxErr(line, ErrUnknownMnemonic, "wrong c command of jump code format: "+jump)
		}
	}
	return dest, comp, jump, nil
}
