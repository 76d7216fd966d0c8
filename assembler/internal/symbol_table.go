package internal

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/golang/glog"
)

const (
	firstVariableAddr int16 = 16
	screenAddr        int16 = 16384
	keyboardAddr      int16 = 24576
	maxRomIdx         int16 = 32767
)

var predefinedSymbols = map[string]int16{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": screenAddr,
	"KBD":    keyboardAddr,
}

func init() {
	for i := int16(0); i < 16; i++ {
		predefinedSymbols["R"+strconv.Itoa(int(i))] = i
	}
}

// SymbolTable maps labels, variables and predefined names to addresses.
// Variables are handed out from nextRAMIdx, starting at 16.
type SymbolTable struct {
	addrs      map[string]int16
	nextRAMIdx int16
}

// Symbol is one entry of a SymbolTable snapshot.
type Symbol struct {
	Name string
	Addr int16
}

func NewSymbolTable() *SymbolTable {
	table := &SymbolTable{
		addrs:      make(map[string]int16, len(predefinedSymbols)),
		nextRAMIdx: firstVariableAddr,
	}
	for name, addr := range predefinedSymbols {
		table.addrs[name] = addr
	}
	return table
}

func (table *SymbolTable) Lookup(name string) (int16, bool) {
	addr, exist := table.addrs[name]
	return addr, exist
}

func (table *SymbolTable) NextRAMIdx() int16 {
	return table.nextRAMIdx
}

// AddLabel binds label to a rom index. Predefined symbols are never overwritten,
// it returns false in that case.
func (table *SymbolTable) AddLabel(label string, romIdx int16) bool {
	if _, predefined := predefinedSymbols[label]; predefined {
		return false
	}
	table.addrs[label] = romIdx
	return true
}

// Resolve returns the address of name, allocating the next free ram address if
// the name has not been seen before.
func (table *SymbolTable) Resolve(name string) (int16, error) {
	if addr, exist := table.addrs[name]; exist {
		return addr, nil
	}
	if table.nextRAMIdx >= screenAddr {
		return 0, fmt.Errorf("%w: %s", ErrRAMExhausted, name)
	}
	addr := table.nextRAMIdx
	table.addrs[name] = addr
	table.nextRAMIdx++
	return addr, nil
}

// Symbols returns every entry sorted by address, then by name.
func (table *SymbolTable) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(table.addrs))
	for name, addr := range table.addrs {
		symbols = append(symbols, Symbol{Name: name, Addr: addr})
	}
	sort.Slice(symbols, func(i, j int) bool {
		if symbols[i].Addr != symbols[j].Addr {
			return symbols[i].Addr < symbols[j].Addr
		}
		return symbols[i].Name < symbols[j].Name
	})
	return symbols
}

// BuildSymbolTable is the first pass: it seeds the predefined symbols and records
// every label at the rom index of the instruction following it.
func BuildSymbolTable(commands []Command) (*SymbolTable, error) {
	table := NewSymbolTable()
	for _, command := range commands {
		if command.Tp != LCommand {
			continue
		}
		if command.RomIdx > int(maxRomIdx) {
			return nil, &SyntaxError{Line: command.Line, Content: command.OriginalContent,
				Msg: "label beyond the 32K rom", Err: ErrMalformedLine}
		}
		if !table.AddLabel(command.Symbol, int16(command.RomIdx)) {
			glog.Warningf("line %d: label %s shadows a predefined symbol, keeping the predefined address",
				command.Line, command.Symbol)
		}
	}
	return table, nil
}
