package internal

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

// Result keeps what the passes produced, for listings.
type Result struct {
	Commands []Command
	Symbols  *SymbolTable
}

// Assemble translates hack assembly read from rd into hack machine code text
// written to w. Nothing is guaranteed about w when an error is returned.
func Assemble(rd io.Reader, w io.Writer) (*Result, error) {
	commands, err := parseSource(rd)
	if err != nil {
		return nil, err
	}
	return encodeCommands(commands, w)
}

// AssembleFile assembles the file at inputPath into outputPath. The input file is
// only open while it is being parsed and the output file only while it is written.
func AssembleFile(inputPath, outputPath string) (*Result, error) {
	commands, err := parseFile(inputPath)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, makeIOErr("create "+outputPath, err)
	}
	defer f.Close()
	glog.V(1).Infof("assembler: writing %s", outputPath)
	result, err := encodeCommands(commands, f)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, makeIOErr("close "+outputPath, err)
	}
	return result, nil
}

// DefaultOutputPath replaces the extension of inputPath with `.hack`.
func DefaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".hack"
}

func parseFile(inputPath string) ([]Command, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, makeIOErr("open "+inputPath, err)
	}
	defer f.Close()
	glog.V(1).Infof("assembler: parsing %s", inputPath)
	return parseSource(f)
}

func parseSource(rd io.Reader) ([]Command, error) {
	lines, err := Lex(rd)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

func encodeCommands(commands []Command, w io.Writer) (*Result, error) {
	table, err := BuildSymbolTable(commands)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("assembler: %d commands, %d symbols after labels", len(commands), len(table.addrs))
	if err := Encode(commands, table, w); err != nil {
		return nil, err
	}
	glog.V(1).Infof("assembler: %d variables allocated", table.NextRAMIdx()-firstVariableAddr)
	return &Result{Commands: commands, Symbols: table}, nil
}
