package internal

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func assembleString(t *testing.T, contents string) string {
	out := &bytes.Buffer{}
	_, err := Assemble(strings.NewReader(contents), out)
	require.Nil(t, err, contents)
	return out.String()
}

func TestAssembleScenarios(t *testing.T) {
	testData := []struct {
		asm  string
		hack string
	}{
		{"@5", "0000000000000101\n"},
		{"@R3", "0000000000000011\n"},
		{"@SCREEN", "0100000000000000\n"},
		{"@foo\n@foo\n@bar\n", "0000000000010000\n0000000000010000\n0000000000010001\n"},
		{"MD=D+1;JGT", "1110011111011001\n"},
		{"@LOOP\n(LOOP)\n@LOOP\n", "0000000000000001\n0000000000000001\n"},
		{"// header\n@2        // load 2\n\nD=A\n", "0000000000000010\n1110110000010000\n"},
		{"", ""},
		{"// only comments\n\n", ""},
		{"@-1", "1111111111111111\n"},
		{"@32767", "0111111111111111\n"},
	}
	for _, data := range testData {
		assert.Equal(t, data.hack, assembleString(t, data.asm), data.asm)
	}
}

func TestAssemblePredefinedPriority(t *testing.T) {
	var asm bytes.Buffer
	var expect bytes.Buffer
	names := []string{"SP", "LCL", "ARG", "THIS", "THAT", "SCREEN", "KBD",
		"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7", "R8", "R9", "R10", "R11", "R12", "R13", "R14", "R15"}
	addrs := []int16{0, 1, 2, 3, 4, 16384, 24576, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	for i, name := range names {
		asm.WriteString("@" + name + "\n")
		expect.WriteString(formatCode(addrs[i]) + "\n")
	}
	assert.Equal(t, expect.String(), assembleString(t, asm.String()))
}

const sumProgram = `
// Computes sum = 1 + ... + 100
@i
M=1 // i = 1
@sum
M=0
(LOOP)
@i
D=M
@100
D=D-A
@END
D;JGT // if (i-100) > 0 goto END
@i
D=M
@sum
M=D+M
@i
M=M+1
@LOOP
0;JMP
(END)
@END
0;JMP
`

const sumMachineCode = `0000000000010000
1110111111001000
0000000000010001
1110101010001000
0000000000010000
1111110000010000
0000000001100100
1110010011010000
0000000000010010
1110001100000001
0000000000010000
1111110000010000
0000000000010001
1111000010001000
0000000000010000
1111110111001000
0000000000000100
1110101010000111
0000000000010010
1110101010000111
`

func TestAssembler_IntegrationTest(t *testing.T) {
	assert.Equal(t, sumMachineCode, assembleString(t, sumProgram))
}

func TestAssembleOutputShape(t *testing.T) {
	out := assembleString(t, sumProgram)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.Len(t, line, 16)
		assert.Equal(t, "", strings.Trim(line, "01"), line)
	}
}

func TestAssembleIgnoresCommentsAndBlanks(t *testing.T) {
	var noisy strings.Builder
	for _, line := range strings.Split(sumProgram, "\n") {
		noisy.WriteString("   // noise\n\n\t" + line + "\t// trailing\n")
	}
	assert.Equal(t, sumMachineCode, assembleString(t, noisy.String()))
}

func TestAssembleWhitespaceInsideCCommand(t *testing.T) {
	assert.Equal(t, assembleString(t, "D=M+1;JGT"), assembleString(t, "D =M+1 ; JGT"))
	assert.Equal(t, assembleString(t, "AM=D|M"), assembleString(t, "\tAM = D | M  "))
	_, err := Assemble(strings.NewReader("A M=D"), &bytes.Buffer{})
	assert.True(t, errors.Is(err, ErrUnknownMnemonic))
}

func TestAssembleForwardReference(t *testing.T) {
	out := assembleString(t, "@END\n0;JMP\n@5\nD=A\n(END)\n@END\n")
	lines := strings.Split(out, "\n")
	assert.Equal(t, formatCode(4), lines[0])
	assert.Equal(t, formatCode(4), lines[4])
}

func TestAssembleResult(t *testing.T) {
	result, err := Assemble(strings.NewReader(sumProgram), &bytes.Buffer{})
	require.Nil(t, err)
	assert.Len(t, result.Commands, 22)
	addr, _ := result.Symbols.Lookup("sum")
	assert.Equal(t, int16(17), addr)
	addr, _ = result.Symbols.Lookup("LOOP")
	assert.Equal(t, int16(4), addr)
}

func TestAssembleErrors(t *testing.T) {
	testData := []struct {
		asm string
		err error
	}{
		{"@1\nD=Q", ErrUnknownMnemonic},
		{"@1\nD=;JMP", ErrMissingComp},
		{"@", ErrMalformedLine},
		{"(A)\n(A)", ErrDuplicateLabel},
	}
	for _, data := range testData {
		_, err := Assemble(strings.NewReader(data.asm), &bytes.Buffer{})
		assert.True(t, errors.Is(err, data.err), "%s: %v", data.asm, err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestAssembleWriteError(t *testing.T) {
	_, err := Assemble(strings.NewReader("@1\n"), failingWriter{})
	assert.True(t, errors.Is(err, ErrIO))
}

func TestAssembleFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Sum.asm")
	require.Nil(t, os.WriteFile(input, []byte(sumProgram), 0644))
	output := DefaultOutputPath(input)
	assert.Equal(t, filepath.Join(dir, "Sum.hack"), output)
	_, err := AssembleFile(input, output)
	require.Nil(t, err)
	content, err := os.ReadFile(output)
	require.Nil(t, err)
	assert.Equal(t, sumMachineCode, string(content))
}

func TestAssembleFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := AssembleFile(filepath.Join(dir, "missing.asm"), filepath.Join(dir, "missing.hack"))
	assert.True(t, errors.Is(err, ErrIO))
	_, statErr := os.Stat(filepath.Join(dir, "missing.hack"))
	assert.True(t, os.IsNotExist(statErr))
}
