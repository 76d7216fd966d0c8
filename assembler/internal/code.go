package internal

// The hack instruction fields. Only the canonical spelling of every mnemonic is
// accepted, e.g. `D+1` but not `1+D`.

var compTable = map[string]string{
	"0":   "0101010",
	"1":   "0111111",
	"-1":  "0111010",
	"D":   "0001100",
	"A":   "0110000",
	"!D":  "0001101",
	"!A":  "0110001",
	"-D":  "0001111",
	"-A":  "0110011",
	"D+1": "0011111",
	"A+1": "0110111",
	"D-1": "0001110",
	"A-1": "0110010",
	"D+A": "0000010",
	"D-A": "0010011",
	"A-D": "0000111",
	"D&A": "0000000",
	"D|A": "0010101",
	"M":   "1110000",
	"!M":  "1110001",
	"-M":  "1110011",
	"M+1": "1110111",
	"M-1": "1110010",
	"D+M": "1000010",
	"D-M": "1010011",
	"M-D": "1000111",
	"D&M": "1000000",
	"D|M": "1010101",
}

var destTable = map[string]string{
	"M":   "001",
	"D":   "010",
	"MD":  "011",
	"A":   "100",
	"AM":  "101",
	"AD":  "110",
	"AMD": "111",
}

var jumpTable = map[string]string{
	"JGT": "001",
	"JEQ": "010",
	"JGE": "011",
	"JLT": "100",
	"JNE": "101",
	"JLE": "110",
	"JMP": "111",
}

const absentField = "000"

const compOperators = "+-&|!"

// encodeCCommand returns `111 a c1..c6 d1..d3 j1..j3`. The fields were validated
// by the parser.
func encodeCCommand(command Command) string {
	dest, jump := absentField, absentField
	if command.Dest != "" {
		dest = destTable[command.Dest]
	}
	if command.Jump != "" {
		jump = jumpTable[command.Jump]
	}
	return "111" + compTable[command.Comp] + dest + jump
}

// formatCode transfers addr to its 16 bit two's complement binary text.
func formatCode(addr int16) string {
	value := uint16(addr)
	var code [16]byte
	for j := 15; j >= 0; j-- {
		code[j] = byte(value&1) + '0'
		value >>= 1
	}
	return string(code[:])
}
