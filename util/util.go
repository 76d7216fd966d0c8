package util

import "strings"

func IsNumber(b byte) bool {
	return b >= '0' && b <= '9'
}

func IsSign(b byte) bool {
	return b == '+' || b == '-'
}

func IsUnderScore(b byte) bool {
	return b == '_'
}

func IsLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsBlank reports the characters the assembler treats as insignificant whitespace.
func IsBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// IsSymbolChar reports whether b may appear in a hack label or variable name.
func IsSymbolChar(b byte) bool {
	return IsLetter(b) || IsUnderScore(b) || IsNumber(b) || b == '.' || b == '$' || b == ':'
}

// IsNumeral reports whether s is an optionally signed run of decimal digits.
func IsNumeral(s string) bool {
	if len(s) > 0 && IsSign(s[0]) {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsNumber(s[i]) {
			return false
		}
	}
	return true
}

// TrimBlank removes leading and trailing blanks.
func TrimBlank(s string) string {
	start, end := 0, len(s)
	for start < end && IsBlank(s[start]) {
		start++
	}
	for end > start && IsBlank(s[end-1]) {
		end--
	}
	return s[start:end]
}

// StripBlankAround trims s and drops the blanks that touch one of the bytes in
// ops. Blanks between two other characters are kept, so `D + M` becomes `D+M`
// while `A M` stays as is.
func StripBlankAround(s string, ops string) string {
	s = TrimBlank(s)
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if !IsBlank(s[i]) {
			buf = append(buf, s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && IsBlank(s[j]) {
			j++
		}
		// s is trimmed, so the run has a neighbour on both sides.
		if strings.IndexByte(ops, s[i-1]) == -1 && strings.IndexByte(ops, s[j]) == -1 {
			buf = append(buf, s[i:j]...)
		}
		i = j
	}
	return string(buf)
}
