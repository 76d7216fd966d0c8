package internal

import (
	"errors"
	"fmt"
)

var (
	ErrIO              = errors.New("io error")
	ErrMalformedLine   = errors.New("malformed line")
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	ErrMissingComp     = errors.New("missing comp")
	ErrDuplicateLabel  = errors.New("duplicate label")
	ErrRAMExhausted    = errors.New("no free ram address for variable")
)

// SyntaxError reports a problem with a single source line. Err is one of the
// sentinel errors above.
type SyntaxError struct {
	Line    int
	Content string
	Msg     string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax err at line %d: %v: %s, near %q", e.Line, e.Err, e.Msg, e.Content)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func makeSyntaxErr(line Line, kind error, msg string) error {
	return &SyntaxError{Line: line.Number, Content: line.Text, Msg: msg, Err: kind}
}

func makeIOErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrIO, op, err)
}
