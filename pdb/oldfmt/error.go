package oldfmt

import (
	"errors"
	"strconv"
)

// These are wrapped in a ParseError, so test with errors.Is.
var (
	ErrShortLine     = errors.New("the line is too short to be correct")
	ErrBetweenModels = errors.New("ATOM/HETATM between models")
	ErrAnisou        = errors.New("ANISOU record not directly after ATOM/HETATM")
	ErrModel         = errors.New("bad MODEL record")
	ErrCharge        = errors.New("wrong format for charge")
)

const maxMsgLen = 70

// ParseError saves the line number and the line we were trying to
// read.
type ParseError struct {
	Line int    // line number, from 1
	Text string // the line that provoked the error
	Desc string
	Err  error
}

func firstPart(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

func (e *ParseError) Error() string {
	msg := "Problem in line " + strconv.Itoa(e.Line) + ": " + e.Desc
	if e.Text != "" {
		msg += "\nLine starting with\n" + firstPart(e.Text)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
