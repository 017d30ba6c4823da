package token

import (
	"fmt"
	"sort"
	"strings"
)

// An Error is a single scanner, parser or resolver error tied to a source
// line.
type Error struct {
	Line int
	Msg  string
}

func (e Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("Error: %s", e.Msg)
}

// ErrorList accumulates a list of Errors. The zero value is ready to use.
type ErrorList struct {
	errs []Error
}

// Add appends an error at the given line.
func (l *ErrorList) Add(line int, format string, args ...interface{}) {
	l.errs = append(l.errs, Error{Line: line, Msg: fmt.Sprintf(format, args...)})
}

// Len reports the number of accumulated errors.
func (l *ErrorList) Len() int { return len(l.errs) }

// Sort orders the errors by line number, stable on insertion order for ties.
func (l *ErrorList) Sort() {
	sort.SliceStable(l.errs, func(i, j int) bool { return l.errs[i].Line < l.errs[j].Line })
}

// Err returns nil if the list is empty, otherwise an error whose Error()
// joins every accumulated message on its own line and which implements
// Unwrap() []error.
func (l *ErrorList) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return errList(l.errs)
}

type errList []Error

func (el errList) Error() string {
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func (el errList) Unwrap() []error {
	errs := make([]error, len(el))
	for i, e := range el {
		errs[i] = e
	}
	return errs
}
