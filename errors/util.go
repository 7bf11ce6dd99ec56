package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// ErrContractViolation marks misuse the type system could not catch, such
// as a property lookup on a value that has no such property.
var ErrContractViolation = errors.New("contract violation")

type stack []uintptr

func (s *stack) Format() string {
	frames := runtime.CallersFrames(*s)
	var b strings.Builder
	for {
		frame, more := frames.Next()
		b.WriteRune('\n')
		b.WriteString(frame.Function)
		b.WriteRune('\n')
		b.WriteRune('\t')
		b.WriteString(frame.File)
		b.WriteRune(':')
		b.WriteString(strconv.Itoa(frame.Line))
		if !more {
			break
		}
	}
	return b.String()
}

type TrackableError struct {
	err        error
	stacktrace *stack
}

func (q *TrackableError) Error() string {
	return q.err.Error()
}

// Verbose renders the error followed by the stack captured at creation.
func (q *TrackableError) Verbose() string {
	return fmt.Sprintf("original error: %s\nstacktrace:\n%s", q.err.Error(), q.stacktrace.Format())
}

func (q *TrackableError) Stacktrace() string {
	return q.stacktrace.Format()
}

func (q *TrackableError) Unwrap() error {
	return q.err
}

func Error(msg string) *TrackableError {
	return newTrackableErr(errors.New(msg), stacktraceWithDepth(32, 1))
}

func newTrackableErr(err error, stacktrace *stack) *TrackableError {
	return &TrackableError{
		err:        err,
		stacktrace: stacktrace,
	}
}

func stacktraceWithDepth(depth int, frameSkips int) *stack {
	pcs := make([]uintptr, depth)
	n := runtime.Callers(frameSkips+2, pcs[:]) // Skip 2 frames(excluding runtime.Callers, stacktraceWithDepth(xxx,xxx))
	var st stack = pcs[:n]
	return &st
}

func Errorf(formatter string, fields ...any) *TrackableError {
	return newTrackableErr(fmt.Errorf(formatter, fields...), stacktraceWithDepth(32, 1))
}

// ContractViolation builds a TrackableError that matches ErrContractViolation
// under errors.Is. The stack starts at the caller.
func ContractViolation(formatter string, fields ...any) *TrackableError {
	err := fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(formatter, fields...))
	return newTrackableErr(err, stacktraceWithDepth(32, 1))
}
