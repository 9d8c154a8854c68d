package errors

import (
	"errors"
	"fmt"
)

// Error codes carried by *Error
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeIndexOutOfRange = "INDEX_OUT_OF_RANGE"
)

var (
	// ErrInvalidArgument indicates that a required argument was nil
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange indicates that an index is outside [0, length)
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Error describes a rejected list operation. Which of Argument or
// Index/Length is meaningful depends on Code.
type Error struct {
	Code string

	// Argument names the nil argument for CodeInvalidArgument
	Argument string

	// Index and Length describe the bad access for CodeIndexOutOfRange
	Index  int
	Length int

	// Err is the sentinel the error matches with errors.Is
	Err error
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeInvalidArgument:
		return fmt.Sprintf("list: %s cannot be nil", e.Argument)
	case CodeIndexOutOfRange:
		return fmt.Sprintf("list: index %d out of range [0:%d]", e.Index, e.Length)
	}
	if e.Err != nil {
		return fmt.Sprintf("list: [%s] %v", e.Code, e.Err)
	}
	return fmt.Sprintf("list: [%s]", e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidArgument reports that the named argument was nil
func InvalidArgument(name string) *Error {
	return &Error{
		Code:     CodeInvalidArgument,
		Argument: name,
		Err:      ErrInvalidArgument,
	}
}

// IndexOutOfRange reports an index outside a container of the given length
func IndexOutOfRange(index, length int) *Error {
	return &Error{
		Code:   CodeIndexOutOfRange,
		Index:  index,
		Length: length,
		Err:    ErrIndexOutOfRange,
	}
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsIndexOutOfRange checks if an error is an index out of range error
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}
