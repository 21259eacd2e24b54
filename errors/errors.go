package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Framework errors, shared by all packages.
var (
	// ErrInternal represents a general case issue that cannot be
	// categorized as any of the below cases.
	// We start as 1 as 0 is reserved for non-errors
	ErrInternal = Register(1, "internal")

	// ErrInput stands for general input problems indication.
	ErrInput = Register(2, "invalid input")

	// ErrState is returned when an object is in invalid state.
	ErrState = Register(3, "invalid state")

	// ErrNotFound is used when a requested operation cannot be completed
	// due to missing data.
	ErrNotFound = Register(4, "not found")

	// ErrDatabase is returned when the underlying storage fails.
	ErrDatabase = Register(5, "database")

	// ErrModel is returned whenever a persisted model is invalid and
	// cannot be used.
	ErrModel = Register(6, "invalid model")

	// ErrOverflow is returned when a computation cannot be completed
	// because the result value exceeds the type.
	ErrOverflow = Register(7, "an operation cannot be completed due to value overflow")

	// ErrAmount stands for an invalid amount of value.
	ErrAmount = Register(8, "invalid amount")
)

// Authorization errors.
var (
	// ErrInvalidThreshold is returned when a threshold is zero or greater
	// than the number of owners it applies to.
	ErrInvalidThreshold = Register(20, "invalid threshold")

	// ErrInvalidOwner is returned for a zero or malformed owner address.
	ErrInvalidOwner = Register(21, "invalid owner")

	// ErrDuplicateOwner is returned when adding an address that is
	// already an owner.
	ErrDuplicateOwner = Register(22, "duplicate owner")

	// ErrNotOwner is returned when a recovered signer or a removal target
	// is not a current owner.
	ErrNotOwner = Register(23, "not an owner")

	// ErrInvalidExecutor is returned for a zero executor address.
	ErrInvalidExecutor = Register(24, "invalid executor")
)

// Signature errors.
var (
	// ErrSignatureLength is returned when a signature bundle is not
	// exactly threshold units long.
	ErrSignatureLength = Register(30, "invalid signature length")

	// ErrMalleable is returned for a signature with an s value in the
	// upper half of the curve order.
	ErrMalleable = Register(31, "non canonical signature")

	// ErrRecoveryID is returned when the recovery indicator is neither 27
	// nor 28.
	ErrRecoveryID = Register(32, "invalid recovery id")

	// ErrInvalidSignature is returned when a signature does not recover
	// to any address.
	ErrInvalidSignature = Register(33, "invalid signature")

	// ErrSignerOrder is returned when signers are not strictly increasing.
	ErrSignerOrder = Register(34, "signers not in ascending order")
)

// Request errors.
var (
	// ErrNotExecutor is returned when the caller is not the executor.
	ErrNotExecutor = Register(40, "caller is not the executor")

	// ErrExpired is returned when the request deadline has passed.
	ErrExpired = Register(41, "expired")

	// ErrDeadlineTooFar is returned when the request deadline exceeds the
	// maximum window.
	ErrDeadlineTooFar = Register(42, "deadline too far")

	// ErrSelfCall is returned when the destination is the engine itself.
	ErrSelfCall = Register(43, "self call")

	// ErrInsufficientBalance is returned when the engine cannot cover the
	// requested value.
	ErrInsufficientBalance = Register(44, "insufficient balance")
)

// Execution and concurrency errors.
var (
	// ErrCallFailed is returned when a strict dispatch failed without
	// providing a failure payload.
	ErrCallFailed = Register(50, "call failed")

	// ErrCallReverted is returned when a strict dispatch failed and the
	// callee provided a failure payload. Use RevertData to read it.
	ErrCallReverted = Register(51, "call reverted")

	// ErrReentrant is returned when a guarded operation is entered while
	// another one is active.
	ErrReentrant = Register(60, "reentrant call")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info
	ErrPanic = Register(111222, "panic")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// Popular root errors are declared in this package, but extensions may want to
// declare custom codes. This function ensures that no error code is used
// twice. Attempt to reuse an error code results in panic.
//
// Use this function only during a program startup phase.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No two
// error instances should share the same error code.
var usedCodes = map[uint32]*Error{}

// Error represents a root error.
//
// Quorum is using root error to categorize issues. Each instance created
// during the runtime should wrap one of the declared root errors. This allows
// error tests and returning all errors to the client in a safe manner.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the numeric code registered for this error kind.
func (e Error) Code() uint32 {
	return e.code
}

// New returns a new error. Returned instance is having the root cause set to
// this error. Below two lines are equal
//   e.New("my description")
//   Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is check if given error instance is of a given kind/type. This involves
// unwrapping given error using the Cause method if available.
func (kind *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if kind == nil {
		if err == nil {
			return true
		}
		return reflect.ValueOf(err).IsNil()
	}

	for {
		if err == kind {
			return true
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Wrap extends given error with an additional information.
//
// If err is nil, this returns nil, avoiding the need for an if statement when
// wrapping a error returned at the end of a function
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// If this error does not carry the stacktrace information yet, attach
	// one. This should be done only once per error at the lowest frame
	// possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap function with additional funtionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format works like pkg/errors.
// %s is just the error message
// %+v is the full stack trace
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		if st := stackTrace(e); st != nil {
			fmt.Fprintf(s, "%s%+v", e.Error(), st)
			return
		}
	}
	fmt.Fprint(s, e.Error())
}

// Code returns the code of the root error kind that given error wraps. Errors
// that do not wrap any registered kind are reported as ErrInternal.
func Code(err error) uint32 {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.code
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return ErrInternal.code
}

// Recover captures a panic and stop its propagation. If panic happens it is
// transformed into a ErrPanic instance and assigned to given error. Call this
// function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// Redact will replace all panic errors with a generic message
func Redact(err error) error {
	if ErrPanic.Is(err) {
		return ErrInternal
	}
	return err
}

// stackTrace returns the first found stack trace frame carried by given error
// or any wrapped error. It returns nil if no stack trace is found.
func stackTrace(err error) errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}
