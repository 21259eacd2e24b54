/*
Package errors implements the error taxonomy of the quorum engine.

Every failure returned by the engine wraps exactly one root error declared in
this package. Root errors are grouped into authorization, signature, request,
execution and concurrency errors. Use Kind.Is to test an error:

	if errors.ErrSignerOrder.Is(err) {
		...
	}

If you want to register a custom error - use Register(code, description).
For reusing errors - use Errxxx.New and Errxxx.Newf.

There is also support for stacktraces. Please ensure you create the custom error using
ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation to ensure we attach
a stacktrace. If you wrap multiple times, we only record the first wrap with the stacktrace.
(And don't do this as a global `var ErrFoo = errors.ErrInternal.New("foo")` or you will get a
useless stacktrace).

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context for the error
	%s is just the error message
	%+v is the full stack trace

A strict dispatch that fails with a callee payload returns an error created by
Revert. The payload is available through RevertData.
*/
package errors
