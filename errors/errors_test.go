package errors

import (
	stdlib "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"Errors are self-causing": {
			err:  ErrNotFound,
			root: ErrNotFound,
		},
		"Wrap reveals root cause": {
			err:  Wrap(ErrNotFound, "foo"),
			root: ErrNotFound,
		},
		"Cause works for stderr as root": {
			err:  Wrap(std, "Some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotOwner,
			b:      ErrNotOwner,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNotOwner,
			b:      ErrSignerOrder,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrExpired,
			b:      errors.Wrap(ErrExpired, "gone"),
			wantIs: true,
		},
		"successful comparison to a double wrapped error": {
			a:      ErrExpired,
			b:      Wrap(Wrapf(ErrExpired, "deadline %d", 4), "transfer"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      errors.Wrap(ErrOverflow, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrNotFound,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrNotFound,
			b:      errors.Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrNotFound,
			wantIs: false,
		},
		"not-nil is not nil": {
			a:      ErrNotFound,
			b:      nil,
			wantIs: false,
		},
		"revert is a call reverted error": {
			a:      ErrCallReverted,
			b:      Revert([]byte{1, 2}),
			wantIs: true,
		},
		"revert is not a generic call failure": {
			a:      ErrCallFailed,
			b:      Revert([]byte{1, 2}),
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result - got:%v want: %v", got, tc.wantIs)
			}
		})
	}
}

type customError struct {
}

func (customError) Error() string {
	return "custom error"
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(ErrSelfCall.Code(), "again")
}

func TestCode(t *testing.T) {
	cases := map[string]struct {
		err  error
		want uint32
	}{
		"root error":     {err: ErrReentrant, want: 60},
		"wrapped error":  {err: Wrap(ErrMalleable, "unit 2"), want: 31},
		"revert":         {err: Revert(nil), want: 51},
		"stdlib error":   {err: stdlib.New("boom"), want: 1},
		"wrapped stdlib": {err: Wrap(stdlib.New("boom"), "x"), want: 1},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := Code(tc.err); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRevertData(t *testing.T) {
	payload := []byte("insufficient allowance")
	err := Wrap(Revert(payload), "strict transfer")

	got, ok := RevertData(err)
	if !ok {
		t.Fatal("payload not found")
	}
	if string(got) != string(payload) {
		t.Fatalf("want %q, got %q", payload, got)
	}
	if !strings.Contains(err.Error(), "call reverted") {
		t.Fatalf("unexpected message: %s", err)
	}

	if _, ok := RevertData(Wrap(ErrCallFailed, "strict transfer")); ok {
		t.Fatal("generic failure must not carry a payload")
	}
}

func TestRecoverAndRedact(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("secret detail")
	}
	err := run()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
	if got := Redact(err); got != ErrInternal {
		t.Fatalf("want redacted error, got %v", got)
	}
	if got := Redact(ErrExpired); got != ErrExpired {
		t.Fatalf("non panic errors must not be redacted, got %v", got)
	}
}

func TestStackTrace(t *testing.T) {
	err := Wrap(ErrDuplicateOwner, "name")
	if stackTrace(err) == nil {
		t.Fatal("stack trace expected")
	}
	fullStack := fmt.Sprintf("%+v", err)
	if !strings.Contains(fullStack, "errors/errors_test.go") {
		t.Logf("Stack trace below\n----%s\n----", fullStack)
		t.Error("full stack trace should contain this test source code information")
	}
	if got := fmt.Sprintf("%s", err); got != "name: duplicate owner" {
		t.Fatalf("unexpected message %q", got)
	}
}
