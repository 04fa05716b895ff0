package errors

import (
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind    *Error
		err     error
		wantHit bool
	}{
		"root error is matched by itself": {
			kind:    ErrNotFound,
			err:     ErrNotFound,
			wantHit: true,
		},
		"wrapped error is matched by its root": {
			kind:    ErrNotFound,
			err:     Wrap(ErrNotFound, "gone"),
			wantHit: true,
		},
		"deeply wrapped error is matched by its root": {
			kind:    ErrExpired,
			err:     Wrap(Wrap(ErrExpired, "first"), "second"),
			wantHit: true,
		},
		"different root is not matched": {
			kind:    ErrNotFound,
			err:     Wrap(ErrDuplicate, "exists"),
			wantHit: false,
		},
		"stdlib error is not matched": {
			kind:    ErrNotFound,
			err:     fmt.Errorf("not found"),
			wantHit: false,
		},
		"nil kind matches nil error": {
			kind:    nil,
			err:     nil,
			wantHit: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantHit {
				t.Fatalf("want %v, got %v", tc.wantHit, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "whatever"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrapPreservesMessage(t *testing.T) {
	err := Wrap(ErrAmount, "fee rate")
	const want = "fee rate: invalid amount"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRegisterPanicsOnReuse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(2, "conflicting with unauthorized")
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("blew up")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}
