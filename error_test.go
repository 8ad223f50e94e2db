package kvfifo

import (
	"errors"
	"fmt"
	"testing"
)

func Test_ErrorWrapping(t *testing.T) {
	cause := errors.New("boom")
	err := Error{Code: KeyNotFound, Err: cause, UserData: 42}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is failed, got = false, want = true.")
	}
	var e Error
	if !errors.As(fmt.Errorf("op: %w", err), &e) {
		t.Fatalf("errors.As failed, got = false, want = true.")
	}
	if e.Code != KeyNotFound {
		t.Errorf("Code failed, got = %d, want = %d.", e.Code, KeyNotFound)
	}
	if e.UserData != 42 {
		t.Errorf("UserData failed, got = %v, want = 42.", e.UserData)
	}
}

func Test_ErrorString(t *testing.T) {
	err := Error{Code: ContainerEmpty, Err: errors.New("the container is empty")}
	if err.Error() == "" {
		t.Errorf("Error() failed, got = empty string.")
	}
}
