// Package testutil provides shared test utilities for the rules engine packages.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: unexpected error: %v", msg, err)
		} else {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: expected error but got nil", msg)
		} else {
			t.Error("expected error but got nil")
		}
	}
}

// AssertErrorIs fails unless errors.Is(err, target) holds.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: error = %v, want %v", msg, err, target)
		} else {
			t.Errorf("error = %v, want %v", err, target)
		}
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: %q does not contain %q", msg, got, substr)
		} else {
			t.Errorf("%q does not contain %q", got, substr)
		}
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: expected true but got false", msg)
		} else {
			t.Error("expected true but got false")
		}
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: expected false but got true", msg)
		} else {
			t.Error("expected false but got true")
		}
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
