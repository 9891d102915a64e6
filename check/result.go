// Package check holds the verdict type produced by field checks.
//
// A Result is either a success or a non-empty, ordered list of failure
// messages. Results combine associatively and the zero value (success) is the
// identity, so any number of checks can be folded into one verdict.
package check

import (
	"fmt"
	"strings"
)

type Result struct {
	failures []string
}

func Success() Result { return Result{} }

// Failure builds a failed Result. At least one message is required.
func Failure(msg string, more ...string) Result {
	failures := make([]string, 0, 1+len(more))
	failures = append(failures, msg)
	failures = append(failures, more...)
	return Result{failures: failures}
}

// Compare succeeds when expected equals actual and otherwise reports both.
func Compare[T comparable](expected, actual T) Result {
	if expected == actual {
		return Success()
	}
	return Failure(fmt.Sprintf("Expected '%v', got '%v'", expected, actual))
}

// Contains succeeds when every expected element is present in actual. Elements
// of actual that were not asked for are ignored. expected is treated as a set:
// an absent element is reported once however often it is listed.
func Contains[T comparable](actual map[T]struct{}, expected []T) Result {
	var r Result
	reported := make(map[T]struct{})
	for _, e := range expected {
		if _, ok := actual[e]; ok {
			continue
		}
		if _, seen := reported[e]; seen {
			continue
		}
		reported[e] = struct{}{}
		r.failures = append(r.failures, fmt.Sprintf("Missing '%v'", e))
	}
	return r
}

// Missing reports a field the target cannot have at all.
func Missing(field string) Result {
	return Failure("Missing " + field)
}

func (r Result) Combine(other Result) Result {
	if len(other.failures) == 0 {
		return r
	}
	if len(r.failures) == 0 {
		return other
	}
	failures := make([]string, 0, len(r.failures)+len(other.failures))
	failures = append(failures, r.failures...)
	failures = append(failures, other.failures...)
	return Result{failures: failures}
}

// All succeeds only if every result succeeded.
func All(results ...Result) Result {
	var out Result
	for _, r := range results {
		out = out.Combine(r)
	}
	return out
}

// Any succeeds if at least one result succeeded. On failure the messages of
// every result are kept, in order.
func Any(results ...Result) Result {
	if len(results) == 0 {
		return Failure("No candidates")
	}
	var out Result
	for _, r := range results {
		if r.Bool() {
			return Success()
		}
		out = out.Combine(r)
	}
	return out
}

func (r Result) Bool() bool { return len(r.failures) == 0 }

// Messages returns a copy of the failure messages; nil on success.
func (r Result) Messages() []string {
	if len(r.failures) == 0 {
		return nil
	}
	return append([]string(nil), r.failures...)
}

func (r Result) Err() error {
	if r.Bool() {
		return nil
	}
	return &Error{Messages: r.Messages()}
}

func (r Result) String() string {
	if r.Bool() {
		return "ok"
	}
	return strings.Join(r.failures, "; ")
}

// Error is the error form of a failed Result.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}
	return fmt.Sprintf("%d checks failed: %s", len(e.Messages), strings.Join(e.Messages, "; "))
}
