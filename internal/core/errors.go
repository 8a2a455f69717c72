// ABOUTME: Error kinds raised while handling a single dispatcher turn
// ABOUTME: Every kind is recovered at the turn boundary and reported as one line
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNoJSON is the reason for a ParseError when the reply has no {...} span
	ErrNoJSON = errors.New("no JSON object found")
	// ErrMalformedJSON is the reason for a ParseError when the span does not decode
	ErrMalformedJSON = errors.New("malformed JSON")
	// ErrPlanShape is the reason for a ParseError when action/input are not strings
	ErrPlanShape = errors.New("unexpected plan shape")
	// ErrMissingInput is the reason for a ParseError when a known action has no input
	ErrMissingInput = errors.New("plan is missing input")

	// ErrEmptyResultStore is returned when "previous response" is saved before any answer exists
	ErrEmptyResultStore = errors.New("nothing to save: no previous response yet")
)

// ParseError reports an LLM reply that does not hold a usable action plan
type ParseError struct {
	Reason error
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not parse plan: %v: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("could not parse plan: %v", e.Reason)
}

// Unwrap exposes both the reason sentinel and the underlying decoder error
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Reason, e.Err}
	}
	return []error{e.Reason}
}

// UnknownActionError reports a plan whose action has no handler
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	if e.Action == "" {
		return "unknown action: plan has no action"
	}
	return fmt.Sprintf("unknown action: %s", e.Action)
}

// Collaborator names used in CollaboratorError
const (
	CollaboratorLLM    = "llm"
	CollaboratorSearch = "search"
	CollaboratorSave   = "save"
)

// CollaboratorError wraps a failure from the LLM, search or save collaborator
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
