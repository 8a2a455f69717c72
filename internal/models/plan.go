// ABOUTME: Action plan emitted by the LLM for every user turn
// ABOUTME: Defines the two known actions and the plan structure
package models

import "strings"

// Action names a dispatcher action the LLM can choose
type Action string

const (
	// ActionSearch - look the input up on the web and the encyclopedia
	ActionSearch Action = "search"

	// ActionSave - append text to the research output file
	ActionSave Action = "save"
)

// PreviousResponse is the save input that refers back to the last answer
const PreviousResponse = "previous response"

// Known reports whether the dispatcher has a handler for the action
func (a Action) Known() bool {
	return a == ActionSearch || a == ActionSave
}

// ActionPlan is the structured {action, input} decision parsed from LLM output.
// Missing keys are tolerated: Action is then empty and HasInput is false.
type ActionPlan struct {
	Action   Action `json:"action"`
	Input    string `json:"input"`
	HasInput bool   `json:"-"`
}

// RefersToPrevious reports whether a save plan asks for the last stored answer
func (p *ActionPlan) RefersToPrevious() bool {
	return strings.EqualFold(strings.TrimSpace(p.Input), PreviousResponse)
}
